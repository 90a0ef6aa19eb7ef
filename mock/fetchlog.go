package mock

import (
	"context"

	"github.com/fwojciec/scraped"
)

var _ scraped.FetchLogService = (*FetchLogService)(nil)

// FetchLogService is a mock implementation of scraped.FetchLogService.
type FetchLogService struct {
	CreateCrawlFn  func(ctx context.Context, crawl *scraped.Crawl) error
	CreateRecordFn func(ctx context.Context, record *scraped.FetchRecord) error
	FindRecordsFn  func(ctx context.Context, filter scraped.FetchRecordFilter) ([]*scraped.FetchRecord, error)
}

func (s *FetchLogService) CreateCrawl(ctx context.Context, crawl *scraped.Crawl) error {
	return s.CreateCrawlFn(ctx, crawl)
}

func (s *FetchLogService) CreateRecord(ctx context.Context, record *scraped.FetchRecord) error {
	return s.CreateRecordFn(ctx, record)
}

func (s *FetchLogService) FindRecords(ctx context.Context, filter scraped.FetchRecordFilter) ([]*scraped.FetchRecord, error) {
	return s.FindRecordsFn(ctx, filter)
}
