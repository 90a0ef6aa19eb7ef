package scraped

import (
	"context"
	"time"
)

// FetchOutcome classifies the result of processing one URL.
type FetchOutcome string

// Fetch outcomes recorded in the crawl manifest.
const (
	OutcomeFetched FetchOutcome = "fetched"
	OutcomeFailed  FetchOutcome = "failed"
	OutcomeSkipped FetchOutcome = "skipped"
)

// FetchRecord is one row of the crawl manifest: what happened to a
// URL during a crawl run and where its bytes ended up.
type FetchRecord struct {
	ID          string       `json:"id"`
	CrawlID     string       `json:"crawlId"`
	URL         string       `json:"url"`
	FinalURL    string       `json:"finalUrl"`
	Depth       int          `json:"depth"`
	Outcome     FetchOutcome `json:"outcome"`
	StatusCode  int          `json:"statusCode"`
	Path        string       `json:"path"`
	ContentType string       `json:"contentType"`
	Bytes       int          `json:"bytes"`
	ContentHash string       `json:"contentHash"`
	Error       string       `json:"error"`
	FetchedAt   time.Time    `json:"fetchedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *FetchRecord) Validate() error {
	if r.CrawlID == "" {
		return Errorf(EINVALID, "fetch record crawl ID required")
	}
	if r.URL == "" {
		return Errorf(EINVALID, "fetch record URL required")
	}
	return nil
}

// Crawl identifies one crawl run in the manifest.
type Crawl struct {
	ID        string    `json:"id"`
	StartURL  string    `json:"startUrl"`
	RootDir   string    `json:"rootDir"`
	MaxDepth  int       `json:"maxDepth"`
	StartedAt time.Time `json:"startedAt"`
}

// FetchRecordFilter selects manifest rows.
type FetchRecordFilter struct {
	CrawlID *string       `json:"crawlId"`
	Outcome *FetchOutcome `json:"outcome"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// FetchLogService records crawl runs and their per-URL outcomes.
type FetchLogService interface {
	// CreateCrawl registers a crawl run.
	CreateCrawl(ctx context.Context, crawl *Crawl) error

	// CreateRecord appends a fetch record to the manifest.
	CreateRecord(ctx context.Context, record *FetchRecord) error

	// FindRecords retrieves records matching the filter,
	// in fetch order.
	FindRecords(ctx context.Context, filter FetchRecordFilter) ([]*FetchRecord, error)
}
