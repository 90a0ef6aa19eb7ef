package mock

import (
	"context"

	"github.com/fwojciec/scraped"
)

var _ scraped.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of scraped.PageStore.
type PageStore struct {
	SaveFn func(ctx context.Context, page *scraped.Page) (string, error)
}

func (s *PageStore) Save(ctx context.Context, page *scraped.Page) (string, error) {
	return s.SaveFn(ctx, page)
}
