// Package slog provides logging decorators for scraped services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/scraped"
)

// Ensure LoggingFetcher implements scraped.Fetcher.
var _ scraped.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with structured logging of each fetch.
type LoggingFetcher struct {
	next   scraped.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next scraped.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (*scraped.Response, error) {
	begin := time.Now()
	resp, err := f.next.Fetch(ctx, url)
	duration := time.Since(begin)

	if err != nil {
		f.logger.Error("fetch",
			"url", url,
			"duration", duration,
			"err", err,
		)
		return nil, err
	}

	f.logger.Info("fetch",
		"url", url,
		"status", resp.StatusCode,
		"bytes", len(resp.Body),
		"duration", duration,
	)
	return resp, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
