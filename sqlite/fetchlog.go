package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/scraped"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ scraped.FetchLogService = (*FetchLogService)(nil)

// FetchLogService implements scraped.FetchLogService using SQLite.
type FetchLogService struct {
	db *DB
}

// NewFetchLogService creates a new FetchLogService.
func NewFetchLogService(db *DB) *FetchLogService {
	return &FetchLogService{db: db}
}

// CreateCrawl registers a crawl run.
func (s *FetchLogService) CreateCrawl(ctx context.Context, crawl *scraped.Crawl) error {
	if crawl.StartURL == "" {
		return scraped.Errorf(scraped.EINVALID, "crawl start URL required")
	}

	if crawl.ID == "" {
		crawl.ID = uuid.New().String()
	}
	if crawl.StartedAt.IsZero() {
		crawl.StartedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO crawls (id, start_url, root_dir, max_depth, started_at)
		VALUES (?, ?, ?, ?, ?)
	`, crawl.ID, crawl.StartURL, crawl.RootDir, crawl.MaxDepth,
		crawl.StartedAt.Format(time.RFC3339))

	return err
}

// CreateRecord appends a fetch record to the manifest.
func (s *FetchLogService) CreateRecord(ctx context.Context, record *scraped.FetchRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.FetchedAt.IsZero() {
		record.FetchedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO fetches (id, crawl_id, url, final_url, depth, outcome, status_code,
			path, content_type, bytes, content_hash, error, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.CrawlID, record.URL, record.FinalURL, record.Depth,
		string(record.Outcome), record.StatusCode, record.Path, record.ContentType,
		record.Bytes, record.ContentHash, record.Error,
		record.FetchedAt.Format(time.RFC3339))

	return err
}

// FindRecords retrieves records matching the filter, in fetch order.
func (s *FetchLogService) FindRecords(ctx context.Context, filter scraped.FetchRecordFilter) ([]*scraped.FetchRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, crawl_id, url, final_url, depth, outcome, status_code,
		path, content_type, bytes, content_hash, error, fetched_at
		FROM fetches WHERE 1=1`)

	if filter.CrawlID != nil {
		query.WriteString(" AND crawl_id = ?")
		args = append(args, *filter.CrawlID)
	}
	if filter.Outcome != nil {
		query.WriteString(" AND outcome = ?")
		args = append(args, string(*filter.Outcome))
	}

	// rowid preserves insertion order, which is fetch order.
	query.WriteString(" ORDER BY rowid ASC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*scraped.FetchRecord
	for rows.Next() {
		var record scraped.FetchRecord
		var outcome, fetchedAt string

		if err := rows.Scan(&record.ID, &record.CrawlID, &record.URL, &record.FinalURL,
			&record.Depth, &outcome, &record.StatusCode, &record.Path,
			&record.ContentType, &record.Bytes, &record.ContentHash, &record.Error,
			&fetchedAt); err != nil {
			return nil, err
		}

		record.Outcome = scraped.FetchOutcome(outcome)
		record.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
		}

		records = append(records, &record)
	}

	return records, rows.Err()
}
