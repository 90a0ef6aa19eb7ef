// Package crawl provides recursive site crawling orchestration.
// It drives a depth-bounded, domain-confined traversal from a start
// URL and persists each fetched page to local storage.
package crawl

import (
	"context"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/scraped"
	"github.com/google/uuid"
)

// Frontier configuration.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
	// defaultMaxPages limits the number of URLs processed to prevent runaway crawls.
	defaultMaxPages = 1000
	// defaultConcurrency is the worker pool size when none is configured.
	defaultConcurrency = 10
)

// Engine orchestrates the crawling of a site. It is a plain worklist
// processor: the frontier is mutated only by the coordinator
// goroutine, so each URL is fetched at most once per run.
type Engine struct {
	Fetcher     scraped.Fetcher
	Links       scraped.LinkExtractor
	Store       scraped.PageStore
	Records     scraped.FetchLogService // optional crawl manifest
	Concurrency int
	MaxPages    int
	RetryDelays []time.Duration
	Logf        LogFunc // optional retry/debug logging
}

// Result holds the outcome of a crawl run.
type Result struct {
	CrawlID string
	Fetched int
	Failed  int
	Skipped int
	Bytes   int
}

// ProgressEvent reports progress during a crawl run.
type ProgressEvent struct {
	Type  ProgressType
	URL   string
	Depth int
	Path  string
	Error error
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types emitted by Run.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// workResult holds the outcome of processing a single frontier entry.
type workResult struct {
	entry       scraped.FrontierEntry
	finalURL    string
	statusCode  int
	contentType string
	path        string
	bytes       int
	hash        string
	discovered  []string
	err         error
	fatal       bool
}

// Run crawls the site described by req and returns a summary.
// Per-URL failures are counted and reported through progress; only
// configuration errors (invalid start URL, a missing directory with
// MkMissingDirs off) abort the run.
func (e *Engine) Run(ctx context.Context, req *scraped.CrawlRequest, progress ProgressFunc) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	domains, err := req.Domains()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	result := Result{CrawlID: uuid.New().String()}
	if e.Records != nil {
		crawl := &scraped.Crawl{
			ID:        result.CrawlID,
			StartURL:  req.StartURL,
			RootDir:   req.RootDir,
			MaxDepth:  req.MaxDepth,
			StartedAt: time.Now().UTC(),
		}
		if err := e.Records.CreateCrawl(ctx, crawl); err != nil {
			return nil, err
		}
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(scraped.FrontierEntry{URL: req.StartURL, Depth: 0})

	concurrency := e.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	maxPages := e.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, URL: req.StartURL})
	}

	// Channels for worker coordination
	workCh := make(chan scraped.FrontierEntry, concurrency)
	resultCh := make(chan workResult)

	// Start worker pool
	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for entry := range workCh {
				res := e.process(ctx, req, entry)
				select {
				case resultCh <- res:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	// Close result channel when all workers are done
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	var fatalErr error

	handle := func(res workResult) {
		// Enqueue surviving links one level deeper. The coordinator
		// is the only frontier writer.
		for _, link := range res.discovered {
			if req.Allows(link, domains) {
				frontier.Push(scraped.FrontierEntry{URL: link, Depth: res.entry.Depth + 1})
			}
		}

		switch {
		case res.fatal:
			fatalErr = res.err
			return
		case res.err != nil && ctx.Err() != nil && errors.Is(res.err, ctx.Err()):
			// In flight when the run was cancelled; not a page failure.
			return
		case res.err != nil && scraped.ErrorCode(res.err) == scraped.EINVALID:
			// Unmappable URL: skip the page, keep crawling.
			result.Skipped++
		case res.err != nil:
			result.Failed++
		default:
			result.Fetched++
			result.Bytes += res.bytes
		}

		e.record(ctx, result.CrawlID, &res)

		if progress != nil {
			if res.err != nil {
				progress(ProgressEvent{Type: ProgressFailed, URL: res.entry.URL, Depth: res.entry.Depth, Error: res.err})
			} else {
				progress(ProgressEvent{Type: ProgressCompleted, URL: res.entry.URL, Depth: res.entry.Depth, Path: res.path})
			}
		}
	}

	// Coordinator loop
	dispatched := 0
	pending := 0
	var next *scraped.FrontierEntry

	if entry, ok := frontier.Pop(); ok {
		next = &entry
	}

coordinatorLoop:
	for {
		if next == nil && pending == 0 {
			break coordinatorLoop
		}
		if ctx.Err() != nil || fatalErr != nil {
			break coordinatorLoop
		}

		if next != nil && dispatched < maxPages {
			select {
			case <-ctx.Done():
				break coordinatorLoop
			case workCh <- *next:
				dispatched++
				pending++
				next = nil
			case res := <-resultCh:
				pending--
				handle(res)
			}
		} else {
			select {
			case <-ctx.Done():
				break coordinatorLoop
			case res, ok := <-resultCh:
				if !ok {
					break coordinatorLoop
				}
				pending--
				handle(res)
			}
		}

		if next == nil && dispatched < maxPages {
			if entry, ok := frontier.Pop(); ok {
				next = &entry
			}
		}
	}

	// Signal workers to stop and drain remaining results
	close(workCh)
	cancel()

	drainTimeout := time.After(5 * time.Second)
drainLoop:
	for {
		select {
		case res, ok := <-resultCh:
			if !ok {
				break drainLoop
			}
			if !res.fatal && fatalErr == nil {
				handle(res)
			}
		case <-drainTimeout:
			break drainLoop
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished})
	}

	if fatalErr != nil {
		return nil, fatalErr
	}
	return &result, nil
}

// process fetches, persists, and extracts links for one frontier entry.
func (e *Engine) process(ctx context.Context, req *scraped.CrawlRequest, entry scraped.FrontierEntry) workResult {
	res := workResult{entry: entry}

	delays := e.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	fetchFn := func(ctx context.Context, url string) (*scraped.Response, error) {
		return e.Fetcher.Fetch(ctx, url)
	}
	resp, err := FetchWithRetryDelays(ctx, entry.URL, fetchFn, e.Logf, delays)
	if err != nil {
		res.err = err
		return res
	}

	res.finalURL = resp.FinalURL
	res.statusCode = resp.StatusCode
	res.contentType = resp.ContentType()
	res.bytes = len(resp.Body)
	res.hash = hashBytes(resp.Body)

	page := &scraped.Page{
		URL:         entry.URL,
		FinalURL:    resp.FinalURL,
		ContentType: res.contentType,
		Body:        resp.Body,
		Depth:       entry.Depth,
	}
	path, err := e.Store.Save(ctx, page)
	if err != nil {
		res.err = err
		// A missing directory is a configuration error that aborts
		// the run; an unmappable URL only skips this page.
		res.fatal = scraped.ErrorCode(err) == scraped.ENOTFOUND
		return res
	}
	res.path = path

	// Follow links only while under the depth ceiling, and only out
	// of pages that look like HTML.
	if entry.Depth < req.MaxDepth && scraped.IsHTMLContent(resp.Body) {
		base := resp.FinalURL
		if base == "" {
			base = entry.URL
		}
		if links, err := e.Links.ExtractLinks(resp.Body, base); err == nil {
			res.discovered = links
		}
	}

	return res
}

// record appends the outcome to the crawl manifest, if one is configured.
func (e *Engine) record(ctx context.Context, crawlID string, res *workResult) {
	if e.Records == nil {
		return
	}

	outcome := scraped.OutcomeFetched
	errMsg := ""
	if res.err != nil {
		errMsg = res.err.Error()
		if scraped.ErrorCode(res.err) == scraped.EINVALID {
			outcome = scraped.OutcomeSkipped
		} else {
			outcome = scraped.OutcomeFailed
		}
	}

	rec := &scraped.FetchRecord{
		CrawlID:     crawlID,
		URL:         res.entry.URL,
		FinalURL:    res.finalURL,
		Depth:       res.entry.Depth,
		Outcome:     outcome,
		StatusCode:  res.statusCode,
		Path:        res.path,
		ContentType: res.contentType,
		Bytes:       res.bytes,
		ContentHash: res.hash,
		Error:       errMsg,
	}
	if err := e.Records.CreateRecord(ctx, rec); err != nil && e.Logf != nil {
		e.Logf("  manifest write failed for %s: %v", res.entry.URL, err)
	}
}

// hashBytes computes an xxHash of content and returns it as hex.
func hashBytes(b []byte) string {
	h := xxhash.Sum64(b)
	buf := make([]byte, 8)
	for i := 0; i < 8; i++ {
		buf[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(buf)
}
