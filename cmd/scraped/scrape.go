package main

import (
	"os"

	"github.com/fwojciec/scraped"
	"github.com/fwojciec/scraped/assemble"
	"github.com/fwojciec/scraped/crawl"
	"github.com/fwojciec/scraped/fs"
	"github.com/fwojciec/scraped/htmltomarkdown"
	"github.com/fwojciec/scraped/trafilatura"
)

// scrapeOptions configures a crawl-then-assemble run.
type scrapeOptions struct {
	Depth          int
	Filter         *scraped.URLFilter
	Extract        bool
	DedupeMinBlock int
	SlurpDir       string // empty means a temporary directory
	Concurrency    int
	MaxPages       int
}

// scrapeToMarkdown crawls a site into a directory and assembles the
// fetched pages into one markdown document. When no slurp directory is
// given the pages are written to a temporary directory that is removed
// afterwards. The crawl result is returned alongside the document so
// callers can distinguish an empty site from a site that fetched
// nothing.
func scrapeToMarkdown(deps *Dependencies, url string, opts scrapeOptions) (string, *crawl.Result, error) {
	dir := opts.SlurpDir
	if dir == "" {
		tmp, err := os.MkdirTemp("", "scraped-*")
		if err != nil {
			return "", nil, err
		}
		defer os.RemoveAll(tmp)
		dir = tmp
	}

	engine := &crawl.Engine{
		Fetcher:     deps.Fetcher,
		Links:       deps.Links,
		Store:       fs.NewDirectoryStore(dir, true),
		Concurrency: opts.Concurrency,
		MaxPages:    opts.MaxPages,
		RetryDelays: deps.RetryDelays,
	}

	req := &scraped.CrawlRequest{
		StartURL:      url,
		MaxDepth:      opts.Depth,
		Filter:        opts.Filter,
		RootDir:       dir,
		MkMissingDirs: true,
	}

	result, err := engine.Run(deps.Ctx, req, nil)
	if err != nil {
		return "", nil, err
	}

	assembleOpts := []assemble.Option{assemble.WithLogger(deps.Logger)}
	if opts.Extract {
		assembleOpts = append(assembleOpts, assemble.WithExtractor(trafilatura.NewExtractor()))
	}
	assembler := assemble.New(htmltomarkdown.NewConverter(), assembleOpts...)

	doc, err := assembler.Assemble(assemble.FromDir(dir))
	if err != nil {
		return "", nil, err
	}

	if opts.DedupeMinBlock > 0 {
		doc, _ = assemble.DeduplicateLines(doc, opts.DedupeMinBlock)
	}
	return doc, result, nil
}
