package main

import (
	"fmt"

	"github.com/fwojciec/scraped"
	"github.com/fwojciec/scraped/crawl"
	"github.com/fwojciec/scraped/fs"
)

// Run executes the download command.
func (c *DownloadCmd) Run(deps *Dependencies) error {
	filter, err := scraped.CompileURLFilter(c.Filter, c.Exclude)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scraped.ErrorMessage(err))
		return err
	}

	rootDir := c.RootDir
	if rootDir == "" {
		rootDir = deps.RootDir
	}

	engine := &crawl.Engine{
		Fetcher:     deps.Fetcher,
		Links:       deps.Links,
		Store:       fs.NewDirectoryStore(rootDir, c.MkMissingDirs),
		Records:     deps.Records,
		Concurrency: c.Concurrency,
		MaxPages:    c.MaxPages,
		RetryDelays: deps.RetryDelays,
	}

	req := &scraped.CrawlRequest{
		StartURL:      c.URL,
		MaxDepth:      c.Depth,
		Filter:        filter,
		RootDir:       rootDir,
		MkMissingDirs: c.MkMissingDirs,
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  %s -> %s\n", event.URL, event.Path)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.URL, scraped.ErrorMessage(event.Error))
		}
	}

	result, err := engine.Run(deps.Ctx, req, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scraped.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Fetched %d pages (%d bytes) into %s", result.Fetched, result.Bytes, rootDir)
	if result.Failed > 0 || result.Skipped > 0 {
		fmt.Fprintf(deps.Stdout, "; %d failed, %d skipped", result.Failed, result.Skipped)
	}
	fmt.Fprintln(deps.Stdout)
	return nil
}
