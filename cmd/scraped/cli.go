package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/scraped"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	RootDir     string
	Logger      *slog.Logger
	Fetcher     scraped.Fetcher
	Links       scraped.LinkExtractor
	Records     scraped.FetchLogService
	RetryDelays []time.Duration // nil means the default backoff
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Markdown MarkdownCmd `cmd:"" help:"Crawl a site and assemble it into a single markdown document"`
	Download DownloadCmd `cmd:"" help:"Crawl a site and persist its pages under the root directory"`
	Batch    BatchCmd    `cmd:"" help:"Scrape multiple sites to markdown, one document per site"`
}

// MarkdownCmd is the "markdown" subcommand.
type MarkdownCmd struct {
	URL            string   `arg:"" help:"Start URL"`
	Depth          int      `short:"d" default:"1" help:"Maximum link distance from the start URL"`
	Filter         []string `short:"F" name:"filter" help:"Follow only URLs matching regex (repeatable)"`
	Exclude        []string `short:"X" name:"exclude" help:"Skip URLs matching regex (repeatable)"`
	Save           string   `short:"s" help:"Save path; a directory gets a URL-derived file name; empty prints to stdout"`
	SlurpDir       string   `help:"Crawl into this directory instead of a temporary one"`
	Extract        bool     `short:"e" help:"Extract main content before conversion"`
	DedupeMinBlock int      `name:"dedupe-min-block" help:"Collapse repeated line blocks of at least this many lines"`
	Concurrency    int      `short:"c" default:"10" help:"Concurrent fetch limit"`
	MaxPages       int      `default:"1000" help:"Maximum number of pages to fetch"`
}

// DownloadCmd is the "download" subcommand.
type DownloadCmd struct {
	URL           string   `arg:"" help:"Start URL"`
	Depth         int      `short:"d" default:"1" help:"Maximum link distance from the start URL"`
	Filter        []string `short:"F" name:"filter" help:"Follow only URLs matching regex (repeatable)"`
	Exclude       []string `short:"X" name:"exclude" help:"Skip URLs matching regex (repeatable)"`
	RootDir       string   `name:"rootdir" help:"Directory to write the page tree under (default: data directory)"`
	MkMissingDirs bool     `name:"mk-missing-dirs" default:"true" negatable:"" help:"Create missing directories"`
	Manifest      bool     `help:"Record fetch outcomes in a SQLite manifest next to the page tree"`
	Concurrency   int      `short:"c" default:"10" help:"Concurrent fetch limit"`
	MaxPages      int      `default:"1000" help:"Maximum number of pages to fetch"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Sites       []string `arg:"" help:"Sites to scrape, as name=url pairs"`
	SaveDir     string   `short:"o" required:"" help:"Existing directory to write one markdown file per site into"`
	Depth       int      `short:"d" default:"1" help:"Maximum link distance from each start URL"`
	Extract     bool     `short:"e" help:"Extract main content before conversion"`
	Concurrency int      `short:"c" default:"3" help:"Number of sites scraped concurrently"`
}
