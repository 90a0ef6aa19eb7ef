package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/alecthomas/kong"
	"github.com/fwojciec/scraped/goquery"
	scrapedhttp "github.com/fwojciec/scraped/http"
	scrapedslog "github.com/fwojciec/scraped/slog"
	"github.com/fwojciec/scraped/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Default root storage directory. Set before calling Run().
	RootDir string

	// SQLite database backing the crawl manifest, when enabled.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		RootDir: defaultRootDir(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		RootDir: m.RootDir,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("scraped"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'scraped --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := scrapedslog.NewLoggingFetcher(scrapedhttp.NewFetcher(), deps.Logger)
	defer fetcher.Close()
	deps.Fetcher = fetcher
	deps.Links = goquery.NewExtractor()

	// The download command can persist a crawl manifest next to the
	// page tree.
	if cmd == "download" && cli.Download.Manifest {
		rootDir := cli.Download.RootDir
		if rootDir == "" {
			rootDir = m.RootDir
		}
		if cli.Download.MkMissingDirs {
			if err := os.MkdirAll(rootDir, 0755); err != nil {
				return fmt.Errorf("failed to create root directory %q: %w", rootDir, err)
			}
		}
		m.DB = sqlite.NewDB(filepath.Join(rootDir, "scraped.db"))
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open manifest database: %w", err)
		}
		defer m.Close()
		deps.Records = sqlite.NewFetchLogService(m.DB)
	}

	return kongCtx.Run(deps)
}

// defaultRootDir resolves the default root storage directory once.
// SCRAPED_ROOTDIR overrides the XDG data directory.
func defaultRootDir() string {
	if dir := os.Getenv("SCRAPED_ROOTDIR"); dir != "" {
		return dir
	}
	return filepath.Join(xdg.DataHome, "scraped")
}
