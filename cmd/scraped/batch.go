package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fwojciec/scraped"
	"golang.org/x/sync/errgroup"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	sites, err := parseSites(c.Sites)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scraped.ErrorMessage(err))
		return err
	}

	// The save directory must exist up front; creating it silently
	// would hide a typo that sends every document somewhere unexpected.
	if info, err := os.Stat(c.SaveDir); err != nil || !info.IsDir() {
		err := scraped.Errorf(scraped.ENOTFOUND, "save directory not found: %s", c.SaveDir)
		fmt.Fprintf(deps.Stderr, "error: %s\n", scraped.ErrorMessage(err))
		return err
	}

	var mu sync.Mutex
	failed := map[string]string{}

	g := &errgroup.Group{}
	g.SetLimit(c.Concurrency)

	for _, s := range sites {
		g.Go(func() error {
			doc, result, err := scrapeToMarkdown(deps, s.url, scrapeOptions{
				Depth:   c.Depth,
				Extract: c.Extract,
			})
			if err == nil && result.Fetched == 0 {
				err = scraped.Errorf(scraped.EUNAVAILABLE, "no pages fetched from %s", s.url)
			}
			if err == nil {
				err = os.WriteFile(filepath.Join(c.SaveDir, s.name+".md"), []byte(doc), 0644)
			}
			if err != nil {
				// Per-site failures become data, never abort the batch.
				deps.Logger.Warn("site failed", "name", s.name, "url", s.url, "err", err)
				mu.Lock()
				failed[s.name] = s.url
				mu.Unlock()
				return nil
			}
			fmt.Fprintf(deps.Stdout, "Saved %s\n", filepath.Join(c.SaveDir, s.name+".md"))
			return nil
		})
	}
	_ = g.Wait()

	if len(failed) > 0 {
		names := make([]string, 0, len(failed))
		for name := range failed {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintf(deps.Stdout, "Failed sites:\n")
		for _, name := range names {
			fmt.Fprintf(deps.Stdout, "  %s=%s\n", name, failed[name])
		}
	}
	return nil
}

type site struct {
	name string
	url  string
}

// parseSites parses name=url pairs.
func parseSites(pairs []string) ([]site, error) {
	sites := make([]site, 0, len(pairs))
	for _, pair := range pairs {
		name, url, ok := strings.Cut(pair, "=")
		if !ok || name == "" || url == "" {
			return nil, scraped.Errorf(scraped.EINVALID, "invalid site %q: expected name=url", pair)
		}
		sites = append(sites, site{name: name, url: url})
	}
	return sites, nil
}
