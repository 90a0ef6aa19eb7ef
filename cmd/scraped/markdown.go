package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/scraped"
	scrapedhttp "github.com/fwojciec/scraped/http"
)

// Run executes the markdown command.
func (c *MarkdownCmd) Run(deps *Dependencies) error {
	filter, err := scraped.CompileURLFilter(c.Filter, c.Exclude)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scraped.ErrorMessage(err))
		return err
	}

	// Resolve the save path before crawling so a bad destination fails
	// fast instead of after the whole site was fetched.
	savePath := ""
	if c.Save != "" {
		savePath, err = resolveSavePath(c.Save, c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", scraped.ErrorMessage(err))
			return err
		}
	}

	doc, _, err := scrapeToMarkdown(deps, c.URL, scrapeOptions{
		Depth:          c.Depth,
		Filter:         filter,
		Extract:        c.Extract,
		DedupeMinBlock: c.DedupeMinBlock,
		SlurpDir:       c.SlurpDir,
		Concurrency:    c.Concurrency,
		MaxPages:       c.MaxPages,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scraped.ErrorMessage(err))
		return err
	}

	if savePath == "" {
		fmt.Fprintln(deps.Stdout, doc)
		return nil
	}

	if err := os.WriteFile(savePath, []byte(doc), 0644); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Saved %s\n", savePath)
	return nil
}

// resolveSavePath turns the save flag into a concrete file path. A
// path that is an existing directory gets a URL-derived file name; a
// file path whose parent directory is missing is a configuration error.
func resolveSavePath(save, url string) (string, error) {
	if info, err := os.Stat(save); err == nil && info.IsDir() {
		return filepath.Join(save, scrapedhttp.URLToKey(url)+".md"), nil
	}

	dir := filepath.Dir(save)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return "", scraped.Errorf(scraped.ENOTFOUND, "save directory not found: %s", dir)
	}
	return save, nil
}
