// Package goquery provides CSS-selector based HTML link extraction.
package goquery

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scraped"
)

// Ensure Extractor implements scraped.LinkExtractor at compile time.
var _ scraped.LinkExtractor = (*Extractor)(nil)

// Extractor extracts outbound links from HTML documents.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractLinks parses HTML and returns absolute outbound links in
// document order. Relative hrefs are resolved against baseURL,
// non-HTTP(S) schemes and fragment-only hrefs are skipped, fragments
// are stripped, and duplicates within the page are collapsed to the
// first occurrence.
func (e *Extractor) ExtractLinks(html []byte, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, scraped.Errorf(scraped.EINVALID, "invalid base URL: %q", baseURL)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, scraped.Errorf(scraped.EINVALID, "failed to parse HTML: %v", err)
	}

	var links []string
	seen := make(map[string]bool)

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists {
			return
		}
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		if seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	})

	return links, nil
}

// resolveURL resolves an href against the base URL, keeping only
// http(s) results and discarding fragments.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	resolved.Fragment = ""
	return resolved.String()
}
