package scraped

import "net/url"

// CrawlRequest is the immutable configuration for one crawl run.
type CrawlRequest struct {
	// StartURL is the seed of the crawl. Required.
	StartURL string

	// AllowedDomains restricts followed links to these hosts.
	// Empty means the start URL's host.
	AllowedDomains []string

	// MaxDepth is the maximum link distance from the start URL.
	// Pages at MaxDepth are fetched but their links are not followed.
	MaxDepth int

	// Filter restricts followed links by regex patterns. Optional.
	Filter *URLFilter

	// FilterFunc is an arbitrary link predicate applied after Filter.
	// Optional; nil accepts every link.
	FilterFunc func(url string) bool

	// RootDir is the directory the page tree is written under.
	RootDir string

	// MkMissingDirs controls directory creation. When false, a
	// missing parent directory aborts the whole crawl.
	MkMissingDirs bool
}

// Validate returns an error if the request cannot seed a crawl.
func (r *CrawlRequest) Validate() error {
	if r.StartURL == "" {
		return Errorf(EINVALID, "start URL required")
	}
	u, err := url.Parse(r.StartURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Errorf(EINVALID, "invalid start URL: %q", r.StartURL)
	}
	if r.MaxDepth < 0 {
		return Errorf(EINVALID, "max depth must be non-negative")
	}
	return nil
}

// Domains returns the effective allowed domain set.
// Falls back to the start URL's host when no override is set.
func (r *CrawlRequest) Domains() ([]string, error) {
	if len(r.AllowedDomains) > 0 {
		return r.AllowedDomains, nil
	}
	u, err := url.Parse(r.StartURL)
	if err != nil || u.Host == "" {
		return nil, Errorf(EINVALID, "invalid start URL: %q", r.StartURL)
	}
	return []string{u.Host}, nil
}

// Allows reports whether a discovered link survives domain
// confinement and the configured filters.
func (r *CrawlRequest) Allows(rawURL string, domains []string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	confined := false
	for _, d := range domains {
		if u.Host == d {
			confined = true
			break
		}
	}
	if !confined {
		return false
	}
	if !r.Filter.Match(rawURL) {
		return false
	}
	if r.FilterFunc != nil && !r.FilterFunc(rawURL) {
		return false
	}
	return true
}
