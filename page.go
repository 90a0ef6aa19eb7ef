package scraped

import (
	"context"
	"net/http"
)

// Response is the outcome of a single HTTP GET.
type Response struct {
	// StatusCode is the HTTP status code of the final response.
	StatusCode int

	// Header holds the response headers.
	Header http.Header

	// Body is the raw response body.
	Body []byte

	// FinalURL is the URL after following redirects.
	FinalURL string
}

// ContentType returns the declared Content-Type header, if any.
func (r *Response) ContentType() string {
	if r.Header == nil {
		return ""
	}
	return r.Header.Get("Content-Type")
}

// Fetcher performs a single HTTP GET. It carries no crawl logic;
// the crawl engine decides what failures mean.
type Fetcher interface {
	// Fetch retrieves the URL and returns the response.
	// The context controls timeout and cancellation.
	// A non-2xx status is reported as an EUNAVAILABLE error.
	Fetch(ctx context.Context, url string) (*Response, error)

	// Close releases transport resources.
	Close() error
}

// Page is one successfully fetched and persisted page.
type Page struct {
	// URL is the URL the page was requested as.
	URL string

	// FinalURL is the URL after redirects.
	FinalURL string

	// ContentType is the declared content type, verbatim.
	ContentType string

	// Body holds the raw page bytes.
	Body []byte

	// Path is the local file path the body was persisted to,
	// relative to the crawl root.
	Path string

	// Depth is the link distance from the start URL.
	Depth int
}

// PageStore persists fetched pages to local storage.
type PageStore interface {
	// Save writes the page body to a path derived from its URL and
	// returns that path relative to the store root.
	// Returns ENOTFOUND if a needed parent directory is missing and
	// the store is not allowed to create it.
	Save(ctx context.Context, page *Page) (string, error)
}
