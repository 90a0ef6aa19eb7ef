package mock

import "github.com/fwojciec/scraped"

var _ scraped.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of scraped.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html []byte, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html []byte, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL)
}

var _ scraped.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of scraped.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*scraped.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*scraped.ExtractResult, error) {
	return e.ExtractFn(html)
}
