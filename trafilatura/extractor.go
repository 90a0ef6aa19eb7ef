// Package trafilatura provides boilerplate-removing content
// extraction from HTML pages.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/scraped"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements scraped.Extractor at compile time.
var _ scraped.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML,
// dropping navigation, sidebars, and footers.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*scraped.ExtractResult, error) {
	if rawHTML == "" {
		return nil, scraped.Errorf(scraped.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &scraped.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
