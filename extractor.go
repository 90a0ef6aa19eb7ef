package scraped

// LinkExtractor parses one HTML document and yields absolute
// outbound links.
type LinkExtractor interface {
	// ExtractLinks resolves every href against baseURL and returns
	// the result in document order. Non-HTTP(S) schemes are skipped,
	// fragments are stripped, and duplicates within the page are
	// collapsed to the first occurrence.
	ExtractLinks(html []byte, baseURL string) ([]string, error)
}

// ExtractResult holds the main content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML, with
	// boilerplate (nav, footer, sidebar) removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}
