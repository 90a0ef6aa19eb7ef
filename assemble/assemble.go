// Package assemble turns a collection of fetched pages into a single
// markdown document. It runs strictly after a crawl, over a static
// snapshot of the fetched files.
package assemble

import (
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/scraped"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// DefaultSeparator joins converted blocks with a blank line.
const DefaultSeparator = "\n\n"

// Assembler converts HTML blobs to markdown and aggregates them into
// one document.
type Assembler struct {
	converter scraped.Converter
	extractor scraped.Extractor
	sniff     bool
	separator string
	prefixes  []string
	logger    *slog.Logger
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithExtractor enables main-content extraction before conversion.
func WithExtractor(e scraped.Extractor) Option {
	return func(a *Assembler) {
		a.extractor = e
	}
}

// WithSniffFilter controls whether entries are filtered through the
// HTML content sniffer before conversion. On by default; the same
// policy applies to every source kind.
func WithSniffFilter(sniff bool) Option {
	return func(a *Assembler) {
		a.sniff = sniff
	}
}

// WithSeparator sets the string joining converted blocks.
// Defaults to a blank line.
func WithSeparator(sep string) Option {
	return func(a *Assembler) {
		a.separator = sep
	}
}

// WithPrefixes prepends a prefix line to each converted block. The
// number of prefixes must equal the number of entries that pass the
// sniff filter; Assemble fails with EINVALID otherwise.
func WithPrefixes(prefixes []string) Option {
	return func(a *Assembler) {
		a.prefixes = prefixes
	}
}

// WithLogger sets the logger used to report skipped blobs.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assembler) {
		a.logger = logger
	}
}

// New creates an Assembler using the given converter.
func New(converter scraped.Converter, opts ...Option) *Assembler {
	a := &Assembler{
		converter: converter,
		sniff:     true,
		separator: DefaultSeparator,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	return a
}

// Assemble reads the source, converts each surviving entry to
// markdown, and returns the aggregated document. Per-entry decode or
// conversion failures are logged and skipped; an empty source yields
// an empty document, not an error.
func (a *Assembler) Assemble(source Source) (string, error) {
	entries, err := source()
	if err != nil {
		return "", err
	}

	if a.sniff {
		kept := entries[:0:0]
		for _, e := range entries {
			if scraped.IsHTMLContent(e.Content) {
				kept = append(kept, e)
			}
		}
		entries = kept
	}

	if len(a.prefixes) > 0 && len(a.prefixes) != len(entries) {
		return "", scraped.Errorf(scraped.EINVALID,
			"prefix count mismatch: %d prefixes for %d contents", len(a.prefixes), len(entries))
	}

	var blocks []string
	for i, e := range entries {
		block, ok := a.convertEntry(e)
		if !ok {
			continue
		}
		if len(a.prefixes) > 0 {
			block = a.prefixes[i] + "\n" + block
		}
		blocks = append(blocks, block)
	}

	return strings.Join(blocks, a.separator), nil
}

// AssembleToFile is Assemble with the result written to path.
// Returns the path it wrote to.
func (a *Assembler) AssembleToFile(source Source, path string) (string, error) {
	doc, err := a.Assemble(source)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// convertEntry decodes and converts one entry. The bool result is
// false if the entry had to be skipped.
func (a *Assembler) convertEntry(e Entry) (string, bool) {
	text, err := decodeHTML(e.Content)
	if err != nil {
		a.logger.Warn("skipping content that failed to decode", "name", e.Name, "err", err)
		return "", false
	}

	if a.extractor != nil {
		extracted, err := a.extractor.Extract(text)
		if err != nil {
			a.logger.Warn("skipping content that failed extraction", "name", e.Name, "err", err)
			return "", false
		}
		text = extracted.ContentHTML
	}

	markdown, err := a.converter.Convert(text)
	if err != nil {
		a.logger.Warn("skipping content that failed conversion", "name", e.Name, "err", err)
		return "", false
	}
	return markdown, true
}

// decodeHTML decodes bytes permissively. The charset is detected from
// the content; bytes that still fail to decode are replaced rather
// than aborting the batch.
func decodeHTML(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}

	enc, _, certain := charset.DetermineEncoding(b, "")
	if certain || enc != nil {
		decoded, _, err := transform.Bytes(enc.NewDecoder(), b)
		if err == nil && utf8.Valid(decoded) {
			return string(decoded), nil
		}
	}

	return strings.ToValidUTF8(string(b), string(utf8.RuneError)), nil
}
