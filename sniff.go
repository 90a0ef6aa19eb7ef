package scraped

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// htmlTagPattern matches common HTML opening tags and the comment
// opener. Intentionally a heuristic, not a parser: false positives at
// the edges (e.g. HTML quoted inside plain text) are acceptable.
var htmlTagPattern = regexp.MustCompile(
	`(?i)<(html|head|body|title|meta|link|script|style|div|span|p|a|img|table|tr` +
		`|td|ul|ol|li|h1|h2|h3|h4|h5|h6|br|hr|!--)`,
)

// IsHTMLContent reports whether the content looks like HTML.
// Bytes are decoded permissively; invalid sequences are replaced and
// never cause an error.
func IsHTMLContent(content []byte) bool {
	return htmlTagPattern.MatchString(decodePermissive(content))
}

// IsHTMLString is IsHTMLContent for string input.
func IsHTMLString(content string) bool {
	return htmlTagPattern.MatchString(content)
}

// decodePermissive converts bytes to a string, replacing invalid
// UTF-8 sequences with the replacement rune.
func decodePermissive(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}
