// Package fs provides file-based storage for crawled pages.
package fs

import (
	"net/url"
	"path"
	"strings"

	"github.com/fwojciec/scraped"
)

// indexFilename names a page whose URL path has no file component.
const indexFilename = "index.html"

// URLToPath converts a URL to a relative file path, treating path
// slashes as directory separators and rooting the layout at the host.
// The mapping is deterministic: the same URL always yields the same
// path, and distinct URLs do not collide in practice.
//
// Example: https://example.com/docs/api → example.com/docs/api
// Example: https://example.com/docs/ → example.com/docs/index.html
//
// A site serving both /docs and /docs/a needs "docs" as a file and as
// a directory; whichever page is saved first wins and the other save
// fails for that page only. Sites that use trailing slashes for
// sections do not hit this.
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", scraped.Errorf(scraped.EINVALID, "cannot map URL to path: %q", rawURL)
	}

	p := u.EscapedPath()

	// Root or trailing slash names the directory's index file.
	if p == "" || p == "/" {
		return path.Join(u.Host, indexFilename), nil
	}
	if strings.HasSuffix(p, "/") {
		p += indexFilename
	}

	// Clean, and refuse to escape the host directory.
	p = path.Clean("/" + p)

	return path.Join(u.Host, p), nil
}
