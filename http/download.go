package http

import (
	"context"
	"mime"
	"strings"

	"github.com/fwojciec/scraped"
)

// DownloadOptions configures Download.
type DownloadOptions struct {
	// Fetcher performs the GET. Defaults to a plain NewFetcher().
	Fetcher scraped.Fetcher

	// KeyForURL derives the sink key from the URL.
	// Defaults to the URL with scheme stripped and slashes flattened.
	KeyForURL func(url string) string

	// MIMEExtensions overrides the extension chosen for a MIME type.
	// Consulted before the platform MIME database.
	MIMEExtensions map[string]string

	// ExtensionPrefix is inserted before a content-type-derived
	// extension, marking it as guessed from headers rather than
	// present in the URL. Empty disables the marker.
	ExtensionPrefix string
}

// Download fetches a single URL and puts its body into the sink under
// a key derived from the URL, extended with an extension guessed from
// the response Content-Type.
func Download(ctx context.Context, url string, sink scraped.PageSink, opts DownloadOptions) (string, error) {
	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = NewFetcher()
	}
	keyFor := opts.KeyForURL
	if keyFor == nil {
		keyFor = URLToKey
	}

	resp, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	key := keyFor(url)
	if ext := extensionForContentType(resp.ContentType(), opts.MIMEExtensions); ext != "" {
		key += opts.ExtensionPrefix + ext
	}

	if err := sink.Put(key, resp.Body); err != nil {
		return "", err
	}
	return key, nil
}

// URLToKey converts a URL to a flat key: scheme stripped, slashes
// replaced by double underscores.
func URLToKey(url string) string {
	url = strings.TrimSuffix(url, "/")
	url = strings.TrimPrefix(url, "https://")
	url = strings.TrimPrefix(url, "http://")
	return strings.ReplaceAll(url, "/", "__")
}

// extensionForContentType guesses a file extension for a MIME type.
// The custom map wins over the platform MIME database.
func extensionForContentType(contentType string, custom map[string]string) string {
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	if ext, ok := custom[mediaType]; ok {
		return ext
	}
	exts, err := mime.ExtensionsByType(mediaType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	return exts[0]
}
