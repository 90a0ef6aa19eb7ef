package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/scraped"
)

// Ensure DirectoryStore implements scraped.PageStore at compile time.
var _ scraped.PageStore = (*DirectoryStore)(nil)

// DirectoryStore persists pages under a root directory at paths
// derived from their URLs. Writes overwrite: last fetch wins.
type DirectoryStore struct {
	root          string
	mkMissingDirs bool
}

// NewDirectoryStore creates a DirectoryStore rooted at root.
// When mkMissingDirs is false, saving a page whose parent directory
// does not exist fails with ENOTFOUND - the crawl engine treats that
// as a configuration error and aborts the run.
func NewDirectoryStore(root string, mkMissingDirs bool) *DirectoryStore {
	return &DirectoryStore{root: root, mkMissingDirs: mkMissingDirs}
}

// Save writes the page body to its URL-derived path and returns the
// path relative to the store root.
func (s *DirectoryStore) Save(ctx context.Context, page *scraped.Page) (string, error) {
	relPath, err := URLToPath(page.URL)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(s.root, filepath.FromSlash(relPath))
	dir := filepath.Dir(fullPath)

	if s.mkMissingDirs {
		// MkdirAll is idempotent, so concurrent savers racing on the
		// same parent directory are fine.
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	} else if _, err := os.Stat(dir); os.IsNotExist(err) {
		return "", scraped.Errorf(scraped.ENOTFOUND, "directory (needed to save scrapes) not found: %s", dir)
	}

	if err := os.WriteFile(fullPath, page.Body, 0644); err != nil {
		return "", err
	}
	return relPath, nil
}

// Ensure DirectorySink implements scraped.PageSink at compile time.
var _ scraped.PageSink = (*DirectorySink)(nil)

// DirectorySink stores content as files under a directory, keyed by
// relative file name.
type DirectorySink struct {
	root string
}

// NewDirectorySink creates a DirectorySink rooted at root.
func NewDirectorySink(root string) *DirectorySink {
	return &DirectorySink{root: root}
}

// Put writes value to root/key, creating parent directories as needed.
func (s *DirectorySink) Put(key string, value []byte) error {
	fullPath := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, value, 0644)
}
