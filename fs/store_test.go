package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/scraped"
	"github.com/fwojciec/scraped/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryStore_Save_writes_body_at_derived_path(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := fs.NewDirectoryStore(root, true)

	relPath, err := store.Save(context.Background(), &scraped.Page{
		URL:  "https://example.com/docs/intro",
		Body: []byte("<html>intro</html>"),
	})

	require.NoError(t, err)
	assert.Equal(t, "example.com/docs/intro", relPath)

	data, err := os.ReadFile(filepath.Join(root, "example.com", "docs", "intro"))
	require.NoError(t, err)
	assert.Equal(t, []byte("<html>intro</html>"), data)
}

func TestDirectoryStore_Save_overwrites_existing_file(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := fs.NewDirectoryStore(root, true)
	page := &scraped.Page{URL: "https://example.com/page", Body: []byte("first")}

	_, err := store.Save(context.Background(), page)
	require.NoError(t, err)

	page.Body = []byte("second")
	relPath, err := store.Save(context.Background(), page)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(relPath)))
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data, "last write wins")
}

func TestDirectoryStore_Save_missing_dir_without_create_flag(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := fs.NewDirectoryStore(root, false)

	_, err := store.Save(context.Background(), &scraped.Page{
		URL:  "https://example.com/docs/deep/page",
		Body: []byte("x"),
	})

	require.Error(t, err)
	assert.Equal(t, scraped.ENOTFOUND, scraped.ErrorCode(err))
}

func TestDirectoryStore_Save_existing_dir_without_create_flag(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "example.com", "docs"), 0755))

	store := fs.NewDirectoryStore(root, false)
	relPath, err := store.Save(context.Background(), &scraped.Page{
		URL:  "https://example.com/docs/page",
		Body: []byte("x"),
	})

	require.NoError(t, err)
	assert.Equal(t, "example.com/docs/page", relPath)
}

func TestDirectoryStore_Save_invalid_URL(t *testing.T) {
	t.Parallel()

	store := fs.NewDirectoryStore(t.TempDir(), true)

	_, err := store.Save(context.Background(), &scraped.Page{URL: "not a url"})

	require.Error(t, err)
	assert.Equal(t, scraped.EINVALID, scraped.ErrorCode(err))
}

func TestDirectorySink_Put_creates_parents(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	sink := fs.NewDirectorySink(root)

	err := sink.Put("a/b/c.md", []byte("content"))

	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(root, "a", "b", "c.md"))
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), data)
}
