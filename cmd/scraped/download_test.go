package main_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/scraped"
	main "github.com/fwojciec/scraped/cmd/scraped"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdDownload(t *testing.T) {
	t.Parallel()

	pages := map[string]string{
		"https://example.test/":           `<html><body><a href="/docs/intro">intro</a></body></html>`,
		"https://example.test/docs/intro": `<html><body><p>intro text</p></body></html>`,
	}

	t.Run("persists pages under host-derived paths", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(siteFetcher(pages), stdout, stderr)
		rootDir := t.TempDir()

		cmd := &main.DownloadCmd{
			URL:           "https://example.test/",
			Depth:         1,
			RootDir:       rootDir,
			MkMissingDirs: true,
		}
		err := cmd.Run(deps)

		require.NoError(t, err)

		index, err := os.ReadFile(filepath.Join(rootDir, "example.test", "index.html"))
		require.NoError(t, err)
		assert.Contains(t, string(index), "intro")

		intro, err := os.ReadFile(filepath.Join(rootDir, "example.test", "docs", "intro"))
		require.NoError(t, err)
		assert.Contains(t, string(intro), "intro text")

		assert.Contains(t, stdout.String(), "Fetched 2 pages")
	})

	t.Run("missing root directory aborts when directory creation is off", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(siteFetcher(pages), stdout, stderr)

		cmd := &main.DownloadCmd{
			URL:     "https://example.test/",
			Depth:   1,
			RootDir: filepath.Join(t.TempDir(), "absent"),
		}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, scraped.ENOTFOUND, scraped.ErrorCode(err))
	})
}
