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

func TestCmdBatch(t *testing.T) {
	t.Parallel()

	pages := map[string]string{
		"https://good.test/": `<html><body><p>good content</p></body></html>`,
	}

	t.Run("writes one document per site and reports failures", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(siteFetcher(pages), stdout, stderr)
		saveDir := t.TempDir()

		cmd := &main.BatchCmd{
			Sites:       []string{"good=https://good.test/", "bad=https://bad.test/"},
			SaveDir:     saveDir,
			Depth:       1,
			Concurrency: 2,
		}
		err := cmd.Run(deps)

		require.NoError(t, err, "per-site failures must not abort the batch")

		content, err := os.ReadFile(filepath.Join(saveDir, "good.md"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "good content")

		_, err = os.Stat(filepath.Join(saveDir, "bad.md"))
		assert.True(t, os.IsNotExist(err), "failed site should not produce a document")

		assert.Contains(t, stdout.String(), "Failed sites:")
		assert.Contains(t, stdout.String(), "bad=https://bad.test/")
	})

	t.Run("missing save directory is a configuration error", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(siteFetcher(pages), stdout, stderr)

		cmd := &main.BatchCmd{
			Sites:   []string{"good=https://good.test/"},
			SaveDir: filepath.Join(t.TempDir(), "absent"),
			Depth:   1,
		}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, scraped.ENOTFOUND, scraped.ErrorCode(err))
	})

	t.Run("rejects malformed site pairs", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(siteFetcher(pages), stdout, stderr)

		cmd := &main.BatchCmd{
			Sites:   []string{"no-url-here"},
			SaveDir: t.TempDir(),
			Depth:   1,
		}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, scraped.EINVALID, scraped.ErrorCode(err))
	})
}
