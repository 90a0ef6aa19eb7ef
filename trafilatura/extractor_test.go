package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/scraped"
	"github.com/fwojciec/scraped/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Sample Page</title></head>
<body>
<nav><a href="/">Home</a><a href="/about">About</a></nav>
<main>
<article>
<h1>Sample Page</h1>
<p>This is the main content of the page. It has enough text to be
recognized as the primary article body by the extraction heuristics,
which prefer longer runs of prose over navigation chrome.</p>
<p>A second paragraph keeps the content region clearly dominant.</p>
</article>
</main>
<footer>Copyright 2026</footer>
</body>
</html>`

func TestExtractor_Extract_returns_main_content(t *testing.T) {
	t.Parallel()

	e := trafilatura.NewExtractor()

	result, err := e.Extract(samplePage)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "main content of the page")
	assert.NotContains(t, result.ContentHTML, "Copyright 2026")
}

func TestExtractor_Extract_empty_input(t *testing.T) {
	t.Parallel()

	e := trafilatura.NewExtractor()

	_, err := e.Extract("")

	require.Error(t, err)
	assert.Equal(t, scraped.EINVALID, scraped.ErrorCode(err))
}
