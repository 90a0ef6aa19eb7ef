package scraped_test

import (
	"regexp"
	"testing"

	"github.com/fwojciec/scraped"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrawlRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     scraped.CrawlRequest
		wantErr bool
	}{
		{
			name: "valid request",
			req:  scraped.CrawlRequest{StartURL: "https://example.com", MaxDepth: 2},
		},
		{
			name:    "empty start URL",
			req:     scraped.CrawlRequest{},
			wantErr: true,
		},
		{
			name:    "start URL without scheme",
			req:     scraped.CrawlRequest{StartURL: "example.com/docs"},
			wantErr: true,
		},
		{
			name:    "negative depth",
			req:     scraped.CrawlRequest{StartURL: "https://example.com", MaxDepth: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, scraped.EINVALID, scraped.ErrorCode(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCrawlRequest_Domains(t *testing.T) {
	t.Parallel()

	t.Run("defaults to start URL host", func(t *testing.T) {
		t.Parallel()

		req := scraped.CrawlRequest{StartURL: "https://example.com/docs"}
		domains, err := req.Domains()
		require.NoError(t, err)
		assert.Equal(t, []string{"example.com"}, domains)
	})

	t.Run("explicit override wins", func(t *testing.T) {
		t.Parallel()

		req := scraped.CrawlRequest{
			StartURL:       "https://example.com",
			AllowedDomains: []string{"example.com", "docs.example.com"},
		}
		domains, err := req.Domains()
		require.NoError(t, err)
		assert.Equal(t, []string{"example.com", "docs.example.com"}, domains)
	})
}

func TestCrawlRequest_Allows(t *testing.T) {
	t.Parallel()

	domains := []string{"example.com"}

	t.Run("confines to allowed domains", func(t *testing.T) {
		t.Parallel()

		req := scraped.CrawlRequest{StartURL: "https://example.com"}
		assert.True(t, req.Allows("https://example.com/page", domains))
		assert.False(t, req.Allows("https://other.com/page", domains))
	})

	t.Run("applies URL filter", func(t *testing.T) {
		t.Parallel()

		req := scraped.CrawlRequest{
			StartURL: "https://example.com",
			Filter: &scraped.URLFilter{
				Include: []*regexp.Regexp{regexp.MustCompile(`/docs/`)},
			},
		}
		assert.True(t, req.Allows("https://example.com/docs/intro", domains))
		assert.False(t, req.Allows("https://example.com/blog/post", domains))
	})

	t.Run("applies filter func after filter", func(t *testing.T) {
		t.Parallel()

		req := scraped.CrawlRequest{
			StartURL:   "https://example.com",
			FilterFunc: func(url string) bool { return url != "https://example.com/skip" },
		}
		assert.True(t, req.Allows("https://example.com/keep", domains))
		assert.False(t, req.Allows("https://example.com/skip", domains))
	})
}
