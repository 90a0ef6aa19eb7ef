package scraped_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/scraped"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := scraped.Errorf(scraped.ENOTFOUND, "directory %q not found", "/tmp/missing")

	assert.Equal(t, scraped.ENOTFOUND, scraped.ErrorCode(err))
	assert.Equal(t, "directory \"/tmp/missing\" not found", scraped.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, scraped.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, scraped.EINTERNAL, scraped.ErrorCode(errors.New("boom")))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	inner := scraped.Errorf(scraped.EINVALID, "bad URL")
	wrapped := fmt.Errorf("fetching: %w", inner)

	assert.Equal(t, scraped.EINVALID, scraped.ErrorCode(wrapped))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, scraped.ErrorMessage(nil))
}
