package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/scraped/bloom"
	"github.com/stretchr/testify/assert"
)

func TestSet_AddAndContains(t *testing.T) {
	t.Parallel()

	s := bloom.NewSet(1000, 0.01)

	assert.False(t, s.Contains("https://example.com/page"))

	s.Add("https://example.com/page")

	assert.True(t, s.Contains("https://example.com/page"))
}

func TestSet_NoFalseNegatives(t *testing.T) {
	t.Parallel()

	s := bloom.NewSet(10000, 0.01)

	for i := 0; i < 1000; i++ {
		s.Add(fmt.Sprintf("https://example.com/page/%d", i))
	}

	for i := 0; i < 1000; i++ {
		assert.True(t, s.Contains(fmt.Sprintf("https://example.com/page/%d", i)))
	}
}

func TestSet_ApproxLen(t *testing.T) {
	t.Parallel()

	s := bloom.NewSet(10000, 0.01)

	for i := 0; i < 100; i++ {
		s.Add(fmt.Sprintf("https://example.com/%d", i))
	}

	n := s.ApproxLen()
	assert.InDelta(t, 100, float64(n), 10)
}
