// Package bloom provides URL deduplication using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Set tracks URLs that have been seen, with a bounded false positive
// rate. False negatives do not occur, so a URL reported unseen really
// has not been added.
type Set struct {
	f *bloom.BloomFilter
}

// NewSet creates a Set sized for n expected URLs with the given false
// positive rate.
func NewSet(n uint, fpRate float64) *Set {
	return &Set{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a URL as seen.
func (s *Set) Add(url string) {
	s.f.AddString(url)
}

// Contains reports whether the URL might have been added.
func (s *Set) Contains(url string) bool {
	return s.f.TestString(url)
}

// ApproxLen returns the approximate number of URLs added.
func (s *Set) ApproxLen() uint {
	return uint(s.f.ApproximatedSize())
}
