package crawl

import (
	"container/heap"
	"strings"
	"sync"

	"github.com/fwojciec/scraped"
	"github.com/fwojciec/scraped/bloom"
)

// Compile-time interface verification.
var _ scraped.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory crawl worklist ordered breadth-first by
// depth, with Bloom filter deduplication. It is safe for concurrent
// use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Set
	queue *entryHeap
	seq   uint64
}

// NewFrontier creates a Frontier sized for n expected URLs with the
// given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	h := &entryHeap{}
	heap.Init(h)
	return &Frontier{
		seen:  bloom.NewSet(n, fpRate),
		queue: h,
	}
}

// Push adds an entry to the frontier.
// Returns false if the URL has already been seen. URL fragments are
// stripped first, so URLs differing only by fragment are duplicates.
func (f *Frontier) Push(entry scraped.FrontierEntry) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	entry.URL = stripFragment(entry.URL)

	if f.seen.Contains(entry.URL) {
		return false
	}
	f.seen.Add(entry.URL)

	f.seq++
	heap.Push(f.queue, heapEntry{FrontierEntry: entry, seq: f.seq})
	return true
}

// Pop returns the next entry, shallowest depth first and FIFO within
// a depth. The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (scraped.FrontierEntry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.queue.Len() == 0 {
		return scraped.FrontierEntry{}, false
	}
	e, _ := heap.Pop(f.queue).(heapEntry)
	return e.FrontierEntry, true
}

// Len returns the number of entries in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queue.Len()
}

// Seen returns true if the URL has been queued or processed.
// URL fragments are stripped before checking.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Contains(stripFragment(rawURL))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}

// heapEntry pairs a frontier entry with an insertion sequence number
// so ordering within a depth is stable.
type heapEntry struct {
	scraped.FrontierEntry
	seq uint64
}

// entryHeap implements heap.Interface. Shallower entries are popped
// first; ties break by insertion order.
type entryHeap []heapEntry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].Depth != h[j].Depth {
		return h[i].Depth < h[j].Depth
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) {
	e, _ := x.(heapEntry)
	*h = append(*h, e)
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
