package scraped

// FrontierEntry is a (URL, depth) pair awaiting a fetch.
type FrontierEntry struct {
	URL   string
	Depth int
}

// URLFrontier manages the crawl worklist with deduplication.
// Entries are ordered breadth-first by depth.
type URLFrontier interface {
	// Push adds an entry to the frontier.
	// Returns false if the URL has already been seen.
	Push(entry FrontierEntry) bool

	// Pop returns the next entry, shallowest depth first.
	// Returns false if the frontier is empty.
	Pop() (FrontierEntry, bool)

	// Len returns the number of entries in the queue.
	Len() int

	// Seen returns true if the URL has been queued or processed.
	Seen(url string) bool
}
