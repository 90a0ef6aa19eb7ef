package scraped

// PageSink accepts content under a key. It is the closed set of
// destinations for the generic "acquire content into a store"
// helper: a directory (fs.DirectorySink), an in-memory map, or an
// arbitrary function.
type PageSink interface {
	Put(key string, value []byte) error
}

// MapSink stores content in an in-memory map.
type MapSink map[string][]byte

// Put implements PageSink.
func (m MapSink) Put(key string, value []byte) error {
	m[key] = value
	return nil
}

// FuncSink adapts a function to the PageSink interface.
type FuncSink func(key string, value []byte) error

// Put implements PageSink.
func (f FuncSink) Put(key string, value []byte) error {
	return f(key, value)
}
