package assemble

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/fwojciec/scraped"
)

// Entry is one named blob of content to assemble.
type Entry struct {
	Name    string
	Content []byte
}

// Source yields the entries to assemble, in order. A Source is
// consumed once per Assemble call.
type Source func() ([]Entry, error)

// FromFile reads a single file.
func FromFile(path string) Source {
	return FromFiles([]string{path})
}

// FromFiles reads the given files in order.
func FromFiles(paths []string) Source {
	return func() ([]Entry, error) {
		entries := make([]Entry, 0, len(paths))
		for _, p := range paths {
			content, err := os.ReadFile(p)
			if err != nil {
				return nil, err
			}
			entries = append(entries, Entry{Name: p, Content: content})
		}
		return entries, nil
	}
}

// FromDir recursively walks a directory and reads every regular file,
// in lexical walk order.
func FromDir(dir string) Source {
	return func() ([]Entry, error) {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, scraped.Errorf(scraped.ENOTFOUND, "directory not found: %s", dir)
		}
		if !info.IsDir() {
			return nil, scraped.Errorf(scraped.EINVALID, "not a directory: %s", dir)
		}

		var entries []Entry
		err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.Type().IsRegular() {
				return nil
			}
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			entries = append(entries, Entry{Name: path, Content: content})
			return nil
		})
		if err != nil {
			return nil, err
		}
		return entries, nil
	}
}

// FromEntries assembles in-memory content in the given order.
func FromEntries(entries []Entry) Source {
	return func() ([]Entry, error) {
		return entries, nil
	}
}

// FromMap assembles a name-to-content mapping. Go maps are unordered,
// so entries are sorted by name for deterministic output; use
// FromEntries to control ordering explicitly.
func FromMap(contents map[string][]byte) Source {
	return func() ([]Entry, error) {
		names := make([]string, 0, len(contents))
		for name := range contents {
			names = append(names, name)
		}
		sort.Strings(names)

		entries := make([]Entry, 0, len(names))
		for _, name := range names {
			entries = append(entries, Entry{Name: name, Content: contents[name]})
		}
		return entries, nil
	}
}
