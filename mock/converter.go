package mock

import "github.com/fwojciec/scraped"

var _ scraped.Converter = (*Converter)(nil)

// Converter is a mock implementation of scraped.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
