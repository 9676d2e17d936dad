package mock

import "github.com/fwojciec/splice"

var _ splice.Converter = (*Converter)(nil)

// Converter is a mock implementation of splice.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
