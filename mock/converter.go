package mock

import "github.com/fwojciec/ltxtoc"

var _ ltxtoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of ltxtoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
