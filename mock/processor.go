package mock

import "github.com/fwojciec/ltxtoc"

var _ ltxtoc.Processor = (*Processor)(nil)

// Processor is a mock implementation of ltxtoc.Processor.
type Processor struct {
	ProcessFn func(html string) *ltxtoc.Result
}

func (p *Processor) Process(html string) *ltxtoc.Result {
	return p.ProcessFn(html)
}
