package mock

import "github.com/fwojciec/ltxtoc"

var _ ltxtoc.Auditor = (*Auditor)(nil)

// Auditor is a mock implementation of ltxtoc.Auditor.
type Auditor struct {
	AuditFn func(html string) (*ltxtoc.AuditReport, error)
}

func (a *Auditor) Audit(html string) (*ltxtoc.AuditReport, error) {
	return a.AuditFn(html)
}
