package ltxtoc

// AuditHeading describes one marker heading found in a processed document.
type AuditHeading struct {
	Level int    `json:"level"`
	ID    string `json:"id"`
	Text  string `json:"text"`
}

// AuditReport summarizes the anchor health of a processed document.
type AuditReport struct {
	Headings []AuditHeading `json:"headings"`

	// DuplicateIDs lists every id attribute value used more than once.
	DuplicateIDs []string `json:"duplicateIds,omitempty"`

	// Unlabeled lists the text of marker headings without an id.
	Unlabeled []string `json:"unlabeled,omitempty"`

	// BrokenLinks lists table of contents hrefs with no matching id.
	BrokenLinks []string `json:"brokenLinks,omitempty"`
}

// OK reports whether the audit found no problems.
func (r *AuditReport) OK() bool {
	return len(r.DuplicateIDs) == 0 && len(r.Unlabeled) == 0 && len(r.BrokenLinks) == 0
}

// Auditor inspects a processed document.
type Auditor interface {
	// Audit parses html and reports its headings and anchor problems.
	// Returns EINVALID if html cannot be parsed.
	Audit(html string) (*AuditReport, error)
}
