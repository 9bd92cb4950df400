package ltxtoc

import "strings"

// Result is the outcome of processing one document.
type Result struct {
	HTML    string     `json:"html"`
	Entries []TOCEntry `json:"entries"`

	// Assigned counts headings that received a new id.
	Assigned int `json:"assigned"`
	// Skipped counts marker headings left alone because they had an id.
	Skipped int `json:"skipped"`
}

// Processor transforms a document in memory.
type Processor interface {
	// Process assigns missing heading ids and inserts the table of contents.
	// It never fails; degenerate input degrades to fallbacks.
	Process(html string) *Result
}

// Ensure Transformer implements Processor at compile time.
var _ Processor = (*Transformer)(nil)

// Transformer is the default Processor.
type Transformer struct {
	scanner         *Scanner
	marker          string
	title           string
	includeExisting bool
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithTitle sets the heading text of the rendered table of contents.
func WithTitle(title string) Option {
	return func(t *Transformer) {
		t.title = title
	}
}

// WithMarker sets the class token identifying headings to process.
// Depth prefixes are derived from it as <marker>_section and so on.
func WithMarker(marker string) Option {
	return func(t *Transformer) {
		if marker != "" {
			t.marker = marker
		}
	}
}

// WithExistingInTOC lists headings that already carry an id in the table
// of contents. They are still never rewritten.
func WithExistingInTOC(include bool) Option {
	return func(t *Transformer) {
		t.includeExisting = include
	}
}

// NewTransformer returns a Transformer configured by opts.
func NewTransformer(opts ...Option) *Transformer {
	t := &Transformer{
		marker: DefaultMarker,
		title:  DefaultTitle,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.scanner = NewScanner(t.marker)
	return t
}

// Transform runs the default pipeline over html and returns the new document.
func Transform(html string) string {
	return NewTransformer().Process(html).HTML
}

// assignment is the state folded over the headings of one document.
type assignment struct {
	ids    *IDSet
	result *Result
}

// Process implements Processor.
func (t *Transformer) Process(html string) *Result {
	st := &assignment{
		ids:    NewIDSet(ExistingIDs(html)...),
		result: &Result{},
	}

	var b strings.Builder
	last := 0
	for h := range t.scanner.Headings(html) {
		b.WriteString(html[last:h.Start])
		b.WriteString(t.assign(st, h, html[h.Start:h.End]))
		last = h.End
	}
	b.WriteString(html[last:])

	st.result.HTML = InsertTOC(b.String(), RenderTOC(st.result.Entries, t.title))
	return st.result
}

// assign returns the replacement markup for h and records its ToC entry.
func (t *Transformer) assign(st *assignment, h Heading, raw string) string {
	if h.ID != "" {
		st.result.Skipped++
		if t.includeExisting {
			st.result.Entries = append(st.result.Entries, TOCEntry{Level: h.Level, ID: h.ID, Text: h.Text()})
		}
		return raw
	}

	text := h.Text()
	id := st.ids.Claim(sectionPrefix(t.marker, h.Class) + Slugify(text))
	st.result.Assigned++
	st.result.Entries = append(st.result.Entries, TOCEntry{Level: h.Level, ID: id, Text: text})

	at := h.InsertAt - h.Start
	return raw[:at] + ` id="` + id + `"` + raw[at:]
}
