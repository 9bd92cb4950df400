package ltxtoc

import (
	"iter"
	"regexp"
	"strconv"
	"strings"
)

// DefaultMarker is the class token LaTeXML puts on every sectioning title.
const DefaultMarker = "ltx_title"

// Heading is a single heading element found in a document.
// Offsets index into the document the heading was scanned from.
type Heading struct {
	Level   int    // 2, 3 or 4
	Class   string // value of the class attribute
	Attrs   string // raw attribute text of the opening tag
	Content string // inner markup up to the matching closing tag
	ID      string // existing non-empty id attribute, if any

	Start int // offset of '<' of the opening tag
	End   int // offset just past the closing tag

	// InsertAt is the offset just past the class attribute, where a new
	// id attribute is written.
	InsertAt int
}

// Text returns the display text of the heading.
func (h Heading) Text() string {
	return HeadingText(h.Content)
}

var (
	openTagRE = regexp.MustCompile(`(?i)<h([2-4])(\s[^>]*)?>`)
	attrRE    = regexp.MustCompile(`([^\s"'>/=]+)(?:\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'=<>` + "`" + `]+)))?`)
	idAttrRE  = regexp.MustCompile(`(?i)\sid\s*=\s*(?:"([^"]+)"|'([^']+)'|([^\s"'=<>` + "`" + `]+))`)
	tagRE     = regexp.MustCompile(`<[^>]+>`)

	closeTagRE = map[int]*regexp.Regexp{
		2: regexp.MustCompile(`(?i)</h2>`),
		3: regexp.MustCompile(`(?i)</h3>`),
		4: regexp.MustCompile(`(?i)</h4>`),
	}
)

// Scanner finds marker headings in raw markup without building a DOM.
type Scanner struct {
	markerRE *regexp.Regexp
}

// NewScanner returns a Scanner matching headings whose class attribute
// contains marker as a whole word, ignoring case.
func NewScanner(marker string) *Scanner {
	return &Scanner{
		markerRE: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(marker) + `\b`),
	}
}

// Headings yields every marker heading of doc in document order.
func Headings(doc string) iter.Seq[Heading] {
	return NewScanner(DefaultMarker).Headings(doc)
}

// Headings yields every marker heading of doc in document order.
//
// Content runs non-greedily to the first closing tag of the same level.
// An opening tag with no closing tag after it is not a heading.
func (s *Scanner) Headings(doc string) iter.Seq[Heading] {
	return func(yield func(Heading) bool) {
		pos := 0
		for pos < len(doc) {
			loc := openTagRE.FindStringSubmatchIndex(doc[pos:])
			if loc == nil {
				return
			}
			start, openEnd := pos+loc[0], pos+loc[1]
			level, _ := strconv.Atoi(doc[pos+loc[2] : pos+loc[3]])

			var attrs string
			attrsAt := openEnd - 1
			if loc[4] >= 0 {
				attrs = doc[pos+loc[4] : pos+loc[5]]
				attrsAt = pos + loc[4]
			}

			h, ok := s.parseOpenTag(attrs, attrsAt)
			if ok {
				if closeLoc := closeTagRE[level].FindStringIndex(doc[openEnd:]); closeLoc != nil {
					h.Level = level
					h.Attrs = attrs
					h.Content = doc[openEnd : openEnd+closeLoc[0]]
					h.Start = start
					h.End = openEnd + closeLoc[1]
					if !yield(h) {
						return
					}
					pos = h.End
					continue
				}
			}
			pos = start + 1
		}
	}
}

// parseOpenTag inspects the attribute text of an opening tag. It reports
// false when the tag has no class attribute carrying the marker.
func (s *Scanner) parseOpenTag(attrs string, offset int) (Heading, bool) {
	var h Heading
	found := false
	for _, m := range attrRE.FindAllStringSubmatchIndex(attrs, -1) {
		name := strings.ToLower(attrs[m[2]:m[3]])
		value := attrValue(attrs, m)
		switch name {
		case "class":
			if found {
				continue
			}
			if !s.markerRE.MatchString(value) {
				return h, false
			}
			found = true
			h.Class = value
			h.InsertAt = offset + m[1]
		case "id":
			if h.ID == "" {
				h.ID = value
			}
		}
	}
	return h, found
}

func attrValue(attrs string, m []int) string {
	for g := 2; g <= 4; g++ {
		if m[2*g] >= 0 {
			return attrs[m[2*g]:m[2*g+1]]
		}
	}
	return ""
}

// ExistingIDs returns every non-empty id attribute value in doc, in order.
// Double-quoted, single-quoted and unquoted values are all recognized.
func ExistingIDs(doc string) []string {
	var ids []string
	for _, m := range idAttrRE.FindAllStringSubmatch(doc, -1) {
		for _, v := range m[1:] {
			if v != "" {
				ids = append(ids, v)
				break
			}
		}
	}
	return ids
}

// HeadingText strips nested tags from heading content and collapses
// whitespace runs, including newlines, into single spaces.
func HeadingText(content string) string {
	return strings.Join(strings.Fields(tagRE.ReplaceAllString(content, " ")), " ")
}
