// Package goquery inspects processed documents with a real HTML parser.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ltxtoc"
	"golang.org/x/net/html"
)

var _ ltxtoc.Auditor = (*Auditor)(nil)

// Auditor checks the anchors of a processed document by parsing it into a
// full DOM.
type Auditor struct {
	marker string
}

// NewAuditor creates a new Auditor for headings carrying the marker class.
func NewAuditor(marker string) *Auditor {
	if marker == "" {
		marker = ltxtoc.DefaultMarker
	}
	return &Auditor{marker: marker}
}

// Audit parses src and reports its marker headings, duplicate ids, marker
// headings without an id and table of contents links without a target.
func (a *Auditor) Audit(src string) (*ltxtoc.AuditReport, error) {
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, ltxtoc.Errorf(ltxtoc.EINVALID, "failed to parse HTML: %v", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	report := &ltxtoc.AuditReport{}

	counts := make(map[string]int)
	var order []string
	doc.Find("[id]").Each(func(_ int, sel *goquery.Selection) {
		id, _ := sel.Attr("id")
		if id == "" {
			return
		}
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
	})
	for _, id := range order {
		if counts[id] > 1 {
			report.DuplicateIDs = append(report.DuplicateIDs, id)
		}
	}

	doc.Find("h2, h3, h4").Each(func(_ int, sel *goquery.Selection) {
		if !sel.HasClass(a.marker) {
			return
		}
		text := strings.Join(strings.Fields(sel.Text()), " ")
		id, _ := sel.Attr("id")
		if id == "" {
			report.Unlabeled = append(report.Unlabeled, text)
			return
		}
		report.Headings = append(report.Headings, ltxtoc.AuditHeading{
			Level: headingLevel(goquery.NodeName(sel)),
			ID:    id,
			Text:  text,
		})
	})

	doc.Find(`nav.toc a[href^="#"]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if counts[strings.TrimPrefix(href, "#")] == 0 {
			report.BrokenLinks = append(report.BrokenLinks, href)
		}
	})

	return report, nil
}

func headingLevel(tag string) int {
	switch tag {
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	}
	return 0
}
