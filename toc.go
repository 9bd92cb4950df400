package ltxtoc

import (
	"regexp"
	"strings"
)

// DefaultTitle is the heading rendered inside the table of contents.
const DefaultTitle = "Contents"

// TOCEntry is one line of the table of contents.
type TOCEntry struct {
	Level int    `json:"level"`
	ID    string `json:"id"`
	Text  string `json:"text"`
}

// RenderTOC renders entries as a nav block holding nested unordered lists.
// Nesting follows level changes exactly: a jump of several levels opens or
// closes several lists at once. Text and title are written verbatim.
// An empty entry list renders as "".
func RenderTOC(entries []TOCEntry, title string) string {
	if len(entries) == 0 {
		return ""
	}

	lines := []string{
		`<nav class="toc" aria-label="Table of contents">`,
		"<h2>" + title + "</h2>",
	}
	lines = append(lines, listLines(entries)...)
	lines[len(lines)-1] += "</nav>"

	return strings.Join(lines, "\n")
}

// RenderTOCList renders only the outer list of the table of contents.
func RenderTOCList(entries []TOCEntry) string {
	if len(entries) == 0 {
		return ""
	}
	return strings.Join(listLines(entries), "\n")
}

func listLines(entries []TOCEntry) []string {
	lines := []string{"<ul>"}

	base := entries[0].Level
	depth := base
	for _, e := range entries {
		for e.Level > depth {
			lines = append(lines, "<ul>")
			depth++
		}
		for e.Level < depth {
			lines = append(lines, "</ul>")
			depth--
		}
		lines = append(lines, `<li><a href="#`+e.ID+`">`+e.Text+`</a></li>`)
	}

	for depth > base {
		lines = append(lines, "</ul>")
		depth--
	}
	return append(lines, "</ul>")
}

var bodyOpenRE = regexp.MustCompile(`(?i)<body\b[^>]*>`)

// InsertTOC places toc right after the first opening body tag of doc, or
// prepends it when doc has no body tag. An empty toc leaves doc unchanged.
func InsertTOC(doc, toc string) string {
	if toc == "" {
		return doc
	}
	loc := bodyOpenRE.FindStringIndex(doc)
	if loc == nil {
		return toc + "\n" + doc
	}
	return doc[:loc[1]] + "\n" + toc + "\n" + doc[loc[1]:]
}
