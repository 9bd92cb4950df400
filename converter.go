package ltxtoc

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// Used to export the rendered table of contents as an outline.
	Convert(html string) (string, error)
}

// Outline renders entries as a titled Markdown nested list using c.
// Returns "" without calling c when there are no entries.
func Outline(c Converter, entries []TOCEntry, title string) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}
	return c.Convert("<h1>" + title + "</h1>\n" + RenderTOCList(entries))
}
