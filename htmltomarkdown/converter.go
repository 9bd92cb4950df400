// Package htmltomarkdown renders the table of contents as a Markdown
// outline for the --outline export.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/ltxtoc"
)

// Ensure Converter implements ltxtoc.Converter at compile time.
var _ ltxtoc.Converter = (*Converter)(nil)

// Converter turns the titled ToC list produced by ltxtoc.Outline into
// CommonMark: the title becomes an ATX heading and every entry a list item
// linking to its #fragment, indented by heading depth.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a Converter. Only the base and CommonMark plugins
// are loaded; a table of contents has no tables or other extended syntax.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert renders outline HTML as Markdown ending in exactly one newline,
// so the exported file is a well-formed text file.
// Returns EINVALID for blank input.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", ltxtoc.Errorf(ltxtoc.EINVALID, "empty outline HTML")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(md) + "\n", nil
}
