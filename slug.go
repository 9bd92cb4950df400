package ltxtoc

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FallbackSlug is used when heading text yields no usable characters.
const FallbackSlug = "section"

// Slugify converts heading text into a URL-fragment-safe slug.
//
// Text is NFKD-decomposed and stripped of combining marks, lowercased,
// reduced to letters, digits, whitespace, underscores and hyphens, and then
// every run of whitespace, underscores or hyphens becomes a single hyphen.
func Slugify(text string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	decomposed, _, err := transform.String(t, text)
	if err != nil {
		decomposed = text
	}

	var sb strings.Builder
	sep := false
	for _, r := range strings.ToLower(decomposed) {
		switch {
		case unicode.IsSpace(r) || r == '_' || r == '-':
			sep = true
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			if sep && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			sep = false
			sb.WriteRune(r)
		}
	}

	if sb.Len() == 0 {
		return FallbackSlug
	}
	return sb.String()
}

// SectionPrefix returns the id prefix for a LaTeXML title class list:
// "sec-", "subsec-", "subsubsec-", or "" when no depth marker is present.
func SectionPrefix(class string) string {
	return sectionPrefix(DefaultMarker, class)
}

func sectionPrefix(marker, class string) string {
	switch {
	case strings.Contains(class, marker+"_section"):
		return "sec-"
	case strings.Contains(class, marker+"_subsection"):
		return "subsec-"
	case strings.Contains(class, marker+"_subsubsection"):
		return "subsubsec-"
	}
	return ""
}
