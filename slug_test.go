package ltxtoc_test

import (
	"testing"

	"github.com/fwojciec/ltxtoc"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "already clean", text: "already-clean", want: "already-clean"},
		{name: "strips accents", text: "Résumé Café", want: "resume-cafe"},
		{name: "strips umlaut", text: "Überblick", want: "uberblick"},
		{name: "degenerate text falls back", text: "   !!!   ", want: "section"},
		{name: "empty text falls back", text: "", want: "section"},
		{name: "drops punctuation", text: "API Reference (v2.0)", want: "api-reference-v20"},
		{name: "collapses separators", text: "foo _ bar--baz", want: "foo-bar-baz"},
		{name: "trims hyphens", text: "-- Intro --", want: "intro"},
		{name: "keeps non-latin letters", text: "Введение в тему", want: "введение-в-тему"},
		{name: "compatibility decomposition", text: "ﬁnal ①", want: "final-1"},
		{name: "numbered heading", text: "1.2 Related Work", want: "12-related-work"},
		{name: "drops connector punctuation", text: "a‿b", want: "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ltxtoc.Slugify(tt.text))
		})
	}
}

func TestSectionPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		class string
		want  string
	}{
		{name: "section", class: "ltx_title ltx_title_section", want: "sec-"},
		{name: "subsection", class: "ltx_title ltx_title_subsection", want: "subsec-"},
		{name: "subsubsection", class: "ltx_title ltx_title_subsubsection", want: "subsubsec-"},
		{name: "no depth marker", class: "ltx_title ltx_title_paragraph", want: ""},
		{name: "section wins over subsection", class: "ltx_title_subsection ltx_title_section", want: "sec-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ltxtoc.SectionPrefix(tt.class))
		})
	}
}
