package ltxtoc_test

import (
	"slices"
	"testing"

	"github.com/fwojciec/ltxtoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadings(t *testing.T) {
	t.Parallel()

	t.Run("finds marker headings of levels 2 to 4", func(t *testing.T) {
		t.Parallel()

		doc := `<h1 class="ltx_title">Title</h1>
<h2 class="ltx_title ltx_title_section">One</h2>
<h3 class="ltx_title ltx_title_subsection">Two</h3>
<h4 class="ltx_title ltx_title_subsubsection">Three</h4>
<h5 class="ltx_title">Four</h5>`

		headings := slices.Collect(ltxtoc.Headings(doc))

		require.Len(t, headings, 3)
		assert.Equal(t, 2, headings[0].Level)
		assert.Equal(t, "One", headings[0].Content)
		assert.Equal(t, 3, headings[1].Level)
		assert.Equal(t, 4, headings[2].Level)
		assert.Equal(t, "ltx_title ltx_title_subsubsection", headings[2].Class)
	})

	t.Run("ignores headings without the marker", func(t *testing.T) {
		t.Parallel()

		doc := `<h2 class="other">A</h2><h2>B</h2><h2 class="ltx_titles">C</h2>`

		headings := slices.Collect(ltxtoc.Headings(doc))

		assert.Empty(t, headings)
	})

	t.Run("captures multi-line content with nested tags", func(t *testing.T) {
		t.Parallel()

		doc := "<h2 class=\"ltx_title ltx_title_section\">\n<span class=\"ltx_tag\">1 </span>Intro\n<em>duction</em></h2>"

		headings := slices.Collect(ltxtoc.Headings(doc))

		require.Len(t, headings, 1)
		assert.Equal(t, "\n<span class=\"ltx_tag\">1 </span>Intro\n<em>duction</em>", headings[0].Content)
		assert.Equal(t, "1 Intro duction", headings[0].Text())
		assert.Equal(t, 0, headings[0].Start)
		assert.Equal(t, len(doc), headings[0].End)
	})

	t.Run("stops content at the first closing tag of the same level", func(t *testing.T) {
		t.Parallel()

		doc := `<h2 class="ltx_title">A <h3>x</h3> B</h2> tail </h2>`

		headings := slices.Collect(ltxtoc.Headings(doc))

		require.Len(t, headings, 1)
		assert.Equal(t, "A <h3>x</h3> B", headings[0].Content)
	})

	t.Run("tolerates attribute order and case", func(t *testing.T) {
		t.Parallel()

		doc := `<H3 data-x="1" CLASS='ltx_title ltx_title_subsection' lang="en">Body</H3>`

		headings := slices.Collect(ltxtoc.Headings(doc))

		require.Len(t, headings, 1)
		assert.Equal(t, 3, headings[0].Level)
		assert.Equal(t, "ltx_title ltx_title_subsection", headings[0].Class)
		assert.Equal(t, ` data-x="1" CLASS='ltx_title ltx_title_subsection' lang="en"`, headings[0].Attrs)
		assert.Equal(t, len(`<H3 data-x="1" CLASS='ltx_title ltx_title_subsection'`), headings[0].InsertAt)
	})

	t.Run("matches marker regardless of case", func(t *testing.T) {
		t.Parallel()

		doc := `<h2 class="LTX_TITLE ltx_title_section">Upper</h2>`

		headings := slices.Collect(ltxtoc.Headings(doc))

		require.Len(t, headings, 1)
		assert.Equal(t, "Upper", headings[0].Content)
	})

	t.Run("reports existing id", func(t *testing.T) {
		t.Parallel()

		doc := `<h2 class="ltx_title" id="S1">A</h2><h2 id="" class="ltx_title">B</h2>`

		headings := slices.Collect(ltxtoc.Headings(doc))

		require.Len(t, headings, 2)
		assert.Equal(t, "S1", headings[0].ID)
		assert.Empty(t, headings[1].ID)
	})

	t.Run("skips opening tag without closing tag", func(t *testing.T) {
		t.Parallel()

		doc := `<h3 class="ltx_title">never closed <h2 class="ltx_title">Real</h2>`

		headings := slices.Collect(ltxtoc.Headings(doc))

		require.Len(t, headings, 1)
		assert.Equal(t, 2, headings[0].Level)
		assert.Equal(t, "Real", headings[0].Content)
	})

	t.Run("stops early when consumer breaks", func(t *testing.T) {
		t.Parallel()

		doc := `<h2 class="ltx_title">A</h2><h2 class="ltx_title">B</h2>`

		var seen []string
		for h := range ltxtoc.Headings(doc) {
			seen = append(seen, h.Content)
			break
		}

		assert.Equal(t, []string{"A"}, seen)
	})
}

func TestScanner_CustomMarker(t *testing.T) {
	t.Parallel()

	doc := `<h2 class="ltx_title">A</h2><h2 class="doc-title">B</h2>`

	headings := slices.Collect(ltxtoc.NewScanner("doc-title").Headings(doc))

	require.Len(t, headings, 1)
	assert.Equal(t, "B", headings[0].Content)
}

func TestExistingIDs(t *testing.T) {
	t.Parallel()

	doc := `<div id="a"><p data-id="skip" ID='b'>x</p><span id="">y</span><a id="c">z</a><i id=d>w</i></div>`

	assert.Equal(t, []string{"a", "b", "c", "d"}, ltxtoc.ExistingIDs(doc))
}

func TestHeadingText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "plain", content: "Intro", want: "Intro"},
		{name: "nested tags", content: `<span class="ltx_tag">2</span>Method<sup>*</sup>`, want: "2 Method *"},
		{name: "newlines and tabs", content: "\n\tA\n\n  B  \n", want: "A B"},
		{name: "only tags", content: "<br/><img src=\"x\">", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ltxtoc.HeadingText(tt.content))
		})
	}
}
