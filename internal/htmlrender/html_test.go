package htmlrender

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zadoox/xmd/internal/config"
	"github.com/zadoox/xmd/internal/xmdparse"
)

func TestRender_SectionToHeading(t *testing.T) {
	doc := xmdparse.Parse("doc1", "# Intro\n\ntext here\n")
	out := Render(doc, config.Default())

	assert.Contains(t, out, "<h2>Intro</h2>")
	assert.Contains(t, out, "<p>text here</p>")
}

func TestRender_NestedHeadingLevel(t *testing.T) {
	doc := xmdparse.Parse("doc1", "# One\n\n## Two\n\n### Three\n\ndeep\n")
	out := Render(doc, config.Default())

	assert.Contains(t, out, "<h2>One</h2>")
	assert.Contains(t, out, "<h3>Two</h3>")
	assert.Contains(t, out, "<h4>Three</h4>")
}

func TestRender_EscapesHTMLSpecialCharacters(t *testing.T) {
	doc := xmdparse.Parse("doc1", "# A & B\n\ntext\n")
	out := Render(doc, config.Default())

	assert.Contains(t, out, "A &amp; B")
}

func TestRender_CodeBlockEscaped(t *testing.T) {
	doc := xmdparse.Parse("doc1", "```\n<script>\n```\n")
	out := Render(doc, config.Default())

	assert.Contains(t, out, "&lt;script&gt;")
}

// S1 from spec.md §8.
func TestRender_S1_HeadingAndParagraph(t *testing.T) {
	doc := xmdparse.Parse("doc1", "# Intro\n\nHello.\n")
	out := Render(doc, config.Default())

	assert.Contains(t, out, "<h2>Intro</h2><p>Hello.</p>")
}

// S2 from spec.md §8.
func TestRender_S2_TitleAuthorDate(t *testing.T) {
	doc := xmdparse.Parse("doc1", "@ T\n@^\n@= \n\nBody")
	out := Render(doc, config.Default())

	assert.Contains(t, out, `<h1 id="doc-title" class="doc-title">T</h1>`)
	assert.NotContains(t, out, `class="doc-author"`)
	assert.NotContains(t, out, `class="doc-date"`)
}

// S3's figure renders as an image, not a bare link (the known-scheme
// path shares mdinline with the LaTeX writer).
func TestRender_S3_KnownSchemeFigureRendersAsImage(t *testing.T) {
	src := `![Cap](zadoox-asset://img){#fig:demo align="right" width="33%" placement="inline"}Trailing` + "\n"
	doc := xmdparse.Parse("doc1", src)
	out := Render(doc, config.Default())

	assert.Contains(t, out, `<img src="zadoox-asset://img" alt="Cap">`)
	assert.NotContains(t, out, `<a href`)
}

// S4 from spec.md §8.
func TestRender_S4_FigureOnlyGrid(t *testing.T) {
	src := `::: cols=2 caption="G"` + "\n" +
		`![A](zadoox-asset://a){#fig:a width="50%"}` + "\n" +
		"|||\n" +
		`![B](zadoox-asset://b){#fig:b width="50%"}` + "\n" +
		":::\n"
	doc := xmdparse.Parse("doc1", src)
	out := Render(doc, config.Default())

	assert.Contains(t, out, `class="xmd-grid"`)
	assert.Contains(t, out, `class="grid-caption">G</div>`)
	assert.Contains(t, out, `<img src="zadoox-asset://a" alt="A">`)
	assert.Contains(t, out, `<img src="zadoox-asset://b" alt="B">`)
}

// S5 from spec.md §8.
func TestRender_S5_TableBorderStyling(t *testing.T) {
	src := `::: caption="R" label="tbl:r" borderColor="#6b7280" borderWidth="2"` + "\n" +
		"|L|C|R|\n" +
		"=\n" +
		"| A | B | C |\n" +
		"| --- | --- | --- |\n" +
		"-\n" +
		"| 1 | 2 | 3 |\n" +
		"=\n" +
		":::\n"
	doc := xmdparse.Parse("doc1", src)
	out := Render(doc, config.Default())

	assert.Contains(t, out, `class="xmd-table"`)
	assert.Contains(t, out, `<caption style="caption-side:top">R</caption>`)
	assert.Contains(t, out, "text-align:left")
	assert.Contains(t, out, "text-align:center")
	assert.Contains(t, out, "text-align:right")
	assert.Contains(t, out, "border-left:1px solid")
}
