package mdinline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTML_AllSpans(t *testing.T) {
	got := ToHTML("**bold** and *italic* and `code` and [link](https://example.com)")
	assert.Equal(t,
		`<strong>bold</strong> and <em>italic</em> and <code>code</code> and <a href="https://example.com">link</a>`,
		got,
	)
}

func TestToHTML_EscapesLeafText(t *testing.T) {
	assert.Equal(t, "a &lt; b", ToHTML("a < b"))
}

func TestToHTML_PlainText(t *testing.T) {
	assert.Equal(t, "no markup here", ToHTML("no markup here"))
}

func TestToLatex_AllSpans(t *testing.T) {
	got := ToLatex("**bold** and *italic* and `code` and [link](https://example.com)")
	assert.Equal(t,
		`\textbf{bold} and \emph{italic} and \texttt{code} and link (https://example.com)`,
		got,
	)
}

func TestToLatex_EscapesMetacharacters(t *testing.T) {
	assert.Equal(t, `50\% off`, ToLatex("50% off"))
}

func TestEscapeLatex_AllMetacharacters(t *testing.T) {
	got := EscapeLatex(`\ & % $ # _ { } ~ ^`)
	assert.Equal(t,
		`\textbackslash{} \& \% \$ \# \_ \{ \} \textasciitilde{} \textasciicircum{}`,
		got,
	)
}

func TestTokenize_UnterminatedStarFallsBackToText(t *testing.T) {
	assert.Equal(t, "a * b", ToHTML("a * b"))
}

func TestToHTML_Image(t *testing.T) {
	assert.Equal(t, `<img src="zadoox-asset://img" alt="Cap">`, ToHTML("![Cap](zadoox-asset://img)"))
}

func TestToHTML_ImageDistinctFromLink(t *testing.T) {
	got := ToHTML("![Cap](x) and [link](y)")
	assert.Equal(t, `<img src="x" alt="Cap"> and <a href="y">link</a>`, got)
}

func TestToLatex_Image(t *testing.T) {
	assert.Equal(t, `\includegraphics{\detokenize{assets/img}}`, ToLatex("![Cap](assets/img)"))
}
