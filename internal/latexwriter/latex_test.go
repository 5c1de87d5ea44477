package latexwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zadoox/xmd/internal/config"
	"github.com/zadoox/xmd/internal/xmdparse"
)

func TestRender_SectionCommand(t *testing.T) {
	doc := xmdparse.Parse("doc1", "# Intro\n\ntext here\n")
	out := Render(doc, config.Default())

	assert.Contains(t, out, `\section{Intro}`)
	assert.Contains(t, out, "text here")
}

func TestRender_NestedSectionCommands(t *testing.T) {
	doc := xmdparse.Parse("doc1", "# One\n\n## Two\n\n### Three\n\ndeep\n")
	out := Render(doc, config.Default())

	assert.Contains(t, out, `\section{One}`)
	assert.Contains(t, out, `\subsection{Two}`)
	assert.Contains(t, out, `\subsubsection{Three}`)
}

func TestRender_EscapesLatexMetacharacters(t *testing.T) {
	doc := xmdparse.Parse("doc1", "50% off\n")
	out := Render(doc, config.Default())

	assert.Contains(t, out, `50\% off`)
}

func TestRenderFragment_OmitsPreambleAndDocumentEnvironment(t *testing.T) {
	doc := xmdparse.Parse("doc1", "a paragraph\n")
	out := RenderFragment(doc, config.Default())

	assert.NotContains(t, out, `\documentclass`)
	assert.NotContains(t, out, `\begin{document}`)
	assert.Contains(t, out, "a paragraph")
}

func TestRender_CodeBlockUsesVerbatim(t *testing.T) {
	doc := xmdparse.Parse("doc1", "```\nraw code\n```\n")
	out := Render(doc, config.Default())

	assert.Contains(t, out, `\begin{verbatim}`)
	assert.Contains(t, out, "raw code")
	assert.Contains(t, out, `\end{verbatim}`)
}

// S1 from spec.md §8.
func TestRender_S1_HeadingAndParagraph(t *testing.T) {
	doc := xmdparse.Parse("doc1", "# Intro\n\nHello.\n")
	out := Render(doc, config.Default())

	assert.Contains(t, out, `\section{Intro}`)
	assert.Contains(t, out, "Hello.")
}

// S2 from spec.md §8.
func TestRender_S2_EmptyAuthorAndDatePreamble(t *testing.T) {
	doc := xmdparse.Parse("doc1", "@ T\n@^\n@= \n\nBody")
	out := Render(doc, config.Default())

	assert.Contains(t, out, `\title{T}`)
	assert.Contains(t, out, `\author{}`)
	assert.Contains(t, out, `\date{}`)
	assert.Contains(t, out, `\maketitle`)
}

// S3 from spec.md §8.
func TestRender_S3_InlineWrapFigureAdjacentToParagraph(t *testing.T) {
	src := "@ Title\n\n" +
		`![Cap](zadoox-asset://img){#fig:demo align="right" width="33%" placement="inline"}Trailing` + "\n\n" +
		"Next paragraph.\n"
	doc := xmdparse.Parse("doc1", src)
	out := Render(doc, config.Default())

	assert.Contains(t, out, `\begin{wrapfigure}{r}{0.330\textwidth}`)
	assert.Contains(t, out, `\includegraphics[width=\linewidth]{\detokenize{assets/img}}`)
	assert.Contains(t, out, `\caption{Cap}`)
	assert.Contains(t, out, `\label{fig:demo}`)
	assert.Contains(t, out, "\\end{wrapfigure}\nTrailing")
}

// S4 from spec.md §8.
func TestRender_S4_FigureOnlyGridUsesSubfigures(t *testing.T) {
	src := `::: cols=2 caption="G"` + "\n" +
		`![A](zadoox-asset://a){#fig:a width="50%"}` + "\n" +
		"|||\n" +
		`![B](zadoox-asset://b){#fig:b width="50%"}` + "\n" +
		":::\n"
	doc := xmdparse.Parse("doc1", src)
	out := Render(doc, config.Default())

	assert.Contains(t, out, `\usepackage{subcaption}`)
	assert.Contains(t, out, `\begin{figure}[h]`)
	assert.Contains(t, out, `\begin{subfigure}[t]{`)
	assert.Contains(t, out, `\caption{G}`)
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

	assert.Contains(t, out, `\definecolor{zdxcol6b7280}{HTML}{6B7280}`)
	assert.Contains(t, out, `\setlength{\arrayrulewidth}{2pt}`)
	assert.Contains(t, out, `\arrayrulecolor{zdxcol6b7280}`)
}
