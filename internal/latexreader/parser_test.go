package latexreader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zadoox/xmd/internal/ir"
)

func TestParse_SectionAndParagraph(t *testing.T) {
	doc := Parse("doc1", `\section{Intro}
This is a paragraph.
`)

	require.Len(t, doc.Children(), 1)
	sec, ok := doc.Children()[0].(*ir.Section)
	require.True(t, ok)
	assert.Equal(t, "Intro", sec.Title)
	assert.Equal(t, 1, sec.Level)

	require.Len(t, sec.Children(), 1)
	p, ok := sec.Children()[0].(*ir.Paragraph)
	require.True(t, ok)
	assert.Equal(t, "This is a paragraph.", p.Text)
}

func TestParse_NestedSections(t *testing.T) {
	doc := Parse("doc1", `\section{One}
\subsection{Two}
text
`)

	require.Len(t, doc.Children(), 1)
	one := doc.Children()[0].(*ir.Section)
	assert.Equal(t, 1, one.Level)
	require.Len(t, one.Children(), 1)

	two := one.Children()[0].(*ir.Section)
	assert.Equal(t, 2, two.Level)
	assert.NotEmpty(t, two.Children())
}

func TestParse_ItemizeToList(t *testing.T) {
	doc := Parse("doc1", `\begin{itemize}
\item one
\item two
\end{itemize}
`)

	require.Len(t, doc.Children(), 1)
	list, ok := doc.Children()[0].(*ir.List)
	require.True(t, ok)
	assert.False(t, list.Ordered)
	assert.Equal(t, []string{"one", "two"}, list.Items)
}

func TestParse_EnumerateIsOrdered(t *testing.T) {
	doc := Parse("doc1", `\begin{enumerate}
\item first
\end{enumerate}
`)

	require.Len(t, doc.Children(), 1)
	list, ok := doc.Children()[0].(*ir.List)
	require.True(t, ok)
	assert.True(t, list.Ordered)
}

func TestParse_VerbatimToCodeBlock(t *testing.T) {
	doc := Parse("doc1", `\begin{verbatim}
raw code
\end{verbatim}
`)

	require.Len(t, doc.Children(), 1)
	cb, ok := doc.Children()[0].(*ir.CodeBlock)
	require.True(t, ok)
	assert.Contains(t, cb.Code, "raw code")
}

func TestParse_TitleAuthorDate(t *testing.T) {
	doc := Parse("doc1", `\title{My Paper}
\author{Jane Doe}
\date{2026-01-01}
`)

	require.Len(t, doc.Children(), 3)
	title, ok := doc.Children()[0].(*ir.DocumentTitle)
	require.True(t, ok)
	assert.Equal(t, "My Paper", title.Text)
}

func TestParse_UnknownEnvironmentBecomesRaw(t *testing.T) {
	doc := Parse("doc1", `\begin{tikzpicture}
\draw (0,0) -- (1,1);
\end{tikzpicture}
`)

	require.Len(t, doc.Children(), 1)
	_, ok := doc.Children()[0].(*ir.RawLatexBlock)
	assert.True(t, ok)
}
