package xmdlex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_Heading(t *testing.T) {
	blocks := Tokenize("# Intro\n")

	require.Len(t, blocks, 1)
	assert.Equal(t, KindHeading, blocks[0].Kind)
	assert.Equal(t, 1, blocks[0].Level)
	assert.Equal(t, "Intro", blocks[0].Lines[0])
}

func TestTokenize_Paragraph(t *testing.T) {
	blocks := Tokenize("Hello.\n")

	require.Len(t, blocks, 1)
	assert.Equal(t, KindParagraph, blocks[0].Kind)
}

func TestTokenize_TitleAuthorDateMarkers(t *testing.T) {
	blocks := Tokenize("@ T\n@^\n@= \n")

	require.Len(t, blocks, 3)
	assert.Equal(t, KindTitleMarker, blocks[0].Kind)
	assert.Equal(t, "T", blocks[0].Lines[0])
	assert.Equal(t, KindAuthorMarker, blocks[1].Kind)
	assert.Equal(t, "", blocks[1].Lines[0])
	assert.Equal(t, KindDateMarker, blocks[2].Kind)
	assert.Equal(t, "", blocks[2].Lines[0])
}

func TestTokenize_CodeFence(t *testing.T) {
	blocks := Tokenize("```go\nfmt.Println(1)\n```\n")

	require.Len(t, blocks, 1)
	assert.Equal(t, KindCodeFence, blocks[0].Kind)
	assert.Equal(t, "go", blocks[0].Lang)
	assert.Equal(t, []string{"fmt.Println(1)"}, blocks[0].Lines)
}

func TestTokenize_UnterminatedCodeFenceBecomesRaw(t *testing.T) {
	blocks := Tokenize("```go\nfmt.Println(1)\n")

	require.Len(t, blocks, 1)
	assert.Equal(t, KindRaw, blocks[0].Kind)
}

func TestTokenize_MathBlock(t *testing.T) {
	blocks := Tokenize("$$\nx^2\n$$\n")

	require.Len(t, blocks, 1)
	assert.Equal(t, KindMathBlock, blocks[0].Kind)
	assert.Equal(t, []string{"x^2"}, blocks[0].Lines)
}

func TestTokenize_EquationDirective(t *testing.T) {
	blocks := Tokenize(":::equation\nx = y\n:::\n")

	require.Len(t, blocks, 1)
	assert.Equal(t, KindDirective, blocks[0].Kind)
	assert.Equal(t, "equation", blocks[0].Name)
}

func TestTokenize_TableDirectiveByName(t *testing.T) {
	blocks := Tokenize(":::table\n| A | B |\n| --- | --- |\n| 1 | 2 |\n:::\n")

	require.Len(t, blocks, 1)
	assert.Equal(t, KindDirective, blocks[0].Kind)
	assert.Equal(t, "table", blocks[0].Name)
}

func TestTokenize_AnonymousDirectiveHasEmptyName(t *testing.T) {
	blocks := Tokenize(":::cols=2 caption=\"G\"\n![A](x)\n|||\n![B](y)\n:::\n")

	require.Len(t, blocks, 1)
	assert.Equal(t, KindDirective, blocks[0].Kind)
	assert.Equal(t, "", blocks[0].Name)
	assert.Contains(t, blocks[0].Args, "cols=2")
}

func TestTokenize_UnknownDirectiveName(t *testing.T) {
	blocks := Tokenize(":::tikzpicture\nstuff\n:::\n")

	require.Len(t, blocks, 1)
	assert.Equal(t, KindDirective, blocks[0].Kind)
	assert.Equal(t, "unknown:tikzpicture", blocks[0].Name)
}

func TestTokenize_UnclosedDirectiveBecomesRaw(t *testing.T) {
	blocks := Tokenize(":::figure\nsrc\n")

	require.Len(t, blocks, 1)
	assert.Equal(t, KindRaw, blocks[0].Kind)
}

func TestTokenize_UnorderedList(t *testing.T) {
	blocks := Tokenize("- one\n- two\n")

	require.Len(t, blocks, 1)
	assert.Equal(t, KindList, blocks[0].Kind)
	assert.False(t, blocks[0].Ordered)
	assert.Equal(t, []string{"one", "two"}, blocks[0].Lines)
}

func TestTokenize_OrderedList(t *testing.T) {
	blocks := Tokenize("1. one\n2. two\n")

	require.Len(t, blocks, 1)
	assert.Equal(t, KindList, blocks[0].Kind)
	assert.True(t, blocks[0].Ordered)
}

func TestTokenize_FigureLineWithAttrsAndTrailing(t *testing.T) {
	blocks := Tokenize(`![Cap](zadoox-asset://img){#fig:demo align="right"}Trailing` + "\n")

	require.Len(t, blocks, 1)
	assert.Equal(t, KindFigureLine, blocks[0].Kind)
	assert.Equal(t, "![Cap](zadoox-asset://img)", blocks[0].Lines[0])
	assert.Equal(t, `{#fig:demo align="right"}`, blocks[0].Lines[1])
	assert.Equal(t, "Trailing", blocks[0].Lines[2])
}

func TestTokenize_FigureLineWithoutAttrs(t *testing.T) {
	blocks := Tokenize("![Cap](x)\n")

	require.Len(t, blocks, 1)
	assert.Equal(t, KindFigureLine, blocks[0].Kind)
	assert.Equal(t, "", blocks[0].Lines[1])
}

func TestTokenize_MultipleBlocksInOrder(t *testing.T) {
	blocks := Tokenize("# Intro\n\nHello.\n")

	require.Len(t, blocks, 2)
	assert.Equal(t, KindHeading, blocks[0].Kind)
	assert.Equal(t, KindParagraph, blocks[1].Kind)
}

func TestTokenize_NeverFailsOnArbitraryInput(t *testing.T) {
	assert.NotPanics(t, func() {
		Tokenize("\x00\xff random \n:::\n```\n$$\n")
	})
}
