package xmdattrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_QuotedAndBareValues(t *testing.T) {
	got := Parse(`width="50%" align=center`)
	assert.Equal(t, map[string]string{"width": "50%", "align": "center"}, got)
}

func TestParse_SkipsMalformedFragments(t *testing.T) {
	got := Parse(`width="50%" justtext align=left`)
	assert.Equal(t, "50%", got["width"])
	assert.Equal(t, "left", got["align"])
	_, hasJustText := got["justtext"]
	assert.False(t, hasJustText)
}

func TestParse_Empty(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("   "))
}

func TestLabel_FindsHashToken(t *testing.T) {
	assert.Equal(t, "fig:demo", Label(`width="50%" #fig:demo`))
}

func TestLabel_NoneFound(t *testing.T) {
	assert.Equal(t, "", Label(`width="50%"`))
}

func TestStripAttrBlock_Balanced(t *testing.T) {
	inner, rest := StripAttrBlock(`{width="50%" align=left} trailing`)
	assert.Equal(t, `width="50%" align=left`, inner)
	assert.Equal(t, " trailing", rest)
}

func TestStripAttrBlock_NestedBraces(t *testing.T) {
	inner, rest := StripAttrBlock(`{a="{nested}"} after`)
	assert.Equal(t, `a="{nested}"`, inner)
	assert.Equal(t, " after", rest)
}

func TestStripAttrBlock_NoLeadingBrace(t *testing.T) {
	inner, rest := StripAttrBlock("no braces here")
	assert.Equal(t, "", inner)
	assert.Equal(t, "no braces here", rest)
}
