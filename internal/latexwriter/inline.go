package latexwriter

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/zadoox/xmd/internal/ir"
	"github.com/zadoox/xmd/internal/mdinline"
	"github.com/zadoox/xmd/internal/xmdattrs"
)

func toLatexInline(text string) string { return mdinline.ToLatex(text) }

func escapeLatexText(s string) string { return mdinline.EscapeLatex(s) }

// figureAttrs reads the attribute bag from a figure's source.raw, the
// documented source of truth for attributes not modeled as discrete
// Figure fields (spec.md §3).
func figureAttrs(f *ir.Figure) map[string]string {
	inner, _ := xmdattrs.StripAttrBlock(stripFigureMarkdownPrefix(f.Source().Raw))

	return xmdattrs.Parse(inner)
}

func stripFigureMarkdownPrefix(raw string) string {
	if idx := strings.Index(raw, ")"); idx >= 0 {
		return raw[idx+1:]
	}

	return raw
}

// colorPaletteName derives a stable \definecolor identifier from a hex
// string, e.g. "#6b7280" -> "zdxcol6b7280".
func colorPaletteName(hex string) string {
	return "zdxcol" + strings.TrimPrefix(normalizeColorHex(hex), "#")
}

// normalizeColorHex parses a CSS color / #RGB / #RRGGBB string into a
// canonical lowercase "#rrggbb" using go-colorful, falling back to the
// input unchanged if it can't be parsed (render-local degrade, §7.2).
func normalizeColorHex(s string) string {
	if s == "" {
		return s
	}
	c, err := colorful.Hex(normalizeHexShorthand(s))
	if err != nil {
		return s
	}

	return c.Hex()
}

func normalizeHexShorthand(s string) string {
	if !strings.HasPrefix(s, "#") || len(s) != 4 {
		return s
	}
	r, g, b := s[1], s[2], s[3]

	return fmt.Sprintf("#%c%c%c%c%c%c", r, r, g, g, b, b)
}
