package latexwriter

import (
	"fmt"
	"strings"

	"github.com/zadoox/xmd/internal/ir"
)

func writeTable(sb *strings.Builder, t *ir.Table) {
	numCols := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}

	sb.WriteString("\\begin{table}[h]\n\\centering\n")
	sb.WriteString("{\n")
	writeTableRuleStyle(sb, t)
	fmt.Fprintf(sb, "\\begin{tabularx}{\\textwidth}{%s}\n", tableColSpec(t, numCols))

	writeHRule(sb, t, 0)
	writeTableRow(sb, t.Header)
	writeHRule(sb, t, 1)
	for r, row := range t.Rows {
		writeTableRow(sb, row)
		writeHRule(sb, t, r+2)
	}

	sb.WriteString("\\end{tabularx}\n")
	sb.WriteString("}\n")
	if t.Caption != "" {
		fmt.Fprintf(sb, "\\caption{%s}\n", toLatexInline(t.Caption))
	}
	if t.Label != "" {
		fmt.Fprintf(sb, "\\label{%s}\n", t.Label)
	}
	sb.WriteString("\\end{table}\n")
}

// writeTableRuleStyle emits the scoped rule styling spec.md §4.7
// describes: "\setlength{\arrayrulewidth}{<n>pt}" and
// "\arrayrulecolor{<name>}", omitted entirely when borderWidth=0.
func writeTableRuleStyle(sb *strings.Builder, t *ir.Table) {
	if t.Style == nil {
		return
	}
	if t.Style.HasBorderWidth && t.Style.BorderWidthPx == 0 {
		return
	}
	if t.Style.HasBorderWidth {
		fmt.Fprintf(sb, "\\setlength{\\arrayrulewidth}{%dpt}\n", t.Style.BorderWidthPx)
	}
	if t.Style.BorderColor != "" {
		fmt.Fprintf(sb, "\\arrayrulecolor{%s}\n", colorPaletteName(t.Style.BorderColor))
	}
}

func tableColSpec(t *ir.Table, numCols int) string {
	var sb strings.Builder
	for j := 0; j < numCols; j++ {
		sb.WriteString(vRuleGlyph(t, j))
		sb.WriteString(alignLetter(t, j))
	}
	sb.WriteString(vRuleGlyph(t, numCols))

	return sb.String()
}

func vRuleGlyph(t *ir.Table, col int) string {
	if col >= len(t.VRules) {
		return ""
	}
	switch t.VRules[col] {
	case ir.RuleSingle:
		return "|"
	case ir.RuleDouble:
		return "||"
	default:
		return ""
	}
}

func alignLetter(t *ir.Table, col int) string {
	if col >= len(t.ColAlign) {
		return "l"
	}
	switch t.ColAlign[col] {
	case ir.AlignCenter:
		return "c"
	case ir.AlignRight:
		return "r"
	default:
		return "l"
	}
}

func writeHRule(sb *strings.Builder, t *ir.Table, idx int) {
	if idx >= len(t.HRules) {
		return
	}
	switch t.HRules[idx] {
	case ir.RuleSingle:
		sb.WriteString("\\hline\n")
	case ir.RuleDouble:
		sb.WriteString("\\hline\\hline\n")
	}
}

func writeTableRow(sb *strings.Builder, cells []string) {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = escapeLatexText(c)
	}
	sb.WriteString(strings.Join(escaped, " & "))
	sb.WriteString(" \\\\\n")
}
