package htmlrender

import (
	"fmt"
	"html"
	"strings"

	"github.com/zadoox/xmd/internal/ir"
)

func renderTable(sb *strings.Builder, t *ir.Table) {
	sb.WriteString(`<table class="xmd-table">` + "\n")
	if t.Caption != "" {
		fmt.Fprintf(sb, `<caption style="caption-side:top">%s</caption>`+"\n", html.EscapeString(t.Caption))
	}

	renderTableRow(sb, "th", t.Header, t, 0)
	for r, row := range t.Rows {
		renderTableRow(sb, "td", row, t, r+1)
	}
	sb.WriteString("</table>\n")
}

func renderTableRow(sb *strings.Builder, cellTag string, cells []string, t *ir.Table, rowIdx int) {
	sb.WriteString("<tr>")
	for c, cell := range cells {
		decls := tableCellStyle(t, rowIdx, c, len(cells))
		if len(decls) > 0 {
			fmt.Fprintf(sb, `<%s style="%s">%s</%s>`, cellTag, strings.Join(decls, ";"), html.EscapeString(cell), cellTag)
		} else {
			fmt.Fprintf(sb, "<%s>%s</%s>", cellTag, html.EscapeString(cell), cellTag)
		}
	}
	sb.WriteString("</tr>\n")
}

func tableCellStyle(t *ir.Table, rowIdx, col, numCols int) []string {
	var decls []string

	if col < len(t.ColAlign) {
		decls = append(decls, "text-align:"+string(t.ColAlign[col]))
	}

	if col < len(t.VRules) {
		if d := ruleCSSBorder("border-left", t.VRules[col]); d != "" {
			decls = append(decls, d)
		}
	}
	if col+1 == numCols && col+1 < len(t.VRules) {
		if d := ruleCSSBorder("border-right", t.VRules[col+1]); d != "" {
			decls = append(decls, d)
		}
	}

	if rowIdx < len(t.HRules) {
		if d := ruleCSSBorder("border-top", t.HRules[rowIdx]); d != "" {
			decls = append(decls, d)
		}
	}
	if rowIdx+1 < len(t.HRules) {
		if d := ruleCSSBorder("border-bottom", t.HRules[rowIdx+1]); d != "" {
			decls = append(decls, d)
		}
	}

	if t.Style != nil {
		if t.Style.HasBorderWidth && t.Style.BorderWidthPx == 0 {
			return onlyAlign(decls)
		}
	}

	return decls
}

func onlyAlign(decls []string) []string {
	var out []string
	for _, d := range decls {
		if strings.HasPrefix(d, "text-align") {
			out = append(out, d)
		}
	}

	return out
}

func ruleCSSBorder(side string, r ir.Rule) string {
	switch r {
	case ir.RuleSingle:
		return side + ":1px solid"
	case ir.RuleDouble:
		return side + "-style:double;" + side + "-width:3px"
	default:
		return ""
	}
}
