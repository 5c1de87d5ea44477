package htmlrender

import (
	"fmt"
	"html"
	"strings"

	"github.com/zadoox/xmd/internal/config"
	"github.com/zadoox/xmd/internal/ir"
)

func renderGrid(sb *strings.Builder, g *ir.Grid, cfg config.Config) {
	full := g.Align == ir.AlignFull
	shrinkWrap := !full && g.Align != ""

	decls := []string{}
	if full {
		decls = append(decls, "display:block", "width:100%")
	} else if shrinkWrap {
		decls = append(decls, "display:table", "width:auto")
		switch g.Align {
		case ir.AlignCenter:
			decls = append(decls, "margin:0 auto")
		case ir.AlignRight:
			decls = append(decls, "margin-left:auto")
		}
		if g.Placement == ir.PlacementInline && (g.Align == ir.AlignLeft || g.Align == ir.AlignRight) {
			decls = append(decls, "float:"+string(g.Align))
		}
	}
	decls = append(decls, marginDecls(g.Margin)...)

	fmt.Fprintf(sb, `<div class="xmd-grid" style="%s">`+"\n", strings.Join(decls, ";"))
	if g.Caption != "" {
		fmt.Fprintf(sb, `<div class="grid-caption">%s</div>`+"\n", html.EscapeString(g.Caption))
	}

	cols := g.Cols
	for _, row := range g.Rows {
		if cols == 0 {
			cols = len(row)
		}
		fmt.Fprintf(sb, `<div class="grid-row" style="display:flex">`+"\n")
		for _, cell := range row {
			cellWidth := ""
			if cols > 0 {
				cellWidth = fmt.Sprintf("%.4f%%", 100.0/float64(cols))
			}
			fmt.Fprintf(sb, `<div class="grid-cell" style="flex:0 0 %s">`+"\n", cellWidth)
			renderChildren(sb, cell.Children, cfg)
			sb.WriteString("</div>\n")
		}
		sb.WriteString("</div>\n")
	}

	sb.WriteString("</div>\n")
}

func marginDecls(m ir.Margin) []string {
	switch m {
	case ir.MarginSmall:
		return []string{"padding:0.25em"}
	case ir.MarginLarge:
		return []string{"padding:1.5em"}
	case ir.MarginMedium:
		return []string{"padding:0.75em"}
	default:
		return nil
	}
}
