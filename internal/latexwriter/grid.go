package latexwriter

import (
	"fmt"
	"strings"

	"github.com/zadoox/xmd/internal/ir"
)

func writeGrid(sb *strings.Builder, g *ir.Grid) {
	if isFigureOnlyGrid(g) {
		writeSubfigureGrid(sb, g)

		return
	}

	writeGenericGrid(sb, g)
}

// writeSubfigureGrid emits a figure of side-by-side subfigures, one per
// cell, using the subcaption package.
func writeSubfigureGrid(sb *strings.Builder, g *ir.Grid) {
	cols := g.Cols
	if cols == 0 && len(g.Rows) > 0 {
		cols = len(g.Rows[0])
	}
	if cols == 0 {
		cols = 1
	}
	width := fmt.Sprintf("%.3f\\linewidth", 0.9/float64(cols))

	sb.WriteString("\\begin{figure}[h]\n\\centering\n")
	for _, row := range g.Rows {
		for _, cell := range row {
			fmt.Fprintf(sb, "\\begin{subfigure}[t]{%s}\n\\centering\n", width)
			for _, child := range cell.Children {
				if fig, ok := child.(*ir.Figure); ok {
					writeSubfigureBody(sb, fig)
				}
			}
			sb.WriteString("\\end{subfigure}\n")
		}
		sb.WriteString("\\par\\bigskip\n")
	}
	if g.Caption != "" {
		fmt.Fprintf(sb, "\\caption{%s}\n", toLatexInline(g.Caption))
	}
	if g.Label != "" {
		fmt.Fprintf(sb, "\\label{%s}\n", g.Label)
	}
	sb.WriteString("\\end{figure}\n")
}

func writeSubfigureBody(sb *strings.Builder, f *ir.Figure) {
	attrs := figureAttrs(f)
	width := attrs["width"]
	if width == "" {
		width = "\\linewidth"
	} else {
		width = toLatexLength(width)
	}
	path := "\\detokenize{" + assetRelPath(f.Src) + "}"
	fmt.Fprintf(sb, "\\includegraphics[width=%s]{%s}\n", width, path)
	if f.Caption != "" {
		fmt.Fprintf(sb, "\\caption{%s}\n", toLatexInline(f.Caption))
	}
	if f.Label != "" {
		fmt.Fprintf(sb, "\\label{%s}\n", f.Label)
	}
}

// writeGenericGrid emits one minipage per cell, separated by \hfill,
// inside a center environment, for grids that mix arbitrary content,
// since subfigure/subcaption only applies to figure-only grids.
func writeGenericGrid(sb *strings.Builder, g *ir.Grid) {
	cols := g.Cols
	if cols == 0 && len(g.Rows) > 0 {
		cols = len(g.Rows[0])
	}
	if cols == 0 {
		cols = 1
	}
	width := fmt.Sprintf("%.3f\\linewidth", 0.95/float64(cols))

	sb.WriteString("\\begin{center}\n")
	for _, row := range g.Rows {
		for i, cell := range row {
			fmt.Fprintf(sb, "\\begin{minipage}[t]{%s}\n", width)
			writeChildren(sb, cell.Children, &features{colors: map[string]string{}})
			sb.WriteString("\\end{minipage}%\n")
			if i+1 < len(row) {
				sb.WriteString("\\hfill\n")
			}
		}
		sb.WriteString("\\par\\bigskip\n")
	}
	if g.Caption != "" {
		fmt.Fprintf(sb, "\\captionof{figure}{%s}\n", toLatexInline(g.Caption))
	}
	if g.Label != "" {
		fmt.Fprintf(sb, "\\label{%s}\n", g.Label)
	}
	sb.WriteString("\\end{center}\n")
}
