// Package latexwriter is the LaTeX writer (C7): a deterministic
// function from an IR document to compilable LaTeX, following
// spec.md §4.7's preamble-composition and per-node emission rules.
//
// Grounded on the preamble-assembly and escape-function shape of the
// other_examples goldmark-to-LaTeX renderer (conditional \usepackage
// emission, escape-at-leaf-only discipline), combined with the
// teacher's single-walk-into-a-builder idiom from
// internal/markdown/printer.go. Border-color normalization shares
// github.com/lucasb-eyer/go-colorful with internal/htmlrender so both
// renderers agree on the same palette.
package latexwriter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zadoox/xmd/internal/config"
	"github.com/zadoox/xmd/internal/ir"
)

// Render produces a complete compilable LaTeX document.
func Render(doc *ir.Document, cfg config.Config) string {
	feats := scanFeatures(doc)

	var sb strings.Builder
	writePreamble(&sb, doc, cfg, feats)
	sb.WriteString("\\begin{document}\n")
	if feats.hasTitle {
		sb.WriteString("\\maketitle\n")
	}
	writeChildren(&sb, doc.Children(), feats)
	sb.WriteString("\\end{document}\n")

	return sb.String()
}

// RenderFragment produces the body only, with no preamble or
// \begin{document}/\end{document} wrapper.
func RenderFragment(doc *ir.Document, cfg config.Config) string {
	feats := scanFeatures(doc)

	var sb strings.Builder
	writeChildren(&sb, doc.Children(), feats)

	return sb.String()
}

type features struct {
	hasTitle          bool
	hasAuthor         bool
	hasDate           bool
	anyFigure         bool
	anyInlineWrap     bool
	anyFigureOnlyGrid bool
	anyGridOrTable    bool
	anyBorderColor    bool
	anyGridCaptionOf  bool
	colors            map[string]string // palette name -> hex digits without '#'
}

func scanFeatures(doc *ir.Document) *features {
	f := &features{colors: map[string]string{}}
	_ = ir.Walk(doc, ir.VisitorFunc(func(n ir.Node) error {
		switch t := n.(type) {
		case *ir.DocumentTitle:
			f.hasTitle = true
		case *ir.DocumentAuthor:
			f.hasAuthor = true
		case *ir.DocumentDate:
			f.hasDate = true
		case *ir.Figure:
			f.anyFigure = true
			attrs := figureAttrs(t)
			if attrs["placement"] == "inline" && attrs["align"] != "center" {
				f.anyInlineWrap = true
			}
			if c := attrs["borderColor"]; c != "" {
				f.anyBorderColor = true
				f.registerColor(c)
			}
		case *ir.Table:
			f.anyGridOrTable = true
			if t.Style != nil && t.Style.BorderColor != "" {
				f.anyBorderColor = true
				f.registerColor(t.Style.BorderColor)
			}
		case *ir.Grid:
			f.anyGridOrTable = true
			if isFigureOnlyGrid(t) {
				f.anyFigureOnlyGrid = true
			} else {
				f.anyGridCaptionOf = true
			}
			if t.Placement == ir.PlacementInline && (t.Align == ir.AlignLeft || t.Align == ir.AlignRight) {
				f.anyInlineWrap = true
			}
			if t.Style != nil && t.Style.BorderColor != "" {
				f.anyBorderColor = true
				f.registerColor(t.Style.BorderColor)
			}
		}

		return nil
	}))

	return f
}

func (f *features) registerColor(hex string) {
	name := colorPaletteName(hex)
	f.colors[name] = strings.TrimPrefix(normalizeColorHex(hex), "#")
}

func isFigureOnlyGrid(g *ir.Grid) bool {
	for _, row := range g.Rows {
		for _, cell := range row {
			for _, child := range cell.Children {
				if _, ok := child.(*ir.Figure); !ok {
					return false
				}
			}
		}
	}

	return true
}

func writePreamble(sb *strings.Builder, doc *ir.Document, cfg config.Config, f *features) {
	cls := cfg.LatexDocumentClass
	if cls == "" {
		cls = "article"
	}
	fmt.Fprintf(sb, "\\documentclass{%s}\n", cls)

	if f.anyFigure {
		sb.WriteString("\\usepackage{graphicx}\n")
	}
	if f.anyInlineWrap {
		sb.WriteString("\\usepackage{wrapfig}\n")
	}
	if f.anyFigureOnlyGrid {
		sb.WriteString("\\usepackage{subcaption}\n")
	}
	if f.anyGridOrTable {
		sb.WriteString("\\usepackage{tabularx}\n")
		sb.WriteString("\\usepackage{array}\n")
	}
	if f.anyBorderColor {
		sb.WriteString("\\usepackage[table]{xcolor}\n")
	}
	if f.anyGridCaptionOf {
		sb.WriteString("\\usepackage{caption}\n")
	}

	names := make([]string, 0, len(f.colors))
	for name := range f.colors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(sb, "\\definecolor{%s}{HTML}{%s}\n", name, strings.ToUpper(f.colors[name]))
	}

	writeDocHeader(sb, doc, f)
}

func writeDocHeader(sb *strings.Builder, doc *ir.Document, f *features) {
	for _, n := range doc.Children() {
		switch t := n.(type) {
		case *ir.DocumentTitle:
			fmt.Fprintf(sb, "\\title{%s}\n", escapeLeaf(t.Text))
		case *ir.DocumentAuthor:
			fmt.Fprintf(sb, "\\author{%s}\n", escapeLeaf(t.Text))
		case *ir.DocumentDate:
			fmt.Fprintf(sb, "\\date{%s}\n", escapeLeaf(t.Text))
		}
	}
}

func writeChildren(sb *strings.Builder, children []ir.Node, f *features) {
	for i, n := range children {
		writeNode(sb, n, f)
		if i+1 < len(children) && !adjacentNoBlankLine(n, children[i+1]) {
			sb.WriteString("\n")
		}
	}
}

// adjacentNoBlankLine implements §4.7's "wrapfigure and the following
// non-empty paragraph are concatenated with no blank line" rule.
func adjacentNoBlankLine(a, b ir.Node) bool {
	fig, ok := a.(*ir.Figure)
	if !ok {
		return false
	}
	attrs := figureAttrs(fig)
	if attrs["placement"] != "inline" || attrs["align"] == "center" {
		return false
	}
	p, ok := b.(*ir.Paragraph)

	return ok && strings.TrimSpace(p.Text) != ""
}

func writeNode(sb *strings.Builder, n ir.Node, f *features) {
	switch t := n.(type) {
	case *ir.DocumentTitle, *ir.DocumentAuthor, *ir.DocumentDate:
		// emitted in the preamble only.
	case *ir.Section:
		writeSection(sb, t, f)
	case *ir.Paragraph:
		writeParagraph(sb, t)
	case *ir.List:
		writeList(sb, t)
	case *ir.CodeBlock:
		fmt.Fprintf(sb, "\\begin{verbatim}\n%s\n\\end{verbatim}\n", t.Code)
	case *ir.MathBlock:
		fmt.Fprintf(sb, "\\begin{equation}\n%s\n\\end{equation}\n", t.Latex)
	case *ir.Figure:
		writeFigure(sb, t)
	case *ir.Table:
		writeTable(sb, t)
	case *ir.Grid:
		writeGrid(sb, t)
	case *ir.RawXmdBlock:
		for _, line := range strings.Split(t.Xmd, "\n") {
			sb.WriteString("% " + line + "\n")
		}
	case *ir.RawLatexBlock:
		sb.WriteString(t.Latex)
		sb.WriteString("\n")
	}
}

func writeSection(sb *strings.Builder, s *ir.Section, f *features) {
	cmd := sectionCommand(s.Level)
	fmt.Fprintf(sb, "\\%s{%s}\n", cmd, escapeLeaf(s.Title))
	writeChildren(sb, s.Children(), f)
}

func sectionCommand(level int) string {
	switch {
	case level <= 1:
		return "section"
	case level == 2:
		return "subsection"
	default:
		return "subsubsection"
	}
}

func writeParagraph(sb *strings.Builder, p *ir.Paragraph) {
	sb.WriteString(toLatexInline(p.Text))
	sb.WriteString("\n")
}

func writeList(sb *strings.Builder, l *ir.List) {
	env := "itemize"
	if l.Ordered {
		env = "enumerate"
	}
	fmt.Fprintf(sb, "\\begin{%s}\n", env)
	for _, item := range l.Items {
		fmt.Fprintf(sb, "\\item %s\n", toLatexInline(item))
	}
	fmt.Fprintf(sb, "\\end{%s}\n", env)
}

func escapeLeaf(s string) string { return escapeLatexText(s) }
