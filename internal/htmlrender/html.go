// Package htmlrender is the HTML renderer (C6): a deterministic
// function from an IR snapshot plus renderer Config to a preview HTML
// string, following the per-node rules of spec.md §4.6.
//
// Grounded on the writer-with-builder idiom of the teacher's
// internal/markdown/printer.go/printer_block.go (a single walk emitting
// into a strings.Builder), adapted from XMD's printer semantics to
// HTML tag emission. Figure border colors are normalized with
// github.com/lucasb-eyer/go-colorful, as internal/latexwriter does. Table
// and grid border colors are not applied in HTML: table rules render as
// fixed-width solid or double borders, and grids draw no border.
package htmlrender

import (
	"fmt"
	"html"
	"strings"

	"github.com/zadoox/xmd/internal/config"
	"github.com/zadoox/xmd/internal/ir"
	"github.com/zadoox/xmd/internal/mdinline"
)

// Render converts doc into a preview HTML fragment (no <html>/<body>
// wrapper; callers embed it), using cfg for the open-question switches
// (plain <img> vs. captioned figure span) and default styling.
func Render(doc *ir.Document, cfg config.Config) string {
	var sb strings.Builder
	renderChildren(&sb, doc.Children(), cfg)

	return sb.String()
}

func renderChildren(sb *strings.Builder, children []ir.Node, cfg config.Config) {
	for _, n := range children {
		renderNode(sb, n, cfg)
	}
}

func renderNode(sb *strings.Builder, n ir.Node, cfg config.Config) {
	switch t := n.(type) {
	case *ir.DocumentTitle:
		fmt.Fprintf(sb, `<h1 id="doc-title" class="doc-title">%s</h1>`+"\n", html.EscapeString(t.Text))
	case *ir.DocumentAuthor:
		if t.Text != "" {
			fmt.Fprintf(sb, `<p class="doc-author">%s</p>`+"\n", html.EscapeString(t.Text))
		}
	case *ir.DocumentDate:
		if t.Text != "" {
			fmt.Fprintf(sb, `<p class="doc-date">%s</p>`+"\n", html.EscapeString(t.Text))
		}
	case *ir.Section:
		renderSection(sb, t, cfg)
	case *ir.Paragraph:
		renderParagraph(sb, t)
	case *ir.List:
		renderList(sb, t)
	case *ir.CodeBlock:
		fmt.Fprintf(sb, "<pre><code>%s</code></pre>\n", html.EscapeString(t.Code))
	case *ir.MathBlock:
		fmt.Fprintf(sb, `<div class="math-block"><code class="math-latex">%s</code></div>`+"\n",
			html.EscapeString(t.Latex))
	case *ir.Figure:
		renderFigure(sb, t, cfg)
	case *ir.Table:
		renderTable(sb, t)
	case *ir.Grid:
		renderGrid(sb, t, cfg)
	case *ir.RawXmdBlock:
		if strings.TrimSpace(t.Xmd) != "" {
			fmt.Fprintf(sb, `<div class="unrecognized-block"><span class="badge">unrecognized</span><pre>%s</pre></div>`+"\n",
				html.EscapeString(t.Xmd))
		}
	case *ir.RawLatexBlock:
		cleaned := stripLatexPreamble(t.Latex)
		if strings.TrimSpace(cleaned) != "" {
			fmt.Fprintf(sb, `<div class="unrecognized-block"><span class="badge">unrecognized</span><pre>%s</pre></div>`+"\n",
				html.EscapeString(cleaned))
		}
	}
}

func renderSection(sb *strings.Builder, s *ir.Section, cfg config.Config) {
	level := s.Level + 1
	if level > 6 {
		level = 6
	}
	fmt.Fprintf(sb, "<h%d>%s</h%d>", level, html.EscapeString(s.Title), level)
	renderChildren(sb, s.Children(), cfg)
}

func renderParagraph(sb *strings.Builder, p *ir.Paragraph) {
	styleAttr := ""
	if p.Style != nil {
		var decls []string
		if p.Style.Align != "" {
			decls = append(decls, "text-align:"+string(p.Style.Align))
		}
		if p.Style.Color != "" {
			decls = append(decls, "color:"+p.Style.Color)
		}
		if p.Style.Size != "" {
			decls = append(decls, "font-size:"+sizeToCSS(p.Style.Size))
		}
		if len(decls) > 0 {
			styleAttr = fmt.Sprintf(` style="%s"`, strings.Join(decls, ";"))
		}
	}

	if styleAttr == "" {
		fmt.Fprintf(sb, "<p>%s</p>\n", mdinline.ToHTML(p.Text))
	} else {
		fmt.Fprintf(sb, "<div class=\"text-block\"%s><p>%s</p></div>\n", styleAttr, mdinline.ToHTML(p.Text))
	}
}

func sizeToCSS(s ir.Size) string {
	switch s {
	case ir.SizeSmall:
		return "0.875em"
	case ir.SizeLarge:
		return "1.25em"
	default:
		return "1em"
	}
}

func renderList(sb *strings.Builder, l *ir.List) {
	tag := "ul"
	if l.Ordered {
		tag = "ol"
	}
	fmt.Fprintf(sb, "<%s>\n", tag)
	for _, item := range l.Items {
		fmt.Fprintf(sb, "<li>%s</li>\n", mdinline.ToHTML(item))
	}
	fmt.Fprintf(sb, "</%s>\n", tag)
}

func stripLatexPreamble(latex string) string {
	var out []string
	for _, line := range strings.Split(latex, "\n") {
		t := strings.TrimSpace(line)
		switch {
		case t == "":
		case strings.HasPrefix(t, "%"):
		case strings.HasPrefix(t, `\documentclass`),
			strings.HasPrefix(t, `\usepackage`),
			strings.HasPrefix(t, `\begin{document}`),
			strings.HasPrefix(t, `\end{document}`),
			strings.HasPrefix(t, `\maketitle`):
		default:
			if idx := strings.Index(t, "%"); idx >= 0 && !strings.HasPrefix(t, `\`) {
				t = strings.TrimRight(t[:idx], " ")
			}
			out = append(out, t)
		}
	}

	return strings.Join(out, "\n")
}
