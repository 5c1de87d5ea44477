package xmdparse

import (
	"fmt"
	"strings"

	"github.com/zadoox/xmd/internal/ir"
)

// Print reconstructs XMD source from an IR document. It is a
// supplementary round-trip printer (not required by every consumer of
// the engine; the CLI's from-latex command uses it to print the XMD it
// reconstructs), grounded on the teacher's Print/printer split in
// internal/markdown/printer.go.
func Print(doc *ir.Document) string {
	var sb strings.Builder
	printChildren(&sb, doc.Children())

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func printChildren(sb *strings.Builder, children []ir.Node) {
	for i, n := range children {
		if i > 0 {
			sb.WriteString("\n")
		}
		printNode(sb, n)
	}
}

func printNode(sb *strings.Builder, n ir.Node) {
	switch t := n.(type) {
	case *ir.DocumentTitle:
		fmt.Fprintf(sb, "@ %s\n", t.Text)
	case *ir.DocumentAuthor:
		if t.Text == "" {
			sb.WriteString("@^\n")
		} else {
			fmt.Fprintf(sb, "@^ %s\n", t.Text)
		}
	case *ir.DocumentDate:
		if t.Text == "" {
			sb.WriteString("@=\n")
		} else {
			fmt.Fprintf(sb, "@= %s\n", t.Text)
		}
	case *ir.Section:
		fmt.Fprintf(sb, "%s %s\n", strings.Repeat("#", t.Level), t.Title)
		if len(t.Children()) > 0 {
			sb.WriteString("\n")
			printChildren(sb, t.Children())
		}
	case *ir.Paragraph:
		sb.WriteString(t.Text)
		sb.WriteString("\n")
	case *ir.List:
		for _, item := range t.Items {
			if t.Ordered {
				sb.WriteString("1. " + item + "\n")
			} else {
				sb.WriteString("- " + item + "\n")
			}
		}
	case *ir.CodeBlock:
		fmt.Fprintf(sb, "```%s\n%s\n```\n", t.Language, t.Code)
	case *ir.MathBlock:
		fmt.Fprintf(sb, "$$\n%s\n$$\n", t.Latex)
	case *ir.Figure:
		if raw := t.Source().Raw; raw != "" {
			sb.WriteString(raw)
			sb.WriteString("\n")
		} else {
			label := ""
			if t.Label != "" {
				label = " {#" + t.Label + "}"
			}
			fmt.Fprintf(sb, "![%s](%s)%s\n", t.Caption, t.Src, label)
		}
	case *ir.Table:
		printTable(sb, t)
	case *ir.Grid:
		printGrid(sb, t)
	case *ir.RawXmdBlock:
		sb.WriteString(t.Xmd)
		sb.WriteString("\n")
	case *ir.RawLatexBlock:
		sb.WriteString(t.Latex)
		sb.WriteString("\n")
	}
}

func printTable(sb *strings.Builder, t *ir.Table) {
	sb.WriteString(":::table")
	if t.Caption != "" {
		fmt.Fprintf(sb, " caption=%q", t.Caption)
	}
	if t.Label != "" {
		fmt.Fprintf(sb, " label=%q", t.Label)
	}
	sb.WriteString("\n")

	if len(t.ColAlign) > 0 {
		sb.WriteString(renderColSpec(t.ColAlign, t.VRules))
		sb.WriteString("\n")
	}
	sb.WriteString("| " + strings.Join(t.Header, " | ") + " |\n")
	sep := make([]string, len(t.Header))
	for i := range sep {
		sep[i] = "---"
	}
	sb.WriteString("| " + strings.Join(sep, " | ") + " |\n")
	for _, row := range t.Rows {
		sb.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
	sb.WriteString(":::\n")
}

func renderColSpec(aligns []ir.Align, rules []ir.Rule) string {
	var sb strings.Builder
	for i, a := range aligns {
		if i < len(rules) {
			sb.WriteString(ruleGlyph(rules[i]))
		} else {
			sb.WriteString("|")
		}
		switch a {
		case ir.AlignLeft:
			sb.WriteString("L")
		case ir.AlignCenter:
			sb.WriteString("C")
		case ir.AlignRight:
			sb.WriteString("R")
		}
	}
	if len(rules) == len(aligns)+1 {
		sb.WriteString(ruleGlyph(rules[len(rules)-1]))
	} else {
		sb.WriteString("|")
	}

	return sb.String()
}

func ruleGlyph(r ir.Rule) string {
	switch r {
	case ir.RuleDouble:
		return "||"
	case ir.RuleNone:
		return ""
	default:
		return "|"
	}
}

func printGrid(sb *strings.Builder, g *ir.Grid) {
	sb.WriteString(":::")
	if g.Cols > 0 {
		fmt.Fprintf(sb, " cols=%d", g.Cols)
	}
	if g.Caption != "" {
		fmt.Fprintf(sb, " caption=%q", g.Caption)
	}
	if g.Label != "" {
		fmt.Fprintf(sb, " label=%q", g.Label)
	}
	if g.Align != "" {
		fmt.Fprintf(sb, " align=%s", g.Align)
	}
	if g.Placement != "" {
		fmt.Fprintf(sb, " placement=%s", g.Placement)
	}
	sb.WriteString("\n")

	for r, row := range g.Rows {
		if r > 0 {
			sb.WriteString("---\n")
		}
		for c, cell := range row {
			if c > 0 {
				sb.WriteString("|||\n")
			}
			printChildren(sb, cell.Children)
		}
	}
	sb.WriteString(":::\n")
}
