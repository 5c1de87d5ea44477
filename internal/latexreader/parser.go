package latexreader

import (
	"strings"

	"github.com/zadoox/xmd/internal/ir"
)

type frame struct {
	path     string
	level    int
	title    string
	children []ir.Node
	counters map[ir.Kind]int
}

func newFrame(path string, level int, title string) *frame {
	return &frame{path: path, level: level, title: title, counters: map[ir.Kind]int{}}
}

func (f *frame) nextPath(docID string, kind ir.Kind) string {
	idx := f.counters[kind]
	f.counters[kind] = idx + 1

	return ir.PathFor(f.path, kind, idx)
}

// Parse converts the supported LaTeX subset into the same IR the XMD
// parser produces, per spec.md §4.8. Unsupported constructs become
// RawLatexBlock nodes rather than an error.
func Parse(docID, source string) *ir.Document {
	blocks := Tokenize(source)

	root := newFrame("", 0, "")
	stack := []*frame{root}

	for _, b := range blocks {
		top := stack[len(stack)-1]

		level := sectionLevel(b.Kind)
		if level > 0 {
			stack = closeSectionsTo(docID, stack, level)
			top = stack[len(stack)-1]
			path := top.nextPath(docID, ir.KindSection)
			stack = append(stack, newFrame(path, level, ToText(b.Arg)))

			continue
		}

		if n := parseLeaf(docID, top, b); n != nil {
			top.children = append(top.children, n)
		}
	}

	closeSectionsTo(docID, stack, 0)

	return ir.NewDocument(docID, "", ir.Source{}, docID, root.children)
}

func sectionLevel(k Kind) int {
	switch k {
	case KindSection:
		return 1
	case KindSubsection:
		return 2
	case KindSubsubsection:
		return 3
	default:
		return 0
	}
}

// closeSectionsTo pops frames with level >= level, mirroring
// xmdparse's closeSectionsTo (I4: a heading of level L closes all open
// sections of level >= L). level == 0 closes everything.
func closeSectionsTo(docID string, stack []*frame, level int) []*frame {
	for len(stack) > 1 {
		top := stack[len(stack)-1]
		if level != 0 && top.level < level {
			break
		}

		sec := ir.NewSection(docID, top.path, ir.Source{}, top.level, top.title, top.children)
		stack = stack[:len(stack)-1]
		parent := stack[len(stack)-1]
		parent.children = append(parent.children, sec)
	}

	return stack
}

func parseLeaf(docID string, top *frame, b Block) ir.Node {
	switch b.Kind {
	case KindTitle:
		path := top.nextPath(docID, ir.KindDocumentTitle)

		return ir.NewDocumentTitle(docID, path, ir.Source{}, ToText(b.Arg))
	case KindAuthor:
		path := top.nextPath(docID, ir.KindDocumentAuthor)

		return ir.NewDocumentAuthor(docID, path, ir.Source{}, ToText(b.Arg))
	case KindDate:
		path := top.nextPath(docID, ir.KindDocumentDate)

		return ir.NewDocumentDate(docID, path, ir.Source{}, ToText(b.Arg))
	case KindAbstract:
		path := top.nextPath(docID, ir.KindSection)
		text := ToText(strings.Join(b.Body, "\n"))
		inner := []ir.Node{ir.NewParagraph(docID, ir.PathFor(path, ir.KindParagraph, 0), ir.Source{}, text, nil)}

		return ir.NewSection(docID, path, ir.Source{}, 1, "Abstract", inner)
	case KindItemize, KindEnumerate:
		path := top.nextPath(docID, ir.KindList)
		items := itemsFromBody(b.Body)

		return ir.NewList(docID, path, ir.Source{}, b.Kind == KindEnumerate, items)
	case KindVerbatim:
		path := top.nextPath(docID, ir.KindCodeBlock)

		return ir.NewCodeBlock(docID, path, ir.Source{}, "", strings.Join(b.Body, "\n"))
	case KindEquation:
		path := top.nextPath(docID, ir.KindMathBlock)

		return ir.NewMathBlock(docID, path, ir.Source{}, strings.TrimSpace(strings.Join(b.Body, "\n")))
	case KindCenter:
		path := top.nextPath(docID, ir.KindParagraph)
		text := ToText(strings.Join(b.Body, "\n"))

		return ir.NewParagraph(docID, path, ir.Source{}, text, &ir.ParagraphStyle{Align: ir.AlignCenter})
	case KindFigure, KindWrapfigure:
		path := top.nextPath(docID, ir.KindFigure)
		fd := figureFromBlock(b)

		return ir.NewFigure(docID, path, ir.Source{Raw: fd.Raw}, fd.Src, fd.Caption, fd.Label)
	case KindParagraph:
		text := ToText(strings.Join(b.Body, "\n"))
		if text == "" {
			return nil
		}
		path := top.nextPath(docID, ir.KindParagraph)

		return ir.NewParagraph(docID, path, ir.Source{}, text, nil)
	case KindRaw:
		path := top.nextPath(docID, ir.KindRawLatexBlock)

		return ir.NewRawLatexBlock(docID, path, ir.Source{Raw: b.Raw}, b.Raw)
	default:
		return nil
	}
}

func itemsFromBody(body []string) []string {
	joined := strings.Join(body, "\n")
	parts := strings.Split(joined, `\item`)

	var items []string
	for _, p := range parts {
		t := ToText(p)
		if t != "" {
			items = append(items, t)
		}
	}

	return items
}
