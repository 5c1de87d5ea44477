package ir

import (
	"strconv"

	"github.com/zadoox/xmd/internal/hashid"
)

// newBase computes a node's stable id from (docID, kind, path) per
// spec.md I1/I2 and fills in base. Parsers (C3/C8) call one of the
// New* constructors below rather than this directly.
func newBase(docID string, kind Kind, path string, src Source) base {
	b := base{}
	b.setIdentity(hashid.StableNodeID(docID, kind.String(), path), path, src)

	return b
}

func NewDocument(docID, path string, src Source, externalDocID string, children []Node) *Document {
	return &Document{base: newBase(docID, KindDocument, path, src), DocId: externalDocID, children: children}
}

func NewSection(docID, path string, src Source, level int, title string, children []Node) *Section {
	return &Section{base: newBase(docID, KindSection, path, src), Level: level, Title: title, children: children}
}

func NewDocumentTitle(docID, path string, src Source, text string) *DocumentTitle {
	return &DocumentTitle{base: newBase(docID, KindDocumentTitle, path, src), Text: text}
}

func NewDocumentAuthor(docID, path string, src Source, text string) *DocumentAuthor {
	return &DocumentAuthor{base: newBase(docID, KindDocumentAuthor, path, src), Text: text}
}

func NewDocumentDate(docID, path string, src Source, text string) *DocumentDate {
	return &DocumentDate{base: newBase(docID, KindDocumentDate, path, src), Text: text}
}

func NewParagraph(docID, path string, src Source, text string, style *ParagraphStyle) *Paragraph {
	return &Paragraph{base: newBase(docID, KindParagraph, path, src), Text: text, Style: style}
}

func NewList(docID, path string, src Source, ordered bool, items []string) *List {
	return &List{base: newBase(docID, KindList, path, src), Ordered: ordered, Items: items}
}

func NewCodeBlock(docID, path string, src Source, language, code string) *CodeBlock {
	return &CodeBlock{base: newBase(docID, KindCodeBlock, path, src), Language: language, Code: code}
}

func NewMathBlock(docID, path string, src Source, latex string) *MathBlock {
	return &MathBlock{base: newBase(docID, KindMathBlock, path, src), Latex: latex}
}

func NewFigure(docID, path string, src Source, fsrc, caption, label string) *Figure {
	return &Figure{base: newBase(docID, KindFigure, path, src), Src: fsrc, Caption: caption, Label: label}
}

func NewTable(docID, path string, src Source, t Table) *Table {
	t.base = newBase(docID, KindTable, path, src)

	return &t
}

func NewGrid(docID, path string, src Source, g Grid) *Grid {
	g.base = newBase(docID, KindGrid, path, src)

	return &g
}

func NewRawXmdBlock(docID, path string, src Source, xmd string) *RawXmdBlock {
	return &RawXmdBlock{base: newBase(docID, KindRawXmdBlock, path, src), Xmd: xmd}
}

func NewRawLatexBlock(docID, path string, src Source, latex string) *RawLatexBlock {
	return &RawLatexBlock{base: newBase(docID, KindRawLatexBlock, path, src), Latex: latex}
}

// PathFor joins a parent path with a kind-indexed leaf segment, e.g.
// PathFor("sec[0]", KindParagraph, 2) == "sec[0]/p[2]".
func PathFor(parent string, kind Kind, index int) string {
	leaf := kind.PathLeaf() + "[" + strconv.Itoa(index) + "]"
	if parent == "" {
		return leaf
	}

	return parent + "/" + leaf
}
