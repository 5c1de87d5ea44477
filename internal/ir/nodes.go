package ir

import (
	"strconv"
	"strings"

	"github.com/zadoox/xmd/internal/hashid"
)

// fieldSep separates fields inside a node's canonical hash payload; it
// cannot appear in normalized XMD text, so it cannot cause accidental
// collisions between e.g. {"a","bc"} and {"ab","c"}.
const fieldSep = "\x1f"

func payload(fields ...string) []byte {
	return []byte(strings.Join(fields, fieldSep))
}

// ---- Document ----

// Document is the IR root. DocId is the caller-supplied external handle
// (distinct from the internal node id of the root itself).
type Document struct {
	base
	DocId    string
	children []Node
}

func (d *Document) Kind() Kind        { return KindDocument }
func (d *Document) Children() []Node  { return d.children }
func (d *Document) Hash() uint32      { return hashid.FNV32(payload(d.DocId)) }

// ---- Section ----

// Section groups children under a heading of Level 1..6, per I4's
// heading-depth nesting rule.
type Section struct {
	base
	Level    int
	Title    string
	children []Node
}

func (s *Section) Kind() Kind       { return KindSection }
func (s *Section) Children() []Node { return s.children }
func (s *Section) Hash() uint32 {
	return hashid.FNV32(payload(strconv.Itoa(s.Level), normalizeText(s.Title)))
}

// ---- Document-level metadata markers ----

type DocumentTitle struct {
	base
	Text string
}

func (n *DocumentTitle) Kind() Kind       { return KindDocumentTitle }
func (n *DocumentTitle) Children() []Node { return nil }
func (n *DocumentTitle) Hash() uint32     { return hashid.FNV32(payload(normalizeText(n.Text))) }

type DocumentAuthor struct {
	base
	Text string
}

func (n *DocumentAuthor) Kind() Kind       { return KindDocumentAuthor }
func (n *DocumentAuthor) Children() []Node { return nil }
func (n *DocumentAuthor) Hash() uint32     { return hashid.FNV32(payload(normalizeText(n.Text))) }

type DocumentDate struct {
	base
	Text string
}

func (n *DocumentDate) Kind() Kind       { return KindDocumentDate }
func (n *DocumentDate) Children() []Node { return nil }
func (n *DocumentDate) Hash() uint32     { return hashid.FNV32(payload(normalizeText(n.Text))) }

// ---- Paragraph ----

// ParagraphStyle mirrors spec.md's optional paragraph style bag. A nil
// *ParagraphStyle means "no style attributes present" and is distinct
// from a present-but-zero-value style.
type ParagraphStyle struct {
	Align Align
	Color string
	Size  Size
}

type Paragraph struct {
	base
	Text  string
	Style *ParagraphStyle
}

func (n *Paragraph) Kind() Kind       { return KindParagraph }
func (n *Paragraph) Children() []Node { return nil }
func (n *Paragraph) Hash() uint32 {
	align, size := "", ""
	color := ""
	if n.Style != nil {
		align, color, size = string(n.Style.Align), n.Style.Color, string(n.Style.Size)
	}

	return hashid.FNV32(payload(normalizeText(n.Text), align, color, size))
}

// ---- List ----

type List struct {
	base
	Ordered bool
	Items   []string
}

func (n *List) Kind() Kind       { return KindList }
func (n *List) Children() []Node { return nil }
func (n *List) Hash() uint32 {
	fields := make([]string, 0, len(n.Items)+1)
	fields = append(fields, strconv.FormatBool(n.Ordered))
	for _, item := range n.Items {
		fields = append(fields, normalizeText(item))
	}

	return hashid.FNV32(payload(fields...))
}

// ---- CodeBlock ----

type CodeBlock struct {
	base
	Language string
	Code     string
}

func (n *CodeBlock) Kind() Kind       { return KindCodeBlock }
func (n *CodeBlock) Children() []Node { return nil }
func (n *CodeBlock) Hash() uint32 {
	return hashid.FNV32(payload(n.Language, normalizeCodeText(n.Code)))
}

// ---- MathBlock ----

type MathBlock struct {
	base
	Latex string
}

func (n *MathBlock) Kind() Kind       { return KindMathBlock }
func (n *MathBlock) Children() []Node { return nil }
func (n *MathBlock) Hash() uint32     { return hashid.FNV32(payload(normalizeCodeText(n.Latex))) }

// ---- Figure ----

// Figure's Source field (embedded via base.source) is the documented
// source of truth for attributes the struct does not model directly
// (width, align, placement, desc, border*); parsers populate base's
// Source with the raw "![alt](url){...}" text.
type Figure struct {
	base
	Src     string
	Caption string
	Label   string
}

func (n *Figure) Kind() Kind       { return KindFigure }
func (n *Figure) Children() []Node { return nil }
func (n *Figure) Hash() uint32 {
	return hashid.FNV32(payload(n.Src, normalizeText(n.Caption), n.Label, n.source.Raw))
}

// ---- Table ----

type TableStyle struct {
	BorderStyle   BorderStyle
	BorderColor   string
	BorderWidthPx int
	HasBorderWidth bool
}

type Table struct {
	base
	Header   []string
	Rows     [][]string
	Caption  string
	Label    string
	ColAlign []Align
	VRules   []Rule
	HRules   []Rule
	Style    *TableStyle
}

func (n *Table) Kind() Kind       { return KindTable }
func (n *Table) Children() []Node { return nil }
func (n *Table) Hash() uint32 {
	fields := []string{n.Caption, n.Label}
	fields = append(fields, normalizeText(n.Caption))
	for _, h := range n.Header {
		fields = append(fields, normalizeCell(h))
	}
	for _, row := range n.Rows {
		for _, cell := range row {
			fields = append(fields, normalizeCell(cell))
		}
	}
	for _, a := range n.ColAlign {
		fields = append(fields, string(a))
	}
	for _, r := range n.VRules {
		fields = append(fields, string(r))
	}
	for _, r := range n.HRules {
		fields = append(fields, string(r))
	}
	if n.Style != nil {
		fields = append(fields, string(n.Style.BorderStyle), n.Style.BorderColor,
			strconv.Itoa(n.Style.BorderWidthPx))
	}

	return hashid.FNV32(payload(fields...))
}

// ---- Grid ----

type GridStyle struct {
	BorderStyle    BorderStyle
	BorderColor    string
	BorderWidthPx  int
	HasBorderWidth bool
}

// GridCell owns a nested sequence of IR nodes, parsed by the cell-scope
// parser. Per I5, a cell's children never include Section,
// DocumentTitle/Author/Date, or Grid.
type GridCell struct {
	Children []Node
}

type Grid struct {
	base
	Cols      int
	Caption   string
	Label     string
	Align     Align
	Placement Placement
	Margin    Margin
	Style     *GridStyle
	Rows      [][]GridCell
}

func (n *Grid) Kind() Kind { return KindGrid }
func (n *Grid) Children() []Node {
	var out []Node
	for _, row := range n.Rows {
		for _, cell := range row {
			out = append(out, cell.Children...)
		}
	}

	return out
}

// Hash covers the grid's own attributes only, per I3; cell contents are
// addressed through their own node ids/hashes, not folded in here.
func (n *Grid) Hash() uint32 {
	fields := []string{
		strconv.Itoa(n.Cols), normalizeText(n.Caption), n.Label,
		string(n.Align), string(n.Placement), string(n.Margin),
		strconv.Itoa(len(n.Rows)),
	}
	for _, row := range n.Rows {
		fields = append(fields, strconv.Itoa(len(row)))
	}
	if n.Style != nil {
		fields = append(fields, string(n.Style.BorderStyle), n.Style.BorderColor,
			strconv.Itoa(n.Style.BorderWidthPx))
	}

	return hashid.FNV32(payload(fields...))
}

// ---- Raw fallbacks ----

type RawXmdBlock struct {
	base
	Xmd string
}

func (n *RawXmdBlock) Kind() Kind       { return KindRawXmdBlock }
func (n *RawXmdBlock) Children() []Node { return nil }
func (n *RawXmdBlock) Hash() uint32     { return hashid.FNV32(payload(normalizeText(n.Xmd))) }

type RawLatexBlock struct {
	base
	Latex string
}

func (n *RawLatexBlock) Kind() Kind       { return KindRawLatexBlock }
func (n *RawLatexBlock) Children() []Node { return nil }
func (n *RawLatexBlock) Hash() uint32     { return hashid.FNV32(payload(normalizeText(n.Latex))) }
