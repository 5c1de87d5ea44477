// Package ir is the XMD intermediate representation: the tagged-union
// node tree, its identity/hash bookkeeping, and the snapshot store that
// the parsers (C3/C8) build and the renderers/delta engine (C5/C6/C7)
// consume.
//
// The node shape follows the teacher's internal/markdown AST: a shared
// base struct embedded by one concrete Go type per node variant
// (internal/markdown/node.go, node_types.go), rather than a single
// struct with every field, or dynamic-dispatch maps. Unlike the
// teacher's hash (which folds in children), node hashes here are
// content-local only, per spec.md I3 — containers are addressed
// through their own children's ids and hashes, never their own.
package ir

// Kind identifies which IR node variant a Node is. String() renders the
// canonical snake_case name spec.md uses in I5 and in structural paths.
type Kind uint8

const (
	KindDocument Kind = iota
	KindSection
	KindDocumentTitle
	KindDocumentAuthor
	KindDocumentDate
	KindParagraph
	KindList
	KindCodeBlock
	KindMathBlock
	KindFigure
	KindTable
	KindGrid
	KindRawXmdBlock
	KindRawLatexBlock
)

// String returns the canonical snake_case name for the kind, as used in
// stable node ids and in diagnostic output.
func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindSection:
		return "section"
	case KindDocumentTitle:
		return "document_title"
	case KindDocumentAuthor:
		return "document_author"
	case KindDocumentDate:
		return "document_date"
	case KindParagraph:
		return "paragraph"
	case KindList:
		return "list"
	case KindCodeBlock:
		return "code_block"
	case KindMathBlock:
		return "math_block"
	case KindFigure:
		return "figure"
	case KindTable:
		return "table"
	case KindGrid:
		return "grid"
	case KindRawXmdBlock:
		return "raw_xmd_block"
	case KindRawLatexBlock:
		return "raw_latex_block"
	default:
		return "unknown"
	}
}

// PathLeaf is the abbreviated path segment prefix used when assigning
// structural paths (spec.md §4.3), e.g. "sec[0]/p[2]".
func (k Kind) PathLeaf() string {
	switch k {
	case KindSection:
		return "sec"
	case KindDocumentTitle:
		return "title"
	case KindDocumentAuthor:
		return "author"
	case KindDocumentDate:
		return "date"
	case KindParagraph:
		return "p"
	case KindList:
		return "list"
	case KindCodeBlock:
		return "code"
	case KindMathBlock:
		return "math"
	case KindFigure:
		return "fig"
	case KindTable:
		return "table"
	case KindGrid:
		return "grid"
	case KindRawXmdBlock:
		return "raw"
	case KindRawLatexBlock:
		return "rawlatex"
	case KindDocument:
		return "doc"
	default:
		return "node"
	}
}

// Align is a horizontal alignment value shared by paragraphs, tables,
// figures and grids. The empty string means "not specified".
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
	// AlignFull is only valid on Grid.
	AlignFull Align = "full"
)

// Size is a named paragraph text size.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Rule is a horizontal or vertical rule weight.
type Rule string

const (
	RuleNone   Rule = "none"
	RuleSingle Rule = "single"
	RuleDouble Rule = "double"
)

// Placement distinguishes figures/grids that float inline with text
// from those that occupy a full block.
type Placement string

const (
	PlacementInline Placement = "inline"
	PlacementBlock  Placement = "block"
)

// Margin is a named outer-spacing preset for grids.
type Margin string

const (
	MarginSmall  Margin = "small"
	MarginMedium Margin = "medium"
	MarginLarge  Margin = "large"
)

// BorderStyle is a CSS/LaTeX-compatible border line style.
type BorderStyle string

const (
	BorderSolid  BorderStyle = "solid"
	BorderDotted BorderStyle = "dotted"
	BorderDashed BorderStyle = "dashed"
)
