package xmdparse

import (
	"regexp"
	"strings"

	"github.com/zadoox/xmd/internal/ir"
	"github.com/zadoox/xmd/internal/xmdattrs"
	"github.com/zadoox/xmd/internal/xmdlex"
)

var figureLineRe = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]*)\)`)

// parseFigureLine handles a standalone markdown figure line
// "![alt](url){attrs}". The attribute block is not decomposed into
// discrete fields on Figure: per spec.md §3/§4.3, source.raw is the
// source of truth for attributes the IR does not model directly
// (width/align/placement/desc/border*); renderers re-read it.
//
// A non-empty trailing fragment on the same physical line (text
// immediately following the attribute block, with no separating
// space) becomes its own Paragraph sibling appended right after the
// Figure — this is what lets the LaTeX writer keep an inline figure
// and the text that wraps around it adjacent with no blank line.
func parseFigureLine(docID string, top *frame, b xmdlex.Block) ir.Node {
	m := figureLineRe.FindStringSubmatch(b.Lines[0])
	alt, url := "", ""
	if m != nil {
		alt, url = m[1], m[2]
	}

	attrBlock := ""
	trailing := ""
	if len(b.Lines) > 1 {
		attrBlock = b.Lines[1]
	}
	if len(b.Lines) > 2 {
		trailing = b.Lines[2]
	}

	inner, _ := xmdattrs.StripAttrBlock(attrBlock)
	label := extractLabel(inner)
	path := top.nextPath(docID, ir.KindFigure)
	src := sourceFromBlock(b)
	src.Raw = b.Raw
	fig := ir.NewFigure(docID, path, src, url, alt, label)

	if strings.TrimSpace(trailing) == "" {
		return fig
	}

	top.children = append(top.children, fig)
	tpath := top.nextPath(docID, ir.KindParagraph)

	return ir.NewParagraph(docID, tpath, ir.Source{Raw: trailing}, trailing, nil)
}
