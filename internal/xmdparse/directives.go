package xmdparse

import (
	"strings"

	"github.com/zadoox/xmd/internal/ir"
	"github.com/zadoox/xmd/internal/xmdlex"
)

// parseDirective dispatches a ":::" block to the right IR node per
// spec.md §4.3. An unrecognized directive name degrades to
// RawXmdBlock, losslessly, per the parser's never-fail discipline.
func parseDirective(docID string, top *frame, b xmdlex.Block, allowContainers bool) ir.Node {
	switch {
	case b.Name == "equation":
		path := top.nextPath(docID, ir.KindMathBlock)
		latex := strings.Join(b.Lines, "\n")

		return ir.NewMathBlock(docID, path, sourceFromBlock(b), latex)

	case b.Name == "figure":
		return parseFigureDirective(docID, top, b)

	case b.Name == "table":
		return parseTableDirective(docID, top, b)

	case strings.HasPrefix(b.Name, "unknown:"):
		path := top.nextPath(docID, ir.KindRawXmdBlock)

		return ir.NewRawXmdBlock(docID, path, sourceFromBlock(b), b.Raw)

	case b.Name == "" && allowContainers && looksLikeTableBody(b.Lines):
		return parseTableDirective(docID, top, b)

	case b.Name == "" && allowContainers:
		return parseGridDirective(docID, top, b)

	default:
		// A grid directive encountered where I5 forbids one (nested
		// inside a grid cell): lower it losslessly instead of nesting.
		path := top.nextPath(docID, ir.KindRawXmdBlock)

		return ir.NewRawXmdBlock(docID, path, sourceFromBlock(b), b.Raw)
	}
}

func isGridDirective(b xmdlex.Block) bool {
	return b.Kind == xmdlex.KindDirective && b.Name == ""
}

// parseFigureDirective handles ":::figure ... :::": the first non-empty
// body line is src, remaining lines joined by a space form the caption.
func parseFigureDirective(docID string, top *frame, b xmdlex.Block) ir.Node {
	var src string
	var captionParts []string
	for _, l := range b.Lines {
		t := strings.TrimSpace(l)
		if t == "" {
			continue
		}
		if src == "" {
			src = t

			continue
		}
		captionParts = append(captionParts, t)
	}

	attrs := parseAttrs(b.Args)
	label := attrs["label"]
	if label == "" {
		label = extractLabel(b.Args)
	}

	path := top.nextPath(docID, ir.KindFigure)
	node := ir.NewFigure(docID, path, sourceFromBlock(b), src, strings.Join(captionParts, " "), label)

	return node
}
