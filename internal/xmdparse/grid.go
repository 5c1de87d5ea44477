package xmdparse

import (
	"strconv"
	"strings"

	"github.com/zadoox/xmd/internal/ir"
	"github.com/zadoox/xmd/internal/xmdlex"
)

// parseGridDirective parses a "::: cols=N ... :::" grid: rows separated
// by a "---"-only line, cells within a row separated by a "|||"-only
// line. Each cell's body is parsed by the cell-scope parser, which
// enforces I5 (no nested sections/titles/grids inside a cell).
func parseGridDirective(docID string, top *frame, b xmdlex.Block) ir.Node {
	attrs := parseAttrs(b.Args)

	cols := 0
	if v, ok := attrs["cols"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			cols = n
		}
	}

	var style *ir.GridStyle
	_, hasStyle := attrs["borderStyle"]
	_, hasColor := attrs["borderColor"]
	_, hasWidth := attrs["borderWidth"]
	if hasStyle || hasColor || hasWidth {
		style = &ir.GridStyle{BorderStyle: ir.BorderStyle(attrs["borderStyle"]), BorderColor: attrs["borderColor"]}
		if n, err := strconv.Atoi(attrs["borderWidth"]); err == nil {
			style.BorderWidthPx = n
			style.HasBorderWidth = true
		}
	}

	path := top.nextPath(docID, ir.KindGrid)

	rawRows := splitOnDelimiter(b.Lines, "---")
	rows := make([][]ir.GridCell, 0, len(rawRows))
	for r, rawRow := range rawRows {
		rawCells := splitOnDelimiter(rawRow, "|||")
		cells := make([]ir.GridCell, 0, len(rawCells))
		for c, rawCell := range rawCells {
			cellPath := path + "/cell[" + strconv.Itoa(r) + "," + strconv.Itoa(c) + "]"
			text := strings.Join(rawCell, "\n")
			cells = append(cells, ir.GridCell{Children: parseCellScope(docID, cellPath, text)})
		}
		rows = append(rows, cells)
	}

	return ir.NewGrid(docID, path, sourceFromBlock(b), ir.Grid{
		Cols:      cols,
		Caption:   attrs["caption"],
		Label:     attrs["label"],
		Align:     ir.Align(attrs["align"]),
		Placement: ir.Placement(attrs["placement"]),
		Margin:    ir.Margin(attrs["margin"]),
		Style:     style,
		Rows:      rows,
	})
}

// splitOnDelimiter splits lines on a bare "delim" line. A line that
// ends with delim but has leading content on the same physical line
// (the inline-suffix tolerance from §4.3) attaches that content to the
// segment that just closed before starting the next one.
func splitOnDelimiter(lines []string, delim string) [][]string {
	var segments [][]string
	var current []string

	for _, l := range lines {
		trimmed := strings.TrimRight(l, " \t")
		switch {
		case trimmed == delim:
			segments = append(segments, current)
			current = nil
		case strings.HasSuffix(trimmed, delim):
			prefix := strings.TrimSuffix(trimmed, delim)
			if prefix != "" {
				current = append(current, prefix)
			}
			segments = append(segments, current)
			current = nil
		default:
			current = append(current, l)
		}
	}
	segments = append(segments, current)

	return segments
}

// parseCellScope parses a grid cell's body as its own mini-document,
// forbidding containers I5 reserves for the top level: a heading, a
// title/author/date marker, or a nested grid inside the cell all
// degrade to RawXmdBlock instead of nesting.
func parseCellScope(docID, cellPath, text string) []ir.Node {
	blocks := xmdlex.Tokenize(text)
	f := newFrame(cellPath, 0, "", ir.Source{})

	for _, b := range blocks {
		var node ir.Node
		switch {
		case b.Kind == xmdlex.KindHeading,
			b.Kind == xmdlex.KindTitleMarker,
			b.Kind == xmdlex.KindAuthorMarker,
			b.Kind == xmdlex.KindDateMarker:
			path := f.nextPath(docID, ir.KindRawXmdBlock)
			node = ir.NewRawXmdBlock(docID, path, sourceFromBlock(b), b.Raw)
		case isGridDirective(b):
			path := f.nextPath(docID, ir.KindRawXmdBlock)
			node = ir.NewRawXmdBlock(docID, path, sourceFromBlock(b), b.Raw)
		default:
			node = parseLeaf(docID, f, b, false)
		}
		if node != nil {
			f.children = append(f.children, node)
		}
	}

	return f.children
}
