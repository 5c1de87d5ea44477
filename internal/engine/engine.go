// Package engine is the consumer-facing API boundary spec.md §6
// describes: pure functions from text to IR and back, composing
// C1-C9 without any persistence, network, or editor coupling. Every
// function here is a deterministic transform over in-memory data, per
// §5's concurrency model — suspension points live only in external
// collaborators this package never calls.
package engine

import (
	"github.com/zadoox/xmd/internal/changetrack"
	"github.com/zadoox/xmd/internal/config"
	"github.com/zadoox/xmd/internal/delta"
	"github.com/zadoox/xmd/internal/htmlrender"
	"github.com/zadoox/xmd/internal/ir"
	"github.com/zadoox/xmd/internal/latexreader"
	"github.com/zadoox/xmd/internal/latexwriter"
	"github.com/zadoox/xmd/internal/xmdparse"
)

// ParseXMD parses XMD source into a Document, per §4.3. It never
// fails; unparseable constructs become Raw*Block nodes.
func ParseXMD(docID, xmd string) *ir.Document {
	return xmdparse.Parse(docID, xmd)
}

// ParseLatex parses the supported LaTeX subset into a Document, per
// §4.8.
func ParseLatex(docID, latex string) *ir.Document {
	return latexreader.Parse(docID, latex)
}

// RenderHTML renders a Document to preview HTML, per §4.6.
func RenderHTML(doc *ir.Document, cfg config.Config) string {
	return htmlrender.Render(doc, cfg)
}

// RenderLatex renders a Document to a compilable LaTeX document, per
// §4.7.
func RenderLatex(doc *ir.Document, cfg config.Config) string {
	return latexwriter.Render(doc, cfg)
}

// RenderLatexFragment renders a Document's body only, with no preamble
// or document environment wrapper.
func RenderLatexFragment(doc *ir.Document, cfg config.Config) string {
	return latexwriter.RenderFragment(doc, cfg)
}

// Snapshot builds an immutable Snapshot (tree + hash index) from a
// Document, per §4.4.
func Snapshot(doc *ir.Document) *ir.Snapshot {
	return ir.NewSnapshot(doc)
}

// Delta computes the deterministic, document-ordered difference
// between two snapshots, per §4.5.
func Delta(prev, next *ir.Snapshot) delta.Delta {
	var prevRoot, nextRoot ir.Node
	var prevHash, nextHash map[string]uint32
	if prev != nil {
		prevRoot, prevHash = prev.Root, prev.NodeHash
	}
	if next != nil {
		nextRoot, nextHash = next.Root, next.NodeHash
	}

	return delta.ComputeOrdered(prevRoot, nextRoot, prevHash, nextHash)
}

// EventsFromDelta emits the fixed-order added/removed/changed event
// stream for a delta, per §5's ordering rule.
func EventsFromDelta(d delta.Delta) []delta.Event {
	return delta.EventsFromDelta(d)
}

// StartTracking begins a change-tracking session between original and
// next, per §4.9.
func StartTracking(original, next string) *changetrack.Tracker {
	return changetrack.StartTracking(next, original)
}
