// Package cmd provides command-line interface implementations for xmd.
// This file contains the diff command for node-level delta computation.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zadoox/xmd/internal/engine"
	"github.com/zadoox/xmd/internal/xmderrs"
)

// DiffCmd snapshots two revisions of an XMD file through C1-C4 and
// prints the delta (C5) between them: added/removed/changed node ids
// and the corresponding event stream.
type DiffCmd struct {
	Old string `arg:"" help:"Path to the original XMD revision"` //nolint:lll,revive
	New string `arg:"" help:"Path to the next XMD revision"`     //nolint:lll,revive
}

// Run executes the diff command.
func (c *DiffCmd) Run() error {
	oldSource, err := os.ReadFile(c.Old)
	if err != nil {
		return &xmderrs.SourceFileReadError{Path: c.Old, Err: err}
	}
	newSource, err := os.ReadFile(c.New)
	if err != nil {
		return &xmderrs.SourceFileReadError{Path: c.New, Err: err}
	}

	docID := documentIDFromPath(c.New)
	if docID == "" {
		return &xmderrs.EmptyDocumentIDError{Path: c.New}
	}

	prevDoc := engine.ParseXMD(docID, string(oldSource))
	nextDoc := engine.ParseXMD(docID, string(newSource))

	prevSnap := engine.Snapshot(prevDoc)
	nextSnap := engine.Snapshot(nextDoc)

	d := engine.Delta(prevSnap, nextSnap)
	events := engine.EventsFromDelta(d)

	printIDs(os.Stdout, "added", d.Added)
	printIDs(os.Stdout, "removed", d.Removed)
	printIDs(os.Stdout, "changed", d.Changed)

	for _, ev := range events {
		fmt.Fprintf(os.Stdout, "event %s: %s\n", ev.Kind, strings.Join(ev.IDs, ", "))
	}

	return nil
}

func printIDs(w io.Writer, label string, ids []string) {
	if len(ids) == 0 {
		return
	}
	fmt.Fprintf(w, "%s: %s\n", label, strings.Join(ids, ", "))
}
