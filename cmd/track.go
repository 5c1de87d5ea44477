// Package cmd provides command-line interface implementations for xmd.
// This file contains the track command for word-level change tracking.
package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/zadoox/xmd/internal/changetrack"
	"github.com/zadoox/xmd/internal/engine"
	"github.com/zadoox/xmd/internal/xmderrs"
)

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// TrackCmd runs the change tracker (C9) between an original and a next
// text, printing hunks and optionally resolving accept/reject state.
type TrackCmd struct {
	Original  string   `arg:"" help:"Path to the original text"`                               //nolint:lll,revive
	Next      string   `arg:"" help:"Path to the next text"`                                    //nolint:lll,revive
	Accept    []string `help:"Accept the hunk with this id (repeatable)" name:"accept"`         //nolint:lll,revive
	Reject    []string `help:"Reject the hunk with this id (repeatable)" name:"reject"`         //nolint:lll,revive
	AcceptAll bool     `help:"Accept every hunk" name:"accept-all"`                              //nolint:lll,revive
	Apply     bool     `help:"Print the resulting text instead of the hunk list" name:"apply"`  //nolint:lll,revive
}

// Run executes the track command.
func (c *TrackCmd) Run() error {
	original, err := os.ReadFile(c.Original)
	if err != nil {
		return &xmderrs.SourceFileReadError{Path: c.Original, Err: err}
	}
	next, err := os.ReadFile(c.Next)
	if err != nil {
		return &xmderrs.SourceFileReadError{Path: c.Next, Err: err}
	}

	if err := conflictingIDs(c.Accept, c.Reject); err != nil {
		return err
	}

	tracker := engine.StartTracking(string(original), string(next))

	if c.AcceptAll {
		tracker.AcceptAll()
	}
	for _, id := range c.Accept {
		if err := tracker.Accept(id); err != nil {
			return &xmderrs.UnknownHunkIDError{ID: id}
		}
	}
	for _, id := range c.Reject {
		if err := tracker.Reject(id); err != nil {
			return &xmderrs.UnknownHunkIDError{ID: id}
		}
	}

	if c.Apply {
		fmt.Println(tracker.ApplyChanges())

		return nil
	}

	color := isatty.IsTerminal(os.Stdout.Fd())
	for _, h := range tracker.Hunks() {
		printHunk(h, color)
	}

	return nil
}

func conflictingIDs(accept, reject []string) error {
	rejected := make(map[string]bool, len(reject))
	for _, id := range reject {
		rejected[id] = true
	}
	for _, id := range accept {
		if rejected[id] {
			return &xmderrs.ConflictingAcceptRejectError{ID: id}
		}
	}

	return nil
}

func printHunk(h changetrack.Hunk, color bool) {
	added, removed := formatSpan(h.NewText, color, ansiGreen), formatSpan(h.OriginalText, color, ansiRed)

	switch h.Type {
	case changetrack.HunkAdd:
		fmt.Printf("%s %s [%d,%d) +%s\n", h.ID, h.Type, h.StartPosition, h.EndPosition, added)
	case changetrack.HunkRemove:
		fmt.Printf("%s %s [%d,%d) -%s\n", h.ID, h.Type, h.StartPosition, h.EndPosition, removed)
	default:
		fmt.Printf("%s %s [%d,%d) -%s +%s\n", h.ID, h.Type, h.StartPosition, h.EndPosition, removed, added)
	}
}

func formatSpan(text string, color bool, ansiCode string) string {
	if !color {
		return fmt.Sprintf("%q", text)
	}

	return ansiCode + fmt.Sprintf("%q", text) + ansiReset
}
