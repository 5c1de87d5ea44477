// Package cmd provides command-line interface implementations for xmd.
package cmd

import (
	kongcompletion "github.com/jotaen/kong-completion"
)

// CLI represents the root command structure for Kong.
type CLI struct {
	Render     RenderCmd                 `cmd:"" help:"Render an XMD file to HTML or LaTeX"`                   //nolint:lll,revive // Kong struct tag with alignment
	FromLatex  FromLatexCmd              `cmd:"" name:"from-latex" help:"Read a LaTeX file into XMD"`          //nolint:lll,revive // Kong struct tag with alignment
	Diff       DiffCmd                   `cmd:"" help:"Diff two XMD revisions at the node level"`              //nolint:lll,revive // Kong struct tag with alignment
	Track      TrackCmd                  `cmd:"" help:"Track word-level changes between an original and next"` //nolint:lll,revive // Kong struct tag with alignment
	Completion kongcompletion.Completion `cmd:"" help:"Generate shell completions"`                            //nolint:lll,revive // Kong struct tag with alignment
}
