// Package cmd provides command-line interface implementations for xmd.
// This file contains the from-latex command for LaTeX → XMD round-trip.
package cmd

import (
	"fmt"
	"os"

	"github.com/zadoox/xmd/internal/engine"
	"github.com/zadoox/xmd/internal/xmdparse"
	"github.com/zadoox/xmd/internal/xmderrs"
)

// FromLatexCmd reads a LaTeX source file through the supported subset
// reader (C8) and prints its reconstructed XMD.
type FromLatexCmd struct {
	File string `arg:"" help:"LaTeX source file"` //nolint:lll,revive
}

// Run executes the from-latex command.
func (c *FromLatexCmd) Run() error {
	source, err := os.ReadFile(c.File)
	if err != nil {
		return &xmderrs.SourceFileReadError{Path: c.File, Err: err}
	}

	docID := documentIDFromPath(c.File)
	if docID == "" {
		return &xmderrs.EmptyDocumentIDError{Path: c.File}
	}

	doc := engine.ParseLatex(docID, string(source))
	fmt.Println(xmdparse.Print(doc))

	return nil
}
