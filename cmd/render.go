// Package cmd provides command-line interface implementations for xmd.
// This file contains the render command for XMD → HTML/LaTeX output.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/zadoox/xmd/internal/config"
	"github.com/zadoox/xmd/internal/engine"
	"github.com/zadoox/xmd/internal/xmderrs"
)

// RenderCmd renders an XMD source file to HTML or LaTeX.
type RenderCmd struct {
	File   string `arg:"" help:"XMD source file"`                                                                //nolint:lll,revive
	Format string `default:"html" enum:"html,latex,latex-fragment" help:"Output format" name:"format" short:"f"` //nolint:lll,revive
	Copy   bool   `help:"Copy the rendered output to the system clipboard instead of stdout" name:"copy"`         //nolint:lll,revive
}

// Run executes the render command.
func (c *RenderCmd) Run() error {
	source, err := os.ReadFile(c.File)
	if err != nil {
		return &xmderrs.SourceFileReadError{Path: c.File, Err: err}
	}

	docID := documentIDFromPath(c.File)
	if docID == "" {
		return &xmderrs.EmptyDocumentIDError{Path: c.File}
	}
	doc := engine.ParseXMD(docID, string(source))

	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	var out string
	switch c.Format {
	case "html":
		out = engine.RenderHTML(doc, cfg)
	case "latex":
		out = engine.RenderLatex(doc, cfg)
	case "latex-fragment":
		out = engine.RenderLatexFragment(doc, cfg)
	default:
		return &xmderrs.UnknownRendererFormatError{Format: c.Format}
	}

	if c.Copy {
		if err := clipboard.WriteAll(out); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}

		return nil
	}

	fmt.Println(out)

	return nil
}

// documentIDFromPath derives a stable document id from a source path:
// the base filename without its extension, left to the caller to
// override at the engine.ParseXMD/ParseLatex boundary for any other
// id scheme.
func documentIDFromPath(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}
