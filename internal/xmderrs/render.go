package xmderrs

import "fmt"

// UnknownRendererFormatError indicates --format named a value the render
// command does not recognize.
type UnknownRendererFormatError struct {
	Format string
}

func (e *UnknownRendererFormatError) Error() string {
	return fmt.Sprintf(
		"unknown render format %q; expected html, latex, or latex-fragment",
		e.Format,
	)
}

// SourceFileReadError indicates an input file for render, from-latex,
// diff or track could not be read.
type SourceFileReadError struct {
	Path string
	Err  error
}

func (e *SourceFileReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *SourceFileReadError) Unwrap() error {
	return e.Err
}

// EmptyDocumentIDError indicates a document id is required but was not
// provided or was derived as empty from the input path.
type EmptyDocumentIDError struct {
	Path string
}

func (*EmptyDocumentIDError) Error() string {
	return "document id cannot be empty"
}
