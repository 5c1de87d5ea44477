// Package xmderrs provides centralized error types for the xmd CLI.
//
// Per spec.md §7, the parsers and renderers never fail on malformed
// input — they degrade to Raw*Block nodes instead — so every error type
// here belongs to the CLI/collaborator boundary: bad flags, missing
// files, an unknown renderer format, an operation against a hunk id or
// tracking session that does not exist.
//
// All custom error types in this package:
//   - Use pointer receivers for the Error() method
//   - Include structured fields for contextual information
//   - Implement Unwrap() when wrapping an underlying error
//
// Error types are organized by domain:
//   - render.go: render format errors, plus the source-file and
//     document-id errors of every file-reading subcommand
//   - track.go: change-tracking session and hunk errors
//   - cli.go: flag and file-argument errors shared across subcommands
package xmderrs
