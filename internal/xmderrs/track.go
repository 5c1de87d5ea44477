package xmderrs

import "fmt"

// UnresolvedTrackingSessionError indicates a track subcommand flag
// (--accept, --reject, --apply) was used before a session was started
// against both an original and a next file.
type UnresolvedTrackingSessionError struct {
	Operation string
}

func (e *UnresolvedTrackingSessionError) Error() string {
	return fmt.Sprintf("no active tracking session for %s; provide both <original> and <next>", e.Operation)
}

// UnknownHunkIDError indicates --accept or --reject named a hunk id the
// current tracking session does not contain.
type UnknownHunkIDError struct {
	ID string
}

func (e *UnknownHunkIDError) Error() string {
	return fmt.Sprintf("unknown hunk id %q", e.ID)
}

// ConflictingAcceptRejectError indicates the same hunk id was named by
// both --accept and --reject in a single invocation.
type ConflictingAcceptRejectError struct {
	ID string
}

func (e *ConflictingAcceptRejectError) Error() string {
	return fmt.Sprintf("hunk id %q named by both --accept and --reject", e.ID)
}
