package xmderrs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnknownRendererFormatError_Message(t *testing.T) {
	err := &UnknownRendererFormatError{Format: "pdf"}
	assert.Contains(t, err.Error(), "pdf")
}

func TestSourceFileReadError_Unwraps(t *testing.T) {
	inner := errors.New("permission denied")
	err := &SourceFileReadError{Path: "doc.xmd", Err: inner}

	assert.Contains(t, err.Error(), "doc.xmd")
	assert.ErrorIs(t, err, inner)
}

func TestUnresolvedTrackingSessionError_Message(t *testing.T) {
	err := &UnresolvedTrackingSessionError{Operation: "--accept"}
	assert.Contains(t, err.Error(), "--accept")
}

func TestUnknownHunkIDError_Message(t *testing.T) {
	err := &UnknownHunkIDError{ID: "h7"}
	assert.Contains(t, err.Error(), "h7")
}

func TestConflictingAcceptRejectError_Message(t *testing.T) {
	err := &ConflictingAcceptRejectError{ID: "h1"}
	assert.Contains(t, err.Error(), "h1")
}

func TestConfigParseError_Unwraps(t *testing.T) {
	inner := errors.New("bad yaml")
	err := &ConfigParseError{Path: "xmd.yaml", Err: inner}

	assert.ErrorIs(t, err, inner)
}
