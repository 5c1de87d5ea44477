package hashid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFNV32_Deterministic(t *testing.T) {
	a := FNV32([]byte("hello world"))
	b := FNV32([]byte("hello world"))
	assert.Equal(t, a, b)
}

func TestFNV32_DifferentInputsDiffer(t *testing.T) {
	assert.NotEqual(t, FNV32([]byte("a")), FNV32([]byte("b")))
}

func TestStableNodeID_Deterministic(t *testing.T) {
	id1 := StableNodeID("doc1", "paragraph", "0.1")
	id2 := StableNodeID("doc1", "paragraph", "0.1")
	assert.Equal(t, id1, id2)
	assert.Len(t, id1, 8)
}

func TestStableNodeID_VariesByEachInput(t *testing.T) {
	base := StableNodeID("doc1", "paragraph", "0.1")

	assert.NotEqual(t, base, StableNodeID("doc2", "paragraph", "0.1"))
	assert.NotEqual(t, base, StableNodeID("doc1", "heading", "0.1"))
	assert.NotEqual(t, base, StableNodeID("doc1", "paragraph", "0.2"))
}

func TestStableNodeID_HexEncoded(t *testing.T) {
	id := StableNodeID("doc1", "section", "0")
	for _, r := range id {
		assert.True(t, (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f'))
	}
}
