package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalk_VisitsInDocumentOrder(t *testing.T) {
	p1 := NewParagraph("doc", "p[0]", Source{}, "one", nil)
	p2 := NewParagraph("doc", "p[1]", Source{}, "two", nil)
	sec := NewSection("doc", "sec[0]", Source{}, 1, "Sec", []Node{p1})
	root := NewDocument("doc", "", Source{}, "doc", []Node{sec, p2})

	var visited []string
	err := Walk(root, VisitorFunc(func(n Node) error {
		visited = append(visited, n.ID())

		return nil
	}))

	require.NoError(t, err)
	assert.Equal(t, []string{root.ID(), sec.ID(), p1.ID(), p2.ID()}, visited)
}

func TestWalk_SkipChildren(t *testing.T) {
	p1 := NewParagraph("doc", "p[0]", Source{}, "one", nil)
	sec := NewSection("doc", "sec[0]", Source{}, 1, "Sec", []Node{p1})
	root := NewDocument("doc", "", Source{}, "doc", []Node{sec})

	var visited []string
	_ = Walk(root, VisitorFunc(func(n Node) error {
		visited = append(visited, n.ID())
		if _, ok := n.(*Section); ok {
			return SkipChildren
		}

		return nil
	}))

	assert.Equal(t, []string{root.ID(), sec.ID()}, visited)
}

func TestCollect_ReturnsAllNodes(t *testing.T) {
	p1 := NewParagraph("doc", "p[0]", Source{}, "one", nil)
	root := NewDocument("doc", "", Source{}, "doc", []Node{p1})

	nodes := Collect(root)
	assert.Len(t, nodes, 2)
}

func TestNewSnapshot_BuildsHashMap(t *testing.T) {
	p1 := NewParagraph("doc", "p[0]", Source{}, "one", nil)
	root := NewDocument("doc", "", Source{}, "doc", []Node{p1})

	snap := NewSnapshot(root)
	assert.Contains(t, snap.NodeHash, root.ID())
	assert.Contains(t, snap.NodeHash, p1.ID())
}

func TestIrStore_SetSnapshotAndLookup(t *testing.T) {
	store := NewIrStore()
	assert.Nil(t, store.Current())

	p1 := NewParagraph("doc", "p[0]", Source{}, "one", nil)
	root := NewDocument("doc", "", Source{}, "doc", []Node{p1})
	store.SetSnapshot(NewSnapshot(root))

	n, ok := store.Lookup(p1.ID())
	require.True(t, ok)
	assert.Equal(t, p1, n)

	_, ok = store.Lookup("nonexistent")
	assert.False(t, ok)
}

func TestHash_ContentOnly_NotChildren(t *testing.T) {
	// Per I3, a container's hash never folds in its children's hashes.
	childA := NewParagraph("doc", "p[0]", Source{}, "A", nil)
	sectionWithA := NewSection("doc", "sec[0]", Source{}, 1, "Same Title", []Node{childA})

	childB := NewParagraph("doc", "p[0]", Source{}, "B", nil)
	sectionWithB := NewSection("doc", "sec[0]", Source{}, 1, "Same Title", []Node{childB})

	assert.Equal(t, sectionWithA.Hash(), sectionWithB.Hash())
}
