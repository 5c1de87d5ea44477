// Package delta implements C5: computing the (added, removed, changed)
// id sets between two snapshots' hash maps, and the fixed-order event
// stream derived from them.
//
// Grounded on the shape of the teacher's visitor-driven extraction in
// internal/markdown/delta.go (walk once, classify into named buckets),
// though the semantics here are spec.md's generic hash-map diff rather
// than the teacher's domain-specific requirement-delta classification.
package delta

import "github.com/zadoox/xmd/internal/ir"

// Delta holds the three disjoint id sets spec.md §4.5 defines.
type Delta struct {
	Added   []string
	Removed []string
	Changed []string
}

// Compute returns the delta between prev and next hash maps. Ordering
// follows iteration order of next for Added/Changed and of prev for
// Removed, per §4.5 — since Go map iteration order is randomized, both
// prev and next should be supplied alongside a stable id ordering (the
// originating snapshot's document-order id list) when a caller needs a
// deterministic sequence; ComputeOrdered does this.
func Compute(prev, next map[string]uint32) Delta {
	var d Delta
	for id, h := range next {
		ph, ok := prev[id]
		switch {
		case !ok:
			d.Added = append(d.Added, id)
		case ph != h:
			d.Changed = append(d.Changed, id)
		}
	}
	for id := range prev {
		if _, ok := next[id]; !ok {
			d.Removed = append(d.Removed, id)
		}
	}

	return d
}

// ComputeOrdered is Compute but walks prevRoot/nextRoot in document
// order to decide iteration order, satisfying §4.5's ordering rule
// deterministically instead of relying on Go's randomized map order.
func ComputeOrdered(prevRoot, nextRoot ir.Node, prevHashes, nextHashes map[string]uint32) Delta {
	var d Delta

	nextIDs := ir.Collect(nextRoot)
	for _, n := range nextIDs {
		id := n.ID()
		h := nextHashes[id]
		ph, ok := prevHashes[id]
		switch {
		case !ok:
			d.Added = append(d.Added, id)
		case ph != h:
			d.Changed = append(d.Changed, id)
		}
	}

	prevIDs := ir.Collect(prevRoot)
	for _, n := range prevIDs {
		id := n.ID()
		if _, ok := nextHashes[id]; !ok {
			d.Removed = append(d.Removed, id)
		}
	}

	return d
}

// EventKind names one of the three event types emitted from a delta.
type EventKind string

const (
	EventNodesAdded   EventKind = "nodes_added"
	EventNodesRemoved EventKind = "nodes_removed"
	EventNodesChanged EventKind = "nodes_changed"
)

// Event pairs an EventKind with the ids it applies to.
type Event struct {
	Kind EventKind
	IDs  []string
}

// EventsFromDelta emits events only for non-empty groups, in the fixed
// order added, removed, changed (§4.5/P4). An empty delta yields no
// events.
func EventsFromDelta(d Delta) []Event {
	var events []Event
	if len(d.Added) > 0 {
		events = append(events, Event{Kind: EventNodesAdded, IDs: d.Added})
	}
	if len(d.Removed) > 0 {
		events = append(events, Event{Kind: EventNodesRemoved, IDs: d.Removed})
	}
	if len(d.Changed) > 0 {
		events = append(events, Event{Kind: EventNodesChanged, IDs: d.Changed})
	}

	return events
}
