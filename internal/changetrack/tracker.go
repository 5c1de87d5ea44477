package changetrack

import "fmt"

// Tracker holds one change-tracking session: the original text, the
// hunks diffed against a next text, and each hunk's accept/reject
// state. Grounded on the teacher's Tracker/Config shape
// (internal/track/tracker.go) — a struct built from a constructor,
// holding a map-backed mutable state machine operated on by named
// methods — adapted here to hunk accept/reject instead of task-status
// transitions.
type Tracker struct {
	original string
	next     string
	hunks    []Hunk
	byID     map[string]int
}

// StartTracking begins a session, diffing next against
// originalOverride[0]. Without an override the original is next itself,
// so the session starts with no hunks.
func StartTracking(next string, originalOverride ...string) *Tracker {
	original := next
	if len(originalOverride) > 0 {
		original = originalOverride[0]
	}

	t := &Tracker{original: original, next: next}
	t.rediff()

	return t
}

func (t *Tracker) rediff() {
	t.hunks = Diff(t.original, t.next)
	t.byID = make(map[string]int, len(t.hunks))
	for i, h := range t.hunks {
		t.byID[h.ID] = i
	}
}

// Hunks returns the current hunk list, positions mapped into next's
// coordinate system for display.
func (t *Tracker) Hunks() []Hunk {
	return mapChangesToNewContent(t.hunks, t.original, t.next)
}

// Accept marks a hunk as accepted by id.
func (t *Tracker) Accept(id string) error {
	return t.setAccepted(id, true)
}

// Reject marks a hunk as rejected by id.
func (t *Tracker) Reject(id string) error {
	return t.setAccepted(id, false)
}

func (t *Tracker) setAccepted(id string, accepted bool) error {
	idx, ok := t.byID[id]
	if !ok {
		return fmt.Errorf("changetrack: unknown hunk id %q", id)
	}
	t.hunks[idx].Accepted = boolPtr(accepted)

	return nil
}

// AcceptAll marks every hunk accepted.
func (t *Tracker) AcceptAll() {
	for i := range t.hunks {
		t.hunks[i].Accepted = boolPtr(true)
	}
}

// RejectAll marks every hunk rejected.
func (t *Tracker) RejectAll() {
	for i := range t.hunks {
		t.hunks[i].Accepted = boolPtr(false)
	}
}

// ApplyChanges produces the final text given the current accept/reject
// state, per spec.md §4.9's policy.
func (t *Tracker) ApplyChanges() string {
	return applyAcceptedChanges(t.original, t.hunks)
}

// CancelTracking discards the session's hunk state, reverting to as if
// StartTracking had never been called on this tracker.
func (t *Tracker) CancelTracking() {
	t.hunks = nil
	t.byID = nil
	t.next = t.original
}
