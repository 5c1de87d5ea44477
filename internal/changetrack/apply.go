package changetrack

// mapChangesToNewContent produces a parallel hunk list with
// StartPosition/EndPosition remapped into next's coordinate system,
// for display purposes, per spec.md §4.9. The original/next arguments
// are accepted to match the documented signature; the remapped
// positions are already tracked on each hunk from Diff.
func mapChangesToNewContent(hunks []Hunk, original, next string) []Hunk {
	out := make([]Hunk, len(hunks))
	for i, h := range hunks {
		out[i] = h
		out[i].StartPosition = h.nextStart
		out[i].EndPosition = h.nextEnd
	}

	return out
}

// applyAcceptedChanges applies only accepted hunks, left to right, to
// original, per spec.md §4.9's policy: if no hunk has been explicitly
// accepted or rejected, every hunk is treated as accepted; otherwise
// only hunks with Accepted == true apply, and the rest are left as
// untouched original text.
func applyAcceptedChanges(original string, hunks []Hunk) string {
	anyExplicit := false
	for _, h := range hunks {
		if h.Accepted != nil {
			anyExplicit = true

			break
		}
	}

	var out []byte
	cursor := 0
	for _, h := range hunks {
		out = append(out, original[cursor:h.origStart]...)

		accept := !anyExplicit || (h.Accepted != nil && *h.Accepted)
		if accept {
			if h.Type == HunkAdd || h.Type == HunkReplace {
				out = append(out, h.NewText...)
			}
			cursor = h.origEnd
		} else {
			out = append(out, original[h.origStart:h.origEnd]...)
			cursor = h.origEnd
		}
	}
	out = append(out, original[cursor:]...)

	return string(out)
}
