package input

// ButtonChange is a button whose state differs from the previous tick.
type ButtonChange struct {
	Index   int
	State   ButtonState
	Changes Changes
}

// Tracker remembers the last seen button states. A button seen for the
// first time is compared against the zero state, so a button that starts
// released produces no change.
type Tracker struct {
	prev []ButtonState
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Changed returns the buttons in snap that differ from the previous call,
// in index order, and records snap as the new baseline.
func (t *Tracker) Changed(snap Snapshot) []ButtonChange {
	var out []ButtonChange
	for i, cur := range snap.Buttons {
		var prev ButtonState
		if i < len(t.prev) {
			prev = t.prev[i]
		}
		if c := Diff(prev, cur); c.Any() {
			out = append(out, ButtonChange{Index: i, State: cur, Changes: c})
		}
	}

	if cap(t.prev) < len(snap.Buttons) {
		t.prev = make([]ButtonState, len(snap.Buttons))
	}
	t.prev = t.prev[:len(snap.Buttons)]
	copy(t.prev, snap.Buttons)
	return out
}

// Reset forgets the baseline.
func (t *Tracker) Reset() {
	t.prev = t.prev[:0]
}
