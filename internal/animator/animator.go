// Package animator drives a resolved controller rig from gamepad input:
// axis and button values become interpolated transforms on VALUE nodes and
// button changes are dispatched to event channels.
package animator

import (
	"motion-controller-rig/internal/events"
	"motion-controller-rig/internal/input"
	"motion-controller-rig/internal/mapping"
	"motion-controller-rig/internal/mathutil"
	"motion-controller-rig/internal/rig"
)

// Animator is not safe for concurrent use; call Update from the frame loop.
type Animator struct {
	schema  mapping.Schema
	bus     *events.Bus
	tracker *input.Tracker
	rig     *rig.Rig
}

// New creates an animator. r may be nil, in which case only events are
// dispatched until SetRig is called.
func New(schema mapping.Schema, bus *events.Bus, r *rig.Rig) *Animator {
	return &Animator{
		schema:  schema,
		bus:     bus,
		tracker: input.NewTracker(),
		rig:     r,
	}
}

// SetRig installs the resolved rig once the model has loaded.
func (a *Animator) SetRig(r *rig.Rig) {
	a.rig = r
}

func (a *Animator) Rig() *rig.Rig {
	return a.rig
}

// Update consumes one input tick. Axes are applied first, then button
// changes since the previous tick are dispatched and applied.
func (a *Animator) Update(snap input.Snapshot) {
	if a.rig != nil {
		n := min(len(snap.Axes), a.schema.NumAxes())
		for i := 0; i < n; i++ {
			a.lerpAxis(i, snap.Axes[i])
		}
	}

	for _, c := range a.tracker.Changed(snap) {
		a.handleButtonChange(c.Index, c.State)
	}
}

func (a *Animator) handleButtonChange(index int, state input.ButtonState) {
	name, ok := a.schema.ButtonName(index)
	if !ok {
		return
	}
	if id, ok := a.schema.ButtonChannel(name); ok && a.bus != nil {
		a.bus.Dispatch(id, state)
	}
	a.lerpButton(index, state.Value)
}

func (a *Animator) lerpButton(index int, value float64) {
	if a.rig == nil {
		return
	}
	t, ok := a.rig.Button(index).Get()
	if !ok {
		return
	}
	ApplyButton(t, value)
}

func (a *Animator) lerpAxis(index int, value float64) {
	t, ok := a.rig.Axis(index).Get()
	if !ok {
		return
	}
	ApplyAxis(t, value)
}

// ApplyButton poses a button triad for a press depth in [0, 1].
func ApplyButton(t rig.ButtonTriad, value float64) {
	t.Value.SetOrientation(mathutil.Slerp(t.Unpressed.Orientation(), t.Pressed.Orientation(), value))
	t.Value.SetPosition(mathutil.Lerp(t.Unpressed.Position(), t.Pressed.Position(), value))
}

// ApplyAxis poses an axis triad for a deflection in [-1, 1].
func ApplyAxis(t rig.AxisTriad, value float64) {
	lt := mathutil.AxisLerpT(value)
	t.Value.SetOrientation(mathutil.Slerp(t.Min.Orientation(), t.Max.Orientation(), lt))
	t.Value.SetPosition(mathutil.Lerp(t.Min.Position(), t.Max.Position(), lt))
}
