// Package rig resolves a controller mapping schema against a loaded model's
// node hierarchy into flat lookup tables of animatable parts.
package rig

import "motion-controller-rig/internal/scene"

// ButtonTriad holds the nodes animated by one button. Value is written every
// time the button changes; Pressed and Unpressed are the interpolation ends.
type ButtonTriad struct {
	Index     int
	Value     scene.Node
	Pressed   scene.Node
	Unpressed scene.Node
}

// AxisTriad holds the nodes animated by one axis.
type AxisTriad struct {
	Index int
	Value scene.Node
	Min   scene.Node
	Max   scene.Node
}

// Rig is the resolved view of one loaded controller model. Its topology does
// not change after Resolve; only the Value nodes' transforms are written.
type Rig struct {
	container scene.Node
	root      scene.Node
	buttons   []Slot[ButtonTriad]
	axes      []Slot[AxisTriad]
	names     []string
	axisNames []string
}

// Container is the per-controller node the model root was reparented under.
func (r *Rig) Container() scene.Node { return r.container }

// Root is the effective model root (after transform-root promotion).
func (r *Rig) Root() scene.Node { return r.root }

// Button returns the slot for a schema button index. Indices outside the
// schema yield an unresolved slot.
func (r *Rig) Button(i int) Slot[ButtonTriad] {
	if i < 0 || i >= len(r.buttons) {
		return Slot[ButtonTriad]{}
	}
	return r.buttons[i]
}

// Axis returns the slot for a schema axis index.
func (r *Rig) Axis(i int) Slot[AxisTriad] {
	if i < 0 || i >= len(r.axes) {
		return Slot[AxisTriad]{}
	}
	return r.axes[i]
}

// ButtonName is the schema name of button i.
func (r *Rig) ButtonName(i int) string {
	if i < 0 || i >= len(r.names) {
		return ""
	}
	return r.names[i]
}

// AxisName is the control node name of axis i.
func (r *Rig) AxisName(i int) string {
	if i < 0 || i >= len(r.axisNames) {
		return ""
	}
	return r.axisNames[i]
}

// NumButtons and NumAxes are the schema sizes the rig was built for.
func (r *Rig) NumButtons() int { return len(r.buttons) }
func (r *Rig) NumAxes() int    { return len(r.axes) }

// ButtonMeshes maps button name to triad for every resolved button.
func (r *Rig) ButtonMeshes() map[string]ButtonTriad {
	out := make(map[string]ButtonTriad)
	for i, s := range r.buttons {
		if t, ok := s.Get(); ok {
			out[r.names[i]] = t
		}
	}
	return out
}

// AxisMeshes maps axis index to triad for every resolved axis.
func (r *Rig) AxisMeshes() map[int]AxisTriad {
	out := make(map[int]AxisTriad)
	for i, s := range r.axes {
		if t, ok := s.Get(); ok {
			out[i] = t
		}
	}
	return out
}
