// Package input holds the per-tick gamepad snapshot consumed by the rig and
// the change tracking between consecutive ticks.
package input

// ButtonState is one button as reported by the device for a tick.
// Value is the press depth in [0, 1].
type ButtonState struct {
	Value   float64 `yaml:"value"`
	Pressed bool    `yaml:"pressed"`
	Touched bool    `yaml:"touched"`
}

// Snapshot is everything polled for one tick. Buttons and Axes are
// index-aligned with the device's raw arrays; axis values are in [-1, 1].
type Snapshot struct {
	Buttons []ButtonState `yaml:"buttons"`
	Axes    []float64     `yaml:"axes"`
}

// Changes records which fields of a button differ from the previous tick.
type Changes struct {
	Pressed bool
	Value   bool
	Touched bool
}

// Any reports whether at least one field changed.
func (c Changes) Any() bool {
	return c.Pressed || c.Value || c.Touched
}

// Diff compares two states of the same button.
func Diff(prev, cur ButtonState) Changes {
	return Changes{
		Pressed: prev.Pressed != cur.Pressed,
		Value:   prev.Value != cur.Value,
		Touched: prev.Touched != cur.Touched,
	}
}
