// Package mapping declares which semantic buttons and axes a controller has,
// which asset nodes animate them and which event channel each button feeds.
package mapping

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"motion-controller-rig/internal/events"
)

// ErrInconsistent is wrapped by every Validate failure.
var ErrInconsistent = errors.New("mapping: inconsistent schema")

// Schema is read-only after New. Index order of buttons and axes mirrors
// the device's raw arrays.
type Schema struct {
	buttons         []string
	buttonNodeNames map[string]string
	buttonChannels  map[string]events.ChannelID
	axisNodeNames   []string
}

// New copies its arguments so later changes by the caller are not observed.
func New(buttons []string, buttonNodeNames map[string]string, buttonChannels map[string]events.ChannelID, axisNodeNames []string) Schema {
	return Schema{
		buttons:         slices.Clone(buttons),
		buttonNodeNames: maps.Clone(buttonNodeNames),
		buttonChannels:  maps.Clone(buttonChannels),
		axisNodeNames:   slices.Clone(axisNodeNames),
	}
}

// WindowsMotionController is the layout of the Windows Mixed Reality
// motion controller.
func WindowsMotionController() Schema {
	return New(
		[]string{"thumbstick", "trigger", "grip", "menu", "trackpad"},
		map[string]string{
			"trigger":    "SELECT",
			"menu":       "MENU",
			"grip":       "GRASP",
			"thumbstick": "THUMBSTICK_PRESS",
			"trackpad":   "TOUCHPAD_PRESS",
		},
		map[string]events.ChannelID{
			"trigger":    events.Trigger,
			"menu":       events.Secondary,
			"grip":       events.Main,
			"thumbstick": events.Pad,
			"trackpad":   events.Trackpad,
		},
		[]string{
			"THUMBSTICK_X",
			"THUMBSTICK_Y",
			"TOUCHPAD_TOUCH_X",
			"TOUCHPAD_TOUCH_Y",
		},
	)
}

func (s Schema) NumButtons() int { return len(s.buttons) }
func (s Schema) NumAxes() int    { return len(s.axisNodeNames) }

// Buttons returns a copy of the button names in index order.
func (s Schema) Buttons() []string { return slices.Clone(s.buttons) }

// AxisNodeNames returns a copy of the axis node names in index order.
func (s Schema) AxisNodeNames() []string { return slices.Clone(s.axisNodeNames) }

// ButtonName maps a raw button index to its semantic name.
func (s Schema) ButtonName(i int) (string, bool) {
	if i < 0 || i >= len(s.buttons) {
		return "", false
	}
	return s.buttons[i], true
}

// ButtonNodeName returns the control node housing VALUE/PRESSED/UNPRESSED.
func (s Schema) ButtonNodeName(button string) (string, bool) {
	n, ok := s.buttonNodeNames[button]
	return n, ok && n != ""
}

func (s Schema) ButtonChannel(button string) (events.ChannelID, bool) {
	id, ok := s.buttonChannels[button]
	return id, ok
}

// AxisNodeName maps a raw axis index to the control node housing VALUE/MIN/MAX.
func (s Schema) AxisNodeName(i int) (string, bool) {
	if i < 0 || i >= len(s.axisNodeNames) {
		return "", false
	}
	n := s.axisNodeNames[i]
	return n, n != ""
}

// Validate checks that every button has a node name and a valid channel,
// that button names are unique, and that no extra entries are mapped.
// Index alignment with the device is a caller contract and not checked.
func (s Schema) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(s.buttons))
	for i, b := range s.buttons {
		if b == "" {
			errs = append(errs, fmt.Errorf("button %d: empty name", i))
			continue
		}
		if seen[b] {
			errs = append(errs, fmt.Errorf("button %d: duplicate name %q", i, b))
		}
		seen[b] = true
		if _, ok := s.ButtonNodeName(b); !ok {
			errs = append(errs, fmt.Errorf("button %q: no node name", b))
		}
		id, ok := s.buttonChannels[b]
		if !ok {
			errs = append(errs, fmt.Errorf("button %q: no event channel", b))
		} else if !id.Valid() {
			errs = append(errs, fmt.Errorf("button %q: invalid channel %d", b, int(id)))
		}
	}
	for _, b := range slices.Sorted(maps.Keys(s.buttonNodeNames)) {
		if !seen[b] {
			errs = append(errs, fmt.Errorf("node name mapped for unknown button %q", b))
		}
	}
	for _, b := range slices.Sorted(maps.Keys(s.buttonChannels)) {
		if !seen[b] {
			errs = append(errs, fmt.Errorf("channel mapped for unknown button %q", b))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInconsistent, errors.Join(errs...))
	}
	return nil
}
