// Package asset locates, fetches and parses controller model files into
// scene nodes.
package asset

import (
	"regexp"
	"strings"
)

// GamepadIDPrefix starts the id of every Windows Mixed Reality motion controller.
const GamepadIDPrefix = "Spatial Controller (Spatial Interaction Source) "

const defaultDevice = "default"

var gamepadIDPattern = regexp.MustCompile(`([0-9a-zA-Z]+-[0-9a-zA-Z]+)$`)

// IsMotionController reports whether a gamepad id belongs to a motion controller.
func IsMotionController(id string) bool {
	return strings.HasPrefix(id, GamepadIDPrefix)
}

// DeviceFolder extracts the vendor-product suffix of a gamepad id
// ("045E-065B"), falling back to "default".
func DeviceFolder(id string) string {
	if m := gamepadIDPattern.FindString(id); m != "" {
		return m
	}
	return defaultDevice
}

// Paths lays out model files as <BaseURL><device>/<file-for-hand>.
type Paths struct {
	BaseURL       string
	LeftFile      string
	RightFile     string
	UniversalFile string
}

// DefaultPaths points at the public controller model store.
func DefaultPaths() Paths {
	return Paths{
		BaseURL:       "http://yoda.blob.core.windows.net/models/",
		LeftFile:      "left.glb",
		RightFile:     "right.glb",
		UniversalFile: "universal.glb",
	}
}

// FileForHand picks the model file name for "left", "right" or anything else.
func (p Paths) FileForHand(hand string) string {
	switch hand {
	case "left":
		return p.LeftFile
	case "right":
		return p.RightFile
	default:
		return p.UniversalFile
	}
}

// ModelURL returns the model location for a controller.
func (p Paths) ModelURL(id, hand string) string {
	base := p.BaseURL
	if base != "" && !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + DeviceFolder(id) + "/" + p.FileForHand(hand)
}
