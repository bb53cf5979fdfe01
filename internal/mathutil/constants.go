package mathutil

import "math"

var (
	// DefaultRotateOffset is the Euler XYZ correction (radians) composed onto
	// the controller model root after loading. The stock controller assets are
	// authored facing the other way, so they are flipped about X.
	DefaultRotateOffset = [3]float64{math.Pi, 0, 0}

	// PreviewView is the fixed camera used for debug renders of a rig:
	// Rx(-15°) @ Ry(12°).
	PreviewView = ViewRotation(Deg2Rad(-15), Deg2Rad(12))
)
