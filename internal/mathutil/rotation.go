package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ViewRotation returns Rx(pitch) @ Ry(yaw). Angles in radians.
func ViewRotation(pitch, yaw float64) mgl64.Mat3 {
	return mgl64.Rotate3DX(pitch).Mul3(mgl64.Rotate3DY(yaw))
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
