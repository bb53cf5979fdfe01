package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// EulerToQuat converts Euler XYZ (radians) to a quaternion.
// The X rotation is applied first, then Y, then Z.
func EulerToQuat(rx, ry, rz float64) mgl64.Quat {
	cx, sx := math.Cos(rx*0.5), math.Sin(rx*0.5)
	cy, sy := math.Cos(ry*0.5), math.Sin(ry*0.5)
	cz, sz := math.Cos(rz*0.5), math.Sin(rz*0.5)

	return mgl64.Quat{
		W: cx*cy*cz + sx*sy*sz,
		V: mgl64.Vec3{
			sx*cy*cz - cx*sy*sz,
			cx*sy*cz + sx*cy*sz,
			cx*cy*sz - sx*sy*cz,
		},
	}
}

// Slerp interpolates along the shortest great-circle arc from a to b.
// The result is always a unit quaternion.
func Slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	a, b = a.Normalize(), b.Normalize()
	// q and -q are the same rotation; pick the hemisphere nearest a.
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, t).Normalize()
}

// Lerp returns a + (b-a)*t.
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// AxisLerpT remaps a gamepad axis value from [-1, 1] to the [0, 1]
// interpolation range shared by buttons and axes.
func AxisLerpT(v float64) float64 {
	return v*0.5 + 0.5
}

// SameRotation reports whether a and b encode the same rotation within eps.
// q and -q compare equal.
func SameRotation(a, b mgl64.Quat, eps float64) bool {
	return math.Abs(a.Normalize().Dot(b.Normalize())) >= 1-eps
}
