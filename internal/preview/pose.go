// Package preview renders debug images of a controller rig's pose.
package preview

import (
	"github.com/go-gl/mathgl/mgl64"

	"motion-controller-rig/internal/rig"
	"motion-controller-rig/internal/scene"
)

// MarkerKind tells button VALUE nodes from axis VALUE nodes.
type MarkerKind int

const (
	ButtonMarker MarkerKind = iota
	AxisMarker
)

// Segment is a bone from a parent node to a child node, in world space.
type Segment struct {
	From, To mgl64.Vec3
}

// Marker is a resolved VALUE node, in world space.
type Marker struct {
	At   mgl64.Vec3
	Kind MarkerKind
	Name string
}

// Pose is a value snapshot of a rig; it shares no nodes with the scene and
// can be rendered on any goroutine.
type Pose struct {
	Frame    int
	Segments []Segment
	Markers  []Marker
}

// Capture records world positions of every node below the rig's container.
func Capture(r *rig.Rig, frame int) Pose {
	p := Pose{Frame: frame}
	if r == nil {
		return p
	}

	worlds := make(map[scene.Node]mgl64.Mat4)
	for _, n := range scene.Flatten(r.Container()) {
		local := localMatrix(n)
		parent, ok := n.Parent()
		if pw, known := worlds[parent]; ok && known {
			worlds[n] = pw.Mul4(local)
			p.Segments = append(p.Segments, Segment{
				From: pw.Col(3).Vec3(),
				To:   worlds[n].Col(3).Vec3(),
			})
			continue
		}
		worlds[n] = worldMatrix(n)
	}

	for i := 0; i < r.NumButtons(); i++ {
		if t, ok := r.Button(i).Get(); ok {
			p.Markers = append(p.Markers, Marker{At: worlds[t.Value].Col(3).Vec3(), Kind: ButtonMarker, Name: r.ButtonName(i)})
		}
	}
	for i := 0; i < r.NumAxes(); i++ {
		if t, ok := r.Axis(i).Get(); ok {
			p.Markers = append(p.Markers, Marker{At: worlds[t.Value].Col(3).Vec3(), Kind: AxisMarker, Name: r.AxisName(i)})
		}
	}
	return p
}

func localMatrix(n scene.Node) mgl64.Mat4 {
	pos := n.Position()
	return mgl64.Translate3D(pos[0], pos[1], pos[2]).Mul4(n.Orientation().Normalize().Mat4())
}

// worldMatrix chains local transforms up to the scene root.
func worldMatrix(n scene.Node) mgl64.Mat4 {
	m := localMatrix(n)
	for p, ok := n.Parent(); ok; p, ok = p.Parent() {
		m = localMatrix(p).Mul4(m)
	}
	return m
}
