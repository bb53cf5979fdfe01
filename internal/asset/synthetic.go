package asset

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"motion-controller-rig/internal/mapping"
	"motion-controller-rig/internal/scene"
)

// SynthOptions shape a synthetic controller model.
type SynthOptions struct {
	// Omit drops nodes by path: "SELECT" drops a whole control node,
	// "SELECT/PRESSED" one of its children and "RootNode" renames the
	// root marker so it cannot be found.
	Omit []string

	// TransformRoot wraps the root marker in a node named "root".
	TransformRoot bool
}

// Synthesize builds a model shaped like the stock controller assets for
// schema: every button control node gets UNPRESSED, PRESSED and VALUE
// children, every axis control node MIN, MAX and VALUE. End poses are
// distinct so interpolation is observable. All created nodes are returned
// in creation order.
func Synthesize(graph scene.Graph, schema mapping.Schema, opts SynthOptions) []scene.Node {
	var nodes []scene.Node
	add := func(name string, parent scene.Node) scene.Node {
		n := graph.NewNode(name)
		if parent != nil {
			n.SetParent(parent)
		}
		nodes = append(nodes, n)
		return n
	}
	omitted := func(path string) bool { return slices.Contains(opts.Omit, path) }

	var top scene.Node
	if opts.TransformRoot {
		top = add("root", nil)
	}
	markerName := "RootNode"
	if omitted(markerName) {
		markerName = "Body"
	}
	marker := add(markerName, top)
	add("BODY", marker)

	for i, button := range schema.Buttons() {
		name, ok := schema.ButtonNodeName(button)
		if !ok || omitted(name) {
			continue
		}
		control := add(name, marker)
		x := float64(i) * 0.01
		rest := mgl64.Vec3{x, 0, 0}
		if !omitted(name + "/UNPRESSED") {
			n := add("UNPRESSED", control)
			n.SetPosition(rest)
		}
		if !omitted(name + "/PRESSED") {
			n := add("PRESSED", control)
			n.SetPosition(rest.Add(mgl64.Vec3{0, -0.004, 0.002}))
			n.SetOrientation(mgl64.QuatRotate(0.35, mgl64.Vec3{1, 0, 0}))
		}
		if !omitted(name + "/VALUE") {
			n := add("VALUE", control)
			n.SetPosition(rest)
		}
	}

	// Axis nodes sit one level deeper than buttons to mirror the stock
	// assets, where they hang under the thumbstick and touchpad groups.
	axes := add("AXES", marker)
	for i, name := range schema.AxisNodeNames() {
		if name == "" || omitted(name) {
			continue
		}
		control := add(name, axes)
		axis := mgl64.Vec3{0, 0, 1}
		if i%2 == 1 {
			axis = mgl64.Vec3{1, 0, 0}
		}
		if !omitted(name + "/MIN") {
			n := add("MIN", control)
			n.SetPosition(mgl64.Vec3{-0.003, 0, 0})
			n.SetOrientation(mgl64.QuatRotate(-0.3, axis))
		}
		if !omitted(name + "/MAX") {
			n := add("MAX", control)
			n.SetPosition(mgl64.Vec3{0.003, 0, 0})
			n.SetOrientation(mgl64.QuatRotate(0.3, axis))
		}
		if !omitted(name + "/VALUE") {
			add("VALUE", control)
		}
	}
	return nodes
}
