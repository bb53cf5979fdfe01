// Package scene is a minimal in-memory scene graph: named transform nodes
// with local position and orientation, parent/child links and a picking
// flag. Hosts with their own scene graph implement Node and Graph instead.
package scene

import "github.com/go-gl/mathgl/mgl64"

// Node is the subset of a scene-graph node the controller rig touches.
type Node interface {
	Name() string
	Parent() (Node, bool)
	Children() []Node

	// SetParent detaches the node from its current parent, if any, and
	// appends it to parent's children. A nil parent detaches only.
	SetParent(parent Node)

	// ChildByName returns the first descendant named name in depth-first
	// order. When immediate is true only direct children are searched.
	ChildByName(name string, immediate bool) (Node, bool)

	Position() mgl64.Vec3
	SetPosition(p mgl64.Vec3)
	Orientation() mgl64.Quat
	SetOrientation(q mgl64.Quat)

	// AddRotation composes q onto the current local orientation (local
	// space, applied after the existing rotation).
	AddRotation(q mgl64.Quat)

	// SetPickable toggles spatial picking for the node and its subtree.
	SetPickable(pickable bool)
	Pickable() bool
}

// Graph creates nodes owned by a scene.
type Graph interface {
	NewNode(name string) Node
}
