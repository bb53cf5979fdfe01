package rig

import (
	"fmt"

	"motion-controller-rig/internal/mapping"
	"motion-controller-rig/internal/mathutil"
	"motion-controller-rig/internal/scene"
)

// Child node names inside button and axis control nodes.
const (
	ValueNodeName     = "VALUE"
	PressedNodeName   = "PRESSED"
	UnpressedNodeName = "UNPRESSED"
	MinNodeName       = "MIN"
	MaxNodeName       = "MAX"
)

// Options name the model conventions Resolve relies on.
type Options struct {
	// ControllerID and Hand name the container node.
	ControllerID string
	Hand         string

	// RootNodeName marks the top of the animatable hierarchy.
	RootNodeName string

	// TransformRootName is the optional parent of the root node that carries
	// the handedness conversion; it is promoted to the effective root.
	TransformRootName string

	// RotateOffset is an Euler XYZ correction (radians) composed onto the
	// effective root.
	RotateOffset [3]float64
}

// DefaultOptions returns the conventions of the stock controller models.
func DefaultOptions(controllerID, hand string) Options {
	return Options{
		ControllerID:      controllerID,
		Hand:              hand,
		RootNodeName:      "RootNode",
		TransformRootName: "root",
		RotateOffset:      mathutil.DefaultRotateOffset,
	}
}

// ContainerName is the name of the node a controller's model is parented to.
func (o Options) ContainerName() string {
	return o.ControllerID + " " + o.Hand
}

// Resolve locates the root and every button and axis triad in nodes. It
// returns nil when no node is named opts.RootNodeName. Missing parts are
// logged and left unresolved; no other failure is possible.
func Resolve(nodes []scene.Node, schema mapping.Schema, opts Options, graph scene.Graph, log Logger) *Rig {
	if log == nil {
		log = NopLogger{}
	}

	root, ok := findRoot(nodes, opts)
	if !ok {
		log.Warn(fmt.Sprintf("No node with name %s in model file.", opts.RootNodeName),
			"root", opts.RootNodeName, "nodes", len(nodes))
		return nil
	}

	container := graph.NewNode(opts.ContainerName())
	root.SetParent(container)
	off := opts.RotateOffset
	root.AddRotation(mathutil.EulerToQuat(off[0], off[1], off[2]))

	r := &Rig{
		container: container,
		root:      root,
		buttons:   make([]Slot[ButtonTriad], schema.NumButtons()),
		axes:      make([]Slot[AxisTriad], schema.NumAxes()),
		names:     schema.Buttons(),
		axisNames: schema.AxisNodeNames(),
	}
	resolveButtons(r, container, schema, log)
	resolveAxes(r, container, schema, log)

	log.Debug("controller model resolved",
		"container", opts.ContainerName(),
		"root", root.Name(),
		"buttons", len(r.ButtonMeshes()),
		"axes", len(r.AxisMeshes()))
	return r
}

func findRoot(nodes []scene.Node, opts Options) (scene.Node, bool) {
	for _, n := range nodes {
		if n == nil || n.Name() != opts.RootNodeName {
			continue
		}
		n.SetPickable(false)
		if p, ok := n.Parent(); ok && opts.TransformRootName != "" && p.Name() == opts.TransformRootName {
			p.SetPickable(false)
			return p, true
		}
		return n, true
	}
	return nil, false
}

func resolveButtons(r *Rig, top scene.Node, schema mapping.Schema, log Logger) {
	for i := 0; i < schema.NumButtons(); i++ {
		button, _ := schema.ButtonName(i)
		nodeName, ok := schema.ButtonNodeName(button)
		if !ok {
			log.Info(fmt.Sprintf("Skipping unknown button at index: %d with mapped name: %s", i, button),
				"index", i, "button", button)
			continue
		}

		control, ok := top.ChildByName(nodeName, false)
		if !ok {
			log.Warn("Missing button mesh with name: "+nodeName, "button", button, "node", nodeName)
			continue
		}

		value, hasValue := control.ChildByName(ValueNodeName, true)
		pressed, hasPressed := control.ChildByName(PressedNodeName, true)
		unpressed, hasUnpressed := control.ChildByName(UnpressedNodeName, true)
		if !hasValue || !hasPressed || !hasUnpressed {
			log.Warn(fmt.Sprintf("Missing button submesh under mesh with name: %s(VALUE: %t, PRESSED: %t, UNPRESSED: %t)",
				nodeName, hasValue, hasPressed, hasUnpressed),
				"button", button, "node", nodeName)
			continue
		}

		r.buttons[i] = Resolved(ButtonTriad{
			Index:     i,
			Value:     value,
			Pressed:   pressed,
			Unpressed: unpressed,
		})
	}
}

func resolveAxes(r *Rig, top scene.Node, schema mapping.Schema, log Logger) {
	for i := 0; i < schema.NumAxes(); i++ {
		nodeName, ok := schema.AxisNodeName(i)
		if !ok {
			log.Info(fmt.Sprintf("Skipping unknown axis at index: %d", i), "index", i)
			continue
		}

		control, ok := top.ChildByName(nodeName, false)
		if !ok {
			log.Warn("Missing axis mesh with name: "+nodeName, "axis", i, "node", nodeName)
			continue
		}

		value, hasValue := control.ChildByName(ValueNodeName, true)
		lo, hasMin := control.ChildByName(MinNodeName, true)
		hi, hasMax := control.ChildByName(MaxNodeName, true)
		if !hasValue || !hasMin || !hasMax {
			log.Warn(fmt.Sprintf("Missing axis submesh under mesh with name: %s(VALUE: %t, MIN: %t, MAX: %t)",
				nodeName, hasValue, hasMin, hasMax),
				"axis", i, "node", nodeName)
			continue
		}

		r.axes[i] = Resolved(AxisTriad{
			Index: i,
			Value: value,
			Min:   lo,
			Max:   hi,
		})
	}
}
