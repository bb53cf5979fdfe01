// Package controller ties one physical motion controller to its model:
// it loads and resolves the model once, then animates it every tick.
package controller

import (
	"context"

	"motion-controller-rig/internal/animator"
	"motion-controller-rig/internal/asset"
	"motion-controller-rig/internal/events"
	"motion-controller-rig/internal/input"
	"motion-controller-rig/internal/mapping"
	"motion-controller-rig/internal/rig"
	"motion-controller-rig/internal/scene"
)

// ModelLoader fetches a model and returns its nodes.
type ModelLoader interface {
	Load(ctx context.Context, location string, graph scene.Graph) ([]scene.Node, error)
}

// Options configure a Controller. A zero Rig means rig.DefaultOptions.
// Otherwise only an empty RootNodeName is defaulted; an empty
// TransformRootName disables promotion and RotateOffset is used as given.
// Zero Paths means asset.DefaultPaths.
type Options struct {
	Rig   rig.Options
	Paths asset.Paths
	Log   rig.Logger

	// OnMeshLoaded is called with the container node after the model resolves.
	OnMeshLoaded func(root scene.Node)
}

// Controller is driven from a single frame loop and is not safe for
// concurrent use.
type Controller struct {
	id       string
	hand     string
	schema   mapping.Schema
	opts     Options
	bus      *events.Bus
	animator *animator.Animator
	attached bool
}

func New(id, hand string, schema mapping.Schema, opts Options) *Controller {
	defaults := rig.DefaultOptions(id, hand)
	opts.Rig.ControllerID, opts.Rig.Hand = "", ""
	if opts.Rig == (rig.Options{}) {
		opts.Rig = defaults
	}
	if opts.Rig.RootNodeName == "" {
		opts.Rig.RootNodeName = defaults.RootNodeName
	}
	opts.Rig.ControllerID, opts.Rig.Hand = id, hand
	if opts.Paths == (asset.Paths{}) {
		opts.Paths = asset.DefaultPaths()
	}
	if opts.Log == nil {
		opts.Log = rig.NopLogger{}
	}

	bus := events.NewBus()
	return &Controller{
		id:       id,
		hand:     hand,
		schema:   schema,
		opts:     opts,
		bus:      bus,
		animator: animator.New(schema, bus, nil),
	}
}

func (c *Controller) ID() string             { return c.id }
func (c *Controller) Hand() string           { return c.hand }
func (c *Controller) Schema() mapping.Schema { return c.schema }
func (c *Controller) Events() *events.Bus    { return c.bus }

// Rig returns the resolved rig, or nil before a model resolved.
func (c *Controller) Rig() *rig.Rig {
	return c.animator.Rig()
}

// ModelURL is where LoadModel fetches this controller's model from.
func (c *Controller) ModelURL() string {
	return c.opts.Paths.ModelURL(c.id, c.hand)
}

// AttachModel resolves nodes into the controller's rig. Only the first call
// does anything; it reports whether a rig was resolved.
func (c *Controller) AttachModel(nodes []scene.Node, graph scene.Graph) bool {
	if c.attached {
		return false
	}
	c.attached = true

	r := rig.Resolve(nodes, c.schema, c.opts.Rig, graph, c.opts.Log)
	if r == nil {
		return false
	}
	c.animator.SetRig(r)
	if c.opts.OnMeshLoaded != nil {
		c.opts.OnMeshLoaded(r.Container())
	}
	return true
}

// LoadModel fetches the model at location (ModelURL when empty) and attaches
// it. A fetch failure is logged and returned; the controller keeps working
// without visual feedback.
func (c *Controller) LoadModel(ctx context.Context, loader ModelLoader, graph scene.Graph, location string) error {
	if location == "" {
		location = c.ModelURL()
	}
	nodes, err := loader.Load(ctx, location, graph)
	if err != nil {
		c.opts.Log.Warn("Failed to retrieve controller model from the remote server: "+location, "error", err)
		return err
	}
	c.AttachModel(nodes, graph)
	return nil
}

// Update consumes one input tick.
func (c *Controller) Update(snap input.Snapshot) {
	c.animator.Update(snap)
}
