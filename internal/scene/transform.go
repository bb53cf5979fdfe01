package scene

import "github.com/go-gl/mathgl/mgl64"

// Transform is the in-memory Node implementation.
type Transform struct {
	name        string
	parent      *Transform
	children    []*Transform
	position    mgl64.Vec3
	orientation mgl64.Quat
	pickable    bool
}

// NewTransform creates a detached, pickable node with identity transform.
func NewTransform(name string) *Transform {
	return &Transform{
		name:        name,
		orientation: mgl64.QuatIdent(),
		pickable:    true,
	}
}

func (t *Transform) Name() string { return t.name }

func (t *Transform) Parent() (Node, bool) {
	if t.parent == nil {
		return nil, false
	}
	return t.parent, true
}

func (t *Transform) Children() []Node {
	out := make([]Node, len(t.children))
	for i, c := range t.children {
		out[i] = c
	}
	return out
}

// SetParent only accepts *Transform parents; any other Node detaches.
func (t *Transform) SetParent(parent Node) {
	if t.parent != nil {
		siblings := t.parent.children
		for i, c := range siblings {
			if c == t {
				t.parent.children = append(siblings[:i:i], siblings[i+1:]...)
				break
			}
		}
		t.parent = nil
	}

	p, ok := parent.(*Transform)
	if !ok || p == nil {
		return
	}
	t.parent = p
	p.children = append(p.children, t)
}

func (t *Transform) ChildByName(name string, immediate bool) (Node, bool) {
	for _, c := range t.children {
		if c.name == name {
			return c, true
		}
		if !immediate {
			if n, ok := c.ChildByName(name, false); ok {
				return n, true
			}
		}
	}
	return nil, false
}

func (t *Transform) Position() mgl64.Vec3        { return t.position }
func (t *Transform) SetPosition(p mgl64.Vec3)    { t.position = p }
func (t *Transform) Orientation() mgl64.Quat     { return t.orientation }
func (t *Transform) SetOrientation(q mgl64.Quat) { t.orientation = q }

func (t *Transform) AddRotation(q mgl64.Quat) {
	t.orientation = t.orientation.Mul(q).Normalize()
}

func (t *Transform) SetPickable(pickable bool) {
	t.pickable = pickable
	for _, c := range t.children {
		c.SetPickable(pickable)
	}
}

func (t *Transform) Pickable() bool { return t.pickable }

// LocalMatrix returns T * R for the node's local transform.
func (t *Transform) LocalMatrix() mgl64.Mat4 {
	p := t.position
	return mgl64.Translate3D(p[0], p[1], p[2]).Mul4(t.orientation.Mat4())
}

// WorldMatrix chains local matrices from the root down to t.
func (t *Transform) WorldMatrix() mgl64.Mat4 {
	m := t.LocalMatrix()
	for p := t.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// WorldPosition is the translation column of WorldMatrix.
func (t *Transform) WorldPosition() mgl64.Vec3 {
	return t.WorldMatrix().Col(3).Vec3()
}
