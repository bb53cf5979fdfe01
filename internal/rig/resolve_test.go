package rig

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motion-controller-rig/internal/asset"
	"motion-controller-rig/internal/events"
	"motion-controller-rig/internal/mapping"
	"motion-controller-rig/internal/mathutil"
	"motion-controller-rig/internal/scene"
)

// testLogger records messages by level.
type testLogger struct {
	warns []string
	infos []string
}

func (l *testLogger) Debug(msg string, keysAndValues ...any) {}
func (l *testLogger) Info(msg string, keysAndValues ...any) {
	l.infos = append(l.infos, msg)
}
func (l *testLogger) Warn(msg string, keysAndValues ...any) {
	l.warns = append(l.warns, fmt.Sprintf("%s %v", msg, keysAndValues))
}

func resolveSynthetic(t *testing.T, opts asset.SynthOptions) (*Rig, *testLogger, *scene.Tree) {
	t.Helper()
	g := scene.NewTree()
	nodes := asset.Synthesize(g, mapping.WindowsMotionController(), opts)
	log := &testLogger{}
	r := Resolve(nodes, mapping.WindowsMotionController(), DefaultOptions("ctrl-1", "left"), g, log)
	return r, log, g
}

func TestResolve_Complete(t *testing.T) {
	r, log, _ := resolveSynthetic(t, asset.SynthOptions{})
	require.NotNil(t, r)
	assert.Empty(t, log.warns)

	schema := mapping.WindowsMotionController()
	buttons := r.ButtonMeshes()
	assert.Len(t, buttons, schema.NumButtons())
	for i, name := range schema.Buttons() {
		triad, ok := buttons[name]
		require.True(t, ok, name)
		assert.Equal(t, i, triad.Index)
		assert.Equal(t, ValueNodeName, triad.Value.Name())
		assert.Equal(t, PressedNodeName, triad.Pressed.Name())
		assert.Equal(t, UnpressedNodeName, triad.Unpressed.Name())

		parent, _ := triad.Value.Parent()
		want, _ := schema.ButtonNodeName(name)
		assert.Equal(t, want, parent.Name())
	}

	axes := r.AxisMeshes()
	assert.Len(t, axes, schema.NumAxes())
	for i := 0; i < schema.NumAxes(); i++ {
		triad, ok := r.Axis(i).Get()
		require.True(t, ok)
		assert.Equal(t, MinNodeName, triad.Min.Name())
		assert.Equal(t, MaxNodeName, triad.Max.Name())
		assert.Equal(t, axes[i], triad)
	}
}

func TestResolve_ContainerAndRoot(t *testing.T) {
	r, _, _ := resolveSynthetic(t, asset.SynthOptions{})
	require.NotNil(t, r)

	assert.Equal(t, "ctrl-1 left", r.Container().Name())
	assert.Equal(t, "RootNode", r.Root().Name())
	p, ok := r.Root().Parent()
	require.True(t, ok)
	assert.Equal(t, "ctrl-1 left", p.Name())

	assert.False(t, r.Root().Pickable())
	for _, n := range scene.Flatten(r.Root()) {
		assert.False(t, n.Pickable(), n.Name())
	}
}

func TestResolve_PromotesTransformRoot(t *testing.T) {
	r, _, _ := resolveSynthetic(t, asset.SynthOptions{TransformRoot: true})
	require.NotNil(t, r)

	assert.Equal(t, "root", r.Root().Name())
	p, ok := r.Root().Parent()
	require.True(t, ok)
	assert.Equal(t, r.Container(), p)
	assert.Len(t, r.ButtonMeshes(), 5)
}

func TestResolve_RotateOffsetComposes(t *testing.T) {
	g := scene.NewTree()
	nodes := asset.Synthesize(g, mapping.WindowsMotionController(), asset.SynthOptions{})
	start := mgl64.QuatRotate(0.5, mgl64.Vec3{0, 1, 0})
	nodes[0].SetOrientation(start)

	r := Resolve(nodes, mapping.WindowsMotionController(), DefaultOptions("c", "right"), g, nil)
	require.NotNil(t, r)

	want := start.Mul(mgl64.QuatRotate(math.Pi, mgl64.Vec3{1, 0, 0}))
	assert.True(t, mathutil.SameRotation(r.Root().Orientation(), want, 1e-9))
}

func TestResolve_ZeroOffset(t *testing.T) {
	g := scene.NewTree()
	nodes := asset.Synthesize(g, mapping.WindowsMotionController(), asset.SynthOptions{})
	opts := DefaultOptions("c", "right")
	opts.RotateOffset = [3]float64{}

	r := Resolve(nodes, mapping.WindowsMotionController(), opts, g, nil)
	require.NotNil(t, r)
	assert.True(t, mathutil.SameRotation(r.Root().Orientation(), mgl64.QuatIdent(), 1e-12))
}

func TestResolve_MissingPressedDegrades(t *testing.T) {
	r, log, _ := resolveSynthetic(t, asset.SynthOptions{Omit: []string{"SELECT/PRESSED"}})
	require.NotNil(t, r)

	buttons := r.ButtonMeshes()
	assert.Len(t, buttons, 4)
	assert.NotContains(t, buttons, "trigger")
	for _, name := range []string{"thumbstick", "grip", "menu", "trackpad"} {
		assert.Contains(t, buttons, name)
	}
	assert.Len(t, r.AxisMeshes(), 4)
	assert.False(t, r.Button(1).IsResolved())

	require.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], "SELECT(VALUE: true, PRESSED: false, UNPRESSED: true)")
}

func TestResolve_TriadMembersMustBeDirectChildren(t *testing.T) {
	g := scene.NewTree()
	schema := mapping.WindowsMotionController()
	nodes := asset.Synthesize(g, schema, asset.SynthOptions{})

	var root scene.Node
	for _, n := range nodes {
		if n.Name() == "RootNode" {
			root = n
		}
	}
	require.NotNil(t, root)

	// Push PRESSED under SELECT and MAX under THUMBSTICK_X one level down.
	bury := func(control, member string) {
		c, ok := root.ChildByName(control, false)
		require.True(t, ok, control)
		m, ok := c.ChildByName(member, true)
		require.True(t, ok, member)
		mid := g.NewNode("HOUSING")
		mid.SetParent(c)
		m.SetParent(mid)
		_, ok = c.ChildByName(member, false)
		require.True(t, ok)
	}
	bury("SELECT", PressedNodeName)
	bury("THUMBSTICK_X", MaxNodeName)

	log := &testLogger{}
	r := Resolve(nodes, schema, DefaultOptions("ctrl-1", "left"), g, log)
	require.NotNil(t, r)

	assert.False(t, r.Button(1).IsResolved())
	assert.NotContains(t, r.ButtonMeshes(), "trigger")
	assert.Len(t, r.ButtonMeshes(), 4)

	assert.False(t, r.Axis(0).IsResolved())
	assert.NotContains(t, r.AxisMeshes(), 0)
	assert.Len(t, r.AxisMeshes(), 3)

	require.Len(t, log.warns, 2)
	assert.Contains(t, log.warns[0], "SELECT(VALUE: true, PRESSED: false, UNPRESSED: true)")
	assert.Contains(t, log.warns[1], "THUMBSTICK_X(VALUE: true, MIN: true, MAX: false)")
}

func TestResolve_MissingControlNodes(t *testing.T) {
	r, log, _ := resolveSynthetic(t, asset.SynthOptions{Omit: []string{"MENU", "TOUCHPAD_TOUCH_Y", "THUMBSTICK_X/MAX"}})
	require.NotNil(t, r)

	assert.NotContains(t, r.ButtonMeshes(), "menu")
	assert.Len(t, r.ButtonMeshes(), 4)

	axes := r.AxisMeshes()
	assert.Len(t, axes, 2)
	assert.Contains(t, axes, 1)
	assert.Contains(t, axes, 2)

	assert.Len(t, log.warns, 3)
	assert.Contains(t, log.warns[0], "Missing button mesh with name: MENU")
	assert.Contains(t, log.warns[1], "MAX: false")
	assert.Contains(t, log.warns[2], "Missing axis mesh with name: TOUCHPAD_TOUCH_Y")
}

func TestResolve_NoRoot(t *testing.T) {
	r, log, _ := resolveSynthetic(t, asset.SynthOptions{Omit: []string{"RootNode"}})
	assert.Nil(t, r)
	require.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], "No node with name RootNode in model file.")
}

func TestResolve_EverythingMissingStillReturnsRig(t *testing.T) {
	g := scene.NewTree()
	root := g.Add("RootNode")
	r := Resolve([]scene.Node{root}, mapping.WindowsMotionController(), DefaultOptions("c", "left"), g, nil)
	require.NotNil(t, r)
	assert.Empty(t, r.ButtonMeshes())
	assert.Empty(t, r.AxisMeshes())
	assert.Equal(t, 5, r.NumButtons())
	assert.Equal(t, 4, r.NumAxes())
}

func TestResolve_UnmappedEntriesAreInfo(t *testing.T) {
	schema := mapping.New(
		[]string{"trigger", "mystery"},
		map[string]string{"trigger": "SELECT"},
		map[string]events.ChannelID{"trigger": events.Trigger},
		[]string{"", "THUMBSTICK_Y"},
	)
	g := scene.NewTree()
	nodes := asset.Synthesize(g, mapping.WindowsMotionController(), asset.SynthOptions{})
	log := &testLogger{}

	r := Resolve(nodes, schema, DefaultOptions("c", "left"), g, log)
	require.NotNil(t, r)
	assert.Empty(t, log.warns)
	assert.Equal(t, []string{
		"Skipping unknown button at index: 1 with mapped name: mystery",
		"Skipping unknown axis at index: 0",
	}, log.infos)
	assert.Len(t, r.ButtonMeshes(), 1)
	assert.Len(t, r.AxisMeshes(), 1)
}

func TestRig_OutOfRangeSlots(t *testing.T) {
	r, _, _ := resolveSynthetic(t, asset.SynthOptions{})
	require.NotNil(t, r)
	assert.False(t, r.Button(-1).IsResolved())
	assert.False(t, r.Button(99).IsResolved())
	assert.False(t, r.Axis(4).IsResolved())
}

func TestSlot(t *testing.T) {
	var empty Slot[int]
	_, ok := empty.Get()
	assert.False(t, ok)

	v, ok := Resolved(7).Get()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}
