package animator

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motion-controller-rig/internal/asset"
	"motion-controller-rig/internal/events"
	"motion-controller-rig/internal/input"
	"motion-controller-rig/internal/mapping"
	"motion-controller-rig/internal/mathutil"
	"motion-controller-rig/internal/rig"
	"motion-controller-rig/internal/scene"
)

const (
	thumbstick = iota
	trigger
	grip
	menu
	trackpad
)

func newRig(t *testing.T, opts asset.SynthOptions) *rig.Rig {
	t.Helper()
	g := scene.NewTree()
	schema := mapping.WindowsMotionController()
	nodes := asset.Synthesize(g, schema, opts)
	r := rig.Resolve(nodes, schema, rig.DefaultOptions("c", "left"), g, nil)
	require.NotNil(t, r)
	return r
}

type recorder struct {
	got map[events.ChannelID][]input.ButtonState
}

func record(bus *events.Bus) *recorder {
	rec := &recorder{got: map[events.ChannelID][]input.ButtonState{}}
	for id := events.ChannelID(0); id < events.NumChannels; id++ {
		id := id
		bus.Channel(id).Subscribe(func(s input.ButtonState) {
			rec.got[id] = append(rec.got[id], s)
		})
	}
	return rec
}

func released(n int) []input.ButtonState {
	return make([]input.ButtonState, n)
}

type pose struct {
	pos mgl64.Vec3
	rot mgl64.Quat
}

func capture(r *rig.Rig) []pose {
	var out []pose
	for i := 0; i < r.NumButtons(); i++ {
		if t, ok := r.Button(i).Get(); ok {
			out = append(out, pose{t.Value.Position(), t.Value.Orientation()})
		}
	}
	for i := 0; i < r.NumAxes(); i++ {
		if t, ok := r.Axis(i).Get(); ok {
			out = append(out, pose{t.Value.Position(), t.Value.Orientation()})
		}
	}
	return out
}

func TestUpdate_TriggerDispatchesOnce(t *testing.T) {
	bus := events.NewBus()
	rec := record(bus)
	a := New(mapping.WindowsMotionController(), bus, newRig(t, asset.SynthOptions{}))

	a.Update(input.Snapshot{Buttons: released(5)})
	assert.Empty(t, rec.got)

	buttons := released(5)
	buttons[trigger] = input.ButtonState{Value: 0.7, Pressed: true}
	a.Update(input.Snapshot{Buttons: buttons})

	assert.Equal(t, map[events.ChannelID][]input.ButtonState{
		events.Trigger: {{Value: 0.7, Pressed: true}},
	}, rec.got)
}

func TestUpdate_ButtonPose(t *testing.T) {
	r := newRig(t, asset.SynthOptions{})
	a := New(mapping.WindowsMotionController(), events.NewBus(), r)
	triad, ok := r.Button(trigger).Get()
	require.True(t, ok)

	for _, v := range []float64{1, 0.25, 0.5, 0} {
		buttons := released(5)
		buttons[trigger] = input.ButtonState{Value: v, Pressed: v > 0}
		a.Update(input.Snapshot{Buttons: buttons})

		wantPos := mathutil.Lerp(triad.Unpressed.Position(), triad.Pressed.Position(), v)
		wantRot := mathutil.Slerp(triad.Unpressed.Orientation(), triad.Pressed.Orientation(), v)
		assert.True(t, triad.Value.Position().ApproxEqualThreshold(wantPos, 1e-12), "v=%v", v)
		assert.True(t, mathutil.SameRotation(triad.Value.Orientation(), wantRot, 1e-12), "v=%v", v)
	}

	assert.True(t, mathutil.SameRotation(triad.Value.Orientation(), triad.Unpressed.Orientation(), 1e-12))
}

func TestUpdate_AxisPose(t *testing.T) {
	r := newRig(t, asset.SynthOptions{})
	a := New(mapping.WindowsMotionController(), events.NewBus(), r)
	x, _ := r.Axis(0).Get()
	y, _ := r.Axis(1).Get()

	a.Update(input.Snapshot{Axes: []float64{-1, 1, 0, 0}})
	assert.True(t, x.Value.Position().ApproxEqualThreshold(x.Min.Position(), 1e-12))
	assert.True(t, mathutil.SameRotation(x.Value.Orientation(), x.Min.Orientation(), 1e-9))
	assert.True(t, y.Value.Position().ApproxEqualThreshold(y.Max.Position(), 1e-12))
	assert.True(t, mathutil.SameRotation(y.Value.Orientation(), y.Max.Orientation(), 1e-9))

	a.Update(input.Snapshot{Axes: []float64{0, 0, 0, 0}})
	mid := mathutil.Lerp(x.Min.Position(), x.Max.Position(), 0.5)
	assert.True(t, x.Value.Position().ApproxEqualThreshold(mid, 1e-12))
	assert.True(t, mathutil.SameRotation(x.Value.Orientation(), mgl64.QuatIdent(), 1e-9),
		"symmetric end rotations meet at identity")
}

func TestUpdate_Idempotent(t *testing.T) {
	r := newRig(t, asset.SynthOptions{})
	a := New(mapping.WindowsMotionController(), events.NewBus(), r)

	buttons := released(5)
	buttons[trigger] = input.ButtonState{Value: 0.4, Pressed: true}
	buttons[grip] = input.ButtonState{Value: 1, Pressed: true, Touched: true}
	snap := input.Snapshot{Buttons: buttons, Axes: []float64{0.3, -0.8, 0.1, 1}}

	a.Update(snap)
	first := capture(r)
	a.Update(snap)
	assert.Equal(t, first, capture(r))
}

func TestUpdate_NoAccumulation(t *testing.T) {
	r := newRig(t, asset.SynthOptions{})
	a := New(mapping.WindowsMotionController(), events.NewBus(), r)
	snap := input.Snapshot{Axes: []float64{0.6, 0.6, 0.6, 0.6}}

	a.Update(snap)
	want := capture(r)
	for i := 0; i < 500; i++ {
		a.Update(input.Snapshot{Axes: []float64{float64(i%7)/3 - 1, -1, 1, 0}})
	}
	a.Update(snap)
	assert.Equal(t, want, capture(r))
}

func TestUpdate_NilRigIsSafe(t *testing.T) {
	bus := events.NewBus()
	rec := record(bus)
	a := New(mapping.WindowsMotionController(), bus, nil)

	buttons := released(5)
	buttons[menu] = input.ButtonState{Value: 1, Pressed: true}
	assert.NotPanics(t, func() {
		a.Update(input.Snapshot{Buttons: buttons, Axes: []float64{1, 1, 1, 1}})
	})
	assert.Len(t, rec.got[events.Secondary], 1, "events still flow without a model")
}

func TestUpdate_UnknownIndicesIgnored(t *testing.T) {
	bus := events.NewBus()
	rec := record(bus)
	r := newRig(t, asset.SynthOptions{})
	a := New(mapping.WindowsMotionController(), bus, r)

	buttons := released(8)
	buttons[6] = input.ButtonState{Value: 1, Pressed: true}
	assert.NotPanics(t, func() {
		a.Update(input.Snapshot{Buttons: buttons, Axes: []float64{0, 0, 0, 0, 1, -1}})
	})
	assert.Empty(t, rec.got)
}

func TestUpdate_UnresolvedButtonStillDispatches(t *testing.T) {
	bus := events.NewBus()
	rec := record(bus)
	r := newRig(t, asset.SynthOptions{Omit: []string{"SELECT/PRESSED"}})
	a := New(mapping.WindowsMotionController(), bus, r)

	buttons := released(5)
	buttons[trigger] = input.ButtonState{Value: 1, Pressed: true}
	buttons[trackpad] = input.ButtonState{Touched: true}
	a.Update(input.Snapshot{Buttons: buttons})

	assert.Len(t, rec.got[events.Trigger], 1)
	assert.Len(t, rec.got[events.Trackpad], 1)
}

func TestUpdate_ShortAxisArray(t *testing.T) {
	r := newRig(t, asset.SynthOptions{})
	a := New(mapping.WindowsMotionController(), events.NewBus(), r)
	y, _ := r.Axis(1).Get()
	before := y.Value.Position()

	a.Update(input.Snapshot{Axes: []float64{1}})
	assert.Equal(t, before, y.Value.Position(), "axes missing from the snapshot are left alone")
}

func TestSetRig(t *testing.T) {
	a := New(mapping.WindowsMotionController(), events.NewBus(), nil)
	assert.Nil(t, a.Rig())

	r := newRig(t, asset.SynthOptions{})
	a.SetRig(r)
	a.Update(input.Snapshot{Axes: []float64{1, 1, 1, 1}})

	x, _ := r.Axis(0).Get()
	assert.True(t, x.Value.Position().ApproxEqualThreshold(x.Max.Position(), 1e-12))
}

func TestApply_TransformBounds(t *testing.T) {
	r := newRig(t, asset.SynthOptions{})
	triad, _ := r.Button(grip).Get()
	a0, a1 := triad.Unpressed.Position(), triad.Pressed.Position()
	q0, q1 := triad.Unpressed.Orientation(), triad.Pressed.Orientation()
	total := a1.Sub(a0).Len()

	for v := 0.0; v <= 1.0; v += 0.05 {
		ApplyButton(triad, v)
		p := triad.Value.Position()
		assert.InDelta(t, total, p.Sub(a0).Len()+a1.Sub(p).Len(), 1e-12)

		q := triad.Value.Orientation()
		assert.InDelta(t, 1.0, q.Len(), 1e-12)
		// On the short arc the angles to each end add up to the arc.
		arc := angle(q0, q1)
		assert.InDelta(t, arc, angle(q0, q)+angle(q, q1), 1e-6)
	}
}

func angle(a, b mgl64.Quat) float64 {
	d := math.Abs(a.Normalize().Dot(b.Normalize()))
	return math.Acos(math.Min(d, 1))
}
