package camerarig

import (
	"testing"

	"camping-showcase/internal/controls"
	"camping-showcase/internal/graphics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	name      string
	distance  float32
	box       rl.BoundingBox
	flag      bool
	smoothing float32
}

type fakeController struct {
	calls  []call
	camera rl.Camera3D
}

func (f *fakeController) Dolly(distance float32, transition bool) {
	f.calls = append(f.calls, call{name: "dolly", distance: distance, flag: transition})
}

func (f *fakeController) SetSmoothTime(seconds float32) {
	f.calls = append(f.calls, call{name: "smooth", smoothing: seconds})
}

func (f *fakeController) FitToBox(box rl.BoundingBox, immediate bool) {
	f.calls = append(f.calls, call{name: "fit", box: box, flag: immediate})
}

func (f *fakeController) Camera() *rl.Camera3D { return &f.camera }

func (f *fakeController) count(name string) int {
	n := 0
	for _, c := range f.calls {
		if c.name == name {
			n++
		}
	}
	return n
}

var showcaseTarget = FitTarget{Center: rl.NewVector3(0, 0, 2), Size: rl.NewVector3(6, 2, 10)}

func TestFitTargetBounds(t *testing.T) {
	b := showcaseTarget.Bounds()
	assert.Equal(t, rl.NewVector3(-3, -1, -3), b.Min)
	assert.Equal(t, rl.NewVector3(3, 1, 7), b.Max)
}

func TestMountRunsIntroOnce(t *testing.T) {
	ctl := &fakeController{}
	host := graphics.NewHost()
	r := New(showcaseTarget, nil)
	r.Attach(ctl)

	r.Mount(host)

	require.Len(t, ctl.calls, 3)
	assert.Equal(t, call{name: "dolly", distance: -22, flag: true}, ctl.calls[0])
	assert.Equal(t, call{name: "smooth", smoothing: 1}, ctl.calls[1])
	assert.Equal(t, call{name: "fit", box: showcaseTarget.Bounds(), flag: true}, ctl.calls[2])
	assert.Equal(t, 1, host.Listeners())
}

func TestMountTwiceRegistersOnce(t *testing.T) {
	ctl := &fakeController{}
	host := graphics.NewHost()
	r := New(showcaseTarget, nil)
	r.Attach(ctl)

	r.Mount(host)
	r.Mount(host)

	assert.Equal(t, 1, host.Listeners())
	assert.Equal(t, 1, ctl.count("dolly"))
	assert.Equal(t, 1, ctl.count("fit"))
}

func TestMountWithoutResizeSource(t *testing.T) {
	ctl := &fakeController{}
	r := New(showcaseTarget, nil)
	r.Attach(ctl)

	r.Mount(nil)
	r.Mount(nil)
	assert.True(t, r.Mounted())
	assert.Equal(t, 1, ctl.count("dolly"))

	r.Unmount()
	assert.False(t, r.Mounted())
	r.Mount(nil)
	assert.Equal(t, 2, ctl.count("dolly"))
}

func TestMountBeforeAttachRunsIntroOnAttach(t *testing.T) {
	host := graphics.NewHost()
	r := New(showcaseTarget, nil)
	r.Mount(host)
	assert.True(t, r.Mounted())
	assert.Equal(t, 1, host.Listeners())

	ctl := &fakeController{}
	r.Attach(ctl)
	assert.Equal(t, 1, ctl.count("dolly"))
	assert.Equal(t, 1, ctl.count("fit"))

	r.Attach(ctl)
	assert.Equal(t, 1, ctl.count("dolly"))
}

func TestUnmountBeforeAttachCancelsIntro(t *testing.T) {
	r := New(showcaseTarget, nil)
	r.Mount(nil)
	r.Unmount()

	ctl := &fakeController{}
	r.Attach(ctl)
	assert.Empty(t, ctl.calls)
}

func TestUnmountRemovesListener(t *testing.T) {
	ctl := &fakeController{}
	host := graphics.NewHost()
	r := New(showcaseTarget, nil)
	r.Attach(ctl)

	r.Mount(host)
	r.Unmount()
	r.Unmount()
	assert.Equal(t, 0, host.Listeners())
	assert.False(t, r.Mounted())

	host.NotifyResize()
	assert.Equal(t, 1, ctl.count("fit"))

	r.Mount(host)
	assert.Equal(t, 1, host.Listeners())
	assert.Equal(t, 2, ctl.count("dolly"))
}

func TestResizeRefits(t *testing.T) {
	ctl := &fakeController{}
	host := graphics.NewHost()
	r := New(showcaseTarget, nil)
	r.Attach(ctl)
	r.Mount(host)

	host.NotifyResize()
	host.NotifyResize()

	assert.Equal(t, 3, ctl.count("fit"))
	assert.Equal(t, 1, ctl.count("dolly"))
	last := ctl.calls[len(ctl.calls)-1]
	assert.Equal(t, showcaseTarget.Bounds(), last.box)
	assert.True(t, last.flag)
}

func TestPerFrameClamp(t *testing.T) {
	cases := []struct {
		y, want float32
	}{
		{-0.35, -0.4},
		{-0.1, -0.1},
		{-0.2, -0.2},
		{-0.4, -0.4},
		{-5, -0.4},
		{3, 3},
	}
	for _, tc := range cases {
		ctl := &fakeController{}
		ctl.camera.Position.Y = tc.y
		r := New(showcaseTarget, nil)
		r.Attach(ctl)
		r.PerFrameClamp()
		assert.Equal(t, tc.want, ctl.camera.Position.Y, "y=%v", tc.y)
	}
}

func TestPerFrameClampKeepsOtherAxes(t *testing.T) {
	ctl := &fakeController{}
	ctl.camera.Position = rl.NewVector3(1, -1, 2)
	r := New(showcaseTarget, nil)
	r.Attach(ctl)
	r.PerFrameClamp()
	assert.Equal(t, rl.NewVector3(1, -0.4, 2), ctl.camera.Position)
}

func TestDetachedRigIsNoOp(t *testing.T) {
	host := graphics.NewHost()
	r := New(showcaseTarget, nil)
	assert.NotPanics(t, func() {
		r.PerFrameClamp()
		r.FitToTarget()
		r.RunIntro()
		r.Mount(host)
		host.NotifyResize()
		r.Unmount()
	})
	assert.Equal(t, 0, host.Listeners())
}

func TestMountWithRealControls(t *testing.T) {
	cam := rl.Camera3D{
		Position: rl.NewVector3(0, 0, 5),
		Up:       rl.NewVector3(0, 1, 0),
		Fovy:     75,
	}
	ctl := controls.New(cam, func() float32 { return 16.0 / 9.0 })
	r := New(showcaseTarget, nil)
	r.Attach(ctl)
	r.Mount(graphics.NewHost())

	assert.Equal(t, float32(1), ctl.SmoothTime())
	assert.False(t, ctl.Transitioning())
	ctl.Update(0)
	assert.InDelta(t, 2, ctl.Camera().Target.Z, 1e-4)
	assert.Greater(t, ctl.Camera().Position.Z, float32(7))

	ctl.Camera().Position.Y = -0.35
	r.PerFrameClamp()
	assert.Equal(t, float32(-0.4), ctl.Camera().Position.Y)
}
