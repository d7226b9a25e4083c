// Package camerarig drives the showcase camera: the one-time intro move, refitting to the
// framing box, and the per-frame floor clamp.
package camerarig

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// IntroDolly is the intro's relative dolly; negative moves the camera backward.
	IntroDolly = -22
	// IntroSmoothTime is the transition time set by the intro, in seconds.
	IntroSmoothTime = 1

	// FloorTrigger and FloorSnap form the camera floor: a height strictly below FloorTrigger
	// is replaced by FloorSnap. FloorSnap is lower than FloorTrigger.
	FloorTrigger = -0.2
	FloorSnap    = -0.4
)

// Controller is the camera-control surface the rig needs.
type Controller interface {
	Dolly(distance float32, transition bool)
	SetSmoothTime(seconds float32)
	FitToBox(box rl.BoundingBox, immediate bool)
	Camera() *rl.Camera3D
}

// ResizeSource delivers host resize notifications. OnResize returns the function that
// removes that one subscription.
type ResizeSource interface {
	OnResize(fn func()) (unsubscribe func())
}

// FitTarget is the invisible box the camera is framed on.
type FitTarget struct {
	Center rl.Vector3
	Size   rl.Vector3
}

// Bounds returns the axis-aligned box of the target.
func (f FitTarget) Bounds() rl.BoundingBox {
	half := rl.Vector3Scale(f.Size, 0.5)
	return rl.NewBoundingBox(rl.Vector3Subtract(f.Center, half), rl.Vector3Add(f.Center, half))
}

// Logger is the subset of logger.Logger the rig writes to.
type Logger interface {
	Infof(format string, args ...any)
}

// Rig binds a Controller to a FitTarget. All operations are no-ops until a controller
// is attached.
type Rig struct {
	target      FitTarget
	ctl         Controller
	log         Logger
	mounted     bool
	introDue    bool
	unsubscribe func()
}

// New returns a rig framing target. log may be nil.
func New(target FitTarget, log Logger) *Rig {
	return &Rig{target: target, log: log}
}

// Attach sets the controller the rig drives. A rig mounted before it had a controller
// runs its intro now.
func (r *Rig) Attach(ctl Controller) {
	r.ctl = ctl
	if r.introDue && ctl != nil {
		r.introDue = false
		r.RunIntro()
	}
}

// Target returns the framing box.
func (r *Rig) Target() FitTarget {
	return r.target
}

// Mounted reports whether Mount has run since the last Unmount.
func (r *Rig) Mounted() bool {
	return r.mounted
}

// Mount runs the intro and subscribes FitToTarget to resize notifications. Mounting an
// already mounted rig does nothing, so there is never more than one subscription.
func (r *Rig) Mount(src ResizeSource) {
	if r.mounted {
		return
	}
	r.mounted = true
	if r.ctl == nil {
		r.introDue = true
	} else {
		r.RunIntro()
	}
	if src != nil {
		r.unsubscribe = src.OnResize(r.FitToTarget)
	}
}

// Unmount removes the resize subscription made by Mount.
func (r *Rig) Unmount() {
	if !r.mounted {
		return
	}
	r.mounted = false
	r.introDue = false
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}

// RunIntro pulls the camera back, slows transitions down, and frames the target.
func (r *Rig) RunIntro() {
	if r.ctl == nil {
		return
	}
	r.ctl.Dolly(IntroDolly, true)
	r.ctl.SetSmoothTime(IntroSmoothTime)
	r.FitToTarget()
	if r.log != nil {
		r.log.Infof("camera intro: dolly %d, smooth time %ds", IntroDolly, IntroSmoothTime)
	}
}

// FitToTarget frames the target box immediately.
func (r *Rig) FitToTarget() {
	if r.ctl == nil {
		return
	}
	r.ctl.FitToBox(r.target.Bounds(), true)
}

// PerFrameClamp keeps the camera above the floor. Run it once per frame after the
// controller has updated; a dip below the floor is corrected one frame later.
func (r *Rig) PerFrameClamp() {
	if r.ctl == nil {
		return
	}
	cam := r.ctl.Camera()
	if cam == nil {
		return
	}
	if cam.Position.Y < FloorTrigger {
		cam.Position.Y = FloorSnap
	}
}
