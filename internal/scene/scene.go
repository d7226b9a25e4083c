// Package scene composes the showcase: the camera rig, the title whose colour map is a
// live render of a floating campsite, the campsite itself, the reflective floor and the
// environment lighting.
package scene

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jinzhu/copier"

	"camping-showcase/internal/camerarig"
	"camping-showcase/internal/camping"
	"camping-showcase/internal/colors"
	"camping-showcase/internal/config"
	"camping-showcase/internal/controls"
	"camping-showcase/internal/debug"
	"camping-showcase/internal/environment"
	"camping-showcase/internal/floating"
	"camping-showcase/internal/fonts"
	"camping-showcase/internal/primitives"
	"camping-showcase/internal/reflector"
	"camping-showcase/internal/rendertexture"
	"camping-showcase/internal/text3d"
)

// ErrNotMounted is returned by actions that need a mounted scene.
var ErrNotMounted = errors.New("scene: not mounted")

// Logger is the subset of logger.Logger the scene writes to.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// Scene holds everything drawn each frame. GPU resources are created lazily during the
// first Draw, so New and Mount can run before the window exists.
type Scene struct {
	desc  Description
	log   Logger
	debug *debug.Debug

	ctl *controls.Controls
	rig *camerarig.Rig

	reg    *primitives.Registry
	model  *camping.Model
	title  *text3d.Label
	portal *rendertexture.Target
	float  *floating.Float
	floor  *reflector.Reflector
	sky    *environment.Sky

	outer      environment.Preset
	inner      environment.Preset
	clearColor rl.Color
	background bool

	// InputEnabled gates mouse orbit/dolly; the console turns it off while open.
	InputEnabled bool
}

// New builds the scene for cfg. Unknown presets or colours are logged and replaced by
// defaults. dbg may be nil.
func New(cfg config.Config, log Logger, dbg *debug.Debug, aspect func() float32) *Scene {
	if dbg == nil {
		dbg = debug.New()
	}
	desc := Describe(cfg, camping.Campsite())
	s := &Scene{
		desc:         desc,
		log:          log,
		debug:        dbg,
		reg:          primitives.NewRegistry(),
		portal:       rendertexture.New(desc.Portal.Size, desc.Portal.Size),
		float:        floating.New(desc.Portal.Float),
		floor:        reflector.New(desc.Floor),
		background:   cfg.Environment.Background,
		InputEnabled: true,
	}
	s.model = camping.New(desc.Parts, desc.ModelPath, log)

	s.outer = s.lookupPreset(desc.Environment)
	s.inner = s.lookupPreset(desc.Portal.Environment)
	s.sky = environment.NewSky(s.outer)

	bg, err := colors.Parse(cfg.Environment.ClearColor)
	if err != nil {
		s.warnf("scene: clear color: %v", err)
		bg = rl.RayWhite
	}
	s.clearColor = bg

	s.title = text3d.NewLabel(desc.Title.Text, s.resolveFont(cfg), desc.Title.Options)
	s.title.Position = desc.Title.Position
	s.title.Rotation = desc.Title.Rotation
	s.title.DoubleSided = desc.Title.DoubleSided
	s.title.Color = colors.Linear(desc.Title.Color, desc.Title.Intensity)

	cam := rl.Camera3D{
		Position:   rl.NewVector3(cfg.Camera.Position[0], cfg.Camera.Position[1], cfg.Camera.Position[2]),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       cfg.Camera.Fov,
		Projection: rl.CameraPerspective,
	}
	s.ctl = controls.New(cam, aspect)
	s.ctl.SetSmoothTime(cfg.Camera.SmoothTime)
	s.rig = camerarig.New(desc.FitTarget, log)
	s.rig.Attach(s.ctl)
	return s
}

func (s *Scene) lookupPreset(name string) environment.Preset {
	p, err := environment.Lookup(name)
	if err != nil {
		s.warnf("scene: %v, using %s", err, environment.Default)
		return environment.MustLookup(environment.Default)
	}
	return p
}

func (s *Scene) resolveFont(cfg config.Config) string {
	path, err := fonts.Resolve(cfg.AssetsDir(), s.desc.Title.Font)
	if err != nil {
		s.warnf("scene: %v, using the default font", err)
		return ""
	}
	return path
}

func (s *Scene) warnf(format string, args ...any) {
	if s.log != nil {
		s.log.Warnf(format, args...)
	}
}

// Mount runs the camera intro and starts refitting on resize.
func (s *Scene) Mount(src camerarig.ResizeSource) {
	s.rig.Mount(src)
}

// Unmount stops refitting on resize.
func (s *Scene) Unmount() {
	s.rig.Unmount()
}

// Rig returns the camera rig.
func (s *Scene) Rig() *camerarig.Rig {
	return s.rig
}

// Controls returns the camera controls.
func (s *Scene) Controls() *controls.Controls {
	return s.ctl
}

// Camera returns a copy of the outer camera.
func (s *Scene) Camera() rl.Camera3D {
	return *s.ctl.Camera()
}

// Debug returns the debug settings the scene reads.
func (s *Scene) Debug() *debug.Debug {
	return s.debug
}

// Description returns a deep copy of the scene tree.
func (s *Scene) Description() (Description, error) {
	var out Description
	if err := copier.CopyWithOption(&out, &s.desc, copier.Option{DeepCopy: true}); err != nil {
		return Description{}, fmt.Errorf("scene: copy description: %w", err)
	}
	return out, nil
}

// Environment returns the outer preset.
func (s *Scene) Environment() environment.Preset {
	return s.outer
}

// SetEnvironment switches the outer lighting (and sky) to the named preset.
func (s *Scene) SetEnvironment(name string) error {
	p, err := environment.Lookup(name)
	if err != nil {
		return err
	}
	s.outer = p
	s.desc.Environment = p.Name
	s.sky.SetPreset(p)
	return nil
}

// Background reports whether the sky is drawn.
func (s *Scene) Background() bool {
	return s.background
}

// SetBackground toggles drawing the preset's sky behind the scene.
func (s *Scene) SetBackground(on bool) {
	s.background = on
}

// Update advances one frame: input, camera transition, floor clamp, float animation.
func (s *Scene) Update(dt float32) {
	if s.InputEnabled {
		s.ctl.HandleInput(controls.ReadInput())
	}
	s.ctl.Update(dt)
	s.rig.PerFrameClamp()
	s.float.Update(dt)
}

// PortalTransform returns the nested model's transform at the float's current pose.
func (s *Scene) PortalTransform() rl.Matrix {
	return rl.MatrixMultiply(s.desc.Portal.Model.Matrix(), s.float.Pose().Transform())
}

// Draw renders the portal and reflection passes, then the main pass. Call between
// BeginDrawing and EndDrawing, before any 2D overlay.
func (s *Scene) Draw() {
	s.title.PrepareMask()
	s.drawPortal()

	cam := s.Camera()
	s.floor.RenderReflection(cam, func(mirrored rl.Camera3D) {
		s.drawWorld(mirrored)
	})

	rl.ClearBackground(s.clearColor)
	rl.BeginMode3D(cam)
	s.drawWorld(cam)
	s.floor.Draw(s.outer.Lighting())
	if s.debug.ShowGrid {
		s.drawHelpers()
	}
	rl.EndMode3D()
}

func (s *Scene) drawPortal() {
	p := s.desc.Portal
	s.portal.Render(func() {
		rl.ClearBackground(p.Background)
		rl.BeginMode3D(p.Camera)
		s.reg.SetLighting(s.inner.Lighting())
		s.reg.SetView(p.Camera.Position)
		s.model.Draw(s.reg, s.PortalTransform())
		rl.EndMode3D()
	})
}

// drawWorld draws everything above the floor as seen from cam.
func (s *Scene) drawWorld(cam rl.Camera3D) {
	if s.background {
		s.sky.Draw(cam)
	}
	s.reg.SetLighting(s.outer.Lighting())
	s.reg.SetView(cam.Position)
	s.model.Draw(s.reg, s.desc.Model.Matrix())
	tex, _ := s.portal.Texture()
	s.title.Draw(tex)
}

func (s *Scene) drawHelpers() {
	h := s.desc.Helpers
	debug.DrawSegments(debug.GridSegments(h.GridY, h.GridSize, h.GridDivisions))
	debug.DrawSegments(debug.AxesSegments(h.AxesSize))
	debug.DrawBounds(s.desc.FitTarget.Bounds(), rl.Yellow)
	debug.DrawBounds(primitives.TransformBounds(s.model.Bounds(), s.desc.Model.Matrix()), rl.Orange)
}

// Unload frees all GPU resources.
func (s *Scene) Unload() {
	s.title.Unload()
	s.portal.Unload()
	s.floor.Unload()
	s.sky.Unload()
	s.model.Unload()
	s.reg.Unload()
}

// Intro replays the camera intro on a mounted scene.
func (s *Scene) Intro() error {
	if !s.rig.Mounted() {
		return ErrNotMounted
	}
	s.rig.RunIntro()
	return nil
}
