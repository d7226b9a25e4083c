// Package camping draws the campsite model: a glTF file when one is available, otherwise a
// procedural campsite built from primitives.
package camping

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"camping-showcase/internal/primitives"
)

//go:embed campsite.yaml
var campsiteYAML []byte

// Logger is the subset of the app logger the model reports to.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// ParseParts reads a YAML list of parts and validates each one.
func ParseParts(data []byte) ([]primitives.Part, error) {
	var parts []primitives.Part
	if err := yaml.Unmarshal(data, &parts); err != nil {
		return nil, fmt.Errorf("camping: parse parts: %w", err)
	}
	for _, p := range parts {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("camping: %w", err)
		}
	}
	return parts, nil
}

// Campsite returns the built-in procedural parts.
func Campsite() []primitives.Part {
	parts, err := ParseParts(campsiteYAML)
	if err != nil {
		panic(err)
	}
	return parts
}

// Model is the campsite. It is drawn from ModelPath when that file loads, else from Parts.
type Model struct {
	Parts     []primitives.Part
	ModelPath string

	tints      []rl.Color
	transforms []rl.Matrix
	glb        rl.Model
	glbLoaded  bool
	glbTried   bool
	log        Logger
}

// New returns a model over parts; modelPath may be empty. log may be nil.
func New(parts []primitives.Part, modelPath string, log Logger) *Model {
	m := &Model{Parts: parts, ModelPath: modelPath, log: log}
	m.tints = make([]rl.Color, len(parts))
	m.transforms = make([]rl.Matrix, len(parts))
	for i, p := range parts {
		m.tints[i] = p.Tint()
		m.transforms[i] = p.Transform()
	}
	return m
}

// PartsBounds returns the box around all parts in model space.
func PartsBounds(parts []primitives.Part) rl.BoundingBox {
	if len(parts) == 0 {
		return rl.BoundingBox{}
	}
	b := parts[0].Bounds()
	for _, p := range parts[1:] {
		pb := p.Bounds()
		b = primitives.Extend(primitives.Extend(b, pb.Min), pb.Max)
	}
	return b
}

// Bounds returns the model-space bounds of whatever Draw renders.
func (m *Model) Bounds() rl.BoundingBox {
	if m.glbLoaded {
		return rl.GetModelBoundingBox(m.glb)
	}
	return PartsBounds(m.Parts)
}

// UsesFile reports whether the glTF model is being drawn.
func (m *Model) UsesFile() bool {
	return m.glbLoaded
}

func (m *Model) ensureFile() {
	if m.glbTried {
		return
	}
	m.glbTried = true
	if m.ModelPath == "" {
		return
	}
	if _, err := os.Stat(m.ModelPath); err != nil {
		if m.log != nil {
			m.log.Infof("camping: %s not found, using procedural campsite", m.ModelPath)
		}
		return
	}
	glb := rl.LoadModel(m.ModelPath)
	if !rl.IsModelValid(glb) {
		if m.log != nil {
			m.log.Warnf("camping: could not load %s, using procedural campsite", m.ModelPath)
		}
		return
	}
	m.glb, m.glbLoaded = glb, true
	if m.log != nil {
		m.log.Infof("camping: loaded %s", m.ModelPath)
	}
}

// Draw renders the model with the given world transform. Call inside BeginMode3D.
func (m *Model) Draw(reg *primitives.Registry, transform rl.Matrix) {
	m.ensureFile()
	if m.glbLoaded {
		m.glb.Transform = transform
		rl.DrawModel(m.glb, rl.Vector3{}, 1, rl.White)
		return
	}
	for i, p := range m.Parts {
		reg.Draw(p.Type, rl.MatrixMultiply(m.transforms[i], transform), m.tints[i])
	}
}

// Unload frees the glTF model if one was loaded.
func (m *Model) Unload() {
	if m.glbLoaded {
		rl.UnloadModel(m.glb)
		m.glbLoaded = false
	}
	m.glbTried = false
}

// Instance places a model in the world. Rotation is Euler radians (XYZ order).
type Instance struct {
	Position rl.Vector3
	Rotation rl.Vector3
	Scale    float32
}

// Matrix returns the instance's world transform.
func (in Instance) Matrix() rl.Matrix {
	s := in.Scale
	if s == 0 {
		s = 1
	}
	return primitives.Compose(in.Position, in.Rotation, rl.NewVector3(s, s, s))
}

// Deg converts degrees to radians.
func Deg(d float32) float32 {
	return d * math32.Pi / 180
}
