package scene

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"camping-showcase/internal/camerarig"
	"camping-showcase/internal/camping"
	"camping-showcase/internal/colors"
	"camping-showcase/internal/config"
	"camping-showcase/internal/environment"
	"camping-showcase/internal/floating"
	"camping-showcase/internal/primitives"
	"camping-showcase/internal/reflector"
	"camping-showcase/internal/text3d"
)

// Title is the label's text.
const Title = "MY LITTLE\nCAMPING"

// titleIntensity brightens the title past white so the portal texture reads through it.
const titleIntensity = 1.5

var (
	titleColor = colors.MustParse("#fff")
	portalBG   = colors.MustParse("#ffff")

	// fitTarget is the invisible box the camera frames; it covers the title and the model.
	fitTarget = camerarig.FitTarget{
		Center: rl.NewVector3(0, 0, 2),
		Size:   rl.NewVector3(6, 2, 10),
	}
)

// TitleNode is the 3D text whose colour map is the portal.
type TitleNode struct {
	Text        string
	Font        string
	Position    rl.Vector3
	Rotation    rl.Vector3
	Options     text3d.Options
	DoubleSided bool
	Color       rl.Color
	Intensity   float32
}

// PortalNode is the nested scene rendered into the title's colour map.
type PortalNode struct {
	Size        int32
	Environment string
	Background  rl.Color
	Camera      rl.Camera3D
	Float       floating.Params
	Model       camping.Instance
}

// HelperNode places the debug grid and axes.
type HelperNode struct {
	GridY         float32
	GridSize      float32
	GridDivisions int
	AxesSize      float32
}

// Description is the static scene tree. It is built once and read by every draw pass.
type Description struct {
	FitTarget   camerarig.FitTarget
	Title       TitleNode
	Portal      PortalNode
	Model       camping.Instance
	Parts       []primitives.Part
	ModelPath   string
	Floor       reflector.Params
	Environment string
	Helpers     HelperNode
}

// Describe builds the scene tree for cfg. parts is the procedural campsite drawn when the
// glTF model is not available.
func Describe(cfg config.Config, parts []primitives.Part) Description {
	preset := cfg.Environment.Preset
	if preset == "" {
		preset = environment.Default
	}
	return Description{
		FitTarget: fitTarget,
		Title: TitleNode{
			Text:     Title,
			Font:     cfg.Assets.Font,
			Position: rl.NewVector3(-2.6, -1, 1),
			Rotation: rl.NewVector3(0, camping.Deg(25), 0),
			Options: text3d.Options{
				FontSize:   1,
				LineHeight: 0.8,
				Align:      text3d.AlignCenter,
				AnchorX:    text3d.AnchorMiddle,
				AnchorY:    text3d.AnchorEnd,
			},
			DoubleSided: true,
			Color:       titleColor,
			Intensity:   titleIntensity,
		},
		Portal: PortalNode{
			Size:        cfg.Portal.Size,
			Environment: environment.Default,
			Background:  portalBG,
			Camera: rl.Camera3D{
				Position:   rl.NewVector3(0, 0, 5),
				Target:     rl.Vector3{},
				Up:         rl.NewVector3(0, 1, 0),
				Fovy:       75,
				Projection: rl.CameraPerspective,
			},
			Float: floating.Params{
				Speed:             1,
				RotationIntensity: 4,
				FloatIntensity:    4,
				Range:             [2]float32{-0.1, 0.1},
			},
			Model: camping.Instance{Scale: 3},
		},
		Model: camping.Instance{
			Position: rl.NewVector3(3, 0, 0),
			Rotation: rl.NewVector3(0, camping.Deg(-25), 0),
			Scale:    1,
		},
		Parts:       parts,
		ModelPath:   cfg.AssetPath(cfg.Assets.Model),
		Floor:       reflector.DefaultFloor(),
		Environment: preset,
		Helpers: HelperNode{
			GridY:         -1,
			GridSize:      10,
			GridDivisions: 10,
			AxesSize:      5,
		},
	}
}

// Summary returns one line per node, for the console.
func (d Description) Summary() []string {
	return []string{
		fmt.Sprintf("fit target: center %s size %s", vec3(d.FitTarget.Center), vec3(d.FitTarget.Size)),
		fmt.Sprintf("title: %q at %s rot-y %g°", d.Title.Text, vec3(d.Title.Position), deg(d.Title.Rotation.Y)),
		fmt.Sprintf("portal: %s, model scale %g", d.Portal.Environment, d.Portal.Model.Scale),
		fmt.Sprintf("model: at %s rot-y %g°, %d parts", vec3(d.Model.Position), deg(d.Model.Rotation.Y), len(d.Parts)),
		fmt.Sprintf("floor: %gx%g at y %g", d.Floor.Size[0], d.Floor.Size[1], d.Floor.Y),
		fmt.Sprintf("environment: %s", d.Environment),
	}
}

func vec3(v rl.Vector3) string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

func deg(rad float32) float32 {
	return math32.Round(rad * 180 / math32.Pi)
}
