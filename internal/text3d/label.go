package text3d

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"camping-showcase/internal/primitives"
	"camping-showcase/internal/rendertexture"
)

// maskPxPerEm is the glyph raster size used for the mask texture.
const maskPxPerEm = 128

// Label is a 3D text block. Layout and GPU resources are built on the first Draw.
type Label struct {
	Text     string
	FontPath string // empty uses raylib's default font
	Options  Options
	Position rl.Vector3
	Rotation rl.Vector3 // Euler radians, XYZ order
	Scale    rl.Vector3
	// Color multiplies the colour map; components above 1 brighten it.
	Color [4]float32
	// DoubleSided draws the back face too.
	DoubleSided bool

	layout    Layout
	pxPerUnit float32
	font      rl.Font
	ownFont   bool
	mask      *rendertexture.Target
	mesh      rl.Mesh
	mtl       rl.Material
	tintLoc   int32
	mapLoc    int32
	ready     bool
	failed    bool
}

// NewLabel returns a white label at the origin.
func NewLabel(text, fontPath string, opt Options) *Label {
	return &Label{
		Text:     text,
		FontPath: fontPath,
		Options:  opt,
		Scale:    rl.NewVector3(1, 1, 1),
		Color:    [4]float32{1, 1, 1, 1},
	}
}

// Layout returns the computed layout; it is zero until the font has been loaded.
func (l *Label) Layout() Layout {
	return l.layout
}

// Transform returns the model matrix of the unit plane mesh (XZ, centred) stretched over the
// text block.
func (l *Label) Transform() rl.Matrix {
	return QuadTransform(l.layout, primitives.Compose(l.Position, l.Rotation, l.Scale))
}

// QuadTransform maps raylib's unit XZ plane onto layout's block and then through model.
// Plane z=+0.5 becomes the block's bottom edge and its normal faces +Z.
func QuadTransform(layout Layout, model rl.Matrix) rl.Matrix {
	m := rl.MatrixScale(math32.Max(layout.Width, 1e-4), 1, math32.Max(layout.Height, 1e-4))
	m = rl.MatrixMultiply(m, primitives.Rotation(rl.NewVector3(math32.Pi/2, 0, 0)))
	m = rl.MatrixMultiply(m, rl.MatrixTranslate(layout.MinX+layout.Width/2, layout.MinY+layout.Height/2, 0))
	return rl.MatrixMultiply(m, model)
}

func (l *Label) ensure() bool {
	if l.ready || l.failed {
		return l.ready
	}
	l.font = rl.GetFontDefault()
	if l.FontPath != "" {
		if f := rl.LoadFontEx(l.FontPath, maskPxPerEm, nil); rl.IsFontValid(f) {
			l.font, l.ownFont = f, true
			rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
		}
	}
	font := l.font
	l.layout = Compute(l.Text, func(s string) float32 {
		return rl.MeasureTextEx(font, s, maskPxPerEm, 0).X / maskPxPerEm
	}, l.Options)

	shader := rl.LoadShaderFromMemory(labelVS, labelFS)
	if !rl.IsShaderValid(shader) {
		l.failed = true
		return false
	}
	ems := l.Options.FontSize
	if ems <= 0 {
		ems = 1
	}
	l.pxPerUnit = maskPxPerEm / ems
	w := int32(math32.Ceil(l.layout.Width * l.pxPerUnit))
	h := int32(math32.Ceil(l.layout.Height * l.pxPerUnit))
	l.mask = rendertexture.New(w, h)
	l.mask.Frames = 1
	l.mesh = rl.GenMeshPlane(1, 1, 1, 1)
	l.mtl = rl.LoadMaterialDefault()
	l.mtl.Shader = shader
	l.tintLoc = rl.GetShaderLocation(shader, "tint")
	l.mapLoc = rl.GetShaderLocation(shader, "mapMix")
	l.ready = true
	return true
}

// PrepareMask rasterises the glyphs once. Call outside BeginMode3D and texture modes.
func (l *Label) PrepareMask() {
	if !l.ensure() {
		return
	}
	lay := l.layout
	scale := l.pxPerUnit
	l.mask.Render(func() {
		rl.ClearBackground(rl.Blank)
		// Half-leading: a line box shorter than the em pulls glyphs up by half the difference.
		lead := (lay.LineHeight*scale - maskPxPerEm) / 2
		for _, line := range lay.Lines {
			pos := rl.NewVector2(line.X*scale, line.Top*scale+lead)
			rl.DrawTextEx(l.font, line.Text, pos, maskPxPerEm, 0, rl.White)
		}
	})
}

// Draw renders the label textured with colorMap (pass a zero texture for plain colour).
// Call inside BeginMode3D after PrepareMask has run at least once.
func (l *Label) Draw(colorMap rl.Texture2D) {
	if !l.ensure() {
		return
	}
	maskTex, ok := l.mask.Texture()
	if !ok {
		return
	}
	mapMix := float32(0)
	if colorMap.ID != 0 {
		mapMix = 1
		rl.SetMaterialTexture(&l.mtl, rl.MapAlbedo, colorMap)
	}
	rl.SetMaterialTexture(&l.mtl, rl.MapMetalness, maskTex)
	tint := l.Color
	if l.tintLoc >= 0 {
		rl.SetShaderValueV(l.mtl.Shader, l.tintLoc, tint[:], rl.ShaderUniformVec4, 1)
	}
	if l.mapLoc >= 0 {
		rl.SetShaderValue(l.mtl.Shader, l.mapLoc, []float32{mapMix}, rl.ShaderUniformFloat)
	}
	if l.DoubleSided {
		rl.DisableBackfaceCulling()
		defer rl.EnableBackfaceCulling()
	}
	rl.DrawMesh(l.mesh, l.mtl, l.Transform())
}

// Unload frees the font, mask and shader.
func (l *Label) Unload() {
	if !l.ready {
		return
	}
	l.mask.Unload()
	rl.UnloadMesh(&l.mesh)
	rl.UnloadShader(l.mtl.Shader)
	if l.ownFont {
		rl.UnloadFont(l.font)
		l.ownFont = false
	}
	l.ready = false
}

// The plane's UVs are derived from its position so they span the whole block with v up,
// matching render-texture rows. texture0 is the colour map, texture1 the glyph mask.
const (
	labelVS = `#version 330
in vec3 vertexPosition;
uniform mat4 mvp;
out vec2 fragUV;
void main() {
  fragUV = vec2(vertexPosition.x + 0.5, 0.5 - vertexPosition.z);
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	labelFS = `#version 330
in vec2 fragUV;
uniform sampler2D texture0;
uniform sampler2D texture1;
uniform vec4 tint;
uniform float mapMix;
out vec4 finalColor;
void main() {
  float coverage = texture(texture1, fragUV).a;
  if (coverage < 0.02) discard;
  vec4 base = tint * mix(vec4(1.0), texture(texture0, fragUV), mapMix);
  finalColor = vec4(base.rgb, coverage * tint.a);
}
`
)
