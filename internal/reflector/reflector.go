// Package reflector draws a horizontal floor that shows a blurred, tinted reflection of the
// scene above it. The scene is rendered from a camera mirrored in the floor plane into an
// offscreen target, which the floor shader samples projectively.
package reflector

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"camping-showcase/internal/colors"
	"camping-showcase/internal/primitives"
	"camping-showcase/internal/rendertexture"
)

// raylib's default clip distances, used by BeginMode3D.
const (
	clipNear = 0.01
	clipFar  = 1000
)

// blurTexels is the kernel radius, in texels of the blur resolution.
const blurTexels = 4

// Params are the floor material settings.
type Params struct {
	Size [2]float32 // width (x) and depth (z)
	Y    float32
	// Blur is the resolution (x, y) the reflection is softened at; lower is blurrier.
	Blur                 [2]float32
	Resolution           int32
	MixBlur              float32
	MixStrength          float32
	MixContrast          float32
	Mirror               float32
	Roughness            float32
	Metalness            float32
	DepthScale           float32
	MinDepthThreshold    float32
	MaxDepthThreshold    float32
	DepthToBlurRatioBias float32
	Color                rl.Color
}

// DefaultFloor is the showcase floor: 50×50 at y=-1, dark and strongly blurred.
func DefaultFloor() Params {
	return Params{
		Size:                 [2]float32{50, 50},
		Y:                    -1,
		Blur:                 [2]float32{300, 100},
		Resolution:           2048,
		MixBlur:              1,
		MixStrength:          80,
		MixContrast:          1,
		Roughness:            1,
		Metalness:            0.5,
		DepthScale:           1.2,
		MinDepthThreshold:    0.4,
		MaxDepthThreshold:    1.4,
		DepthToBlurRatioBias: 0.25,
		Color:                colors.MustParse("#050505"),
	}
}

// BlurRadius returns the blur kernel radius in texture coordinates.
func (p Params) BlurRadius() rl.Vector2 {
	var r rl.Vector2
	if p.Blur[0] > 0 {
		r.X = blurTexels / p.Blur[0]
	}
	if p.Blur[1] > 0 {
		r.Y = blurTexels / p.Blur[1]
	}
	return r
}

// MirrorCamera reflects cam in the plane y = planeY. The mirrored up vector keeps the
// reflection upright when sampled projectively.
func MirrorCamera(cam rl.Camera3D, planeY float32) rl.Camera3D {
	m := cam
	m.Position.Y = 2*planeY - cam.Position.Y
	m.Target.Y = 2*planeY - cam.Target.Y
	m.Up.Y = -cam.Up.Y
	return m
}

// TextureMatrix returns projection × view for cam rendered at the given aspect, as
// BeginMode3D builds them. Multiplying a world position by it gives clip coordinates in the
// reflection target.
func TextureMatrix(cam rl.Camera3D, aspect float32) rl.Matrix {
	view := primitives.LookAt(cam.Position, cam.Target, cam.Up)
	proj := primitives.Perspective(cam.Fovy, aspect, clipNear, clipFar)
	return rl.MatrixMultiply(view, proj)
}

// Reflector owns the reflection target and the floor mesh and material.
type Reflector struct {
	Params Params

	target    *rendertexture.Target
	texMatrix rl.Matrix
	mesh      rl.Mesh
	mtl       rl.Material
	locs      map[string]int32
	ready     bool
	failed    bool
}

// New returns a reflector; GPU resources are created on first use.
func New(p Params) *Reflector {
	return &Reflector{
		Params:    p,
		target:    rendertexture.New(p.Resolution, p.Resolution),
		texMatrix: rl.MatrixIdentity(),
	}
}

var uniformNames = []string{
	"textureMatrix", "baseColor", "blurRadius", "mixBlur", "mixStrength", "mixContrast",
	"mirror", "roughness", "metalness", "depthScale", "minDepthThreshold", "maxDepthThreshold",
	"depthToBlurRatioBias", "ambient", "lightDir", "lightColor", "lightIntensity",
}

func (r *Reflector) ensure() bool {
	if r.ready || r.failed {
		return r.ready
	}
	shader := rl.LoadShaderFromMemory(floorVS, floorFS)
	if !rl.IsShaderValid(shader) {
		r.failed = true
		return false
	}
	r.mesh = rl.GenMeshPlane(r.Params.Size[0], r.Params.Size[1], 1, 1)
	r.mtl = rl.LoadMaterialDefault()
	r.mtl.Shader = shader
	r.locs = make(map[string]int32, len(uniformNames))
	for _, name := range uniformNames {
		r.locs[name] = rl.GetShaderLocation(shader, name)
	}
	r.ready = true
	return true
}

// RenderReflection draws the scene as seen from cam mirrored in the floor into the
// reflection target. draw receives the mirrored camera and runs inside BeginMode3D.
// Call outside any other texture or 3D mode.
func (r *Reflector) RenderReflection(cam rl.Camera3D, draw func(mirrored rl.Camera3D)) {
	mirrored := MirrorCamera(cam, r.Params.Y)
	r.texMatrix = TextureMatrix(mirrored, r.target.Aspect())
	r.target.Render(func() {
		rl.ClearBackground(rl.Black)
		rl.BeginMode3D(mirrored)
		draw(mirrored)
		rl.EndMode3D()
	})
}

// Draw renders the floor. Call inside BeginMode3D with the real camera.
func (r *Reflector) Draw(light primitives.Lighting) {
	if !r.ensure() {
		return
	}
	tex, ok := r.target.Texture()
	if !ok {
		return
	}
	rl.SetMaterialTexture(&r.mtl, rl.MapAlbedo, tex)
	r.setUniforms(light)
	rl.DrawMesh(r.mesh, r.mtl, rl.MatrixTranslate(0, r.Params.Y, 0))
}

func (r *Reflector) setUniforms(light primitives.Lighting) {
	sh := r.mtl.Shader
	p := r.Params
	if loc := r.locs["textureMatrix"]; loc >= 0 {
		rl.SetShaderValueMatrix(sh, loc, r.texMatrix)
	}
	vec := func(name string, v []float32, typ rl.ShaderUniformDataType) {
		if loc := r.locs[name]; loc >= 0 {
			rl.SetShaderValueV(sh, loc, v, typ, 1)
		}
	}
	scalar := func(name string, v float32) {
		vec(name, []float32{v}, rl.ShaderUniformFloat)
	}
	base := rl.ColorNormalize(p.Color)
	blur := p.BlurRadius()
	vec("baseColor", []float32{base.X, base.Y, base.Z, base.W}, rl.ShaderUniformVec4)
	vec("blurRadius", []float32{blur.X, blur.Y}, rl.ShaderUniformVec2)
	scalar("mixBlur", p.MixBlur)
	scalar("mixStrength", p.MixStrength)
	scalar("mixContrast", p.MixContrast)
	scalar("mirror", p.Mirror)
	scalar("roughness", p.Roughness)
	scalar("metalness", p.Metalness)
	scalar("depthScale", p.DepthScale)
	scalar("minDepthThreshold", p.MinDepthThreshold)
	scalar("maxDepthThreshold", p.MaxDepthThreshold)
	scalar("depthToBlurRatioBias", p.DepthToBlurRatioBias)
	amb, dir, col := light.Ambient, light.LightDir, light.LightCol
	vec("ambient", amb[:], rl.ShaderUniformVec4)
	vec("lightDir", dir[:], rl.ShaderUniformVec3)
	vec("lightColor", col[:], rl.ShaderUniformVec3)
	scalar("lightIntensity", light.Intensity)
}

// Unload frees the reflection target, mesh and shader.
func (r *Reflector) Unload() {
	r.target.Unload()
	if !r.ready {
		return
	}
	rl.UnloadMesh(&r.mesh)
	rl.UnloadShader(r.mtl.Shader)
	r.ready = false
}
