package environment

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	skyScale  = 500
	panoramaW = 1024
	panoramaH = 512
)

// Sky draws a preset's panorama as a background. GPU resources are created lazily on the
// first Draw, after the window and GL context exist, and rebuilt when the preset changes.
type Sky struct {
	preset   Preset
	pending  bool
	loaded   bool
	mtlReady bool
	tex      rl.Texture2D
	mesh     rl.Mesh
	mtl      rl.Material
	camPos   int32
}

// NewSky returns a sky for p; nothing is uploaded until Draw.
func NewSky(p Preset) *Sky {
	return &Sky{preset: p, pending: true}
}

// Preset returns the preset currently shown.
func (s *Sky) Preset() Preset {
	return s.preset
}

// SetPreset swaps the panorama on the next Draw.
func (s *Sky) SetPreset(p Preset) {
	if p.Name == s.preset.Name {
		return
	}
	s.preset = p
	s.pending = true
}

func (s *Sky) ensureLoaded() {
	if !s.pending {
		return
	}
	s.pending = false
	if !s.mtlReady {
		shader := rl.LoadShaderFromMemory(equirectVS, equirectFS)
		if !rl.IsShaderValid(shader) {
			return
		}
		s.mesh = rl.GenMeshCube(1, 1, 1)
		s.mtl = rl.LoadMaterialDefault()
		s.mtl.Shader = shader
		s.camPos = rl.GetShaderLocation(shader, "cameraPosition")
		s.mtlReady = true
	}
	if s.loaded {
		rl.UnloadTexture(s.tex)
	}
	img := rl.NewImageFromImage(PanoramaImage(s.preset, panoramaW, panoramaH))
	s.tex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(s.tex, rl.FilterBilinear)
	rl.SetMaterialTexture(&s.mtl, rl.MapAlbedo, s.tex)
	s.loaded = rl.IsTextureValid(s.tex)
}

// Draw renders the sky as a large cube centred on the camera. Call first inside BeginMode3D.
func (s *Sky) Draw(cam rl.Camera3D) {
	s.ensureLoaded()
	if !s.loaded {
		return
	}
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	pos := cam.Position
	transform := rl.MatrixMultiply(rl.MatrixScale(skyScale, skyScale, skyScale), rl.MatrixTranslate(pos.X, pos.Y, pos.Z))
	if s.camPos >= 0 {
		rl.SetShaderValueV(s.mtl.Shader, s.camPos, []float32{pos.X, pos.Y, pos.Z}, rl.ShaderUniformVec3, 1)
	}
	rl.DrawMesh(s.mesh, s.mtl, transform)
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
}

// Unload frees the texture, mesh and shader.
func (s *Sky) Unload() {
	if s.loaded {
		rl.UnloadTexture(s.tex)
		s.loaded = false
	}
	if s.mtlReady {
		rl.UnloadMesh(&s.mesh)
		rl.UnloadShader(s.mtl.Shader)
		s.mtlReady = false
	}
	s.pending = true
}

// Equirectangular sky shader: samples the panorama (albedo map, texture0) by view direction.
const (
	equirectVS = `#version 330
in vec3 vertexPosition;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragWorldPos;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragWorldPos = worldPos.xyz;
  gl_Position = matProjection * matView * worldPos;
}
`
	equirectFS = `#version 330
in vec3 fragWorldPos;
out vec4 finalColor;
uniform sampler2D texture0;
uniform vec3 cameraPosition;
void main() {
  vec3 dir = normalize(fragWorldPos - cameraPosition);
  float lon = atan(dir.z, dir.x);
  float lat = asin(clamp(dir.y, -1.0, 1.0));
  float u = lon / 6.28318530718 + 0.5;
  float v = 0.5 - lat / 3.14159265359;
  finalColor = texture(texture0, vec2(u, v));
}
`
)
