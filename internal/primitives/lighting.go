package primitives

import rl "github.com/gen2brain/raylib-go/raylib"

// Lighting is one directional light plus an ambient term, shared by everything drawn
// through a Registry.
type Lighting struct {
	Ambient   [4]float32
	LightDir  [3]float32 // direction toward the light
	LightCol  [3]float32
	Intensity float32
}

// DefaultLighting is a neutral light from above-right, used until an environment is set.
func DefaultLighting() Lighting {
	return Lighting{
		Ambient:   [4]float32{0.2, 0.22, 0.26, 1.0},
		LightDir:  [3]float32{0.5, 1, 0.5},
		LightCol:  [3]float32{1.0, 0.98, 0.95},
		Intensity: 0.75,
	}
}

// defaultSpecularPower controls highlight tightness (higher = smaller, sharper highlight).
const defaultSpecularPower = float32(48.0)

// defaultSpecularStrength scales specular contribution (0–1).
const defaultSpecularStrength = float32(0.35)

// setLitUniforms sets viewPos, lighting and specular terms on shader (cgo-safe: local arrays).
func setLitUniforms(shader rl.Shader, viewPos [3]float32, l Lighting) {
	if !rl.IsShaderValid(shader) {
		return
	}
	view := viewPos
	dir := l.LightDir
	amb := l.Ambient
	col := l.LightCol
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, view[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, dir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, col[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{l.Intensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularStrength}, rl.ShaderUniformFloat)
	}
}

// litVS and litFS do simple directional light + ambient + Blinn-Phong specular. Same vertex
// attributes as raylib meshes: vertexPosition, vertexTexCoord, vertexNormal.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  if (!gl_FrontFacing) N = -N;
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)
