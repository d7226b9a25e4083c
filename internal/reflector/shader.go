package reflector

// The floor shader samples the reflection target (texture0) at the fragment's projected
// position in the mirrored camera, mixes in a blurred copy, and tints the base colour with
// it. The reflected scene's depth is not available, so the floor's own depth in the mirrored
// view stands in for it.
const (
	floorVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 textureMatrix;
out vec4 fragReflect;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 world = matModel * vec4(vertexPosition, 1.0);
  fragPosition = world.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  fragReflect = textureMatrix * world;
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	floorFS = `#version 330
in vec4 fragReflect;
in vec3 fragPosition;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 baseColor;
uniform vec2 blurRadius;
uniform float mixBlur;
uniform float mixStrength;
uniform float mixContrast;
uniform float mirror;
uniform float roughness;
uniform float metalness;
uniform float depthScale;
uniform float minDepthThreshold;
uniform float maxDepthThreshold;
uniform float depthToBlurRatioBias;
uniform vec4 ambient;
uniform vec3 lightDir;
uniform vec3 lightColor;
uniform float lightIntensity;
out vec4 finalColor;

vec4 blurred(vec2 uv) {
  vec4 sum = vec4(0.0);
  float total = 0.0;
  for (int x = -2; x <= 2; x++) {
    for (int y = -2; y <= 2; y++) {
      vec2 o = vec2(float(x), float(y)) * 0.5;
      float w = exp(-dot(o, o) * 2.0);
      sum += texture(texture0, uv + o * blurRadius) * w;
      total += w;
    }
  }
  return sum / total;
}

void main() {
  vec3 ndc = fragReflect.xyz / fragReflect.w;
  vec2 uv = ndc.xy * 0.5 + 0.5;
  vec4 merge = texture(texture0, uv);
  vec4 blur = blurred(uv);

  float depth = ndc.z * 0.5 + 0.5;
  float depthFactor = smoothstep(minDepthThreshold, maxDepthThreshold, 1.0 - depth);
  depthFactor = clamp(depthFactor * depthScale, 0.0001, 1.0);
  blur = blur * min(1.0, depthFactor + depthToBlurRatioBias);
  merge = merge * min(1.0, depthFactor + 0.5);

  float blurFactor = min(1.0, mixBlur * roughness);
  merge = mix(merge, blur, blurFactor);
  vec3 contrasted = (merge.rgb - 0.5) * mixContrast + 0.5;

  vec3 diffuse = baseColor.rgb * ((1.0 - min(1.0, mirror)) + contrasted * mixStrength);

  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  float NdotL = max(dot(N, L), 0.0);
  vec3 lit = ambient.rgb + lightColor * lightIntensity * NdotL * (1.0 - 0.5 * metalness);
  finalColor = vec4(diffuse * lit, baseColor.a);
}
`
)
