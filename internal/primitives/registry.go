package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Primitive type names accepted by Draw.
const (
	Cube     = "cube"
	Sphere   = "sphere"
	Cylinder = "cylinder"
	Cone     = "cone"
	Pyramid  = "pyramid"
	Plane    = "plane"
)

// Known reports whether Draw understands primType.
func Known(primType string) bool {
	switch primType {
	case Cube, Sphere, Cylinder, Cone, Pyramid, Plane:
		return true
	}
	return false
}

// cached holds the mesh for a primitive type and the offset that centers it on its origin.
type cached struct {
	mesh   rl.Mesh
	offset rl.Matrix
}

// Registry maps primitive type names to meshes sharing one lit material. Meshes and the
// shader are created on first use so GPU resources are allocated after the window/OpenGL
// context exists.
type Registry struct {
	cache    map[string]cached
	mtl      rl.Material
	mtlReady bool
	viewPos  [3]float32
	lighting Lighting
}

// NewRegistry returns a registry with no primitives and DefaultLighting.
func NewRegistry() *Registry {
	return &Registry{
		cache:    make(map[string]cached),
		lighting: DefaultLighting(),
	}
}

// SetView sets the camera position for this pass. Call once per 3D pass before drawing
// so specular highlights follow the right eye.
func (r *Registry) SetView(viewPos rl.Vector3) {
	r.viewPos = [3]float32{viewPos.X, viewPos.Y, viewPos.Z}
}

// SetLighting replaces the ambient and sun terms (e.g. from an environment preset).
func (r *Registry) SetLighting(l Lighting) {
	r.lighting = l
}

// Lighting returns the current lighting.
func (r *Registry) Lighting() Lighting {
	return r.lighting
}

// defaultSphereRings and defaultSphereSlices control sphere mesh resolution.
const defaultSphereRings = 16
const defaultSphereSlices = 16

// defaultRoundSlices controls cylinder and cone resolution.
const defaultRoundSlices = 16

// ensure creates the mesh for primType if not yet cached. Every mesh is unit sized and
// centered on the origin: cylinders and cones are generated with their base at Y=0, so
// their offset moves them down by half their height.
func (r *Registry) ensure(primType string) (cached, bool) {
	if c, ok := r.cache[primType]; ok {
		return c, true
	}
	c := cached{offset: rl.MatrixIdentity()}
	switch primType {
	case Cube:
		c.mesh = rl.GenMeshCube(1, 1, 1)
	case Sphere:
		// Radius 0.5 so diameter = 1, matching the cube side length.
		c.mesh = rl.GenMeshSphere(0.5, defaultSphereRings, defaultSphereSlices)
	case Cylinder:
		c.mesh = rl.GenMeshCylinder(0.5, 1, defaultRoundSlices)
		c.offset = rl.MatrixTranslate(0, -0.5, 0)
	case Cone:
		c.mesh = rl.GenMeshCone(0.5, 1, defaultRoundSlices)
		c.offset = rl.MatrixTranslate(0, -0.5, 0)
	case Pyramid:
		// Four slices give a square-based pyramid: a tent.
		c.mesh = rl.GenMeshCone(0.5, 1, 4)
		c.offset = rl.MatrixTranslate(0, -0.5, 0)
	case Plane:
		c.mesh = rl.GenMeshPlane(1, 1, 1, 1)
	default:
		return cached{}, false
	}
	r.cache[primType] = c
	return c, true
}

func (r *Registry) ensureMaterial() {
	if r.mtlReady {
		return
	}
	r.mtl = rl.LoadMaterialDefault()
	if shader := rl.LoadShaderFromMemory(litVS, litFS); rl.IsShaderValid(shader) {
		r.mtl.Shader = shader
	}
	r.mtlReady = true
}

// Draw draws one instance of primType with the given model transform and tint.
// Must be called between BeginMode3D and EndMode3D. Unknown types are skipped.
func (r *Registry) Draw(primType string, transform rl.Matrix, tint rl.Color) {
	c, ok := r.ensure(primType)
	if !ok {
		return
	}
	r.ensureMaterial()
	if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	setLitUniforms(r.mtl.Shader, r.viewPos, r.lighting)
	rl.DrawMesh(c.mesh, r.mtl, rl.MatrixMultiply(c.offset, transform))
}

// Unload frees cached meshes and the shared material.
func (r *Registry) Unload() {
	for k, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, k)
	}
	if r.mtlReady {
		rl.UnloadShader(r.mtl.Shader)
		r.mtlReady = false
	}
}
