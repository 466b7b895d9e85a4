// Package renderer draws the scene with raylib. The simulation packages
// never import it; everything here consumes plain simulation state.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/downpour/weather"
)

// Minimal instancing shader pair: the per-instance model matrix arrives as a
// vertex attribute, everything else is stock raylib plumbing.
const instancingVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec4 vertexColor;
in mat4 instanceTransform;

uniform mat4 mvp;

out vec2 fragTexCoord;
out vec4 fragColor;

void main()
{
    fragTexCoord = vertexTexCoord;
    fragColor = vertexColor;
    gl_Position = mvp*instanceTransform*vec4(vertexPosition, 1.0);
}
`

const instancingFS = `#version 330
in vec2 fragTexCoord;
in vec4 fragColor;

uniform sampler2D texture0;
uniform vec4 colDiffuse;

out vec4 finalColor;

void main()
{
    vec4 texelColor = texture(texture0, fragTexCoord);
    finalColor = texelColor*colDiffuse*fragColor;
}
`

// WeatherRenderer owns the particle mesh, instancing shader, and the
// per-kind texture and tint. It implements weather.TextureProvider, so the
// simulation can trigger texture regeneration without knowing about raylib.
type WeatherRenderer struct {
	mesh    rl.Mesh
	mat     rl.Material
	shader  rl.Shader
	texture rl.Texture2D
	loaded  bool

	// Scratch transform buffer converted from the simulation's instance
	// buffer each frame; sized once, reused forever.
	xforms []rl.Matrix
}

// NewWeatherRenderer creates the renderer with capacity for the particle
// pool's worst case, and an initial texture for the given kind.
func NewWeatherRenderer(capacity int, kind weather.Kind) *WeatherRenderer {
	r := &WeatherRenderer{
		// A thin slab stands in for a billboard quad: raylib's plane mesh
		// lies in XZ and would need an axis fix baked into every transform.
		mesh:   rl.GenMeshCube(1, 1, 0.05),
		shader: rl.LoadShaderFromMemory(instancingVS, instancingFS),
		xforms: make([]rl.Matrix, 0, capacity),
	}

	r.shader.UpdateLocation(rl.ShaderLocMatrixMvp, rl.GetShaderLocation(r.shader, "mvp"))
	r.shader.UpdateLocation(rl.ShaderLocMatrixModel, rl.GetShaderLocationAttrib(r.shader, "instanceTransform"))

	r.mat = rl.LoadMaterialDefault()
	r.mat.Shader = r.shader
	r.Regenerate(kind)
	return r
}

// Regenerate builds the particle texture and base tint for a weather kind.
// Called by the simulation exactly once per kind change.
func (r *WeatherRenderer) Regenerate(kind weather.Kind) {
	if r.loaded {
		rl.UnloadTexture(r.texture)
		r.loaded = false
	}

	var img *rl.Image
	var tint rl.Color
	switch kind {
	case weather.KindRain:
		// Vertical streak: bright core fading out toward the bottom.
		img = rl.GenImageGradientLinear(8, 64, 0,
			rl.Color{R: 205, G: 220, B: 245, A: 235},
			rl.Color{R: 205, G: 220, B: 245, A: 0})
		tint = rl.Color{R: 255, G: 255, B: 255, A: 200}
	case weather.KindSnow:
		// Soft radial flake.
		img = rl.GenImageGradientRadial(32, 32, 0.25,
			rl.Color{R: 250, G: 250, B: 255, A: 255},
			rl.Color{R: 250, G: 250, B: 255, A: 0})
		tint = rl.Color{R: 255, G: 255, B: 255, A: 235}
	default:
		img = rl.GenImageColor(1, 1, rl.Blank)
		tint = rl.Blank
	}

	r.texture = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	r.loaded = true

	rl.SetMaterialTexture(&r.mat, rl.MapDiffuse, r.texture)
	r.mat.Maps.Color = tint
}

// Draw submits the whole instance buffer as a single instanced draw call.
func (r *WeatherRenderer) Draw(instances []mgl32.Mat4) {
	if len(instances) == 0 {
		return
	}

	r.xforms = r.xforms[:0]
	for i := range instances {
		r.xforms = append(r.xforms, toRLMatrix(&instances[i]))
	}

	rl.DrawMeshInstanced(r.mesh, r.mat, r.xforms, len(r.xforms))
}

// Unload releases GPU resources.
func (r *WeatherRenderer) Unload() {
	if r.loaded {
		rl.UnloadTexture(r.texture)
		r.loaded = false
	}
	rl.UnloadMesh(&r.mesh)
	rl.UnloadShader(r.shader)
}

// toRLMatrix converts a column-major mgl32 matrix to raylib's layout.
// Both index as 4*col+row, so the mapping is name-for-name.
func toRLMatrix(m *mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
