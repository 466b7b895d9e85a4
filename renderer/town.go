package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/downpour/sky"
	"github.com/pthm-cable/downpour/town"
)

// facadePalette provides the building tones town generation indexes into.
var facadePalette = [6]rl.Color{
	{R: 164, G: 148, B: 131, A: 255}, // sandstone
	{R: 131, G: 137, B: 150, A: 255}, // slate
	{R: 158, G: 117, B: 104, A: 255}, // brick
	{R: 140, G: 152, B: 145, A: 255}, // weathered green
	{R: 172, G: 166, B: 152, A: 255}, // plaster
	{R: 118, G: 122, B: 134, A: 255}, // concrete
}

var (
	groundColor = rl.Color{R: 52, G: 56, B: 54, A: 255}
	trunkColor  = rl.Color{R: 96, G: 72, B: 52, A: 255}
	canopyColor = rl.Color{R: 58, G: 104, B: 62, A: 255}
	poleColor   = rl.Color{R: 70, G: 72, B: 78, A: 255}
	lampOnColor = rl.Color{R: 255, G: 222, B: 140, A: 255}
)

// DrawTown renders the static scene, shading everything by the day/night
// ambient factor. Lamps light up as ambient drops.
func DrawTown(t *town.Town, ambient float32) {
	rl.DrawPlane(
		rl.Vector3{X: 0, Y: 0, Z: 0},
		rl.Vector2{X: t.Width, Y: t.Depth},
		shade(groundColor, ambient),
	)

	for i := range t.Buildings {
		b := &t.Buildings[i]
		col := shade(facadePalette[int(b.Tone)%len(facadePalette)], ambient)
		pos := rl.Vector3{X: b.X, Y: b.H / 2, Z: b.Z}
		rl.DrawCube(pos, b.W, b.H, b.D, col)
		rl.DrawCubeWires(pos, b.W, b.H, b.D, shade(rl.Color{R: 30, G: 32, B: 36, A: 255}, ambient))
	}

	for _, tr := range t.Trees {
		base := rl.Vector3{X: tr.X, Y: 0, Z: tr.Z}
		top := rl.Vector3{X: tr.X, Y: tr.H * 0.4, Z: tr.Z}
		rl.DrawCylinderEx(base, top, 0.15, 0.15, 6, shade(trunkColor, ambient))
		crown := rl.Vector3{X: tr.X, Y: tr.H, Z: tr.Z}
		rl.DrawCylinderEx(top, crown, 0.9, 0.05, 8, shade(canopyColor, ambient))
	}

	lampLit := ambient < 0.45
	for _, l := range t.Lamps {
		base := rl.Vector3{X: l.X, Y: 0, Z: l.Z}
		top := rl.Vector3{X: l.X, Y: 3.2, Z: l.Z}
		rl.DrawCylinderEx(base, top, 0.06, 0.06, 5, shade(poleColor, ambient))
		head := lampOnColor
		if !lampLit {
			head = shade(rl.Color{R: 120, G: 118, B: 108, A: 255}, ambient)
		}
		rl.DrawSphere(rl.Vector3{X: l.X, Y: 3.35, Z: l.Z}, 0.18, head)
	}
}

// SkyColor converts the day/night cycle color for use as the clear color.
func SkyColor(c sky.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

// shade darkens a color by the ambient light factor, keeping a small floor
// so night scenes stay readable.
func shade(c rl.Color, ambient float32) rl.Color {
	f := 0.25 + 0.75*ambient
	return rl.Color{
		R: uint8(float32(c.R) * f),
		G: uint8(float32(c.G) * f),
		B: uint8(float32(c.B) * f),
		A: c.A,
	}
}
