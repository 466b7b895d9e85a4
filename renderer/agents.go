package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	pedestrianColor = rl.Color{R: 210, G: 180, B: 150, A: 255}
	vehicleColor    = rl.Color{R: 90, G: 120, B: 170, A: 255}
	wheelColor      = rl.Color{R: 36, G: 36, B: 40, A: 255}
)

// DrawPedestrian renders a walker as a capsule with a slight bob driven by
// the walk phase.
func DrawPedestrian(x, z, walkPhase, ambient float32) {
	bob := 0.06 * float32(math.Abs(math.Sin(float64(walkPhase))))
	rl.DrawCapsule(
		rl.Vector3{X: x, Y: 0.35 + bob, Z: z},
		rl.Vector3{X: x, Y: 1.35 + bob, Z: z},
		0.22, 6, 4,
		shade(pedestrianColor, ambient),
	)
}

// DrawVehicle renders a vehicle as a box oriented along its heading.
func DrawVehicle(x, z, heading, ambient float32) {
	pos := rl.Vector3{X: x, Y: 0.45, Z: z}
	axis := rl.Vector3{X: 0, Y: 1, Z: 0}
	deg := -heading * 180 / math.Pi

	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	rl.Rotatef(deg, axis.X, axis.Y, axis.Z)
	rl.DrawCube(rl.Vector3{}, 2.4, 0.8, 1.2, shade(vehicleColor, ambient))
	rl.DrawCube(rl.Vector3{X: -0.2, Y: 0.55, Z: 0}, 1.2, 0.45, 1.0, shade(vehicleColor, ambient))
	rl.DrawCube(rl.Vector3{Y: -0.35}, 1.8, 0.25, 1.25, wheelColor)
	rl.PopMatrix()
}
