package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/downpour/weather"
)

// DrawEmissionVolume outlines the spawn box so the emitter region can be
// inspected while tuning.
func DrawEmissionVolume(box weather.Box) {
	c := box.Center()
	e := box.Extent()
	rl.DrawCubeWires(
		rl.Vector3{X: c.X(), Y: c.Y(), Z: c.Z()},
		e.X(), e.Y(), e.Z(),
		rl.Lime,
	)
}
