package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/downpour/weather"
)

// handleInput processes keyboard and mouse input for the frame.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Weather kind hotkeys
	if rl.IsKeyPressed(rl.KeyOne) {
		g.queueKind(weather.KindClear)
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		g.queueKind(weather.KindRain)
	}
	if rl.IsKeyPressed(rl.KeyThree) {
		g.queueKind(weather.KindSnow)
	}

	if rl.IsKeyPressed(rl.KeyV) {
		g.sim.SetDebugVolumeVisible(!g.sim.DebugVolumeVisible())
	}

	if rl.IsKeyPressed(rl.KeyTab) && g.panel != nil {
		g.panel.Toggle()
	}

	g.handleCameraInput()
}

// queueKind queues a kind change patch for the next step.
func (g *Game) queueKind(k weather.Kind) {
	kind := k
	g.QueuePatch(weather.Patch{Kind: &kind})
}

// Camera input tuning.
const (
	orbitSensitivity float32 = 0.005
	dollyStep        float32 = 0.1
	panSpeed         float32 = 0.6
)

// handleCameraInput maps mouse drag to orbit, wheel to dolly and WASD/arrow
// keys to ground-plane panning. Pan speed scales with distance so movement
// feels constant on screen.
func (g *Game) handleCameraInput() {
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		g.cam.Orbit(d.X*orbitSensitivity, d.Y*orbitSensitivity)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.cam.Dolly(1 - wheel*dollyStep)
	}

	pan := panSpeed * g.cam.Distance * DT
	if rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp) {
		g.cam.Pan(0, pan)
	}
	if rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown) {
		g.cam.Pan(0, -pan)
	}
	if rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft) {
		g.cam.Pan(-pan, 0)
	}
	if rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight) {
		g.cam.Pan(pan, 0)
	}
}
