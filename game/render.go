package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/downpour/components"
	"github.com/pthm-cable/downpour/renderer"
	"github.com/pthm-cable/downpour/systems"
	"github.com/pthm-cable/downpour/ui"
	"github.com/pthm-cable/downpour/weather"
)

// Draw renders the frame: 3D scene, then the UI overlay. Panel edits are
// queued and applied at the start of the next Update, never mid-frame.
func (g *Game) Draw() {
	ambient := g.cycle.Ambient()

	rl.BeginDrawing()
	rl.ClearBackground(renderer.SkyColor(g.cycle.SkyColor(g.overcast())))

	rl.BeginMode3D(g.rlCamera())

	renderer.DrawTown(g.town, ambient)
	g.drawAgents(ambient)

	if g.sim.DebugVolumeVisible() {
		renderer.DrawEmissionVolume(g.sim.Volume())
	}

	// Particles last: they are translucent and cover the whole scene.
	g.weatherR.Draw(g.sim.Instances())

	rl.EndMode3D()

	g.drawUI()
	rl.EndDrawing()
}

// rlCamera adapts the orbit camera to raylib's camera struct.
func (g *Game) rlCamera() rl.Camera3D {
	pos := g.cam.Position()
	return rl.Camera3D{
		Position:   rl.Vector3{X: pos.X(), Y: pos.Y(), Z: pos.Z()},
		Target:     rl.Vector3{X: g.cam.Target.X(), Y: g.cam.Target.Y(), Z: g.cam.Target.Z()},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       g.cam.FovY,
		Projection: rl.CameraPerspective,
	}
}

// drawAgents renders every pedestrian and vehicle.
func (g *Game) drawAgents(ambient float32) {
	query := g.agentFilter.Query()
	for query.Next() {
		pos, vel, agent, _ := query.Get()
		switch agent.Kind {
		case components.KindVehicle:
			renderer.DrawVehicle(pos.X, pos.Z, systems.Heading(*vel), ambient)
		default:
			renderer.DrawPedestrian(pos.X, pos.Z, agent.WalkPhase, ambient)
		}
	}
}

// drawUI renders the HUD and the weather panel, queueing any edits.
func (g *Game) drawUI() {
	g.hud.Draw(ui.HUDData{
		Kind:         g.sim.Settings().Kind.String(),
		Active:       g.sim.ActiveParticleCount(),
		Capacity:     g.sim.Capacity(),
		Emitted:      g.sim.LastEmitted(),
		Dropped:      g.sim.LastDropped(),
		TimeOfDay:    float64(g.cycle.Time),
		Tick:         g.Tick(),
		FPS:          rl.GetFPS(),
		Paused:       g.paused,
		ScreenHeight: int32(g.cfg.Screen.Height),
	})
	g.hud.DrawControls(int32(g.cfg.Screen.Height))

	patch, debug := g.panel.Draw(g.sim.Settings(), g.sim.DebugVolumeVisible())
	if debug != g.sim.DebugVolumeVisible() {
		g.sim.SetDebugVolumeVisible(debug)
	}
	if patch != (weather.Patch{}) {
		g.QueuePatch(patch)
	}
}
