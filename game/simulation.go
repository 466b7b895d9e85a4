package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/downpour/weather"
)

// Update runs one graphical frame: input, queued settings patches, then the
// simulation step with the real frame time.
func (g *Game) Update() {
	g.handleInput()
	g.applyPending()

	if g.paused {
		return
	}

	dt := rl.GetFrameTime()
	if dt <= 0 {
		dt = DT
	}
	g.step(dt)
}

// UpdateHeadless runs fixed-dt steps without any raylib calls.
func (g *Game) UpdateHeadless() {
	g.applyPending()
	for i := 0; i < g.opts.StepsPerUpdate; i++ {
		g.step(DT)
	}
}

// step advances the whole world by dt seconds and records telemetry for the
// tick. Patch application happens before this, never during.
func (g *Game) step(dt float32) {
	// The weather core clamps on its own, but the clock and the agents
	// integrate dt too; clamp once here so a window stall can't jump them.
	if dt > weather.MaxStepDt {
		dt = weather.MaxStepDt
	}

	start := time.Now()

	g.cycle.Advance(dt)
	g.updateAgents(dt)
	g.sim.Update(dt, g.cam.Rotation())

	g.collector.Record(
		g.sim.ActiveParticleCount(),
		g.sim.LastEmitted(),
		g.sim.LastDropped(),
		time.Since(start),
		float64(dt),
	)

	if g.collector.WindowReady() {
		g.flushWindow()
	}
}

// flushWindow closes the telemetry window and routes it to slog and CSV.
func (g *Game) flushWindow() {
	ws := g.collector.Flush(g.sim.Settings().Kind.String())

	if g.opts.LogStats {
		logWindowStats(ws)
	}
	if err := g.output.WriteWindow(ws); err != nil {
		logOutputError(err)
	}
}
