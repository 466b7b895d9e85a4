package game

import (
	"math"
	"testing"

	"github.com/pthm-cable/downpour/config"
	"github.com/pthm-cable/downpour/weather"
)

func newHeadlessGame(t *testing.T) *Game {
	t.Helper()
	if err := config.Init(""); err != nil {
		t.Fatalf("loading default config: %v", err)
	}
	return NewGameWithOptions(Options{
		Seed:           1,
		Headless:       true,
		StatsWindowSec: 5,
		StepsPerUpdate: 1,
	})
}

func TestStepClampsStallDt(t *testing.T) {
	g := newHeadlessGame(t)

	// A 5-second stall must advance the world by at most one clamped step.
	before := g.cycle.Time
	g.step(5)

	want := before + weather.MaxStepDt/g.cycle.DayLength
	if math.Abs(float64(g.cycle.Time-want)) > 1e-6 {
		t.Errorf("clock at %f after a 5s stall, want %f", g.cycle.Time, want)
	}
}

func TestStepBoundsAgentTravelOnStall(t *testing.T) {
	g := newHeadlessGame(t)

	type snap struct{ x, z, speed float32 }
	var before []snap
	query := g.agentFilter.Query()
	for query.Next() {
		pos, _, agent, _ := query.Get()
		before = append(before, snap{pos.X, pos.Z, agent.Speed})
	}
	if len(before) == 0 {
		t.Fatal("no agents spawned")
	}

	g.step(5)

	i := 0
	query = g.agentFilter.Query()
	for query.Next() {
		pos, _, _, _ := query.Get()
		b := before[i]
		dx := float64(pos.X - b.x)
		dz := float64(pos.Z - b.z)
		if moved := math.Hypot(dx, dz); moved > float64(b.speed*weather.MaxStepDt)+1e-3 {
			t.Fatalf("agent %d moved %f in one stalled step, speed %f allows %f",
				i, moved, b.speed, b.speed*weather.MaxStepDt)
		}
		i++
	}
}
