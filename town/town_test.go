package town

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/downpour/config"
)

func testTownConfig(t *testing.T) config.TownConfig {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	return cfg.Town
}

func TestGenerateIsDeterministic(t *testing.T) {
	cfg := testTownConfig(t)

	a := Generate(cfg, 7)
	b := Generate(cfg, 7)

	if len(a.Buildings) != len(b.Buildings) {
		t.Fatalf("building counts differ for same seed: %d vs %d",
			len(a.Buildings), len(b.Buildings))
	}
	for i := range a.Buildings {
		if a.Buildings[i] != b.Buildings[i] {
			t.Fatalf("building %d differs for same seed: %+v vs %+v",
				i, a.Buildings[i], b.Buildings[i])
		}
	}
	if len(a.Trees) != len(b.Trees) || len(a.Lamps) != len(b.Lamps) {
		t.Errorf("prop counts differ for same seed")
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	cfg := testTownConfig(t)

	a := Generate(cfg, 1)
	b := Generate(cfg, 2)

	same := len(a.Buildings) == len(b.Buildings)
	if same {
		for i := range a.Buildings {
			if a.Buildings[i] != b.Buildings[i] {
				same = false
				break
			}
		}
	}
	if same && len(a.Buildings) > 0 {
		t.Error("different seeds produced identical towns")
	}
}

func TestBuildingsStayInsideFootprint(t *testing.T) {
	cfg := testTownConfig(t)
	tw := Generate(cfg, 3)

	for i, b := range tw.Buildings {
		if b.X-b.W/2 < -tw.Width/2 || b.X+b.W/2 > tw.Width/2 ||
			b.Z-b.D/2 < -tw.Depth/2 || b.Z+b.D/2 > tw.Depth/2 {
			t.Errorf("building %d extends past the town footprint: %+v", i, b)
		}
		if b.H < float32(cfg.BuildingMinH)*0.5 {
			t.Errorf("building %d implausibly short: %f", i, b.H)
		}
		if b.W <= 0 || b.D <= 0 {
			t.Errorf("building %d has degenerate footprint: %+v", i, b)
		}
	}
}

func TestRouteLoopIsClosedRectangle(t *testing.T) {
	cfg := testTownConfig(t)
	tw := Generate(cfg, 3)
	rng := rand.New(rand.NewSource(9))

	for trial := 0; trial < 50; trial++ {
		loop := tw.RouteLoop(rng)
		if len(loop) != 4 {
			t.Fatalf("expected 4 waypoints, got %d", len(loop))
		}
		// Corners must form an axis-aligned rectangle.
		if loop[0].Z != loop[1].Z || loop[2].Z != loop[3].Z ||
			loop[0].X != loop[3].X || loop[1].X != loop[2].X {
			t.Fatalf("loop is not axis-aligned: %+v", loop)
		}
		if loop[0].X >= loop[1].X || loop[0].Z >= loop[3].Z {
			t.Fatalf("loop corners out of order: %+v", loop)
		}
	}
}

func TestSidewalkLoopIsInsideRoadLoop(t *testing.T) {
	cfg := testTownConfig(t)
	tw := Generate(cfg, 3)

	road := tw.RouteLoop(rand.New(rand.NewSource(4)))
	walk := tw.SidewalkLoop(rand.New(rand.NewSource(4)))

	if walk[0].X <= road[0].X || walk[0].Z <= road[0].Z {
		t.Errorf("sidewalk corner %+v not inset from road corner %+v", walk[0], road[0])
	}
	if walk[2].X >= road[2].X || walk[2].Z >= road[2].Z {
		t.Errorf("sidewalk corner %+v not inset from road corner %+v", walk[2], road[2])
	}
}
