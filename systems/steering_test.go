package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/downpour/components"
)

func TestSeekMovesTowardTarget(t *testing.T) {
	pos := components.Position{X: 0, Z: 0}

	vel, arrived := Seek(pos, 10, 0, 2, 0.5)
	if arrived {
		t.Fatal("arrived while 10 units away")
	}
	if math.Abs(float64(vel.X-2)) > 1e-5 || math.Abs(float64(vel.Z)) > 1e-5 {
		t.Errorf("expected velocity (2, 0), got (%f, %f)", vel.X, vel.Z)
	}
}

func TestSeekSpeedIsConstant(t *testing.T) {
	pos := components.Position{X: 3, Z: -4}

	vel, _ := Seek(pos, -6, 8, 5, 0.5)
	speed := math.Hypot(float64(vel.X), float64(vel.Z))
	if math.Abs(speed-5) > 1e-4 {
		t.Errorf("expected speed 5, got %f", speed)
	}
}

func TestSeekArrivalRadius(t *testing.T) {
	pos := components.Position{X: 9.9, Z: 0}

	vel, arrived := Seek(pos, 10, 0, 2, 0.5)
	if !arrived {
		t.Error("expected arrival inside radius")
	}
	if vel.X != 0 || vel.Z != 0 {
		t.Errorf("expected zero velocity on arrival, got (%f, %f)", vel.X, vel.Z)
	}
}

func TestAdvanceRouteCyclesWaypoints(t *testing.T) {
	pos := components.Position{X: 0, Z: 0}
	vel := components.Velocity{}
	agent := components.Agent{Kind: components.KindVehicle, Speed: 10}
	route := components.Route{Points: [][2]float32{{5, 0}, {5, 5}, {0, 5}, {0, 0}}}

	// Walk the loop for long enough to lap it at least once.
	for i := 0; i < 600; i++ {
		AdvanceRoute(&pos, &vel, &route, &agent, 0.5, 1.0/60.0)
	}

	// The agent must still be near the loop perimeter, not drifting away.
	if pos.X < -1 || pos.X > 6 || pos.Z < -1 || pos.Z > 6 {
		t.Errorf("agent drifted off its route: (%f, %f)", pos.X, pos.Z)
	}
}

func TestAdvanceRouteSwitchesOnArrival(t *testing.T) {
	pos := components.Position{X: 4.9, Z: 0}
	vel := components.Velocity{}
	agent := components.Agent{Kind: components.KindVehicle, Speed: 10}
	route := components.Route{Points: [][2]float32{{5, 0}, {5, 5}}}

	AdvanceRoute(&pos, &vel, &route, &agent, 0.5, 1.0/60.0)

	if route.Next != 1 {
		t.Errorf("expected cursor to advance to waypoint 1, got %d", route.Next)
	}
	if vel.Z <= 0 {
		t.Errorf("expected velocity toward next waypoint (+Z), got (%f, %f)", vel.X, vel.Z)
	}
}

func TestAdvanceRouteEmptyRouteIsNoop(t *testing.T) {
	pos := components.Position{X: 1, Z: 2}
	vel := components.Velocity{}
	agent := components.Agent{Speed: 10}
	route := components.Route{}

	AdvanceRoute(&pos, &vel, &route, &agent, 0.5, 1.0/60.0)

	if pos.X != 1 || pos.Z != 2 {
		t.Errorf("empty route moved the agent to (%f, %f)", pos.X, pos.Z)
	}
}

func TestWalkPhaseAdvancesOnlyForPedestrians(t *testing.T) {
	route := components.Route{Points: [][2]float32{{100, 0}}}

	ped := components.Agent{Kind: components.KindPedestrian, Speed: 2}
	car := components.Agent{Kind: components.KindVehicle, Speed: 2}
	pos1, pos2 := components.Position{}, components.Position{}
	vel1, vel2 := components.Velocity{}, components.Velocity{}
	r1, r2 := route, route

	AdvanceRoute(&pos1, &vel1, &r1, &ped, 0.5, 0.1)
	AdvanceRoute(&pos2, &vel2, &r2, &car, 0.5, 0.1)

	if ped.WalkPhase <= 0 {
		t.Error("pedestrian walk phase did not advance")
	}
	if car.WalkPhase != 0 {
		t.Error("vehicle walk phase advanced")
	}
}

func TestHeading(t *testing.T) {
	cases := []struct {
		vel  components.Velocity
		want float64
	}{
		{components.Velocity{X: 1, Z: 0}, 0},
		{components.Velocity{X: 0, Z: 1}, math.Pi / 2},
		{components.Velocity{X: -1, Z: 0}, math.Pi},
	}
	for _, tc := range cases {
		got := float64(Heading(tc.vel))
		if math.Abs(got-tc.want) > 1e-5 {
			t.Errorf("Heading(%+v) = %f, want %f", tc.vel, got, tc.want)
		}
	}
}
