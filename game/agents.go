package game

import (
	"github.com/pthm-cable/downpour/components"
	"github.com/pthm-cable/downpour/systems"
	"github.com/pthm-cable/downpour/town"
)

// spawnAgents populates the town with pedestrians on sidewalk loops and
// vehicles on road loops. Each agent gets its own route rectangle.
func (g *Game) spawnAgents() {
	ac := g.cfg.Agents

	for i := 0; i < ac.Pedestrians; i++ {
		loop := g.town.SidewalkLoop(g.rng)
		speed := float32(ac.PedestrianSpeed) * (0.8 + g.rng.Float32()*0.4)
		g.spawnAgent(loop, components.KindPedestrian, speed)
	}
	for i := 0; i < ac.Vehicles; i++ {
		loop := g.town.RouteLoop(g.rng)
		speed := float32(ac.VehicleSpeed) * (0.85 + g.rng.Float32()*0.3)
		g.spawnAgent(loop, components.KindVehicle, speed)
	}
}

// spawnAgent creates one agent somewhere along its loop, heading for a
// random waypoint so traffic doesn't start in lockstep.
func (g *Game) spawnAgent(loop []town.Waypoint, kind components.AgentKind, speed float32) {
	points := make([][2]float32, len(loop))
	for i, wp := range loop {
		points[i] = [2]float32{wp.X, wp.Z}
	}

	start := g.rng.Intn(len(points))
	pos := components.Position{X: points[start][0], Z: points[start][1]}
	vel := components.Velocity{}
	agent := components.Agent{Kind: kind, Speed: speed}
	route := components.Route{Points: points, Next: (start + 1) % len(points)}

	g.agentMapper.NewEntity(&pos, &vel, &agent, &route)
}

// updateAgents advances every agent along its route.
func (g *Game) updateAgents(dt float32) {
	arrive := float32(g.cfg.Agents.ArriveRadius)

	query := g.agentFilter.Query()
	for query.Next() {
		pos, vel, agent, route := query.Get()
		systems.AdvanceRoute(pos, vel, route, agent, arrive, dt)
	}
}
