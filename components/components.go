// Package components defines the ECS components for town agents.
package components

// Position is an agent's location on the ground plane.
type Position struct {
	X, Z float32
}

// Velocity is an agent's current ground-plane velocity.
type Velocity struct {
	X, Z float32
}

// AgentKind distinguishes how an agent moves and is drawn.
type AgentKind uint8

const (
	KindPedestrian AgentKind = iota
	KindVehicle
)

// Agent holds per-agent movement parameters.
type Agent struct {
	Kind      AgentKind
	Speed     float32 // cruise speed in m/s
	WalkPhase float32 // accumulated phase for the pedestrian bob animation
}

// Route is a closed waypoint loop the agent patrols.
type Route struct {
	Points [][2]float32 // x, z per waypoint
	Next   int          // index of the waypoint currently steered toward
}
