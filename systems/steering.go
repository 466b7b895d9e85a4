// Package systems holds pure simulation logic for town agents, kept free of
// rendering and ECS dependencies so it can be tested directly.
package systems

import (
	"math"

	"github.com/pthm-cable/downpour/components"
)

// Seek returns the velocity that moves from pos toward target at the given
// speed. Inside arriveRadius the agent is considered arrived and the zero
// velocity is returned.
func Seek(pos components.Position, targetX, targetZ, speed, arriveRadius float32) (components.Velocity, bool) {
	dx := targetX - pos.X
	dz := targetZ - pos.Z
	dist := float32(math.Hypot(float64(dx), float64(dz)))
	if dist <= arriveRadius {
		return components.Velocity{}, true
	}
	inv := speed / dist
	return components.Velocity{X: dx * inv, Z: dz * inv}, false
}

// AdvanceRoute steers an agent along its waypoint loop: seek the current
// waypoint, and when it is reached switch to the next one (wrapping).
// It mutates vel and the route cursor, and integrates the position by dt.
func AdvanceRoute(pos *components.Position, vel *components.Velocity, route *components.Route, agent *components.Agent, arriveRadius, dt float32) {
	if len(route.Points) == 0 {
		return
	}
	if route.Next >= len(route.Points) {
		route.Next = 0
	}

	wp := route.Points[route.Next]
	v, arrived := Seek(*pos, wp[0], wp[1], agent.Speed, arriveRadius)
	if arrived {
		route.Next = (route.Next + 1) % len(route.Points)
		wp = route.Points[route.Next]
		v, _ = Seek(*pos, wp[0], wp[1], agent.Speed, arriveRadius)
	}

	*vel = v
	pos.X += vel.X * dt
	pos.Z += vel.Z * dt

	if agent.Kind == components.KindPedestrian {
		agent.WalkPhase += agent.Speed * dt * 4
	}
}

// Heading returns the facing angle for a moving agent, in radians on the
// ground plane. Stationary agents keep facing along +X.
func Heading(vel components.Velocity) float32 {
	if vel.X == 0 && vel.Z == 0 {
		return 0
	}
	return float32(math.Atan2(float64(vel.Z), float64(vel.X)))
}
