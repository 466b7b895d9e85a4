// Package camera provides the 3D orbit camera for viewport control.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Pitch limits keep the camera above the ground and short of the zenith,
// where the orbit parameterization degenerates.
const (
	minPitch float32 = 0.08
	maxPitch float32 = 1.45
)

// Camera orbits a ground target at a yaw/pitch/distance offset. It produces
// the eye position for rendering and the orientation quaternion the particle
// compactor copies for billboarding.
type Camera struct {
	Target mgl32.Vec3

	Yaw      float32 // radians around the Y axis
	Pitch    float32 // radians above the horizon
	Distance float32

	MinDistance, MaxDistance float32
	FovY                     float32 // degrees
}

// New creates an orbit camera around the given target.
func New(target mgl32.Vec3, yaw, pitch, distance, minDist, maxDist, fovY float32) *Camera {
	c := &Camera{
		Target:      target,
		Yaw:         yaw,
		Distance:    distance,
		MinDistance: minDist,
		MaxDistance: maxDist,
		FovY:        fovY,
	}
	c.Pitch = clamp(pitch, minPitch, maxPitch)
	c.Distance = clamp(distance, minDist, maxDist)
	return c
}

// Position returns the eye position in world space.
func (c *Camera) Position() mgl32.Vec3 {
	cp := float32(math.Cos(float64(c.Pitch)))
	return mgl32.Vec3{
		c.Target.X() + c.Distance*cp*float32(math.Cos(float64(c.Yaw))),
		c.Target.Y() + c.Distance*float32(math.Sin(float64(c.Pitch))),
		c.Target.Z() + c.Distance*cp*float32(math.Sin(float64(c.Yaw))),
	}
}

// Rotation returns the camera's world-space orientation: the rotation that
// maps the default forward (-Z) onto the view direction. Billboarded
// particles copy it verbatim so they always face the viewer.
// LookAtV gives the view matrix; its rotation inverted is the camera's
// orientation in the world.
func (c *Camera) Rotation() mgl32.Quat {
	return mgl32.Mat4ToQuat(mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})).Inverse()
}

// Orbit rotates the camera around the target. Pitch clamps to keep the view
// above the ground plane.
func (c *Camera) Orbit(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch = clamp(c.Pitch+dPitch, minPitch, maxPitch)
}

// Dolly scales the orbit distance, clamped to the configured range.
func (c *Camera) Dolly(factor float32) {
	c.Distance = clamp(c.Distance*factor, c.MinDistance, c.MaxDistance)
}

// Pan moves the target on the ground plane, relative to the current yaw so
// screen-right always pans right.
func (c *Camera) Pan(dRight, dForward float32) {
	sy := float32(math.Sin(float64(c.Yaw)))
	cy := float32(math.Cos(float64(c.Yaw)))

	// Right vector on the ground plane, perpendicular to the view direction.
	c.Target[0] += -sy*dRight - cy*dForward
	c.Target[2] += cy*dRight - sy*dForward
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
