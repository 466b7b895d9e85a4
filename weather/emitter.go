package weather

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Box is an axis-aligned emission volume in world space. New particle
// positions are drawn uniformly from it. Fixed for the simulation's lifetime.
type Box struct {
	Min, Max mgl32.Vec3
}

// Sample returns a uniform random point inside the box.
func (b Box) Sample(rng *rand.Rand) mgl32.Vec3 {
	return mgl32.Vec3{
		b.Min[0] + rng.Float32()*(b.Max[0]-b.Min[0]),
		b.Min[1] + rng.Float32()*(b.Max[1]-b.Min[1]),
		b.Min[2] + rng.Float32()*(b.Max[2]-b.Min[2]),
	}
}

// Center returns the box midpoint, used by the debug outline renderer.
func (b Box) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Extent returns the box dimensions.
func (b Box) Extent() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Emitter converts the continuous emission-rate setting into discrete
// emission events with a time accumulator, so the long-run emission count
// depends only on elapsed simulated time, not on frame-rate variance.
type Emitter struct {
	volume Box
	acc    float32
	rng    *rand.Rand
}

// NewEmitter creates an emitter over the given volume with a seeded RNG.
func NewEmitter(volume Box, seed int64) *Emitter {
	return &Emitter{
		volume: volume,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Volume returns the emission box for debug visualization.
func (e *Emitter) Volume() Box {
	return e.volume
}

// Step advances the accumulator by dt and emits as many particles as whole
// emission intervals fit in it. When the kind is clear no emission happens
// and the accumulator is left untouched (not reset), so resuming
// precipitation does not produce a compensating burst.
//
// Returns the number of particles emitted and the number of emission events
// dropped because the pool was exhausted.
func (e *Emitter) Step(dt float32, s Settings, pool *Pool) (emitted, dropped int) {
	if s.Kind == KindClear {
		return 0, 0
	}

	e.acc += dt
	rate := s.EmissionRate
	if rate < 1 {
		rate = 1 // denominator guard, never divide by zero
	}
	interval := 1.0 / rate

	for e.acc >= interval {
		e.acc -= interval
		idx, ok := pool.Acquire()
		if !ok {
			// Exhausted: the event is consumed and silently dropped.
			dropped++
			continue
		}
		p := pool.At(idx)
		p.Pos = e.volume.Sample(e.rng)
		p.Life = s.Lifetime
		p.MaxLife = s.Lifetime
		p.Size = s.Size
		p.Kind = s.Kind
		vy := -s.Speed
		if s.Kind == KindSnow {
			// Snow drifts down at half speed; lateral drift comes from the
			// wind override in the integrator.
			vy = -s.Speed * 0.5
		}
		p.Vel = mgl32.Vec3{0, vy, 0}
		emitted++
	}
	return emitted, dropped
}
