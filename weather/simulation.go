package weather

import "github.com/go-gl/mathgl/mgl32"

const (
	// GroundLevel is the world-space height below which particles die.
	GroundLevel float32 = 0

	// MaxStepDt bounds the effect of stalls (window drag, backgrounding) on
	// emission count and integration stability.
	MaxStepDt float32 = 0.1

	rainStreakWidth  float32 = 0.08
	rainStreakHeight float32 = 6.0
)

// Simulation is the single-threaded weather core. One Update call per
// rendered frame; all pool, settings and buffer state is owned here and
// mutated only between frames.
type Simulation struct {
	pool     *Pool
	emitter  *Emitter
	settings Settings
	textures TextureProvider

	// Dense camera-facing transforms, rebuilt every frame. Reused across
	// frames so steady-state updates never allocate.
	instances []mgl32.Mat4

	debugVolume bool

	lastEmitted int
	lastDropped int
}

// New creates a simulation with the default 10,000-slot pool.
func New(settings Settings, volume Box, seed int64) *Simulation {
	return NewWithCapacity(settings, volume, seed, DefaultCapacity)
}

// NewWithCapacity creates a simulation with an explicit pool capacity.
// Tests use small capacities; the application uses DefaultCapacity.
func NewWithCapacity(settings Settings, volume Box, seed int64, capacity int) *Simulation {
	pool := NewPool(capacity)
	return &Simulation{
		pool:      pool,
		emitter:   NewEmitter(volume, seed),
		settings:  settings,
		instances: make([]mgl32.Mat4, 0, pool.Capacity()),
	}
}

// SetTextureProvider wires the rendering capability invoked on kind changes.
// A nil provider is fine (headless mode, tests).
func (s *Simulation) SetTextureProvider(tp TextureProvider) {
	s.textures = tp
}

// Settings returns a copy of the live settings.
func (s *Simulation) Settings() Settings {
	return s.settings
}

// ApplyPatch merges a partial update into the live settings. Rates and
// durations clamp to zero instead of propagating invalid values. A kind
// change (and only a kind change) triggers texture regeneration; every other
// field takes effect transparently on the next frame.
func (s *Simulation) ApplyPatch(p Patch) {
	if p.EmissionRate != nil {
		s.settings.EmissionRate = clampNonNegative(*p.EmissionRate)
	}
	if p.Lifetime != nil {
		s.settings.Lifetime = clampNonNegative(*p.Lifetime)
	}
	if p.Size != nil {
		s.settings.Size = clampNonNegative(*p.Size)
	}
	if p.Speed != nil {
		s.settings.Speed = clampNonNegative(*p.Speed)
	}
	if p.WindStrength != nil {
		s.settings.WindStrength = *p.WindStrength
	}
	if p.Gravity != nil {
		s.settings.Gravity = *p.Gravity
	}
	if p.Kind != nil && *p.Kind != s.settings.Kind {
		s.settings.Kind = *p.Kind
		if s.textures != nil {
			s.textures.Regenerate(*p.Kind)
		}
	}
}

// Update advances the simulation by one frame step and rebuilds the instance
// buffer. camRot is the current camera orientation; every particle transform
// copies it exactly (billboarding).
//
// Per-particle order is fixed: age, integrate, lifetime/ground check, then
// write the transform only if still alive — a particle that dies this frame
// is never rendered this frame.
func (s *Simulation) Update(dt float32, camRot mgl32.Quat) {
	if dt <= 0 {
		return
	}
	if dt > MaxStepDt {
		dt = MaxStepDt
	}

	s.lastEmitted, s.lastDropped = s.emitter.Step(dt, s.settings, s.pool)

	bill := camRot.Mat4()
	wind := s.settings.WindStrength
	grav := s.settings.Gravity

	s.instances = s.instances[:0]
	slots := s.pool.Slots()
	for i := range slots {
		p := &slots[i]
		if !p.Active {
			continue
		}

		p.Life -= dt

		// Wind is an instantaneous lateral override, not a force: changing
		// the setting changes drift immediately for every live particle.
		p.Vel[1] += grav * dt
		p.Vel[0] = wind
		p.Pos = p.Pos.Add(p.Vel.Mul(dt))

		if p.Life <= 0 || p.Pos.Y() < GroundLevel {
			s.pool.Release(int32(i))
			continue
		}

		var sw, sh float32
		if p.Kind == KindRain {
			sw = p.Size * rainStreakWidth
			sh = p.Size * rainStreakHeight
		} else {
			sw = p.Size
			sh = p.Size
		}
		m := mgl32.Translate3D(p.Pos.X(), p.Pos.Y(), p.Pos.Z()).
			Mul4(bill).
			Mul4(mgl32.Scale3D(sw, sh, sw))
		s.instances = append(s.instances, m)
	}
}

// Instances returns the dense transform buffer built by the last Update.
// Its length equals the active particle count observed during that frame's
// lifecycle pass. The slice is reused; consume it before the next Update.
func (s *Simulation) Instances() []mgl32.Mat4 {
	return s.instances
}

// ActiveParticleCount returns the current number of live particles, for the
// HUD and telemetry.
func (s *Simulation) ActiveParticleCount() int {
	return s.pool.Live()
}

// Capacity returns the fixed pool capacity.
func (s *Simulation) Capacity() int {
	return s.pool.Capacity()
}

// LastEmitted and LastDropped report emission activity from the most recent
// Update, for telemetry.
func (s *Simulation) LastEmitted() int { return s.lastEmitted }
func (s *Simulation) LastDropped() int { return s.lastDropped }

// Volume returns the emission box for the debug outline.
func (s *Simulation) Volume() Box {
	return s.emitter.Volume()
}

// SetDebugVolumeVisible toggles the emission-volume outline.
// Display only; no simulation effect.
func (s *Simulation) SetDebugVolumeVisible(v bool) {
	s.debugVolume = v
}

// DebugVolumeVisible reports whether the outline should be drawn.
func (s *Simulation) DebugVolumeVisible() bool {
	return s.debugVolume
}
