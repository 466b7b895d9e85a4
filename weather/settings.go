// Package weather implements the fixed-capacity precipitation particle
// simulation: a pooled arena of particles, accumulator-driven emission,
// per-frame physics integration, and compaction of live particles into a
// dense camera-facing instance buffer ready for a single instanced draw.
package weather

// Kind identifies the active precipitation type.
type Kind uint8

const (
	KindClear Kind = iota
	KindRain
	KindSnow
)

// String returns the lowercase name used in config files and logs.
func (k Kind) String() string {
	switch k {
	case KindRain:
		return "rain"
	case KindSnow:
		return "snow"
	default:
		return "clear"
	}
}

// ParseKind maps a config string to a Kind. Unknown values fall back to clear.
func ParseKind(s string) Kind {
	switch s {
	case "rain":
		return KindRain
	case "snow":
		return KindSnow
	default:
		return KindClear
	}
}

// Settings holds the live weather parameters. The emitter, integrator and
// compactor all read it every frame; mutate it only through ApplyPatch.
type Settings struct {
	EmissionRate float32 // particles per second
	Lifetime     float32 // seconds a particle stays alive
	Size         float32 // base particle size in world units
	Speed        float32 // fall speed in m/s (snow falls at half)
	WindStrength float32 // lateral velocity override in m/s
	Gravity      float32 // vertical acceleration, negative = down
	Kind         Kind
}

// Patch is a partial settings update; nil fields are left unchanged.
// The control panel sends one of these between frames.
type Patch struct {
	EmissionRate *float32
	Lifetime     *float32
	Size         *float32
	Speed        *float32
	WindStrength *float32
	Gravity      *float32
	Kind         *Kind
}

// TextureProvider is the rendering capability invoked when the weather kind
// changes. The simulation never talks to the GPU directly; it only signals
// that the particle texture and base tint need regenerating.
type TextureProvider interface {
	Regenerate(kind Kind)
}

// ClearPreset returns the startup settings: no precipitation, but sliders
// pre-loaded with sensible rain-ish values so switching kinds feels instant.
func ClearPreset() Settings {
	return Settings{
		EmissionRate: 2500,
		Lifetime:     3,
		Size:         0.12,
		Speed:        18,
		WindStrength: 0.5,
		Gravity:      -9.8,
		Kind:         KindClear,
	}
}

// clampNonNegative guards externally supplied rates and durations.
// Negative values clamp to zero rather than propagating an error.
func clampNonNegative(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}
