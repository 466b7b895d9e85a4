// Package sky models the day/night cycle: a wrapping time-of-day value and
// keyframed sky color interpolation, with an overcast damping applied while
// precipitation is active.
package sky

import "math"

// Color is an 8-bit RGB sky color.
type Color struct {
	R, G, B uint8
}

// keyframe anchors a sky color at a time-of-day position.
type keyframe struct {
	at  float32
	col Color
}

// Keyframes wrap: the segment after the last entry blends back to the first.
var keyframes = []keyframe{
	{0.00, Color{8, 9, 22}},     // midnight
	{0.22, Color{10, 12, 30}},   // late night
	{0.30, Color{198, 120, 86}}, // dawn
	{0.40, Color{118, 168, 214}}, // morning
	{0.50, Color{136, 186, 228}}, // noon
	{0.62, Color{120, 164, 210}}, // afternoon
	{0.74, Color{196, 108, 70}},  // dusk
	{0.84, Color{16, 16, 38}},    // nightfall
}

// Cycle is the advancing time-of-day state.
type Cycle struct {
	// Time is the current time of day in [0, 1); 0.5 is noon.
	Time float32

	// DayLength is the real-time duration of a full cycle, in seconds.
	DayLength float32
}

// New creates a cycle starting at the given time of day.
func New(start, dayLength float32) *Cycle {
	if dayLength <= 0 {
		dayLength = 180
	}
	return &Cycle{Time: wrap(start), DayLength: dayLength}
}

// Advance moves time forward by dt seconds, wrapping at midnight.
func (c *Cycle) Advance(dt float32) {
	c.Time = wrap(c.Time + dt/c.DayLength)
}

// SkyColor returns the interpolated sky color for the current time,
// darkened by the overcast factor (0 = clear sky, 1 = fully overcast).
func (c *Cycle) SkyColor(overcast float32) Color {
	col := sampleKeyframes(c.Time)
	damp := 1 - 0.55*clamp01(overcast)
	return Color{
		R: uint8(float32(col.R) * damp),
		G: uint8(float32(col.G) * damp),
		B: uint8(float32(col.B) * damp),
	}
}

// SunElevation returns the sun height in [-1, 1]; positive means daytime.
func (c *Cycle) SunElevation() float32 {
	// Noon (0.5) maps to the peak, midnight to the trough.
	return float32(-math.Cos(2 * math.Pi * float64(c.Time)))
}

// Ambient returns a scene brightness factor in [0.15, 1], following the sun
// with a floor so the town never renders fully black.
func (c *Cycle) Ambient() float32 {
	e := c.SunElevation()
	if e < 0 {
		e = 0
	}
	return 0.15 + 0.85*e
}

// sampleKeyframes linearly interpolates the wrapped keyframe table.
func sampleKeyframes(t float32) Color {
	n := len(keyframes)
	for i := 0; i < n; i++ {
		a := keyframes[i]
		b := keyframes[(i+1)%n]
		bAt := b.at
		if bAt <= a.at {
			bAt += 1 // wrapped segment
		}
		tt := t
		if tt < a.at {
			tt += 1
		}
		if tt >= a.at && tt < bAt {
			f := (tt - a.at) / (bAt - a.at)
			return lerpColor(a.col, b.col, f)
		}
	}
	return keyframes[0].col
}

func lerpColor(a, b Color, f float32) Color {
	return Color{
		R: uint8(float32(a.R) + (float32(b.R)-float32(a.R))*f),
		G: uint8(float32(a.G) + (float32(b.G)-float32(a.G))*f),
		B: uint8(float32(a.B) + (float32(b.B)-float32(a.B))*f),
	}
}

func wrap(t float32) float32 {
	t = float32(math.Mod(float64(t), 1))
	if t < 0 {
		t += 1
	}
	return t
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
