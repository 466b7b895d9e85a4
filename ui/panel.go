// Package ui renders the control panel and HUD with raygui widgets.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/downpour/weather"
)

// WeatherPanel is the tuning panel for live weather parameters. Draw returns
// a patch of the fields the user changed this frame; the caller applies it
// between simulation frames.
type WeatherPanel struct {
	x, y    float32
	width   float32
	visible bool
}

// NewWeatherPanel creates the panel anchored at the given screen position.
func NewWeatherPanel(x, y, width float32) *WeatherPanel {
	return &WeatherPanel{x: x, y: y, width: width, visible: true}
}

// Toggle switches panel visibility.
func (p *WeatherPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// IsVisible returns whether the panel is shown.
func (p *WeatherPanel) IsVisible() bool {
	return p.visible
}

// Draw renders the panel against the current settings and collects edits
// into a patch. The returned debug flag is the (possibly toggled) state of
// the emission-volume checkbox.
func (p *WeatherPanel) Draw(s weather.Settings, debugVolume bool) (weather.Patch, bool) {
	var patch weather.Patch
	if !p.visible {
		return patch, debugVolume
	}

	x := p.x
	y := p.y
	w := p.width

	rl.DrawRectangleRec(rl.Rectangle{X: x - 10, Y: y - 10, Width: w + 20, Height: 390}, rl.Color{R: 20, G: 22, B: 26, A: 210})
	rl.DrawText("Weather", int32(x), int32(y), 20, rl.White)
	y += 30

	// Kind buttons
	bw := (w - 20) / 3
	for i, k := range []weather.Kind{weather.KindClear, weather.KindRain, weather.KindSnow} {
		label := k.String()
		if k == s.Kind {
			label = "> " + label
		}
		if gui.Button(rl.Rectangle{X: x + float32(i)*(bw+10), Y: y, Width: bw, Height: 26}, label) && k != s.Kind {
			kind := k
			patch.Kind = &kind
		}
	}
	y += 40

	y = p.slider(x, y, w, "Emission rate (1/s)", "%.0f", s.EmissionRate, 0, 8000, &patch.EmissionRate)
	y = p.slider(x, y, w, "Lifetime (s)", "%.1f", s.Lifetime, 0.5, 12, &patch.Lifetime)
	y = p.slider(x, y, w, "Size", "%.2f", s.Size, 0.02, 0.6, &patch.Size)
	y = p.slider(x, y, w, "Fall speed (m/s)", "%.1f", s.Speed, 1, 40, &patch.Speed)
	y = p.slider(x, y, w, "Wind", "%.2f", s.WindStrength, -8, 8, &patch.WindStrength)
	y = p.slider(x, y, w, "Gravity", "%.1f", s.Gravity, -30, 0, &patch.Gravity)

	debugVolume = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 18, Height: 18}, "Show emission volume", debugVolume)

	return patch, debugVolume
}

// slider draws one labeled slider row and records the new value into the
// patch field when it moved.
func (p *WeatherPanel) slider(x, y, w float32, label, format string, value, min, max float32, out **float32) float32 {
	rl.DrawText(label, int32(x), int32(y), 14, rl.Gray)
	y += 18
	next := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: w - 60, Height: 18},
		"", "",
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf(format, value), int32(x+w-52), int32(y+1), 16, rl.LightGray)
	if next != value {
		v := next
		*out = &v
	}
	return y + 28
}
