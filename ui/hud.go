package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds everything the HUD line items display.
type HUDData struct {
	Kind         string
	Active       int
	Capacity     int
	Emitted      int
	Dropped      int
	TimeOfDay    float64 // 0..1
	Tick         int32
	FPS          int32
	Paused       bool
	ScreenHeight int32
}

// HUD renders the heads-up display.
type HUD struct{}

// NewHUD creates a HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText("downpour", 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("%s | particles %d/%d | +%d -%d",
			data.Kind, data.Active, data.Capacity, data.Emitted, data.Dropped),
		10, 35, 16, rl.LightGray,
	)

	hours := data.TimeOfDay * 24
	rl.DrawText(
		fmt.Sprintf("Tick: %d | %02d:%02d | FPS: %d",
			data.Tick, int(hours), int(hours*60)%60, data.FPS),
		10, 55, 16, rl.LightGray,
	)

	if data.Paused {
		rl.DrawText("PAUSED", 10, 75, 16, rl.Yellow)
	}
}

// DrawControls renders the key legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32) {
	rl.DrawText(
		"1/2/3 weather | Space pause | Tab panel | V volume | RMB orbit | wheel zoom | WASD pan",
		10, screenHeight-25, 14, rl.Gray,
	)
}
