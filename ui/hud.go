// Package ui renders the HUD and the tuning panel.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds everything the HUD needs for one frame.
type HUDData struct {
	Tick         int32
	FPS          int32
	ActiveSwarms int
	IdleSwarms   int
	Particles    int
	TrailDots    int
	Paused       bool
	ScreenHeight int32
}

// HUD renders the heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(
		fmt.Sprintf("Swarms: %d active, %d idle | Particles: %d | Trail: %d",
			data.ActiveSwarms, data.IdleSwarms, data.Particles, data.TrailDots),
		10, 10, 16, rl.LightGray,
	)
	rl.DrawText(
		fmt.Sprintf("Tick: %d | FPS: %d", data.Tick, data.FPS),
		10, 30, 16, rl.LightGray,
	)

	if data.Paused {
		rl.DrawText("PAUSED", 10, 50, 16, rl.Yellow)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(data HUDData) {
	rl.DrawText("[space] pause  [d] debug  [t] tuning  [f] flocking",
		10, data.ScreenHeight-25, 14, rl.Gray)
}
