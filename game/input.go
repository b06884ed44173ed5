package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard input and window resizes.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Debug overlay: detection markers and particle-to-target lines
	if rl.IsKeyPressed(rl.KeyD) {
		g.debugMode = !g.debugMode
		g.params.DebugLines = g.debugMode
	}

	// Tuning panel
	if rl.IsKeyPressed(rl.KeyT) {
		g.panel.Visible = !g.panel.Visible
	}

	// Flocking toggle without opening the panel
	if rl.IsKeyPressed(rl.KeyF) {
		g.params.Variant.UseFlocking = !g.params.Variant.UseFlocking
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}
}

// handleResize propagates new canvas dimensions to the simulation. Pools pick
// the new bounds up on their next Update call.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.width && h == g.height {
		return
	}
	g.width = w
	g.height = h
}
