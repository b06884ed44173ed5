package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/kevin-pek/cv-hand-boids/components"
	"github.com/kevin-pek/cv-hand-boids/ui"
)

// Draw renders the frame: every pool's trails, then the HUD and tuning panel.
func (g *Game) Draw() {
	g.perf.RecordFrame()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	var active, idle, particles, trailDots int

	query := g.filter.Query()
	for query.Next() {
		anchor, track, sw := query.Get()
		system := sw.System

		system.Draw(g.canvas)

		switch track.State {
		case components.StateActive:
			active++
		case components.StateIdle:
			idle++
		}
		particles += len(system.Particles)
		trailDots += system.TrailDots()

		// Debug: mark the raw detection point.
		if g.debugMode && anchor.Present {
			rl.DrawCircleLines(int32(anchor.X), int32(anchor.Y), 8, rl.Green)
		}
	}

	data := ui.HUDData{
		Tick:         g.tick,
		FPS:          rl.GetFPS(),
		ActiveSwarms: active,
		IdleSwarms:   idle,
		Particles:    particles,
		TrailDots:    trailDots,
		Paused:       g.paused,
		ScreenHeight: int32(g.height),
	}
	g.hud.Draw(data)
	g.hud.DrawControls(data)

	g.panel.Draw(int32(g.width), g.params)

	rl.EndDrawing()
}
