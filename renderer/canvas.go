// Package renderer adapts raylib to the core's drawing surface.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/kevin-pek/cv-hand-boids/swarm"
)

// Canvas draws swarm primitives onto the raylib frame buffer.
type Canvas struct{}

// NewCanvas creates a new canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// FillCircle implements swarm.Surface.
func (c *Canvas) FillCircle(x, y, radius float32, col swarm.Color, alpha float32) {
	rl.DrawCircleV(rl.Vector2{X: x, Y: y}, radius, tint(col, alpha))
}

// Line implements swarm.Surface.
func (c *Canvas) Line(x1, y1, x2, y2 float32, col swarm.Color, alpha float32) {
	rl.DrawLineV(rl.Vector2{X: x1, Y: y1}, rl.Vector2{X: x2, Y: y2}, tint(col, alpha))
}

// tint converts a swarm color plus alpha into a raylib color.
func tint(col swarm.Color, alpha float32) rl.Color {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return rl.Color{R: col.R, G: col.G, B: col.B, A: uint8(alpha * 255)}
}
