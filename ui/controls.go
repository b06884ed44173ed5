package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/kevin-pek/cv-hand-boids/swarm"
)

// Panel is the live tuning panel. It mutates the shared swarm parameters
// directly, so slider changes apply to every pool on the next tick.
type Panel struct {
	Visible bool
}

// NewPanel creates a hidden tuning panel.
func NewPanel() *Panel {
	return &Panel{}
}

// Draw renders the panel and applies any edits to params.
func (p *Panel) Draw(screenWidth int32, params *swarm.Params) {
	if !p.Visible {
		return
	}

	x := float32(screenWidth - 270)
	y := float32(10)
	w := float32(180)

	rl.DrawRectangle(int32(x)-10, int32(y)-5, 270, 240, rl.Color{R: 0, G: 0, B: 0, A: 180})
	rl.DrawText("Swarm Tuning", int32(x), int32(y), 18, rl.White)
	y += 30

	params.Variant.UseFlocking = gui.CheckBox(
		rl.Rectangle{X: x, Y: y, Width: 16, Height: 16},
		"flocking", params.Variant.UseFlocking,
	)
	y += 28

	y = p.slider(x, y, w, "cohesion", &params.Flock.Cohesion, 0, 2)
	y = p.slider(x, y, w, "separation", &params.Flock.Separation, 0, 4)
	y = p.slider(x, y, w, "alignment", &params.Flock.Alignment, 0, 2)
	y = p.slider(x, y, w, "radius", &params.Flock.NeighborRadius, 10, 200)
	p.slider(x, y, w, "smoothing", &params.HeadingSmoothing, 0.01, 0.5)
}

// slider renders one labeled slider bound to v and returns the next row's y.
func (p *Panel) slider(x, y, w float32, label string, v *float32, minVal, maxVal float32) float32 {
	rl.DrawText(label, int32(x), int32(y), 14, rl.Gray)
	*v = gui.SliderBar(
		rl.Rectangle{X: x + 70, Y: y, Width: w - 70, Height: 16},
		"", "",
		*v, minVal, maxVal,
	)
	rl.DrawText(fmt.Sprintf("%.2f", *v), int32(x+w+8), int32(y), 14, rl.LightGray)
	return y + 26
}
