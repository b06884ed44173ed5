package swarm

// TrailDot is an ephemeral fading marker left at a particle's past position.
// Dots never move; they only fade (and optionally shrink) until expiry.
type TrailDot struct {
	X, Y   float32
	Radius float32
	Alpha  float32
}

// Update ages the dot one tick and reports whether it is still visible.
func (d *TrailDot) Update(tp TrailParams) bool {
	d.Alpha -= tp.AlphaDecay
	if d.Alpha < 0 {
		d.Alpha = 0
	}
	if tp.Shrink {
		d.Radius -= tp.RadiusDecay
		if d.Radius < 0 {
			d.Radius = 0
		}
	}
	return d.Visible(tp)
}

// Visible reports whether the dot still has anything to draw.
func (d *TrailDot) Visible(tp TrailParams) bool {
	if d.Alpha <= 0 {
		return false
	}
	if tp.Shrink && d.Radius <= 0 {
		return false
	}
	return true
}

// Draw paints the dot as a filled circle at its fixed position.
func (d *TrailDot) Draw(s Surface, col Color) {
	s.FillCircle(d.X, d.Y, d.Radius, col, d.Alpha)
}
