package swarm

import (
	"math"
	"testing"
)

func approx(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

func TestTrailDotDecay(t *testing.T) {
	tp := TrailParams{InitialAlpha: 0.4, AlphaDecay: 0.02, RadiusDecay: 0.1, Shrink: true}
	dot := TrailDot{X: 50, Y: 50, Radius: 3, Alpha: 0.4}

	for i := 0; i < 4; i++ {
		if !dot.Update(tp) {
			t.Fatalf("dot expired after %d ticks, want visible", i+1)
		}
	}

	if !approx(dot.Alpha, 0.32, 1e-4) {
		t.Errorf("alpha after 4 ticks = %v, want 0.32", dot.Alpha)
	}
	if !approx(dot.Radius, 2.6, 1e-4) {
		t.Errorf("radius after 4 ticks = %v, want 2.6", dot.Radius)
	}

	// Position never moves
	if dot.X != 50 || dot.Y != 50 {
		t.Errorf("dot moved to (%v, %v)", dot.X, dot.Y)
	}
}

func TestTrailDotDeterministicExpiry(t *testing.T) {
	tp := TrailParams{InitialAlpha: 0.5, AlphaDecay: 0.125, Shrink: false}
	dot := TrailDot{Radius: 3, Alpha: 0.5}

	// 0.5 / 0.125 = exactly 4 ticks to expiry
	ticks := 0
	for dot.Update(tp) {
		ticks++
		if ticks > 100 {
			t.Fatal("dot never expired")
		}
	}
	ticks++

	if ticks != 4 {
		t.Errorf("dot expired after %d ticks, want 4", ticks)
	}
}

func TestTrailDotExpiryBound(t *testing.T) {
	tp := TrailParams{InitialAlpha: 0.4, AlphaDecay: 0.02, RadiusDecay: 0.1, Shrink: true}
	dot := TrailDot{Radius: 3, Alpha: 0.4}

	// 0.4 / 0.02 = 20 decays. Still visible one tick before that; gone one
	// tick after (the exact 20th decay may land a rounding hair above zero).
	for i := 0; i < 19; i++ {
		if !dot.Update(tp) {
			t.Fatalf("dot expired after %d ticks, want at least 19", i+1)
		}
	}
	dot.Update(tp)
	if dot.Update(tp) {
		t.Error("dot still visible after 21 ticks, want expired by 20")
	}
}

func TestTrailDotFullyGone(t *testing.T) {
	tp := TrailParams{InitialAlpha: 0.4, AlphaDecay: 0.02, RadiusDecay: 0.1, Shrink: true}
	dot := TrailDot{Radius: 3, Alpha: 0.4}

	for i := 0; i < 40; i++ {
		dot.Update(tp)
	}

	if dot.Alpha != 0 {
		t.Errorf("alpha after 40 ticks = %v, want 0", dot.Alpha)
	}
	if dot.Radius != 0 {
		t.Errorf("radius after 40 ticks = %v, want 0", dot.Radius)
	}
	if dot.Visible(tp) {
		t.Error("expired dot reports visible")
	}
}

func TestTrailDotAlphaMonotonic(t *testing.T) {
	tp := TrailParams{InitialAlpha: 0.45, AlphaDecay: 0.02, RadiusDecay: 0.1, Shrink: true}
	dot := TrailDot{Radius: 3, Alpha: 0.45}

	prev := dot.Alpha
	for i := 0; i < 60; i++ {
		dot.Update(tp)
		if dot.Alpha > prev {
			t.Fatalf("alpha increased from %v to %v at tick %d", prev, dot.Alpha, i)
		}
		prev = dot.Alpha
	}
}
