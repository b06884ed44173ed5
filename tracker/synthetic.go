package tracker

import "math"

// Synthetic emits a fixed set of named points gliding along Lissajous paths,
// with periodic dropouts so the idle-drift path gets exercised without a real
// detector attached.
type Synthetic struct {
	names  []string
	width  float32
	height float32

	// Every dropoutEvery ticks each point vanishes for dropoutTicks ticks,
	// staggered per point. Zero disables dropouts.
	dropoutEvery int32
	dropoutTicks int32
}

// NewSynthetic creates a source emitting one point per name inside a
// width x height canvas.
func NewSynthetic(names []string, width, height float32, dropoutEvery, dropoutTicks int) *Synthetic {
	return &Synthetic{
		names:        names,
		width:        width,
		height:       height,
		dropoutEvery: int32(dropoutEvery),
		dropoutTicks: int32(dropoutTicks),
	}
}

// Sample returns the points present at the given tick. Deterministic: the same
// tick always yields the same set.
func (s *Synthetic) Sample(tick int32) []Point {
	t := float64(tick) / 60.0
	points := make([]Point, 0, len(s.names))

	for i, name := range s.names {
		if s.dropped(int32(i), tick) {
			continue
		}

		phase := float64(i) * 1.3
		// Lissajous path with per-point phase offset, kept inside a margin.
		x := float64(s.width)*0.5 + float64(s.width)*0.35*math.Sin(0.7*t+phase)
		y := float64(s.height)*0.5 + float64(s.height)*0.35*math.Sin(1.1*t+phase*1.7)

		points = append(points, Point{Name: name, X: float32(x), Y: float32(y)})
	}

	return points
}

// dropped reports whether point i is inside its staggered dropout window.
func (s *Synthetic) dropped(i, tick int32) bool {
	if s.dropoutEvery <= 0 || s.dropoutTicks <= 0 {
		return false
	}
	offset := (tick + i*157) % s.dropoutEvery
	return offset < s.dropoutTicks
}
