// Package tracker supplies the named 2D points the swarm effect anchors to.
// The real producer is an external feature detector; this package defines the
// interface it must satisfy plus a synthetic stand-in for development and
// headless runs.
package tracker

// Point is one named detection in canvas-space coordinates.
type Point struct {
	Name string
	X, Y float32
}

// Source produces the current set of detected points. Points may appear and
// disappear between samples; names are stable identities.
type Source interface {
	Sample(tick int32) []Point
}

// Poller decouples detection cadence from the render rate: it re-samples its
// source only every interval ticks and serves the cached result in between,
// mimicking a detector polled on its own timer.
type Poller struct {
	source   Source
	interval int32

	lastTick int32
	cached   []Point
	sampled  bool
}

// NewPoller wraps source, re-sampling every interval ticks (minimum 1).
func NewPoller(source Source, interval int) *Poller {
	if interval < 1 {
		interval = 1
	}
	return &Poller{source: source, interval: int32(interval)}
}

// Sample returns the detector output for this tick, re-querying the underlying
// source only when the poll interval has elapsed.
func (p *Poller) Sample(tick int32) []Point {
	if !p.sampled || tick-p.lastTick >= p.interval {
		p.cached = p.source.Sample(tick)
		p.lastTick = tick
		p.sampled = true
	}
	return p.cached
}
