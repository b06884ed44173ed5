// Package swarm implements the trailing particle-swarm effect: per-particle
// steering and flocking physics, trail fade-out, and the per-target pool that
// ties them together.
package swarm

import "math/rand"

// System owns a fixed-size pool of particles anchored to one tracked target.
// The pool size never changes after construction; when the target disappears
// the pool keeps updating targetless and drifts apart instead of vanishing.
type System struct {
	Particles []Particle
	Color     Color

	TargetX, TargetY float32
	HasTarget        bool

	params *Params

	// Flocking scratch buffers, reused across ticks to avoid allocation.
	snapshot  []BoidState
	forces    []FlockForce
	neighbors []Hit
	grid      *SpatialGrid
	gridW     float32
	gridH     float32
}

// NewSystem creates a pool of count particles jittered around the target, all
// initially aimed at it.
func NewSystem(targetX, targetY float32, count int, col Color, params *Params, rng *rand.Rand) *System {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	s := &System{
		Particles: make([]Particle, 0, count),
		Color:     col,
		TargetX:   targetX,
		TargetY:   targetY,
		HasTarget: true,
		params:    params,
		snapshot:  make([]BoidState, count),
		forces:    make([]FlockForce, count),
	}

	jitter := params.SpawnJitter
	for i := 0; i < count; i++ {
		x := targetX + (rng.Float32()*2-1)*jitter
		y := targetY + (rng.Float32()*2-1)*jitter
		s.Particles = append(s.Particles, newParticle(x, y, targetX, targetY, params))
	}

	return s
}

// Params returns the shared parameter set driving this pool.
func (s *System) Params() *Params {
	return s.params
}

// Retarget moves the shared target. The pool is retargeted by mutating shared
// state rather than rebuilding particles, so trails and momentum carry across
// retarget events.
func (s *System) Retarget(x, y float32) {
	s.TargetX = x
	s.TargetY = y
	s.HasTarget = true
	for i := range s.Particles {
		s.Particles[i].retarget(x, y)
	}
}

// ClearTarget drops the target; the pool drifts under inertia, friction,
// flocking, and boundary reflection until a target reappears.
func (s *System) ClearTarget() {
	s.HasTarget = false
	for i := range s.Particles {
		s.Particles[i].clearTarget()
	}
}

// Update advances every particle one tick within a w x h canvas. When flocking
// is enabled the whole pool is snapshotted first, so each particle's forces are
// computed against the previous tick's positions rather than a half-updated
// pool.
func (s *System) Update(w, h float32) {
	useFlock := flockingActive(s.params)

	if useFlock {
		s.computeForces(w, h)
	}

	for i := range s.Particles {
		var f *FlockForce
		if useFlock {
			f = &s.forces[i]
		}
		s.Particles[i].Update(w, h, f)
	}
}

// computeForces snapshots the pool and fills the per-particle force buffer.
func (s *System) computeForces(w, h float32) {
	fp := s.params.Flock

	if s.grid == nil || s.gridW != w || s.gridH != h {
		s.grid = NewSpatialGrid(w, h, fp.GridCellSize)
		s.gridW = w
		s.gridH = h
	}
	s.grid.Clear()

	for i := range s.Particles {
		p := &s.Particles[i]
		s.snapshot[i] = BoidState{X: p.X, Y: p.Y, Heading: p.Heading, Speed: p.Speed}
		s.grid.Insert(i, p.X, p.Y)
	}

	for i := range s.snapshot {
		self := &s.snapshot[i]
		s.neighbors = s.grid.QueryRadiusInto(s.neighbors[:0], self.X, self.Y, fp.NeighborRadius, i, s.snapshot)
		s.forces[i] = computeFlock(self, s.neighbors, s.snapshot, fp)
	}
}

// Draw renders every particle in pool order.
func (s *System) Draw(surface Surface) {
	for i := range s.Particles {
		s.Particles[i].Draw(surface, s.Color)
	}
}

// TrailDots returns the total number of live trail dots across the pool.
func (s *System) TrailDots() int {
	total := 0
	for i := range s.Particles {
		total += len(s.Particles[i].Trail)
	}
	return total
}
