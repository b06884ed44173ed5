package swarm

import "math"

// Particle is one member of a swarm pool. It steers toward the pool's shared
// target with low-pass smoothed heading and speed, leaves a fading trail, and
// reflects off the canvas edges.
type Particle struct {
	X, Y    float32
	Heading float32 // radians, kept in [-Pi, Pi]
	Speed   float32
	Radius  float32

	// Shared pool target. HasTarget false means idle drift.
	TargetX, TargetY float32
	HasTarget        bool

	Trail []TrailDot

	params *Params
}

// newParticle creates a particle aimed at the given target.
func newParticle(x, y, targetX, targetY float32, params *Params) Particle {
	heading := atan2f(targetY-y, targetX-x)
	return Particle{
		X:       x,
		Y:       y,
		Heading: heading,
		Speed:   params.MinSpeed,
		Radius:  params.Radius,
		TargetX: targetX,
		TargetY: targetY,
		HasTarget: true,
		Trail:   make([]TrailDot, 0, 32),
		params:  params,
	}
}

// Update advances the particle one tick within a w x h canvas. flock carries the
// precomputed flocking force for this tick, or nil when flocking is off.
func (p *Particle) Update(w, h float32, flock *FlockForce) {
	pr := p.params

	// 1. Target seeking: low-pass filter heading and speed toward the target.
	if p.HasTarget {
		dx := p.TargetX - p.X
		dy := p.TargetY - p.Y
		dist := sqrtf(dx*dx + dy*dy)
		if dist > 0 {
			desired := atan2f(dy, dx)
			diff := normalizeAngle(desired - p.Heading)
			p.Heading = normalizeAngle(p.Heading + diff*pr.HeadingSmoothing)

			desiredSpeed := dist * pr.Accel
			p.Speed += (desiredSpeed - p.Speed) * pr.Accel
		}
	}

	// 2. Flocking, blended on top of seeking within the same tick.
	if flock != nil && pr.Variant.UseFlocking {
		p.applyFlock(flock)
	}

	// 3. Friction and clamping.
	if pr.Variant.Friction == FrictionMultiplicative {
		p.Speed *= pr.Friction
	}
	if pr.Variant.UseMinSpeed {
		p.Speed = clampFloat(p.Speed, pr.MinSpeed, pr.MaxSpeed)
	} else {
		if p.Speed < 1 {
			p.Speed = 1
		}
		if p.Speed > pr.MaxSpeed {
			p.Speed = pr.MaxSpeed
		}
	}

	// 4. Integration.
	p.X += cosf(p.Heading) * p.Speed
	p.Y += sinf(p.Heading) * p.Speed

	// 5. Boundary reflection.
	p.bounce(w, h)

	// 6. Trail: age existing dots, then leave one at the new position.
	p.updateTrail()
}

// applyFlock blends the heading toward the net flocking force and accumulates
// its speed contribution.
func (p *Particle) applyFlock(f *FlockForce) {
	mag := sqrtf(f.X*f.X + f.Y*f.Y)
	if mag == 0 {
		return
	}
	pr := p.params
	desired := atan2f(f.Y, f.X)
	diff := normalizeAngle(desired - p.Heading)
	p.Heading = normalizeAngle(p.Heading + diff*pr.Flock.Smoothing)
	p.Speed += mag * pr.Flock.Smoothing
}

// bounce reflects the heading off any canvas edge the particle's circular
// extent crosses and clamps the position back inside.
func (p *Particle) bounce(w, h float32) {
	if p.X < p.Radius {
		p.X = p.Radius
		p.Heading = normalizeAngle(mirrorVertical(p.Heading))
	} else if p.X > w-p.Radius {
		p.X = w - p.Radius
		p.Heading = normalizeAngle(mirrorVertical(p.Heading))
	}
	if p.Y < p.Radius {
		p.Y = p.Radius
		p.Heading = normalizeAngle(-p.Heading)
	} else if p.Y > h-p.Radius {
		p.Y = h - p.Radius
		p.Heading = normalizeAngle(-p.Heading)
	}
}

// mirrorVertical reflects a heading across a vertical wall.
func mirrorVertical(heading float32) float32 {
	return math.Pi - heading
}

// updateTrail ages every dot with order-preserving compaction and emits a fresh
// one at the current position.
func (p *Particle) updateTrail() {
	tp := p.params.Trail

	alive := 0
	for i := range p.Trail {
		if p.Trail[i].Update(tp) {
			p.Trail[alive] = p.Trail[i]
			alive++
		}
	}
	p.Trail = p.Trail[:alive]

	p.Trail = append(p.Trail, TrailDot{
		X:      p.X,
		Y:      p.Y,
		Radius: p.Radius,
		Alpha:  tp.InitialAlpha,
	})
}

// Draw renders the trail oldest first so the newest dot paints on top. The
// particle body itself is not drawn; the head of the trail stands in for it.
func (p *Particle) Draw(s Surface, col Color) {
	for i := range p.Trail {
		p.Trail[i].Draw(s, col)
	}
	if p.params.DebugLines && p.HasTarget {
		s.Line(p.X, p.Y, p.TargetX, p.TargetY, col, 0.35)
	}
}

// retarget points the particle at a new shared target position.
func (p *Particle) retarget(x, y float32) {
	p.TargetX = x
	p.TargetY = y
	p.HasTarget = true
}

// clearTarget switches the particle to idle drift.
func (p *Particle) clearTarget() {
	p.HasTarget = false
}
