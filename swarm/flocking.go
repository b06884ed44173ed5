package swarm

// BoidState is one particle's kinematic state snapshotted before any pool
// member integrates. Flocking reads exclusively from the snapshot: a single
// in-place pass would let earlier particles' new positions bias later ones.
type BoidState struct {
	X, Y    float32
	Heading float32
	Speed   float32
}

// FlockForce is the net boid force acting on one particle for one tick.
type FlockForce struct {
	X, Y float32
}

// computeFlock blends cohesion, separation, and alignment from the snapshotted
// neighbors into a single weighted force vector.
//
// Cohesion pulls toward the neighbor centroid. Separation applies inverse-square
// repulsion from neighbors inside half the neighborhood radius. Alignment pulls
// toward the neighbors' mean velocity, decomposed from their heading and speed.
func computeFlock(self *BoidState, neighbors []Hit, snapshot []BoidState, fp FlockParams) FlockForce {
	if len(neighbors) == 0 {
		return FlockForce{}
	}

	var (
		sumX, sumY float32 // positions, for cohesion
		avgVX, avgVY float32 // velocities, for alignment
		sepX, sepY float32
	)
	closeSq := (fp.NeighborRadius / 2) * (fp.NeighborRadius / 2)

	for _, n := range neighbors {
		other := &snapshot[n.Index]
		sumX += other.X
		sumY += other.Y
		avgVX += cosf(other.Heading) * other.Speed
		avgVY += sinf(other.Heading) * other.Speed

		// Inverse-square repulsion, guarded against overlapping particles.
		if n.DistSq < closeSq && n.DistSq > 1e-6 {
			sepX -= n.DX / n.DistSq
			sepY -= n.DY / n.DistSq
		}
	}

	count := float32(len(neighbors))

	cohX := (sumX/count - self.X) * fp.Cohesion
	cohY := (sumY/count - self.Y) * fp.Cohesion

	selfVX := cosf(self.Heading) * self.Speed
	selfVY := sinf(self.Heading) * self.Speed
	alignX := (avgVX/count - selfVX) * fp.Alignment
	alignY := (avgVY/count - selfVY) * fp.Alignment

	return FlockForce{
		X: cohX + alignX + sepX*fp.Separation,
		Y: cohY + alignY + sepY*fp.Separation,
	}
}

// flockingActive reports whether the flocking pass has any effect at all.
func flockingActive(p *Params) bool {
	if !p.Variant.UseFlocking {
		return false
	}
	fp := p.Flock
	return fp.NeighborRadius > 0 && (fp.Cohesion != 0 || fp.Separation != 0 || fp.Alignment != 0)
}
