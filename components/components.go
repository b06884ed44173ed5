// Package components defines the ECS components for tracked target identities.
package components

import "github.com/kevin-pek/cv-hand-boids/swarm"

// Anchor is the current detector-space position of a tracked point, refreshed
// every tick from the point supplier. Present is false on ticks where the
// detector did not report the point.
type Anchor struct {
	X, Y    float32
	Present bool
}

// Swarm attaches a particle pool to a tracked identity.
type Swarm struct {
	System *swarm.System
}
