package components

// TrackState is the lifecycle state of one tracked identity.
type TrackState uint8

const (
	// StateUnseen: identity known by name only; no pool exists yet.
	StateUnseen TrackState = iota
	// StateActive: the detector reported the point this tick; pool follows it.
	StateActive
	// StateIdle: the point vanished; the pool drifts targetless until it returns.
	StateIdle
)

// String returns the state name for logs and the HUD.
func (s TrackState) String() string {
	switch s {
	case StateUnseen:
		return "unseen"
	case StateActive:
		return "active"
	case StateIdle:
		return "idle"
	}
	return "unknown"
}

// Tracking is the per-identity lifecycle state machine. Identities are never
// evicted: once seen, a pool persists so reappearing points pick their swarm
// back up with trails and momentum intact.
type Tracking struct {
	Name     string
	State    TrackState
	LastSeen int32 // tick of the most recent sighting
}

// Advance applies one tick of the state machine and reports whether the state
// changed. present tells whether the detector reported this point this tick.
func (t *Tracking) Advance(present bool, tick int32) bool {
	prev := t.State
	if present {
		t.State = StateActive
		t.LastSeen = tick
	} else if t.State == StateActive {
		t.State = StateIdle
	}
	return t.State != prev
}
