package swarm

import "github.com/kevin-pek/cv-hand-boids/config"

// FrictionModel selects how speed decays each tick.
type FrictionModel uint8

const (
	// FrictionMultiplicative multiplies speed by the friction coefficient every tick.
	FrictionMultiplicative FrictionModel = iota
	// FrictionNone leaves speed untouched between steering and clamping.
	FrictionNone
)

// Variant selects between the simulation force models. The source history of this
// effect accumulated several copy-paste forks (pure seek, seek+flocking, with and
// without a minimum-speed clamp); they are all expressible as one particle state
// machine gated by these flags.
type Variant struct {
	UseFlocking bool
	UseMinSpeed bool
	Friction    FrictionModel
}

// TrailParams controls trail dot fade-out.
type TrailParams struct {
	InitialAlpha float32
	AlphaDecay   float32
	RadiusDecay  float32
	Shrink       bool
}

// FlockParams controls boid force blending.
type FlockParams struct {
	NeighborRadius float32
	Cohesion       float32
	Separation     float32
	Alignment      float32
	Smoothing      float32 // Heading blend factor toward the net force
	GridCellSize   float32
}

// Params holds the physics parameters shared by every particle in a pool.
// Systems hold a pointer so that live tuning (UI sliders) applies to all pools
// at once.
type Params struct {
	Radius           float32
	Accel            float32
	MinSpeed         float32
	MaxSpeed         float32
	Friction         float32
	HeadingSmoothing float32
	SpawnJitter      float32

	Trail   TrailParams
	Flock   FlockParams
	Variant Variant

	// DebugLines draws a line from each particle to its target.
	DebugLines bool
}

// DefaultParams returns parameters matching the embedded config defaults.
// Tests use this to avoid depending on config.Init.
func DefaultParams() *Params {
	return &Params{
		Radius:           3,
		Accel:            0.05,
		MinSpeed:         1.0,
		MaxSpeed:         8.0,
		Friction:         0.95,
		HeadingSmoothing: 0.05,
		SpawnJitter:      10,
		Trail: TrailParams{
			InitialAlpha: 0.45,
			AlphaDecay:   0.02,
			RadiusDecay:  0.1,
			Shrink:       true,
		},
		Flock: FlockParams{
			NeighborRadius: 60,
			Cohesion:       0.3,
			Separation:     1.0,
			Alignment:      0.3,
			Smoothing:      0.02,
			GridCellSize:   32,
		},
		Variant: Variant{
			UseFlocking: true,
			UseMinSpeed: true,
			Friction:    FrictionMultiplicative,
		},
	}
}

// ParamsFromConfig builds particle parameters from the loaded configuration.
func ParamsFromConfig(cfg *config.Config) *Params {
	friction := FrictionMultiplicative
	if cfg.Particle.FrictionModel == "none" {
		friction = FrictionNone
	}

	return &Params{
		Radius:           float32(cfg.Particle.Radius),
		Accel:            float32(cfg.Particle.Acceleration),
		MinSpeed:         float32(cfg.Particle.MinSpeed),
		MaxSpeed:         float32(cfg.Particle.MaxSpeed),
		Friction:         float32(cfg.Particle.Friction),
		HeadingSmoothing: float32(cfg.Particle.HeadingSmoothing),
		SpawnJitter:      float32(cfg.Swarm.SpawnJitter),
		Trail: TrailParams{
			InitialAlpha: float32(cfg.Trail.InitialAlpha),
			AlphaDecay:   float32(cfg.Trail.AlphaDecay),
			RadiusDecay:  float32(cfg.Trail.RadiusDecay),
			Shrink:       cfg.Trail.Shrink,
		},
		Flock: FlockParams{
			NeighborRadius: float32(cfg.Flocking.NeighborRadius),
			Cohesion:       float32(cfg.Flocking.Cohesion),
			Separation:     float32(cfg.Flocking.Separation),
			Alignment:      float32(cfg.Flocking.Alignment),
			Smoothing:      float32(cfg.Flocking.Smoothing),
			GridCellSize:   float32(cfg.Flocking.GridCellSize),
		},
		Variant: Variant{
			UseFlocking: cfg.Flocking.Enabled,
			UseMinSpeed: cfg.Particle.UseMinSpeed,
			Friction:    friction,
		},
		DebugLines: cfg.Debug.TargetLines,
	}
}
