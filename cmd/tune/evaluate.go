package main

import (
	"math"
	"math/rand"

	"github.com/kevin-pek/cv-hand-boids/config"
	"github.com/kevin-pek/cv-hand-boids/swarm"
	"github.com/kevin-pek/cv-hand-boids/tracker"
)

// ParamSpec describes one tunable parameter and its search range.
type ParamSpec struct {
	Name string
	Min  float64
	Max  float64
	Def  float64
}

// ParamVector maps between raw parameter values and the normalized [0,1]
// vector the optimizer works in.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector defines the tunable search space.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "acceleration", Min: 0.005, Max: 0.2, Def: 0.05},
			{Name: "heading_smoothing", Min: 0.01, Max: 0.3, Def: 0.05},
			{Name: "friction", Min: 0.8, Max: 0.99, Def: 0.95},
			{Name: "cohesion", Min: 0, Max: 1.5, Def: 0.3},
			{Name: "separation", Min: 0, Max: 3, Def: 1.0},
			{Name: "alignment", Min: 0, Max: 1.5, Def: 0.3},
		},
	}
}

// Dim returns the search dimensionality.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default raw values.
func (pv *ParamVector) DefaultVector() []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, s := range pv.Specs {
		raw[i] = s.Def
	}
	return raw
}

// Normalize maps raw values into [0,1] per parameter range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	x := make([]float64, len(raw))
	for i, s := range pv.Specs {
		x[i] = (raw[i] - s.Min) / (s.Max - s.Min)
	}
	return x
}

// Denormalize maps a [0,1] vector back to raw values, clamped into range.
func (pv *ParamVector) Denormalize(x []float64) []float64 {
	raw := make([]float64, len(x))
	for i, s := range pv.Specs {
		v := s.Min + x[i]*(s.Max-s.Min)
		if v < s.Min {
			v = s.Min
		} else if v > s.Max {
			v = s.Max
		}
		raw[i] = v
	}
	return raw
}

// Apply writes raw values into a config.
func (pv *ParamVector) Apply(raw []float64, cfg *config.Config) {
	cfg.Particle.Acceleration = raw[0]
	cfg.Particle.HeadingSmoothing = raw[1]
	cfg.Particle.Friction = raw[2]
	cfg.Flocking.Cohesion = raw[3]
	cfg.Flocking.Separation = raw[4]
	cfg.Flocking.Alignment = raw[5]
}

// Evaluator scores a parameter vector by running headless pool simulations
// against a moving synthetic target.
type Evaluator struct {
	params *ParamVector
	ticks  int32
	seeds  []int64
	cfg    *config.Config
}

// NewEvaluator creates an evaluator.
func NewEvaluator(params *ParamVector, ticks int32, seeds []int64, cfg *config.Config) *Evaluator {
	return &Evaluator{params: params, ticks: ticks, seeds: seeds, cfg: cfg}
}

// Evaluate returns the mean tracking error over the back half of each run,
// averaged across seeds. Lower is better.
func (e *Evaluator) Evaluate(raw []float64) float64 {
	cfg := *e.cfg
	e.params.Apply(raw, &cfg)

	var total float64
	for _, seed := range e.seeds {
		total += e.run(&cfg, seed)
	}
	return total / float64(len(e.seeds))
}

// run simulates one pool chasing a single moving point and returns its mean
// distance-to-target after the settling phase.
func (e *Evaluator) run(cfg *config.Config, seed int64) float64 {
	w := float32(cfg.Screen.Width)
	h := float32(cfg.Screen.Height)

	source := tracker.NewSynthetic([]string{"index"}, w, h, 0, 0)
	params := swarm.ParamsFromConfig(cfg)
	rng := rand.New(rand.NewSource(seed))

	first := source.Sample(0)[0]
	system := swarm.NewSystem(first.X, first.Y, cfg.Swarm.PoolSize, swarm.Color{R: 255}, params, rng)

	var errSum float64
	var samples int
	settle := e.ticks / 2

	for tick := int32(0); tick < e.ticks; tick++ {
		pt := source.Sample(tick)[0]
		system.Retarget(pt.X, pt.Y)
		system.Update(w, h)

		if tick < settle {
			continue
		}
		for i := range system.Particles {
			p := &system.Particles[i]
			errSum += math.Hypot(float64(pt.X-p.X), float64(pt.Y-p.Y))
			samples++
		}
	}

	if samples == 0 {
		return math.Inf(1)
	}
	return errSum / float64(samples)
}
