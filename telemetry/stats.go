package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowEndTick int32   `csv:"window_end"`
	SimTimeSec    float64 `csv:"sim_time"`

	// Swarm population at window end
	ActiveSwarms int `csv:"active_swarms"`
	IdleSwarms   int `csv:"idle_swarms"`
	Particles    int `csv:"particles"`
	TrailDots    int `csv:"trail_dots"`

	// Events during window
	SwarmsCreated   int `csv:"swarms_created"`
	Retargets       int `csv:"retargets"`
	IdleTransitions int `csv:"idle_transitions"`
	Reacquired      int `csv:"reacquired"`

	// Steering quality, sampled over active swarms at window end
	DistMean float64 `csv:"dist_mean"`
	DistP50  float64 `csv:"dist_p50"`
	DistP90  float64 `csv:"dist_p90"`

	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
}

// Log emits the window via slog.
func (s WindowStats) Log() {
	slog.Info("window stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"active_swarms", s.ActiveSwarms,
		"idle_swarms", s.IdleSwarms,
		"particles", s.Particles,
		"trail_dots", s.TrailDots,
		"swarms_created", s.SwarmsCreated,
		"retargets", s.Retargets,
		"idle_transitions", s.IdleTransitions,
		"dist_mean", s.DistMean,
		"dist_p90", s.DistP90,
		"speed_mean", s.SpeedMean,
	)
}

// ComputeDistStats calculates mean and percentiles of target distances.
func ComputeDistStats(values []float64) (mean, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}

	mean = stat.Mean(values, nil)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)

	return mean, p50, p90
}

// ComputeSpeedStats calculates mean and standard deviation of particle speeds.
func ComputeSpeedStats(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	mean = stat.Mean(values, nil)
	if len(values) > 1 {
		std = stat.StdDev(values, nil)
	}
	return mean, std
}
