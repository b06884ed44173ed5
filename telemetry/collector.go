package telemetry

// SwarmSample is the population snapshot taken at the end of a window.
type SwarmSample struct {
	ActiveSwarms int
	IdleSwarms   int
	Particles    int
	TrailDots    int

	// Per-particle measurements across active swarms
	TargetDistances []float64
	Speeds          []float64
}

// Collector accumulates orchestration events within time windows and produces
// WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	windowStartTick int32

	// Event counters for the current window
	swarmsCreated   int
	retargets       int
	idleTransitions int
	reacquired      int
}

// NewCollector creates a stats collector.
// windowDurationSec: window length in simulation seconds
// dt: seconds per tick
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int32(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordSwarmCreated records the lazy creation of a pool for a new identity.
func (c *Collector) RecordSwarmCreated() {
	c.swarmsCreated++
}

// RecordRetarget records a pool following its point to a new position.
func (c *Collector) RecordRetarget() {
	c.retargets++
}

// RecordIdleTransition records a tracked point vanishing.
func (c *Collector) RecordIdleTransition() {
	c.idleTransitions++
}

// RecordReacquired records an idle pool picking its point back up.
func (c *Collector) RecordReacquired() {
	c.reacquired++
}

// WindowDue reports whether the current window ends at this tick.
func (c *Collector) WindowDue(tick int32) bool {
	return tick-c.windowStartTick >= c.windowDurationTicks
}

// Flush closes the current window, combining the accumulated events with the
// given end-of-window sample, and resets counters for the next window.
func (c *Collector) Flush(tick int32, sample SwarmSample) WindowStats {
	distMean, distP50, distP90 := ComputeDistStats(sample.TargetDistances)
	speedMean, speedStd := ComputeSpeedStats(sample.Speeds)

	stats := WindowStats{
		WindowEndTick:   tick,
		SimTimeSec:      float64(tick) * c.dt,
		ActiveSwarms:    sample.ActiveSwarms,
		IdleSwarms:      sample.IdleSwarms,
		Particles:       sample.Particles,
		TrailDots:       sample.TrailDots,
		SwarmsCreated:   c.swarmsCreated,
		Retargets:       c.retargets,
		IdleTransitions: c.idleTransitions,
		Reacquired:      c.reacquired,
		DistMean:        distMean,
		DistP50:         distP50,
		DistP90:         distP90,
		SpeedMean:       speedMean,
		SpeedStd:        speedStd,
	}

	c.windowStartTick = tick
	c.swarmsCreated = 0
	c.retargets = 0
	c.idleTransitions = 0
	c.reacquired = 0

	return stats
}
