package game

import (
	"log/slog"

	"github.com/kevin-pek/cv-hand-boids/telemetry"
)

// Update runs one frame's worth of simulation in graphical mode.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}

	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// UpdateHeadless runs simulation steps without any input handling.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// simulationStep runs a single tick: poll the detector, advance every
// identity's lifecycle and pool, then flush telemetry when a window closes.
// Everything inside a tick runs synchronously; suspension only happens at the
// animation-callback boundary between frames.
func (g *Game) simulationStep() {
	g.perf.StartTick()

	g.perf.StartPhase(telemetry.PhaseSample)
	points := g.source.Sample(g.tick)

	g.perf.StartPhase(telemetry.PhaseLifecycle)
	g.ingestPoints(points)

	g.perf.StartPhase(telemetry.PhaseSwarms)
	g.updateSwarms()

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.perf.EndTick()

	g.tick++
}

// flushTelemetry closes the stats window when due and writes it out.
func (g *Game) flushTelemetry() {
	if !g.collector.WindowDue(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.sampleSwarms())
	perfStats := g.perf.Stats()

	if g.opts.LogStats {
		stats.Log()
	}
	if g.opts.PerfLog {
		perfStats.Log()
	}

	// CSV output is disabled when no output dir was given; the nil manager
	// swallows writes.
	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Error("writing telemetry", "error", err)
	}
	if err := g.output.WritePerf(perfStats, g.tick); err != nil {
		slog.Error("writing perf", "error", err)
	}
}
