package game

import (
	"log/slog"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/kevin-pek/cv-hand-boids/components"
	"github.com/kevin-pek/cv-hand-boids/config"
	"github.com/kevin-pek/cv-hand-boids/swarm"
	"github.com/kevin-pek/cv-hand-boids/telemetry"
	"github.com/kevin-pek/cv-hand-boids/tracker"
)

// ingestPoints refreshes every identity's anchor from the detector output,
// creating identities (and their pools) on first sighting.
func (g *Game) ingestPoints(points []tracker.Point) {
	// Mark every known anchor absent; sighted ones are set below.
	query := g.filter.Query()
	for query.Next() {
		anchor, _, _ := query.Get()
		anchor.Present = false
	}

	for _, pt := range points {
		entity, ok := g.byName[pt.Name]
		if !ok {
			g.createIdentity(pt)
			continue
		}
		anchor := g.anchorMap.Get(entity)
		anchor.X = pt.X
		anchor.Y = pt.Y
		anchor.Present = true
	}
}

// createIdentity registers a newly sighted point and lazily creates its pool.
// Identities persist for the lifetime of the game; a vanished point's pool
// keeps drifting until the point returns.
func (g *Game) createIdentity(pt tracker.Point) ecs.Entity {
	cfg := config.Cfg()

	col := g.palette[g.nextColor%len(g.palette)]
	g.nextColor++

	system := swarm.NewSystem(pt.X, pt.Y, cfg.Swarm.PoolSize, col, g.params, g.rng)

	anchor := components.Anchor{X: pt.X, Y: pt.Y, Present: true}
	track := components.Tracking{Name: pt.Name, State: components.StateActive, LastSeen: g.tick}
	sw := components.Swarm{System: system}

	entity := g.mapper.NewEntity(&anchor, &track, &sw)
	g.byName[pt.Name] = entity
	g.collector.RecordSwarmCreated()

	slog.Info("swarm created", "name", pt.Name, "x", pt.X, "y", pt.Y, "particles", cfg.Swarm.PoolSize)

	return entity
}

// updateSwarms advances every identity's state machine and ticks its pool.
func (g *Game) updateSwarms() {
	query := g.filter.Query()
	for query.Next() {
		anchor, track, sw := query.Get()

		prev := track.State
		track.Advance(anchor.Present, g.tick)

		switch {
		case prev == components.StateActive && track.State == components.StateIdle:
			g.collector.RecordIdleTransition()
			slog.Debug("target lost", "name", track.Name, "tick", g.tick)
		case prev == components.StateIdle && track.State == components.StateActive:
			g.collector.RecordReacquired()
			slog.Debug("target reacquired", "name", track.Name, "tick", g.tick)
		}

		if anchor.Present {
			sw.System.Retarget(anchor.X, anchor.Y)
			g.collector.RecordRetarget()
		} else {
			sw.System.ClearTarget()
		}

		sw.System.Update(g.width, g.height)
	}
}

// sampleSwarms builds the end-of-window telemetry snapshot.
func (g *Game) sampleSwarms() telemetry.SwarmSample {
	var sample telemetry.SwarmSample

	query := g.filter.Query()
	for query.Next() {
		anchor, track, sw := query.Get()
		system := sw.System

		switch track.State {
		case components.StateActive:
			sample.ActiveSwarms++
		case components.StateIdle:
			sample.IdleSwarms++
		}
		sample.Particles += len(system.Particles)
		sample.TrailDots += system.TrailDots()

		if track.State != components.StateActive {
			continue
		}
		for i := range system.Particles {
			p := &system.Particles[i]
			dx := float64(anchor.X - p.X)
			dy := float64(anchor.Y - p.Y)
			sample.TargetDistances = append(sample.TargetDistances, math.Hypot(dx, dy))
			sample.Speeds = append(sample.Speeds, float64(p.Speed))
		}
	}

	return sample
}
