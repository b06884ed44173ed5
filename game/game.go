// Package game orchestrates the per-frame update/draw cycle: it maps tracked
// point identities to their particle pools and drives them.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/kevin-pek/cv-hand-boids/components"
	"github.com/kevin-pek/cv-hand-boids/config"
	"github.com/kevin-pek/cv-hand-boids/renderer"
	"github.com/kevin-pek/cv-hand-boids/swarm"
	"github.com/kevin-pek/cv-hand-boids/telemetry"
	"github.com/kevin-pek/cv-hand-boids/tracker"
	"github.com/kevin-pek/cv-hand-boids/ui"
)

// Options holds game construction options.
type Options struct {
	Seed           int64
	LogStats       bool
	PerfLog        bool
	OutputDir      string
	Headless       bool
	StepsPerUpdate int

	// Source overrides the synthetic point source (used by cmd/tune).
	Source tracker.Source
}

// Game holds the orchestrator state: one ECS entity per tracked identity,
// carrying its anchor point, lifecycle state, and particle pool.
type Game struct {
	world  ecs.World
	mapper *ecs.Map3[components.Anchor, components.Tracking, components.Swarm]
	filter *ecs.Filter3[components.Anchor, components.Tracking, components.Swarm]

	anchorMap *ecs.Map1[components.Anchor]

	// Identity lookup alongside the ECS; entities are never removed.
	byName map[string]ecs.Entity

	rng    *rand.Rand
	params *swarm.Params

	palette   []swarm.Color
	nextColor int

	source    tracker.Source
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager

	canvas *renderer.Canvas
	hud    *ui.HUD
	panel  *ui.Panel

	opts           Options
	tick           int32
	paused         bool
	debugMode      bool
	stepsPerUpdate int

	width, height float32
}

// NewGame creates a game from the loaded configuration.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	if opts.StepsPerUpdate < 1 {
		opts.StepsPerUpdate = 1
	}

	palette, err := parsePalette(cfg.Swarm.Colors)
	if err != nil {
		return nil, err
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	g := &Game{
		world:          ecs.NewWorld(),
		byName:         make(map[string]ecs.Entity),
		rng:            rand.New(rand.NewSource(opts.Seed)),
		params:         swarm.ParamsFromConfig(cfg),
		palette:        palette,
		collector:      telemetry.NewCollector(cfg.Telemetry.StatsWindow, cfg.Derived.DT),
		perf:           telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		output:         output,
		canvas:         renderer.NewCanvas(),
		hud:            ui.NewHUD(),
		panel:          ui.NewPanel(),
		opts:           opts,
		stepsPerUpdate: opts.StepsPerUpdate,
		width:          cfg.Derived.ScreenW32,
		height:         cfg.Derived.ScreenH32,
	}

	g.mapper = ecs.NewMap3[components.Anchor, components.Tracking, components.Swarm](&g.world)
	g.filter = ecs.NewFilter3[components.Anchor, components.Tracking, components.Swarm](&g.world)
	g.anchorMap = ecs.NewMap1[components.Anchor](&g.world)

	g.source = opts.Source
	if g.source == nil {
		synthetic := tracker.NewSynthetic(
			cfg.Tracker.Points,
			g.width, g.height,
			cfg.Tracker.DropoutEvery, cfg.Tracker.DropoutTicks,
		)
		g.source = tracker.NewPoller(synthetic, cfg.Derived.PollIntervalTicks)
	}

	slog.Info("game created",
		"seed", opts.Seed,
		"pool_size", cfg.Swarm.PoolSize,
		"flocking", cfg.Flocking.Enabled,
		"points", len(cfg.Tracker.Points),
	)

	return g, nil
}

// Params returns the live tuning parameters shared by all pools.
func (g *Game) Params() *swarm.Params {
	return g.params
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Unload releases output files.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Error("closing output", "error", err)
	}
}

// parsePalette converts "R,G,B" strings into colors.
func parsePalette(specs []string) ([]swarm.Color, error) {
	palette := make([]swarm.Color, 0, len(specs))
	for _, s := range specs {
		col, err := swarm.ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("parsing palette: %w", err)
		}
		palette = append(palette, col)
	}
	return palette, nil
}
