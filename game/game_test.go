package game

import (
	"testing"

	"github.com/kevin-pek/cv-hand-boids/components"
	"github.com/kevin-pek/cv-hand-boids/config"
	"github.com/kevin-pek/cv-hand-boids/swarm"
	"github.com/kevin-pek/cv-hand-boids/tracker"
)

// scriptedSource plays back a fixed presence script for lifecycle tests.
type scriptedSource struct {
	points func(tick int32) []tracker.Point
}

func (s *scriptedSource) Sample(tick int32) []tracker.Point {
	return s.points(tick)
}

func newTestGame(t *testing.T, src tracker.Source) *Game {
	t.Helper()
	config.MustInit("")
	cfg := config.Cfg()
	cfg.Swarm.PoolSize = 10

	g, err := NewGame(Options{Seed: 1, Headless: true, StepsPerUpdate: 1, Source: src})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func trackingOf(t *testing.T, g *Game, name string) *components.Tracking {
	t.Helper()
	query := g.filter.Query()
	for query.Next() {
		_, track, _ := query.Get()
		if track.Name == name {
			query.Close()
			return track
		}
	}
	t.Fatalf("identity %q not found", name)
	return nil
}

func TestGameCreatesIdentityOnFirstSighting(t *testing.T) {
	src := &scriptedSource{points: func(tick int32) []tracker.Point {
		return []tracker.Point{{Name: "index", X: 300, Y: 200}}
	}}
	g := newTestGame(t, src)

	g.UpdateHeadless()

	entity, ok := g.byName["index"]
	if !ok {
		t.Fatal("no identity registered for sighted point")
	}
	if !g.world.Alive(entity) {
		t.Fatal("registered entity not alive")
	}

	track := trackingOf(t, g, "index")
	if track.State != components.StateActive {
		t.Errorf("state = %v, want active", track.State)
	}
}

func TestGamePoolFollowsPoint(t *testing.T) {
	src := &scriptedSource{points: func(tick int32) []tracker.Point {
		return []tracker.Point{{Name: "index", X: float32(100 + tick), Y: 200}}
	}}
	g := newTestGame(t, src)

	for i := 0; i < 30; i++ {
		g.UpdateHeadless()
	}

	query := g.filter.Query()
	for query.Next() {
		anchor, _, sw := query.Get()
		if sw.System.TargetX != anchor.X || sw.System.TargetY != anchor.Y {
			t.Errorf("pool target (%v, %v) lags anchor (%v, %v)",
				sw.System.TargetX, sw.System.TargetY, anchor.X, anchor.Y)
		}
		if !sw.System.HasTarget {
			t.Error("pool lost target while point is present")
		}
	}
}

func TestGameIdleAndReacquire(t *testing.T) {
	// Present for 20 ticks, gone for 20, back again.
	src := &scriptedSource{points: func(tick int32) []tracker.Point {
		if tick >= 20 && tick < 40 {
			return nil
		}
		return []tracker.Point{{Name: "index", X: 300, Y: 200}}
	}}
	g := newTestGame(t, src)

	for i := 0; i < 25; i++ {
		g.UpdateHeadless()
	}
	track := trackingOf(t, g, "index")
	if track.State != components.StateIdle {
		t.Fatalf("state after dropout = %v, want idle", track.State)
	}
	if len(g.byName) != 1 {
		t.Fatalf("identity evicted during dropout")
	}

	query := g.filter.Query()
	for query.Next() {
		_, _, sw := query.Get()
		if sw.System.HasTarget {
			t.Error("idle pool still has a target")
		}
		if len(sw.System.Particles) != 10 {
			t.Errorf("idle pool shrank to %d particles", len(sw.System.Particles))
		}
	}

	for i := 0; i < 20; i++ {
		g.UpdateHeadless()
	}
	track = trackingOf(t, g, "index")
	if track.State != components.StateActive {
		t.Errorf("state after reappearance = %v, want active", track.State)
	}
	if g.nextColor != 1 {
		t.Errorf("reappearance created a new pool; %d colors assigned", g.nextColor)
	}
}

func TestGamePaletteRoundRobin(t *testing.T) {
	src := &scriptedSource{points: func(tick int32) []tracker.Point {
		return []tracker.Point{
			{Name: "a", X: 100, Y: 100},
			{Name: "b", X: 200, Y: 100},
			{Name: "c", X: 300, Y: 100},
		}
	}}
	g := newTestGame(t, src)

	g.UpdateHeadless()

	if len(g.byName) != 3 {
		t.Fatalf("%d identities, want 3", len(g.byName))
	}
	if g.nextColor != 3 {
		t.Errorf("nextColor = %d, want 3", g.nextColor)
	}

	seen := make(map[swarm.Color]bool)
	query := g.filter.Query()
	for query.Next() {
		_, _, sw := query.Get()
		if seen[sw.System.Color] {
			t.Errorf("palette color %+v assigned twice", sw.System.Color)
		}
		seen[sw.System.Color] = true
	}
}

func TestGameTickAdvances(t *testing.T) {
	src := &scriptedSource{points: func(tick int32) []tracker.Point { return nil }}
	g := newTestGame(t, src)

	for i := 0; i < 7; i++ {
		g.UpdateHeadless()
	}
	if g.Tick() != 7 {
		t.Errorf("tick = %d, want 7", g.Tick())
	}
}

func TestParsePalette(t *testing.T) {
	palette, err := parsePalette([]string{"255,0,0", "0,255,0"})
	if err != nil {
		t.Fatalf("parsePalette: %v", err)
	}
	if len(palette) != 2 || palette[0].R != 255 || palette[1].G != 255 {
		t.Errorf("palette = %+v", palette)
	}

	if _, err := parsePalette([]string{"nope"}); err == nil {
		t.Error("invalid palette entry accepted")
	}
}
