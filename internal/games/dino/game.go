// Package dino implements the Dino Runner endless runner: the actor jumps
// over obstacles scrolling in from the right while the world speeds up.
//
// World is the pure simulation. Game wraps it for the platform layer,
// adding pause, restart, the personal best and rendering.
package dino

import (
	"math/rand"

	"github.com/vovakirdan/dinorun/internal/config"
	"github.com/vovakirdan/dinorun/internal/core"
)

// Game implements Dino Runner for the terminal platform.
type Game struct {
	cfg      config.DinoConfig
	world    *World
	runtime  core.RuntimeConfig
	paused   bool
	best     int
	legFrame int
}

// New creates a game with the given tuning. Call Reset before stepping.
func New(cfg config.DinoConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "dino"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Dino Runner"
}

// Reset starts a new run seeded from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.world = NewWorld(g.cfg, rand.New(rand.NewSource(runtime.Seed)))
	g.world.Start()
	g.paused = false
	g.legFrame = 0
}

// SetBest seeds the personal best shown in the HUD.
func (g *Game) SetBest(best int) {
	if best > g.best {
		g.best = best
	}
}

// World exposes the simulation, mainly for tests and replays.
func (g *Game) World() *World {
	return g.world
}

// Step applies input and advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world.Phase() == PhaseEnded {
		if in.Has(core.ActionRestart) {
			g.paused = false
			g.world.Start()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		g.world.Jump()
	}

	report := g.world.Step()
	g.legFrame = (g.legFrame + 1) % 10

	if report.Score > g.best {
		g.best = report.Score
	}

	return core.StepResult{
		State:   g.State(),
		LevelUp: report.LevelUp,
		Ended:   report.Ended,
	}
}

// State returns the snapshot read by the platform.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{Level: 1, Best: g.best}
	}
	return core.GameState{
		Score:    g.world.Score(),
		Level:    g.world.Level(),
		Best:     g.best,
		GameOver: g.world.Phase() == PhaseEnded,
		Paused:   g.paused,
	}
}
