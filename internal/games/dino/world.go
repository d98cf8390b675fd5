package dino

import (
	"github.com/vovakirdan/dinorun/internal/config"
	"github.com/vovakirdan/dinorun/internal/core"
)

// Phase is the run lifecycle: Idle -> Running -> Ended, and Ended -> Running on restart.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Actor is the player-controlled runner. Y grows downwards; DY < 0 is rising.
type Actor struct {
	X, Y     float64
	DY       float64
	Width    float64
	Height   float64
	Grounded bool
}

// Rect returns the actor's bounding box.
func (a Actor) Rect() core.RectF {
	return core.NewRectF(a.X, a.Y, a.Width, a.Height)
}

// Obstacle is a ground obstacle scrolling towards the actor.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
}

// Rect returns the obstacle's bounding box.
func (o Obstacle) Rect() core.RectF {
	return core.NewRectF(o.X, o.Y, o.Width, o.Height)
}

// Cloud is background decoration.
type Cloud struct {
	X, Y float64
}

// Particle is a puff of landing dust that fades out.
type Particle struct {
	X, Y  float64
	Size  float64
	Speed float64
	Alpha float64
}

// StepReport is what one tick tells the display layer.
type StepReport struct {
	Score   int
	Level   int
	Speed   float64
	LevelUp bool // Level increased this tick
	Ended   bool // The actor hit an obstacle this tick
}

// World is the simulation context for a single run. It is owned by one
// controller and mutated only through Start, Jump and Step.
type World struct {
	cfg         config.DinoConfig
	rng         RandomSource
	progression *config.Progression

	phase     Phase
	actor     Actor
	obstacles []Obstacle
	clouds    []Cloud
	particles []Particle

	score     int
	level     int
	speed     float64
	countdown int // Ticks until the next obstacle
	tick      int
}

// NewWorld creates an idle world. Call Start to begin a run.
func NewWorld(cfg config.DinoConfig, rng RandomSource) *World {
	w := &World{
		cfg:         cfg,
		rng:         rng,
		progression: config.NewProgression(cfg),
		phase:       PhaseIdle,
	}
	w.resetRun()
	return w
}

// resetRun puts every per-run value back to its starting point.
func (w *World) resetRun() {
	size := w.cfg.Player.Size
	w.actor = Actor{
		X:        w.cfg.Player.X,
		Y:        w.GroundY() - size,
		Width:    size,
		Height:   size,
		Grounded: true,
	}
	w.obstacles = nil
	w.clouds = nil
	w.particles = nil
	w.score = 0
	w.level = 1
	w.speed = w.cfg.Physics.BaseSpeed
	w.tick = 0
	w.countdown = w.nextInterval()
}

// Start begins a fresh run from Idle or Ended. It is a no-op while running.
func (w *World) Start() {
	if w.phase == PhaseRunning {
		return
	}
	w.resetRun()
	w.phase = PhaseRunning
}

// Jump launches the actor. It is accepted only while running and grounded,
// and reports whether it was.
func (w *World) Jump() bool {
	if w.phase != PhaseRunning || !w.actor.Grounded {
		return false
	}
	w.actor.DY = w.cfg.Physics.JumpImpulse
	w.actor.Grounded = false
	return true
}

// Step advances the world by one tick. Outside of PhaseRunning it only
// reports the current values.
func (w *World) Step() StepReport {
	if w.phase != PhaseRunning {
		return w.report(false, false)
	}

	w.applyGravity()
	w.updateSpawner()

	levelUp, hit := w.advanceObstacles()
	if hit {
		w.phase = PhaseEnded
		return w.report(levelUp, true)
	}

	w.advanceDecor()
	w.tick++

	return w.report(levelUp, false)
}

func (w *World) report(levelUp, ended bool) StepReport {
	return StepReport{
		Score:   w.score,
		Level:   w.level,
		Speed:   w.speed,
		LevelUp: levelUp,
		Ended:   ended,
	}
}

// applyGravity integrates velocity and position and lands the actor.
func (w *World) applyGravity() {
	a := &w.actor
	a.DY += w.cfg.Physics.Gravity
	a.Y += a.DY

	ground := w.GroundY()
	if a.Y+a.Height < ground {
		return
	}

	a.Y = ground - a.Height
	a.DY = 0
	a.Grounded = true

	if w.rng.Float64() < w.cfg.Decor.DustChance {
		w.particles = append(w.particles, Particle{
			X:     a.X,
			Y:     a.Y + a.Height - 5,
			Size:  w.cfg.Decor.DustSize,
			Speed: w.cfg.Decor.DustSpeed,
			Alpha: 1,
		})
	}
}

// GroundY is the world Y of the ground surface.
func (w *World) GroundY() float64 {
	return w.cfg.Field.Height - w.cfg.Field.GroundHeight
}

// Phase returns the current lifecycle phase.
func (w *World) Phase() Phase {
	return w.phase
}

// Actor returns a copy of the runner.
func (w *World) Actor() Actor {
	return w.actor
}

// Obstacles returns the live obstacles, left to right in spawn order.
func (w *World) Obstacles() []Obstacle {
	return w.obstacles
}

// Clouds returns the live clouds.
func (w *World) Clouds() []Cloud {
	return w.clouds
}

// Particles returns the live dust particles.
func (w *World) Particles() []Particle {
	return w.particles
}

// Score returns the number of obstacles cleared this run.
func (w *World) Score() int {
	return w.score
}

// Level starts at 1 and grows with score.
func (w *World) Level() int {
	return w.level
}

// Speed is the current scroll speed in units per tick.
func (w *World) Speed() float64 {
	return w.speed
}

// Tick returns the number of completed ticks this run.
func (w *World) Tick() int {
	return w.tick
}

// Config returns the tuning the world was built with.
func (w *World) Config() config.DinoConfig {
	return w.cfg
}
