package dino

import (
	"strings"
	"testing"

	"github.com/vovakirdan/dinorun/internal/config"
	"github.com/vovakirdan/dinorun/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func jumpEvery(n, ticks int) []core.InputFrame {
	frames := make([]core.InputFrame, ticks)
	for i := range frames {
		frames[i] = core.NewInputFrame()
		if i%n == 0 {
			frames[i].Set(core.ActionJump)
		}
	}
	return frames
}

func TestGameDeterminism(t *testing.T) {
	inputs := jumpEvery(37, 3000)

	play := func() (core.GameState, int) {
		g := New(config.DefaultDinoConfig())
		g.Reset(testRuntime(12345))
		var state core.GameState
		for _, in := range inputs {
			state = g.Step(in).State
			if state.GameOver {
				break
			}
		}
		return state, g.World().Tick()
	}

	s1, t1 := play()
	s2, t2 := play()
	if s1 != s2 || t1 != t2 {
		t.Errorf("same seed and inputs diverged: %+v@%d vs %+v@%d", s1, t1, s2, t2)
	}
}

func TestGamePauseFreezesWorld(t *testing.T) {
	g := New(config.DefaultDinoConfig())
	g.Reset(testRuntime(1))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("pause action should pause")
	}

	tick := g.World().Tick()
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.World().Tick() != tick {
		t.Error("world advanced while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause action should resume")
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := New(config.DefaultDinoConfig())
	g.Reset(testRuntime(3))

	w := g.World()
	w.obstacles = []Obstacle{{X: 60, Y: w.GroundY() - 60, Width: 30, Height: 60}}
	result := g.Step(core.NewInputFrame())
	if !result.Ended || !result.State.GameOver {
		t.Fatalf("expected game over, got %+v", result)
	}

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	g.Step(jump)
	if !g.State().GameOver {
		t.Error("jump must not leave the game over state")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	if g.State().GameOver || g.World().Phase() != PhaseRunning {
		t.Error("restart should start a new run")
	}
}

func TestGameTracksBest(t *testing.T) {
	g := New(config.DefaultDinoConfig())
	g.SetBest(7)
	g.Reset(testRuntime(5))
	if g.State().Best != 7 {
		t.Fatalf("best = %d, expected seeded 7", g.State().Best)
	}

	w := g.World()
	for i := 0; i < 9; i++ {
		w.obstacles = append(w.obstacles, Obstacle{X: -40, Width: 30, Height: 60})
	}
	g.Step(core.NewInputFrame())
	if g.State().Best != 9 {
		t.Errorf("best = %d, expected to follow score to 9", g.State().Best)
	}

	g.SetBest(3)
	if g.State().Best != 9 {
		t.Error("SetBest must not lower the best")
	}
}

func TestGameRender(t *testing.T) {
	g := New(config.DefaultDinoConfig())
	g.Reset(testRuntime(9))
	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame())
	}
	w := g.World()
	w.obstacles = append(w.obstacles, Obstacle{X: 400, Y: w.GroundY() - 60, Width: 30, Height: 60})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: ") {
		t.Errorf("HUD missing score: %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "Level: 1") {
		t.Errorf("HUD missing level: %q", screen.Row(0))
	}
	if !strings.ContainsRune(screen.Row(23), GroundChar) {
		t.Errorf("bottom row should be ground: %q", screen.Row(23))
	}
	if !strings.ContainsRune(screen.String(), DinoBody) {
		t.Error("dino not drawn")
	}
	if !strings.ContainsRune(screen.String(), ObstacleChar) {
		t.Error("obstacle not drawn")
	}

	w.obstacles = []Obstacle{{X: 60, Y: w.GroundY() - 60, Width: 30, Height: 60}}
	g.Step(core.NewInputFrame())
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over box missing")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := New(config.DefaultDinoConfig())
	g.Reset(testRuntime(2))
	g.Step(core.NewInputFrame())

	// Must not panic on degenerate sizes.
	for _, size := range [][2]int{{1, 1}, {10, 2}, {0, 0}} {
		g.Render(core.NewScreen(size[0], size[1]))
	}
}
