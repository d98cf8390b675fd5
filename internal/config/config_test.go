package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dino.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultDinoConfigIsValid(t *testing.T) {
	cfg := DefaultDinoConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Physics.Gravity != 0.55 || cfg.Physics.JumpImpulse != -12.5 {
		t.Errorf("physics = %+v", cfg.Physics)
	}
	if cfg.Obstacles.MinInterval != 80 || cfg.Obstacles.MaxInterval != 150 {
		t.Errorf("intervals = %d..%d", cfg.Obstacles.MinInterval, cfg.Obstacles.MaxInterval)
	}
	if cfg.Difficulty.LevelEvery != 10 {
		t.Errorf("level_every = %d, want 10", cfg.Difficulty.LevelEvery)
	}
}

func TestLoadDinoPartialFile(t *testing.T) {
	path := writeFile(t, "physics:\n  base_speed: 9\n")

	cfg, err := LoadDino(path)
	if err != nil {
		t.Fatalf("LoadDino() error: %v", err)
	}
	if cfg.Physics.BaseSpeed != 9 {
		t.Errorf("base_speed = %v, want 9", cfg.Physics.BaseSpeed)
	}
	// Keys not in the file keep their defaults.
	if cfg.Physics.Gravity != 0.55 || cfg.Field.Width != 800 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadDinoErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.yaml")},
		{"bad yaml", writeFile(t, "physics: [unclosed\n")},
		{"invalid values", writeFile(t, "physics:\n  jump_impulse: 5\n")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadDino(tc.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if cfg.Validate() != nil {
				t.Error("the fallback config should be the valid default")
			}
		})
	}
}

func TestLoadDinoWithoutFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadDino("")
	if err != nil {
		t.Fatalf("LoadDino() error: %v", err)
	}
	if cfg != DefaultDinoConfig() {
		t.Errorf("embedded config differs from defaults:\n%+v\n%+v", cfg, DefaultDinoConfig())
	}
}

func TestLoadDinoSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	work := t.TempDir()
	t.Chdir(work)

	mustWrite := func(path, body string) {
		t.Helper()
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	mustWrite(filepath.Join(work, "configs", "dino.yaml"), "physics:\n  base_speed: 6\n")
	cfg, _ := LoadDino("")
	if cfg.Physics.BaseSpeed != 6 {
		t.Errorf("./configs not used: base_speed = %v", cfg.Physics.BaseSpeed)
	}

	mustWrite(filepath.Join(home, ".arcade", "configs", "dino.yaml"), "physics:\n  base_speed: 8\n")
	cfg, _ = LoadDino("")
	if cfg.Physics.BaseSpeed != 8 {
		t.Errorf("user config should win: base_speed = %v", cfg.Physics.BaseSpeed)
	}
}

func TestApplyDinoPreset(t *testing.T) {
	base := DefaultDinoConfig()

	easy := base
	ApplyDinoPreset(&easy, DifficultyEasy)
	if easy.Physics.BaseSpeed != 4 || easy.Obstacles.MinInterval != 100 || easy.Obstacles.MaxInterval != 170 {
		t.Errorf("easy = %+v %+v", easy.Physics, easy.Obstacles)
	}

	hard := base
	ApplyDinoPreset(&hard, DifficultyHard)
	if hard.Physics.BaseSpeed != 7 || hard.Obstacles.MinInterval != 60 || hard.Obstacles.MaxInterval != 120 {
		t.Errorf("hard = %+v %+v", hard.Physics, hard.Obstacles)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset invalid: %v", err)
	}

	fixed := base
	ApplyDinoPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	normal := base
	ApplyDinoPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should not change the default config")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"easy", "normal", "hard", "fixed"} {
		if ParsePreset(s) != DifficultyPreset(s) {
			t.Errorf("ParsePreset(%q) = %q", s, ParsePreset(s))
		}
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown presets should map to empty")
	}
}

func TestProgression(t *testing.T) {
	p := NewProgression(DefaultDinoConfig())
	if !p.IsEnabled() {
		t.Fatal("progression should be enabled by default")
	}

	for score := 0; score <= 30; score++ {
		want := score > 0 && score%10 == 0
		if got := p.LevelUp(score); got != want {
			t.Errorf("LevelUp(%d) = %v, want %v", score, got, want)
		}
	}
	if p.SpeedStep() != 1 {
		t.Errorf("SpeedStep() = %v, want 1", p.SpeedStep())
	}

	cfg := DefaultDinoConfig()
	cfg.Difficulty.Enabled = false
	if NewProgression(cfg).LevelUp(10) {
		t.Error("disabled progression must never level up")
	}
}

func TestLoadAppConfig(t *testing.T) {
	cfg, err := LoadAppConfig()
	if err != nil {
		t.Fatalf("LoadAppConfig() error: %v", err)
	}
	if cfg.HTTPTimeout != 5*time.Second || cfg.APIAddr != ":3000" {
		t.Errorf("defaults = %+v", cfg)
	}

	t.Setenv("DINORUN_HTTP_TIMEOUT", "250ms")
	t.Setenv("DINORUN_OFFLINE", "1")
	t.Setenv("DINORUN_PLAYER", "Ann")
	cfg, err = LoadAppConfig()
	if err != nil {
		t.Fatalf("LoadAppConfig() error: %v", err)
	}
	if cfg.HTTPTimeout != 250*time.Millisecond || !cfg.Offline || cfg.PlayerName != "Ann" {
		t.Errorf("env not applied: %+v", cfg)
	}

	t.Setenv("DINORUN_HTTP_TIMEOUT", "soon")
	if _, err := LoadAppConfig(); err == nil {
		t.Error("expected an error for a bad duration")
	}
}
