// Package config loads the Dino Runner tuning file (YAML) and the process
// settings (environment) used by the CLI, the TUI and the scores service.
package config

// DinoConfig contains all tuning for the Dino Runner simulation.
// Distances are world units: one unit is one pixel of the reference field.
type DinoConfig struct {
	Field      DinoField        `yaml:"field"`
	Physics    DinoPhysics      `yaml:"physics"`
	Player     DinoPlayer       `yaml:"player"`
	Obstacles  DinoObstacles    `yaml:"obstacles"`
	Decor      DinoDecor        `yaml:"decor"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DinoField is the size of the playfield.
type DinoField struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// DinoPhysics defines gravity, the jump and scrolling.
type DinoPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // Negative is up
	BaseSpeed   float64 `yaml:"base_speed"`
	SpeedStep   float64 `yaml:"speed_step"` // Added to speed on every level up
}

// DinoPlayer defines the actor box.
type DinoPlayer struct {
	X    float64 `yaml:"x"`
	Size float64 `yaml:"size"`
}

// DinoObstacles defines obstacle sizes and spawn pacing (in ticks).
type DinoObstacles struct {
	MinWidth    float64 `yaml:"min_width"`
	MaxWidth    float64 `yaml:"max_width"`
	MinHeight   int     `yaml:"min_height"`
	MaxHeight   int     `yaml:"max_height"`
	MinInterval int     `yaml:"min_interval"`
	MaxInterval int     `yaml:"max_interval"`
}

// DinoDecor defines clouds and landing dust. None of it affects scoring.
type DinoDecor struct {
	CloudEvery int     `yaml:"cloud_every"` // Ticks between clouds
	CloudSpeed float64 `yaml:"cloud_speed"`
	CloudWidth float64 `yaml:"cloud_width"`
	CloudMinY  float64 `yaml:"cloud_min_y"`
	CloudMaxY  float64 `yaml:"cloud_max_y"`
	DustChance float64 `yaml:"dust_chance"` // Probability of dust on each landing tick
	DustSize   float64 `yaml:"dust_size"`
	DustSpeed  float64 `yaml:"dust_speed"`
	DustFade   float64 `yaml:"dust_fade"` // Alpha lost per tick
}

// DifficultyConfig defines level progression.
type DifficultyConfig struct {
	Enabled    bool `yaml:"enabled"`
	LevelEvery int  `yaml:"level_every"` // Score points per level
}

// DifficultyPreset is a named adjustment applied on top of the loaded file.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values map to "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}
