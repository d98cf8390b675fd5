package config

// Progression decides when a run levels up and by how much it speeds up.
type Progression struct {
	enabled   bool
	every     int
	speedStep float64
}

// NewProgression builds the level rules from the config.
func NewProgression(cfg DinoConfig) *Progression {
	return &Progression{
		enabled:   cfg.Difficulty.Enabled && cfg.Difficulty.LevelEvery > 0,
		every:     cfg.Difficulty.LevelEvery,
		speedStep: cfg.Physics.SpeedStep,
	}
}

// IsEnabled reports whether levels ever change.
func (p *Progression) IsEnabled() bool {
	return p.enabled
}

// LevelUp reports whether reaching score completes a level.
// It fires exactly once per multiple of LevelEvery because score grows by one.
func (p *Progression) LevelUp(score int) bool {
	return p.enabled && score > 0 && score%p.every == 0
}

// SpeedStep is the scroll speed gained per level.
func (p *Progression) SpeedStep() float64 {
	return p.speedStep
}
