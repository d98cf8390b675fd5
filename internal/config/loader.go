package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDino loads the Dino Runner configuration.
// Search order: customPath -> ~/.arcade/configs/dino.yaml -> ./configs/dino.yaml -> embedded default.
// Files are decoded on top of the defaults, so a file only needs the keys it changes.
func LoadDino(customPath string) (DinoConfig, error) {
	if customPath != "" {
		cfg, err := decodeDinoFile(customPath)
		if err != nil {
			return DefaultDinoConfig(), err
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("dino.yaml"), filepath.Join("configs", "dino.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := decodeDinoFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg := DefaultDinoConfig()
	if err := yaml.Unmarshal(defaultDinoYAML, &cfg); err != nil {
		return DefaultDinoConfig(), nil
	}
	return cfg, nil
}

func decodeDinoFile(path string) (DinoConfig, error) {
	cfg := DefaultDinoConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns ~/.arcade/configs/<filename>, or "" without a home directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate rejects tunings the simulation cannot run with.
func (c DinoConfig) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= c.Field.GroundHeight {
		errs = append(errs, errors.New("field must be wider than 0 and taller than the ground"))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, errors.New("physics.gravity must be positive"))
	}
	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, errors.New("physics.jump_impulse must be negative"))
	}
	if c.Player.Size <= 0 {
		errs = append(errs, errors.New("player.size must be positive"))
	}
	o := c.Obstacles
	if o.MinWidth <= 0 || o.MaxWidth < o.MinWidth {
		errs = append(errs, errors.New("obstacles width range is invalid"))
	}
	if o.MinHeight <= 0 || o.MaxHeight < o.MinHeight {
		errs = append(errs, errors.New("obstacles height range is invalid"))
	}
	if o.MinInterval <= 0 || o.MaxInterval < o.MinInterval {
		errs = append(errs, errors.New("obstacles interval range is invalid"))
	}
	if c.Difficulty.Enabled && c.Difficulty.LevelEvery <= 0 {
		errs = append(errs, errors.New("difficulty.level_every must be positive"))
	}
	return errors.Join(errs...)
}

// ApplyDinoPreset adjusts the loaded config for a difficulty preset.
func ApplyDinoPreset(cfg *DinoConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Physics.BaseSpeed = 4
		cfg.Obstacles.MinInterval += 20
		cfg.Obstacles.MaxInterval += 20
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Physics.BaseSpeed = 7
		cfg.Obstacles.MinInterval = max(40, cfg.Obstacles.MinInterval-20)
		cfg.Obstacles.MaxInterval = max(cfg.Obstacles.MinInterval, cfg.Obstacles.MaxInterval-30)
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}
