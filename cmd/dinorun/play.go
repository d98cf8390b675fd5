package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dinorun/internal/config"
	"github.com/vovakirdan/dinorun/internal/core"
	"github.com/vovakirdan/dinorun/internal/games/dino"
	"github.com/vovakirdan/dinorun/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagName       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Dino Runner",
	Long: `Start a run.

Controls:
  Space/Up/W - Jump
  P          - Pause
  R          - Play again (after game over)
  L          - Leaderboard (after game over)
  Q/Ctrl+C   - Quit

When a run ends you are asked for a name and the run is posted to the
scores service, or kept locally if the service is unavailable.

Difficulty options:
  easy   - Slower start, more room between obstacles
  normal - Config as loaded
  hard   - Faster start, obstacles packed tighter
  fixed  - No level progression

Examples:
  dinorun play
  dinorun play --name Ann --difficulty hard
  dinorun play --config ./my-dino.yaml
  dinorun play --offline`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name to pre-fill at game over")
}

// loadGameConfig loads the YAML config and applies the difficulty preset.
func loadGameConfig() (config.DinoConfig, error) {
	cfg, err := config.LoadDino(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyDinoPreset(&cfg, preset)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logOut, closeLog := openLogFile()
	defer closeLog()
	logger := newLogger(logOut, "dinorun")

	adapter, closeStore, err := openAdapter(logger)
	if err != nil {
		return err
	}
	defer closeStore()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	name := flagName
	if !cmd.Flags().Changed("name") {
		name = appCfg.PlayerName
	}

	logger.Info("starting run", "difficulty", flagDifficulty, "offline", appCfg.Offline, "endpoint", appCfg.Endpoint)

	if err := tui.Run(tui.Options{
		Game:    dino.New(gameCfg),
		Adapter: adapter,
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		PlayerName: name,
		Logger:     logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
