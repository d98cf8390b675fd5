// dinorun is an endless runner for the terminal with a shared leaderboard.
//
// Usage:
//
//	dinorun play                       - Play Dino Runner
//	dinorun scores                     - Show the leaderboard
//	dinorun submit <name> <score> <lv> - Save a run by hand
//	dinorun api                        - Run the scores service
//	dinorun serve                      - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.arcade/dinorun.db)
//	--endpoint <url>   - Scores service endpoint
//	--offline          - Never contact the scores service
//	--log-level <lvl>  - debug, info, warn or error
//
// Every setting can also come from the environment (DINORUN_*); flags win.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dinorun/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagEndpoint string
	flagOffline  bool
	flagLogLevel string

	appCfg config.AppConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dinorun",
	Short: "Dino Runner - jump the cacti in your terminal",
	Long: `Dino Runner is an endless runner for the terminal. Jump over the
obstacles, level up every 10 points and post your run to the leaderboard.
When the scores service cannot be reached, runs are kept on this machine.

Available commands:
  play     - Play a run
  scores   - View the leaderboard
  submit   - Save a run by hand
  api      - Run the scores service
  serve    - Start SSH server for remote play

Examples:
  dinorun play --name Ann
  dinorun scores --offline
  dinorun api --addr :3000
  dinorun serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: loadAppConfig,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the database (default ~/.arcade/dinorun.db)")
	rootCmd.PersistentFlags().StringVar(&flagEndpoint, "endpoint", "", "Scores service endpoint (default http://localhost:3000/api/scores)")
	rootCmd.PersistentFlags().BoolVar(&flagOffline, "offline", false, "Keep scores on this machine only")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadAppConfig reads the environment and applies flags given on the
// command line on top of it.
func loadAppConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if flags.Changed("endpoint") {
		cfg.Endpoint = flagEndpoint
	}
	if flags.Changed("offline") {
		cfg.Offline = flagOffline
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}

	appCfg = cfg
	return nil
}
