package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dinorun/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Dino Runner SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own run. The SSH user name pre-fills the
name prompt, and all sessions share one leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  dinorun serve                           # Listen on :23234 with auto-generated key
  dinorun serve --ssh :2222               # Listen on port 2222
  dinorun serve --host-key ./my_host_key  # Use specific host key
  dinorun serve --offline                 # Keep scores in the local database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default :23234)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, "dinorun-ssh")

	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	adapter, closeStore, err := openAdapter(logger)
	if err != nil {
		return err
	}
	defer closeStore()

	cfg := tui.SSHServerConfig{
		Address:     appCfg.SSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Game:        gameCfg,
	}
	if cmd.Flags().Changed("ssh") {
		cfg.Address = flagSSHAddr
	}

	server, err := tui.NewSSHServer(cfg, adapter, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting Dino Runner SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
