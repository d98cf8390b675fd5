package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dinorun/internal/server"
	"github.com/vovakirdan/dinorun/internal/storage"
)

var flagAPIAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Run the scores service",
	Long: `Start the HTTP scores service the game posts runs to.

Endpoints:
  POST /api/scores          - Save a run {playerName, score, level}
  GET  /api/scores?limit=N  - Top runs, highest first (default 10, max 100)
  GET  /api/health          - Liveness probe

Examples:
  dinorun api
  dinorun api --addr :8080 --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagAPIAddr, "addr", "", "Listen address (default :3000)")
}

func runAPI(cmd *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, "dinorun-api")

	addr := appCfg.APIAddr
	if cmd.Flags().Changed("addr") {
		addr = flagAPIAddr
	}

	store, err := storage.Open(appCfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := server.New(server.Options{
		Addr:   addr,
		Store:  store,
		Logger: logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("scores API: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}
