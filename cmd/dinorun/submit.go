package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dinorun/internal/scores"
)

var submitCmd = &cobra.Command{
	Use:   "submit <name> <score> <level>",
	Short: "Save a run by hand",
	Long: `Save a finished run the same way the game does: to the scores service,
or locally when it cannot be reached. The name is trimmed and cut to 20
characters; negative scores count as 0 and levels below 1 as 1.

Examples:
  dinorun submit Ann 42 3
  dinorun submit "Big Bob" 17 2 --offline`,
	Args: cobra.ExactArgs(3),
	RunE: runSubmit,
}

func runSubmit(cmd *cobra.Command, args []string) error {
	score, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("score must be a whole number: %q", args[1])
	}
	level, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("level must be a whole number: %q", args[2])
	}

	logger := newLogger(os.Stderr, "dinorun")
	adapter, closeStore, err := openAdapter(logger)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout())
	defer cancel()

	res := adapter.Save(ctx, args[0], score, level)
	if !res.Success {
		return fmt.Errorf("saving run: %w", res.Err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Saved %s: score %d, level %d (%s)\n", res.Record.PlayerName, res.Record.Score, res.Record.Level, res.Source)
	if res.Evicted {
		fmt.Fprintf(out, "Note: the run is below the local top %d and was not kept.\n", scores.LocalCapacity)
	}
	return nil
}
