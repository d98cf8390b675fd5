package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dinorun/internal/platform/tui"
	"github.com/vovakirdan/dinorun/internal/scores"
)

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top 10 runs. Scores come from the scores service; when it
cannot be reached the runs saved on this machine are shown instead.

Examples:
  dinorun scores
  dinorun scores --offline
  dinorun scores --tui`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the leaderboard interactively")
}

func runScores(cmd *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, "dinorun")
	adapter, closeStore, err := openAdapter(logger)
	if err != nil {
		return err
	}
	defer closeStore()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunLeaderboard(adapter, width, height)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout())
	defer cancel()
	res := adapter.Load(ctx)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n  DINO RUNNER - HIGH SCORES (%s)\n", res.Source)
	if res.IsLocal() {
		fmt.Fprintf(out, "  %s\n", tui.OfflineBanner)
	}
	fmt.Fprintln(out)

	if len(res.Scores) == 0 {
		fmt.Fprintln(out, "  No scores recorded yet.")
		fmt.Fprintln(out)
		return nil
	}
	printScores(out, res.Scores)
	return nil
}

func printScores(out io.Writer, list []scores.RunResult) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  RANK\tPLAYER\tSCORE\tLEVEL\tDATE")
	fmt.Fprintln(w, "  ----\t------\t-----\t-----\t----")
	for i, s := range list {
		date := "-"
		if !s.Date.IsZero() {
			date = s.Date.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "  #%d\t%s\t%d\t%d\t%s\n", i+1, s.PlayerName, s.Score, s.Level, date)
	}
	w.Flush()
	fmt.Fprintln(out)
}
