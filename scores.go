package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/stickerclimb/common"
	"github.com/milk9111/stickerclimb/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	Long: `Display the best finished runs, wins first, then by level reached,
stickers collected and time taken.

Examples:
  stickerclimb scores
  stickerclimb scores --limit 3`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer store.Close()

	runs, err := store.BestRuns(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Best Runs")
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-8s  %-8s  %-8s  %-10s  %s\n", "Rank", "Result", "Level", "Stickers", "Time", "Seed", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-8s  %-8s  %-8s  %-10s  %s\n", "----", "------", "-----", "--------", "----", "----", "----")
	for i, r := range runs {
		result := "lost"
		if r.Won {
			result = "won"
		}
		fmt.Fprintf(out, "  %-4d  %-6s  %-8s  %-8d  %-8s  %-10d  %s\n",
			i+1,
			result,
			fmt.Sprintf("%d/%d", r.Level, common.TotalLevels),
			r.Stickers,
			formatFrames(r.Frames),
			r.Seed,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return nil
}

// formatFrames renders a frame count as m:ss at the fixed tick rate.
func formatFrames(frames int) string {
	secs := frames / common.FPS
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
