package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/refexa/darkmatter/internal/storage"
)

var (
	flagResultLevel int
	flagResultLimit int
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recorded run results",
	Long: `Display recorded runs from the results database.

Without flags, shows the most recent runs across all levels. With
--level, shows the best won runs of that level ranked by banked
dark matter.

Examples:
  darkmatter results
  darkmatter results --level 1
  darkmatter results --level 2 --limit 25`,
	Run: runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagResultLevel, "level", 0, "Show best runs for this level ID (0 = recent runs)")
	resultsCmd.Flags().IntVar(&flagResultLimit, "limit", 10, "Maximum rows to show")
}

func runResults(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagResultLevel > 0 {
		showTopResults(store, flagResultLevel)
		return
	}
	showRecentResults(store)
}

func showTopResults(store *storage.Store, levelID int) {
	results, err := store.TopResults(levelID, flagResultLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best runs - level %d\n\n", levelID)

	if len(results) == 0 {
		fmt.Println("No won runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'darkmatter play' and clear the level to record one.")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-10s  %s\n", "Rank", "Dark Matter", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-12s  %-10s  %s\n", "----", "-----------", "----------", "----")

	for i, r := range results {
		fmt.Printf("  %-4d  %-12.1f  %-10s  %s\n",
			i+1, r.DarkMatter, r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, bestErr := store.BestDarkMatter(levelID); bestErr == nil && best > 0 {
		fmt.Println()
		fmt.Printf("Best: %.1f dark matter\n", best)
	}
}

func showRecentResults(store *storage.Store) {
	results, err := store.RecentResults(flagResultLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent runs")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-6s  %-7s  %-12s  %-10s  %-8s  %s\n", "Level", "Outcome", "Dark Matter", "Difficulty", "Ticks", "Date")
	fmt.Printf("  %-6s  %-7s  %-12s  %-10s  %-8s  %s\n", "-----", "-------", "-----------", "----------", "-----", "----")

	for _, r := range results {
		fmt.Printf("  %-6d  %-7s  %-12.1f  %-10s  %-8d  %s\n",
			r.LevelID, r.Outcome, r.DarkMatter, r.Difficulty, r.DurationTicks,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
