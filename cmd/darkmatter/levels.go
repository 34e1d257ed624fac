package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/refexa/darkmatter/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the levels the campaign will run through, in order.

Custom levels placed in ~/.darkmatter/levels or passed via --levels
replace the built-in set.`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory with custom level YAML files")
}

func runLevels(cmd *cobra.Command, args []string) {
	levels, err := level.Load(flagLevelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Campaign levels:")
	fmt.Println()
	fmt.Printf("  %-4s  %-22s  %8s  %8s  %s\n", "ID", "Name", "Length", "Segs", "Finish DM")
	fmt.Printf("  %-4s  %-22s  %8s  %8s  %s\n", "--", "----", "------", "----", "---------")

	for _, lv := range levels {
		fmt.Printf("  %-4d  %-22s  %8.0f  %8d  %9.0f\n",
			lv.ID, lv.Name, lv.Length(), len(lv.Segments), lv.FinishRequirement())
	}

	fmt.Println()
	fmt.Println("Run 'darkmatter play' to start from the first level.")
}
