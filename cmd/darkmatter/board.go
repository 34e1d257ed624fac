package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/refexa/darkmatter/internal/level"
	"github.com/refexa/darkmatter/internal/platform/tui"
	"github.com/refexa/darkmatter/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Interactive best-runs board",
	Long: `Open the interactive best-runs board. Use tab or the arrow keys
to switch between levels.

Examples:
  darkmatter board
  darkmatter board --db ./results.db`,
	Run: runBoard,
}

func init() {
	boardCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory with custom level YAML files")
}

func runBoard(cmd *cobra.Command, args []string) {
	levels, err := level.Load(flagLevelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.RunScoreboard(store, levels, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running board: %v\n", runErr)
		os.Exit(1)
	}
}
