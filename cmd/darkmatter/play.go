package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/refexa/darkmatter/internal/config"
	"github.com/refexa/darkmatter/internal/core"
	"github.com/refexa/darkmatter/internal/game"
	"github.com/refexa/darkmatter/internal/level"
	"github.com/refexa/darkmatter/internal/platform/tui"
	"github.com/refexa/darkmatter/internal/registry"
	"github.com/refexa/darkmatter/internal/storage"
)

var (
	flagConfig     string
	flagLevelsDir  string
	flagDifficulty string
	flagSegment    int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start the campaign in the current terminal.

Controls:
  W/A/S/D    - Steer the ship (arrow keys work too)
  Space      - Fire
  1/2        - Select bullet / laser
  P/Esc      - Pause
  R          - Restart (after the run ends)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Faster regen, weaker hazards, richer blue bottles
  normal - Baseline balance
  hard   - Half starting shield, harder hazards, nastier red bottles
  fixed  - Baseline balance, no adjustments

Examples:
  darkmatter play
  darkmatter play --difficulty hard
  darkmatter play --segment 2 --seed 7
  darkmatter play --config ./my-tuning.yaml --levels ./my-levels`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory with custom level YAML files")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagSegment, "segment", 0, "Start at segment index (0 = level start)")
}

func runPlay(cmd *cobra.Command, args []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Terminal size for the runtime config
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Show the level picker
	levels, err := level.Load(flagLevelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}
	selection, cfg, err := tui.RunLevelSelector(cfg, levels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if selection == nil {
		// User backed out
		return
	}

	// Hooks must be set before the factory runs
	game.SetConfigPath(flagConfig)
	game.SetLevelsDir(flagLevelsDir)
	game.SetDifficultyPreset(preset)
	game.SetStartLevel(selection.Level)
	game.SetStartSegment(flagSegment)

	g, err := registry.Create("campaign")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage
		store = nil
	}

	runErr := tui.Run(g, store, cfg, flagDifficulty)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
