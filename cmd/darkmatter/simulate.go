package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/refexa/darkmatter/internal/config"
	"github.com/refexa/darkmatter/internal/core"
	"github.com/refexa/darkmatter/internal/game"
	"github.com/refexa/darkmatter/internal/level"
	"github.com/refexa/darkmatter/internal/registry"
)

var (
	flagSimTicks  int
	flagSimEvery  int
	flagSimEvents bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless deterministic simulation",
	Long: `Run the campaign simulation without a terminal UI and report
snapshots and events. The same seed always produces the same run, which
makes this useful for tuning levels and checking balance changes.

Examples:
  darkmatter simulate --ticks 3600
  darkmatter simulate --ticks 7200 --seed 42 --every 300
  darkmatter simulate --segment 2 --events
  darkmatter simulate --config ./my-tuning.yaml --difficulty hard`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Number of ticks to simulate")
	simulateCmd.Flags().IntVar(&flagSimEvery, "every", 600, "Snapshot log interval in ticks")
	simulateCmd.Flags().BoolVar(&flagSimEvents, "events", false, "Log every simulation event")
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simulateCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory with custom level YAML files")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard, fixed")
	simulateCmd.Flags().IntVar(&flagSegment, "segment", 0, "Start at segment index (0 = level start)")
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "simulate",
	})

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game.SetConfigPath(flagConfig)
	game.SetLevelsDir(flagLevelsDir)
	game.SetDifficultyPreset(preset)
	game.SetStartSegment(flagSegment)

	g, err := registry.Create("campaign")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	sim, ok := g.(*game.Game)
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: campaign game has unexpected type")
		os.Exit(1)
	}
	if loadErr := sim.Err(); loadErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", loadErr)
		os.Exit(1)
	}

	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	sim.Reset(cfg)

	logger.Info("starting run",
		"level", sim.Level().Name,
		"ticks", flagSimTicks,
		"seed", flagSeed,
		"difficulty", flagDifficulty,
	)

	in := core.NewInputFrame()
	for i := 0; i < flagSimTicks; i++ {
		sim.Step(in)

		if flagSimEvents {
			for _, ev := range sim.Events() {
				logger.Info("event",
					"tick", sim.Ticks(),
					"kind", ev.Kind.String(),
					"role", ev.Role.String(),
					"amount", fmt.Sprintf("%.2f", ev.Amount),
				)
			}
		}

		if flagSimEvery > 0 && sim.Ticks()%flagSimEvery == 0 {
			snap := sim.Snapshot()
			logger.Info("snapshot",
				"tick", snap.Tick,
				"segment", snap.Segment,
				"scroll", fmt.Sprintf("%.1f", snap.ScrollS),
				"dm", fmt.Sprintf("%.1f", snap.DarkMatter),
				"shield", fmt.Sprintf("%.1f", snap.Shield),
				"alive", snap.Alive,
			)
		}

		if sim.Outcome() != level.StateRunning {
			break
		}
	}

	snap := sim.Snapshot()
	logger.Info("run finished",
		"tick", snap.Tick,
		"outcome", sim.Outcome().String(),
		"segment", snap.Segment,
		"dm", fmt.Sprintf("%.1f", snap.DarkMatter),
		"shield", fmt.Sprintf("%.1f", snap.Shield),
	)
}
