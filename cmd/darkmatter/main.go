// darkmatter is a terminal side-scrolling shooter where dark matter is
// health, ammo, and shield fuel all at once.
//
// Usage:
//
//	darkmatter play              - Play the campaign
//	darkmatter levels            - List available levels
//	darkmatter simulate          - Run a headless simulation
//	darkmatter results           - Show recorded run results
//	darkmatter board             - Interactive best-runs board
//	darkmatter serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.darkmatter/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "darkmatter",
	Short: "Dark Matter Keeper - a side-scrolling shooter for your terminal",
	Long: `Dark Matter Keeper is a terminal shooter where one resource rules
everything: dark matter pays for shields, shots, and survival. Keep enough
of it banked to clear each level's exit gate.

Available commands:
  play      - Play the campaign
  levels    - List available levels
  simulate  - Run a headless deterministic simulation
  results   - View recorded run results
  board     - Interactive best-runs board
  serve     - Start SSH server for remote play

Examples:
  darkmatter play
  darkmatter play --difficulty hard
  darkmatter simulate --ticks 3600 --seed 42
  darkmatter results --level 1
  darkmatter serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = level default)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.darkmatter/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
}
