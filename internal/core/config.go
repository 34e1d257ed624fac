package core

// RuntimeConfig contains configuration passed to the simulation at
// initialization. Games use this to adapt to screen size and for
// deterministic replay.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the externally visible state of the simulation.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Remaining dark matter, rounded, doubles as the score
	GameOver bool // Whether the level ended (won or lost)
	Paused   bool // Whether the simulation is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
