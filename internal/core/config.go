package core

// RuntimeConfig contains configuration passed to the session at initialization.
// The session uses this to size the terminal view and for deterministic simulation.
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

// FrameDelta returns the fixed frame duration in seconds.
func (c RuntimeConfig) FrameDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a run.
// Returned by Session.State() to communicate status to the platform.
type GameState struct {
	Distance  int  // Distance travelled by the world edge
	Coins     int  // Wallet balance
	XP        int  // Experience balance
	Kills     int  // Enemies killed this run
	Health    int  // Current player health
	MaxHealth int  // Current player max health
	GameOver  bool // Whether the run has ended
	Paused    bool // Whether the run is paused
}

// StepResult is returned by Session.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// RunRecord summarizes a finished run for the history table.
type RunRecord struct {
	Distance   int
	Coins      int
	XP         int
	Kills      int
	DurationMs int64
}
