package core

// RuntimeConfig contains configuration passed to a game at initialization.
// The game uses it to size its viewport and to seed its RNG.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Scheduler ticks per second (default 60)
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

// GameState summarizes a running game for the platform.
type GameState struct {
	Mode    string  // Current top-level mode name
	Score   int     // Flowers collected this session
	Goal    int     // Flowers required for delivery
	Won     bool    // Whether the delivery has happened
	Elapsed float64 // Seconds spent in playing mode
	Jumps   int     // Jumps performed this session
}

// StepResult is returned by Game.Tick() after each simulation tick.
type StepResult struct {
	State GameState

	// Started is true on the tick a new session begins.
	Started bool

	// Completed is true only on the tick the delivery happens.
	Completed bool
}
