package core

// RuntimeConfig is handed to a game on every reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the snapshot the platform reads after each tick.
type GameState struct {
	Score    int
	Level    int
	Best     int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State   GameState
	LevelUp bool // Level increased during this tick
	Ended   bool // The run ended during this tick
}
