package core

// GameState is a snapshot of the session visible to frontends.
type GameState struct {
	Score     int  // Current round score
	Playing   bool // Physics is active
	RoundOver bool // Physics is frozen and the overlay is shown
}

// StepResult is returned after each simulated frame.
type StepResult struct {
	State      GameState
	RoundEnded bool // The round ended during this frame
}
