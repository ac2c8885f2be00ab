package rules

// Phase is the lifecycle state of a game.
type Phase string

const (
	// PhaseIdle represents a game that has been reset but not started
	PhaseIdle Phase = "idle"
	// PhaseRunning represents a game that accepts ticks and direction changes
	PhaseRunning Phase = "running"
	// PhasePaused represents a running game that is frozen
	PhasePaused Phase = "paused"
	// PhaseOver represents a game that has ended, it stays over until reset
	PhaseOver Phase = "over"
)
