package rules

// Outcome describes what a single tick did to the game.
type Outcome string

const (
	// OutcomeNone is returned when the tick was ignored because the game was
	// not running
	OutcomeNone Outcome = "none"
	// OutcomeAdvanced is when the snake moved one cell without eating
	OutcomeAdvanced Outcome = "advanced"
	// OutcomeAteFood is when the snake moved onto the food and grew
	OutcomeAteFood Outcome = "ate-food"
	// OutcomeWallCollision is when the snake ran off the board
	OutcomeWallCollision Outcome = "wall-collision"
	// OutcomeSelfCollision is when the snake ran into its own body
	OutcomeSelfCollision Outcome = "self-collision"
	// OutcomeBoardFull is when the snake ate and no empty cell was left for
	// the next piece of food
	OutcomeBoardFull Outcome = "board-full"
)

// Ended reports whether the outcome finished the game.
func (o Outcome) Ended() bool {
	switch o {
	case OutcomeWallCollision, OutcomeSelfCollision, OutcomeBoardFull:
		return true
	}
	return false
}
