package rules

// Tick advances a running game by one cell and reports what happened. Ticks
// on a game that is not running are ignored.
func (g *Game) Tick() Outcome {
	if g.phase != PhaseRunning {
		return OutcomeNone
	}

	g.direction = g.next
	g.turn++

	head := g.Head().Add(g.direction)

	// The snake is left as it was so the final position can be inspected.
	if !InBounds(head, g.tileCount) {
		g.phase = PhaseOver
		return OutcomeWallCollision
	}
	if containsPoint(g.snake, head) {
		g.phase = PhaseOver
		return OutcomeSelfCollision
	}

	g.snake = append([]Point{head}, g.snake...)

	if !head.Equal(g.food) {
		g.snake = g.snake[:len(g.snake)-1]
		return OutcomeAdvanced
	}

	g.eat()

	food, ok := PlaceFood(g.rng, g.tileCount, g.snake)
	if !ok {
		g.phase = PhaseOver
		return OutcomeBoardFull
	}
	g.food = food
	return OutcomeAteFood
}

func (g *Game) eat() {
	g.score += ScorePerFood
	if g.score%SpeedUpEvery == 0 && g.speed > MinSpeed {
		g.speed -= SpeedStep
		if g.speed < MinSpeed {
			g.speed = MinSpeed
		}
	}
}
