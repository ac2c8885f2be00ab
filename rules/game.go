package rules

import (
	"math/rand"
	"time"

	uuid "github.com/satori/go.uuid"
)

const (
	// InitialLength is the number of segments a new snake has.
	InitialLength = 3
	// ScorePerFood is how much each piece of food is worth.
	ScorePerFood = 10
	// InitialSpeed is the tick interval of a new game, in milliseconds.
	InitialSpeed = 100
	// MinSpeed is the fastest the game will ever tick, in milliseconds.
	MinSpeed = 50
	// SpeedStep is how much the tick interval shrinks on each speed up.
	SpeedStep = 10
	// SpeedUpEvery is the score interval at which the game speeds up.
	SpeedUpEvery = 50
	// MinTileCount is the smallest board the default snake fits on.
	MinTileCount int32 = InitialLength + 1
)

// Game is the state of a single game session. A Game is not safe for
// concurrent use, the session package serialises all access to it.
type Game struct {
	id        string
	tileCount int32
	rng       Rand

	snake     []Point
	direction Direction
	next      Direction
	food      Point
	score     int
	speed     int
	phase     Phase
	turn      int64
}

// Option configures a new game.
type Option func(*gameOptions)

type gameOptions struct {
	rng       Rand
	tileCount int32
	snake     []Point
	direction Direction
	food      *Point
}

// WithRand sets the random source used to place food.
func WithRand(r Rand) Option {
	return func(o *gameOptions) { o.rng = r }
}

// WithTileCount sets the board size. Only tests use anything but TileCount.
// Without WithSnake the board is never smaller than MinTileCount.
func WithTileCount(n int32) Option {
	return func(o *gameOptions) { o.tileCount = n }
}

// WithSnake replaces the starting snake and its direction of travel.
func WithSnake(body []Point, d Direction) Option {
	return func(o *gameOptions) {
		o.snake = append([]Point(nil), body...)
		o.direction = d
	}
}

// WithFood places the first piece of food at p instead of a random cell.
func WithFood(p Point) Option {
	return func(o *gameOptions) { o.food = &p }
}

// NewGame creates a fresh game in the idle phase. The snake starts as three
// segments in a horizontal line in the middle of the board, heading right.
func NewGame(opts ...Option) *Game {
	o := &gameOptions{
		tileCount: TileCount,
		direction: DirectionRight,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if len(o.snake) == 0 {
		if o.tileCount < MinTileCount {
			o.tileCount = MinTileCount
		}
		center := o.tileCount / 2
		for i := int32(0); i < InitialLength; i++ {
			o.snake = append(o.snake, Point{X: center - i, Y: center})
		}
	}

	g := &Game{
		id:        uuid.NewV4().String(),
		tileCount: o.tileCount,
		rng:       o.rng,
		snake:     o.snake,
		direction: o.direction,
		next:      o.direction,
		speed:     InitialSpeed,
		phase:     PhaseIdle,
	}

	if o.food != nil && !containsPoint(g.snake, *o.food) {
		g.food = *o.food
	} else {
		g.food, _ = PlaceFood(g.rng, g.tileCount, g.snake)
	}
	return g
}

// ID is the unique id of this game.
func (g *Game) ID() string { return g.id }

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase { return g.phase }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Turn returns the number of ticks applied so far.
func (g *Game) Turn() int64 { return g.turn }

// Speed returns the current tick interval in milliseconds.
func (g *Game) Speed() int { return g.speed }

// Interval returns the current tick interval.
func (g *Game) Interval() time.Duration {
	return time.Duration(g.speed) * time.Millisecond
}

// Head returns the first segment of the snake.
func (g *Game) Head() Point { return g.snake[0] }

// Direction returns the committed direction, the one used by the last tick.
func (g *Game) Direction() Direction { return g.direction }

// NextDirection returns the buffered direction that the next tick will use.
func (g *Game) NextDirection() Direction { return g.next }

// Start moves an idle game into the running phase.
func (g *Game) Start() {
	if g.phase == PhaseIdle {
		g.phase = PhaseRunning
	}
}

// Pause freezes a running game.
func (g *Game) Pause() {
	if g.phase == PhaseRunning {
		g.phase = PhasePaused
	}
}

// Resume continues a paused game.
func (g *Game) Resume() {
	if g.phase == PhasePaused {
		g.phase = PhaseRunning
	}
}

// TogglePause pauses a running game or resumes a paused one.
func (g *Game) TogglePause() {
	switch g.phase {
	case PhaseRunning:
		g.phase = PhasePaused
	case PhasePaused:
		g.phase = PhaseRunning
	}
}

// SetDirection buffers d for the next tick. The request is dropped when the
// game is not running or when d would reverse the committed direction. The
// buffered direction is never the reference, otherwise two quick presses
// between ticks could turn the snake back onto itself.
func (g *Game) SetDirection(d Direction) bool {
	if g.phase != PhaseRunning || !d.Valid() {
		return false
	}
	if d == g.direction.Opposite() {
		return false
	}
	g.next = d
	return true
}

// Snapshot is a read-only copy of the game used for rendering.
type Snapshot struct {
	ID        string    `json:"id"`
	Turn      int64     `json:"turn"`
	TileCount int32     `json:"tileCount"`
	Snake     []Point   `json:"snake"`
	Direction Direction `json:"direction"`
	Food      Point     `json:"food"`
	Score     int       `json:"score"`
	Speed     int       `json:"speed"`
	Phase     Phase     `json:"phase"`
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		ID:        g.id,
		Turn:      g.turn,
		TileCount: g.tileCount,
		Snake:     append([]Point(nil), g.snake...),
		Direction: g.direction,
		Food:      g.food,
		Score:     g.score,
		Speed:     g.speed,
		Phase:     g.phase,
	}
}
