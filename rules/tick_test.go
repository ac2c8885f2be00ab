package rules

import (
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func runningGame(opts ...Option) *Game {
	opts = append([]Option{WithRand(rand.New(rand.NewSource(1)))}, opts...)
	g := NewGame(opts...)
	g.Start()
	return g
}

func TestGameTickIgnoredUnlessRunning(t *testing.T) {
	g := NewGame(WithRand(rand.New(rand.NewSource(1))))
	before := g.Snapshot()

	require.Equal(t, OutcomeNone, g.Tick())
	require.Equal(t, before, g.Snapshot())

	g.Start()
	g.Pause()
	require.Equal(t, OutcomeNone, g.Tick())
	require.Equal(t, PhasePaused, g.Phase())
	require.Equal(t, before.Snake, g.Snapshot().Snake)
}

func TestGameTickAdvancesFiveCells(t *testing.T) {
	g := runningGame(WithFood(Point{X: 0, Y: 0}))

	for i := 0; i < 5; i++ {
		require.Equal(t, OutcomeAdvanced, g.Tick())
	}

	require.Equal(t, Point{X: 15, Y: 10}, g.Head())
	require.Equal(t, PhaseRunning, g.Phase())
	require.Equal(t, 0, g.Score())
	require.Len(t, g.Snapshot().Snake, InitialLength)
	require.Equal(t, int64(5), g.Snapshot().Turn)
}

func TestGameTickWallCollision(t *testing.T) {
	tests := []struct {
		body []Point
		dir  Direction
	}{
		{[]Point{{X: 19, Y: 10}, {X: 18, Y: 10}, {X: 17, Y: 10}}, DirectionRight},
		{[]Point{{X: 0, Y: 10}, {X: 1, Y: 10}, {X: 2, Y: 10}}, DirectionLeft},
		{[]Point{{X: 5, Y: 0}, {X: 5, Y: 1}, {X: 5, Y: 2}}, DirectionUp},
		{[]Point{{X: 5, Y: 19}, {X: 5, Y: 18}, {X: 5, Y: 17}}, DirectionDown},
	}
	for _, test := range tests {
		g := runningGame(WithSnake(test.body, test.dir), WithFood(Point{X: 10, Y: 10}))

		require.Equal(t, OutcomeWallCollision, g.Tick())
		require.Equal(t, PhaseOver, g.Phase())
		require.Equal(t, test.body, g.Snapshot().Snake, "snake is left for inspection")
	}
}

func TestGameTickSelfCollision(t *testing.T) {
	body := []Point{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}
	g := runningGame(WithSnake(body, DirectionUp), WithFood(Point{X: 0, Y: 0}))

	require.True(t, g.SetDirection(DirectionRight))
	require.Equal(t, OutcomeSelfCollision, g.Tick())
	require.Equal(t, PhaseOver, g.Phase())
	require.Equal(t, body, g.Snapshot().Snake)
}

func TestGameTickTailCountsAsCollision(t *testing.T) {
	body := []Point{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
	}
	g := runningGame(WithSnake(body, DirectionUp), WithFood(Point{X: 0, Y: 0}))

	g.SetDirection(DirectionRight)
	require.Equal(t, OutcomeSelfCollision, g.Tick())
}

func TestGameTickSnakeEats(t *testing.T) {
	g := runningGame(WithFood(Point{X: 11, Y: 10}))

	require.Equal(t, OutcomeAteFood, g.Tick())

	s := g.Snapshot()
	require.Equal(t, ScorePerFood, s.Score)
	require.Len(t, s.Snake, InitialLength+1)
	require.Equal(t, Point{X: 11, Y: 10}, s.Snake[0])
	require.Equal(t, Point{X: 8, Y: 10}, s.Snake[len(s.Snake)-1], "tail is kept when eating")
	require.False(t, containsPoint(s.Snake, s.Food))
	require.Equal(t, InitialSpeed, s.Speed)
}

func TestGameTickSpeedUpAtFifty(t *testing.T) {
	g := runningGame(WithFood(Point{X: 11, Y: 10}))
	g.score = 40

	require.Equal(t, OutcomeAteFood, g.Tick())
	require.Equal(t, 50, g.Score())
	require.Equal(t, 90, g.Speed())
}

func TestGameTickSpeedFloor(t *testing.T) {
	g := runningGame(WithFood(Point{X: 11, Y: 10}))
	g.score = 90
	g.speed = MinSpeed

	g.Tick()
	require.Equal(t, 100, g.Score())
	require.Equal(t, MinSpeed, g.Speed())
}

func TestGameTickSpeedSchedule(t *testing.T) {
	g := runningGame(WithTileCount(200), WithFood(Point{X: 101, Y: 100}))

	lastSpeed := g.Speed()
	for i := 1; i <= 40; i++ {
		g.food = g.Head().Add(g.Direction())
		require.Equal(t, OutcomeAteFood, g.Tick())

		score := g.Score()
		require.Equal(t, i*ScorePerFood, score)
		require.True(t, g.Speed() <= lastSpeed, "speed must never increase")
		require.True(t, g.Speed() >= MinSpeed && g.Speed() <= InitialSpeed)

		steps := score / SpeedUpEvery
		want := InitialSpeed - steps*SpeedStep
		if want < MinSpeed {
			want = MinSpeed
		}
		require.Equal(t, want, g.Speed(), "score %d", score)
		lastSpeed = g.Speed()
	}
}

func TestGameTickBoardFull(t *testing.T) {
	body := []Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	g := runningGame(WithTileCount(2), WithSnake(body, DirectionUp), WithFood(Point{X: 1, Y: 0}))
	require.Equal(t, Point{X: 1, Y: 0}, g.Snapshot().Food)

	require.True(t, g.SetDirection(DirectionRight))
	require.Equal(t, OutcomeBoardFull, g.Tick())
	require.Equal(t, PhaseOver, g.Phase())
	require.Equal(t, ScorePerFood, g.Score())
	require.Len(t, g.Snapshot().Snake, 4)
}

func TestGameTickAfterOverIsIgnored(t *testing.T) {
	body := []Point{{X: 19, Y: 10}, {X: 18, Y: 10}, {X: 17, Y: 10}}
	g := runningGame(WithSnake(body, DirectionRight), WithFood(Point{X: 0, Y: 0}))
	require.Equal(t, OutcomeWallCollision, g.Tick())

	before := g.Snapshot()
	require.Equal(t, OutcomeNone, g.Tick())
	g.Start()
	g.Resume()
	require.False(t, g.SetDirection(DirectionUp))
	require.Equal(t, before, g.Snapshot())
}

func checkInvariants(t *testing.T, g *Game) {
	s := g.Snapshot()
	seen := map[Point]bool{}
	for _, p := range s.Snake {
		if !InBounds(p, s.TileCount) || seen[p] {
			spew.Dump(s)
			t.Fatalf("invalid snake segment %v", p)
		}
		seen[p] = true
	}
	require.True(t, s.Score >= 0 && s.Score%ScorePerFood == 0)
	require.True(t, s.Speed >= MinSpeed && s.Speed <= InitialSpeed)
}

func TestGameInvariantsRandomPlay(t *testing.T) {
	directions := []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := runningGame(WithRand(rng), WithTileCount(8))

		for g.Phase() == PhaseRunning {
			lastScore, lastSpeed := g.Score(), g.Speed()
			g.SetDirection(directions[rng.Intn(len(directions))])
			g.Tick()
			checkInvariants(t, g)
			require.True(t, g.Score() >= lastScore)
			require.True(t, g.Speed() <= lastSpeed)
		}
	}
}
