package rules

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func fullBoardExcept(n int32, free ...Point) []Point {
	var occupied []Point
	for x := int32(0); x < n; x++ {
		for y := int32(0); y < n; y++ {
			p := Point{X: x, Y: y}
			if !containsPoint(free, p) {
				occupied = append(occupied, p)
			}
		}
	}
	return occupied
}

func TestPlaceFoodEmptyBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		p, ok := PlaceFood(rng, 20, nil)
		require.True(t, ok)
		require.True(t, InBounds(p, 20), "food %v off the board", p)
	}
}

func TestPlaceFoodNeverOnOccupiedCell(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10000; i++ {
		free := []Point{{X: int32(rng.Intn(20)), Y: int32(rng.Intn(20))}}
		if i%2 == 0 {
			free = append(free, Point{X: int32(rng.Intn(20)), Y: int32(rng.Intn(20))})
		}
		occupied := fullBoardExcept(20, free...)

		p, ok := PlaceFood(rng, 20, occupied)
		require.True(t, ok)
		require.False(t, containsPoint(occupied, p), "trial %d placed food on %v", i, p)
		require.True(t, containsPoint(free, p))
	}
}

func TestPlaceFoodBoardFull(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, ok := PlaceFood(rng, 4, fullBoardExcept(4))
	require.False(t, ok)
}

func TestPlaceFoodIgnoresDuplicates(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	occupied := []Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	p, ok := PlaceFood(rng, 2, occupied)
	require.True(t, ok)
	require.Equal(t, Point{X: 1, Y: 1}, p)
}

func TestPlaceFoodDeterministic(t *testing.T) {
	body := []Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}
	a, _ := PlaceFood(rand.New(rand.NewSource(7)), 20, body)
	b, _ := PlaceFood(rand.New(rand.NewSource(7)), 20, body)
	require.Equal(t, a, b)
}

// missRand always lands on the same cell, forcing the enumeration fallback.
type missRand struct{ calls int }

func (m *missRand) Intn(n int) int {
	m.calls++
	return 0
}

func TestPlaceFoodFallsBackToEnumeration(t *testing.T) {
	rng := &missRand{}
	p, ok := PlaceFood(rng, 3, []Point{{X: 0, Y: 0}})
	require.True(t, ok)
	require.NotEqual(t, Point{X: 0, Y: 0}, p)
	require.Equal(t, 3*3*2*2+1, rng.calls)
}
