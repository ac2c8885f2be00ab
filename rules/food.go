package rules

// Rand is the random source used for food placement. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// PlaceFood picks a uniformly random cell of an n×n board that is not in
// occupied. It returns false when every cell is occupied.
//
// Cells are drawn and redrawn until a free one turns up. On a crowded board
// that can take a while, so after n*n*2 misses the free cells are enumerated
// and one of them is picked instead.
func PlaceFood(rng Rand, n int32, occupied []Point) (Point, bool) {
	cells := int(n) * int(n)
	taken := occupiedSet(n, occupied)
	if cells == 0 || len(taken) >= cells {
		return Point{}, false
	}

	for attempt := 0; attempt < cells*2; attempt++ {
		p := Point{
			X: int32(rng.Intn(int(n))),
			Y: int32(rng.Intn(int(n))),
		}
		if _, ok := taken[p]; !ok {
			return p, true
		}
	}

	open := unoccupiedPoints(n, taken)
	if len(open) == 0 {
		return Point{}, false
	}
	return open[rng.Intn(len(open))], true
}

// occupiedSet collects the distinct on-board points of occupied.
func occupiedSet(n int32, occupied []Point) map[Point]struct{} {
	taken := make(map[Point]struct{}, len(occupied))
	for _, p := range occupied {
		if InBounds(p, n) {
			taken[p] = struct{}{}
		}
	}
	return taken
}

func unoccupiedPoints(n int32, taken map[Point]struct{}) []Point {
	candidates := make([]Point, 0, int(n*n)-len(taken))
	for x := int32(0); x < n; x++ {
		for y := int32(0); y < n; y++ {
			p := Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				candidates = append(candidates, p)
			}
		}
	}
	return candidates
}
