package rules

// TileCount is the width and height of the board in cells.
const TileCount int32 = 20

// InBounds reports whether p lies on an n×n board.
func InBounds(p Point, n int32) bool {
	return p.X >= 0 && p.X < n && p.Y >= 0 && p.Y < n
}

func containsPoint(points []Point, p Point) bool {
	for _, o := range points {
		if o.Equal(p) {
			return true
		}
	}
	return false
}
