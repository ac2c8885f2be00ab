package rules

import "fmt"

// Point is a single cell on the board.
type Point struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// Equal checks if 2 points are the same x,y coordinate
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Add returns the point moved one step in direction d.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four directions a snake can travel in.
type Direction string

const (
	// DirectionUp moves towards y = 0
	DirectionUp Direction = "up"
	// DirectionDown moves towards y = TileCount-1
	DirectionDown Direction = "down"
	// DirectionLeft moves towards x = 0
	DirectionLeft Direction = "left"
	// DirectionRight moves towards x = TileCount-1
	DirectionRight Direction = "right"
)

// Delta returns the unit vector for the direction. Unknown directions have a
// zero delta.
func (d Direction) Delta() (int32, int32) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return d
}

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	dx, dy := d.Delta()
	return dx != 0 || dy != 0
}

// ParseDirection converts a case-sensitive direction name into a Direction.
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if !d.Valid() {
		return "", fmt.Errorf("rules: unknown direction %q", s)
	}
	return d, nil
}
