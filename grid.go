package mazepath

import "fmt"

// Position identifies a grid cell by column (X) and row (Y).
type Position struct {
	X int
	Y int
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Step returns the position one cell away in direction d. It does not check bounds.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Direction is one of the four grid moves.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every direction in expansion order.
var Directions = [...]Direction{North, South, East, West}

// Delta returns the column and row offset of a move in direction d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Grid is the connectivity capability a search runs over.
// IsOpen reports whether a passage leads from p in direction d. It must be
// symmetric and must not change while a search is running.
type Grid interface {
	Width() int
	Height() int
	IsOpen(p Position, d Direction) bool
}

// InBounds reports whether p lies inside the grid.
func InBounds(grid Grid, p Position) bool {
	return p.X >= 0 && p.X < grid.Width() && p.Y >= 0 && p.Y < grid.Height()
}

// neighbor returns the cell reached from p in direction d when the move stays
// inside the grid and the grid reports an open passage.
func neighbor(grid Grid, p Position, d Direction) (Position, bool) {
	switch d {
	case North:
		if p.Y <= 0 {
			return Position{}, false
		}
	case South:
		if p.Y >= grid.Height()-1 {
			return Position{}, false
		}
	case East:
		if p.X >= grid.Width()-1 {
			return Position{}, false
		}
	case West:
		if p.X <= 0 {
			return Position{}, false
		}
	default:
		return Position{}, false
	}
	if !grid.IsOpen(p, d) {
		return Position{}, false
	}
	return p.Step(d), true
}
