// Package maze is a rectangular grid of cells joined by carved passages. It
// implements mazepath.Grid.
package maze

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/pdrpinto/mazepath"
)

var (
	// ErrOutOfBounds is returned when a carve would leave the grid.
	ErrOutOfBounds = errors.New("maze: out of bounds")
	// ErrInvalidSize is returned for a non-positive width or height.
	ErrInvalidSize = errors.New("maze: invalid size")
)

type passages uint8

func bit(d mazepath.Direction) passages { return 1 << uint(d) }

// Grid stores, per cell, the set of directions with a carved passage.
type Grid struct {
	width  int
	height int
	cells  []passages
}

// New returns a width x height grid with every wall standing.
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Grid{width: width, height: height, cells: make([]passages, width*height)}, nil
}

// Open returns a grid with every interior wall carved.
func Open(width, height int) (*Grid, error) {
	g, err := New(width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := mazepath.Position{X: x, Y: y}
			if x+1 < width {
				g.carve(p, mazepath.East)
			}
			if y+1 < height {
				g.carve(p, mazepath.South)
			}
		}
	}
	return g, nil
}

// Random carves each interior wall independently with probability density.
// It does not guarantee connectivity.
func Random(width, height int, r *rand.Rand, density float64) (*Grid, error) {
	g, err := New(width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := mazepath.Position{X: x, Y: y}
			if x+1 < width && r.Float64() < density {
				g.carve(p, mazepath.East)
			}
			if y+1 < height && r.Float64() < density {
				g.carve(p, mazepath.South)
			}
		}
	}
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) contains(p mazepath.Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

func (g *Grid) index(p mazepath.Position) int { return p.Y*g.width + p.X }

// IsOpen reports whether a passage leads from p in direction d. Positions or
// moves outside the grid are never open.
func (g *Grid) IsOpen(p mazepath.Position, d mazepath.Direction) bool {
	if !g.contains(p) || !g.contains(p.Step(d)) {
		return false
	}
	return g.cells[g.index(p)]&bit(d) != 0
}

// Carve removes the wall between p and its neighbor in direction d, on both sides.
func (g *Grid) Carve(p mazepath.Position, d mazepath.Direction) error {
	if !g.contains(p) || !g.contains(p.Step(d)) {
		return fmt.Errorf("%w: carve %v from %v in %dx%d", ErrOutOfBounds, d, p, g.width, g.height)
	}
	g.carve(p, d)
	return nil
}

// Wall restores the wall between p and its neighbor in direction d.
func (g *Grid) Wall(p mazepath.Position, d mazepath.Direction) error {
	if !g.contains(p) || !g.contains(p.Step(d)) {
		return fmt.Errorf("%w: wall %v from %v in %dx%d", ErrOutOfBounds, d, p, g.width, g.height)
	}
	q := p.Step(d)
	g.cells[g.index(p)] &^= bit(d)
	g.cells[g.index(q)] &^= bit(d.Opposite())
	return nil
}

func (g *Grid) carve(p mazepath.Position, d mazepath.Direction) {
	q := p.Step(d)
	g.cells[g.index(p)] |= bit(d)
	g.cells[g.index(q)] |= bit(d.Opposite())
}
