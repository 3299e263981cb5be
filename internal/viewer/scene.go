// Package viewer turns a solved maze session into a flat list of shapes that
// any drawing backend can paint.
package viewer

import (
	"fmt"
	"image/color"

	"github.com/pdrpinto/mazepath"
	"github.com/pdrpinto/mazepath/internal/session"
)

// Palette colors, one per cell state.
var (
	ColorBackground = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColorWall       = color.RGBA{0x00, 0x00, 0x00, 0xff}
	ColorFrontier   = color.RGBA{0x89, 0xb4, 0xfa, 0xff}
	ColorClosed     = color.RGBA{0xd0, 0xd0, 0xd8, 0xff}
	ColorPath       = color.RGBA{0xf9, 0xe2, 0xaf, 0xff}
	ColorStart      = color.RGBA{0xa6, 0xe3, 0xa1, 0xff}
	ColorGoal       = color.RGBA{0xf3, 0x8b, 0xa8, 0xff}
	ColorMarker     = color.RGBA{0xd2, 0x0f, 0x39, 0xff}
)

// Rect is a filled rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float32
	Color      color.RGBA
}

// Line is a wall segment in screen pixels.
type Line struct {
	X0, Y0, X1, Y1 float32
	Color          color.RGBA
}

// Label is overlay text anchored at its top-left pixel.
type Label struct {
	Text string
	X, Y int
}

// Scene is everything to paint for one frame, back to front.
type Scene struct {
	Background color.RGBA
	Cells      []Rect
	Walls      []Line
	Labels     []Label
	Marker     *Rect
}

// Layout maps grid cells to pixels.
type Layout struct {
	CellSize float32
	OffsetX  float32
	OffsetY  float32
	Stroke   float32
}

// FitLayout centers a gridWidth x gridHeight maze in the window. A positive
// cellSize is used as is; zero picks the largest size that fits.
func FitLayout(gridWidth, gridHeight, windowWidth, windowHeight, cellSize int) Layout {
	size := cellSize
	if size <= 0 {
		size = max(min(windowWidth/max(gridWidth, 1), windowHeight/max(gridHeight, 1)), 1)
	}
	return Layout{
		CellSize: float32(size),
		OffsetX:  float32(windowWidth-gridWidth*size) / 2,
		OffsetY:  float32(windowHeight-gridHeight*size) / 2,
		Stroke:   max(float32(size)/12, 1),
	}
}

// Origin returns the top-left pixel of cell p.
func (l Layout) Origin(p mazepath.Position) (x, y float32) {
	return l.OffsetX + float32(p.X)*l.CellSize, l.OffsetY + float32(p.Y)*l.CellSize
}

// Build lays out the session. marker may be nil. overlay adds "f/g/h" labels
// for every traced cell.
func Build(s *session.Session, marker *session.Marker, layout Layout, overlay bool) Scene {
	scene := Scene{Background: ColorBackground}
	g := s.Grid

	onPath := make(map[mazepath.Position]bool, len(s.Result.Path))
	for _, p := range s.Result.Path {
		onPath[p] = true
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := mazepath.Position{X: x, Y: y}
			if c, ok := cellColor(s, p, onPath); ok {
				px, py := layout.Origin(p)
				scene.Cells = append(scene.Cells, Rect{X: px, Y: py, W: layout.CellSize, H: layout.CellSize, Color: c})
			}
			if overlay {
				if cell, ok := s.Result.Trace.Cell(p); ok {
					px, py := layout.Origin(p)
					scene.Labels = append(scene.Labels, Label{
						Text: fmt.Sprintf("%d/%d/%d", cell.F, cell.G, cell.H),
						X:    int(px) + 2,
						Y:    int(py) + 2,
					})
				}
			}
		}
	}

	scene.Walls = walls(g, layout)

	if marker != nil {
		if p, ok := marker.Position(); ok {
			px, py := layout.Origin(p)
			inset := layout.CellSize / 4
			scene.Marker = &Rect{
				X: px + inset, Y: py + inset,
				W: layout.CellSize - 2*inset, H: layout.CellSize - 2*inset,
				Color: ColorMarker,
			}
		}
	}
	return scene
}

func cellColor(s *session.Session, p mazepath.Position, onPath map[mazepath.Position]bool) (color.RGBA, bool) {
	switch {
	case p == s.Start:
		return ColorStart, true
	case p == s.Goal:
		return ColorGoal, true
	case onPath[p]:
		return ColorPath, true
	}
	cell, ok := s.Result.Trace.Cell(p)
	switch {
	case !ok:
		return color.RGBA{}, false
	case cell.InFrontier:
		return ColorFrontier, true
	case cell.Finalized:
		return ColorClosed, true
	}
	return color.RGBA{}, false
}

// walls emits the outer border plus every closed east and south wall.
func walls(g mazepath.Grid, layout Layout) []Line {
	left, top := layout.OffsetX, layout.OffsetY
	right := left + float32(g.Width())*layout.CellSize
	bottom := top + float32(g.Height())*layout.CellSize

	lines := []Line{
		{X0: left, Y0: top, X1: right, Y1: top, Color: ColorWall},
		{X0: left, Y0: bottom, X1: right, Y1: bottom, Color: ColorWall},
		{X0: left, Y0: top, X1: left, Y1: bottom, Color: ColorWall},
		{X0: right, Y0: top, X1: right, Y1: bottom, Color: ColorWall},
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := mazepath.Position{X: x, Y: y}
			px, py := layout.Origin(p)
			if x+1 < g.Width() && !g.IsOpen(p, mazepath.East) {
				ex := px + layout.CellSize
				lines = append(lines, Line{X0: ex, Y0: py, X1: ex, Y1: py + layout.CellSize, Color: ColorWall})
			}
			if y+1 < g.Height() && !g.IsOpen(p, mazepath.South) {
				sy := py + layout.CellSize
				lines = append(lines, Line{X0: px, Y0: sy, X1: px + layout.CellSize, Y1: sy, Color: ColorWall})
			}
		}
	}
	return lines
}
