// Package termview draws a solved maze for the terminal.
package termview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdrpinto/mazepath"
	"github.com/pdrpinto/mazepath/internal/session"
)

const (
	colorWall     lipgloss.Color = "#6c7086"
	colorStart    lipgloss.Color = "#a6e3a1"
	colorGoal     lipgloss.Color = "#f38ba8"
	colorPath     lipgloss.Color = "#f9e2af"
	colorFrontier lipgloss.Color = "#89b4fa"
	colorClosed   lipgloss.Color = "#7f849c"
	colorText     lipgloss.Color = "#cdd6f4"
)

// Glyphs used for each cell state.
const (
	GlyphWall     = "#"
	GlyphStart    = "S"
	GlyphGoal     = "G"
	GlyphPath     = "*"
	GlyphFrontier = "o"
	GlyphClosed   = "."
	GlyphEmpty    = " "
)

// View holds the styles, bound to one lipgloss renderer.
type View struct {
	wall     lipgloss.Style
	start    lipgloss.Style
	goal     lipgloss.Style
	path     lipgloss.Style
	frontier lipgloss.Style
	closed   lipgloss.Style
	summary  lipgloss.Style
}

// New builds a view. A nil renderer uses lipgloss' default (stdout).
func New(r *lipgloss.Renderer) *View {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &View{
		wall:     r.NewStyle().Foreground(colorWall),
		start:    r.NewStyle().Foreground(colorStart).Bold(true),
		goal:     r.NewStyle().Foreground(colorGoal).Bold(true),
		path:     r.NewStyle().Foreground(colorPath).Bold(true),
		frontier: r.NewStyle().Foreground(colorFrontier),
		closed:   r.NewStyle().Foreground(colorClosed),
		summary:  r.NewStyle().Foreground(colorText).MarginTop(1),
	}
}

// Render draws the session's maze with its path and trace, followed by a
// summary line.
func (v *View) Render(s *session.Session) string {
	return v.Maze(s) + "\n" + v.Summary(s)
}

// Maze draws the grid: walls, then each cell by its most significant state
// (start, goal, path, frontier, closed).
func (v *View) Maze(s *session.Session) string {
	g := s.Grid
	onPath := make(map[mazepath.Position]bool, len(s.Result.Path))
	for _, p := range s.Result.Path {
		onPath[p] = true
	}
	wall := v.wall.Render(GlyphWall)
	fullRow := strings.Repeat(wall, 2*g.Width()+1)

	var b strings.Builder
	b.WriteString(fullRow)
	b.WriteByte('\n')
	for y := 0; y < g.Height(); y++ {
		var cells, below strings.Builder
		cells.WriteString(wall)
		below.WriteString(wall)
		for x := 0; x < g.Width(); x++ {
			p := mazepath.Position{X: x, Y: y}
			cells.WriteString(v.cell(s, p, onPath))

			if x+1 < g.Width() {
				cells.WriteString(v.passage(g, p, mazepath.East, onPath))
			} else {
				cells.WriteString(wall)
			}
			if y+1 < g.Height() {
				below.WriteString(v.passage(g, p, mazepath.South, onPath))
			} else {
				below.WriteString(wall)
			}
			below.WriteString(wall)
		}
		b.WriteString(cells.String())
		b.WriteByte('\n')
		b.WriteString(below.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (v *View) cell(s *session.Session, p mazepath.Position, onPath map[mazepath.Position]bool) string {
	switch {
	case p == s.Start:
		return v.start.Render(GlyphStart)
	case p == s.Goal:
		return v.goal.Render(GlyphGoal)
	case onPath[p]:
		return v.path.Render(GlyphPath)
	}
	cell, ok := s.Result.Trace.Cell(p)
	switch {
	case !ok:
		return GlyphEmpty
	case cell.InFrontier:
		return v.frontier.Render(GlyphFrontier)
	case cell.Finalized:
		return v.closed.Render(GlyphClosed)
	}
	return GlyphEmpty
}

// passage draws the wall slot between p and its neighbor in d.
func (v *View) passage(g mazepath.Grid, p mazepath.Position, d mazepath.Direction, onPath map[mazepath.Position]bool) string {
	if !g.IsOpen(p, d) {
		return v.wall.Render(GlyphWall)
	}
	if onPath[p] && onPath[p.Step(d)] {
		return v.path.Render(GlyphPath)
	}
	return GlyphEmpty
}

// Summary describes the search outcome in one line.
func (v *View) Summary(s *session.Session) string {
	r := s.Result
	var line string
	if r.Found {
		line = fmt.Sprintf("%v -> %v: %d steps, %d cells expanded", s.Start, s.Goal, r.TotalCost, r.ExpandedNodes)
	} else {
		line = fmt.Sprintf("%v -> %v: no path, %d cells expanded", s.Start, s.Goal, r.ExpandedNodes)
	}
	if r.Trace != nil {
		line += fmt.Sprintf(", %d touched, %d left in frontier", r.Trace.Len(), len(r.Trace.Frontier()))
	}
	return v.summary.Render(line)
}
