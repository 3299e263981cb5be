package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdrpinto/mazepath"
)

// ErrSyntax is wrapped by every Parse error.
var ErrSyntax = errors.New("maze: syntax error")

// Text layout: a maze of W x H cells is 2H+1 lines of 2W+1 characters.
// Cell (x,y) sits at column 2x+1 of line 2y+1. The character east of a cell
// and the one below it are its east and south walls: '#' is a wall, ' ' or
// '.' is a passage. A cell may hold 'S' or 'G' to mark start and goal.
const (
	wallChar  = '#'
	openChar  = ' '
	startChar = 'S'
	goalChar  = 'G'
)

// Layout is a parsed maze with its optional endpoint markers.
type Layout struct {
	Grid     *Grid
	Start    mazepath.Position
	Goal     mazepath.Position
	HasStart bool
	HasGoal  bool
}

// Load parses the maze file at path.
func Load(path string) (Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return Layout{}, fmt.Errorf("open maze: %w", err)
	}
	defer f.Close()
	layout, err := Parse(f)
	if err != nil {
		return Layout{}, fmt.Errorf("%s: %w", path, err)
	}
	return layout, nil
}

// Parse reads the text layout.
func Parse(r io.Reader) (Layout, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return Layout{}, fmt.Errorf("read maze: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	if len(lines) < 3 || len(lines)%2 == 0 {
		return Layout{}, fmt.Errorf("%w: need an odd number of lines (at least 3), got %d", ErrSyntax, len(lines))
	}
	columns := len(lines[0])
	if columns < 3 || columns%2 == 0 {
		return Layout{}, fmt.Errorf("%w: line 1: need an odd width (at least 3), got %d", ErrSyntax, columns)
	}
	for i, line := range lines {
		if len(line) != columns {
			return Layout{}, fmt.Errorf("%w: line %d: width %d, want %d", ErrSyntax, i+1, len(line), columns)
		}
	}

	g, err := New(columns/2, len(lines)/2)
	if err != nil {
		return Layout{}, err
	}
	layout := Layout{Grid: g}

	for y := 0; y < g.height; y++ {
		row := lines[2*y+1]
		for x := 0; x < g.width; x++ {
			p := mazepath.Position{X: x, Y: y}
			switch c := row[2*x+1]; c {
			case startChar:
				if layout.HasStart {
					return Layout{}, fmt.Errorf("%w: line %d: second start marker", ErrSyntax, 2*y+2)
				}
				layout.Start, layout.HasStart = p, true
			case goalChar:
				if layout.HasGoal {
					return Layout{}, fmt.Errorf("%w: line %d: second goal marker", ErrSyntax, 2*y+2)
				}
				layout.Goal, layout.HasGoal = p, true
			case openChar, '.':
			default:
				return Layout{}, fmt.Errorf("%w: line %d column %d: unexpected %q in cell", ErrSyntax, 2*y+2, 2*x+2, c)
			}

			if x+1 < g.width {
				open, err := passageChar(row[2*x+2])
				if err != nil {
					return Layout{}, fmt.Errorf("%w: line %d column %d", err, 2*y+2, 2*x+3)
				}
				if open {
					g.carve(p, mazepath.East)
				}
			}
			if y+1 < g.height {
				open, err := passageChar(lines[2*y+2][2*x+1])
				if err != nil {
					return Layout{}, fmt.Errorf("%w: line %d column %d", err, 2*y+3, 2*x+2)
				}
				if open {
					g.carve(p, mazepath.South)
				}
			}
		}
	}
	return layout, nil
}

func passageChar(c byte) (bool, error) {
	switch c {
	case wallChar:
		return false, nil
	case openChar, '.':
		return true, nil
	}
	return false, fmt.Errorf("%w: unexpected %q in wall", ErrSyntax, c)
}

// String renders the grid in the text layout without markers.
func (g *Grid) String() string {
	return Layout{Grid: g}.String()
}

// String renders the layout, including start and goal markers.
func (l Layout) String() string {
	g := l.Grid
	columns := 2*g.width + 1
	out := make([][]byte, 2*g.height+1)
	for i := range out {
		out[i] = []byte(strings.Repeat(string(wallChar), columns))
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := mazepath.Position{X: x, Y: y}
			out[2*y+1][2*x+1] = openChar
			if g.IsOpen(p, mazepath.East) {
				out[2*y+1][2*x+2] = openChar
			}
			if g.IsOpen(p, mazepath.South) {
				out[2*y+2][2*x+1] = openChar
			}
		}
	}
	if l.HasStart {
		out[2*l.Start.Y+1][2*l.Start.X+1] = startChar
	}
	if l.HasGoal {
		out[2*l.Goal.Y+1][2*l.Goal.X+1] = goalChar
	}

	var b strings.Builder
	for _, line := range out {
		b.Write(line)
		b.WriteByte('\n')
	}
	return b.String()
}
