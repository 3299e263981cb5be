package session

import "github.com/pdrpinto/mazepath"

// Marker walks a path one cell every TicksPerCell ticks. It jumps from cell
// to cell with no in-between positions.
type Marker struct {
	path         []mazepath.Position
	ticksPerCell int
	index        int
	ticks        int
}

// NewMarker places a marker on the first cell of path.
func NewMarker(path []mazepath.Position, ticksPerCell int) *Marker {
	return &Marker{path: path, ticksPerCell: max(ticksPerCell, 1)}
}

// Tick advances the marker clock by one frame.
func (m *Marker) Tick() {
	if m.Done() {
		return
	}
	m.ticks++
	if m.ticks >= m.ticksPerCell {
		m.ticks = 0
		m.index++
	}
}

// Position returns the cell the marker is on. ok is false for an empty path.
func (m *Marker) Position() (p mazepath.Position, ok bool) {
	if len(m.path) == 0 {
		return mazepath.Position{}, false
	}
	return m.path[m.index], true
}

// Index is the marker's offset along the path.
func (m *Marker) Index() int { return m.index }

// Done reports whether the marker has reached the last cell.
func (m *Marker) Done() bool { return m.index >= len(m.path)-1 }

// Reset moves the marker back to the start of its path.
func (m *Marker) Reset() { m.index, m.ticks = 0, 0 }
