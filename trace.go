package mazepath

// CellTrace is the last recorded search state of one cell.
type CellTrace struct {
	G int
	H int
	F int

	Predecessor    Position
	HasPredecessor bool

	InFrontier  bool
	Finalized   bool
	InFinalPath bool

	// Discovered is the expansion step during which the cell was first pushed
	// (0 for the start cell). ExpandedAt is the step that finalized it, or 0.
	Discovered int
	ExpandedAt int
}

// Trace records every cell a search touched. The search only writes it; it is
// read by viewers after (or between) steps.
type Trace struct {
	cells map[Position]*CellTrace
	order []Position
}

func newTrace() *Trace {
	return &Trace{cells: make(map[Position]*CellTrace)}
}

// Len returns the number of cells touched.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Cell returns the trace entry for p.
func (t *Trace) Cell(p Position) (CellTrace, bool) {
	if t == nil {
		return CellTrace{}, false
	}
	cell, ok := t.cells[p]
	if !ok {
		return CellTrace{}, false
	}
	return *cell, true
}

// Positions returns the touched cells in discovery order.
func (t *Trace) Positions() []Position {
	if t == nil {
		return nil
	}
	return append([]Position(nil), t.order...)
}

// Frontier returns the cells still waiting in the frontier, in discovery order.
func (t *Trace) Frontier() []Position {
	return t.filter(func(c *CellTrace) bool { return c.InFrontier })
}

// Finalized returns the closed cells, in discovery order.
func (t *Trace) Finalized() []Position {
	return t.filter(func(c *CellTrace) bool { return c.Finalized })
}

// FinalPath returns the cells marked as part of the reconstructed path, in
// discovery order. Use Result.Path for the ordered path.
func (t *Trace) FinalPath() []Position {
	return t.filter(func(c *CellTrace) bool { return c.InFinalPath })
}

// Clone returns a deep copy.
func (t *Trace) Clone() *Trace {
	if t == nil {
		return nil
	}
	c := &Trace{
		cells: make(map[Position]*CellTrace, len(t.cells)),
		order: append([]Position(nil), t.order...),
	}
	for p, cell := range t.cells {
		copied := *cell
		c.cells[p] = &copied
	}
	return c
}

func (t *Trace) filter(keep func(*CellTrace) bool) []Position {
	if t == nil {
		return nil
	}
	var out []Position
	for _, p := range t.order {
		if keep(t.cells[p]) {
			out = append(out, p)
		}
	}
	return out
}

// The recording methods below are nil-safe so the search can call them
// unconditionally when tracing is off.

func (t *Trace) push(p Position, g, h, step int, pred Position, hasPred bool) {
	if t == nil {
		return
	}
	cell, ok := t.cells[p]
	if !ok {
		cell = &CellTrace{Discovered: step}
		t.cells[p] = cell
		t.order = append(t.order, p)
	}
	cell.G, cell.H, cell.F = g, h, g+h
	cell.Predecessor, cell.HasPredecessor = pred, hasPred
	cell.InFrontier = true
}

func (t *Trace) expand(p Position, step int) {
	if t == nil {
		return
	}
	cell, ok := t.cells[p]
	if !ok {
		return
	}
	cell.InFrontier = false
	cell.Finalized = true
	cell.ExpandedAt = step
}

func (t *Trace) markPath(path []Position) {
	if t == nil {
		return
	}
	for _, p := range path {
		if cell, ok := t.cells[p]; ok {
			cell.InFinalPath = true
		}
	}
}
