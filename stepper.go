package mazepath

import (
	"cmp"
	"container/heap"
	"slices"

	"github.com/pdrpinto/mazepath/internal"
)

// StepSnapshot exposes the per-iteration state of the search.
type StepSnapshot struct {
	Current   Position
	Expanded  bool
	Frontier  []Position
	Closed    []Position
	Done      bool
	Found     bool
	Path      []Position
	StepIndex int
}

// Stepper runs the search one expansion at a time. Search drives a Stepper to
// completion, so both produce identical results.
type Stepper struct {
	graph     Grid
	start     Position
	goal      Position
	heuristic Heuristic

	openSet   PriorityQueue
	closedSet map[Position]bool
	cameFrom  map[Position]Position
	gScore    map[Position]int
	trace     *Trace
	sequence  uint64

	stepCount int
	done      bool
	found     bool
	path      []Position
	totalCost int
}

// NewStepper validates the endpoints and seeds the frontier with the start cell.
func NewStepper(
	graph Grid,
	startNode Position,
	goalNode Position,
	options ...Option,
) (*Stepper, error) {
	if err := validate(graph, startNode, goalNode); err != nil {
		return nil, err
	}
	opts := applyOptions(options)

	s := &Stepper{
		graph:     graph,
		start:     startNode,
		goal:      goalNode,
		heuristic: opts.Heuristic,
		openSet:   make(PriorityQueue, 0),
		closedSet: make(map[Position]bool),
		cameFrom:  make(map[Position]Position),
		gScore:    map[Position]int{startNode: 0},
	}
	if opts.Trace {
		s.trace = newTrace()
	}

	heap.Init(&s.openSet)
	h := s.heuristic(startNode, goalNode)
	s.push(startNode, 0, h)
	s.trace.push(startNode, 0, h, 0, Position{}, false)
	return s, nil
}

func (s *Stepper) push(node Position, g, h int) {
	s.sequence++
	heap.Push(&s.openSet, &PriorityQueueItem{
		Node:     node,
		GScore:   g,
		HScore:   h,
		FCost:    g + h,
		Sequence: s.sequence,
	})
}

// popLive discards stale frontier entries and returns the next live one.
func (s *Stepper) popLive() (*PriorityQueueItem, bool) {
	for s.openSet.Len() > 0 {
		item := heap.Pop(&s.openSet).(*PriorityQueueItem)
		if item.GScore > s.gScore[item.Node] || s.closedSet[item.Node] {
			continue
		}
		return item, true
	}
	return nil, false
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done every further call returns the final snapshot.
func (s *Stepper) Step() StepSnapshot {
	if s.done {
		return s.snapshot(Position{}, false)
	}

	currentItem, ok := s.popLive()
	if !ok {
		s.done = true
		return s.snapshot(Position{}, false)
	}

	s.stepCount++
	current := currentItem.Node
	s.closedSet[current] = true
	s.trace.expand(current, s.stepCount)

	if current == s.goal {
		path, ok := internal.ReconstructPath(s.cameFrom, current, s.start)
		s.done = true
		if ok {
			s.found = true
			s.path = path
			s.totalCost = currentItem.GScore
			s.trace.markPath(path)
		}
		return s.snapshot(current, true)
	}

	for _, direction := range Directions {
		next, ok := neighbor(s.graph, current, direction)
		if !ok {
			continue
		}
		tentativeG := currentItem.GScore + 1
		if previousG, seen := s.gScore[next]; seen && tentativeG >= previousG {
			continue
		}
		s.gScore[next] = tentativeG
		s.cameFrom[next] = current
		// Only reachable with an inconsistent heuristic: reopen the cell.
		delete(s.closedSet, next)

		h := s.heuristic(next, s.goal)
		s.push(next, tentativeG, h)
		s.trace.push(next, tentativeG, h, s.stepCount, current, true)
	}

	return s.snapshot(current, true)
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool { return s.done }

// Trace returns a copy of the trace recorded so far, or nil when tracing is off.
func (s *Stepper) Trace() *Trace { return s.trace.Clone() }

// Result runs the search to completion and returns its outcome.
func (s *Stepper) Result() Result {
	for !s.done {
		s.Step()
	}
	return Result{
		Path:          slices.Clone(s.path),
		TotalCost:     s.totalCost,
		ExpandedNodes: s.stepCount,
		Found:         s.found,
		Trace:         s.trace.Clone(),
	}
}

func (s *Stepper) snapshot(current Position, expanded bool) StepSnapshot {
	return StepSnapshot{
		Current:   current,
		Expanded:  expanded,
		Frontier:  s.frontierPositions(),
		Closed:    sortedKeys(s.closedSet),
		Done:      s.done,
		Found:     s.found,
		Path:      slices.Clone(s.path),
		StepIndex: s.stepCount,
	}
}

func (s *Stepper) frontierPositions() []Position {
	live := make(map[Position]bool, len(s.openSet))
	for _, item := range s.openSet {
		if item.GScore == s.gScore[item.Node] && !s.closedSet[item.Node] {
			live[item.Node] = true
		}
	}
	return sortedKeys(live)
}

func sortedKeys(m map[Position]bool) []Position {
	out := make([]Position, 0, len(m))
	for p, ok := range m {
		if ok {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, comparePositions)
	return out
}

// comparePositions orders row-major.
func comparePositions(a, b Position) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}
