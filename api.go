package mazepath

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/pdrpinto/mazepath/internal/ctxlog"
)

var (
	// ErrInvalidGrid is returned for a nil grid or one with a non-positive extent.
	ErrInvalidGrid = errors.New("invalid grid")
	// ErrOutOfBounds is returned when start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")
)

// Heuristic estimates the remaining cost from a cell to the goal. It must
// never overestimate, or returned paths may not be shortest.
type Heuristic func(from Position, to Position) int

// Manhattan is |dx| + |dy|, admissible and consistent on a 4-connected unit-cost grid.
func Manhattan(from Position, to Position) int {
	return abs(from.X-to.X) + abs(from.Y-to.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Result contains the outcome of a search.
type Result struct {
	// Path runs from start to goal inclusive. It is nil when the goal is unreachable.
	Path          []Position
	TotalCost     int
	ExpandedNodes int
	Found         bool
	// Trace is nil unless WithTrace was given.
	Trace *Trace
}

// Options defines parameters for the search.
type Options struct {
	Heuristic       Heuristic
	Trace           bool
	NumberOfWorkers int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithHeuristic replaces the Manhattan heuristic.
func WithHeuristic(heuristic Heuristic) Option {
	return func(options *Options) { options.Heuristic = heuristic }
}

// WithTrace makes the search record a per-cell Trace.
func WithTrace() Option {
	return func(options *Options) { options.Trace = true }
}

// WithWorkers specifies how many goroutines SearchBatch runs queries on.
// It has no effect on a single Search.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		Heuristic:       Manhattan,
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Heuristic == nil {
		searchOptions.Heuristic = Manhattan
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	return searchOptions
}

// Search finds a minimum-hop path from startNode to goalNode.
//
// An unreachable goal is not an error: the Result has Found false and a nil
// Path. Errors are only returned for an invalid grid, endpoints outside the
// grid, or a context that is already done. The search itself is not
// interruptible; ctx is consulted once up front and supplies the logger.
func Search(
	contextObject context.Context,
	graph Grid,
	startNode Position,
	goalNode Position,
	options ...Option,
) (Result, error) {
	if err := contextObject.Err(); err != nil {
		return Result{}, err
	}
	stepper, err := NewStepper(graph, startNode, goalNode, options...)
	if err != nil {
		return Result{}, err
	}

	logger := ctxlog.FromContext(contextObject)
	logger.Debug("search started",
		"start", startNode, "goal", goalNode,
		"width", graph.Width(), "height", graph.Height())

	result := stepper.Result()

	logger.Debug("search finished",
		"found", result.Found, "cost", result.TotalCost, "expanded", result.ExpandedNodes)
	return result, nil
}

func validate(graph Grid, startNode, goalNode Position) error {
	if graph == nil {
		return fmt.Errorf("%w: nil grid", ErrInvalidGrid)
	}
	if graph.Width() < 1 || graph.Height() < 1 {
		return fmt.Errorf("%w: extent %dx%d", ErrInvalidGrid, graph.Width(), graph.Height())
	}
	if !InBounds(graph, startNode) {
		return fmt.Errorf("%w: start %v outside %dx%d", ErrOutOfBounds, startNode, graph.Width(), graph.Height())
	}
	if !InBounds(graph, goalNode) {
		return fmt.Errorf("%w: goal %v outside %dx%d", ErrOutOfBounds, goalNode, graph.Width(), graph.Height())
	}
	return nil
}
