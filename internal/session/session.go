// Package session keeps a maze and its search result together, so a viewer
// never shows a path or trace computed for a different maze.
package session

import (
	"context"
	"fmt"

	"github.com/pdrpinto/mazepath"
	"github.com/pdrpinto/mazepath/internal/ctxlog"
)

// GridFactory builds a fresh grid, typically a new random maze.
type GridFactory func() (mazepath.Grid, error)

// Session is one maze, its endpoints and the search run over them.
type Session struct {
	Grid   mazepath.Grid
	Start  mazepath.Position
	Goal   mazepath.Position
	Result mazepath.Result

	options    []mazepath.Option
	generation int
}

// New searches grid from start to goal and returns the session.
func New(ctx context.Context, grid mazepath.Grid, start, goal mazepath.Position, options ...mazepath.Option) (*Session, error) {
	s := &Session{options: options}
	if err := s.replace(ctx, grid, start, goal); err != nil {
		return nil, err
	}
	return s, nil
}

// Generation counts how many grids the session has held, starting at 1.
func (s *Session) Generation() int { return s.generation }

// Regenerate swaps in a new grid from factory and reruns the search. Start
// and goal are kept, clamped into the new grid. On error the session is left
// unchanged.
func (s *Session) Regenerate(ctx context.Context, factory GridFactory) error {
	grid, err := factory()
	if err != nil {
		return fmt.Errorf("generate maze: %w", err)
	}
	start, goal := s.Start, s.Goal
	if grid != nil {
		start, goal = clamp(start, grid), clamp(goal, grid)
	}
	return s.replace(ctx, grid, start, goal)
}

func (s *Session) replace(ctx context.Context, grid mazepath.Grid, start, goal mazepath.Position) error {
	result, err := mazepath.Search(ctx, grid, start, goal, s.options...)
	if err != nil {
		return fmt.Errorf("search maze: %w", err)
	}
	s.Grid, s.Start, s.Goal, s.Result = grid, start, goal, result
	s.generation++

	ctxlog.FromContext(ctx).Info("maze solved",
		"generation", s.generation,
		"width", grid.Width(), "height", grid.Height(),
		"found", result.Found, "length", len(result.Path), "expanded", result.ExpandedNodes)
	return nil
}

func clamp(p mazepath.Position, grid mazepath.Grid) mazepath.Position {
	return mazepath.Position{
		X: min(max(p.X, 0), grid.Width()-1),
		Y: min(max(p.Y, 0), grid.Height()-1),
	}
}
