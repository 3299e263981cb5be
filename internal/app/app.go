// Package app wires configuration into the pieces every command needs: a
// logger, a maze source and a solved session.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pdrpinto/mazepath"
	"github.com/pdrpinto/mazepath/internal/config"
	"github.com/pdrpinto/mazepath/internal/ctxlog"
	"github.com/pdrpinto/mazepath/internal/session"
	"github.com/pdrpinto/mazepath/maze"
)

// Logger builds the configured logger and returns ctx carrying it.
func Logger(ctx context.Context, w io.Writer, cfg config.LogConfig) (context.Context, *slog.Logger, error) {
	logger, err := ctxlog.New(w, cfg.Level, cfg.Format)
	if err != nil {
		return ctx, nil, fmt.Errorf("configure logging: %w", err)
	}
	return ctxlog.WithLogger(ctx, logger), logger, nil
}

// GridFactory returns a source of fresh grids. With a maze file configured
// every call reloads it; otherwise each call draws a new random maze from one
// seeded generator.
func GridFactory(cfg config.MazeConfig) session.GridFactory {
	if cfg.File != "" {
		return func() (mazepath.Grid, error) {
			layout, err := maze.Load(cfg.File)
			if err != nil {
				return nil, err
			}
			return layout.Grid, nil
		}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	return func() (mazepath.Grid, error) {
		return maze.Random(cfg.Width, cfg.Height, r, cfg.Density)
	}
}

// NewSession builds the first maze and solves it. Start and goal markers in a
// maze file take precedence over the configured endpoints.
func NewSession(ctx context.Context, cfg config.Config) (*session.Session, session.GridFactory, error) {
	factory := GridFactory(cfg.Maze)

	var grid mazepath.Grid
	var start, goal mazepath.Position
	if cfg.Maze.File != "" {
		layout, err := maze.Load(cfg.Maze.File)
		if err != nil {
			return nil, nil, err
		}
		grid = layout.Grid
		start, goal = cfg.Search.Endpoints(grid.Width(), grid.Height())
		if layout.HasStart {
			start = layout.Start
		}
		if layout.HasGoal {
			goal = layout.Goal
		}
	} else {
		g, err := factory()
		if err != nil {
			return nil, nil, err
		}
		grid = g
		start, goal = cfg.Search.Endpoints(grid.Width(), grid.Height())
	}

	s, err := session.New(ctx, grid, start, goal, cfg.Search.Options()...)
	if err != nil {
		return nil, nil, err
	}
	return s, factory, nil
}
