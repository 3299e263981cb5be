package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/pdrpinto/mazepath"
	"github.com/pdrpinto/mazepath/internal/app"
	"github.com/pdrpinto/mazepath/internal/config"
	"github.com/pdrpinto/mazepath/internal/termview"
)

// main is the entrypoint for the mazepath command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		slog.Error("mazepath failed", "error", err)
		os.Exit(1)
	}
}

// run encapsulates the command so tests can drive it.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	fs := pflag.NewFlagSet("mazepath", pflag.ContinueOnError)
	fs.SetOutput(logW)
	config.RegisterFlags(fs)
	pairs := fs.Int("pairs", 0, "also solve this many random start/goal pairs in parallel")
	plain := fs.Bool("plain", false, "print the maze without the search overlay")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	ctx, logger, err := app.Logger(ctx, logW, cfg.Log)
	if err != nil {
		return err
	}

	s, _, err := app.NewSession(ctx, cfg)
	if err != nil {
		return err
	}

	if *plain {
		fmt.Fprint(outW, s.Grid)
		return nil
	}
	view := termview.New(lipgloss.NewRenderer(outW))
	fmt.Fprintln(outW, view.Render(s))

	if *pairs <= 0 {
		return nil
	}
	queries := randomQueries(s.Grid, *pairs, cfg.Maze.Seed)
	results, err := mazepath.SearchBatch(ctx, s.Grid, queries, cfg.Search.Options()...)
	if err != nil {
		return fmt.Errorf("batch search: %w", err)
	}
	found := 0
	for i, r := range results {
		if r.Found {
			found++
		}
		logger.Debug("pair solved", "start", queries[i].Start, "goal", queries[i].Goal,
			"found", r.Found, "cost", r.TotalCost)
	}
	fmt.Fprintf(outW, "%d of %d random pairs connected\n", found, len(results))
	return nil
}

func randomQueries(grid mazepath.Grid, n int, seed int64) []mazepath.Query {
	r := rand.New(rand.NewSource(seed))
	queries := make([]mazepath.Query, n)
	for i := range queries {
		queries[i] = mazepath.Query{
			Start: mazepath.Position{X: r.Intn(grid.Width()), Y: r.Intn(grid.Height())},
			Goal:  mazepath.Position{X: r.Intn(grid.Width()), Y: r.Intn(grid.Height())},
		}
	}
	return queries
}
