package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/mazepath"
	"github.com/pdrpinto/mazepath/internal/config"
	"github.com/pdrpinto/mazepath/internal/ctxlog"
)

func baseConfig() config.Config {
	return config.Config{
		Maze:   config.MazeConfig{Width: 6, Height: 4, Density: 1, Seed: 5},
		Search: config.SearchConfig{GoalX: -1, GoalY: -1, Trace: true, Workers: 2},
		Log:    config.LogConfig{Level: "info", Format: "text"},
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx, logger, err := Logger(context.Background(), &buf, config.LogConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)
	assert.Same(t, logger, ctxlog.FromContext(ctx))

	logger.Debug("visible")
	assert.Contains(t, buf.String(), `"msg":"visible"`)

	_, _, err = Logger(context.Background(), &buf, config.LogConfig{Level: "nope"})
	assert.Error(t, err)
}

func TestNewSession_Random(t *testing.T) {
	s, factory, err := NewSession(context.Background(), baseConfig())
	require.NoError(t, err)

	assert.Equal(t, 6, s.Grid.Width())
	assert.Equal(t, mazepath.Position{X: 5, Y: 3}, s.Goal)
	assert.True(t, s.Result.Found, "density 1 carves every wall")
	assert.Len(t, s.Result.Path, 9)

	require.NoError(t, s.Regenerate(context.Background(), factory))
	assert.Equal(t, 2, s.Generation())
}

func TestNewSession_FileMarkersWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte("#######\n#G   S#\n#######\n"), 0o644))

	cfg := baseConfig()
	cfg.Maze.File = path
	s, factory, err := NewSession(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, mazepath.Position{X: 2, Y: 0}, s.Start)
	assert.Equal(t, mazepath.Position{X: 0, Y: 0}, s.Goal)
	assert.Len(t, s.Result.Path, 3)

	grid, err := factory()
	require.NoError(t, err)
	assert.Equal(t, 3, grid.Width())
}

func TestNewSession_MissingFile(t *testing.T) {
	cfg := baseConfig()
	cfg.Maze.File = filepath.Join(t.TempDir(), "missing.txt")
	_, _, err := NewSession(context.Background(), cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
