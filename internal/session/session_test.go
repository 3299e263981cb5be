package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/mazepath"
	"github.com/pdrpinto/mazepath/maze"
)

func pos(x, y int) mazepath.Position { return mazepath.Position{X: x, Y: y} }

func TestNew_SolvesImmediately(t *testing.T) {
	g, err := maze.Open(4, 3)
	require.NoError(t, err)

	s, err := New(context.Background(), g, pos(0, 0), pos(3, 2), mazepath.WithTrace())
	require.NoError(t, err)

	assert.Equal(t, 1, s.Generation())
	assert.True(t, s.Result.Found)
	assert.Len(t, s.Result.Path, 6)
	assert.NotNil(t, s.Result.Trace)
}

func TestNew_RejectsOutOfBounds(t *testing.T) {
	g, err := maze.Open(2, 2)
	require.NoError(t, err)

	_, err = New(context.Background(), g, pos(0, 0), pos(4, 4))
	assert.ErrorIs(t, err, mazepath.ErrOutOfBounds)
}

func TestRegenerate_ReplacesPathAndTrace(t *testing.T) {
	open, err := maze.Open(5, 5)
	require.NoError(t, err)
	s, err := New(context.Background(), open, pos(0, 0), pos(4, 4), mazepath.WithTrace())
	require.NoError(t, err)
	require.True(t, s.Result.Found)

	walled, err := maze.New(3, 3)
	require.NoError(t, err)
	err = s.Regenerate(context.Background(), func() (mazepath.Grid, error) { return walled, nil })
	require.NoError(t, err)

	assert.Equal(t, 2, s.Generation())
	assert.Same(t, walled, s.Grid)
	assert.Equal(t, pos(2, 2), s.Goal, "goal is clamped into the smaller grid")
	assert.False(t, s.Result.Found)
	assert.Empty(t, s.Result.Path)
	assert.Equal(t, 1, s.Result.Trace.Len(), "trace belongs to the new maze")
}

func TestRegenerate_FailureKeepsSession(t *testing.T) {
	g, err := maze.Open(3, 3)
	require.NoError(t, err)
	s, err := New(context.Background(), g, pos(0, 0), pos(2, 2))
	require.NoError(t, err)
	before := s.Result

	boom := errors.New("boom")
	err = s.Regenerate(context.Background(), func() (mazepath.Grid, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)

	err = s.Regenerate(context.Background(), func() (mazepath.Grid, error) { return nil, nil })
	assert.ErrorIs(t, err, mazepath.ErrInvalidGrid)

	assert.Equal(t, 1, s.Generation())
	assert.Same(t, g, s.Grid)
	assert.Equal(t, before, s.Result)
}

func TestMarker(t *testing.T) {
	path := []mazepath.Position{pos(0, 0), pos(1, 0), pos(2, 0)}
	m := NewMarker(path, 2)

	at, ok := m.Position()
	require.True(t, ok)
	assert.Equal(t, pos(0, 0), at)

	m.Tick()
	at, _ = m.Position()
	assert.Equal(t, pos(0, 0), at, "one tick is not enough to move")
	m.Tick()
	at, _ = m.Position()
	assert.Equal(t, pos(1, 0), at)

	for i := 0; i < 10; i++ {
		m.Tick()
	}
	assert.True(t, m.Done())
	assert.Equal(t, 2, m.Index())

	m.Reset()
	assert.False(t, m.Done())
	assert.Equal(t, 0, m.Index())
}

func TestMarker_EmptyPath(t *testing.T) {
	m := NewMarker(nil, 0)
	m.Tick()
	_, ok := m.Position()
	assert.False(t, ok)
	assert.True(t, m.Done())
}
