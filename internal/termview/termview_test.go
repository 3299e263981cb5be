package termview

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/mazepath"
	"github.com/pdrpinto/mazepath/internal/session"
	"github.com/pdrpinto/mazepath/maze"
)

// plainView renders without color codes so output can be compared as text.
func plainView() *View {
	return New(lipgloss.NewRenderer(io.Discard))
}

func solved(t *testing.T, text string, options ...mazepath.Option) *session.Session {
	t.Helper()
	layout, err := maze.Parse(strings.NewReader(text))
	require.NoError(t, err)
	s, err := session.New(context.Background(), layout.Grid, layout.Start, layout.Goal, options...)
	require.NoError(t, err)
	return s
}

func TestMaze_DrawsPathAndTrace(t *testing.T) {
	s := solved(t, `
#######
#S    #
# ### #
#   #G#
#######`, mazepath.WithTrace())

	got := plainView().Maze(s)
	want := strings.Join([]string{
		"#######",
		"#S****#",
		"# ###*#",
		"#. .#G#",
		"#######",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestMaze_NoTrace(t *testing.T) {
	s := solved(t, `
#####
#S G#
#####`)
	assert.Equal(t, "#####\n#S*G#\n#####\n", plainView().Maze(s))
}

func TestSummary(t *testing.T) {
	found := solved(t, `
#####
#S G#
#####`, mazepath.WithTrace())
	assert.Contains(t, plainView().Summary(found), "(0,0) -> (1,0): 1 steps, 2 cells expanded, 2 touched, 0 left in frontier")

	blocked := solved(t, `
#####
#S#G#
#####`)
	line := plainView().Summary(blocked)
	assert.Contains(t, line, "no path, 1 cells expanded")
	assert.NotContains(t, line, "touched")
}

func TestRender_JoinsMazeAndSummary(t *testing.T) {
	s := solved(t, `
#####
#S G#
#####`)
	out := plainView().Render(s)
	assert.True(t, strings.HasPrefix(out, "#####\n#S*G#\n#####\n"))
	assert.Contains(t, out, "1 steps")
}
