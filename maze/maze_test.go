package maze

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/mazepath"
)

func p(x, y int) mazepath.Position { return mazepath.Position{X: x, Y: y} }

func TestNew_InvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 3}, {3, 0}, {-1, -1}} {
		_, err := New(size[0], size[1])
		assert.ErrorIs(t, err, ErrInvalidSize)
	}
}

func TestCarve_Symmetric(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)

	require.NoError(t, g.Carve(p(1, 1), mazepath.North))
	assert.True(t, g.IsOpen(p(1, 1), mazepath.North))
	assert.True(t, g.IsOpen(p(1, 0), mazepath.South))
	assert.False(t, g.IsOpen(p(1, 1), mazepath.South))

	require.NoError(t, g.Wall(p(1, 0), mazepath.South))
	assert.False(t, g.IsOpen(p(1, 1), mazepath.North))
	assert.False(t, g.IsOpen(p(1, 0), mazepath.South))
}

func TestCarve_OutOfBounds(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, g.Carve(p(0, 0), mazepath.West), ErrOutOfBounds)
	assert.ErrorIs(t, g.Carve(p(1, 1), mazepath.South), ErrOutOfBounds)
	assert.ErrorIs(t, g.Carve(p(5, 5), mazepath.North), ErrOutOfBounds)
	assert.ErrorIs(t, g.Wall(p(0, 0), mazepath.North), ErrOutOfBounds)
}

func TestIsOpen_OutsideIsClosed(t *testing.T) {
	g, err := Open(2, 2)
	require.NoError(t, err)

	assert.False(t, g.IsOpen(p(0, 0), mazepath.North))
	assert.False(t, g.IsOpen(p(0, 0), mazepath.West))
	assert.False(t, g.IsOpen(p(1, 1), mazepath.East))
	assert.False(t, g.IsOpen(p(-1, 0), mazepath.East))
	assert.False(t, g.IsOpen(p(2, 0), mazepath.West))
}

func TestOpen_EveryInteriorPassage(t *testing.T) {
	g, err := Open(3, 2)
	require.NoError(t, err)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, x < 2, g.IsOpen(p(x, y), mazepath.East))
			assert.Equal(t, y < 1, g.IsOpen(p(x, y), mazepath.South))
		}
	}
}

func TestRandom_DensityBounds(t *testing.T) {
	closed, err := Random(5, 5, rand.New(rand.NewSource(1)), 0)
	require.NoError(t, err)
	open, err := Random(5, 5, rand.New(rand.NewSource(1)), 1)
	require.NoError(t, err)

	full, err := Open(5, 5)
	require.NoError(t, err)
	empty, err := New(5, 5)
	require.NoError(t, err)

	assert.Equal(t, empty.String(), closed.String())
	assert.Equal(t, full.String(), open.String())
}

func TestRandom_SeedIsReproducible(t *testing.T) {
	a, err := Random(8, 6, rand.New(rand.NewSource(42)), 0.5)
	require.NoError(t, err)
	b, err := Random(8, 6, rand.New(rand.NewSource(42)), 0.5)
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

const sample = `#######
#S    #
# ### #
#   #G#
#######
`

func TestParse(t *testing.T) {
	layout, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	g := layout.Grid
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.True(t, layout.HasStart)
	assert.True(t, layout.HasGoal)
	assert.Equal(t, p(0, 0), layout.Start)
	assert.Equal(t, p(2, 1), layout.Goal)

	assert.True(t, g.IsOpen(p(0, 0), mazepath.East))
	assert.True(t, g.IsOpen(p(1, 0), mazepath.East))
	assert.True(t, g.IsOpen(p(0, 0), mazepath.South))
	assert.False(t, g.IsOpen(p(1, 0), mazepath.South))
	assert.True(t, g.IsOpen(p(2, 0), mazepath.South))
	assert.True(t, g.IsOpen(p(0, 1), mazepath.East))
	assert.False(t, g.IsOpen(p(1, 1), mazepath.East))

	assert.Equal(t, sample, layout.String())
}

func TestParse_DotsAndCRLF(t *testing.T) {
	layout, err := Parse(strings.NewReader("#####\r\n#...#\r\n#####\r\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, layout.Grid.Width())
	assert.True(t, layout.Grid.IsOpen(p(0, 0), mazepath.East))
	assert.False(t, layout.HasStart)
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"too short":       "###\n",
		"even lines":      "###\n# #\n",
		"even width":      "####\n#  #\n####\n",
		"ragged":          "#####\n# #\n#####\n",
		"bad cell":        "###\n#x#\n###\n",
		"bad wall":        "#####\n# x #\n#####\n",
		"two starts":      "#####\n#S S#\n#####\n",
		"two goals":       "#####\n#G G#\n#####\n",
		"only blank text": "\n\n",
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(text))
			assert.ErrorIs(t, err, ErrSyntax)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	layout, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, layout.Grid.Width())

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
