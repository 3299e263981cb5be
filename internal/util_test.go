package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconstructPath(t *testing.T) {
	cameFrom := map[string]string{"b": "a", "c": "b", "d": "c"}

	path, ok := ReconstructPath(cameFrom, "d", "a")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c", "d"}, path)

	path, ok = ReconstructPath(cameFrom, "a", "a")
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, path)

	path, ok = ReconstructPath(map[string]string{"d": "c"}, "d", "a")
	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestReverse(t *testing.T) {
	s := []int{1, 2, 3, 4}
	Reverse(s)
	assert.Equal(t, []int{4, 3, 2, 1}, s)
	Reverse([]int(nil))
}
