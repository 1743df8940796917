package skipcombs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/vcdim/skipcombs"
)

func drainAll(t *testing.T, data []uint32, k int) [][]uint32 {
	t.Helper()
	c := skipcombs.New(data, k)
	var res [][]uint32
	for {
		next, ok := c.Next()
		if !ok {
			break
		}
		res = append(res, next)
	}

	return res
}

func TestMatchesLexicographicEnumeration(t *testing.T) {
	data := []uint32{0, 1, 2, 3, 4}
	got := drainAll(t, data, 3)

	want := [][]uint32{
		{0, 1, 2}, {0, 1, 3}, {0, 1, 4}, {0, 2, 3}, {0, 2, 4}, {0, 3, 4},
		{1, 2, 3}, {1, 2, 4}, {1, 3, 4},
		{2, 3, 4},
	}
	assert.Equal(t, want, got)
}

func TestTooFewElements(t *testing.T) {
	got := drainAll(t, []uint32{0, 1}, 3)
	assert.Empty(t, got)
}

func TestZeroLengthCombination(t *testing.T) {
	got := drainAll(t, []uint32{0, 1, 2}, 0)
	assert.Equal(t, [][]uint32{{}}, got)
}

func TestSkipPrefixPrunesWholeFamily(t *testing.T) {
	data := []uint32{0, 1, 2, 3, 4}
	c := skipcombs.New(data, 3)

	var got [][]uint32
	for {
		next, ok := c.Next()
		if !ok {
			break
		}
		got = append(got, next)

		// Once we see a combination starting with 0,1 skip the rest of
		// that prefix family (0,1,2 / 0,1,3 / 0,1,4).
		if len(next) == 3 && next[0] == 0 && next[1] == 1 && next[2] == 2 {
			c.SkipPrefix(2)
		}
	}

	want := [][]uint32{
		{0, 1, 2},
		{0, 2, 3}, {0, 2, 4}, {0, 3, 4},
		{1, 2, 3}, {1, 2, 4}, {1, 3, 4},
		{2, 3, 4},
	}
	assert.Equal(t, want, got)
}

func TestSkipPrefixZeroExhausts(t *testing.T) {
	c := skipcombs.New([]uint32{0, 1, 2, 3}, 2)
	_, ok := c.Next()
	assert.True(t, ok)

	c.SkipPrefix(0)
	_, ok = c.Next()
	assert.False(t, ok)
}

func TestEmittedIsPrefixOfFullEnumeration(t *testing.T) {
	data := []uint32{0, 1, 2, 3, 4, 5}
	full := drainAll(t, data, 3)

	c := skipcombs.New(data, 3)
	var got [][]uint32
	for {
		next, ok := c.Next()
		if !ok {
			break
		}
		got = append(got, next)
		if len(got) == 4 {
			break
		}
	}

	assert.Equal(t, full[:4], got)
}
