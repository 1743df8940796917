package setfunc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/vcdim/setfunc"
)

// powerset enumerates every subset of a small slice, smallest-index-first
// inclusion/exclusion order (matches itertools::powerset's shape closely
// enough for test purposes — order is irrelevant here).
func powerset(xs []uint32) [][]uint32 {
	if len(xs) == 0 {
		return [][]uint32{{}}
	}
	rest := powerset(xs[1:])
	res := make([][]uint32, 0, len(rest)*2)
	res = append(res, rest...)
	for _, s := range rest {
		withHead := append([]uint32{xs[0]}, s...)
		res = append(res, withHead)
	}

	return res
}

// TestInversion2 translates original_source/src/setfunc.rs's
// test_inversion_2: builds R over {0,1}, projects to a SmallSetFunc,
// applies MobiusTransDown, and checks the result against a brute-force
// inclusion-exclusion sum computed directly from R.
func TestInversion2(t *testing.T) {
	testInversionN(t, []uint32{0, 1}, map[string]int32{
		"":    751,
		"0":   25,
		"1":   133,
		"0,1": 235,
	})
}

// TestInversion3 translates test_inversion_3 (universe {0,1,2}).
func TestInversion3(t *testing.T) {
	testInversionN(t, []uint32{0, 1, 2}, map[string]int32{
		"":      751,
		"0":     25,
		"1":     133,
		"2":     125,
		"0,1":   235,
		"0,2":   325,
		"1,2":   124,
		"0,1,2": 35,
	})
}

func testInversionN(t *testing.T, universe []uint32, values map[string]int32) {
	t.Helper()

	r := setfunc.New()
	for key, v := range values {
		r.Set(keyToSlice(key), v)
	}

	f := r.Subfunc(universe)
	bigF := cloneSmall(f)
	for _, x := range powerset(universe) {
		assert.Equal(t, r.Get(x), f.Get(x))
		assert.Equal(t, f.Get(x), bigF.Get(x))
	}

	bigF.MobiusTransDown()

	for _, x := range powerset(universe) {
		want := bruteMobius(r, universe, x)
		assert.Equal(t, want, bigF.Get(x), "mismatch at X=%v", x)
	}
}

// bruteMobius computes, directly from R, the zeta-inverse sum
// sum_{Y subseteq S\X} (-1)^|Y| R[X union Y], matching the
// query_uncor-then-sum logic of the Rust original.
func bruteMobius(r *setfunc.SetFunc, universe, x []uint32) int32 {
	sMinusX := difference(universe, x)
	var res int32
	for _, y := range powerset(sMinusX) {
		union := append(append([]uint32{}, x...), y...)
		if len(y)%2 == 0 {
			res += r.Get(union)
		} else {
			res -= r.Get(union)
		}
	}

	return res
}

func difference(a, b []uint32) []uint32 {
	bs := map[uint32]struct{}{}
	for _, v := range b {
		bs[v] = struct{}{}
	}
	var res []uint32
	for _, v := range a {
		if _, ok := bs[v]; !ok {
			res = append(res, v)
		}
	}

	return res
}

func cloneSmall(f *setfunc.SmallSetFunc) *setfunc.SmallSetFunc {
	clone := setfunc.New(f.Universe())
	for _, e := range f.EntriesNonzero() {
		clone.Set(e.Key, e.Value)
	}

	return clone
}

func keyToSlice(key string) []uint32 {
	if key == "" {
		return nil
	}
	var res []uint32
	cur := uint32(0)
	started := false
	for _, c := range key {
		if c == ',' {
			res = append(res, cur)
			cur = 0
			started = false

			continue
		}
		cur = cur*10 + uint32(c-'0')
		started = true
	}
	if started {
		res = append(res, cur)
	}

	return res
}

func TestLadder(t *testing.T) {
	f := setfunc.New([]uint32{0, 1, 2, 3})
	assert.False(t, f.IsLadder())

	f.Set([]uint32{0, 1, 2, 3}, 1230)
	f.Set([]uint32{1, 2, 3}, 24)
	f.Set([]uint32{2, 3}, 13)
	f.Set([]uint32{3}, 1231)
	assert.True(t, f.IsLadder())

	f.Set([]uint32{3}, 0)
	assert.False(t, f.IsLadder())

	f.Set([]uint32{2}, 1)
	assert.True(t, f.IsLadder())
}
