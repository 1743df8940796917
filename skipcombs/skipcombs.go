package skipcombs

import "math"

// noMove is the sentinel lastMoved value meaning "no pointer has been
// advanced since the last skip", mirroring the Rust original's usize::MAX.
const noMove = math.MaxInt

// Combinations iterates the k-combinations of data in lexicographic order
// by index, via a pointer-vector with a guard element at index 0 (spec.md
// §4.6's "skippable combinations" primitive). Zero value is not usable;
// construct with New.
type Combinations struct {
	data      []uint32
	pointers  []int
	stop      []int
	lastMoved int
	finished  bool
}

// New returns an iterator over the k-combinations of data. If len(data) <
// k, the iterator is immediately exhausted.
func New(data []uint32, k int) *Combinations {
	n := len(data)
	if n < k {
		return &Combinations{finished: true}
	}

	pointers := make([]int, k+1)
	stop := make([]int, k+1)
	stop[0] = noMove
	for i := 0; i < k; i++ {
		pointers[i+1] = i
		stop[i+1] = n - k + i
	}

	return &Combinations{
		data:      append([]uint32(nil), data...),
		pointers:  pointers,
		stop:      stop,
		lastMoved: noMove,
		finished:  false,
	}
}

// Next returns the next combination (as a freshly allocated slice) and
// true, or (nil, false) once the iterator is exhausted.
func (c *Combinations) Next() ([]uint32, bool) {
	if c.finished {
		return nil, false
	}

	current := make([]uint32, len(c.pointers)-1)
	for i, ix := range c.pointers[1:] {
		current[i] = c.data[ix]
	}

	// Find the rightmost pointer that is not already at its stop
	// position; this loop always terminates at the guard element.
	ix := len(c.pointers) - 1
	for c.pointers[ix] == c.stop[ix] {
		ix--
	}

	if ix == 0 {
		c.finished = true
	} else {
		c.pointers[ix]++
		c.lastMoved = ix

		pos := c.pointers[ix]
		for ; ix < len(c.pointers); ix++ {
			c.pointers[ix] = pos
			pos++
		}
	}

	return current, true
}

// SkipPrefix suppresses every remaining combination whose first
// prefixLength entries equal those of the most recently returned
// combination, resuming iteration at the next combination that differs in
// its prefixLength-th entry (spec.md §4.6). prefixLength must be strictly
// less than k.
func (c *Combinations) SkipPrefix(prefixLength int) {
	if prefixLength >= len(c.pointers)-1 {
		panic("skipcombs: prefixLength must be less than k")
	}

	ix := prefixLength
	if ix == 0 {
		c.finished = true

		return
	}

	if c.lastMoved <= ix {
		// Next already advanced past this prefix on its own.
		c.lastMoved = noMove

		return
	}

	for c.pointers[ix] == c.stop[ix] {
		ix--
	}

	c.pointers[ix]++
	c.lastMoved = noMove

	pos := c.pointers[ix]
	for ; ix < len(c.pointers); ix++ {
		c.pointers[ix] = pos
		pos++
	}
}
