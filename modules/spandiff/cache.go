// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package spandiff

type matchStatus int8

const (
	statusUnknown matchStatus = iota
	statusMatched
	statusNoMatch
)

// matchState is the memoized longest match for one destination index.
// sourceStart/sourceEnd (inclusive) and bound describe the query the
// answer was computed for.
type matchState struct {
	sourceStart int
	sourceEnd   int
	bound       int
	status      matchStatus
	source      int
	length      int
}

// reusable reports whether the stored answer is still exact for a query
// whose window is [sourceStart, sourceEnd] and whose length cap is bound.
func (m *matchState) reusable(sourceStart, sourceEnd, bound int) bool {
	if m.status == statusUnknown {
		return false
	}
	if sourceStart < m.sourceStart || sourceEnd > m.sourceEnd {
		return false
	}
	if m.status == statusNoMatch {
		return true
	}
	if m.source < sourceStart || m.source+m.length-1 > sourceEnd {
		return false
	}
	if m.length > bound {
		return false
	}
	// a capped answer may grow under a looser cap
	return bound <= m.bound || m.length < m.bound
}

// matchCache holds one matchState per destination index.
type matchCache[E comparable] struct {
	source      Sequence[E]
	destination Sequence[E]
	states      []matchState
	hits        int
	misses      int
}

func newMatchCache[E comparable](source, destination Sequence[E]) *matchCache[E] {
	return &matchCache[E]{
		source:      source,
		destination: destination,
		states:      make([]matchState, destination.Len()),
	}
}

// getOrCompute returns the longest run of equal elements starting at
// destIndex against any source start in [sourceStart, sourceEnd]. The run
// never crosses destEnd or sourceEnd. Ties resolve to the leftmost source
// start.
func (c *matchCache[E]) getOrCompute(destIndex, destEnd, sourceStart, sourceEnd int) (source, length int, ok bool) {
	bound := destEnd - destIndex + 1
	m := &c.states[destIndex]
	if m.reusable(sourceStart, sourceEnd, bound) {
		c.hits++
		return m.source, m.length, m.status == statusMatched
	}
	c.misses++
	best, bestSource := 0, Unset
	for s := sourceStart; s <= sourceEnd; s++ {
		if sourceEnd-s+1 <= best {
			break
		}
		n := c.runLength(destIndex, s, min(bound, sourceEnd-s+1))
		if n > best {
			best, bestSource = n, s
			if best == bound {
				break
			}
		}
	}
	m.sourceStart = sourceStart
	m.sourceEnd = sourceEnd
	m.bound = bound
	if best == 0 {
		m.status = statusNoMatch
		m.source, m.length = Unset, 0
		return Unset, 0, false
	}
	m.status = statusMatched
	m.source, m.length = bestSource, best
	return bestSource, best, true
}

func (c *matchCache[E]) runLength(destIndex, sourceIndex, limit int) int {
	n := 0
	for n < limit && c.destination.At(destIndex+n) == c.source.At(sourceIndex+n) {
		n++
	}
	return n
}
