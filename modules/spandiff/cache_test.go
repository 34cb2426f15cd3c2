// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package spandiff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchStateReusable(t *testing.T) {
	matched := matchState{sourceStart: 0, sourceEnd: 9, bound: 6, status: statusMatched, source: 3, length: 4}
	noMatch := matchState{sourceStart: 2, sourceEnd: 5, bound: 3, status: statusNoMatch, source: Unset}
	capped := matchState{sourceStart: 0, sourceEnd: 9, bound: 4, status: statusMatched, source: 3, length: 4}

	tests := []struct {
		name   string
		state  matchState
		start  int
		end    int
		bound  int
		expect bool
	}{
		{"unknown", matchState{}, 0, 9, 6, false},
		{"same query", matched, 0, 9, 6, true},
		{"narrower window", matched, 2, 7, 5, true},
		{"wider window", matched, 0, 10, 6, false},
		{"match starts outside", matched, 4, 9, 6, false},
		{"match ends outside", matched, 0, 5, 6, false},
		{"bound too small", matched, 0, 9, 3, false},
		{"no match contained", noMatch, 3, 4, 1, true},
		{"no match wider", noMatch, 1, 4, 1, false},
		{"capped answer looser bound", capped, 0, 9, 6, false},
		{"capped answer same bound", capped, 0, 9, 4, true},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expect, tt.state.reusable(tt.start, tt.end, tt.bound), tt.name)
	}
}

func TestMatchCacheLongestLeftmost(t *testing.T) {
	source := Slice[string]{"a", "b", "x", "a", "b", "c", "a", "b", "c"}
	destination := Slice[string]{"a", "b", "c", "d"}
	c := newMatchCache[string](source, destination)

	s, n, ok := c.getOrCompute(0, 3, 0, 8)
	require.True(t, ok)
	require.Equal(t, 3, s)
	require.Equal(t, 3, n)

	// capped by destEnd: the first "ab" wins the tie
	c = newMatchCache[string](source, destination)
	s, n, ok = c.getOrCompute(0, 1, 0, 8)
	require.True(t, ok)
	require.Equal(t, 0, s)
	require.Equal(t, 2, n)

	// capped by sourceEnd
	c = newMatchCache[string](source, destination)
	s, n, ok = c.getOrCompute(0, 3, 3, 4)
	require.True(t, ok)
	require.Equal(t, 3, s)
	require.Equal(t, 2, n)

	_, _, ok = c.getOrCompute(3, 3, 0, 8)
	require.False(t, ok)
}

func TestMatchCacheStats(t *testing.T) {
	e := NewEngine[string]()
	e.ProcessDiff(Slice[string]{"a", "b", "c", "d"}, Slice[string]{"a", "x", "c", "d"}, ThroughButTerse)
	hits, misses := e.CacheStats()
	require.Equal(t, 2, hits)
	require.Equal(t, 3, misses)
	_ = e.DiffReport()
}
