// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package spandiff computes edit spans between two indexable sequences.
//
// The engine is a greedy longest-match search: it picks the longest run of
// equal elements inside the current (destination x source) rectangle, then
// searches the rectangles left and right of it. Matches are memoized per
// destination index so ancestor rectangles do not rescan the source.
package spandiff

import (
	"errors"
	"fmt"
	"strings"
)

// Sequence is a fixed-length, randomly indexable view over comparable
// elements. Len must be constant and At must be deterministic for the
// lifetime of a diff computation.
type Sequence[E comparable] interface {
	Len() int
	At(i int) E
}

// Slice adapts a Go slice to Sequence.
type Slice[E comparable] []E

func (s Slice[E]) Len() int {
	return len(s)
}

func (s Slice[E]) At(i int) E {
	return s[i]
}

// Level selects how eagerly the search settles for a good-enough match.
type Level int8

const (
	// ThroughButTerse examines every destination index of a rectangle.
	ThroughButTerse Level = iota
	// Medium skips past a match only when it improves the best one.
	Medium
	// FastImperfect skips past every match; it may miss a longer match
	// starting inside the skipped region.
	FastImperfect
)

var (
	ErrUnsupportedLevel = errors.New("unsupported matching level")
)

var (
	levelValueMap = map[string]Level{
		"through":         ThroughButTerse,
		"thorough":        ThroughButTerse,
		"throughbutterse": ThroughButTerse,
		"medium":          Medium,
		"fast":            FastImperfect,
		"fastimperfect":   FastImperfect,
	}
	levelNameMap = map[Level]string{
		ThroughButTerse: "through",
		Medium:          "medium",
		FastImperfect:   "fast",
	}
)

func (l Level) String() string {
	if n, ok := levelNameMap[l]; ok {
		return n
	}
	return "unknown"
}

// LevelFromName parses a level name. The empty name selects the default.
func LevelFromName(s string) (Level, error) {
	if len(s) == 0 {
		return ThroughButTerse, nil
	}
	name := strings.ReplaceAll(strings.ToLower(s), "-", "")
	if l, ok := levelValueMap[name]; ok {
		return l, nil
	}
	return ThroughButTerse, fmt.Errorf("matching level '%s' %w", s, ErrUnsupportedLevel)
}

// skipAhead reports whether the scan pointer jumps past a match of the
// given quality.
func (l Level) skipAhead(improved bool) bool {
	switch l {
	case Medium:
		return improved
	case FastImperfect:
		return true
	default:
	}
	return false
}
