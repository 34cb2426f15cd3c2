// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package spandiff

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// region is an inclusive rectangle of the destination x source plane.
type region struct {
	destStart   int
	destEnd     int
	sourceStart int
	sourceEnd   int
}

// Engine runs one diff computation at a time. Call ProcessDiff, then
// DiffReport. An Engine is not safe for concurrent use.
type Engine[E comparable] struct {
	source      Sequence[E]
	destination Sequence[E]
	level       Level
	cache       *matchCache[E]
	matches     []Span
	sourceLen   int
	destLen     int
	hits        int
	misses      int
	processed   bool
}

func NewEngine[E comparable]() *Engine[E] {
	return &Engine[E]{}
}

// ProcessDiff computes the unchanged spans between source and destination
// and keeps them for DiffReport. The returned duration is for diagnostics.
func (e *Engine[E]) ProcessDiff(source, destination Sequence[E], level Level) time.Duration {
	elapsed, _ := e.ProcessDiffContext(context.Background(), source, destination, level)
	return elapsed
}

// ProcessDiffContext is ProcessDiff with cancellation. ctx is checked between
// rectangles; on cancellation the partial result is dropped and the engine
// is left unprocessed.
func (e *Engine[E]) ProcessDiffContext(ctx context.Context, source, destination Sequence[E], level Level) (time.Duration, error) {
	now := time.Now()
	e.reset()
	e.hits, e.misses = 0, 0
	e.sourceLen, e.destLen = source.Len(), destination.Len()
	if e.sourceLen > 0 && e.destLen > 0 {
		e.source, e.destination, e.level = source, destination, level
		e.cache = newMatchCache(source, destination)
		err := e.search(ctx)
		e.hits, e.misses = e.cache.hits, e.cache.misses
		e.source, e.destination, e.cache = nil, nil, nil
		if err != nil {
			e.reset()
			return time.Since(now), err
		}
	}
	e.processed = true
	return time.Since(now), nil
}

// CacheStats returns the match cache hits and misses of the last
// ProcessDiff.
func (e *Engine[E]) CacheStats() (hits, misses int) {
	return e.hits, e.misses
}

func (e *Engine[E]) reset() {
	e.matches = nil
	e.sourceLen, e.destLen = 0, 0
	e.processed = false
}

func (e *Engine[E]) search(ctx context.Context) error {
	pending := arraystack.New()
	pending.Push(region{destStart: 0, destEnd: e.destLen - 1, sourceStart: 0, sourceEnd: e.sourceLen - 1})
	for !pending.Empty() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		v, _ := pending.Pop()
		r := v.(region)
		m, ok := e.findBestMatch(r)
		if !ok {
			continue
		}
		e.matches = append(e.matches, m)
		// LIFO: push right first so the left rectangle is searched first.
		right := region{destStart: m.Dest + m.Length, destEnd: r.destEnd, sourceStart: m.Source + m.Length, sourceEnd: r.sourceEnd}
		if right.destStart <= right.destEnd && right.sourceStart <= right.sourceEnd {
			pending.Push(right)
		}
		left := region{destStart: r.destStart, destEnd: m.Dest - 1, sourceStart: r.sourceStart, sourceEnd: m.Source - 1}
		if left.destStart <= left.destEnd && left.sourceStart <= left.sourceEnd {
			pending.Push(left)
		}
	}
	return nil
}

// findBestMatch scans the destination indices of r for the longest match.
func (e *Engine[E]) findBestMatch(r region) (Span, bool) {
	best := Span{Kind: Unchanged, Dest: Unset, Source: Unset}
	for destIndex := r.destStart; destIndex <= r.destEnd; destIndex++ {
		// no later index can produce a longer run
		if r.destEnd-destIndex+1 <= best.Length {
			break
		}
		source, length, ok := e.cache.getOrCompute(destIndex, r.destEnd, r.sourceStart, r.sourceEnd)
		if !ok {
			continue
		}
		improved := length > best.Length
		if improved {
			best = NewUnchanged(destIndex, source, length)
		}
		if e.level.skipAhead(improved) {
			destIndex += length - 1
		}
	}
	return best, best.Length > 0
}

// DiffReport returns the ordered edit script covering both sequences. It
// consumes the result of the preceding ProcessDiff and panics when there is
// none.
func (e *Engine[E]) DiffReport() []Span {
	if !e.processed {
		panic("spandiff: DiffReport called without a completed ProcessDiff")
	}
	matches, destLen, sourceLen := e.matches, e.destLen, e.sourceLen
	e.reset()
	switch {
	case destLen == 0 && sourceLen == 0:
		return []Span{}
	case destLen == 0:
		return []Span{NewDelete(0, sourceLen)}
	case sourceLen == 0:
		return []Span{NewInsert(0, destLen)}
	default:
	}
	slices.SortFunc(matches, func(a, b Span) int {
		return cmp.Compare(a.Dest, b.Dest)
	})
	spans := make([]Span, 0, len(matches)*2+1)
	curDest, curSource := 0, 0
	for _, m := range matches {
		if m.Dest == curDest && m.Source == curSource && len(spans) > 0 && spans[len(spans)-1].Kind == Unchanged {
			spans[len(spans)-1].Extend(m.Length)
		} else {
			spans = appendGap(spans, curDest, m.Dest, curSource, m.Source)
			spans = append(spans, m)
		}
		curDest, curSource = m.DestEnd(), m.SourceEnd()
	}
	return appendGap(spans, curDest, destLen, curSource, sourceLen)
}

// appendGap emits the spans explaining [destFrom, destTo) x [sourceFrom, sourceTo).
func appendGap(spans []Span, destFrom, destTo, sourceFrom, sourceTo int) []Span {
	gapDest, gapSource := destTo-destFrom, sourceTo-sourceFrom
	switch {
	case gapDest > 0 && gapSource > 0:
		n := min(gapDest, gapSource)
		spans = append(spans, NewReplace(destFrom, sourceFrom, n))
		if gapDest > n {
			spans = append(spans, NewInsert(destFrom+n, gapDest-n))
		} else if gapSource > n {
			spans = append(spans, NewDelete(sourceFrom+n, gapSource-n))
		}
	case gapDest > 0:
		spans = append(spans, NewInsert(destFrom, gapDest))
	case gapSource > 0:
		spans = append(spans, NewDelete(sourceFrom, gapSource))
	default:
	}
	return spans
}

// Diff runs a fresh engine over source and destination.
func Diff[E comparable](source, destination Sequence[E], level Level) []Span {
	e := NewEngine[E]()
	e.ProcessDiff(source, destination, level)
	return e.DiffReport()
}

// DiffContext is Diff with cancellation.
func DiffContext[E comparable](ctx context.Context, source, destination Sequence[E], level Level) ([]Span, error) {
	e := NewEngine[E]()
	if _, err := e.ProcessDiffContext(ctx, source, destination, level); err != nil {
		return nil, err
	}
	return e.DiffReport(), nil
}
