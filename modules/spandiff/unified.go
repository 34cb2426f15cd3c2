// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package spandiff

// DefaultContextLines is the number of unchanged lines of surrounding
// context displayed by ToUnified.
const DefaultContextLines = 3

// Operation is the operation of one rendered line.
type Operation int8

const (
	// OpDelete is a line removed from the source.
	OpDelete Operation = -1
	// OpInsert is a line added by the destination.
	OpInsert Operation = 1
	// OpEqual is a line present on both sides.
	OpEqual Operation = 0
)

type File struct {
	Name string
	Hash string
	Mode int
}

// Unified represents a set of edits as a unified diff.
type Unified struct {
	// From is the original file, nil for a new file.
	From *File
	// To is the modified file, nil for a deleted file.
	To *File
	// IsBinary is true when the inputs are not text.
	IsBinary bool
	// Hunks is the set of edit Hunks needed to transform the file content.
	Hunks []*Hunk
}

// Hunk represents a contiguous set of line edits to apply.
type Hunk struct {
	// The line in the original source where the hunk starts.
	FromLine int
	// The line in the modified file where the hunk starts.
	ToLine int
	// The set of line based edits to apply.
	Lines []Line
}

type Line struct {
	Kind    Operation
	Content string
}

// lineOp is one rendered line; from and to are the source and destination
// cursors at that line.
type lineOp struct {
	kind Operation
	from int
	to   int
}

func expandOps(spans []Span) []lineOp {
	ops := make([]lineOp, 0, 100)
	from, to := 0, 0
	for _, s := range spans {
		switch s.Kind {
		case Unchanged:
			for i := 0; i < s.Length; i++ {
				ops = append(ops, lineOp{kind: OpEqual, from: from, to: to})
				from++
				to++
			}
		case Replace:
			for i := 0; i < s.Length; i++ {
				ops = append(ops, lineOp{kind: OpDelete, from: from + i, to: to})
			}
			for i := 0; i < s.Length; i++ {
				ops = append(ops, lineOp{kind: OpInsert, from: from + s.Length, to: to + i})
			}
			from += s.Length
			to += s.Length
		case Delete:
			for i := 0; i < s.Length; i++ {
				ops = append(ops, lineOp{kind: OpDelete, from: from, to: to})
				from++
			}
		case Insert:
			for i := 0; i < s.Length; i++ {
				ops = append(ops, lineOp{kind: OpInsert, from: from, to: to})
				to++
			}
		}
	}
	return ops
}

// ToUnified groups the spans of a line diff into hunks. before and after
// are the source and destination lines the spans index into.
func ToUnified(from, to *File, spans []Span, before, after []string, contextLines int) *Unified {
	u := &Unified{From: from, To: to}
	if contextLines < 0 {
		contextLines = DefaultContextLines
	}
	ops := expandOps(spans)
	content := func(op lineOp) Line {
		if op.kind == OpInsert {
			return Line{Kind: op.kind, Content: after[op.to]}
		}
		return Line{Kind: op.kind, Content: before[op.from]}
	}
	appendLines := func(h *Hunk, part []lineOp) {
		for _, op := range part {
			h.Lines = append(h.Lines, content(op))
		}
	}
	var h *Hunk
	lastChange := -1
	for i, op := range ops {
		if op.kind == OpEqual {
			continue
		}
		if h != nil && i-lastChange-1 <= 2*contextLines {
			appendLines(h, ops[lastChange+1:i+1])
			lastChange = i
			continue
		}
		if h != nil {
			appendLines(h, ops[lastChange+1:min(lastChange+1+contextLines, len(ops))])
			u.Hunks = append(u.Hunks, h)
		}
		start := max(i-contextLines, 0)
		h = &Hunk{FromLine: ops[start].from + 1, ToLine: ops[start].to + 1}
		appendLines(h, ops[start:i+1])
		lastChange = i
	}
	if h != nil {
		appendLines(h, ops[lastChange+1:min(lastChange+1+contextLines, len(ops))])
		u.Hunks = append(u.Hunks, h)
	}
	return u
}

// Stat returns the line counts of u.
func (u *Unified) Stat() *FileStat {
	stats := &FileStat{Hunks: len(u.Hunks)}
	for _, h := range u.Hunks {
		for _, l := range h.Lines {
			switch l.Kind {
			case OpInsert:
				stats.Addition++
			case OpDelete:
				stats.Deletion++
			default:
			}
		}
	}
	return stats
}
