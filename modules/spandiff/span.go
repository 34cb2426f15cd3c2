// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package spandiff

import (
	"fmt"
)

// Kind is the kind of an edit span.
type Kind int8

const (
	Unchanged Kind = iota
	Replace
	Delete
	Insert
)

// Unset marks an index that is meaningless for the span kind.
const Unset = -1

var (
	kindNameMap = map[Kind]string{
		Unchanged: "unchanged",
		Replace:   "replace",
		Delete:    "delete",
		Insert:    "insert",
	}
)

func (k Kind) String() string {
	if n, ok := kindNameMap[k]; ok {
		return n
	}
	return "unknown"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNameMap {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown span kind '%s'", text)
}

// Span is one contiguous region of an edit script. Dest and Source are the
// half-open interval starts [Dest, Dest+Length) and [Source, Source+Length).
//
//	Unchanged, Replace: both indices set
//	Insert: only Dest set
//	Delete: only Source set
type Span struct {
	Kind   Kind `json:"kind"`
	Dest   int  `json:"dest"`
	Source int  `json:"source"`
	Length int  `json:"length"`
}

func NewUnchanged(dest, source, length int) Span {
	return Span{Kind: Unchanged, Dest: dest, Source: source, Length: length}
}

func NewReplace(dest, source, length int) Span {
	return Span{Kind: Replace, Dest: dest, Source: source, Length: length}
}

func NewInsert(dest, length int) Span {
	return Span{Kind: Insert, Dest: dest, Source: Unset, Length: length}
}

func NewDelete(source, length int) Span {
	return Span{Kind: Delete, Dest: Unset, Source: source, Length: length}
}

// Extend grows the span by n elements; used to coalesce adjacent unchanged
// spans.
func (s *Span) Extend(n int) {
	s.Length += n
}

// DestEnd returns the exclusive end of the destination interval, or Unset.
func (s Span) DestEnd() int {
	if s.Dest == Unset {
		return Unset
	}
	return s.Dest + s.Length
}

// SourceEnd returns the exclusive end of the source interval, or Unset.
func (s Span) SourceEnd() int {
	if s.Source == Unset {
		return Unset
	}
	return s.Source + s.Length
}

func (s Span) String() string {
	switch s.Kind {
	case Insert:
		return fmt.Sprintf("%s(dest=%d,len=%d)", s.Kind, s.Dest, s.Length)
	case Delete:
		return fmt.Sprintf("%s(src=%d,len=%d)", s.Kind, s.Source, s.Length)
	default:
	}
	return fmt.Sprintf("%s(dest=%d,src=%d,len=%d)", s.Kind, s.Dest, s.Source, s.Length)
}
