// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package textseq adapts text and binary content to spandiff sequences.
package textseq

import (
	"errors"

	"github.com/antgroup/spandiff/modules/spandiff"
)

var (
	ErrNonTextContent = errors.New("non-text content")
	ErrTooLarge       = errors.New("content too large")
	ErrLineTooLong    = errors.New("line too long")
	ErrUnknownCharset = errors.New("unknown charset")
)

// Bytes returns a byte level sequence over b.
func Bytes(b []byte) spandiff.Slice[byte] {
	return spandiff.Slice[byte](b)
}

// Runes returns a code point level sequence over s.
func Runes(s string) spandiff.Slice[rune] {
	return spandiff.Slice[rune]([]rune(s))
}
