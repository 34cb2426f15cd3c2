// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package streamio

import (
	"bytes"
	"io"
)

// GrowReadMax reads at most n bytes from r, preallocating grow bytes. A
// non-positive grow preallocates nothing.
func GrowReadMax(r io.Reader, n int64, grow int) ([]byte, error) {
	var buf bytes.Buffer
	if grow > 0 {
		buf.Grow(min(grow, int(n)))
	}
	if _, err := buf.ReadFrom(io.LimitReader(r, n)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
