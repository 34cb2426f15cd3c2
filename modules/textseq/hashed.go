// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package textseq

import (
	"encoding/binary"

	"github.com/antgroup/spandiff/modules/spandiff"
	"github.com/zeebo/blake3"
)

// LineKey is the first 8 bytes of a line's BLAKE3 digest.
func LineKey(line string) uint64 {
	sum := blake3.Sum256([]byte(line))
	return binary.LittleEndian.Uint64(sum[:8])
}

// HashedLines returns a sequence of line keys. Equal lines always have
// equal keys; distinct lines collide with probability about 2^-64 per
// pair, in which case the diff treats them as unchanged. Use a LineSink
// when exact equality is required.
func HashedLines(lines []string) spandiff.Slice[uint64] {
	keys := make([]uint64, 0, len(lines))
	for _, line := range lines {
		keys = append(keys, LineKey(line))
	}
	return spandiff.Slice[uint64](keys)
}
