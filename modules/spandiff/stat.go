// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package spandiff

type FileStat struct {
	Addition, Deletion, Hunks int
}

// Stat counts inserted and deleted elements of an edit script. A replaced
// element counts once on each side. Hunks is the number of maximal runs of
// changed spans.
func Stat(spans []Span) *FileStat {
	stats := &FileStat{}
	inChange := false
	for _, s := range spans {
		switch s.Kind {
		case Unchanged:
			inChange = false
			continue
		case Replace:
			stats.Addition += s.Length
			stats.Deletion += s.Length
		case Insert:
			stats.Addition += s.Length
		case Delete:
			stats.Deletion += s.Length
		}
		if !inChange {
			stats.Hunks++
			inChange = true
		}
	}
	return stats
}
