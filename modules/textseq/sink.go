// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package textseq

import (
	"fmt"
	"strings"

	"github.com/antgroup/spandiff/modules/spandiff"
	"github.com/rivo/uniseg"
)

// NewLine controls how line terminators take part in line equality.
type NewLine int

const (
	// NewLineRaw keeps terminators, so "a\n" and "a\r\n" differ.
	NewLineRaw NewLine = iota
	// NewLineLF strips "\n" and a preceding "\r".
	NewLineLF
	// NewLineCRLF strips like NewLineLF and renders lines with "\r\n".
	NewLineCRLF
)

// LineSink interns lines so that two texts parsed by the same sink share
// ids for equal lines. Comparing ids is exact.
type LineSink struct {
	Lines   []string
	Index   map[string]int
	NewLine NewLine
	// TabWidth expands tabs to the next multiple of TabWidth display
	// columns. Zero keeps tabs.
	TabWidth int
	// MaxLineLength rejects lines wider than this many display columns.
	// Zero means unlimited.
	MaxLineLength int
}

func NewLineSink(newLine NewLine) *LineSink {
	return &LineSink{
		Lines:   make([]string, 0, 200),
		Index:   make(map[string]int),
		NewLine: newLine,
	}
}

func (s *LineSink) addLine(line string) int {
	if lineIndex, ok := s.Index[line]; ok {
		return lineIndex
	}
	index := len(s.Lines)
	s.Index[line] = index
	s.Lines = append(s.Lines, line)
	return index
}

// ExpandTabs replaces tabs in line with spaces up to the next tab stop.
// Columns are counted in grapheme display width.
func ExpandTabs(line string, tabWidth int) string {
	if tabWidth <= 0 || !strings.Contains(line, "\t") {
		return line
	}
	var b strings.Builder
	b.Grow(len(line) + tabWidth)
	column := 0
	state := -1
	for len(line) > 0 {
		var cluster string
		var width int
		cluster, line, width, state = uniseg.FirstGraphemeClusterInString(line, state)
		if cluster == "\t" {
			n := tabWidth - column%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			column += n
			continue
		}
		b.WriteString(cluster)
		column += width
	}
	return b.String()
}

func (s *LineSink) normalize(line string, lineNo int) (string, error) {
	line = ExpandTabs(line, s.TabWidth)
	if s.MaxLineLength > 0 {
		if w := uniseg.StringWidth(strings.TrimRight(line, "\r\n")); w > s.MaxLineLength {
			return "", fmt.Errorf("line %d: width %d exceeds %d: %w", lineNo, w, s.MaxLineLength, ErrLineTooLong)
		}
	}
	return line, nil
}

// SplitLines splits text after each "\n". The last line has no terminator
// when text does not end with one.
func SplitLines(text string) []string {
	lines := make([]string, 0, 200)
	for pos := 0; pos < len(text); {
		part := text[pos:]
		newPos := strings.IndexByte(part, '\n')
		if newPos == -1 {
			lines = append(lines, part)
			break
		}
		lines = append(lines, part[:newPos+1])
		pos += newPos + 1
	}
	return lines
}

// Normalize splits text into lines and applies the sink's line ending,
// tab and length rules without interning them.
func (s *LineSink) Normalize(text string) ([]string, error) {
	lines := SplitLines(text)
	for i, line := range lines {
		if s.NewLine != NewLineRaw {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		}
		normalized, err := s.normalize(line, i+1)
		if err != nil {
			return nil, err
		}
		lines[i] = normalized
	}
	return lines, nil
}

// ParseLines splits text into lines and returns their ids.
func (s *LineSink) ParseLines(text string) (spandiff.Slice[int], error) {
	lines, err := s.Normalize(text)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, s.addLine(line))
	}
	return spandiff.Slice[int](ids), nil
}

// Terminate restores the sink's line ending on normalized lines.
func (s *LineSink) Terminate(lines []string) []string {
	var newLine string
	switch s.NewLine {
	case NewLineCRLF:
		newLine = "\r\n"
	case NewLineLF:
		newLine = "\n"
	default:
		return lines
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, line+newLine)
	}
	return out
}

// Strings returns the text of the lines ids refer to, terminated with the
// sink's line ending.
func (s *LineSink) Strings(ids []int) []string {
	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, s.Lines[id])
	}
	return s.Terminate(lines)
}
