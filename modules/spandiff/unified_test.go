// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package spandiff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/antgroup/spandiff/modules/spandiff/color"
	"github.com/stretchr/testify/require"
)

func rawLines(s string) []string {
	if len(s) == 0 {
		return []string{}
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func lineDiff(before, after []string, contextLines int) *Unified {
	spans := Diff[string](Slice[string](before), Slice[string](after), ThroughButTerse)
	return ToUnified(&File{Name: "a.txt"}, &File{Name: "b.txt"}, spans, before, after, contextLines)
}

func TestUnifiedReplace(t *testing.T) {
	before := []string{"a\n", "b\n", "c\n", "d\n"}
	after := []string{"a\n", "x\n", "c\n", "d\n"}
	u := lineDiff(before, after, DefaultContextLines)
	require.Len(t, u.Hunks, 1)
	require.Equal(t, "diff --spandiff a/a.txt b/b.txt\n"+
		"--- a/a.txt\n"+
		"+++ b/b.txt\n"+
		"@@ -1,4 +1,4 @@\n"+
		" a\n"+
		"-b\n"+
		"+x\n"+
		" c\n"+
		" d\n", u.String())
}

func TestUnifiedContextSplitsHunks(t *testing.T) {
	before := []string{"a\n", "b\n", "c\n", "d\n", "e\n"}
	after := []string{"A\n", "b\n", "c\n", "d\n", "E\n"}
	u := lineDiff(before, after, 0)
	require.Len(t, u.Hunks, 2)
	var b strings.Builder
	for _, h := range u.Hunks {
		NewUnifiedEncoder(&b).writePatchHunk(&b, h)
	}
	require.Equal(t, "@@ -1 +1 @@\n-a\n+A\n@@ -5 +5 @@\n-e\n+E\n", b.String())

	// with enough context the two changes share one hunk
	u = lineDiff(before, after, 2)
	require.Len(t, u.Hunks, 1)
	require.Equal(t, 1, u.Hunks[0].FromLine)
	require.Len(t, u.Hunks[0].Lines, 7)
}

func TestUnifiedNewFile(t *testing.T) {
	after := rawLines("hello\nworld")
	spans := Diff[string](Slice[string]{}, Slice[string](after), ThroughButTerse)
	u := ToUnified(nil, &File{Name: "new.txt", Mode: 0o100644}, spans, nil, after, DefaultContextLines)
	require.Equal(t, "diff --spandiff a/new.txt b/new.txt\n"+
		"new file mode 100644\n"+
		"--- /dev/null\n"+
		"+++ b/new.txt\n"+
		"@@ -0,0 +1,2 @@\n"+
		"+hello\n"+
		"+world\n"+
		"\\ No newline at end of file\n", u.String())
}

func TestUnifiedStat(t *testing.T) {
	before := rawLines("a\nb\nc\nd\ne\nf\ng\nh\ni\nj\n")
	after := rawLines("a\nB\nc\nd\ne\nf\ng\nh\ni\nj\nk\n")
	u := lineDiff(before, after, DefaultContextLines)
	stats := u.Stat()
	require.Equal(t, 2, stats.Addition)
	require.Equal(t, 1, stats.Deletion)
	require.Equal(t, 2, stats.Hunks)

	spans := Diff[string](Slice[string](before), Slice[string](after), ThroughButTerse)
	s := Stat(spans)
	require.Equal(t, 2, s.Addition)
	require.Equal(t, 1, s.Deletion)
	require.Equal(t, 2, s.Hunks)
}

func TestUnifiedEncoderColor(t *testing.T) {
	u := lineDiff([]string{"a\n"}, []string{"b\n"}, DefaultContextLines)
	var buf bytes.Buffer
	e := NewUnifiedEncoder(&buf).SetColor(color.NewColorConfig()).SetSrcPrefix("old/").SetDstPrefix("new/")
	require.NoError(t, e.Encode([]*Unified{u}))
	out := buf.String()
	require.Contains(t, out, color.Bold+"diff --spandiff old/a.txt new/b.txt")
	require.Contains(t, out, color.Red+"-a"+color.Reset+"\n")
	require.Contains(t, out, color.Green+"+b"+color.Reset+"\n")
	require.Contains(t, out, color.Cyan+"@@ -1 +1 @@"+color.Reset)
}

func TestUnifiedIndexLine(t *testing.T) {
	spans := []Span{NewReplace(0, 0, 1)}
	u := ToUnified(&File{Name: "f", Hash: "1234567"}, &File{Name: "f", Hash: "89abcde"}, spans, []string{"x\n"}, []string{"y\n"}, 3)
	require.True(t, strings.HasPrefix(u.String(), "diff --spandiff a/f b/f\nindex 1234567..89abcde\n--- a/f\n+++ b/f\n"))
}
