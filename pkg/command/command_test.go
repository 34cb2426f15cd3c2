// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/antgroup/spandiff/modules/spandiff"
	"github.com/antgroup/spandiff/modules/term"
	"github.com/antgroup/spandiff/pkg/config"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestDiffLines(t *testing.T) {
	dir := t.TempDir()
	from := writeFile(t, dir, "a.txt", "one\ntwo\nthree\n")
	to := writeFile(t, dir, "b.txt", "one\n2\nthree\n")
	g := &Globals{}
	cfg := &config.Config{}
	c := &Diff{Unified: 1, TabWidth: -1, MaxLineLength: -1}
	c.apply(cfg)

	a, b, err := loadInputs(context.Background(), g, from, to, true, readOptions(cfg))
	require.NoError(t, err)
	require.Equal(t, 0o100644, a.mode)
	require.NotEqual(t, a.hash(), b.hash())
	require.Len(t, a.hash(), shortHash)

	for _, hashed := range []bool{false, true} {
		cfg.Diff.Hashed.Set(hashed)
		d, err := diffLines(context.Background(), g, cfg, a, b)
		require.NoError(t, err)
		require.Equal(t, []spandiff.Span{
			spandiff.NewUnchanged(0, 0, 1),
			spandiff.NewReplace(1, 1, 1),
			spandiff.NewUnchanged(2, 2, 1),
		}, d.spans)
		u := spandiff.ToUnified(&spandiff.File{Name: "a.txt"}, &spandiff.File{Name: "b.txt"}, d.spans, d.before, d.after, cfg.Diff.ContextLines())
		require.Equal(t, `diff --spandiff a/a.txt b/b.txt
--- a/a.txt
+++ b/b.txt
@@ -1,3 +1,3 @@
 one
-two
+2
 three
`, u.String())
	}
}

func TestDiffLinesOptions(t *testing.T) {
	dir := t.TempDir()
	from := writeFile(t, dir, "a.txt", "x\r\n\ty\n")
	to := writeFile(t, dir, "b.txt", "x\n    y\n")
	g := &Globals{}
	cfg := &config.Config{}
	c := &Diff{Unified: -1, TabWidth: 4, MaxLineLength: -1, NewLine: "lf"}
	c.apply(cfg)
	a, b, err := loadInputs(context.Background(), g, from, to, true, readOptions(cfg))
	require.NoError(t, err)
	d, err := diffLines(context.Background(), g, cfg, a, b)
	require.NoError(t, err)
	require.Equal(t, []spandiff.Span{spandiff.NewUnchanged(0, 0, 2)}, d.spans)
	require.NoError(t, c.exitStatus(d.spans))

	cfg.Diff.MaxLineLength = config.OverlayInt(nil, 2)
	_, err = diffLines(context.Background(), g, cfg, a, b)
	require.Error(t, err)
}

func TestLoadInputsCompressed(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write([]byte("hello\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	from := writeFile(t, dir, "a.txt.zst", buf.String())
	to := writeFile(t, dir, "b.txt", "hello\n")

	cfg := &config.Config{}
	(&MatchOptions{Decompress: true}).apply(cfg)
	a, b, err := loadInputs(context.Background(), &Globals{}, from, to, false, readOptions(cfg))
	require.NoError(t, err)
	require.Equal(t, b.content, a.content)
	require.Equal(t, a.hash(), b.hash())

	_, _, err = loadInputs(context.Background(), &Globals{}, "-", "-", true, readOptions(cfg))
	require.ErrorIs(t, err, ErrStdinTwice)
	_, _, err = loadInputs(context.Background(), &Globals{}, from, filepath.Join(dir, "missing"), true, readOptions(cfg))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestExitStatus(t *testing.T) {
	o := &MatchOptions{ExitCode: true}
	require.NoError(t, o.exitStatus([]spandiff.Span{spandiff.NewUnchanged(0, 0, 3)}))
	require.ErrorIs(t, o.exitStatus([]spandiff.Span{spandiff.NewInsert(0, 1)}), ErrDifferent)
	require.NoError(t, (&MatchOptions{}).exitStatus([]spandiff.Span{spandiff.NewInsert(0, 1)}))
}

func TestWriteSpans(t *testing.T) {
	spans := []spandiff.Span{spandiff.NewUnchanged(0, 0, 2), spandiff.NewDelete(2, 1)}
	var buf bytes.Buffer
	require.NoError(t, writeSpans(&buf, spans, false))
	require.Equal(t, "unchanged(dest=0,src=0,len=2)\ndelete(src=2,len=1)\n", buf.String())

	buf.Reset()
	require.NoError(t, writeSpans(&buf, nil, true))
	require.Equal(t, "[]\n", buf.String())
}

func TestWriteStat(t *testing.T) {
	var buf bytes.Buffer
	st := &spandiff.FileStat{Addition: 3, Deletion: 2, Hunks: 1}
	require.NoError(t, writeStat(&buf, statName("a.txt", "b.txt"), st, 80, term.LevelNone))
	require.Equal(t, " a.txt => b.txt | 5 +++--\n 1 file changed, 3 insertions(+), 2 deletions(-), 1 changed region\n", buf.String())

	buf.Reset()
	st = &spandiff.FileStat{Addition: 100, Deletion: 50, Hunks: 2}
	require.NoError(t, writeStat(&buf, statName("f", "f"), st, 20, term.LevelNone))
	require.Equal(t, " f | 150 +++++++---\n 1 file changed, 100 insertions(+), 50 deletions(-), 2 changed regions\n", buf.String())
}
