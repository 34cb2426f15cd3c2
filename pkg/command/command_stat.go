// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/antgroup/spandiff/modules/spandiff"
	"github.com/antgroup/spandiff/modules/term"
	"github.com/antgroup/spandiff/modules/trace"
	"github.com/rivo/uniseg"
)

type Stat struct {
	From string `arg:"" name:"from" help:"Original file, '-' reads stdin"`
	To   string `arg:"" name:"to" help:"Modified file, '-' reads stdin"`

	MatchOptions `embed:""`

	Encoding string `name:"encoding" short:"e" help:"Charset of the inputs, 'auto' to detect" placeholder:"<charset>"`
}

func statName(from, to string) string {
	if from == to {
		return from
	}
	return from + " => " + to
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// writeStat prints a git style diffstat line followed by the summary.
func writeStat(w io.Writer, name string, st *spandiff.FileStat, width int, level term.Level) error {
	total := st.Addition + st.Deletion
	count := strconv.Itoa(total)
	// " name | count " plus the bar
	room := width - uniseg.StringWidth(name) - len(count) - 5
	adds, dels := st.Addition, st.Deletion
	if room < 1 {
		room = 1
	}
	if total > room {
		adds = st.Addition * room / total
		dels = st.Deletion * room / total
		if st.Addition != 0 && adds == 0 {
			adds = 1
		}
		if st.Deletion != 0 && dels == 0 {
			dels = 1
		}
	}
	bar := level.Green(strings.Repeat("+", adds)) + level.Red(strings.Repeat("-", dels))
	if _, err := fmt.Fprintf(w, " %s | %s %s\n", name, count, bar); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, " 1 file changed, %d %s(+), %d %s(-), %d changed %s\n",
		st.Addition, plural(st.Addition, "insertion", "insertions"),
		st.Deletion, plural(st.Deletion, "deletion", "deletions"),
		st.Hunks, plural(st.Hunks, "region", "regions"))
	return err
}

func (c *Stat) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	c.MatchOptions.apply(cfg)
	if len(c.Encoding) != 0 {
		cfg.Diff.Encoding = c.Encoding
	}
	ctx := context.Background()
	a, b, err := loadInputs(ctx, g, c.From, c.To, true, readOptions(cfg))
	if err != nil {
		return err
	}
	d, err := diffLines(ctx, g, cfg, a, b)
	if err != nil {
		return trace.Errorf("diff %s %s: %w", c.From, c.To, err)
	}
	st := spandiff.Stat(d.spans)
	if st.Hunks == 0 {
		return nil
	}
	level := term.StdoutLevel
	if enabled, err := cfg.Color.Enabled(level != term.LevelNone); err != nil || !enabled {
		level = term.LevelNone
	}
	if err := writeStat(os.Stdout, statName(c.From, c.To), st, term.Width(80), level); err != nil {
		return err
	}
	return c.exitStatus(d.spans)
}
