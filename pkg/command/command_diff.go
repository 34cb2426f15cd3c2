// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/antgroup/spandiff/modules/spandiff"
	"github.com/antgroup/spandiff/modules/term"
	"github.com/antgroup/spandiff/modules/textseq"
	"github.com/antgroup/spandiff/modules/trace"
	"github.com/antgroup/spandiff/pkg/config"
)

type Diff struct {
	From string `arg:"" name:"from" help:"Original file, '-' reads stdin"`
	To   string `arg:"" name:"to" help:"Modified file, '-' reads stdin"`

	MatchOptions `embed:""`

	Unified       int    `name:"unified" short:"U" help:"Generate diffs with <n> lines of context" default:"-1" placeholder:"<n>"`
	TabWidth      int    `name:"tab-width" help:"Expand tabs to <n> columns before comparing" default:"-1" placeholder:"<n>"`
	MaxLineLength int    `name:"max-line-length" help:"Refuse lines wider than <n> columns" default:"-1" placeholder:"<n>"`
	NewLine       string `name:"newline" help:"Line ending handling: raw, lf or crlf" placeholder:"<mode>"`
	Hashed        bool   `name:"hashed" help:"Compare lines by 64-bit BLAKE3 keys instead of exact text"`
	Encoding      string `name:"encoding" short:"e" help:"Charset of the inputs, 'auto' to detect" placeholder:"<charset>"`
	Color         string `name:"color" help:"When to use colors: auto, always or never" placeholder:"<when>"`
	NoPager       bool   `name:"no-pager" help:"Do not pipe output into a pager"`
	Spans         bool   `name:"spans" help:"Print edit spans instead of a unified diff"`
	JSON          bool   `name:"json" short:"j" help:"With --spans, print JSON"`
}

func (c *Diff) apply(cfg *config.Config) {
	c.MatchOptions.apply(cfg)
	cfg.Diff.Context = config.OverlayInt(cfg.Diff.Context, c.Unified)
	cfg.Diff.TabWidth = config.OverlayInt(cfg.Diff.TabWidth, c.TabWidth)
	cfg.Diff.MaxLineLength = config.OverlayInt(cfg.Diff.MaxLineLength, c.MaxLineLength)
	cfg.Diff.NewLine = config.Overlay(cfg.Diff.NewLine, c.NewLine)
	cfg.Diff.Encoding = config.Overlay(cfg.Diff.Encoding, c.Encoding)
	cfg.Color.UI = config.Overlay(cfg.Color.UI, c.Color)
	if c.Hashed {
		cfg.Diff.Hashed.Set(true)
	}
}

// lineDiff is the result of diffing two texts line by line.
type lineDiff struct {
	spans  []spandiff.Span
	before []string
	after  []string
}

func diffLines(ctx context.Context, g *Globals, cfg *config.Config, a, b *input) (*lineDiff, error) {
	level, err := cfg.Diff.MatchingLevel()
	if err != nil {
		return nil, err
	}
	sink, err := cfg.Diff.NewLineSink()
	if err != nil {
		return nil, err
	}
	d := &lineDiff{}
	if cfg.Diff.Hashed.True() {
		before, err := sink.Normalize(a.text.Content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.path, err)
		}
		after, err := sink.Normalize(b.text.Content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.path, err)
		}
		if d.spans, err = runEngine[uint64](ctx, g, textseq.HashedLines(before), textseq.HashedLines(after), level); err != nil {
			return nil, err
		}
		d.before, d.after = sink.Terminate(before), sink.Terminate(after)
		return d, nil
	}
	before, err := sink.ParseLines(a.text.Content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.path, err)
	}
	after, err := sink.ParseLines(b.text.Content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.path, err)
	}
	if d.spans, err = runEngine[int](ctx, g, before, after, level); err != nil {
		return nil, err
	}
	d.before, d.after = sink.Strings(before), sink.Strings(after)
	return d, nil
}

func readOptions(cfg *config.Config) *textseq.ReadOptions {
	return &textseq.ReadOptions{
		Charset:    cfg.Diff.Encoding,
		Decompress: cfg.Diff.Decompress.True(),
	}
}

func writeSpans(w io.Writer, spans []spandiff.Span, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if spans == nil {
			spans = []spandiff.Span{}
		}
		return enc.Encode(spans)
	}
	for _, s := range spans {
		if _, err := fmt.Fprintln(w, s.String()); err != nil {
			return err
		}
	}
	return nil
}

func (c *Diff) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	c.apply(cfg)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	a, b, err := loadInputs(ctx, g, c.From, c.To, true, readOptions(cfg))
	if err != nil {
		return err
	}
	d, err := diffLines(ctx, g, cfg, a, b)
	if err != nil {
		return trace.Errorf("diff %s %s: %w", c.From, c.To, err)
	}
	if c.Spans {
		if err := writeSpans(os.Stdout, d.spans, c.JSON); err != nil {
			return err
		}
		return c.exitStatus(d.spans)
	}
	u := spandiff.ToUnified(
		&spandiff.File{Name: c.From, Hash: a.hash(), Mode: a.mode},
		&spandiff.File{Name: c.To, Hash: b.hash(), Mode: b.mode},
		d.spans, d.before, d.after, cfg.Diff.ContextLines())
	if len(u.Hunks) == 0 {
		return c.exitStatus(d.spans)
	}
	p := NewPrinter(ctx, c.NoPager)
	defer p.Close() // nolint
	enabled, err := cfg.Color.Enabled(p.ColorMode() != term.LevelNone)
	if err != nil {
		return trace.Errorf("%w", err)
	}
	e := spandiff.NewUnifiedEncoder(p)
	if enabled {
		e.SetColor(cfg.Color.ColorConfig())
	}
	if err := e.Encode([]*spandiff.Unified{u}); err != nil {
		return err
	}
	return c.exitStatus(d.spans)
}
