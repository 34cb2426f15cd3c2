// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/antgroup/spandiff/modules/spandiff"
	"github.com/antgroup/spandiff/modules/trace"
	"github.com/antgroup/spandiff/pkg/config"
	"github.com/antgroup/spandiff/pkg/version"
)

var (
	// ErrDifferent is returned with --exit-code when the inputs differ.
	ErrDifferent = errors.New("inputs differ")
)

type Globals struct {
	Verbose bool        `short:"V" help:"Make the operation more talkative"`
	Version VersionFlag `short:"v" name:"version" help:"Show version number and quit"`
}

func (g *Globals) DbgPrint(format string, args ...any) {
	trace.NewDebuger(g.Verbose).DbgPrint(format, args...)
}

type VersionFlag bool

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(version.GetVersionString())
	app.Exit(0)
	return nil
}

// MatchOptions are the flags shared by every diffing command. Zero values
// leave the configured value alone.
type MatchOptions struct {
	Level      string `name:"level" short:"l" help:"Matching level: through, medium or fast" placeholder:"<level>"`
	Decompress bool   `name:"decompress" short:"z" help:"Decode zstd and gzip compressed inputs"`
	ExitCode   bool   `name:"exit-code" help:"Exit with status 1 when the inputs differ"`
}

func (o *MatchOptions) apply(cfg *config.Config) {
	cfg.Diff.Level = config.Overlay(cfg.Diff.Level, o.Level)
	if o.Decompress {
		cfg.Diff.Decompress.Set(true)
	}
}

func (o *MatchOptions) exitStatus(spans []spandiff.Span) error {
	if !o.ExitCode {
		return nil
	}
	for _, s := range spans {
		if s.Kind != spandiff.Unchanged {
			return ErrDifferent
		}
	}
	return nil
}

// runEngine diffs with a dedicated engine so cache statistics can be
// reported in verbose mode.
func runEngine[E comparable](ctx context.Context, g *Globals, source, destination spandiff.Sequence[E], level spandiff.Level) ([]spandiff.Span, error) {
	e := spandiff.NewEngine[E]()
	elapsed, err := e.ProcessDiffContext(ctx, source, destination, level)
	if err != nil {
		return nil, err
	}
	hits, misses := e.CacheStats()
	g.DbgPrint("level %s: %d -> %d elements, match cache hits: %d misses: %d, use time: %v",
		level, source.Len(), destination.Len(), hits, misses, elapsed)
	return e.DiffReport(), nil
}

func loadConfig(g *Globals) (*config.Config, error) {
	cfg, err := config.LoadBaseline()
	if err != nil {
		return nil, trace.Errorf("load config: %w", err)
	}
	g.DbgPrint("config: level=%q context=%d", cfg.Diff.Level, cfg.Diff.ContextLines())
	return cfg, nil
}
