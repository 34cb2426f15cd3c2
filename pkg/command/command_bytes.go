// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"os/signal"

	"github.com/antgroup/spandiff/modules/textseq"
	"github.com/antgroup/spandiff/modules/trace"
)

type Bytes struct {
	From string `arg:"" name:"from" help:"Original file, '-' reads stdin"`
	To   string `arg:"" name:"to" help:"Modified file, '-' reads stdin"`

	MatchOptions `embed:""`

	JSON bool `name:"json" short:"j" help:"Print spans as JSON"`
}

func (c *Bytes) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	c.MatchOptions.apply(cfg)
	level, err := cfg.Diff.MatchingLevel()
	if err != nil {
		return trace.Errorf("%w", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	a, b, err := loadInputs(ctx, g, c.From, c.To, false, readOptions(cfg))
	if err != nil {
		return err
	}
	spans, err := runEngine[byte](ctx, g, textseq.Bytes(a.content), textseq.Bytes(b.content), level)
	if err != nil {
		return trace.Errorf("diff %s %s: %w", c.From, c.To, err)
	}
	if err := writeSpans(os.Stdout, spans, c.JSON); err != nil {
		return err
	}
	return c.exitStatus(spans)
}
