// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"strings"

	"github.com/antgroup/spandiff/modules/spandiff"
	"github.com/antgroup/spandiff/modules/spandiff/color"
	"github.com/antgroup/spandiff/modules/textseq"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

func overwrite(a, b string) string {
	if len(b) != 0 {
		return b
	}
	return a
}

func overwriteInt(a, b *int) *int {
	if b != nil {
		return b
	}
	return a
}

type Diff struct {
	Level         string  `toml:"level,omitempty"`
	Context       *int    `toml:"context,omitempty"`
	TabWidth      *int    `toml:"tab-width,omitempty"`
	MaxLineLength *int    `toml:"max-line-length,omitempty"`
	Hashed        Boolean `toml:"hashed,omitempty"`
	NewLine       string  `toml:"newline,omitempty"`
	Encoding      string  `toml:"encoding,omitempty"`
	Decompress    Boolean `toml:"decompress,omitempty"`
}

func (d *Diff) Overwrite(o *Diff) {
	d.Level = overwrite(d.Level, o.Level)
	d.Context = overwriteInt(d.Context, o.Context)
	d.TabWidth = overwriteInt(d.TabWidth, o.TabWidth)
	d.MaxLineLength = overwriteInt(d.MaxLineLength, o.MaxLineLength)
	d.Hashed.Overwrite(o.Hashed)
	d.NewLine = overwrite(d.NewLine, o.NewLine)
	d.Encoding = overwrite(d.Encoding, o.Encoding)
	d.Decompress.Overwrite(o.Decompress)
}

func (d *Diff) MatchingLevel() (spandiff.Level, error) {
	return spandiff.LevelFromName(d.Level)
}

// ContextLines returns the configured context or the default.
func (d *Diff) ContextLines() int {
	if d.Context == nil || *d.Context < 0 {
		return spandiff.DefaultContextLines
	}
	return *d.Context
}

func intValue(p *int) int {
	if p == nil || *p < 0 {
		return 0
	}
	return *p
}

// NewLineMode parses newline: raw (default), lf or crlf.
func (d *Diff) NewLineMode() (textseq.NewLine, error) {
	switch strings.ToLower(d.NewLine) {
	case "", "raw":
		return textseq.NewLineRaw, nil
	case "lf":
		return textseq.NewLineLF, nil
	case "crlf":
		return textseq.NewLineCRLF, nil
	default:
	}
	return textseq.NewLineRaw, fmt.Errorf("unsupported newline mode '%s'", d.NewLine)
}

// NewLineSink returns a sink configured from d.
func (d *Diff) NewLineSink() (*textseq.LineSink, error) {
	mode, err := d.NewLineMode()
	if err != nil {
		return nil, err
	}
	sink := textseq.NewLineSink(mode)
	sink.TabWidth = intValue(d.TabWidth)
	sink.MaxLineLength = intValue(d.MaxLineLength)
	return sink, nil
}

type Color struct {
	UI      string `toml:"ui,omitempty"`
	Context string `toml:"context,omitempty"`
	Meta    string `toml:"meta,omitempty"`
	Frag    string `toml:"frag,omitempty"`
	Old     string `toml:"old,omitempty"`
	New     string `toml:"new,omitempty"`
	Stat    string `toml:"stat,omitempty"`
}

func (c *Color) Overwrite(o *Color) {
	c.UI = overwrite(c.UI, o.UI)
	c.Context = overwrite(c.Context, o.Context)
	c.Meta = overwrite(c.Meta, o.Meta)
	c.Frag = overwrite(c.Frag, o.Frag)
	c.Old = overwrite(c.Old, o.Old)
	c.New = overwrite(c.New, o.New)
	c.Stat = overwrite(c.Stat, o.Stat)
}

// Enabled resolves ui against whether the output is a color terminal.
func (c *Color) Enabled(terminal bool) (bool, error) {
	switch strings.ToLower(c.UI) {
	case "", ColorAuto:
		return terminal, nil
	case ColorAlways, "true", "on":
		return true, nil
	case ColorNever, "false", "off":
		return false, nil
	default:
	}
	return false, fmt.Errorf("unsupported color.ui '%s'", c.UI)
}

// ColorConfig builds the renderer colors. Unset keys keep their defaults.
func (c *Color) ColorConfig() color.ColorConfig {
	names := map[color.ColorKey]string{
		color.Context: c.Context,
		color.Meta:    c.Meta,
		color.Frag:    c.Frag,
		color.Old:     c.Old,
		color.New:     c.New,
		color.Stat:    c.Stat,
	}
	options := make([]color.ColorConfigOption, 0, len(color.Keys))
	for _, key := range color.Keys {
		options = append(options, color.WithNamedColor(key, names[key]))
	}
	return color.NewColorConfig(options...)
}

type Config struct {
	Diff  Diff  `toml:"diff,omitempty"`
	Color Color `toml:"color,omitempty"`
}

func (c *Config) Overwrite(o *Config) {
	c.Diff.Overwrite(&o.Diff)
	c.Color.Overwrite(&o.Color)
}

// Overlay returns flag when it is set and value otherwise.
func Overlay(value, flag string) string {
	return overwrite(value, flag)
}

// OverlayInt points at flag when it is not negative.
func OverlayInt(value *int, flag int) *int {
	if flag < 0 {
		return value
	}
	return &flag
}
