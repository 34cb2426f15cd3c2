// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package color

import (
	"strings"

	"github.com/mgutz/ansi"
)

// Colors. See https://github.com/git/git/blob/v2.26.2/color.h#L24-L53.
const (
	Normal    = ""
	Reset     = "\033[m"
	Bold      = "\033[1m"
	Red       = "\033[31m"
	Green     = "\033[32m"
	Yellow    = "\033[33m"
	Cyan      = "\033[36m"
	Faint     = "\033[2m"
	BoldRed   = "\033[1;31m"
	BoldGreen = "\033[1;32m"
)

// A ColorKey is a key into a ColorConfig map. Keys follow git's diff.color
// subsection names.
type ColorKey string

const (
	Context ColorKey = "context"
	Meta    ColorKey = "meta"
	Frag    ColorKey = "frag"
	Old     ColorKey = "old"
	New     ColorKey = "new"
	Stat    ColorKey = "stat"
)

// Keys lists every ColorKey understood by the renderer.
var Keys = []ColorKey{Context, Meta, Frag, Old, New, Stat}

// A ColorConfig is a color configuration. A nil or empty ColorConfig
// corresponds to no color.
type ColorConfig map[ColorKey]string

// A ColorConfigOption sets an option on a ColorConfig.
type ColorConfigOption func(ColorConfig)

// WithColor sets the escape sequence for key.
func WithColor(key ColorKey, color string) ColorConfigOption {
	return func(cc ColorConfig) {
		cc[key] = color
	}
}

// WithNamedColor sets the color for key from a style name such as "red",
// "green+b" or "white+h:black". An empty name keeps the current color.
func WithNamedColor(key ColorKey, name string) ColorConfigOption {
	return func(cc ColorConfig) {
		if code, ok := ParseColor(name); ok {
			cc[key] = code
		}
	}
}

// ParseColor converts an mgutz/ansi style name to an escape sequence.
func ParseColor(name string) (string, bool) {
	name = strings.TrimSpace(name)
	switch strings.ToLower(name) {
	case "":
		return "", false
	case "normal", "none", "off":
		return Normal, true
	default:
	}
	return ansi.ColorCode(name), true
}

var defaultColorConfig = ColorConfig{
	Context: Normal,
	Meta:    Bold,
	Frag:    Cyan,
	Old:     Red,
	New:     Green,
	Stat:    Yellow,
}

// NewColorConfig returns the default color configuration with options
// applied.
func NewColorConfig(options ...ColorConfigOption) ColorConfig {
	cc := make(ColorConfig, len(defaultColorConfig))
	for key, value := range defaultColorConfig {
		cc[key] = value
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

// Reset returns the ANSI escape sequence to reset the color with key set from
// cc. If no color was set then no reset is needed so it returns the empty
// string.
func (cc ColorConfig) Reset(key ColorKey) string {
	if cc[key] == "" {
		return ""
	}
	return Reset
}

// Wrap surrounds s with the color of key.
func (cc ColorConfig) Wrap(key ColorKey, s string) string {
	if cc[key] == "" {
		return s
	}
	return cc[key] + s + Reset
}
