// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package term

import (
	"os"
	"strings"

	"github.com/antgroup/spandiff/modules/strengthen"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Level is the color capability of a terminal.
type Level int

const (
	LevelNone Level = iota
	Level16
	Level256
	Level16M
)

func (l Level) String() string {
	switch l {
	case Level16:
		return "16"
	case Level256:
		return "256"
	case Level16M:
		return "truecolor"
	default:
	}
	return "none"
}

var (
	StderrLevel Level
	StdoutLevel Level
)

// DetectLevel derives the color level from the environment. NO_COLOR
// wins over everything except SPANDIFF_FORCE_TRUECOLOR.
func DetectLevel(getenv func(string) string) Level {
	if strengthen.SimpleAtob(getenv("SPANDIFF_FORCE_TRUECOLOR"), false) {
		return Level16M
	}
	if getenv("NO_COLOR") != "" {
		return LevelNone
	}
	if getenv("WT_SESSION") != "" {
		return Level16M
	}
	colorTerm := getenv("COLORTERM")
	termEnv := getenv("TERM")
	if strings.Contains(termEnv, "24bit") ||
		strings.Contains(termEnv, "truecolor") ||
		strings.Contains(colorTerm, "24bit") ||
		strings.Contains(colorTerm, "truecolor") {
		return Level16M
	}
	if strings.Contains(termEnv, "256") || strings.Contains(colorTerm, "256") {
		return Level256
	}
	if termEnv == "" || termEnv == "dumb" {
		return LevelNone
	}
	return Level16
}

func init() {
	level := DetectLevel(os.Getenv)
	if IsTerminal(os.Stderr.Fd()) {
		StderrLevel = level
	}
	if IsTerminal(os.Stdout.Fd()) {
		StdoutLevel = level
	}
}

func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Width returns the width of the terminal on stdout, or fallback when
// stdout is not a terminal.
func Width(fallback int) int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fallback
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallback
}
