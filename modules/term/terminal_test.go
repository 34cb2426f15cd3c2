// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package term

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectLevel(t *testing.T) {
	tests := []struct {
		env  map[string]string
		want Level
	}{
		{map[string]string{}, LevelNone},
		{map[string]string{"TERM": "dumb"}, LevelNone},
		{map[string]string{"TERM": "xterm"}, Level16},
		{map[string]string{"TERM": "xterm-256color"}, Level256},
		{map[string]string{"TERM": "xterm", "COLORTERM": "truecolor"}, Level16M},
		{map[string]string{"TERM": "xterm-256color", "NO_COLOR": "1"}, LevelNone},
		{map[string]string{"NO_COLOR": "1", "SPANDIFF_FORCE_TRUECOLOR": "true"}, Level16M},
		{map[string]string{"WT_SESSION": "abc"}, Level16M},
	}
	for _, tt := range tests {
		got := DetectLevel(func(k string) string { return tt.env[k] })
		require.Equal(t, tt.want, got, "%v", tt.env)
	}
}

func TestLevelPaint(t *testing.T) {
	require.Equal(t, "x", LevelNone.Red("x"))
	require.Equal(t, "\x1b[32mx\x1b[0m", Level256.Green("x"))
	require.Equal(t, "\x1b[38;2;254;225;64mx\x1b[0m", Level16M.Yellow("x"))
	require.Equal(t, "truecolor", Level16M.String())
}
