// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package color

import (
	"testing"

	"github.com/mgutz/ansi"
	"github.com/stretchr/testify/require"
)

func TestNamedColor(t *testing.T) {
	cc := NewColorConfig(
		WithNamedColor(Old, "magenta+b"),
		WithNamedColor(New, ""),
		WithNamedColor(Frag, "off"),
	)
	require.Equal(t, ansi.ColorCode("magenta+b"), cc[Old])
	require.Equal(t, Green, cc[New])
	require.Equal(t, Normal, cc[Frag])
	require.Equal(t, "", cc.Reset(Frag))
	require.Equal(t, Reset, cc.Reset(Old))
}

func TestWrap(t *testing.T) {
	cc := NewColorConfig(WithColor(Stat, Yellow))
	require.Equal(t, Yellow+"+3"+Reset, cc.Wrap(Stat, "+3"))
	require.Equal(t, "ctx", cc.Wrap(Context, "ctx"))
	var none ColorConfig
	require.Equal(t, "-1", none.Wrap(Old, "-1"))
}
