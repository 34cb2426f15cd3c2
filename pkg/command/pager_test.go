// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPagerCommand(t *testing.T) {
	exe, args, ok := pagerCommand("", false)
	require.True(t, ok)
	require.Equal(t, "less", exe)
	require.Empty(t, args)

	exe, args, ok = pagerCommand(`less -R --prompt "page %d"`, true)
	require.True(t, ok)
	require.Equal(t, "less", exe)
	require.Equal(t, []string{"-R", "--prompt", "page %d"}, args)

	_, _, ok = pagerCommand("  ", true)
	require.False(t, ok)

	_, _, ok = pagerCommand(`less "unterminated`, true)
	require.False(t, ok)
}
