// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package strengthen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	require.Equal(t, filepath.Join(home, ".spandiff.toml"), ExpandPath("~/.spandiff.toml"))
	require.Equal(t, home, ExpandPath("~"))
	require.Equal(t, "/tmp/x", ExpandPath("/tmp/x"))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(wd, "a.txt"), ExpandPath("a.txt"))
}

func TestSimpleAtob(t *testing.T) {
	require.True(t, SimpleAtob("Yes", false))
	require.False(t, SimpleAtob("off", true))
	require.True(t, SimpleAtob("maybe", true))
}

func TestFormatSize(t *testing.T) {
	require.Equal(t, "512 B", FormatSize(512))
	require.Equal(t, "1.5 KiB", FormatSize(1536))
	require.Equal(t, "100 MiB", FormatSize(100<<20))
}
