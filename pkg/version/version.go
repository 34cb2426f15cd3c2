// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
)

var (
	version     string
	buildCommit string
	buildTime   string
)

// GetVersion returns the semver compatible version number. Builds without
// linker flags report the module version.
func GetVersion() string {
	if len(version) != 0 {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}

// GetVersionString returns a standard version header
func GetVersionString() string {
	commit, built := buildCommit, buildTime
	if len(commit) == 0 {
		commit = "none"
	}
	if len(built) == 0 {
		built = "unknown"
	}
	return fmt.Sprintf("%s %s (%s), built %s, %s/%s", filepath.Base(os.Args[0]), GetVersion(), commit, built, runtime.GOOS, runtime.GOARCH)
}
