// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package strengthen

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"

	"github.com/sirupsen/logrus"
)

// Measurer records a CPU profile for the lifetime of a command.
type Measurer struct {
	closeFn func()
}

func NewMeasurer(name string, debugMode bool) *Measurer {
	m := &Measurer{}
	if !debugMode {
		return m
	}
	pprofName := filepath.Join(os.TempDir(), fmt.Sprintf("%s-%d.pprof", name, os.Getpid()))
	fd, err := os.Create(pprofName)
	if err != nil {
		logrus.Warnf("create profile %s: %v", pprofName, err)
		return m
	}
	if err = pprof.StartCPUProfile(fd); err != nil {
		_ = fd.Close()
		logrus.Warnf("start cpu profile: %v", err)
		return m
	}
	m.closeFn = func() {
		pprof.StopCPUProfile()
		_ = fd.Close()
		fmt.Fprintf(os.Stderr, "Task operation completed\ngo tool pprof -http=\":8080\" %s\n", pprofName)
	}
	return m
}

func (d *Measurer) Close() {
	if d.closeFn != nil {
		d.closeFn()
	}
}
