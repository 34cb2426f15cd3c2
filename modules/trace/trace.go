// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package trace

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antgroup/spandiff/modules/term"
)

type Debuger interface {
	DbgPrint(format string, args ...any)
}

// NewDebuger returns a Debuger printing to stderr when verbose is set.
func NewDebuger(verbose bool) Debuger {
	return &debuger{verbose: verbose, w: os.Stderr, level: term.StderrLevel}
}

type debuger struct {
	verbose bool
	w       io.Writer
	level   term.Level
}

func formatDebug(level term.Level, message string) []byte {
	var buffer bytes.Buffer
	for _, s := range strings.Split(strings.TrimRight(message, "\n"), "\n") {
		_, _ = buffer.WriteString(level.Yellow("* " + s))
		_ = buffer.WriteByte('\n')
	}
	return buffer.Bytes()
}

func (d debuger) DbgPrint(format string, args ...any) {
	if !d.verbose {
		return
	}
	_, _ = d.w.Write(formatDebug(d.level, fmt.Sprintf(format, args...)))
}

var (
	_ Debuger = &debuger{}
)
