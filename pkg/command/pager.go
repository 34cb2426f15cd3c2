// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/antgroup/spandiff/modules/term"
	"github.com/kballard/go-shellquote"
)

type Printer interface {
	io.WriteCloser
	ColorMode() term.Level
}

type printer struct {
	w         io.Writer
	colorMode term.Level
	closeFn   func() error
}

func (p *printer) ColorMode() term.Level {
	return p.colorMode
}

func (p *printer) Write(b []byte) (n int, err error) {
	return p.w.Write(b)
}

func (p *printer) Close() error {
	if p.closeFn == nil {
		return nil
	}
	return p.closeFn()
}

// https://github.com/sharkdp/bat/blob/master/src/less.rs
func lookupPager() (string, bool) {
	if pager, ok := os.LookupEnv("SPANDIFF_PAGER"); ok {
		return pager, ok
	}
	return os.LookupEnv("PAGER")
}

// pagerCommand splits a PAGER value into the executable and its arguments.
// An empty value disables paging.
func pagerCommand(pager string, set bool) (string, []string, bool) {
	if set && len(strings.TrimSpace(pager)) == 0 {
		return "", nil, false
	}
	if len(pager) == 0 {
		pager = "less"
	}
	cmdArgs, err := shellquote.Split(pager)
	if err != nil || len(cmdArgs) == 0 {
		return "", nil, false
	}
	return cmdArgs[0], cmdArgs[1:], true
}

func sanitizeEnv(keys ...string) []string {
	drop := make(map[string]bool, len(keys))
	for _, k := range keys {
		drop[k] = true
	}
	env := make([]string, 0, len(os.Environ())+2)
	for _, e := range os.Environ() {
		k, _, _ := strings.Cut(e, "=")
		if drop[k] {
			continue
		}
		env = append(env, e)
	}
	return env
}

// NewPrinter pages output through $PAGER (less by default) when stdout is
// a color terminal.
func NewPrinter(ctx context.Context, noPager bool) Printer {
	if noPager || term.StdoutLevel == term.LevelNone {
		return &printer{w: os.Stdout, colorMode: term.StdoutLevel}
	}
	pager, pagerArgs, ok := pagerCommand(lookupPager())
	if !ok {
		return &printer{w: os.Stdout, colorMode: term.StdoutLevel}
	}
	pagerExe, err := exec.LookPath(pager)
	if err != nil {
		return &printer{w: os.Stdout, colorMode: term.StdoutLevel}
	}
	cmd := exec.CommandContext(ctx, pagerExe, pagerArgs...)
	cmd.Env = sanitizeEnv("PAGER", "LESS", "LV")
	// PAGER_ENV: LESS=FRX LV=-c
	cmd.Env = append(cmd.Env, "LESS=FRX", "LV=-c")
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return &printer{w: os.Stdout, colorMode: term.StdoutLevel}
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		_ = stdin.Close()
		return &printer{w: os.Stdout, colorMode: term.StdoutLevel}
	}
	return &printer{w: stdin, colorMode: term.StdoutLevel, closeFn: func() error {
		_ = stdin.Close()
		return cmd.Wait()
	}}
}
