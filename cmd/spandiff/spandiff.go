// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0
package main

import (
	"errors"
	"os"

	"github.com/alecthomas/kong"
	"github.com/antgroup/spandiff/modules/strengthen"
	"github.com/antgroup/spandiff/pkg/command"
	"github.com/antgroup/spandiff/pkg/version"
	"github.com/sirupsen/logrus"
)

type App struct {
	command.Globals
	Diff    command.Diff    `cmd:"diff" help:"Show changes between two text files as a unified diff"`
	Bytes   command.Bytes   `cmd:"bytes" help:"List byte level edit spans between two files"`
	Stat    command.Stat    `cmd:"stat" help:"Show a diffstat of two text files"`
	Config  command.Config  `cmd:"config" help:"Show the effective configuration"`
	Version command.Version `cmd:"version" help:"Show version information"`
	Debug   bool            `name:"debug" help:"Enable debug mode; analyze timing"`
}

func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	var app App
	ctx := kong.Parse(&app,
		kong.Name("spandiff"),
		kong.Description("spandiff - greedy longest-match diff for lines and bytes"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version": version.GetVersionString(),
		},
	)
	if app.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	m := strengthen.NewMeasurer("spandiff", app.Debug)
	err := ctx.Run(&app.Globals)
	m.Close()
	if err != nil {
		if !errors.Is(err, command.ErrDifferent) {
			logrus.Debugf("%s: %v", ctx.Command(), err)
		}
		os.Exit(1)
	}
}
