// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"

	"github.com/antgroup/spandiff/pkg/config"
)

type Config struct {
	Z bool `name:"null" short:"z" help:"Terminate entries with NUL instead of newline"`
}

func (c *Config) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	config.Display(cfg, &config.DisplayOptions{Writer: os.Stdout, Z: c.Z})
	return nil
}
