// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/antgroup/spandiff/modules/strengthen"
)

const (
	ENV_SPANDIFF_CONFIG_SYSTEM = "SPANDIFF_CONFIG_SYSTEM"
	globalConfigPath           = "~/.spandiff.toml"
)

var (
	ErrKeyNotFound = errors.New("key not found")
)

func configSystemPath() string {
	if p, ok := os.LookupEnv(ENV_SPANDIFF_CONFIG_SYSTEM); ok {
		return p
	}
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	// spandiff prefix -->
	prefix := filepath.Dir(exe)
	if filepath.Base(prefix) == "bin" {
		prefix = filepath.Dir(prefix)
	}
	return filepath.Join(prefix, "/etc/spandiff.toml")
}

// LoadFile decodes the TOML file at path. Unknown keys are rejected so
// that typos surface instead of being ignored.
func LoadFile(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%s: unknown keys %s: %w", path, strings.Join(keys, ", "), ErrKeyNotFound)
	}
	return &cfg, nil
}

func LoadSystem() (*Config, error) {
	systemPath := configSystemPath()
	if len(systemPath) == 0 {
		return nil, os.ErrNotExist
	}
	if _, err := os.Stat(systemPath); err != nil {
		return nil, err
	}
	return LoadFile(systemPath)
}

func LoadGlobal() (*Config, error) {
	userPath := strengthen.ExpandPath(globalConfigPath)
	if _, err := os.Stat(userPath); err != nil && os.IsNotExist(err) {
		return &Config{}, nil
	}
	return LoadFile(userPath)
}

// LoadBaseline returns the system config overwritten by the global one.
func LoadBaseline() (*Config, error) {
	gc, err := LoadGlobal()
	if err != nil {
		return nil, err
	}
	cfg, err := LoadSystem()
	if os.IsNotExist(err) {
		return gc, nil
	}
	if err != nil {
		return nil, err
	}
	cfg.Overwrite(gc)
	return cfg, nil
}
