// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/rainbow/base/errors"
	"cogentcore.org/rainbow/base/iox/tomlx"
	"cogentcore.org/rainbow/base/reflectx"
	"cogentcore.org/rainbow/progress"
	"cogentcore.org/rainbow/progress/filestore"
	"cogentcore.org/rainbow/progress/sqlitestore"
	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/go-homedir"
)

// EnvPrefix is the prefix of the environment variables that override
// the config file.
const EnvPrefix = "RAINBOW_"

// ConfigFile is the name of the config file in the data directory.
const ConfigFile = "config.toml"

// Config is the configuration of the rainbow tool. Values come from the
// `default:` tags, then the config file, then the environment, and then
// the command line flags, each overriding the previous ones.
type Config struct {

	// DataDir is the directory holding the config file and the progress.
	DataDir string `toml:"dataDir" env:"DATA_DIR" default:"~/.rainbow"`

	// Store is where progress is kept: sqlite, toml, json, yaml, or memory.
	Store string `toml:"store" env:"STORE" default:"sqlite"`

	// Mode is the game mode to play and to show progress for.
	Mode progress.Mode `toml:"mode" env:"MODE" default:"COLOR_DISTINGUISH"`

	// Count is the number of colors in each question.
	Count int `toml:"count" env:"COUNT" default:"9"`

	// Seed seeds the color generator for reproducible challenges;
	// 0 uses the global random source.
	Seed int64 `toml:"seed" env:"SEED"`

	// Calibrate configures the calibrate command.
	Calibrate CalibrateConfig `toml:"calibrate" envPrefix:"CALIBRATE_"`
}

// CalibrateConfig configures the calibrate command.
type CalibrateConfig struct {

	// Samples is the number of challenges generated per level.
	Samples int `toml:"samples" env:"SAMPLES" default:"200"`

	// Workers is the number of levels calibrated in parallel.
	Workers int `toml:"workers" env:"WORKERS" default:"4"`
}

// LoadConfig returns the config from the defaults, the given config
// file, and the given environment variables. An empty file name uses
// [ConfigFile] in the data directory if it exists.
func LoadConfig(file string, environ map[string]string) (*Config, error) {
	cfg := &Config{}
	errors.Log(reflectx.SetFromDefaultTags(cfg))
	if err := parseEnv(cfg, environ); err != nil {
		return nil, err
	}
	if file == "" {
		// a data directory that can not be expanded is reported below
		if dir := errors.Ignore1(homedir.Expand(cfg.DataDir)); dir != "" {
			file = filepath.Join(dir, ConfigFile)
			if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
				file = ""
			}
		}
	}
	if file != "" {
		if err := tomlx.Open(cfg, file); err != nil {
			return nil, fmt.Errorf("config file %q: %w", file, err)
		}
		// the environment overrides the file
		if err := parseEnv(cfg, environ); err != nil {
			return nil, err
		}
	}
	dir, err := homedir.Expand(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	cfg.DataDir = dir
	return cfg, nil
}

func parseEnv(cfg *Config, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Environ returns the environment of the process as a map.
func Environ() map[string]string {
	return env.ToMap(os.Environ())
}

// OpenStore opens the progress store selected by the config. The
// returned close function must be called when done with the store.
func (c *Config) OpenStore() (progress.Store, func() error, error) {
	noop := func() error { return nil }
	kind := strings.ToLower(c.Store)
	if kind == "memory" {
		return progress.NewMemStore(), noop, nil
	}
	if err := os.MkdirAll(c.DataDir, 0o755); err != nil {
		return nil, nil, err
	}
	switch kind {
	case "sqlite":
		s, err := sqlitestore.Open(filepath.Join(c.DataDir, "progress.db"))
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case "toml", "json", "yaml":
		s, err := filestore.New(filepath.Join(c.DataDir, "progress."+kind))
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil
	}
	return nil, nil, fmt.Errorf("unknown store %q (use sqlite, toml, json, yaml, or memory)", c.Store)
}
