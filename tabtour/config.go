// Copyright 2026 The tabtour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml"
)

// config holds the settings a TOML config file can supply. Flags
// given explicitly on the command line take precedence over it.
type config struct {
	// Out is the directory plots are written to.
	Out string `toml:"out"`

	// Width and Height give the plot size in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// View is a command to run on each rendered plot.
	View string `toml:"view"`

	// Lessons names the lessons to run when none are given on the
	// command line. Empty means all of them.
	Lessons []string `toml:"lessons"`
}

func defaultConfig() config {
	return config{Out: "plots", Width: 800, Height: 500}
}

// loadConfig reads path on top of the defaults, so a config file only
// needs to name the settings it changes.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
