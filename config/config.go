/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides per-project configuration loading.
package config

// Config holds per-project defaults. Command-line flags override any
// value set here.
type Config struct {
	// Prefix is the global CSS variable prefix.
	Prefix string `yaml:"prefix" json:"prefix"`

	// Source is the token source root directory.
	Source string `yaml:"source" json:"source"`

	// Output is the stylesheet output path; empty means stdout.
	Output string `yaml:"output" json:"output"`

	// OKLCH enables the color-space conversion block.
	OKLCH bool `yaml:"oklch" json:"oklch"`

	// Enhancements enables the progressive-enhancement blocks.
	Enhancements bool `yaml:"enhancements" json:"enhancements"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Source: "tokens",
	}
}
