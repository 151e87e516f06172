/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/gvanim/config"
	"bennypowers.dev/gvanim/internal/mapfs"
)

func TestLoad_YAML(t *testing.T) {
	filesystem := mapfs.New()
	filesystem.AddFile("project/.config/gvanim.yaml", `
prefix: rh
source: design/tokens
output: dist/tokens.css
oklch: true
`, 0o644)

	cfg, err := config.Load(filesystem, "project")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "rh", cfg.Prefix)
	assert.Equal(t, "design/tokens", cfg.Source)
	assert.Equal(t, "dist/tokens.css", cfg.Output)
	assert.True(t, cfg.OKLCH)
	assert.False(t, cfg.Enhancements)
}

func TestLoad_JSON(t *testing.T) {
	filesystem := mapfs.New()
	filesystem.AddFile("project/.config/gvanim.json",
		`{ "prefix": "my-ds", "enhancements": true }`, 0o644)

	cfg, err := config.Load(filesystem, "project")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "my-ds", cfg.Prefix)
	assert.True(t, cfg.Enhancements)
	// Unset fields keep defaults.
	assert.Equal(t, "tokens", cfg.Source)
}

func TestLoad_YAMLTakesPriority(t *testing.T) {
	filesystem := mapfs.New()
	filesystem.AddFile("project/.config/gvanim.yaml", `prefix: from-yaml`, 0o644)
	filesystem.AddFile("project/.config/gvanim.json", `{ "prefix": "from-json" }`, 0o644)

	cfg, err := config.Load(filesystem, "project")
	require.NoError(t, err)
	assert.Equal(t, "from-yaml", cfg.Prefix)
}

func TestLoad_NotFound(t *testing.T) {
	filesystem := mapfs.New()
	filesystem.AddDir("project", 0o755)

	cfg, err := config.Load(filesystem, "project")
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadOrDefault(t *testing.T) {
	filesystem := mapfs.New()

	cfg := config.LoadOrDefault(filesystem, "project")
	require.NotNil(t, cfg)
	assert.Equal(t, "tokens", cfg.Source)
	assert.Empty(t, cfg.Prefix)
}

func TestLoad_InvalidYAML(t *testing.T) {
	filesystem := mapfs.New()
	filesystem.AddFile("project/.config/gvanim.yaml", "prefix: [unclosed", 0o644)

	_, err := config.Load(filesystem, "project")
	assert.Error(t, err)
}
