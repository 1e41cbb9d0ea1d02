// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tsnc.toml", `
[Parser]
MaxDepth = 32

[Output]
Format = "text"
`)
	cfg := defaultConfig()
	require.NoError(t, loadConfig(path, &cfg))
	assert.Equal(t, 32, cfg.Parser.MaxDepth)
	assert.Equal(t, formatText, cfg.Output.Format)
	assert.Equal(t, defaultConfig().Check, cfg.Check)
	assert.Equal(t, defaultConfig().Watch, cfg.Watch)
	assert.NoError(t, cfg.validate())
}

func TestLoadConfigUnknownField(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tsnc.toml", "[Parser]\nDepth = 3\n")
	cfg := defaultConfig()
	err := loadConfig(path, &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "Depth")
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := defaultConfig()
	cfg.Check.Workers = 3
	cfg.Output.Out = "tree.json"
	out, err := tomlSettings.Marshal(&cfg)
	require.NoError(t, err)

	var decoded tsncConfig
	require.NoError(t, tomlSettings.NewDecoder(bytes.NewReader(out)).Decode(&decoded))
	assert.Equal(t, cfg, decoded)
}

func TestValidate(t *testing.T) {
	cfg := defaultConfig()
	cfg.Output.Format = "yaml"
	assert.Error(t, cfg.validate())

	cfg = defaultConfig()
	cfg.Check.Workers = 0
	assert.Error(t, cfg.validate())

	cfg = defaultConfig()
	cfg.Parser.MaxDepth = -1
	assert.Error(t, cfg.validate())

	cfg = defaultConfig()
	cfg.Watch.CacheSize = 0
	assert.Error(t, cfg.validate())
}
