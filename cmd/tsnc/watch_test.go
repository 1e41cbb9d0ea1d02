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

	"github.com/probeum/go-tsnative/lang/parser"
)

func TestWatcherSkipsUnchangedContent(t *testing.T) {
	var buf bytes.Buffer
	w, err := newWatcher(parser.DefaultConfig, 8, &buf)
	require.NoError(t, err)

	path := writeFile(t, t.TempDir(), "main.ts", "main(1);")
	parsed, err := w.check(path)
	assert.True(t, parsed)
	assert.NoError(t, err)

	parsed, err = w.check(path)
	assert.False(t, parsed, "unchanged file was parsed again")
	assert.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("main();"), 0644))
	parsed, err = w.check(path)
	assert.True(t, parsed)
	assert.True(t, isSyntaxError(err), "got %v", err)
	assert.Contains(t, buf.String(), "error: ")

	_, err = w.check(filepath.Join(filepath.Dir(path), "gone.ts"))
	assert.Error(t, err)
	assert.False(t, isSyntaxError(err))
}

func TestWatchTarget(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "main.ts")

	target, match := watchTarget(file, false)
	assert.Equal(t, dir, target)
	assert.True(t, match(file))
	assert.False(t, match(filepath.Join(dir, "other.ts")))
	assert.False(t, match(filepath.Join(dir, ".main.ts.swp")))

	target, match = watchTarget(dir, true)
	assert.Equal(t, filepath.Join(dir, "..."), target)
	assert.True(t, match(filepath.Join(dir, "sub", "a.tsn")))
	assert.False(t, match(filepath.Join(dir, "notes.txt")))
}

func TestSourceFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.ts", "a;")
	writeFile(t, dir, "b.tsn", "b;")
	writeFile(t, dir, "notes.txt", "-")
	writeFile(t, dir, filepath.Join("sub", "c.ts"), "c;")

	files, err := sourceFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.ts"),
		filepath.Join(dir, "b.tsn"),
		filepath.Join(dir, "sub", "c.ts"),
	}, files)

	single := filepath.Join(dir, "notes.txt")
	files, err = sourceFiles(single)
	require.NoError(t, err)
	assert.Equal(t, []string{single}, files)
}
