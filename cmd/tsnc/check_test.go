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
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probeum/go-tsnative/lang/parser"
)

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "good.ts", "declare function print(s: string): void;\nprint('hi');\n"),
		writeFile(t, dir, "bad.ts", "foo();\n"),
		filepath.Join(dir, "missing.ts"),
	}
	results, err := checkFiles(context.Background(), paths, parser.DefaultConfig, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, paths[0], results[0].Path)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, 2, results[0].Statements)

	var terr *parser.UnexpectedTokenError
	assert.True(t, errors.As(results[1].Err, &terr), "got %v", results[1].Err)
	assert.True(t, isSyntaxError(results[1].Err))

	assert.True(t, errors.Is(results[2].Err, fs.ErrNotExist), "got %v", results[2].Err)
	assert.False(t, isSyntaxError(results[2].Err))

	var buf bytes.Buffer
	assert.Equal(t, 2, reportResults(&buf, results))
	assert.Equal(t, 2, strings.Count(buf.String(), "error: "))
}

func TestCheckFilesSingleWorker(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.ts", "b.ts", "c.ts", "d.ts", "e.ts"} {
		paths = append(paths, writeFile(t, dir, name, "const x: number = 1; x;"))
	}
	results, err := checkFiles(context.Background(), paths, parser.DefaultConfig, 1)
	require.NoError(t, err)
	for i, res := range results {
		assert.Equal(t, paths[i], res.Path)
		assert.NoError(t, res.Err)
		assert.Equal(t, 2, res.Statements)
	}
}

func TestCheckFilesCancelled(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.ts", "a;")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := checkFiles(ctx, []string{path}, parser.DefaultConfig, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
