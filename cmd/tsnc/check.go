// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/urfave/cli.v1"

	"github.com/probeum/go-tsnative/lang/parser"
)

var checkCommand = cli.Command{
	Action:    check,
	Name:      "check",
	Usage:     "Parse source files and report syntax errors",
	ArgsUsage: "FILE...",
	Flags: []cli.Flag{
		workersFlag,
		maxDepthFlag,
	},
	Category: "PARSER COMMANDS",
	Description: `
The check command parses every FILE, up to --workers at a time, and prints
the first syntax error of each failing file. It exits non-zero if any file
fails.`,
}

// checkResult is the outcome of parsing one file.
type checkResult struct {
	Path       string
	Statements int
	Err        error
}

func check(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return cli.NewExitError("check needs at least one FILE argument", 2)
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	start := time.Now()
	results, err := checkFiles(context.Background(), ctx.Args(), cfg.Parser, cfg.Check.Workers)
	if err != nil {
		return err
	}
	failed := reportResults(os.Stderr, results)
	log.Info("Checked files", "files", len(results), "failed", failed, "elapsed", time.Since(start))
	if failed > 0 {
		return cli.NewExitError(fmt.Sprintf("%d of %d files failed", failed, len(results)), 1)
	}
	return nil
}

// checkFiles parses each path with its own parser, at most workers at a time.
// Results are returned in the order of paths. The error is non-nil only if
// ctx is cancelled.
func checkFiles(ctx context.Context, paths []string, cfg parser.Config, workers int) ([]checkResult, error) {
	results := make([]checkResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i].Path = path
			prog, err := parsePath(path, cfg)
			if err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Statements = len(prog.Body)
			log.Debug("Parsed file", "file", path, "statements", len(prog.Body))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// reportResults writes a diagnostic per failed result and returns the number
// of failures.
func reportResults(w io.Writer, results []checkResult) int {
	var failed int
	for _, res := range results {
		if res.Err == nil {
			continue
		}
		failed++
		writeDiagnostic(w, res.Err)
	}
	return failed
}
