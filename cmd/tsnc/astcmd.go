// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-ethereum/log"
	"gopkg.in/urfave/cli.v1"

	"github.com/probeum/go-tsnative/lang/ast"
)

var astCommand = cli.Command{
	Action:    astDump,
	Name:      "ast",
	Usage:     "Parse a source file and print its syntax tree",
	ArgsUsage: "FILE",
	Flags: []cli.Flag{
		formatFlag,
		outFlag,
		maxDepthFlag,
	},
	Category: "PARSER COMMANDS",
	Description: `
The ast command parses FILE and writes the tree in one of three formats:

    json   ESTree-style objects with "type", "start" and "end" fields
    spew   a Go value dump of the tree
    text   the program re-rendered as source, one statement per line`,
}

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

func astDump(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.NewExitError("ast needs exactly one FILE argument", 2)
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	path := ctx.Args().First()
	prog, err := parsePath(path, cfg.Parser)
	if err != nil {
		writeDiagnostic(os.Stderr, err)
		return cli.NewExitError("", 1)
	}
	log.Debug("Parsed program", "file", path, "statements", len(prog.Body))

	w, closeOut, err := openOutput(cfg.Output.Out)
	if err != nil {
		return err
	}
	if err := writeProgram(w, prog, cfg.Output.Format); err != nil {
		closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return err
	}
	if cfg.Output.Out != "" {
		log.Info("Wrote syntax tree", "file", cfg.Output.Out, "format", cfg.Output.Format)
	}
	return nil
}

// writeProgram renders prog to w in the given format.
func writeProgram(w io.Writer, prog *ast.Program, format string) error {
	switch format {
	case formatJSON:
		out, err := json.MarshalIndent(prog, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", out)
		return err
	case formatSpew:
		spewConfig.Fdump(w, prog)
		return nil
	case formatText:
		_, err := fmt.Fprintln(w, prog.String())
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}
