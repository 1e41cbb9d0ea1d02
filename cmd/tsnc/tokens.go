// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/urfave/cli.v1"

	"github.com/probeum/go-tsnative/lang/scanner"
	"github.com/probeum/go-tsnative/lang/token"
)

var tokensCommand = cli.Command{
	Action:    tokens,
	Name:      "tokens",
	Usage:     "Print the token stream of a source file",
	ArgsUsage: "FILE",
	Flags: []cli.Flag{
		outFlag,
	},
	Category: "PARSER COMMANDS",
	Description: `
The tokens command scans FILE and prints one row per token with its kind,
text, byte offsets and line:column. Whitespace and comments are not shown.
A scan error is reported after the tokens read before it.`,
}

func tokens(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.NewExitError("tokens needs exactly one FILE argument", 2)
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	path := ctx.Args().First()
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	w, closeOut, err := openOutput(cfg.Output.Out)
	if err != nil {
		return err
	}
	defer closeOut()

	sc := scanner.New(path, string(src))
	toks, scanErr := sc.Tokenize()
	writeTokens(w, sc, toks)
	if scanErr != nil {
		writeDiagnostic(os.Stderr, scanErr)
		return cli.NewExitError("", 1)
	}
	return nil
}

// writeTokens renders toks as a table.
func writeTokens(w io.Writer, sc *scanner.Scanner, toks []token.Token) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Kind", "Text", "Start", "End", "Position"})
	table.SetAutoWrapText(false)
	for _, tok := range toks {
		pos := sc.File().Position(tok.Start)
		table.Append([]string{
			tok.Kind.String(),
			tok.Text,
			strconv.Itoa(tok.Start),
			strconv.Itoa(tok.End),
			fmt.Sprintf("%d:%d", pos.Line, pos.Column),
		})
	}
	table.Render()
}
