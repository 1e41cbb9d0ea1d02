// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"gopkg.in/urfave/cli.v1"

	"github.com/probeum/go-tsnative/lang/parser"
	"github.com/probeum/go-tsnative/lang/scanner"
)

var replCommand = cli.Command{
	Action: repl,
	Name:   "repl",
	Usage:  "Start an interactive parsing session",
	Flags: []cli.Flag{
		formatFlag,
		maxDepthFlag,
	},
	Category: "PARSER COMMANDS",
	Description: `
The repl command reads programs line by line and prints the tree of each
one, or its syntax error. Input that ends before the program is complete is
continued on the next line. Ctrl-C discards pending input; Ctrl-D exits.`,
}

const (
	prompt         = "> "
	continuePrompt = "... "
)

// session accumulates input lines until they form a complete program.
type session struct {
	cfg     parser.Config
	format  string
	out     io.Writer
	pending []string
}

// feed adds one input line. It reports whether more input is needed before
// the pending text can be parsed.
func (s *session) feed(line string) bool {
	s.pending = append(s.pending, line)
	src := strings.Join(s.pending, "\n")
	prog, err := parser.ParseFile("<repl>", src, s.cfg)
	if incomplete(src, err) {
		return true
	}
	s.pending = s.pending[:0]
	if err != nil {
		writeDiagnostic(s.out, err)
		return false
	}
	if err := writeProgram(s.out, prog, s.format); err != nil {
		fmt.Fprintln(s.out, err)
	}
	return false
}

// incomplete reports whether err means src stopped short of a full program:
// the parser ran out of tokens, or the scanner hit an unclosed block comment
// or string literal.
func incomplete(src string, err error) bool {
	var eofErr *parser.UnexpectedEndOfInputError
	if errors.As(err, &eofErr) {
		return true
	}
	var scanErr *scanner.Error
	if !errors.As(err, &scanErr) {
		return false
	}
	rest := src[scanErr.Pos.Offset:]
	return strings.HasPrefix(rest, "/*") || strings.HasPrefix(rest, `"`) || strings.HasPrefix(rest, "'")
}

func (s *session) reset() { s.pending = s.pending[:0] }

func repl(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	format := cfg.Output.Format
	if !ctx.IsSet(formatFlag.Name) {
		format = formatText
	}
	s := &session{cfg: cfg.Parser, format: format, out: os.Stdout}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Printf("Welcome to the %s %s parser console. Ctrl-D exits.\n", clientIdentifier, version)
	p := prompt
	for {
		input, err := line.Prompt(p)
		switch {
		case err == liner.ErrPromptAborted:
			s.reset()
			p = prompt
			continue
		case err == io.EOF:
			fmt.Println()
			return nil
		case err != nil:
			return err
		}
		if strings.TrimSpace(input) == "" && len(s.pending) == 0 {
			continue
		}
		line.AppendHistory(input)
		if s.feed(input) {
			p = continuePrompt
		} else {
			p = prompt
		}
	}
}
