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

	"github.com/fatih/color"

	"github.com/probeum/go-tsnative/lang/ast"
	"github.com/probeum/go-tsnative/lang/parser"
	"github.com/probeum/go-tsnative/lang/scanner"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	caretColor = color.New(color.FgGreen, color.Bold)
)

// writeDiagnostic prints a parse or scan error: the headline after a
// highlighted "error:" label, then the source context with the caret line
// highlighted.
func writeDiagnostic(w io.Writer, err error) {
	lines := strings.Split(err.Error(), "\n")
	errorColor.Fprint(w, "error: ")
	fmt.Fprintln(w, lines[0])
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "^" {
			caretColor.Fprintln(w, line)
			continue
		}
		fmt.Fprintln(w, line)
	}
}

// isSyntaxError reports whether err came from scanning or parsing, as
// opposed to reading the file.
func isSyntaxError(err error) bool {
	var (
		scanErr  *scanner.Error
		tokErr   *parser.UnexpectedTokenError
		eofErr   *parser.UnexpectedEndOfInputError
		depthErr *parser.DepthError
	)
	return errors.As(err, &scanErr) || errors.As(err, &tokErr) ||
		errors.As(err, &eofErr) || errors.As(err, &depthErr)
}

// parsePath reads and parses one source file.
func parsePath(path string, cfg parser.Config) (*ast.Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parser.ParseFile(path, string(src), cfg)
}

// openOutput returns the writer named by path, or stdout when path is empty.
// The returned close function must be called when done.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
