// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package parser

import (
	"fmt"
	"strings"

	"github.com/probeum/go-tsnative/lang/source"
	"github.com/probeum/go-tsnative/lang/token"
)

// UnexpectedTokenError reports a token whose kind does not fit the production
// being parsed. Expected is a token kind name such as "IDENTIFIER" or ")" or
// a production name such as "statement".
type UnexpectedTokenError struct {
	Expected string
	Got      token.Token
	Pos      source.Position
	Context  string
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("%s: unexpected token: expected %s, got %s (%q)\n%s",
		e.Pos, e.Expected, e.Got.Kind, e.Got.Text, indent(e.Context))
}

// UnexpectedEndOfInputError reports that the input ended while a production
// still needed a token.
type UnexpectedEndOfInputError struct {
	Expected string
	Pos      source.Position
	Context  string
}

func (e *UnexpectedEndOfInputError) Error() string {
	return fmt.Sprintf("%s: unexpected end of input, expected %s\n%s",
		e.Pos, e.Expected, indent(e.Context))
}

// DepthError reports input nested deeper than Config.MaxDepth.
type DepthError struct {
	Limit   int
	Pos     source.Position
	Context string
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("%s: nesting exceeds the maximum depth of %d\n%s",
		e.Pos, e.Limit, indent(e.Context))
}

// unexpected builds the error for the current token not matching want.
func (p *Parser) unexpected(want string) error {
	pos := p.file.Position(p.tok.Start)
	if p.tok.Kind == token.EOF {
		return &UnexpectedEndOfInputError{
			Expected: want,
			Pos:      pos,
			Context:  p.file.Context(p.tok.Start),
		}
	}
	return &UnexpectedTokenError{
		Expected: want,
		Got:      p.tok,
		Pos:      pos,
		Context:  p.file.Context(p.tok.Start),
	}
}

func indent(s string) string {
	return "\t" + strings.ReplaceAll(s, "\n", "\n\t")
}
