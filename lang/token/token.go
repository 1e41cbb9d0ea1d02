// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package token defines the lexical token kinds of the TSN language.
//
// The set of kinds is closed: the scanner never produces a kind outside this
// enumeration, and the parser dispatches on it with exhaustive switches.
package token

import "fmt"

// Token is a classified, position-tagged substring of the source.
//
// Text is the exact matched substring; string quotes are kept. Start and End
// are byte offsets into the source text, End exclusive.
type Token struct {
	Kind  Kind
	Text  string
	Start int
	End   int
}

func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case NUMBER, STRING, IDENTIFIER:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	}
	return t.Kind.String()
}

// Kind is the set of lexical token kinds.
type Kind int

const (
	// EOF marks the end of input. It is never matched by a scanning rule.
	EOF Kind = iota

	// Literals
	NUMBER     // 42
	STRING     // "hello" or 'hello'
	IDENTIFIER // add, $x, #tag

	// Keywords
	keywordStart
	DECLARE  // declare
	FUNCTION // function
	RETURN   // return
	CONST    // const
	keywordEnd

	// Punctuation
	ASSIGN    // =
	SEMICOLON // ;  (a run of semicolons is one token)
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LBRACKET  // [
	RBRACKET  // ]
	COMMA     // ,
	COLON     // :  (a run of colons is one token)
)

var kindNames = [...]string{
	EOF: "EOF",

	NUMBER:     "NUMBER",
	STRING:     "STRING",
	IDENTIFIER: "IDENTIFIER",

	DECLARE:  "DECLARE",
	FUNCTION: "FUNCTION",
	RETURN:   "RETURN",
	CONST:    "CONST",

	ASSIGN:    "=",
	SEMICOLON: ";",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	LBRACKET:  "[",
	RBRACKET:  "]",
	COMMA:     ",",
	COLON:     ":",
}

// keywordText holds the source spelling of each keyword.
var keywordText = map[Kind]string{
	DECLARE:  "declare",
	FUNCTION: "function",
	RETURN:   "return",
	CONST:    "const",
}

// String returns the name of a token kind as used in diagnostics.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("token(%d)", int(k))
}

// IsKeyword reports whether the kind is a keyword.
func (k Kind) IsKeyword() bool {
	return k > keywordStart && k < keywordEnd
}

// IsLiteral reports whether the kind carries a literal value.
func (k Kind) IsLiteral() bool {
	return k == NUMBER || k == STRING
}

// Keywords returns the keyword kinds in declaration order. The scanner tries
// them in this order, before the identifier rule.
func Keywords() []Kind {
	kinds := make([]Kind, 0, keywordEnd-keywordStart-1)
	for k := keywordStart + 1; k < keywordEnd; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Spelling returns the source text of a keyword kind, or "" for any other kind.
func (k Kind) Spelling() string {
	return keywordText[k]
}
