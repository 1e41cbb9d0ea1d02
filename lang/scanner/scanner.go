// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package scanner implements the on-demand tokenizer for the TSN language.
//
// Scanning is driven by an ordered rule table rather than longest match: from
// the cursor, the first rule accepting a non-empty prefix decides the token.
// Whitespace and both comment forms are consumed and skipped. The scanner
// keeps no token history, only its cursor.
package scanner

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/probeum/go-tsnative/lang/source"
	"github.com/probeum/go-tsnative/lang/token"
)

// Error reports a cursor position at which no scanning rule matches.
type Error struct {
	Pos     source.Position
	Text    string // the offending character
	Context string // the source line and a caret under Pos
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: unexpected character %q\n%s", e.Pos, e.Text, indent(e.Context))
}

// Scanner holds the cursor of a single scan over a source text. It is not
// safe for concurrent use.
type Scanner struct {
	file *source.File
	src  string
	pos  int // byte offset of the next unscanned byte
}

// New creates a Scanner over src. The filename only appears in positions.
func New(filename, src string) *Scanner {
	return &Scanner{
		file: source.NewFile(filename, src),
		src:  src,
	}
}

// File returns the indexed source the scanner reads from.
func (s *Scanner) File() *source.File { return s.file }

// Offset returns the current cursor position.
func (s *Scanner) Offset() int { return s.pos }

// Next scans the next token and advances the cursor past it. At end of input
// it returns an EOF token positioned at len(src); further calls keep
// returning EOF.
func (s *Scanner) Next() (token.Token, error) {
next:
	for s.pos < len(s.src) {
		rest := s.src[s.pos:]
		for _, r := range rules {
			n := r.match(rest)
			if n == 0 {
				continue
			}
			start := s.pos
			s.pos += n
			if r.discard {
				continue next
			}
			return token.Token{
				Kind:  r.kind,
				Text:  s.src[start:s.pos],
				Start: start,
				End:   s.pos,
			}, nil
		}
		return token.Token{}, s.errorAt(s.pos)
	}
	return token.Token{Kind: token.EOF, Start: len(s.src), End: len(s.src)}, nil
}

// Peek scans the next token like Next but leaves the cursor where it was.
func (s *Scanner) Peek() (token.Token, error) {
	pos := s.pos
	tok, err := s.Next()
	s.pos = pos
	return tok, err
}

// Tokenize scans the remaining input and returns every token including the
// final EOF.
func (s *Scanner) Tokenize() ([]token.Token, error) {
	var toks []token.Token
	for {
		tok, err := s.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}

func (s *Scanner) errorAt(offset int) *Error {
	r, _ := utf8.DecodeRuneInString(s.src[offset:])
	return &Error{
		Pos:     s.file.Position(offset),
		Text:    string(r),
		Context: s.file.Context(offset),
	}
}

func indent(s string) string {
	return "\t" + strings.ReplaceAll(s, "\n", "\n\t")
}
