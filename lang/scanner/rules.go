// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/probeum/go-tsnative/lang/token"
)

// matchFunc returns the length in bytes of the prefix of s it accepts, or 0.
type matchFunc func(s string) int

// rule is one entry of the ordered scanning table. Discarded rules consume
// insignificant text and never produce a token.
type rule struct {
	name    string
	kind    token.Kind
	discard bool
	match   matchFunc
}

// rules is tried top to bottom and the first rule accepting a non-empty prefix
// wins. Keywords precede the identifier rule.
var rules = buildRules()

func buildRules() []rule {
	rs := []rule{
		{name: "whitespace", discard: true, match: matchSpace},
		{name: "line comment", discard: true, match: matchLineComment},
		{name: "block comment", discard: true, match: matchBlockComment},
	}
	for _, kw := range token.Keywords() {
		rs = append(rs, rule{name: kw.Spelling(), kind: kw, match: matchKeyword(kw.Spelling())})
	}
	rs = append(rs,
		rule{name: ";", kind: token.SEMICOLON, match: matchRun(';')},
		rule{name: ":", kind: token.COLON, match: matchRun(':')},
		rule{name: "(", kind: token.LPAREN, match: matchByte('(')},
		rule{name: ")", kind: token.RPAREN, match: matchByte(')')},
		rule{name: ",", kind: token.COMMA, match: matchByte(',')},
		rule{name: "=", kind: token.ASSIGN, match: matchByte('=')},
		rule{name: "{", kind: token.LBRACE, match: matchByte('{')},
		rule{name: "}", kind: token.RBRACE, match: matchByte('}')},
		rule{name: "[", kind: token.LBRACKET, match: matchByte('[')},
		rule{name: "]", kind: token.RBRACKET, match: matchByte(']')},
		rule{name: "identifier", kind: token.IDENTIFIER, match: matchIdent},
		rule{name: "number", kind: token.NUMBER, match: matchDigits},
		rule{name: "double-quoted string", kind: token.STRING, match: matchQuoted('"')},
		rule{name: "single-quoted string", kind: token.STRING, match: matchQuoted('\'')},
	)
	return rs
}

func matchSpace(s string) int {
	n := 0
	for n < len(s) {
		r, w := utf8.DecodeRuneInString(s[n:])
		if !unicode.IsSpace(r) && r != '\uFEFF' {
			break
		}
		n += w
	}
	return n
}

func matchLineComment(s string) int {
	if !strings.HasPrefix(s, "//") {
		return 0
	}
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return i
	}
	return len(s)
}

// matchBlockComment accepts up to the first "*/". An unterminated comment
// matches nothing, which leaves the '/' to be reported as a scan error.
func matchBlockComment(s string) int {
	if !strings.HasPrefix(s, "/*") {
		return 0
	}
	i := strings.Index(s[2:], "*/")
	if i < 0 {
		return 0
	}
	return i + 4
}

// matchKeyword accepts the literal word. Since keyword rules precede the
// identifier rule, a word such as "constant" scans as CONST then "ant".
func matchKeyword(word string) matchFunc {
	return func(s string) int {
		if strings.HasPrefix(s, word) {
			return len(word)
		}
		return 0
	}
}

// matchRun accepts one or more repetitions of c as a single token.
func matchRun(c byte) matchFunc {
	return func(s string) int {
		n := 0
		for n < len(s) && s[n] == c {
			n++
		}
		return n
	}
}

func matchByte(c byte) matchFunc {
	return func(s string) int {
		if len(s) > 0 && s[0] == c {
			return 1
		}
		return 0
	}
}

func matchIdent(s string) int {
	if len(s) == 0 || !isIdentStart(s[0]) {
		return 0
	}
	n := 1
	for n < len(s) && isIdentContinue(s[n]) {
		n++
	}
	return n
}

func matchDigits(s string) int {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	return n
}

// matchQuoted accepts a string delimited by q. There is no escape processing,
// so the literal ends at the next q.
func matchQuoted(q byte) matchFunc {
	return func(s string) int {
		if len(s) == 0 || s[0] != q {
			return 0
		}
		i := strings.IndexByte(s[1:], q)
		if i < 0 {
			return 0
		}
		return i + 2
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') ||
		ch == '_' || ch == '$' || ch == '#'
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

// RuleNames lists the scanning rules in the order they are tried.
func RuleNames() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.name
	}
	return names
}
