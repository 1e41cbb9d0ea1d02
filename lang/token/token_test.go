// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package token

import "testing"

func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{EOF, "EOF"},
		{NUMBER, "NUMBER"},
		{IDENTIFIER, "IDENTIFIER"},
		{DECLARE, "DECLARE"},
		{CONST, "CONST"},
		{ASSIGN, "="},
		{SEMICOLON, ";"},
		{COLON, ":"},
		{RBRACKET, "]"},
		{Kind(999), "token(999)"},
	}
	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(c.kind), got, c.want)
		}
	}
}

func TestKeywords(t *testing.T) {
	want := []Kind{DECLARE, FUNCTION, RETURN, CONST}
	got := Keywords()
	if len(got) != len(want) {
		t.Fatalf("got %d keywords, want %d", len(got), len(want))
	}
	for i, k := range want {
		if got[i] != k {
			t.Errorf("keyword[%d] = %s, want %s", i, got[i], k)
		}
		if !k.IsKeyword() {
			t.Errorf("%s.IsKeyword() = false", k)
		}
		if k.Spelling() == "" {
			t.Errorf("%s has no spelling", k)
		}
	}
	if IDENTIFIER.IsKeyword() || ASSIGN.IsKeyword() {
		t.Error("non-keyword kind reported as keyword")
	}
}

func TestTokenString(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: IDENTIFIER, Text: "add"}, "IDENTIFIER(add)"},
		{Token{Kind: STRING, Text: `"hi"`}, `STRING("hi")`},
		{Token{Kind: ASSIGN, Text: "="}, "="},
		{Token{Kind: SEMICOLON, Text: ";;;"}, ";"},
		{Token{Kind: EOF}, "end of input"},
	}
	for _, c := range cases {
		if got := c.tok.String(); got != c.want {
			t.Errorf("%#v.String() = %q, want %q", c.tok, got, c.want)
		}
	}
}
