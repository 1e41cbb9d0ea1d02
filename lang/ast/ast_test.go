// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package ast

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// greet builds the tree for
//
//	function greet(name: string) { print(name); }
func greet() *Program {
	name := &Identifier{Span: Span{15, 19}, Name: "name", ValueType: "string"}
	call := &CallExpression{
		Span:      Span{31, 42},
		Callee:    &Identifier{Span: Span{31, 36}, Name: "print"},
		Arguments: []Expression{&Identifier{Span: Span{37, 41}, Name: "name"}},
	}
	fn := &FunctionDefinition{
		Span:   Span{0, 45},
		ID:     &Identifier{Span: Span{9, 14}, Name: "greet"},
		Params: []*Identifier{name},
		Body:   &BlockStatement{Span: Span{29, 45}, Body: []Statement{call}},
	}
	return &Program{Span: Span{0, 45}, Body: []Statement{fn}}
}

func TestString(t *testing.T) {
	cases := []struct {
		node Node
		want string
	}{
		{greet(), "function greet(name: string) { print(name); }"},
		{&Identifier{Name: "x"}, "x"},
		{&Identifier{Name: "x", ValueType: "number"}, "x: number"},
		{&FunctionDeclaration{
			ID:         &Identifier{Name: "add"},
			Params:     []*Identifier{{Name: "a"}, {Name: "b"}},
			ReturnType: "number",
		}, "declare function add(a, b): number"},
		{&FunctionDefinition{
			ID:         &Identifier{Name: "f"},
			ReturnType: "void",
			Body:       &BlockStatement{},
		}, "function f(): void {}"},
		{&ConstantDefinition{
			ID:    &Identifier{Name: "x", ValueType: "number"},
			Value: &NumericLiteral{Value: 5, Raw: "5"},
		}, "const x: number = 5"},
		{&ReturnStatement{}, "return"},
		{&ReturnStatement{Argument: &StringLiteral{Value: "ok", Raw: "'ok'"}}, "return 'ok'"},
		{&CallExpression{
			Callee: &Identifier{Name: "f"},
			Arguments: []Expression{
				&NumericLiteral{Value: 1, Raw: "1"},
				&CallExpression{Callee: &Identifier{Name: "g"}, Arguments: []Expression{&Identifier{Name: "y"}}},
			},
		}, "f(1, g(y))"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.node.String(), c.node.Type())
	}
}

func TestProgramString(t *testing.T) {
	prog := &Program{Body: []Statement{
		&Identifier{Name: "a"},
		&FunctionDefinition{ID: &Identifier{Name: "f"}, Body: &BlockStatement{}},
		&ReturnStatement{},
	}}
	assert.Equal(t, "a;\nfunction f() {}\nreturn;", prog.String())
}

func TestInspectOrder(t *testing.T) {
	var got []string
	Inspect(greet(), func(n Node) bool {
		got = append(got, n.Type())
		return true
	})
	want := []string{
		"Program",
		"FunctionDefinition",
		"Identifier", // greet
		"Identifier", // name
		"BlockStatement",
		"CallExpression",
		"Identifier", // print
		"Identifier", // name
	}
	assert.Equal(t, want, got)
}

func TestInspectSkipsChildren(t *testing.T) {
	var got []string
	Inspect(greet(), func(n Node) bool {
		got = append(got, n.Type())
		_, isFn := n.(*FunctionDefinition)
		return !isFn
	})
	assert.Equal(t, []string{"Program", "FunctionDefinition"}, got)
}

func TestChildrenOfReturn(t *testing.T) {
	assert.Empty(t, Children(&ReturnStatement{}))
	arg := &Identifier{Name: "x"}
	assert.Equal(t, []Node{arg}, Children(&ReturnStatement{Argument: arg}))
}

func TestSpan(t *testing.T) {
	s := Span{3, 10}
	assert.Equal(t, 7, s.Len())
	assert.Equal(t, s, (&Identifier{Span: s}).Extent())
}

func TestMarshalJSON(t *testing.T) {
	out, err := json.Marshal(greet())
	require.NoError(t, err)

	want := `{
	  "type": "Program", "start": 0, "end": 45,
	  "body": [{
	    "type": "FunctionDefinition", "start": 0, "end": 45,
	    "id": {"type": "Identifier", "start": 9, "end": 14, "name": "greet"},
	    "params": [{"type": "Identifier", "start": 15, "end": 19, "name": "name", "valueType": "string"}],
	    "body": {
	      "type": "BlockStatement", "start": 29, "end": 45,
	      "body": [{
	        "type": "CallExpression", "start": 31, "end": 42,
	        "callee": {"type": "Identifier", "start": 31, "end": 36, "name": "print"},
	        "arguments": [{"type": "Identifier", "start": 37, "end": 41, "name": "name"}]
	      }]
	    }
	  }]
	}`
	assert.JSONEq(t, want, string(out))
}

func TestMarshalJSONEmptyLists(t *testing.T) {
	out, err := json.Marshal(&Program{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Program","start":0,"end":0,"body":[]}`, string(out))

	out, err = json.Marshal(&ReturnStatement{Span: Span{0, 7}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"ReturnStatement","start":0,"end":7,"argument":null}`, string(out))
}

func TestMarshalJSONLiterals(t *testing.T) {
	out, err := json.Marshal(&StringLiteral{Span: Span{0, 4}, Value: "hi", Raw: `"hi"`})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"StringLiteral","start":0,"end":4,"value":"hi","raw":"\"hi\""}`, string(out))

	out, err = json.Marshal(&NumericLiteral{Span: Span{0, 2}, Value: 42, Raw: "42"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"NumericLiteral","start":0,"end":2,"value":42,"raw":"42"}`, string(out))

	out, err = json.Marshal(&NumericLiteral{Value: math.Inf(1), Raw: "9"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"NumericLiteral","start":0,"end":0,"value":null,"raw":"9"}`, string(out))
}
