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
)

// Nodes encode as ESTree-style objects: a "type" tag, "start" and "end" byte
// offsets, then the kind's own fields.

type header struct {
	Type  string `json:"type"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func headerOf(n Node) header {
	s := n.Extent()
	return header{Type: n.Type(), Start: s.Start, End: s.End}
}

func statements(body []Statement) []Statement {
	if body == nil {
		return []Statement{}
	}
	return body
}

func identifiers(ids []*Identifier) []*Identifier {
	if ids == nil {
		return []*Identifier{}
	}
	return ids
}

func (n *Program) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Body []Statement `json:"body"`
	}{headerOf(n), statements(n.Body)})
}

func (n *BlockStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Body []Statement `json:"body"`
	}{headerOf(n), statements(n.Body)})
}

func (n *Identifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Name      string `json:"name"`
		ValueType string `json:"valueType,omitempty"`
	}{headerOf(n), n.Name, n.ValueType})
}

func (n *FunctionDeclaration) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		ID         *Identifier   `json:"id"`
		Params     []*Identifier `json:"params"`
		ReturnType string        `json:"returnType,omitempty"`
	}{headerOf(n), n.ID, identifiers(n.Params), n.ReturnType})
}

func (n *FunctionDefinition) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		ID         *Identifier     `json:"id"`
		Params     []*Identifier   `json:"params"`
		ReturnType string          `json:"returnType,omitempty"`
		Body       *BlockStatement `json:"body"`
	}{headerOf(n), n.ID, identifiers(n.Params), n.ReturnType, n.Body})
}

func (n *ConstantDefinition) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		ID    *Identifier `json:"id"`
		Value Expression  `json:"value"`
	}{headerOf(n), n.ID, n.Value})
}

func (n *ReturnStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Argument Expression `json:"argument"`
	}{headerOf(n), n.Argument})
}

func (n *CallExpression) MarshalJSON() ([]byte, error) {
	args := n.Arguments
	if args == nil {
		args = []Expression{}
	}
	return json.Marshal(struct {
		header
		Callee    *Identifier  `json:"callee"`
		Arguments []Expression `json:"arguments"`
	}{headerOf(n), n.Callee, args})
}

// MarshalJSON encodes an out-of-range value (a digit run beyond float64) as
// null; Raw still carries the digits.
func (n *NumericLiteral) MarshalJSON() ([]byte, error) {
	var value *float64
	if !math.IsInf(n.Value, 0) {
		value = &n.Value
	}
	return json.Marshal(struct {
		header
		Value *float64 `json:"value"`
		Raw   string   `json:"raw"`
	}{headerOf(n), value, n.Raw})
}

func (n *StringLiteral) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Value string `json:"value"`
		Raw   string `json:"raw"`
	}{headerOf(n), n.Value, n.Raw})
}
