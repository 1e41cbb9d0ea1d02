// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package ast defines the Abstract Syntax Tree for the TSN language.
//
// Design overview:
//
//   - The node set is closed. Node, Statement and Expression carry unexported
//     marker methods so only this package can add kinds.
//   - Every node dispatches through Visitor, which has one method per kind.
//     Adding a kind adds a method, so every visitor stops compiling until it
//     handles the new kind.
//   - Nodes carry a byte-offset Span. A parent spans from the start of its
//     first token to the end of its last.
//   - Trees are built once by the parser and not mutated afterwards.
package ast

import (
	"strings"
)

// Span is a half-open byte range [Start, End) in the source.
type Span struct {
	Start int
	End   int
}

// Extent returns the span itself; it lets every node satisfy Node through
// its embedded Span.
func (s Span) Extent() Span { return s }

// Len returns the number of bytes covered.
func (s Span) Len() int { return s.End - s.Start }

// Node is the base interface that every AST node implements.
type Node interface {
	// Extent returns the source range the node was built from.
	Extent() Span

	// Type returns the node kind name, e.g. "CallExpression".
	Type() string

	// String renders the node back as TSN source.
	String() string

	// Accept calls the visitor method for the node's kind.
	Accept(v Visitor) error

	node()
}

// Statement is a node that may appear in a Program or BlockStatement body.
type Statement interface {
	Node
	statementNode()
}

// Expression is a value-producing node. Every Expression is also a Statement.
type Expression interface {
	Statement
	expressionNode()
}

// ---------------------------------------------------------------------------
// Program and blocks
// ---------------------------------------------------------------------------

// Program is the root of every parse tree. Its span covers the whole input.
type Program struct {
	Span
	Body []Statement
}

// BlockStatement is a brace-delimited statement list.
type BlockStatement struct {
	Span
	Body []Statement
}

// ---------------------------------------------------------------------------
// Declarations and definitions
// ---------------------------------------------------------------------------

// Identifier is a name, optionally annotated with a type. ValueType holds the
// annotation text verbatim and is empty when there is none.
type Identifier struct {
	Span
	Name      string
	ValueType string
}

// FunctionDeclaration is a body-less signature introduced by
// `declare function`. Its span starts at `declare`.
type FunctionDeclaration struct {
	Span
	ID         *Identifier
	Params     []*Identifier
	ReturnType string
}

// FunctionDefinition is a function with a body. ReturnType is empty when the
// signature has no annotation.
type FunctionDefinition struct {
	Span
	ID         *Identifier
	Params     []*Identifier
	ReturnType string
	Body       *BlockStatement
}

// ConstantDefinition binds a name with `const name = value`.
type ConstantDefinition struct {
	Span
	ID    *Identifier
	Value Expression
}

// ReturnStatement is `return` with an optional argument.
type ReturnStatement struct {
	Span
	Argument Expression // nil for a bare return
}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

// CallExpression applies Callee to at least one argument.
type CallExpression struct {
	Span
	Callee    *Identifier
	Arguments []Expression
}

// NumericLiteral is a number parsed from a digit run.
type NumericLiteral struct {
	Span
	Value float64
	Raw   string
}

// StringLiteral holds the text between the quotes, unescaped. Raw keeps the
// quotes.
type StringLiteral struct {
	Span
	Value string
	Raw   string
}

// ---------------------------------------------------------------------------
// Kind plumbing
// ---------------------------------------------------------------------------

func (*Program) Type() string             { return "Program" }
func (*BlockStatement) Type() string      { return "BlockStatement" }
func (*Identifier) Type() string          { return "Identifier" }
func (*FunctionDeclaration) Type() string { return "FunctionDeclaration" }
func (*FunctionDefinition) Type() string  { return "FunctionDefinition" }
func (*ConstantDefinition) Type() string  { return "ConstantDefinition" }
func (*ReturnStatement) Type() string     { return "ReturnStatement" }
func (*CallExpression) Type() string      { return "CallExpression" }
func (*NumericLiteral) Type() string      { return "NumericLiteral" }
func (*StringLiteral) Type() string       { return "StringLiteral" }

func (n *Program) Accept(v Visitor) error             { return v.VisitProgram(n) }
func (n *BlockStatement) Accept(v Visitor) error      { return v.VisitBlockStatement(n) }
func (n *Identifier) Accept(v Visitor) error          { return v.VisitIdentifier(n) }
func (n *FunctionDeclaration) Accept(v Visitor) error { return v.VisitFunctionDeclaration(n) }
func (n *FunctionDefinition) Accept(v Visitor) error  { return v.VisitFunctionDefinition(n) }
func (n *ConstantDefinition) Accept(v Visitor) error  { return v.VisitConstantDefinition(n) }
func (n *ReturnStatement) Accept(v Visitor) error     { return v.VisitReturnStatement(n) }
func (n *CallExpression) Accept(v Visitor) error      { return v.VisitCallExpression(n) }
func (n *NumericLiteral) Accept(v Visitor) error      { return v.VisitNumericLiteral(n) }
func (n *StringLiteral) Accept(v Visitor) error       { return v.VisitStringLiteral(n) }

func (*Program) node()             {}
func (*BlockStatement) node()      {}
func (*Identifier) node()          {}
func (*FunctionDeclaration) node() {}
func (*FunctionDefinition) node()  {}
func (*ConstantDefinition) node()  {}
func (*ReturnStatement) node()     {}
func (*CallExpression) node()      {}
func (*NumericLiteral) node()      {}
func (*StringLiteral) node()       {}

func (*BlockStatement) statementNode()      {}
func (*Identifier) statementNode()          {}
func (*FunctionDeclaration) statementNode() {}
func (*FunctionDefinition) statementNode()  {}
func (*ConstantDefinition) statementNode()  {}
func (*ReturnStatement) statementNode()     {}
func (*CallExpression) statementNode()      {}
func (*NumericLiteral) statementNode()      {}
func (*StringLiteral) statementNode()       {}

func (*Identifier) expressionNode()     {}
func (*CallExpression) expressionNode() {}
func (*NumericLiteral) expressionNode() {}
func (*StringLiteral) expressionNode()  {}

// ---------------------------------------------------------------------------
// Source rendering
// ---------------------------------------------------------------------------

func (p *Program) String() string {
	var out strings.Builder
	for i, s := range p.Body {
		if i > 0 {
			out.WriteByte('\n')
		}
		out.WriteString(StatementString(s))
	}
	return out.String()
}

func (b *BlockStatement) String() string {
	if len(b.Body) == 0 {
		return "{}"
	}
	parts := make([]string, len(b.Body))
	for i, s := range b.Body {
		parts[i] = StatementString(s)
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

func (id *Identifier) String() string {
	if id.ValueType != "" {
		return id.Name + ": " + id.ValueType
	}
	return id.Name
}

func (f *FunctionDeclaration) String() string {
	return "declare function " + f.ID.Name + paramsString(f.Params) + ": " + f.ReturnType
}

func (f *FunctionDefinition) String() string {
	sig := "function " + f.ID.Name + paramsString(f.Params)
	if f.ReturnType != "" {
		sig += ": " + f.ReturnType
	}
	return sig + " " + f.Body.String()
}

func (c *ConstantDefinition) String() string {
	return "const " + c.ID.String() + " = " + c.Value.String()
}

func (r *ReturnStatement) String() string {
	if r.Argument == nil {
		return "return"
	}
	return "return " + r.Argument.String()
}

func (c *CallExpression) String() string {
	args := make([]string, len(c.Arguments))
	for i, a := range c.Arguments {
		args[i] = a.String()
	}
	return c.Callee.Name + "(" + strings.Join(args, ", ") + ")"
}

func (n *NumericLiteral) String() string { return n.Raw }
func (s *StringLiteral) String() string  { return s.Raw }

// StatementString renders s as it would appear in a statement list, adding
// the terminating semicolon where the grammar requires one.
func StatementString(s Statement) string {
	if _, ok := s.(*FunctionDefinition); ok {
		return s.String()
	}
	return s.String() + ";"
}

func paramsString(params []*Identifier) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
