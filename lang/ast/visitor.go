// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package ast

// Visitor has one method per node kind. Implementations handle every kind.
type Visitor interface {
	VisitProgram(*Program) error
	VisitBlockStatement(*BlockStatement) error
	VisitIdentifier(*Identifier) error
	VisitFunctionDeclaration(*FunctionDeclaration) error
	VisitFunctionDefinition(*FunctionDefinition) error
	VisitConstantDefinition(*ConstantDefinition) error
	VisitReturnStatement(*ReturnStatement) error
	VisitCallExpression(*CallExpression) error
	VisitNumericLiteral(*NumericLiteral) error
	VisitStringLiteral(*StringLiteral) error
}

// Children returns the direct child nodes of n in source order.
func Children(n Node) []Node {
	var c children
	n.Accept(&c) // children never fails
	return c.nodes
}

// Inspect traverses the tree rooted at n in depth-first order. It calls f for
// each node; if f returns false the node's children are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}

var _ Visitor = (*children)(nil)

type children struct {
	nodes []Node
}

func (c *children) add(ns ...Node) {
	c.nodes = append(c.nodes, ns...)
}

func (c *children) statements(body []Statement) {
	for _, s := range body {
		c.add(s)
	}
}

func (c *children) identifiers(ids []*Identifier) {
	for _, id := range ids {
		c.add(id)
	}
}

func (c *children) VisitProgram(n *Program) error {
	c.statements(n.Body)
	return nil
}

func (c *children) VisitBlockStatement(n *BlockStatement) error {
	c.statements(n.Body)
	return nil
}

func (c *children) VisitIdentifier(*Identifier) error { return nil }

func (c *children) VisitFunctionDeclaration(n *FunctionDeclaration) error {
	c.add(n.ID)
	c.identifiers(n.Params)
	return nil
}

func (c *children) VisitFunctionDefinition(n *FunctionDefinition) error {
	c.add(n.ID)
	c.identifiers(n.Params)
	c.add(n.Body)
	return nil
}

func (c *children) VisitConstantDefinition(n *ConstantDefinition) error {
	c.add(n.ID, n.Value)
	return nil
}

func (c *children) VisitReturnStatement(n *ReturnStatement) error {
	if n.Argument != nil {
		c.add(n.Argument)
	}
	return nil
}

func (c *children) VisitCallExpression(n *CallExpression) error {
	c.add(n.Callee)
	for _, a := range n.Arguments {
		c.add(a)
	}
	return nil
}

func (c *children) VisitNumericLiteral(*NumericLiteral) error { return nil }
func (c *children) VisitStringLiteral(*StringLiteral) error   { return nil }
