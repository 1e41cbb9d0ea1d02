// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package parser implements a recursive-descent parser for the TSN language.
//
// Design overview:
//
//   - Tokens are pulled from the scanner one at a time; the parser's only
//     mutable state is the current token (plus the nesting depth).
//   - The grammar is LL(1) except for a bare identifier versus a call, which
//     peeks one token past the current one without moving the scanner.
//   - The first error aborts the parse. No partial tree is returned.
//
// Grammar:
//
//	Program             = { Statement } .
//	BlockStatement      = "{" { Statement } "}" .
//	Statement           = Declaration ";" | FunctionDefinition | ConstantDefinition ";"
//	                    | ReturnStatement ";" | Expression ";" .
//	Declaration         = "declare" FunctionDeclaration .
//	FunctionDeclaration = "function" Identifier Parameters TypeAnnotation .
//	FunctionDefinition  = "function" Identifier Parameters [ TypeAnnotation ] BlockStatement .
//	ConstantDefinition  = "const" Identifier [ TypeAnnotation ] "=" Expression .
//	ReturnStatement     = "return" [ Expression ] .
//	Parameters          = "(" [ Param { "," Param } ] ")" .
//	Param               = Identifier [ TypeAnnotation ] .
//	Arguments           = "(" Expression { "," Expression } ")" .
//	Expression          = CallExpression | Identifier | NUMBER | STRING .
//	CallExpression      = Identifier Arguments .
//	TypeAnnotation      = ":" Identifier .
//
// Arguments needs at least one expression, so `f()` is a syntax error, while
// Parameters may be empty.
package parser

import (
	"strconv"

	"github.com/probeum/go-tsnative/lang/ast"
	"github.com/probeum/go-tsnative/lang/scanner"
	"github.com/probeum/go-tsnative/lang/source"
	"github.com/probeum/go-tsnative/lang/token"
)

// Config tunes a parse.
type Config struct {
	// MaxDepth bounds the nesting of blocks and call arguments. Zero selects
	// DefaultConfig.MaxDepth.
	MaxDepth int
}

// DefaultConfig is used by Parse.
var DefaultConfig = Config{
	MaxDepth: 256,
}

// Parser holds the mutable state for a single parse run. It is not safe for
// concurrent use; each parse builds its own.
type Parser struct {
	sc   *scanner.Scanner
	file *source.File
	tok  token.Token // current token

	depth    int
	maxDepth int
}

func newParser(filename, src string, cfg Config) *Parser {
	sc := scanner.New(filename, src)
	p := &Parser{
		sc:       sc,
		file:     sc.File(),
		maxDepth: cfg.MaxDepth,
	}
	if p.maxDepth <= 0 {
		p.maxDepth = DefaultConfig.MaxDepth
	}
	return p
}

// Parse parses src with DefaultConfig.
func Parse(src string) (*ast.Program, error) {
	return ParseFile("", src, DefaultConfig)
}

// ParseFile parses src, naming it filename in error positions. It returns the
// complete program or the first error met, which is a *scanner.Error,
// *UnexpectedTokenError, *UnexpectedEndOfInputError or *DepthError.
func ParseFile(filename, src string, cfg Config) (*ast.Program, error) {
	p := newParser(filename, src, cfg)
	if err := p.advance(); err != nil {
		return nil, err
	}
	prog, err := p.parseProgram()
	if err != nil {
		return nil, err
	}
	return prog, nil
}

// ---------------------------------------------------------------------------
// Token navigation helpers
// ---------------------------------------------------------------------------

// advance replaces the current token with the next one from the scanner.
func (p *Parser) advance() error {
	tok, err := p.sc.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// expect consumes the current token if it has the given kind.
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if p.tok.Kind != kind {
		return token.Token{}, p.unexpected(kind.String())
	}
	tok := p.tok
	return tok, p.advance()
}

// peekIs reports whether the token after the current one has the given kind.
// The scanner is left untouched.
func (p *Parser) peekIs(kind token.Kind) (bool, error) {
	next, err := p.sc.Peek()
	if err != nil {
		return false, err
	}
	return next.Kind == kind, nil
}

// enter records one level of nesting; every successful enter must be paired
// with leave.
func (p *Parser) enter() error {
	if p.depth >= p.maxDepth {
		return &DepthError{
			Limit:   p.maxDepth,
			Pos:     p.file.Position(p.tok.Start),
			Context: p.file.Context(p.tok.Start),
		}
	}
	p.depth++
	return nil
}

func (p *Parser) leave() { p.depth-- }

// ---------------------------------------------------------------------------
// Program and statements
// ---------------------------------------------------------------------------

func (p *Parser) parseProgram() (*ast.Program, error) {
	prog := &ast.Program{Span: ast.Span{Start: 0, End: p.file.Size()}}
	for p.tok.Kind != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Body = append(prog.Body, stmt)
	}
	return prog, nil
}

// parseStatement dispatches on the current token. All statements except a
// function definition end with a semicolon, which is consumed here and is not
// part of the node's span.
func (p *Parser) parseStatement() (ast.Statement, error) {
	var (
		stmt ast.Statement
		err  error
	)
	switch p.tok.Kind {
	case token.FUNCTION:
		var fn *ast.FunctionDefinition
		if fn, err = p.parseFunctionDefinition(); err != nil {
			return nil, err
		}
		return fn, nil
	case token.DECLARE:
		stmt, err = p.parseDeclaration()
	case token.CONST:
		stmt, err = p.parseConstantDefinition()
	case token.RETURN:
		stmt, err = p.parseReturnStatement()
	case token.IDENTIFIER, token.NUMBER, token.STRING:
		stmt, err = p.parseExpression()
	default:
		return nil, p.unexpected("statement")
	}
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseBlockStatement() (*ast.BlockStatement, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	open, err := p.expect(token.LBRACE)
	if err != nil {
		return nil, err
	}
	block := &ast.BlockStatement{}
	for p.tok.Kind != token.RBRACE {
		if p.tok.Kind == token.EOF {
			return nil, p.unexpected(token.RBRACE.String())
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Body = append(block.Body, stmt)
	}
	closing := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	block.Span = ast.Span{Start: open.Start, End: closing.End}
	return block, nil
}

// parseDeclaration parses `declare function ...`.
func (p *Parser) parseDeclaration() (*ast.FunctionDeclaration, error) {
	decl, err := p.expect(token.DECLARE)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.FUNCTION); err != nil {
		return nil, err
	}
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	params, err := p.parseParameters()
	if err != nil {
		return nil, err
	}
	typ, end, err := p.parseTypeAnnotation()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDeclaration{
		Span:       ast.Span{Start: decl.Start, End: end},
		ID:         id,
		Params:     params,
		ReturnType: typ,
	}, nil
}

func (p *Parser) parseFunctionDefinition() (*ast.FunctionDefinition, error) {
	fn, err := p.expect(token.FUNCTION)
	if err != nil {
		return nil, err
	}
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	params, err := p.parseParameters()
	if err != nil {
		return nil, err
	}
	var typ string
	if p.tok.Kind == token.COLON {
		if typ, _, err = p.parseTypeAnnotation(); err != nil {
			return nil, err
		}
	}
	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDefinition{
		Span:       ast.Span{Start: fn.Start, End: body.End},
		ID:         id,
		Params:     params,
		ReturnType: typ,
		Body:       body,
	}, nil
}

// parseConstantDefinition parses `const name [: type] = value`. The type
// annotation, when present, is consumed in full before '=' is expected.
func (p *Parser) parseConstantDefinition() (*ast.ConstantDefinition, error) {
	kw, err := p.expect(token.CONST)
	if err != nil {
		return nil, err
	}
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind == token.COLON {
		if id.ValueType, _, err = p.parseTypeAnnotation(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ConstantDefinition{
		Span:  ast.Span{Start: kw.Start, End: value.Extent().End},
		ID:    id,
		Value: value,
	}, nil
}

func (p *Parser) parseReturnStatement() (*ast.ReturnStatement, error) {
	kw, err := p.expect(token.RETURN)
	if err != nil {
		return nil, err
	}
	ret := &ast.ReturnStatement{Span: ast.Span{Start: kw.Start, End: kw.End}}
	if p.tok.Kind == token.SEMICOLON || p.tok.Kind == token.EOF {
		return ret, nil
	}
	if ret.Argument, err = p.parseExpression(); err != nil {
		return nil, err
	}
	ret.End = ret.Argument.Extent().End
	return ret, nil
}

// ---------------------------------------------------------------------------
// Signatures
// ---------------------------------------------------------------------------

// parseParameters parses "(" [ Param { "," Param } ] ")".
func (p *Parser) parseParameters() ([]*ast.Identifier, error) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var params []*ast.Identifier
	if p.tok.Kind != token.RPAREN {
		for {
			param, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			if p.tok.Kind == token.COLON {
				if param.ValueType, _, err = p.parseTypeAnnotation(); err != nil {
					return nil, err
				}
			}
			params = append(params, param)
			if p.tok.Kind != token.COMMA {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

// parseTypeAnnotation parses ":" Identifier and returns the type name and the
// end offset of the name.
func (p *Parser) parseTypeAnnotation() (string, int, error) {
	if _, err := p.expect(token.COLON); err != nil {
		return "", 0, err
	}
	name, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return "", 0, err
	}
	return name.Text, name.End, nil
}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

func (p *Parser) parseExpression() (ast.Expression, error) {
	var (
		expr ast.Expression
		err  error
	)
	switch p.tok.Kind {
	case token.IDENTIFIER:
		var call bool
		if call, err = p.peekIs(token.LPAREN); err != nil {
			return nil, err
		}
		if call {
			expr, err = p.parseCallExpression()
		} else {
			expr, err = p.parseIdentifier()
		}
	case token.NUMBER:
		expr, err = p.parseNumericLiteral()
	case token.STRING:
		expr, err = p.parseStringLiteral()
	default:
		return nil, p.unexpected("expression")
	}
	if err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseCallExpression() (*ast.CallExpression, error) {
	callee, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	args, end, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	return &ast.CallExpression{
		Span:      ast.Span{Start: callee.Start, End: end},
		Callee:    callee,
		Arguments: args,
	}, nil
}

// parseArguments parses "(" Expression { "," Expression } ")" and returns the
// end offset of the closing parenthesis.
func (p *Parser) parseArguments() ([]ast.Expression, int, error) {
	if err := p.enter(); err != nil {
		return nil, 0, err
	}
	defer p.leave()

	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, 0, err
	}
	var args []ast.Expression
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, 0, err
		}
		args = append(args, arg)
		if p.tok.Kind != token.COMMA {
			break
		}
		if err := p.advance(); err != nil {
			return nil, 0, err
		}
	}
	closing, err := p.expect(token.RPAREN)
	if err != nil {
		return nil, 0, err
	}
	return args, closing.End, nil
}

func (p *Parser) parseIdentifier() (*ast.Identifier, error) {
	tok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	return &ast.Identifier{
		Span: ast.Span{Start: tok.Start, End: tok.End},
		Name: tok.Text,
	}, nil
}

func (p *Parser) parseNumericLiteral() (*ast.NumericLiteral, error) {
	tok, err := p.expect(token.NUMBER)
	if err != nil {
		return nil, err
	}
	// The token is a plain digit run, so the only possible failure is a
	// range error, for which ParseFloat yields +Inf.
	value, _ := strconv.ParseFloat(tok.Text, 64)
	return &ast.NumericLiteral{
		Span:  ast.Span{Start: tok.Start, End: tok.End},
		Value: value,
		Raw:   tok.Text,
	}, nil
}

func (p *Parser) parseStringLiteral() (*ast.StringLiteral, error) {
	tok, err := p.expect(token.STRING)
	if err != nil {
		return nil, err
	}
	return &ast.StringLiteral{
		Span:  ast.Span{Start: tok.Start, End: tok.End},
		Value: tok.Text[1 : len(tok.Text)-1],
		Raw:   tok.Text,
	}, nil
}
