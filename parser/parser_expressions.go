/*
File : minilang/parser/parser_expressions.go
Expression parsing: the Pratt-style precedence climb over `atom
[expr_tail]*` plus the `atom` production itself (identifiers, calls,
and literals), grounded on parser_expressions.go's shape but with all
eval-during-parse removed.
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/minilang/ast"
	"github.com/akashmaji946/minilang/lexer"
	"github.com/akashmaji946/minilang/value"
)

// parseExpr climbs operator precedence starting from an already-parsed
// atom, consuming infix operators whose binding power is at least
// minPrec. Left-associativity is obtained by recursing into the right
// operand with minPrec+1 (SPEC_FULL.md §4.2's "Expression policy").
// Parsing stops when the lookahead is one of ']', ';', ',', ')' or any
// other non-operator token.
func (p *Parser) parseExpr(minPrec int) (ast.ExprNode, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		prec := getPrecedence(p.curr.Type)
		if prec < 0 || prec < minPrec {
			return left, nil
		}
		opTok := p.curr
		p.advance()
		right, err := p.parseExpr(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryNode{Token: opTok, Op: binaryOpFor(opTok.Type), Left: left, Right: right}
	}
}

// parseAtom parses `ID ['(' [expr {',' expr}] ')'] | LIT_*`.
func (p *Parser) parseAtom() (ast.ExprNode, error) {
	tok := p.curr
	switch tok.Type {
	case lexer.ID:
		p.advance()
		if p.peek(lexer.PARENS_L) {
			return p.parseCallArgs(tok)
		}
		return &ast.VarNode{Token: tok, Name: tok.Literal}, nil
	case lexer.LIT_STR:
		p.advance()
		return &ast.StringNode{Token: tok, Text: tok.Literal}, nil
	case lexer.LIT_INT32:
		p.advance()
		n, err := strconv.ParseInt(tok.Literal, 10, 32)
		if err != nil {
			return nil, newParseError(tok, "malformed int32 literal %q", tok.Literal)
		}
		return &ast.ValNode{Token: tok, Value: value.I32(int32(n))}, nil
	case lexer.LIT_FLT32:
		p.advance()
		f, err := strconv.ParseFloat(tok.Literal, 32)
		if err != nil {
			return nil, newParseError(tok, "malformed flt32 literal %q", tok.Literal)
		}
		return &ast.ValNode{Token: tok, Value: value.F32(float32(f))}, nil
	case lexer.LIT_CHAR:
		p.advance()
		return &ast.ValNode{Token: tok, Value: value.Chars(tok.Literal)}, nil
	case lexer.LIT_BOOL:
		p.advance()
		return &ast.ValNode{Token: tok, Value: value.Bool(tok.Literal == "true")}, nil
	default:
		return nil, newParseError(tok, "expected an expression, found %s", tok)
	}
}

// parseCallArgs parses the `'(' [expr {',' expr}] ')'` tail of a call,
// given the already-consumed callee identifier token.
func (p *Parser) parseCallArgs(callee lexer.Token) (ast.ExprNode, error) {
	if _, err := p.expect(lexer.PARENS_L); err != nil {
		return nil, err
	}
	var args []ast.ExprNode
	if !p.peek(lexer.PARENS_R) {
		for {
			arg, err := p.parseExpr(lowestPrecedence)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.accept(lexer.COMMA) {
				break
			}
		}
	}
	if _, err := p.expect(lexer.PARENS_R); err != nil {
		return nil, err
	}
	return &ast.CallNode{Token: callee, Name: callee.Literal, Args: args}, nil
}
