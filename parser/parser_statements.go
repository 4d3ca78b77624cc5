/*
File : minilang/parser/parser_statements.go
Per-construct parse functions for funcs, lets, blocks, and the six
statement kinds, one function per grammar production, following a
one-production-per-file split.
*/
package parser

import (
	"github.com/akashmaji946/minilang/ast"
	"github.com/akashmaji946/minilang/lexer"
	"github.com/akashmaji946/minilang/symbols"
)

// parseFunc parses `func ID '(' [param {',' param}] ')' block`.
func (p *Parser) parseFunc() (*ast.FuncNode, error) {
	tok, err := p.expect(lexer.KW_FUNC)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(lexer.ID)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.PARENS_L); err != nil {
		return nil, err
	}
	var params []ast.Parameter
	if !p.peek(lexer.PARENS_R) {
		for {
			pn, err := p.expect(lexer.ID)
			if err != nil {
				return nil, err
			}
			params = append(params, ast.Parameter{Name: pn.Literal})
			if !p.accept(lexer.COMMA) {
				break
			}
		}
	}
	if _, err := p.expect(lexer.PARENS_R); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FuncNode{Token: tok, Name: name.Literal, Parameters: params, Body: body}, nil
}

// parseLet parses `'let' ID ['=' expr] ';'`.
func (p *Parser) parseLet() (*ast.LetNode, error) {
	tok, err := p.expect(lexer.KW_LET)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(lexer.ID)
	if err != nil {
		return nil, err
	}
	var init ast.ExprNode
	if p.accept(lexer.OP_ASSIGN) {
		init, err = p.parseExpr(lowestPrecedence)
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return &ast.LetNode{Token: tok, Name: name.Literal, Init: init}, nil
}

// parseBlock parses `'[' { statement } ']'`, allocating a fresh symbol
// table for the block (the analyzer decides its parent per SPEC_FULL.md
// §4.3 — a function body's table is re-parented to the program table;
// this parser just allocates with no parent yet).
func (p *Parser) parseBlock() (*ast.BlockNode, error) {
	if _, err := p.expect(lexer.BRACKET_L); err != nil {
		return nil, err
	}
	block := &ast.BlockNode{Symbols: symbols.NewTable(nil)}
	for !p.peek(lexer.BRACKET_R) {
		if p.peek(lexer.EOI) {
			return nil, newParseError(p.curr, "expected %s, found %s", lexer.BRACKET_R, p.curr)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	if _, err := p.expect(lexer.BRACKET_R); err != nil {
		return nil, err
	}
	return block, nil
}

// parseStatement dispatches on the current token to one of the six
// statement productions.
func (p *Parser) parseStatement() (ast.StmtNode, error) {
	switch {
	case p.peek(lexer.KW_LET):
		return p.parseLet()
	case p.peek(lexer.KW_RETURN):
		return p.parseReturn()
	case p.peek(lexer.KW_PRINT):
		return p.parsePrint()
	case p.peek(lexer.KW_WHILE):
		return p.parseWhile()
	case p.peek(lexer.KW_IF):
		return p.parseIfElse()
	case p.peek(lexer.ID):
		return p.parseAssign()
	default:
		return nil, newParseError(p.curr, "unexpected token %s in statement position", p.curr)
	}
}

// parseAssign parses `ID '=' expr ';'`.
func (p *Parser) parseAssign() (*ast.AssignNode, error) {
	name, err := p.expect(lexer.ID)
	if err != nil {
		return nil, err
	}
	tok, err := p.expect(lexer.OP_ASSIGN)
	if err != nil {
		return nil, err
	}
	expr, err := p.parseExpr(lowestPrecedence)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return &ast.AssignNode{Token: tok, Name: name.Literal, Expr: expr}, nil
}

// parseReturn parses `'return' expr ';'`.
func (p *Parser) parseReturn() (*ast.ReturnNode, error) {
	tok, err := p.expect(lexer.KW_RETURN)
	if err != nil {
		return nil, err
	}
	expr, err := p.parseExpr(lowestPrecedence)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return &ast.ReturnNode{Token: tok, Expr: expr}, nil
}

// parsePrint parses `'print' expr ';'`.
func (p *Parser) parsePrint() (*ast.PrintNode, error) {
	tok, err := p.expect(lexer.KW_PRINT)
	if err != nil {
		return nil, err
	}
	expr, err := p.parseExpr(lowestPrecedence)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return &ast.PrintNode{Token: tok, Expr: expr}, nil
}

// parseWhile parses `'while' expr block`.
func (p *Parser) parseWhile() (*ast.WhileNode, error) {
	tok, err := p.expect(lexer.KW_WHILE)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr(lowestPrecedence)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileNode{Token: tok, Condition: cond, Body: body}, nil
}

// parseIfElse parses `'if' expr block ['else' block]`.
func (p *Parser) parseIfElse() (*ast.IfElseNode, error) {
	tok, err := p.expect(lexer.KW_IF)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr(lowestPrecedence)
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node := &ast.IfElseNode{Token: tok, Condition: cond, Then: then}
	if p.accept(lexer.KW_ELSE) {
		elseBlock, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.Else = elseBlock
	}
	return node, nil
}
