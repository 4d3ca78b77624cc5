/*
File    : minilang/parser/parser.go
Package parser implements a recursive-descent + Pratt-style parser: a
primed lexer in, a *ast.ProgramNode out, or a *ParseError on the first
mismatch (no error collection — this grammar fails fast on the first
bad token, rather than gathering every error into a slice).

Grounded on parser/parser.go's CurrToken/NextToken two-token lookahead
and advance() shape; the parser carries no Env/Consts/LetVars/LetTypes
because evaluation happens nowhere near parsing in this rewrite.
*/
package parser

import (
	"github.com/akashmaji946/minilang/ast"
	"github.com/akashmaji946/minilang/lexer"
	"github.com/akashmaji946/minilang/symbols"
)

// Parser holds a lexer and two tokens of lookahead.
type Parser struct {
	lex  *lexer.Lexer
	curr lexer.Token
	next lexer.Token
}

// New creates a parser over src, priming both lookahead tokens.
func New(src string) *Parser {
	p := &Parser{lex: lexer.NewLexer(src)}
	p.advance()
	p.advance()
	return p
}

// current returns the current token.
func (p *Parser) current() lexer.Token {
	return p.curr
}

// advance moves the lexer forward by one token.
func (p *Parser) advance() {
	p.curr = p.next
	p.next = p.lex.Next()
}

// peek reports whether the current token's category matches t, without
// consuming it.
func (p *Parser) peek(t lexer.TokenType) bool {
	return p.curr.Type == t
}

// accept consumes and returns true if the current token's category
// matches t; otherwise it leaves the parser untouched and returns false.
func (p *Parser) accept(t lexer.TokenType) bool {
	if !p.peek(t) {
		return false
	}
	p.advance()
	return true
}

// expect requires the current token to be category-equal to t. On
// success it returns the consumed token and advances; otherwise it
// returns a *ParseError naming the expected category and the actual
// token, per SPEC_FULL.md §4.2's failure semantics.
func (p *Parser) expect(t lexer.TokenType) (lexer.Token, error) {
	if !p.peek(t) {
		return lexer.Token{}, newParseError(p.curr, "expected %s, found %s", t, p.curr)
	}
	tok := p.curr
	p.advance()
	return tok, nil
}

// Parse drives `program = { func | let } EOI`, building the root
// ProgramNode and its program-level symbol table. Symbol population
// itself is the analyzer's job (SPEC_FULL.md §4.3); the parser only
// allocates the table here so the AST always carries one.
func Parse(src string) (*ast.ProgramNode, error) {
	p := New(src)
	prog := &ast.ProgramNode{Symbols: symbols.NewTable(nil)}

	for !p.peek(lexer.EOI) {
		switch {
		case p.peek(lexer.KW_FUNC):
			fn, err := p.parseFunc()
			if err != nil {
				return nil, err
			}
			prog.Funcs = append(prog.Funcs, fn)
		case p.peek(lexer.KW_LET):
			let, err := p.parseLet()
			if err != nil {
				return nil, err
			}
			prog.Lets = append(prog.Lets, let)
		default:
			return nil, newParseError(p.curr, "expected %s or %s, found %s", lexer.KW_FUNC, lexer.KW_LET, p.curr)
		}
	}
	return prog, nil
}
