/*
File : minilang/parser/parser_precedence.go
Binding-power table for the Pratt-style precedence climb, in the style
of parser_precedence.go's getPrecedence table, trimmed to this
language's binop set: relational < additive < multiplicative
(SPEC_FULL.md §4.2).
*/
package parser

import (
	"github.com/akashmaji946/minilang/ast"
	"github.com/akashmaji946/minilang/lexer"
)

// Binding powers, lowest to highest. Higher binds tighter.
const (
	lowestPrecedence = 0

	// Relational: < > <= >= == !=
	relationalPriority = 10

	// Additive: + -
	additivePriority = 20

	// Multiplicative: *
	multiplicativePriority = 30
)

// getPrecedence returns the binding power of an infix operator token,
// or -1 if tok does not start an expr_tail.
func getPrecedence(tok lexer.TokenType) int {
	switch tok {
	case lexer.OP_LT, lexer.OP_GT, lexer.OP_EQ, lexer.OP_NEQ, lexer.OP_NLT, lexer.OP_NGT:
		return relationalPriority
	case lexer.OP_ADD, lexer.OP_SUB:
		return additivePriority
	case lexer.OP_MUL:
		return multiplicativePriority
	default:
		return -1
	}
}

// binaryOpFor maps an infix operator token to its BinaryNode operator
// tag.
func binaryOpFor(tok lexer.TokenType) ast.BinaryOp {
	switch tok {
	case lexer.OP_ADD:
		return ast.OpAdd
	case lexer.OP_SUB:
		return ast.OpSub
	case lexer.OP_MUL:
		return ast.OpMul
	case lexer.OP_EQ:
		return ast.OpEqualTo
	case lexer.OP_NEQ:
		return ast.OpNotEqualTo
	case lexer.OP_LT:
		return ast.OpLessThan
	case lexer.OP_GT:
		return ast.OpGreaterThan
	case lexer.OP_NGT:
		return ast.OpLessThanEq
	case lexer.OP_NLT:
		return ast.OpGreaterThanEq
	}
	panic("binaryOpFor: unreachable for non-operator token")
}
