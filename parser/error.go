package parser

import (
	"fmt"

	"github.com/akashmaji946/minilang/lexer"
)

// ParseError is the parser's own fatal-error kind (SPEC_FULL.md §7,
// error kind 2: "token mismatch against grammar"). An UNDEFINED token
// reaching the parser is reported the same way (kind 1, lex-level, is
// "detected by the parser, which treats them as unexpected").
type ParseError struct {
	Token lexer.Token
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: parse error: %s", e.Token.Line, e.Token.Column, e.Msg)
}

func newParseError(tok lexer.Token, format string, args ...any) *ParseError {
	return &ParseError{Token: tok, Msg: fmt.Sprintf(format, args...)}
}
