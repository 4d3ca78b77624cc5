package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexerTotalityEndsWithEOI(t *testing.T) {
	toks := NewLexer(`func main(argc) [ print 1; ]`).Tokenize()
	assert.NotEmpty(t, toks)
	assert.Equal(t, EOI, toks[len(toks)-1].Type)

	for _, tok := range toks[:len(toks)-1] {
		assert.NotEqual(t, EOI, tok.Type)
	}
}

func TestLexerEmptySourceYieldsOnlyEOI(t *testing.T) {
	toks := NewLexer("").Tokenize()
	assert.Equal(t, []TokenType{EOI}, []TokenType{toks[0].Type})
	assert.Len(t, toks, 1)
}

func TestLexerIdentifierRoundTrip(t *testing.T) {
	toks := NewLexer("sum_total2").Tokenize()
	assert.Equal(t, ID, toks[0].Type)
	assert.Equal(t, "sum_total2", toks[0].Literal)
}

func TestLexerKeywords(t *testing.T) {
	cases := map[string]TokenType{
		"func": KW_FUNC, "let": KW_LET, "if": KW_IF, "else": KW_ELSE,
		"while": KW_WHILE, "return": KW_RETURN, "print": KW_PRINT,
		"int32": TYPE_INT32, "flt32": TYPE_FLT32, "char": TYPE_CHAR, "bool": TYPE_BOOL,
		"and": OP_AND, "or": OP_OR, "not": OP_NOT,
	}
	for text, want := range cases {
		toks := NewLexer(text).Tokenize()
		assert.Equalf(t, want, toks[0].Type, "keyword %q", text)
	}
}

func TestLexerBooleanLiterals(t *testing.T) {
	toks := NewLexer("true false").Tokenize()
	assert.Equal(t, LIT_BOOL, toks[0].Type)
	assert.Equal(t, "true", toks[0].Literal)
	assert.Equal(t, LIT_BOOL, toks[1].Type)
	assert.Equal(t, "false", toks[1].Literal)
}

func TestLexerNumbers(t *testing.T) {
	toks := NewLexer("42 3.14 0").Tokenize()
	assert.Equal(t, LIT_INT32, toks[0].Type)
	assert.Equal(t, "42", toks[0].Literal)
	assert.Equal(t, LIT_FLT32, toks[1].Type)
	assert.Equal(t, "3.14", toks[1].Literal)
	assert.Equal(t, LIT_INT32, toks[2].Type)
}

func TestLexerStringLiteralNoEscapes(t *testing.T) {
	toks := NewLexer(`"n="`).Tokenize()
	assert.Equal(t, LIT_STR, toks[0].Type)
	assert.Equal(t, "n=", toks[0].Literal)
}

func TestLexerUnterminatedStringIsUndefined(t *testing.T) {
	toks := NewLexer(`"abc`).Tokenize()
	assert.Equal(t, UNDEFINED, toks[0].Type)
}

func TestLexerCharLiteral(t *testing.T) {
	toks := NewLexer(`'a'`).Tokenize()
	assert.Equal(t, LIT_CHAR, toks[0].Type)
	assert.Equal(t, "a", toks[0].Literal)
}

func TestLexerOperators(t *testing.T) {
	toks := NewLexer("< > <= >= == != = - ->").Tokenize()
	want := []TokenType{OP_LT, OP_GT, OP_NGT, OP_NLT, OP_EQ, OP_NEQ, OP_ASSIGN, OP_SUB, ARROW_R}
	for i, w := range want {
		assert.Equalf(t, w, toks[i].Type, "token %d", i)
	}
}

func TestLexerUnrecognizedCharacterIsUndefined(t *testing.T) {
	toks := NewLexer("@").Tokenize()
	assert.Equal(t, UNDEFINED, toks[0].Type)
}

func TestLexerLineColumnTracking(t *testing.T) {
	toks := NewLexer("let x;\nlet y;").Tokenize()
	// second "let" is on line 2
	var sawLine2 bool
	for _, tok := range toks {
		if tok.Type == KW_LET && tok.Line == 2 {
			sawLine2 = true
		}
	}
	assert.True(t, sawLine2)
}
