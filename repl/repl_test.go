package repl

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/minilang/ast"
	"github.com/akashmaji946/minilang/eval"
	"github.com/akashmaji946/minilang/frame"
	"github.com/akashmaji946/minilang/symbols"
	"github.com/stretchr/testify/assert"
)

func newSession(out *bytes.Buffer) *session {
	return &session{
		prog: &ast.ProgramNode{Symbols: symbols.NewTable(nil)},
		fr:   frame.New(nil, nil),
		exec: eval.NewExecutor(out),
		out:  out,
	}
}

func TestLetDeclarationEvaluatesAndBinds(t *testing.T) {
	var out bytes.Buffer
	sess := newSession(&out)

	sess.evalLine("let x = 5;")
	assert.Contains(t, out.String(), "x = 5")

	v, ok := sess.fr.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, int32(5), v.I32)
}

func TestFuncDeclarationIsCallableOnALaterLine(t *testing.T) {
	var out bytes.Buffer
	sess := newSession(&out)

	sess.evalLine("func add(a, b) [ return a + b; ]")
	assert.Contains(t, out.String(), "func add/2 defined")

	sess.evalLine("let sum = add(2, 3);")
	assert.Contains(t, out.String(), "sum = 5")
}

func TestDuplicateDeclarationIsReportedNotFatal(t *testing.T) {
	var out bytes.Buffer
	sess := newSession(&out)

	sess.evalLine("let x = 1;")
	sess.evalLine("let x = 2;")
	assert.Contains(t, out.String(), `duplicate identifier "x"`)

	v, _ := sess.fr.Lookup("x")
	assert.Equal(t, int32(1), v.I32, "the first declaration must stick")
}

func TestParseErrorIsReportedNotFatal(t *testing.T) {
	var out bytes.Buffer
	sess := newSession(&out)

	sess.evalLine("let ;")
	assert.NotPanics(t, func() { sess.evalLine("let y = 1;") })
	v, ok := sess.fr.Lookup("y")
	assert.True(t, ok)
	assert.Equal(t, int32(1), v.I32)
}
