package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/minilang/analyzer"
	"github.com/akashmaji946/minilang/parser"
	"github.com/stretchr/testify/assert"
)

// run parses, analyzes, and executes src, returning the lines printed
// to stdout by the program's own `print` statements.
func run(t *testing.T, src string) ([]string, error) {
	t.Helper()
	prog, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	if _, err := analyzer.Analyze(prog); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	x := NewExecutor(&buf)
	if _, err := x.Execute(prog); err != nil {
		return nil, err
	}
	out := strings.TrimRight(buf.String(), "\n")
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

func TestScenario1_AdditionAndCall(t *testing.T) {
	lines, err := run(t, `
	func add(a,b) [ return a + b; ]
	func main(argc) [
	  let sum;
	  sum = 3 + 5 + 7;
	  print sum;
	  sum = add(sum, 1);
	  print sum;
	]`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"15", "16"}, lines)
}

func TestScenario2_WhileLoop(t *testing.T) {
	lines, err := run(t, `
	func main(argc) [
	  let i;
	  i = 0;
	  while i < 3 [ i = i + 1; print i; ]
	]`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, lines)
}

func TestScenario3_IfElseTrueBranch(t *testing.T) {
	lines, err := run(t, `func main(argc) [ let x; x = 10;
	  if x == 10 [ print 1; ] else [ print 2; ] ]`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"1"}, lines)
}

func TestScenario4_StringConcatWithInteger(t *testing.T) {
	lines, err := run(t, `func main(argc) [ print "n=" + 42; ]`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"n=42"}, lines)
}

func TestScenario5_UnusedLocalStillRuns(t *testing.T) {
	lines, err := run(t, `func main(argc) [ let unused; print 1; ]`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"1"}, lines)
}

func TestScenario6_DuplicateIdentifierIsFatal(t *testing.T) {
	lines, err := run(t, `let x; let x;
	func main(argc) [ print 0; ]`)
	assert.Error(t, err)
	assert.Nil(t, lines)
}

func TestScenario7_ReturnInsideWhilePropagatesOut(t *testing.T) {
	lines, err := run(t, `
	func main(argc) [
	  let i;
	  i = 0;
	  while i < 10 [
	    if i == 3 [ return i; ]
	    i = i + 1;
	  ]
	  print 999;
	]`)
	assert.NoError(t, err)
	assert.Equal(t, []string(nil), lines, "main returns 3 from inside the loop; nothing is printed")
}

func TestEmptyProgramHasNoMain(t *testing.T) {
	_, err := run(t, ``)
	assert.Error(t, err)
	var rerr *RuntimeError
	assert.ErrorAs(t, err, &rerr)
}

func TestEmptyFunctionBodyReturnsNil(t *testing.T) {
	prog, err := parser.Parse(`func main(argc) [ ]`)
	assert.NoError(t, err)
	_, err = analyzer.Analyze(prog)
	assert.NoError(t, err)

	var buf bytes.Buffer
	x := NewExecutor(&buf)
	result, err := x.Execute(prog)
	assert.NoError(t, err)
	assert.True(t, result.IsNil())
}

func TestZeroArityCallSucceeds(t *testing.T) {
	lines, err := run(t, `
	func greet() [ print "hi"; return 0; ]
	func main(argc) [ let x; x = greet(); ]`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"hi"}, lines)
}

func TestWrongArityCallIsFatal(t *testing.T) {
	_, err := run(t, `
	func add(a,b) [ return a + b; ]
	func main(argc) [ print add(1); ]`)
	assert.Error(t, err)
}

func TestIfWithoutElseFalseConditionProducesNil(t *testing.T) {
	prog, err := parser.Parse(`func main(argc) [ if false [ print 1; ] ]`)
	assert.NoError(t, err)
	_, err = analyzer.Analyze(prog)
	assert.NoError(t, err)

	var buf bytes.Buffer
	x := NewExecutor(&buf)
	result, err := x.Execute(prog)
	assert.NoError(t, err)
	assert.True(t, result.IsNil())
	assert.Empty(t, buf.String())
}

func TestWhileInitiallyFalseNeverRuns(t *testing.T) {
	lines, err := run(t, `func main(argc) [ while false [ print 1; ] print 2; ]`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"2"}, lines)
}

func TestMixedI32F32ArithmeticWidens(t *testing.T) {
	lines, err := run(t, `func main(argc) [ print 1 + 2.5; ]`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"3.5"}, lines)
}

func TestUndeclaredVariableLookupIsFatal(t *testing.T) {
	_, err := run(t, `func main(argc) [ print missing; ]`)
	assert.Error(t, err)
}

func TestNonBooleanIfConditionIsFatal(t *testing.T) {
	_, err := run(t, `func main(argc) [ if 1 [ print 1; ] ]`)
	assert.Error(t, err)
}

func TestRelationalOperatorsRejectBoolOperands(t *testing.T) {
	for _, op := range []string{"<", ">", "<=", ">=", "!=", "=="} {
		_, err := run(t, `func main(argc) [ print true `+op+` false; ]`)
		if op == "!=" || op == "==" {
			assert.NoError(t, err, "equality operators still accept Bool operands")
			continue
		}
		assert.Error(t, err, "operator %s must be fatal on Bool operands", op)
	}
}

func TestNonBooleanWhileConditionDoesNotRunAndIsNotFatal(t *testing.T) {
	lines, err := run(t, `func main(argc) [ while 1 [ print 1; ] print 2; ]`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"2"}, lines)
}
