/*
File    : minilang/eval/executor.go
Package eval implements the tree-walking Evaluator and Executor of
SPEC_FULL.md §4.4-4.5 as a single Executor type (evaluation and
execution are mutually recursive through Call, so they share one
package and one receiver, the way original_source/src/evaluator.rs and
executor.rs share a mutual Rc-cycle of imports).

Grounded on original_source/src/executor.rs's Executor{program} /
execute / execute_program / execute_function / execute_block /
execute_statement shape, and original_source/src/evaluator.rs's
Evaluator::evaluate. The While-body and IfElse-branch result-discarding
bugs documented in those files (SPEC_FULL.md §9) are fixed here: both
propagate their block's (control, value) instead of throwing it away.
*/
package eval

import (
	"fmt"
	"io"

	"github.com/akashmaji946/minilang/ast"
	"github.com/akashmaji946/minilang/frame"
	"github.com/akashmaji946/minilang/logger"
	"github.com/akashmaji946/minilang/value"
)

// Executor runs a parsed, analyzed program. Out receives Print output.
// Log is optional (nil-safe, per logger's own contract) and receives
// per-statement Debug traces when set to a Debug-level logger.
type Executor struct {
	Out io.Writer
	Log *logger.Logger
}

// NewExecutor creates an Executor that writes Print output to out.
func NewExecutor(out io.Writer) *Executor {
	return &Executor{Out: out}
}

// control is the result of running one statement or block: whether
// execution should keep going (Next) or unwind to the caller (Return).
type control int

const (
	ctlNext control = iota
	ctlReturn
)

// Execute is the top-level entry point (SPEC_FULL.md §4.5's
// `execute(program)`): find and run `main` with a single I32(1)
// argument, mirroring execute_program's hardcoded argument list.
func (x *Executor) Execute(prog *ast.ProgramNode) (value.Value, error) {
	sym, ok := prog.Symbols.Lookup("main")
	if !ok {
		return value.Nil, newRuntimeError("", "cannot find 'main' symbol")
	}
	if sym.Value.Kind != value.KindFunc {
		return value.Nil, newRuntimeError("", "symbol 'main' is not a function")
	}
	mainFn, ok := sym.Value.Fn.(*ast.FuncNode)
	if !ok {
		return value.Nil, newRuntimeError("", "symbol 'main' is not a function")
	}

	globals := frame.New(nil, nil)
	globals.InitSymbols(prog.Symbols)

	return x.ExecuteFunction(mainFn, globals, []value.Value{value.I32(1)})
}

// ExecuteFunction runs fn with globals as its calling frame's global
// link and args bound to its parameters in order.
func (x *Executor) ExecuteFunction(fn *ast.FuncNode, globals *frame.Frame, args []value.Value) (value.Value, error) {
	if len(args) < fn.Arity() {
		return value.Nil, newRuntimeError(fn.Name, "not enough arguments: want %d, got %d", fn.Arity(), len(args))
	}
	if len(args) > fn.Arity() {
		return value.Nil, newRuntimeError(fn.Name, "too many arguments: want %d, got %d", fn.Arity(), len(args))
	}

	locals := frame.New(globals, nil)
	names := make([]string, len(fn.Parameters))
	for i, p := range fn.Parameters {
		names[i] = p.Name
	}
	locals.InitParameters(names, args)

	_, result, err := x.executeBlock(fn.Name, fn.Body, locals)
	return result, err
}

func (x *Executor) print(v value.Value) {
	fmt.Fprintln(x.Out, v.String())
}
