/*
File : minilang/eval/evaluator.go
Expression evaluation (SPEC_FULL.md §4.4), grounded on
original_source/src/evaluator.rs's Evaluator::evaluate match over
ExprNode. Call dispatches back into the Executor (ExecuteFunction),
completing the mutual recursion the original expressed via Rc-cloned
Executor/Evaluator references.
*/
package eval

import (
	"github.com/akashmaji946/minilang/ast"
	"github.com/akashmaji946/minilang/frame"
	"github.com/akashmaji946/minilang/value"
)

// Evaluate computes expr's value against fr. fnName is carried only for
// error messages.
func (x *Executor) Evaluate(fnName string, expr ast.ExprNode, fr *frame.Frame) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.VarNode:
		v, ok := fr.Lookup(e.Name)
		if !ok {
			return value.Nil, newRuntimeError(fnName, "variable %q not found", e.Name)
		}
		return v, nil

	case *ast.ValNode:
		return e.Value, nil

	case *ast.StringNode:
		return value.Chars(e.Text), nil

	case *ast.BinaryNode:
		return x.evaluateBinary(fnName, e, fr)

	case *ast.CallNode:
		return x.evaluateCall(fnName, e, fr)

	default:
		return value.Nil, newRuntimeError(fnName, "unhandled expression type %T", expr)
	}
}

// evaluateCall implements SPEC_FULL.md §4.4's five-step Call protocol.
func (x *Executor) evaluateCall(fnName string, call *ast.CallNode, fr *frame.Frame) (value.Value, error) {
	callee, ok := fr.Lookup(call.Name)
	if !ok || callee.Kind != value.KindFunc {
		return value.Nil, newRuntimeError(fnName, "%q is not a callable function", call.Name)
	}
	funcNode, ok := callee.Fn.(*ast.FuncNode)
	if !ok {
		return value.Nil, newRuntimeError(fnName, "%q is not a callable function", call.Name)
	}
	if funcNode.Arity() != len(call.Args) {
		return value.Nil, newRuntimeError(fnName, "call to %q: want %d arguments, got %d", call.Name, funcNode.Arity(), len(call.Args))
	}

	args := make([]value.Value, len(call.Args))
	for i, argExpr := range call.Args {
		v, err := x.Evaluate(fnName, argExpr, fr)
		if err != nil {
			return value.Nil, err
		}
		args[i] = v
	}

	globals, ok := fr.Global()
	if !ok {
		return value.Nil, newRuntimeError(fnName, "no globals link in current frame")
	}

	return x.ExecuteFunction(funcNode, globals, args)
}
