/*
File : minilang/eval/eval_statements.go
Block and statement execution: the (control, value) propagation
contract of SPEC_FULL.md §4.5, including the mandatory While/Return and
IfElse/Return fixes over original_source/src/executor.rs's
execute_block / execute_statement.
*/
package eval

import (
	"github.com/akashmaji946/minilang/ast"
	"github.com/akashmaji946/minilang/frame"
	"github.com/akashmaji946/minilang/value"
)

// executeBlock runs a block's statements in order. A Return statement
// short-circuits the block and propagates upward; falling off the end
// yields (ctlNext, Nil).
func (x *Executor) executeBlock(fnName string, block *ast.BlockNode, fr *frame.Frame) (control, value.Value, error) {
	for _, stmt := range block.Statements {
		ctrl, v, err := x.executeStatement(fnName, stmt, fr)
		if err != nil {
			return ctlNext, value.Nil, err
		}
		if ctrl == ctlReturn {
			return ctlReturn, v, nil
		}
	}
	return ctlNext, value.Nil, nil
}

func (x *Executor) executeStatement(fnName string, stmt ast.StmtNode, fr *frame.Frame) (control, value.Value, error) {
	x.Log.Debug("%s: %T", fnName, stmt)

	switch s := stmt.(type) {
	case *ast.LetNode:
		return ctlNext, value.Nil, nil

	case *ast.AssignNode:
		v, err := x.Evaluate(fnName, s.Expr, fr)
		if err != nil {
			return ctlNext, value.Nil, err
		}
		fr.Assign(s.Name, v)
		return ctlNext, value.Nil, nil

	case *ast.ReturnNode:
		v, err := x.Evaluate(fnName, s.Expr, fr)
		if err != nil {
			return ctlNext, value.Nil, err
		}
		return ctlReturn, v, nil

	case *ast.PrintNode:
		v, err := x.Evaluate(fnName, s.Expr, fr)
		if err != nil {
			return ctlNext, value.Nil, err
		}
		x.print(v)
		return ctlNext, value.Nil, nil

	case *ast.WhileNode:
		return x.executeWhile(fnName, s, fr)

	case *ast.IfElseNode:
		return x.executeIfElse(fnName, s, fr)

	default:
		return ctlNext, value.Nil, newRuntimeError(fnName, "unhandled statement type %T", stmt)
	}
}

// executeWhile repeatedly runs body while cond equals Bool(true). Unlike
// IfElse, a non-Bool condition is not fatal here — it simply never
// equals Bool(true), so the loop does not run, matching
// original_source/src/executor.rs's `== Value::Bool(true)` check.
// A Return produced anywhere inside body propagates out of the loop and
// out of the enclosing function — the fix for the bug documented where
// the loop discarded execute_block's result entirely.
func (x *Executor) executeWhile(fnName string, node *ast.WhileNode, fr *frame.Frame) (control, value.Value, error) {
	for {
		cond, err := x.Evaluate(fnName, node.Condition, fr)
		if err != nil {
			return ctlNext, value.Nil, err
		}
		if !cond.Equals(value.Bool(true)) {
			return ctlNext, value.Nil, nil
		}
		ctrl, v, err := x.executeBlock(fnName, node.Body, fr)
		if err != nil {
			return ctlNext, value.Nil, err
		}
		if ctrl == ctlReturn {
			return ctlReturn, v, nil
		}
	}
}

// executeIfElse runs Then or Else depending on cond, propagating
// whichever branch's (control, value) results (SPEC_FULL.md §4.5).
// original_source/src/executor.rs's if_else arm discarded both
// branches' results the same way its While arm did; fixed here too.
func (x *Executor) executeIfElse(fnName string, node *ast.IfElseNode, fr *frame.Frame) (control, value.Value, error) {
	cond, err := x.Evaluate(fnName, node.Condition, fr)
	if err != nil {
		return ctlNext, value.Nil, err
	}
	if cond.Kind != value.KindBool {
		return ctlNext, value.Nil, newRuntimeError(fnName, "if condition must be bool, got %s", cond.TypeName())
	}
	if cond.Bool {
		return x.executeBlock(fnName, node.Then, fr)
	}
	if node.Else != nil {
		return x.executeBlock(fnName, node.Else, fr)
	}
	return ctlNext, value.Nil, nil
}
