/*
File : minilang/eval/eval_arithmetic.go
Binary operator dispatch (SPEC_FULL.md §4.4): arithmetic with I32/F32
widening and Chars concatenation, plus the relational operators the
evaluator's own Compare/Equals delegate to. Grounded on
original_source/src/evaluator.rs's Self::add, generalized to Sub/Mul/Div
and to the full relational set the original left as `// TODO`.
*/
package eval

import (
	"github.com/akashmaji946/minilang/ast"
	"github.com/akashmaji946/minilang/frame"
	"github.com/akashmaji946/minilang/value"
)

func (x *Executor) evaluateBinary(fnName string, node *ast.BinaryNode, fr *frame.Frame) (value.Value, error) {
	a, err := x.Evaluate(fnName, node.Left, fr)
	if err != nil {
		return value.Nil, err
	}
	b, err := x.Evaluate(fnName, node.Right, fr)
	if err != nil {
		return value.Nil, err
	}

	switch node.Op {
	case ast.OpAdd:
		return evalAdd(fnName, a, b)
	case ast.OpSub:
		return evalArith(fnName, "-", a, b, func(x, y float64) float64 { return x - y })
	case ast.OpMul:
		return evalArith(fnName, "*", a, b, func(x, y float64) float64 { return x * y })
	case ast.OpDiv:
		return evalDiv(fnName, a, b)
	case ast.OpEqualTo:
		return value.Bool(a.Equals(b)), nil
	case ast.OpNotEqualTo:
		return value.Bool(!a.Equals(b)), nil
	case ast.OpLessThan:
		return evalRelational(fnName, a, b, func(cmp int) bool { return cmp < 0 })
	case ast.OpGreaterThan:
		return evalRelational(fnName, a, b, func(cmp int) bool { return cmp > 0 })
	case ast.OpLessThanEq:
		return evalRelational(fnName, a, b, func(cmp int) bool { return cmp <= 0 })
	case ast.OpGreaterThanEq:
		return evalRelational(fnName, a, b, func(cmp int) bool { return cmp >= 0 })
	default:
		return value.Nil, newRuntimeError(fnName, "unhandled binary operator %d", node.Op)
	}
}

// evalAdd implements Add's operand dispatch: numeric widening, or Chars
// concatenation with anything printable (Nil, Bool, or Func on either
// side is fatal, matching §4.4).
func evalAdd(fnName string, a, b value.Value) (value.Value, error) {
	if a.Kind == value.KindChars || b.Kind == value.KindChars {
		if a.Kind == value.KindNil || b.Kind == value.KindNil || a.Kind == value.KindBool || b.Kind == value.KindBool || a.Kind == value.KindFunc || b.Kind == value.KindFunc {
			return value.Nil, newRuntimeError(fnName, "cannot concatenate %s and %s", a.TypeName(), b.TypeName())
		}
		return value.Chars(a.String() + b.String()), nil
	}
	return evalArith(fnName, "+", a, b, func(x, y float64) float64 { return x + y })
}

// evalArith implements the shared I32/I32->I32, F32/F32->F32,
// mixed->F32 widening rule for Sub/Mul/Add-on-numbers.
func evalArith(fnName, opName string, a, b value.Value, op func(x, y float64) float64) (value.Value, error) {
	if a.Kind == value.KindI32 && b.Kind == value.KindI32 {
		return value.I32(int32(op(float64(a.I32), float64(b.I32)))), nil
	}
	af, aok := numeric(a)
	bf, bok := numeric(b)
	if !aok || !bok {
		return value.Nil, newRuntimeError(fnName, "operator %s not defined for %s and %s", opName, a.TypeName(), b.TypeName())
	}
	return value.F32(float32(op(af, bf))), nil
}

// evalDiv mirrors evalArith's widening but additionally traps division
// by an I32 zero (SPEC_FULL.md §4.4).
func evalDiv(fnName string, a, b value.Value) (value.Value, error) {
	if a.Kind == value.KindI32 && b.Kind == value.KindI32 {
		if b.I32 == 0 {
			return value.Nil, newRuntimeError(fnName, "division by zero")
		}
		return value.I32(a.I32 / b.I32), nil
	}
	af, aok := numeric(a)
	bf, bok := numeric(b)
	if !aok || !bok {
		return value.Nil, newRuntimeError(fnName, "operator / not defined for %s and %s", a.TypeName(), b.TypeName())
	}
	if bf == 0 {
		return value.Nil, newRuntimeError(fnName, "division by zero")
	}
	return value.F32(float32(af / bf)), nil
}

// evalRelational widens through value.Compare and applies accept to the
// resulting ordering; non-comparable operand pairs are fatal.
func evalRelational(fnName string, a, b value.Value, accept func(cmp int) bool) (value.Value, error) {
	cmp, ok := a.Compare(b)
	if !ok {
		return value.Nil, newRuntimeError(fnName, "operands of kind %s and %s are not comparable", a.TypeName(), b.TypeName())
	}
	return value.Bool(accept(cmp)), nil
}

func numeric(v value.Value) (float64, bool) {
	switch v.Kind {
	case value.KindI32:
		return float64(v.I32), true
	case value.KindF32:
		return float64(v.F32), true
	default:
		return 0, false
	}
}
