/*
File    : minilang/value/value.go
Package value implements the runtime Value model of SPEC_FULL.md §3:
Nil, Bool, I32, F32, Chars, and Func (a shared reference to a function's
AST plus its declared arity — no captured defining environment, since
the language has no closures).

Grounded on objects/objects.go's GoMixObject shape (a small tagged value
with a textual form) and original_source/src/value.rs's hand-written
PartialEq/PartialOrd (equality and ordering defined only within matching
variants, with numeric widening for relational comparisons).
*/
package value

import (
	"fmt"
	"strconv"
)

// Kind is the discriminant of a Value.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindI32
	KindF32
	KindChars
	KindFunc
)

// Callable is implemented by an AST function node: a shared reference
// plus its declared parameter count. Defined here (rather than imported
// from the ast package) so that value has no dependency on ast — ast
// depends on value instead, for ValNode's literal field.
type Callable interface {
	FuncName() string
	Arity() int
}

// Value is the runtime representation of every expression result. It is
// a small value type copied by ordinary Go assignment, matching the
// "values are cloned freely" rule of SPEC_FULL.md §3.
type Value struct {
	Kind Kind
	Bool bool
	I32  int32
	F32  float32
	Str  string
	Fn   Callable
}

// Nil is the sentinel absent-value.
var Nil = Value{Kind: KindNil}

// Bool builds a boolean value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// I32 builds a 32-bit integer value.
func I32(i int32) Value { return Value{Kind: KindI32, I32: i} }

// F32 builds a 32-bit float value.
func F32(f float32) Value { return Value{Kind: KindF32, F32: f} }

// Chars builds a string value.
func Chars(s string) Value { return Value{Kind: KindChars, Str: s} }

// Func builds a function-handle value.
func Func(fn Callable) Value { return Value{Kind: KindFunc, Fn: fn} }

// IsNil reports whether v is the Nil value.
func (v Value) IsNil() bool { return v.Kind == KindNil }

// TypeName returns a short name for the value's kind, used in
// diagnostics and in Func's textual form.
func (v Value) TypeName() string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindI32:
		return "int32"
	case KindF32:
		return "flt32"
	case KindChars:
		return "chars"
	case KindFunc:
		return "func"
	default:
		return "?"
	}
}

// String renders v using the textual form SPEC_FULL.md §4.5 mandates for
// Print: Nil -> "nil"; Bool -> "true"/"false"; I32/F32 -> decimal;
// Chars -> raw string; Func -> "<func NAME ARITY>".
func (v Value) String() string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindI32:
		return strconv.FormatInt(int64(v.I32), 10)
	case KindF32:
		return strconv.FormatFloat(float64(v.F32), 'g', -1, 32)
	case KindChars:
		return v.Str
	case KindFunc:
		return fmt.Sprintf("<func %s %d>", v.Fn.FuncName(), v.Fn.Arity())
	default:
		return "?"
	}
}

// Equals implements the pairwise-within-variant equality of §3: values
// of differing kinds are never equal, Func values are never equal (no
// identity is defined for them, matching original_source's
// PartialEq — it has no Func arm at all, so cross-kind falls to the
// `_ => false` default, and same-kind Func-vs-Func never reaches a
// dedicated arm either).
func (v Value) Equals(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindNil:
		return true
	case KindBool:
		return v.Bool == other.Bool
	case KindI32:
		return v.I32 == other.I32
	case KindF32:
		return v.F32 == other.F32
	case KindChars:
		return v.Str == other.Str
	default:
		return false
	}
}

// numeric widens an I32/F32 value to a float64 for relational
// comparison, reporting whether v is a comparable numeric kind.
func (v Value) numeric() (float64, bool) {
	switch v.Kind {
	case KindI32:
		return float64(v.I32), true
	case KindF32:
		return float64(v.F32), true
	default:
		return 0, false
	}
}

// Compare orders two values after I32<->F32 widening, per §4.4: within
// I32, F32, and Chars, ordering is defined; any other pairing
// (including Bool, Nil, or Func on either side, or Chars against a
// number) is not comparable. Bool has no ordering — the relational
// operators are fatal on Bool operands even though Bool participates
// in == and !=, which go through Equals instead.
func (v Value) Compare(other Value) (cmp int, ok bool) {
	if v.Kind == KindChars && other.Kind == KindChars {
		switch {
		case v.Str < other.Str:
			return -1, true
		case v.Str > other.Str:
			return 1, true
		default:
			return 0, true
		}
	}
	a, aok := v.numeric()
	b, bok := other.numeric()
	if !aok || !bok {
		return 0, false
	}
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	default:
		return 0, true
	}
}
