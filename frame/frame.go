/*
File    : minilang/frame/frame.go
Package frame implements the execution-time call frame of
SPEC_FULL.md §3: a mapping from name to value plus a link to the global
frame and a link to a parent-scope frame. Frames are created only at
call time; they do not mirror every block (SPEC_FULL.md §5,
"Analyzer/executor scoping divergence", option (a) — flat function
scope).

Grounded on scope/scope.go's parent-chain-walk / lazy-map-init idiom and
original_source/src/frame.rs's Frame{global, values} with
lookup/lookup_global/assign/init_symbols/init_parameters.
*/
package frame

import (
	"github.com/akashmaji946/minilang/symbols"
	"github.com/akashmaji946/minilang/value"
)

// Frame is one function call's environment.
type Frame struct {
	global *Frame
	parent *Frame
	values map[string]value.Value
}

// New creates a frame linked to the given global frame (nil for the
// global frame itself) and an optional parent frame for enclosing-scope
// reads.
func New(global, parent *Frame) *Frame {
	return &Frame{global: global, parent: parent}
}

// Global returns this frame's global-frame link, and whether one is
// set. The global frame itself has no global link (SPEC_FULL.md §4.4:
// "missing globals link" is a fatal runtime error when a Call needs
// one).
func (f *Frame) Global() (*Frame, bool) {
	return f.global, f.global != nil
}

// InitSymbols seeds this frame's value map from a symbol table — used
// once to build the global frame from the program's symbol table
// (SPEC_FULL.md §4.5 step 2), capturing function handles.
func (f *Frame) InitSymbols(table *symbols.Table) {
	for _, sym := range table.Locals() {
		f.assignLocal(sym.Name, sym.Value)
	}
}

// InitParameters binds parameter names to argument values in order.
// Caller guarantees len(names) == len(args) (arity is checked before
// this is called, per SPEC_FULL.md §4.5 step 1).
func (f *Frame) InitParameters(names []string, args []value.Value) {
	for i, name := range names {
		f.assignLocal(name, args[i])
	}
}

func (f *Frame) assignLocal(name string, v value.Value) {
	if f.values == nil {
		f.values = make(map[string]value.Value)
	}
	f.values[name] = v
}

// Lookup resolves name against the lookup chain: local frame, then
// parent frame (if any), then global frame (SPEC_FULL.md §3). Absent
// everywhere, it returns Nil and false.
func (f *Frame) Lookup(name string) (value.Value, bool) {
	if v, ok := f.values[name]; ok {
		return v, true
	}
	if f.parent != nil {
		if v, ok := f.parent.Lookup(name); ok {
			return v, true
		}
	}
	if f.global != nil {
		if v, ok := f.global.values[name]; ok {
			return v, true
		}
	}
	return value.Nil, false
}

// Assign writes name = v into whichever frame in the lookup chain
// already binds name (local, then parent, then global); if no frame
// binds it yet, it is created in the local frame. This matches
// SPEC_FULL.md §4.5's Assign semantics: "this writes into whichever
// scope currently binds name".
func (f *Frame) Assign(name string, v value.Value) {
	if _, ok := f.values[name]; ok {
		f.values[name] = v
		return
	}
	if f.parent != nil {
		if _, ok := f.parent.Lookup(name); ok {
			f.parent.Assign(name, v)
			return
		}
	}
	if f.global != nil {
		if _, ok := f.global.values[name]; ok {
			f.global.values[name] = v
			return
		}
	}
	f.assignLocal(name, v)
}
