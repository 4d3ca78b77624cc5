/*
File    : minilang/symbols/symbols.go
Package symbols implements the analysis-time symbol table of
SPEC_FULL.md §3: a mapping from name to Symbol{name, value, signature,
is-used}, with a parent link forming a lookup chain.

Grounded on scope/scope.go's parent-chain-walk / lazy-map-init idiom,
split out from its single Scope type (which also served as the runtime
environment) and on original_source/src/symbols.rs's
Symbol{name, value, signature, is_used} / Symbols{parent, map} shape.
Unlike scope.Scope, a Table carries no Consts/LetVars/LetTypes — this
language has a single declaration form (`let`) and no type annotations
to track.
*/
package symbols

import "github.com/akashmaji946/minilang/value"

// Symbol is the analyzer-time record for one declared name.
type Symbol struct {
	Name      string
	Value     value.Value
	Signature int // arity for functions, 0 for variables
	IsUsed    bool
}

// Table is a hierarchical name -> Symbol mapping. The program-level
// table is the parent of every function body's table (SPEC_FULL.md §3).
type Table struct {
	Parent  *Table
	entries map[string]*Symbol
	order   []string // declaration order, for deterministic diagnostics
}

// NewTable creates a table with the given parent (nil for the
// program-level table).
func NewTable(parent *Table) *Table {
	return &Table{Parent: parent}
}

// Declare inserts a new symbol into this table only (not the parent
// chain). Declaring a name already present in this table is a fatal
// analysis error (SPEC_FULL.md §3's "Names unique within a single
// table" invariant) signaled by returning false.
func (t *Table) Declare(name string, v value.Value, signature int) (*Symbol, bool) {
	if t.entries == nil {
		t.entries = make(map[string]*Symbol)
	}
	if _, exists := t.entries[name]; exists {
		return nil, false
	}
	sym := &Symbol{Name: name, Value: v, Signature: signature}
	t.entries[name] = sym
	t.order = append(t.order, name)
	return sym, true
}

// LookupLocal finds name in this table only, without consulting Parent.
func (t *Table) LookupLocal(name string) (*Symbol, bool) {
	if t.entries == nil {
		return nil, false
	}
	sym, ok := t.entries[name]
	return sym, ok
}

// Lookup finds name by walking this table, then Parent, then
// Parent.Parent, and so on.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	for table := t; table != nil; table = table.Parent {
		if sym, ok := table.LookupLocal(name); ok {
			return sym, true
		}
	}
	return nil, false
}

// MarkUsed finds name via Lookup and sets its IsUsed flag, reporting
// whether the name was found at all.
func (t *Table) MarkUsed(name string) bool {
	sym, ok := t.Lookup(name)
	if !ok {
		return false
	}
	sym.IsUsed = true
	return true
}

// Locals returns this table's own symbols in declaration order (not
// including Parent's), for the unused-variable diagnostic pass.
func (t *Table) Locals() []*Symbol {
	syms := make([]*Symbol, 0, len(t.order))
	for _, name := range t.order {
		syms = append(syms, t.entries[name])
	}
	return syms
}
