/*
File    : minilang/analyzer/analyzer.go
Package analyzer implements the two-pass (plus unused-diagnostics)
semantic analysis of SPEC_FULL.md §4.3: symbol collection, reference
resolution, and unused-local warnings, over an already-parsed
*ast.ProgramNode.

Grounded on original_source/src/analyzer.rs's Analyzer{program} /
collect_symbols_program / reference_symbols_program shape. Pass 1's
program-level half (functions, top-level lets) is a direct port; its
per-function half and all of Pass 2 complete what the original left as
`// TODO` (reference_symbols_program's body). Pass 3 has no original
counterpart — SPEC_FULL.md §4.3 adds it.
*/
package analyzer

import (
	"fmt"

	"github.com/akashmaji946/minilang/ast"
	"github.com/akashmaji946/minilang/symbols"
	"github.com/akashmaji946/minilang/value"
)

// Warning is one unused-local diagnostic (SPEC_FULL.md §4.3 Pass 3).
type Warning struct {
	Func string
	Name string
}

func (w Warning) String() string {
	return fmt.Sprintf("unused local %q in function %q", w.Name, w.Func)
}

// Analyze runs all three passes over prog, returning the collected
// unused-variable warnings, or the first fatal *AnalysisError.
func Analyze(prog *ast.ProgramNode) ([]Warning, error) {
	if err := collectSymbols(prog); err != nil {
		return nil, err
	}
	if err := resolveReferences(prog); err != nil {
		return nil, err
	}
	return unusedWarnings(prog), nil
}

// collectSymbols is Pass 1: populate the program table with one entry
// per function and top-level let, then populate each function body's
// table with its parameters and its directly-nested let names.
func collectSymbols(prog *ast.ProgramNode) error {
	for _, fn := range prog.Funcs {
		if _, ok := prog.Symbols.Declare(fn.Name, value.Func(fn), fn.Arity()); !ok {
			return newAnalysisError("", "duplicate identifier %q", fn.Name)
		}
	}
	for _, let := range prog.Lets {
		if _, ok := prog.Symbols.Declare(let.Name, value.Nil, 0); !ok {
			return newAnalysisError("", "duplicate identifier %q", let.Name)
		}
	}

	for _, fn := range prog.Funcs {
		fn.Body.Symbols.Parent = prog.Symbols
		for _, param := range fn.Parameters {
			if _, ok := fn.Body.Symbols.Declare(param.Name, value.Nil, 0); !ok {
				return newAnalysisError(fn.Name, "duplicate identifier %q", param.Name)
			}
		}
		for _, stmt := range fn.Body.Statements {
			let, ok := stmt.(*ast.LetNode)
			if !ok {
				continue
			}
			if _, ok := fn.Body.Symbols.Declare(let.Name, value.Nil, 0); !ok {
				return newAnalysisError(fn.Name, "duplicate identifier %q", let.Name)
			}
		}
	}
	return nil
}

// resolveReferences is Pass 2: walk every statement of every function,
// resolving variable and call references against the function's table.
func resolveReferences(prog *ast.ProgramNode) error {
	for _, fn := range prog.Funcs {
		if err := resolveBlock(fn.Name, fn.Body); err != nil {
			return err
		}
	}
	return nil
}

func resolveBlock(fnName string, block *ast.BlockNode) error {
	table := block.Symbols
	for _, stmt := range block.Statements {
		if err := resolveStmt(fnName, table, stmt); err != nil {
			return err
		}
	}
	return nil
}

func resolveStmt(fnName string, table *symbols.Table, stmt ast.StmtNode) error {
	switch s := stmt.(type) {
	case *ast.LetNode:
		if _, ok := table.LookupLocal(s.Name); !ok {
			return newAnalysisError(fnName, "let %q was not registered by symbol collection", s.Name)
		}
		if s.Init != nil {
			resolveExpr(table, s.Init)
		}
	case *ast.AssignNode:
		if !table.MarkUsed(s.Name) {
			return newAnalysisError(fnName, "assignment to undeclared name %q", s.Name)
		}
		resolveExpr(table, s.Expr)
	case *ast.ReturnNode:
		resolveExpr(table, s.Expr)
	case *ast.PrintNode:
		resolveExpr(table, s.Expr)
	case *ast.WhileNode:
		resolveExpr(table, s.Condition)
		if err := resolveBlockAgainst(fnName, table, s.Body); err != nil {
			return err
		}
	case *ast.IfElseNode:
		resolveExpr(table, s.Condition)
		if err := resolveBlockAgainst(fnName, table, s.Then); err != nil {
			return err
		}
		if s.Else != nil {
			if err := resolveBlockAgainst(fnName, table, s.Else); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveBlockAgainst resolves a nested block's statements against the
// enclosing function's table (nested blocks share the flat function
// scope; see SPEC_FULL.md §5's "Note on scoping bug surface" — a
// `let` directly inside a nested block was never declared by Pass 1, so
// it surfaces here as an undeclared-name analysis error, by design).
func resolveBlockAgainst(fnName string, table *symbols.Table, block *ast.BlockNode) error {
	block.Symbols.Parent = table
	for _, stmt := range block.Statements {
		if err := resolveStmt(fnName, table, stmt); err != nil {
			return err
		}
	}
	return nil
}

// resolveExpr marks Var and Call references used when found locally.
// An unresolved name is not an error here — it may resolve against the
// global frame at evaluation time (SPEC_FULL.md §4.3).
func resolveExpr(table *symbols.Table, expr ast.ExprNode) {
	switch e := expr.(type) {
	case *ast.VarNode:
		table.MarkUsed(e.Name)
	case *ast.CallNode:
		table.MarkUsed(e.Name)
		for _, arg := range e.Args {
			resolveExpr(table, arg)
		}
	case *ast.BinaryNode:
		resolveExpr(table, e.Left)
		resolveExpr(table, e.Right)
	}
}

// unusedWarnings is Pass 3: collect a warning for every function-local
// symbol (parameter or let) whose IsUsed flag is still false.
func unusedWarnings(prog *ast.ProgramNode) []Warning {
	var warnings []Warning
	for _, fn := range prog.Funcs {
		for _, sym := range fn.Body.Symbols.Locals() {
			if !sym.IsUsed {
				warnings = append(warnings, Warning{Func: fn.Name, Name: sym.Name})
			}
		}
	}
	return warnings
}
