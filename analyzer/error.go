package analyzer

import "fmt"

// AnalysisError is SPEC_FULL.md §7's error kind 3: a duplicate
// identifier at program/function/parameter scope, or a reference to an
// undeclared name.
type AnalysisError struct {
	Func string // enclosing function name, "" at program scope
	Msg  string
}

func (e *AnalysisError) Error() string {
	if e.Func == "" {
		return fmt.Sprintf("analysis error: %s", e.Msg)
	}
	return fmt.Sprintf("analysis error: in function %q: %s", e.Func, e.Msg)
}

func newAnalysisError(fn, format string, args ...any) *AnalysisError {
	return &AnalysisError{Func: fn, Msg: fmt.Sprintf(format, args...)}
}
