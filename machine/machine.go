/*
File    : minilang/machine/machine.go
Package machine is the pipeline orchestrator of SPEC_FULL.md §2:
lex (implicitly, via parser.Parse) -> parse -> analyze -> execute,
composing the four CORE components and the logger ambient concern.

Grounded on original_source/src/machine.rs's Machine{program} / run
composing Analyzer::analyze() then Executor::execute(); the logger
parameter and the explicit error returns are this rewrite's additions
(SPEC_FULL.md §10's "threaded explicitly into machine.Machine").
*/
package machine

import (
	"io"

	"github.com/akashmaji946/minilang/analyzer"
	"github.com/akashmaji946/minilang/eval"
	"github.com/akashmaji946/minilang/logger"
	"github.com/akashmaji946/minilang/parser"
	"github.com/akashmaji946/minilang/value"
)

// Machine runs one source file end to end.
type Machine struct {
	Log *logger.Logger
	Out io.Writer
}

// New creates a Machine that logs via log and writes Print output to
// out.
func New(log *logger.Logger, out io.Writer) *Machine {
	return &Machine{Log: log, Out: out}
}

// Run lexes+parses src, analyzes the result, logs any unused-variable
// warnings, and executes it, returning the value main returned.
func (m *Machine) Run(src string) (value.Value, error) {
	m.Log.Info("Parse.")
	prog, err := parser.Parse(src)
	if err != nil {
		return value.Nil, err
	}

	m.Log.Info("Analyze.")
	warnings, err := analyzer.Analyze(prog)
	if err != nil {
		return value.Nil, err
	}
	for _, w := range warnings {
		m.Log.Warn("%s", w.String())
	}

	m.Log.Info("Execute.")
	x := eval.NewExecutor(m.Out)
	x.Log = m.Log
	return x.Execute(prog)
}
