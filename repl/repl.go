/*
File    : minilang/repl/repl.go
Package repl implements the interactive shell described in
SPEC_FULL.md §11: a line-at-a-time loop where each line is parsed as a
program fragment (`func` or `let` declarations, per the grammar — this
language has no bare top-level expression statement) and folded into a
persistent program symbol table and global frame, so names declared on
one line are visible on the next.

Grounded on repl/repl.go's Repl{Banner,Version,Author,Line,License,Prompt}
shape, its color.New(color.FgX) palette, and its readline.New(prompt) /
Readline() / SaveHistory() loop — rebuilt against this language's own
parser/analyzer/eval pipeline instead of go-mix's eval-during-parse one.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/minilang/ast"
	"github.com/akashmaji946/minilang/eval"
	"github.com/akashmaji946/minilang/frame"
	"github.com/akashmaji946/minilang/parser"
	"github.com/akashmaji946/minilang/symbols"
	"github.com/akashmaji946/minilang/value"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration of an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl instance ready for Start.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBanner writes the startup banner and usage instructions to w.
func (r *Repl) PrintBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Welcome to minilang!")
	cyanColor.Fprintf(w, "%s\n", "Enter a 'let' or 'func' declaration and press enter.")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// session is the state shared by every line of one REPL run: a
// growing program (for symbol bookkeeping), its global execution frame,
// and the Executor that evaluates against it.
type session struct {
	prog *ast.ProgramNode
	fr   *frame.Frame
	exec *eval.Executor
	out  io.Writer
}

// Start runs the read-eval-print loop against out until '.exit', EOF,
// or a readline error.
func (r *Repl) Start(out io.Writer) error {
	r.PrintBanner(out)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	sess := &session{
		prog: &ast.ProgramNode{Symbols: symbols.NewTable(nil)},
		fr:   frame.New(nil, nil),
		exec: eval.NewExecutor(out),
		out:  out,
	}

	for {
		line, err := rl.Readline()
		if err != nil {
			io.WriteString(out, "Good bye!\n")
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			io.WriteString(out, "Good bye!\n")
			return nil
		}
		rl.SaveHistory(line)
		sess.evalLine(line)
	}
}

// evalLine parses one line as a program fragment and folds any new
// let/func declarations into the session's persistent state.
func (s *session) evalLine(line string) {
	frag, err := parser.Parse(line)
	if err != nil {
		redColor.Fprintf(s.out, "%s\n", err)
		return
	}

	for _, let := range frag.Lets {
		s.declareLet(let)
	}
	for _, fn := range frag.Funcs {
		s.declareFunc(fn)
	}
}

func (s *session) declareLet(let *ast.LetNode) {
	if _, ok := s.prog.Symbols.Declare(let.Name, value.Nil, 0); !ok {
		redColor.Fprintf(s.out, "duplicate identifier %q\n", let.Name)
		return
	}
	s.prog.Lets = append(s.prog.Lets, let)

	v := value.Nil
	if let.Init != nil {
		var err error
		v, err = s.exec.Evaluate("<repl>", let.Init, frame.New(s.fr, nil))
		if err != nil {
			redColor.Fprintf(s.out, "%s\n", err)
			return
		}
	}
	s.fr.Assign(let.Name, v)
	yellowColor.Fprintf(s.out, "%s = %s\n", let.Name, v.String())
}

func (s *session) declareFunc(fn *ast.FuncNode) {
	if _, ok := s.prog.Symbols.Declare(fn.Name, value.Func(fn), fn.Arity()); !ok {
		redColor.Fprintf(s.out, "duplicate identifier %q\n", fn.Name)
		return
	}

	fn.Body.Symbols.Parent = s.prog.Symbols
	for _, param := range fn.Parameters {
		fn.Body.Symbols.Declare(param.Name, value.Nil, 0)
	}
	for _, stmt := range fn.Body.Statements {
		if letStmt, ok := stmt.(*ast.LetNode); ok {
			fn.Body.Symbols.Declare(letStmt.Name, value.Nil, 0)
		}
	}

	s.prog.Funcs = append(s.prog.Funcs, fn)
	s.fr.Assign(fn.Name, value.Func(fn))
	cyanColor.Fprintf(s.out, "func %s/%d defined\n", fn.Name, fn.Arity())
}
