/*
File    : minilang/cmd/minilang/main.go
Package main is the entry point for the minilang interpreter: flag
parsing, optional config loading, and wiring of logger/machine/repl,
grounded on main/main.go's mode dispatch, banner/version variables, and
colorized error reporting, and on file/file.go's role as a minimal
os.ReadFile wrapper.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/minilang/analyzer"
	"github.com/akashmaji946/minilang/config"
	"github.com/akashmaji946/minilang/eval"
	"github.com/akashmaji946/minilang/logger"
	"github.com/akashmaji946/minilang/machine"
	"github.com/akashmaji946/minilang/parser"
	"github.com/akashmaji946/minilang/repl"
	"github.com/fatih/color"
)

// VERSION is the current version of the minilang interpreter.
var VERSION = "v1.0.0"

// AUTHOR is shown by --version and the REPL banner.
var AUTHOR = "minilang maintainers"

// LICENSE is shown by --version and the REPL banner.
var LICENSE = "MIT"

// defaultPrompt is the REPL prompt used when the configured prompt is empty.
const defaultPrompt = "minilang> "

// BANNER is the ASCII title shown at REPL startup.
var BANNER = `
 _____ _       _ _
|     |_|___ _| | |___ ___ ___
| | | | |   | . | | .'|   | . |
|_|_|_|_|_|_|___|_|__,|_|_|_  |
                          |___|
`

// LINE separates the banner from REPL output.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args and executes the requested mode, returning a process
// exit code. Extracted from main so it can be exercised by tests
// without calling os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("minilang", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		logLevelFlag string
		configPath   string
		replMode     bool
		versionMode  bool
	)
	fs.StringVar(&logLevelFlag, "loglevel", "", "log level: none|warn|info|debug")
	fs.StringVar(&logLevelFlag, "l", "", "shorthand for --loglevel")
	fs.StringVar(&configPath, "config", "", "path to a YAML config file")
	fs.StringVar(&configPath, "c", "", "shorthand for --config")
	fs.BoolVar(&replMode, "repl", false, "start the interactive shell instead of running a file")
	fs.BoolVar(&versionMode, "version", false, "print version information and exit")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if versionMode {
		showVersion(stdout)
		return 0
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			redColor.Fprintf(stderr, "[CONFIG ERROR] %s\n", err)
			return 1
		}
		cfg = loaded
	}
	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}

	level, ok := logger.ParseLevel(cfg.LogLevel)
	if !ok {
		redColor.Fprintf(stderr, "[USAGE ERROR] invalid log level %q\n", cfg.LogLevel)
		return 2
	}
	log := logger.New(level)
	log.Out = stdout

	if replMode {
		prompt := cfg.Prompt
		if prompt == "" {
			prompt = defaultPrompt
		}
		r := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, prompt)
		if err := r.Start(stdout); err != nil {
			redColor.Fprintf(stderr, "[REPL ERROR] %s\n", err)
			return 1
		}
		return 0
	}

	if fs.NArg() < 1 {
		redColor.Fprintf(stderr, "[USAGE ERROR] missing source file argument\n")
		fmt.Fprintln(stderr, "usage: minilang [--loglevel L] [--config PATH] <file> | minilang --repl | minilang --version")
		return 2
	}

	return runFile(fs.Arg(0), log, stdout, stderr)
}

// runFile reads and executes a source file, mapping any fatal error
// returned by machine.Run to an exit code per SPEC_FULL.md §7.
func runFile(path string, log *logger.Logger, stdout, stderr io.Writer) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(stderr, "[FILE ERROR] could not read file %q: %s\n", path, err)
		return 1
	}

	m := machine.New(log, stdout)
	_, err = m.Run(string(source))
	if err == nil {
		return 0
	}

	switch e := err.(type) {
	case *parser.ParseError:
		redColor.Fprintf(stderr, "[PARSE ERROR] %s\n", e)
	case *analyzer.AnalysisError:
		redColor.Fprintf(stderr, "[ANALYSIS ERROR] %s\n", e)
	case *eval.RuntimeError:
		redColor.Fprintf(stderr, "[RUNTIME ERROR] %s\n", e)
	default:
		redColor.Fprintf(stderr, "[ERROR] %s\n", e)
	}
	return 1
}

func showVersion(w io.Writer) {
	cyanColor.Fprintln(w, "minilang - a small statically-scoped imperative language")
	cyanColor.Fprintf(w, "Version: %s\n", VERSION)
	cyanColor.Fprintf(w, "License: %s\n", LICENSE)
	yellowColor.Fprintf(w, "Author : %s\n", AUTHOR)
}
