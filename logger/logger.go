/*
File    : minilang/logger/logger.go
Package logger implements the four-level leveled logger of
SPEC_FULL.md §6/§10: None < Warn < Info < Debug, each level showing
every level below it (Debug shows everything, Info shows Info+Warn,
Warn shows only Warn, None is silent).

Grounded on original_source/src/logger.rs's single global
Level::{Info,Debug,Warn,None} logger, reimplemented as an explicitly
threaded *Logger (no package-level mutable state read by the CORE
itself) per SPEC_FULL.md §10, colorized with github.com/fatih/color the
way repl/repl.go and main/main.go build their color.New(color.FgX)
palettes.
*/
package logger

import (
	"io"
	"os"

	"github.com/fatih/color"
)

// Level is the logger's verbosity threshold.
type Level int

const (
	LevelNone Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// ParseLevel maps a CLI/config spelling to a Level, per SPEC_FULL.md
// §6's `--loglevel` values.
func ParseLevel(s string) (Level, bool) {
	switch s {
	case "none":
		return LevelNone, true
	case "warn":
		return LevelWarn, true
	case "info":
		return LevelInfo, true
	case "debug":
		return LevelDebug, true
	default:
		return LevelNone, false
	}
}

// Logger prints leveled, colorized diagnostics to Out.
type Logger struct {
	Level Level
	Out   io.Writer

	infoColor  *color.Color
	warnColor  *color.Color
	debugColor *color.Color
}

// New creates a Logger at the given level, writing to os.Stdout.
func New(level Level) *Logger {
	return &Logger{
		Level:      level,
		Out:        os.Stdout,
		infoColor:  color.New(color.FgCyan),
		warnColor:  color.New(color.FgYellow),
		debugColor: color.New(color.FgMagenta),
	}
}

// Info logs a pipeline-milestone message, visible at Info and Debug.
func (l *Logger) Info(format string, args ...any) {
	if l == nil || l.Level < LevelInfo {
		return
	}
	l.infoColor.Fprintf(l.Out, "[INFO] "+format+"\n", args...)
}

// Warn logs an unused-variable (or similar) diagnostic, visible at
// Warn, Info, and Debug.
func (l *Logger) Warn(format string, args ...any) {
	if l == nil || l.Level < LevelWarn {
		return
	}
	l.warnColor.Fprintf(l.Out, "[WARN] "+format+"\n", args...)
}

// Debug logs a per-statement/per-token trace, visible only at Debug.
func (l *Logger) Debug(format string, args ...any) {
	if l == nil || l.Level < LevelDebug {
		return
	}
	l.debugColor.Fprintf(l.Out, "[DEBUG] "+format+"\n", args...)
}
