// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// ANSI color escape sequences for status output.
const (
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
	ansiReset  = "\x1b[0m"
)

// StatusPrinter writes colored status lines: green for informational
// progress, yellow for per-type detail, red for failures. Color is applied
// only when the writer is a terminal and NO_COLOR is unset.
type StatusPrinter struct {
	w     io.Writer
	color bool
}

// NewStatusPrinter creates a status printer for the writer, detecting
// whether color output is appropriate.
func NewStatusPrinter(w io.Writer) *StatusPrinter {
	return &StatusPrinter{w: w, color: colorEnabled(w)}
}

// NewPlainStatusPrinter creates a status printer with color disabled.
func NewPlainStatusPrinter(w io.Writer) *StatusPrinter {
	return &StatusPrinter{w: w}
}

// colorEnabled reports whether colored output should be used for the
// writer. NO_COLOR (https://no-color.org) always wins; otherwise color is
// used only for character devices.
func colorEnabled(w io.Writer) bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// Infof prints a green informational status line.
func (p *StatusPrinter) Infof(format string, args ...any) {
	p.printf(ansiGreen, format, args...)
}

// Debugf prints a yellow per-item detail line.
func (p *StatusPrinter) Debugf(format string, args ...any) {
	p.printf(ansiYellow, format, args...)
}

// Errorf prints a red failure line.
func (p *StatusPrinter) Errorf(format string, args ...any) {
	p.printf(ansiRed, format, args...)
}

func (p *StatusPrinter) printf(color, format string, args ...any) {
	if p.color {
		Writef(p.w, "%s", color)
	}
	Writef(p.w, format, args...)
	if p.color {
		Writef(p.w, "%s", ansiReset)
	}
	Writef(p.w, "\n")
}
