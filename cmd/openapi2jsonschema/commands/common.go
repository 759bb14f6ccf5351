// Package commands provides CLI command handlers for openapi2jsonschema.
package commands

import (
	"fmt"
	"strings"

	"github.com/erraggy/openapi2jsonschema/internal/cliutil"
	"github.com/erraggy/openapi2jsonschema/loader"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// statusLogger adapts a StatusPrinter to the loader.Logger interface so
// library progress logs surface as the CLI's colored status lines:
// info in green, per-type debug detail in yellow, failures in red.
type statusLogger struct {
	status *cliutil.StatusPrinter
	attrs  []any
}

// NewStatusLogger wraps a status printer as a loader.Logger.
func NewStatusLogger(status *cliutil.StatusPrinter) loader.Logger {
	return &statusLogger{status: status}
}

// Debug implements loader.Logger.
func (l *statusLogger) Debug(msg string, attrs ...any) {
	l.status.Debugf("%s", l.format(msg, attrs))
}

// Info implements loader.Logger.
func (l *statusLogger) Info(msg string, attrs ...any) {
	l.status.Infof("%s", l.format(msg, attrs))
}

// Warn implements loader.Logger.
func (l *statusLogger) Warn(msg string, attrs ...any) {
	l.status.Debugf("%s", l.format(msg, attrs))
}

// Error implements loader.Logger.
func (l *statusLogger) Error(msg string, attrs ...any) {
	l.status.Errorf("%s", l.format(msg, attrs))
}

// With implements loader.Logger.
func (l *statusLogger) With(attrs ...any) loader.Logger {
	combined := make([]any, 0, len(l.attrs)+len(attrs))
	combined = append(combined, l.attrs...)
	combined = append(combined, attrs...)
	return &statusLogger{status: l.status, attrs: combined}
}

// format renders a message with its key-value attributes appended as
// key=value pairs.
func (l *statusLogger) format(msg string, attrs []any) string {
	all := make([]any, 0, len(l.attrs)+len(attrs))
	all = append(all, l.attrs...)
	all = append(all, attrs...)
	if len(all) == 0 {
		return msg
	}

	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i < len(all); i += 2 {
		b.WriteByte(' ')
		fmt.Fprintf(&b, "%v", all[i])
		b.WriteByte('=')
		if i+1 < len(all) {
			fmt.Fprintf(&b, "%v", all[i+1])
		} else {
			b.WriteString("!MISSING")
		}
	}
	return b.String()
}
