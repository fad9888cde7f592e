// Package log provides context-aware diagnostic logging for shakti.
//
// Diagnostics go to stderr so stdout stays clean for command output.
// Verbose mode echoes every external command shakti runs.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/raphi011/shakti/internal/ui/styles"
)

type ctxKey struct{}

// Logger writes diagnostics and, when verbose, external command traces.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
}

// New creates a logger. quiet suppresses everything, including verbose output.
func New(out io.Writer, verbose, quiet bool) *Logger {
	return &Logger{out: out, verbose: verbose, quiet: quiet}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a logger writing to io.Discard if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Printf writes formatted output unless quiet.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output unless quiet.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, args...)
}

// Warnf writes a warning line unless quiet.
func (l *Logger) Warnf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, styles.WarningStyle.Render("warning:")+" "+fmt.Sprintf(format, args...))
}

// Debug writes msg followed by key=value pairs when verbose.
// A trailing key without a value is dropped.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if !l.IsVerbose() {
		return
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keyvals[i], keyvals[i+1])
	}
	fmt.Fprintln(l.out, styles.MutedStyle.Render(b.String()))
}

// Command logs an external command before it runs. The returned func
// logs the elapsed time once the command finishes. Both are no-ops
// unless verbose.
func (l *Logger) Command(dir, name string, args ...string) func(time.Duration) {
	if !l.IsVerbose() {
		return func(time.Duration) {}
	}
	line := "$ " + strings.TrimSpace(name+" "+strings.Join(args, " "))
	if dir != "" {
		line = "[" + dir + "] " + line
	}
	fmt.Fprintln(l.out, styles.MutedStyle.Render(line))
	return func(d time.Duration) {
		fmt.Fprintln(l.out, styles.MutedStyle.Render(fmt.Sprintf("  (%s)", d.Round(time.Millisecond))))
	}
}

// IsVerbose reports whether command tracing is on.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
