// Package output provides context-aware output for shakti.
// Stdout is used for primary data output (trees, lists, reports).
// Stderr (via log package) is used for diagnostics.
package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/shakti/internal/ui/styles"
)

type ctxKey struct{}

// Printer writes primary output to stdout.
type Printer struct {
	w io.Writer
}

// New creates a new Printer writing to the given writer.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Terminal wraps f so that styled output is downsampled to what the
// terminal supports, and stripped entirely when f is not a terminal or
// NO_COLOR is set.
func Terminal(f *os.File) io.Writer {
	return colorprofile.NewWriter(f, os.Environ())
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, &Printer{w: w})
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return &Printer{w: os.Stdout}
}

// Print writes output without a newline.
func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.w, a...)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Heading writes a bold title line.
func (p *Printer) Heading(title string) {
	fmt.Fprintln(p.w, styles.Bold.Render(title))
}

// Rule writes a horizontal separator of width '=' characters.
func (p *Printer) Rule(width int) {
	fmt.Fprintln(p.w, strings.Repeat("=", width))
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}
