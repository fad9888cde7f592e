// Package signature reduces source files to their outline: imports plus
// function, class and type signatures with bodies replaced by a short
// placeholder. The result is meant to be pasted into an AI chat as
// compact context.
//
// Python is parsed with tree-sitter (requires cgo); Go with go/parser.
package signature

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Placeholder replaces every function body.
const Placeholder = "Function body here (ommitted for abbreviation), if needed ask for it."

// ErrUnsupported is returned for files no extractor handles.
var ErrUnsupported = errors.New("unsupported file type")

// Options controls docstring retention.
type Options struct {
	// Docstring keeps the first line of each docstring.
	Docstring bool
	// FullDocstring keeps whole docstrings and overrides Docstring.
	FullDocstring bool
}

// Extractor produces the outline of one source file.
type Extractor interface {
	Extract(src []byte, opts Options) (string, error)
}

// For returns the extractor for path's extension.
func For(path string) (Extractor, bool) {
	var e Extractor
	switch strings.ToLower(filepath.Ext(path)) {
	case ".py":
		e = newPythonExtractor()
	case ".go":
		e = goExtractor{}
	}
	return e, e != nil
}

// ExtractFile reads path and returns its outline.
func ExtractFile(path string, opts Options) (string, error) {
	e, ok := For(path)
	if !ok {
		return "", fmt.Errorf("%s: %w", path, ErrUnsupported)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return e.Extract(src, opts)
}

// Supported reports whether path has an extractor.
func Supported(path string) bool {
	_, ok := For(path)
	return ok
}

// docText trims a docstring according to opts. ok is false when nothing
// should be kept.
func docText(doc string, opts Options) (string, bool) {
	doc = strings.TrimSpace(doc)
	switch {
	case doc == "":
		return "", false
	case opts.FullDocstring:
		return dedent(doc), true
	case opts.Docstring:
		first, _, _ := strings.Cut(doc, "\n")
		return strings.TrimSpace(first), true
	}
	return "", false
}

// dedent removes the common indentation of every line after the first.
func dedent(s string) string {
	lines := strings.Split(s, "\n")
	if len(lines) == 1 {
		return s
	}
	common := -1
	for _, l := range lines[1:] {
		if strings.TrimSpace(l) == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, " \t"))
		if common < 0 || n < common {
			common = n
		}
	}
	for i := 1; i < len(lines); i++ {
		if len(lines[i]) >= common && common > 0 {
			lines[i] = lines[i][common:]
		} else {
			lines[i] = strings.TrimSpace(lines[i])
		}
	}
	return strings.Join(lines, "\n")
}

func indentLines(s, indent string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = indent + l
		}
	}
	return strings.Join(lines, "\n")
}
