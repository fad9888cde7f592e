// Package cmdtest provides a scripted [cmd.Runner] for tests.
package cmdtest

import (
	"context"
	"fmt"
	"strings"
)

// Response is the scripted result of a command.
type Response struct {
	Output []byte
	Err    error
}

// Call records one command executed through the fake.
type Call struct {
	Mode  string // "output", "pipe" or "attach"
	Dir   string
	Line  string // "name arg1 arg2"
	Stdin string
}

// Fake returns pre-configured responses keyed by "name arg1 arg2 ...".
// An exact key wins; otherwise the longest registered prefix is used.
// Unmatched commands succeed with no output unless Strict is set.
type Fake struct {
	Responses map[string]Response
	Calls     []Call
	Strict    bool
}

// New returns an empty Fake.
func New() *Fake {
	return &Fake{Responses: make(map[string]Response)}
}

// Register scripts the response for key.
func (f *Fake) Register(key, output string, err error) {
	f.Responses[key] = Response{Output: []byte(output), Err: err}
}

// Output implements cmd.Runner.
func (f *Fake) Output(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	return f.record(Call{Mode: "output", Dir: dir, Line: join(name, args)})
}

// Pipe implements cmd.Runner.
func (f *Fake) Pipe(_ context.Context, stdin, name string, args ...string) ([]byte, error) {
	return f.record(Call{Mode: "pipe", Line: join(name, args), Stdin: stdin})
}

// Attach implements cmd.Runner.
func (f *Fake) Attach(_ context.Context, dir, name string, args ...string) error {
	_, err := f.record(Call{Mode: "attach", Dir: dir, Line: join(name, args)})
	return err
}

// Lines returns the command lines executed so far, in order.
func (f *Fake) Lines() []string {
	lines := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		lines[i] = c.Line
	}
	return lines
}

// Called reports whether a command starting with prefix was executed.
func (f *Fake) Called(prefix string) bool {
	for _, c := range f.Calls {
		if strings.HasPrefix(c.Line, prefix) {
			return true
		}
	}
	return false
}

func (f *Fake) record(c Call) ([]byte, error) {
	f.Calls = append(f.Calls, c)

	if resp, ok := f.Responses[c.Line]; ok {
		return resp.Output, resp.Err
	}
	best := ""
	for key := range f.Responses {
		if strings.HasPrefix(c.Line, key) && len(key) > len(best) {
			best = key
		}
	}
	if best != "" {
		resp := f.Responses[best]
		return resp.Output, resp.Err
	}
	if f.Strict {
		return nil, fmt.Errorf("cmdtest: no response registered for %q", c.Line)
	}
	return nil, nil
}

func join(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
