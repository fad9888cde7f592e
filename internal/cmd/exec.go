package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/raphi011/shakti/internal/log"
)

// Runner executes external commands. An empty dir runs in the current
// working directory.
type Runner interface {
	// Output runs a command and returns its stdout.
	Output(ctx context.Context, dir, name string, args ...string) ([]byte, error)

	// Pipe feeds stdin to a command and returns its stdout. The child's
	// stderr stays attached to the terminal, so programs like fzf can
	// draw their UI.
	Pipe(ctx context.Context, stdin, name string, args ...string) ([]byte, error)

	// Attach runs a command with the terminal's stdin, stdout and stderr.
	Attach(ctx context.Context, dir, name string, args ...string) error
}

// Error describes a failed external command.
type Error struct {
	Name   string
	Args   []string
	Code   int    // exit status, 1 when the process did not exit normally
	Stderr string // trimmed stderr, when it was captured
	Err    error
}

func (e *Error) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit status carried by err: 0 for nil, the child's
// status for a failed command and 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var cmdErr *Error
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}

// IsNotFound reports whether err means the program could not be found.
func IsNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}

// Exec runs commands as real child processes. Zero values of Stdin,
// Stdout and Stderr mean the process's own streams.
type Exec struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Output implements Runner.
func (e Exec) Output(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	return OutputContext(ctx, dir, name, args...)
}

// Pipe implements Runner.
func (e Exec) Pipe(ctx context.Context, stdin, name string, args ...string) ([]byte, error) {
	c := exec.CommandContext(ctx, name, args...)
	c.Stdin = strings.NewReader(stdin)
	c.Stderr = e.stderr()
	var stdout bytes.Buffer
	c.Stdout = &stdout

	if err := run(ctx, c, nil); err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}

// Attach implements Runner.
func (e Exec) Attach(ctx context.Context, dir, name string, args ...string) error {
	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	c.Stdin = e.stdin()
	c.Stdout = e.stdout()
	c.Stderr = e.stderr()
	return run(ctx, c, nil)
}

func (e Exec) stdin() io.Reader {
	if e.Stdin != nil {
		return e.Stdin
	}
	return os.Stdin
}

func (e Exec) stdout() io.Writer {
	if e.Stdout != nil {
		return e.Stdout
	}
	return os.Stdout
}

func (e Exec) stderr() io.Writer {
	if e.Stderr != nil {
		return e.Stderr
	}
	return os.Stderr
}

// OutputContext executes a command and returns its stdout. On failure the
// error carries the trimmed stderr.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	if err := run(ctx, c, &stderr); err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}

func run(ctx context.Context, c *exec.Cmd, stderr *bytes.Buffer) error {
	args := c.Args[1:]
	done := log.FromContext(ctx).Command(c.Dir, c.Args[0], args...)
	start := time.Now()
	err := c.Run()
	done(time.Since(start))

	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	cmdErr := &Error{Name: c.Args[0], Args: args, Code: 1, Err: err}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		cmdErr.Code = exitErr.ExitCode()
	}
	if stderr != nil {
		cmdErr.Stderr = strings.TrimSpace(stderr.String())
	}
	return cmdErr
}
