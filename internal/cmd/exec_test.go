package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/raphi011/shakti/internal/log"
)

func logCtx() context.Context {
	l := log.New(&bytes.Buffer{}, false, false)
	return log.WithLogger(context.Background(), l)
}

func TestOutputContext_ExitCode(t *testing.T) {
	t.Parallel()
	_, err := OutputContext(logCtx(), "", "sh", "-c", "echo 'bad thing' >&2; exit 3")
	if err == nil {
		t.Fatal("OutputContext = nil, want error")
	}
	if err.Error() != "bad thing" {
		t.Errorf("OutputContext error = %q, want %q", err.Error(), "bad thing")
	}
	if code := ExitCode(err); code != 3 {
		t.Errorf("ExitCode() = %d, want 3", code)
	}
}

func TestAttach_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(logCtx())
	cancel()
	var out bytes.Buffer
	err := Exec{Stdout: &out, Stderr: &out}.Attach(ctx, "", "sleep", "10")
	if err != context.Canceled {
		t.Errorf("Attach error = %v, want context.Canceled", err)
	}
}

func TestOutputContext_Dir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	out, err := OutputContext(logCtx(), dir, "pwd")
	if err != nil {
		t.Fatalf("OutputContext(pwd) = %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(string(out)), strings.TrimPrefix(dir, "/private")) {
		t.Errorf("pwd = %q, want %q", out, dir)
	}
}

func TestOutputContext_Success(t *testing.T) {
	t.Parallel()
	out, err := OutputContext(logCtx(), "", "echo", "hello")
	if err != nil {
		t.Fatalf("OutputContext(echo hello) = %v, want nil", err)
	}
	if got := string(out); got != "hello\n" {
		t.Errorf("OutputContext output = %q, want %q", got, "hello\n")
	}
}

func TestOutputContext_StderrMessage(t *testing.T) {
	t.Parallel()
	_, err := OutputContext(logCtx(), "", "sh", "-c", "echo 'error msg' >&2; exit 1")
	if err == nil {
		t.Fatal("OutputContext = nil, want error")
	}
	if err.Error() != "error msg" {
		t.Errorf("OutputContext error = %q, want %q", err.Error(), "error msg")
	}
}

func TestOutputContext_NotFound(t *testing.T) {
	t.Parallel()
	_, err := OutputContext(logCtx(), "", "shakti-no-such-binary-xyz")
	if !IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false, want true", err)
	}
	if code := ExitCode(err); code != 1 {
		t.Errorf("ExitCode() = %d, want 1", code)
	}
}

func TestExec_Pipe(t *testing.T) {
	t.Parallel()
	out, err := Exec{}.Pipe(logCtx(), "b\na\n", "sort")
	if err != nil {
		t.Fatalf("Pipe(sort) = %v", err)
	}
	if got := string(out); got != "a\nb\n" {
		t.Errorf("Pipe(sort) = %q, want %q", got, "a\nb\n")
	}
}

func TestExec_Attach(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	e := Exec{Stdin: strings.NewReader("in"), Stdout: &stdout, Stderr: &stderr}

	err := e.Attach(logCtx(), "", "sh", "-c", "cat; echo err >&2; exit 4")
	if got := ExitCode(err); got != 4 {
		t.Errorf("ExitCode() = %d, want 4", got)
	}
	if stdout.String() != "in" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "in")
	}
	if strings.TrimSpace(stderr.String()) != "err" {
		t.Errorf("stderr = %q, want %q", stderr.String(), "err")
	}
	var cmdErr *Error
	if !errors.As(err, &cmdErr) || cmdErr.Name != "sh" {
		t.Errorf("error = %#v, want *Error for sh", err)
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain error", errors.New("boom"), 1},
		{"command error", &Error{Code: 7, Err: errors.New("exit status 7")}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestVerboseLogsCommand(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&buf, true, false))
	if _, err := OutputContext(ctx, "", "echo", "traced"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "$ echo traced") {
		t.Errorf("log = %q, want command echo", buf.String())
	}
}
