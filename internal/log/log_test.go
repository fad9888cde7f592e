package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestPrintf(t *testing.T) {
	t.Parallel()

	t.Run("writes formatted output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Printf("hello %s %d", "world", 42)
		if got := buf.String(); got != "hello world 42" {
			t.Errorf("Printf output = %q, want %q", got, "hello world 42")
		}
	})

	t.Run("suppressed when quiet", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, true)
		l.Printf("should not appear")
		l.Println("nor this")
		l.Warnf("nor %s", "that")
		if buf.Len() != 0 {
			t.Errorf("wrote %q when quiet", buf.String())
		}
	})
}

func TestWarnf(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf, false, false).Warnf("config %s ignored", "x.yaml")
	got := buf.String()
	if !strings.Contains(got, "warning:") || !strings.Contains(got, "config x.yaml ignored") {
		t.Errorf("Warnf output = %q", got)
	}
}

func TestCommand(t *testing.T) {
	t.Parallel()

	t.Run("verbose with dir", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		done := l.Command("/tmp", "git", "status")
		done(100 * time.Millisecond)
		got := ansi.Strip(buf.String())
		if !strings.Contains(got, "[/tmp] $ git status") {
			t.Errorf("Command output = %q, want to contain %q", got, "[/tmp] $ git status")
		}
		if !strings.Contains(got, "100ms") {
			t.Errorf("Command output = %q, want to contain duration", got)
		}
	})

	t.Run("verbose without dir", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		l.Command("", "echo", "hi")(0)
		got := ansi.Strip(buf.String())
		if !strings.Contains(got, "$ echo hi") || strings.Contains(got, "[") {
			t.Errorf("Command output = %q, want %q without dir", got, "$ echo hi")
		}
	})

	t.Run("not verbose is no-op", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Command("/tmp", "git", "status")(time.Second)
		if buf.Len() != 0 {
			t.Errorf("Command wrote %q when not verbose", buf.String())
		}
	})

	t.Run("quiet overrides verbose", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, true)
		l.Command("/tmp", "git", "status")(time.Second)
		if buf.Len() != 0 {
			t.Errorf("Command wrote %q when quiet", buf.String())
		}
	})
}

func TestDebug(t *testing.T) {
	t.Parallel()

	t.Run("key-val format", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf, true, false).Debug("dispatch", "command", "git", "args", 2, "orphan")
		got := buf.String()
		for _, want := range []string{"dispatch", "command=git", "args=2"} {
			if !strings.Contains(got, want) {
				t.Errorf("Debug output = %q, want to contain %q", got, want)
			}
		}
		if strings.Contains(got, "orphan") {
			t.Errorf("Debug output = %q, should drop unpaired key", got)
		}
	})

	t.Run("silent unless verbose", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf, false, false).Debug("hidden", "k", "v")
		if buf.Len() != 0 {
			t.Errorf("Debug wrote %q when not verbose", buf.String())
		}
	})
}

func TestIsVerbose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    bool
	}{
		{"verbose only", true, false, true},
		{"quiet only", false, true, false},
		{"both", true, true, false},
		{"neither", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := New(io.Discard, tt.verbose, tt.quiet).IsVerbose(); got != tt.want {
				t.Errorf("IsVerbose() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithLogger_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		l := New(io.Discard, true, false)
		if got := FromContext(WithLogger(context.Background(), l)); got != l {
			t.Error("FromContext did not return the stored logger")
		}
	})

	t.Run("fallback discard logger", func(t *testing.T) {
		t.Parallel()
		l := FromContext(context.Background())
		l.Printf("should not appear anywhere")
		if l.Writer() != io.Discard {
			t.Error("fallback logger should write to io.Discard")
		}
	})
}
