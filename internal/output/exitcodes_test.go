package output

import (
	"errors"
	"fmt"
	"testing"

	"github.com/raphi011/shakti/internal/cmd"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain", errors.New("boom"), ExitFailure},
		{"exit error", NewExitError(3, "x"), 3},
		{"wrapped exit error", fmt.Errorf("outer: %w", Silent(0)), 0},
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

func TestPropagate(t *testing.T) {
	t.Parallel()

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()
		if err := Propagate(nil, "git diff"); err != nil {
			t.Errorf("Propagate(nil) = %v", err)
		}
	})

	t.Run("carries child exit code", func(t *testing.T) {
		t.Parallel()
		child := &cmd.Error{Name: "git", Code: 128, Err: errors.New("exit status 128")}
		err := Propagate(child, "git diff")

		if got := ExitCode(err); got != 128 {
			t.Errorf("ExitCode() = %d, want 128", got)
		}
		if got := err.Error(); got != "Error executing git diff: exit status 128" {
			t.Errorf("Error() = %q", got)
		}
		if !errors.Is(err, child) {
			t.Error("Propagate should wrap the child error")
		}
	})

	t.Run("existing exit error untouched", func(t *testing.T) {
		t.Parallel()
		orig := NewExitError(5, "already reported")
		if err := Propagate(orig, "x"); err != orig {
			t.Errorf("Propagate() = %v, want original", err)
		}
	})
}
