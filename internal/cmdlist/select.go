package cmdlist

import (
	"context"
	"errors"
	"strings"

	"github.com/raphi011/shakti/internal/cmd"
)

// ErrNoSelection is returned when the picker was dismissed.
var ErrNoSelection = errors.New("no command selected")

// ErrNoPicker is returned when fzf is not installed.
var ErrNoPicker = errors.New("fzf not found")

// SelectFzf pipes entries through fzf and returns the chosen command.
func SelectFzf(ctx context.Context, r cmd.Runner, entries []Entry) (string, error) {
	out, err := r.Pipe(ctx, strings.Join(Lines(entries), "\n"), "fzf")
	switch {
	case cmd.IsNotFound(err):
		return "", ErrNoPicker
	case err != nil:
		// fzf exits 1 without a match and 130 when dismissed.
		if code := cmd.ExitCode(err); code == 1 || code == 130 {
			return "", ErrNoSelection
		}
		return "", err
	}

	selected := CommandOf(strings.TrimSpace(string(out)))
	if selected == "" {
		return "", ErrNoSelection
	}
	return selected, nil
}
