// Package formatter runs the code formatters configured for "git add".
package formatter

import (
	"context"
	"fmt"

	"github.com/kballard/go-shellquote"

	"github.com/raphi011/shakti/internal/cmd"
	"github.com/raphi011/shakti/internal/log"
	"github.com/raphi011/shakti/internal/output"
)

// Confirm asks whether to continue after a formatter failed.
type Confirm func(prompt string) (bool, error)

// ContinuePrompt is shown when a formatter fails.
const ContinuePrompt = "Formatter failed. Continue with git add anyway?"

// Run executes a single formatter command line in dir, attached to the
// terminal.
func Run(ctx context.Context, r cmd.Runner, dir, line string) error {
	words, err := shellquote.Split(line)
	if err != nil {
		return fmt.Errorf("parse formatter %q: %w", line, err)
	}
	if len(words) == 0 {
		return fmt.Errorf("empty formatter command")
	}
	return r.Attach(ctx, dir, words[0], words[1:]...)
}

// RunAll runs every formatter in order. When one fails, confirm decides
// whether to go on; proceed is false if the user declined. Declining is
// not an error.
func RunAll(ctx context.Context, r cmd.Runner, dir string, lines []string, confirm Confirm) (proceed bool, err error) {
	out := output.FromContext(ctx)
	for _, line := range lines {
		out.Printf("Running formatter: %s...\n", line)
		if err := Run(ctx, r, dir, line); err != nil {
			if ctx.Err() != nil {
				return false, ctx.Err()
			}
			log.FromContext(ctx).Warnf("formatter %q failed: %v", line, err)
			ok, cerr := confirm(ContinuePrompt)
			if cerr != nil {
				return false, fmt.Errorf("confirm: %w", cerr)
			}
			if !ok {
				return false, nil
			}
			continue
		}
		out.Println("Formatting complete.")
	}
	return true, nil
}
