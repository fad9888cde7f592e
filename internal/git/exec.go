package git

import (
	"context"
	"strings"

	"github.com/raphi011/shakti/internal/cmd"
)

// Client runs git in Dir through Runner. An empty Dir means the current
// working directory.
type Client struct {
	Runner cmd.Runner
	Dir    string
}

// New returns a Client running git in dir.
func New(r cmd.Runner, dir string) *Client {
	return &Client{Runner: r, Dir: dir}
}

// output runs git and returns stdout.
func (c *Client) output(ctx context.Context, args ...string) ([]byte, error) {
	return c.Runner.Output(ctx, c.Dir, "git", args...)
}

// attach runs git connected to the terminal.
func (c *Client) attach(ctx context.Context, args ...string) error {
	return c.Runner.Attach(ctx, c.Dir, "git", args...)
}

// lines splits command output into non-empty lines.
func lines(out []byte) []string {
	var result []string
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimRight(line, "\r"); line != "" {
			result = append(result, line)
		}
	}
	return result
}
