package git

import (
	"context"
	"fmt"
	"slices"
)

// ChangedFiles returns the paths "git diff --name-only <args>" reports.
func (c *Client) ChangedFiles(ctx context.Context, args []string) ([]string, error) {
	out, err := c.output(ctx, append([]string{"diff", "--name-only"}, args...)...)
	if err != nil {
		return nil, err
	}
	return lines(out), nil
}

// TrackedFiles returns every file in HEAD.
func (c *Client) TrackedFiles(ctx context.Context) ([]string, error) {
	out, err := c.output(ctx, "ls-tree", "-r", "--name-only", "HEAD")
	if err != nil {
		return nil, fmt.Errorf("list files in HEAD: %w", err)
	}
	return lines(out), nil
}

// ListFiles returns the files in the index, including staged new files.
func (c *Client) ListFiles(ctx context.Context) ([]string, error) {
	out, err := c.output(ctx, "ls-files")
	if err != nil {
		return nil, fmt.Errorf("list tracked files: %w", err)
	}
	return lines(out), nil
}

// SplitPathspec splits args at the first "--" into revisions/options and
// paths. Without a separator all args are revisions.
func SplitPathspec(args []string) (revs, paths []string) {
	i := slices.Index(args, "--")
	if i < 0 {
		return args, nil
	}
	return args[:i], args[i+1:]
}
