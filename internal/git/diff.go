package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// DiffTool selects between "git diff" and "git difftool".
type DiffTool string

const (
	ToolDiff     DiffTool = "diff"
	ToolDifftool DiffTool = "difftool"
)

// Diff runs "git <gitOpts> <tool> <revs> -- <files>" on the terminal.
// files are relative to the repository root, as ChangedFiles returns them,
// and are passed as ":(top)" pathspecs so the diff works from any
// subdirectory.
func (c *Client) Diff(ctx context.Context, tool DiffTool, gitOpts, revs, files []string) error {
	args := make([]string, 0, len(gitOpts)+len(revs)+len(files)+2)
	args = append(args, gitOpts...)
	args = append(args, string(tool))
	args = append(args, revs...)
	args = append(args, "--")
	for _, f := range files {
		args = append(args, TopPathspec(f))
	}
	return c.attach(ctx, args...)
}

// TopPathspec anchors a repository-relative path at the top of the work
// tree, independent of the directory git runs in.
func TopPathspec(path string) string {
	return ":(top)" + path
}

// StagedDiff returns the diff of the index against HEAD.
func (c *Client) StagedDiff(ctx context.Context) (string, error) {
	out, err := c.output(ctx, "--no-pager", "diff", "--staged")
	if err != nil {
		return "", fmt.Errorf("read staged changes: %w", err)
	}
	return string(out), nil
}

// RecentMessages returns the bodies of the last n commits. A repository
// without commits yields an empty string.
func (c *Client) RecentMessages(ctx context.Context, n int) (string, error) {
	out, err := c.output(ctx, "--no-pager", "log", "-"+strconv.Itoa(n), "--pretty=format:%B")
	if err != nil {
		if strings.Contains(err.Error(), "does not have any commits") {
			return "", nil
		}
		return "", fmt.Errorf("read recent commit messages: %w", err)
	}
	return string(out), nil
}

// Add stages files with "git <gitOpts> add <args>".
func (c *Client) Add(ctx context.Context, gitOpts, args []string) error {
	full := make([]string, 0, len(gitOpts)+len(args)+1)
	full = append(full, gitOpts...)
	full = append(full, "add")
	return c.attach(ctx, append(full, args...)...)
}

// Passthrough runs git with args unchanged.
func (c *Client) Passthrough(ctx context.Context, args []string) error {
	return c.attach(ctx, args...)
}
