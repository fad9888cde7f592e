//go:build integration

package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/shakti/internal/cmd"
	"github.com/raphi011/shakti/internal/config"
	"github.com/raphi011/shakti/internal/dispatch"
	"github.com/raphi011/shakti/internal/log"
	"github.com/raphi011/shakti/internal/output"
)

// setupRepo creates a git repository with the given files committed.
func setupRepo(t *testing.T, files map[string]string) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	for _, args := range [][]string{
		{"init"},
		{"config", "user.email", "test@test.com"},
		{"config", "user.name", "Test User"},
		{"config", "commit.gpgsign", "false"},
		{"add", "."},
		{"commit", "-m", "Initial commit"},
	} {
		c := exec.Command("git", args...)
		c.Dir = dir
		if out, err := c.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, out)
		}
	}
	return dir
}

func runReal(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	runner := &cmd.Exec{Stdout: &out}
	a := newApp(runner)
	cfg := config.Default()

	ctx := output.WithPrinter(context.Background(), &out)
	ctx = log.WithLogger(ctx, log.New(&bytes.Buffer{}, false, false))
	ctx = config.WithConfig(ctx, &cfg)
	ctx = config.WithWorkDir(ctx, dir)

	d := &dispatch.Dispatcher{Name: programName, Version: "test", Registry: a.registry, Runner: runner}
	err := d.Run(ctx, args)
	return out.String(), err
}

func TestIntegration_GitTree(t *testing.T) {
	t.Parallel()

	dir := setupRepo(t, map[string]string{
		".gitdiffignore": "vendor/\n",
		"main.go":        "package main\n",
		"pkg/a.go":       "package pkg\n",
		"vendor/x.go":    "package x\n",
	})

	got, err := runReal(t, dir, "git", "tree")
	if err != nil {
		t.Fatal(err)
	}
	want := "- .gitdiffignore\n- main.go\n- pkg\n  - a.go\n"
	if got != want {
		t.Errorf("git tree = %q, want %q", got, want)
	}
}

func TestIntegration_GitDiffFromSubdirectory(t *testing.T) {
	t.Parallel()

	dir := setupRepo(t, map[string]string{
		"sub/x.txt": "before\n",
		"y.txt":     "untouched\n",
	})
	if err := os.WriteFile(filepath.Join(dir, "sub", "x.txt"), []byte("after\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := runReal(t, filepath.Join(dir, "sub"), "git", "--no-pager", "diff")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "+after") || !strings.Contains(got, "sub/x.txt") {
		t.Errorf("git diff from sub = %q, want the change to sub/x.txt", got)
	}
}

func TestIntegration_GitFallback(t *testing.T) {
	t.Parallel()

	dir := setupRepo(t, map[string]string{"README.md": "# test\n"})

	got, err := runReal(t, dir, "git", "ls-files")
	if err != nil {
		t.Fatal(err)
	}
	if got != "README.md\n" {
		t.Errorf("git ls-files = %q", got)
	}
}

func TestIntegration_UnknownCommand(t *testing.T) {
	t.Parallel()

	_, err := runReal(t, t.TempDir(), "shakti-nonexistent-binary")
	if code := output.ExitCode(err); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if want := "shakti: command not found: shakti-nonexistent-binary"; err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}
