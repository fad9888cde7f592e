package doctor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/shakti/internal/config"
	"github.com/raphi011/shakti/internal/output"
)

func lookPath(found ...string) func(string) (string, error) {
	return func(file string) (string, error) {
		for _, f := range found {
			if f == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", errors.New("not found")
	}
}

func find(t *testing.T, r Report, name string) Check {
	t.Helper()
	for _, c := range r.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no check named %q in %+v", name, r.Checks)
	return Check{}
}

func TestRun_AllPresent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for name, content := range map[string]string{
		"commands.txt":   "ls | files\n",
		".timer":         "[2024-01-01 09:00:00] = [01:00:00]\n",
		".gitdiffignore": "build/\n*.pyc\n",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := config.Default()
	cfg.Path = filepath.Join(dir, "config.shakti.yaml")
	cfg.Cmd.FilePath = "commands.txt"

	r := Run(context.Background(), Env{
		Config:   &cfg,
		WorkDir:  dir,
		InRepo:   func(context.Context) bool { return true },
		LookPath: lookPath("git", "fzf", "aichat", "poetry"),
	})

	if got := r.Count(SeverityOK); got != len(r.Checks) {
		t.Errorf("OK checks = %d of %d: %+v", got, len(r.Checks), r.Checks)
	}
	if c := find(t, r, "ignore file"); !strings.Contains(c.Detail, "2 patterns") {
		t.Errorf("ignore file detail = %q", c.Detail)
	}

	var buf bytes.Buffer
	Print(output.New(&buf), r)
	if !strings.Contains(buf.String(), "No issues found") {
		t.Errorf("Print() = %q", buf.String())
	}
}

func TestRun_Problems(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := config.Default()
	cfg.Cmd.FilePath = "missing.txt"
	cfg.Git.Formatters = []string{"black .", `"unterminated`}

	r := Run(context.Background(), Env{
		Config:   &cfg,
		WorkDir:  dir,
		InRepo:   func(context.Context) bool { return false },
		LookPath: lookPath(),
	})

	tests := map[string]Severity{
		"git":          SeverityError,
		"repository":   SeverityWarning,
		"fzf":          SeverityWarning,
		"ai command":   SeverityWarning,
		"config":       SeverityWarning,
		"command list": SeverityError,
		"timer log":    SeverityWarning,
		"ignore file":  SeverityOK,
	}
	for name, want := range tests {
		if got := find(t, r, name).Severity; got != want {
			t.Errorf("%s severity = %d, want %d", name, got, want)
		}
	}

	var formatters []Check
	for _, c := range r.Checks {
		if c.Name == "formatter" {
			formatters = append(formatters, c)
		}
	}
	if len(formatters) != 2 || formatters[0].Severity != SeverityWarning || formatters[1].Severity != SeverityError {
		t.Errorf("formatter checks = %+v", formatters)
	}

	if r.Healthy() {
		t.Error("Healthy() = true with errors")
	}

	var buf bytes.Buffer
	Print(output.New(&buf), r)
	if !strings.Contains(buf.String(), "Found 3 errors and 6 warnings.") {
		t.Errorf("Print() = %q", buf.String())
	}
}

func TestRun_NilConfigUsesDefaults(t *testing.T) {
	t.Parallel()

	r := Run(context.Background(), Env{WorkDir: t.TempDir(), LookPath: lookPath("git")})
	if c := find(t, r, "command list"); c.Severity != SeverityWarning {
		t.Errorf("command list = %+v, want warning for unset path", c)
	}
}
