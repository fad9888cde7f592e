package doctor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/kballard/go-shellquote"

	"github.com/raphi011/shakti/internal/config"
	"github.com/raphi011/shakti/internal/ignore"
)

// Env is what the checks inspect.
type Env struct {
	Config  *config.Config
	WorkDir string

	// InRepo reports whether WorkDir is inside a git work tree. Nil skips
	// the check.
	InRepo func(ctx context.Context) bool

	// LookPath resolves programs. Nil means exec.LookPath.
	LookPath func(file string) (string, error)
}

// Run performs every check.
func Run(ctx context.Context, env Env) Report {
	if env.LookPath == nil {
		env.LookPath = exec.LookPath
	}
	if env.Config == nil {
		cfg := config.Default()
		env.Config = &cfg
	}

	var r Report
	r.Checks = append(r.Checks, checkTools(ctx, env)...)
	r.Checks = append(r.Checks, checkFiles(env)...)
	return r
}

func checkTools(ctx context.Context, env Env) []Check {
	cfg := env.Config
	checks := []Check{
		program(env, "git", "git", SeverityError, "install git (https://git-scm.com)"),
	}

	if env.InRepo != nil {
		c := Check{Group: GroupTools, Name: "repository", Detail: env.WorkDir}
		if !env.InRepo(ctx) {
			c.Severity = SeverityWarning
			c.Detail = "not inside a git work tree"
			c.Hint = "git helpers only work inside a repository"
		}
		checks = append(checks, c)
	}

	checks = append(checks,
		program(env, "fzf", "fzf", SeverityWarning, "cmd list-eval falls back to the built-in picker"),
		program(env, "ai command", cfg.Git.AICommand, SeverityWarning, "git message needs git.ai_command on PATH"),
	)
	for _, f := range cfg.Git.Formatters {
		checks = append(checks, program(env, "formatter", f, SeverityWarning,
			"git add will ask to continue after this formatter fails"))
	}
	return checks
}

// program checks that the first word of line resolves on PATH.
func program(env Env, name, line string, missing Severity, hint string) Check {
	c := Check{Group: GroupTools, Name: name}
	words, err := shellquote.Split(line)
	if err != nil || len(words) == 0 {
		c.Severity = SeverityError
		c.Detail = fmt.Sprintf("invalid command %q", line)
		c.Hint = "fix the command in the config file"
		return c
	}

	path, err := env.LookPath(words[0])
	if err != nil {
		c.Severity = missing
		c.Detail = words[0] + " not found"
		c.Hint = hint
		return c
	}
	c.Detail = path
	return c
}

func checkFiles(env Env) []Check {
	cfg := env.Config
	var checks []Check

	conf := Check{Group: GroupFiles, Name: "config", Detail: cfg.Path}
	if cfg.Path == "" {
		conf.Severity = SeverityWarning
		conf.Detail = "no config file, using defaults"
		conf.Hint = "run 'shakti config init' or 'shakti doctor --fix'"
	}
	checks = append(checks, conf)

	list := Check{Group: GroupFiles, Name: "command list"}
	if path, err := cfg.CommandFile(); err != nil {
		list.Severity = SeverityWarning
		list.Detail = "cmd.file_path not set"
		list.Hint = "cmd list and cmd list-eval need a curated command file"
	} else {
		list = fileCheck(list, resolve(env.WorkDir, path), SeverityError)
	}
	checks = append(checks, list)

	timer := Check{Group: GroupFiles, Name: "timer log"}
	checks = append(checks, fileCheck(timer, resolve(env.WorkDir, cfg.Report.TimerFilePath), SeverityWarning))

	ign := Check{Group: GroupFiles, Name: "ignore file"}
	path := resolve(env.WorkDir, cfg.Git.IgnoreFile)
	patterns, err := ignore.LoadFile(path)
	switch {
	case err != nil:
		ign.Severity = SeverityError
		ign.Detail = err.Error()
	case len(patterns) == 0:
		ign.Detail = "no patterns, nothing is excluded"
	default:
		ign.Detail = fmt.Sprintf("%s (%d patterns)", path, len(patterns))
	}
	checks = append(checks, ign)

	return checks
}

func fileCheck(c Check, path string, missing Severity) Check {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		c.Detail = path
	case errors.Is(err, fs.ErrNotExist):
		c.Severity = missing
		c.Detail = path + " not found"
	default:
		c.Severity = SeverityError
		c.Detail = err.Error()
	}
	return c
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
