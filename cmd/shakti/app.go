package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/pflag"

	"github.com/raphi011/shakti/internal/cmd"
	"github.com/raphi011/shakti/internal/config"
	"github.com/raphi011/shakti/internal/dispatch"
	"github.com/raphi011/shakti/internal/git"
	"github.com/raphi011/shakti/internal/history"
	"github.com/raphi011/shakti/internal/ignore"
	"github.com/raphi011/shakti/internal/output"
	"github.com/raphi011/shakti/internal/registry"
	"github.com/raphi011/shakti/internal/ui/prompt"
)

// app carries the dependencies shared by the command handlers. The
// interactive pieces are fields so tests can replace them.
type app struct {
	runner   cmd.Runner
	registry *registry.Registry

	confirm     func(question string) (bool, error)
	selectLine  func(title string, options []string) (prompt.SelectResult, error)
	edit        func(title, initial string) (prompt.TextInputResult, error)
	copy        func(text string) error
	historyPath func() (string, error)
	checkGit    func() error
}

func newApp(runner cmd.Runner) *app {
	a := &app{
		runner: runner,
		confirm: func(p string) (bool, error) {
			res, err := prompt.Confirm(p)
			return res.Confirmed, err
		},
		selectLine:  prompt.Select,
		edit:        prompt.TextInput,
		copy:        clipboard.WriteAll,
		historyPath: history.DefaultPath,
		checkGit:    git.CheckGit,
	}
	a.registry = buildRegistry(a)
	return a
}

func (a *app) config(ctx context.Context) *config.Config {
	if cfg := config.FromContext(ctx); cfg != nil {
		return cfg
	}
	cfg := config.Default()
	return &cfg
}

func (a *app) git(ctx context.Context) *git.Client {
	return git.New(a.runner, config.WorkDirFromContext(ctx))
}

// resolve makes path relative to the working directory.
func (a *app) resolve(ctx context.Context, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(config.WorkDirFromContext(ctx), path)
}

func (a *app) ignorePatterns(ctx context.Context) (ignore.Patterns, error) {
	patterns, err := ignore.LoadFile(a.resolve(ctx, a.config(ctx).Git.IgnoreFile))
	if err != nil {
		return nil, output.NewExitError(output.ExitFailure, fmt.Sprintf("Error: %v", err))
	}
	return patterns, nil
}

// requireGit fails before h runs when git is not installed.
func (a *app) requireGit(h registry.Handler) registry.Handler {
	return func(ctx context.Context, req registry.Request) error {
		if err := a.checkGit(); err != nil {
			return output.NewExitError(output.ExitFailure, fmt.Sprintf("Error: %v", err))
		}
		return h(ctx, req)
	}
}

// parseFlags parses args with fs. "-h"/"--help" print the help of id.
// help is set when the caller should return without running.
func (a *app) parseFlags(ctx context.Context, id string, fs *pflag.FlagSet, args []string) (rest []string, help bool, err error) {
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, dispatch.ShowHelp(ctx, a.registry, id)
		}
		return nil, false, output.NewExitError(output.ExitFailure,
			fmt.Sprintf("Error: %v\nRun '%s --help %s' for usage.", err, programName, id))
	}
	return fs.Args(), false, nil
}
