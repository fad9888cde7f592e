package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/raphi011/shakti/internal/config"
	"github.com/raphi011/shakti/internal/doctor"
	"github.com/raphi011/shakti/internal/output"
	"github.com/raphi011/shakti/internal/registry"
)

const doctorHelp = `Check that external tools and files are in place.

Reports whether git, fzf, the AI command and the configured formatters are
on PATH, and whether the config file, command list, timer log and ignore
file exist. With --fix, a missing user config file is created with the
defaults.

Usage: shakti doctor [--fix]

Options:
  --fix  Create the default config file if none exists`

func doctorFlags(fix *bool) *pflag.FlagSet {
	fs := pflag.NewFlagSet("doctor", pflag.ContinueOnError)
	fs.BoolVar(fix, "fix", false, "Create the default config file if none exists")
	return fs
}

func (a *app) doctor(ctx context.Context, req registry.Request) error {
	var fix bool
	if _, help, err := a.parseFlags(ctx, "doctor", doctorFlags(&fix), req.Args); help || err != nil {
		return err
	}

	cfg := a.config(ctx)
	out := output.FromContext(ctx)

	if fix && cfg.Path == "" {
		path, err := config.Init("", false)
		if err != nil {
			return output.NewExitError(output.ExitFailure, fmt.Sprintf("Error: %v", err))
		}
		out.Printf("Created config file: %s\n\n", path)
		fixed := *cfg
		fixed.Path = path
		cfg = &fixed
	}

	report := doctor.Run(ctx, doctor.Env{
		Config:  cfg,
		WorkDir: config.WorkDirFromContext(ctx),
		InRepo:  a.git(ctx).IsInsideRepo,
	})
	doctor.Print(out, report)

	if !report.Healthy() {
		return output.Silent(output.ExitFailure)
	}
	return nil
}
