package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/pflag"

	"github.com/raphi011/shakti/internal/output"
	"github.com/raphi011/shakti/internal/registry"
	"github.com/raphi011/shakti/internal/timer"
)

func reportTimerFlags(weeks *int) *pflag.FlagSet {
	fs := pflag.NewFlagSet("report timer", pflag.ContinueOnError)
	fs.IntVarP(weeks, "weeks", "w", timer.DefaultWeeks, "Number of weeks shown in the heatmap")
	return fs
}

func (a *app) reportTimer(ctx context.Context, req registry.Request) error {
	var weeks int
	args := append(append([]string{}, req.Options...), req.Args...)
	rest, help, err := a.parseFlags(ctx, "report timer", reportTimerFlags(&weeks), args)
	if help || err != nil {
		return err
	}
	if weeks < 1 {
		return output.NewExitError(output.ExitFailure, "Error: --weeks must be at least 1")
	}

	path := a.config(ctx).Report.TimerFilePath
	if len(rest) > 0 {
		path = rest[0]
	}
	path = a.resolve(ctx, path)

	entries, err := timer.ParseFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return output.NewExitError(output.ExitFailure, fmt.Sprintf("Error: %s not found.", path))
	case errors.Is(err, timer.ErrNoEntries):
		return output.NewExitError(output.ExitFailure, fmt.Sprintf("Error: no timer entries in %s.", path))
	case err != nil:
		return output.NewExitError(output.ExitFailure, fmt.Sprintf("Error: %v", err))
	}

	end, _ := entries.Last()
	out := output.FromContext(ctx)
	out.Print(timer.Heatmap(entries, end, weeks))
	out.Println()
	out.Print(timer.Summary(entries))
	return nil
}
