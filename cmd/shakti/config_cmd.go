package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/raphi011/shakti/internal/config"
	"github.com/raphi011/shakti/internal/output"
	"github.com/raphi011/shakti/internal/registry"
)

func (a *app) configShow(ctx context.Context, _ registry.Request) error {
	cfg := a.config(ctx)
	text, err := cfg.YAML()
	if err != nil {
		return err
	}

	out := output.FromContext(ctx)
	if cfg.Path != "" {
		out.Printf("# %s\n", cfg.Path)
	} else {
		out.Println("# defaults (no config file found)")
	}
	out.Print(text)
	return nil
}

type configInitOptions struct {
	force  bool
	stdout bool
}

func configInitFlags(o *configInitOptions) *pflag.FlagSet {
	fs := pflag.NewFlagSet("config init", pflag.ContinueOnError)
	fs.BoolVarP(&o.force, "force", "f", false, "Overwrite an existing config file")
	fs.BoolVarP(&o.stdout, "stdout", "s", false, "Print the default config instead of writing it")
	return fs
}

func (a *app) configInit(ctx context.Context, req registry.Request) error {
	var opts configInitOptions
	args := append(append([]string{}, req.Options...), req.Args...)
	rest, help, err := a.parseFlags(ctx, "config init", configInitFlags(&opts), args)
	if help || err != nil {
		return err
	}

	if opts.stdout {
		output.FromContext(ctx).Print(config.DefaultYAML())
		return nil
	}

	var path string
	if len(rest) > 0 {
		path = a.resolve(ctx, rest[0])
	}
	written, err := config.Init(path, opts.force)
	if err != nil {
		return output.NewExitError(output.ExitFailure, fmt.Sprintf("Error: %v", err))
	}
	output.FromContext(ctx).Printf("Created config file: %s\n", written)
	return nil
}

func (a *app) configPath(ctx context.Context, _ registry.Request) error {
	out := output.FromContext(ctx)
	if path := a.config(ctx).Path; path != "" {
		out.Println(path)
		return nil
	}

	out.Println("No config file found. Searched:")
	for _, p := range config.Candidates(config.WorkDirFromContext(ctx)) {
		out.Printf("  %s\n", p)
	}
	return output.Silent(output.ExitFailure)
}
