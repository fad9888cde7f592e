package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphi011/shakti/internal/output"
	"github.com/raphi011/shakti/internal/registry"
)

// Fallback handles a subcommand that is not registered in a group. opts are
// the options collected before it; original is the group's full argument
// list as the user typed it.
type Fallback func(ctx context.Context, sub string, opts, args, original []string) error

// UnknownSubcommand is the default Fallback.
func UnknownSubcommand(_ context.Context, sub string, _, _, _ []string) error {
	return output.NewExitError(output.ExitFailure, fmt.Sprintf("Error: Unknown subcommand '%s'", sub))
}

// Group returns a handler that resolves "<name> <sub>" in r.
//
// Leading options are collected and passed to the subcommand as
// Request.Options. "--help [sub]" prints help, "--slist" lists the group.
// Without arguments the group's help is printed. fallback runs for
// unregistered subcommands; nil means UnknownSubcommand.
func Group(r *registry.Registry, name string, fallback Fallback) registry.Handler {
	if fallback == nil {
		fallback = UnknownSubcommand
	}
	name = registry.Normalize(name)

	return func(ctx context.Context, req registry.Request) error {
		original := req.Args
		if len(original) == 0 {
			return ShowHelp(ctx, r, name)
		}

		var opts []string
		args := original
		for len(args) > 0 && strings.HasPrefix(args[0], "-") {
			opt := args[0]
			args = args[1:]
			switch opt {
			case "--help", "-h":
				id := strings.TrimSpace(name + " " + strings.Join(args, " "))
				return ShowHelp(ctx, r, id)
			case "--slist":
				return listGroup(ctx, r, name, name)
			}
			opts = append(opts, opt)
		}

		if len(args) == 0 {
			return output.NewExitError(output.ExitFailure, "Error: Please specify a subcommand.")
		}

		sub, rest := args[0], args[1:]
		if c, ok := r.Lookup(name + " " + sub); ok && c.Handler != nil {
			return c.Handler(ctx, registry.Request{Options: opts, Args: rest})
		}
		return fallback(ctx, sub, opts, rest, original)
	}
}
