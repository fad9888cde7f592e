package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphi011/shakti/internal/cmd"
	"github.com/raphi011/shakti/internal/log"
	"github.com/raphi011/shakti/internal/output"
	"github.com/raphi011/shakti/internal/registry"
)

type state int

const (
	parsingGlobalOptions state = iota
	resolvingCommand
	executing
)

// Globals holds the global options seen before the command name.
type Globals struct {
	Version bool
	Help    bool
	HelpID  string
	SList   bool
	Verbose bool
	Quiet   bool
	Unknown []string
	Raw     []string
}

// Dispatcher resolves argv against a registry.
type Dispatcher struct {
	Name     string // program name used in messages
	Version  string
	Registry *registry.Registry
	Runner   cmd.Runner // runs unregistered commands

	// NewLogger builds the logger once -v/-q are known. Optional.
	NewLogger func(verbose, quiet bool) *log.Logger
}

// Run dispatches argv (without the program name). The returned error
// carries the exit code, see output.ExitCode.
func (d *Dispatcher) Run(ctx context.Context, argv []string) error {
	var (
		g    Globals
		name string
		rest []string
	)

	st := parsingGlobalOptions
	args := argv
	for {
		switch st {
		case parsingGlobalOptions:
			var done bool
			g, args, done = parseGlobals(args)
			if d.NewLogger != nil {
				ctx = log.WithLogger(ctx, d.NewLogger(g.Verbose, g.Quiet))
			}
			for _, opt := range g.Unknown {
				log.FromContext(ctx).Warnf("ignoring unknown option %s", opt)
			}
			if done {
				return d.handleGlobals(ctx, g, args)
			}
			st = resolvingCommand

		case resolvingCommand:
			if len(args) == 0 {
				d.usage(ctx)
				return output.Silent(output.ExitFailure)
			}
			name, rest = args[0], args[1:]
			st = executing

		case executing:
			log.FromContext(ctx).Debug("dispatch", "command", name, "args", len(rest))
			return d.execute(ctx, g, name, rest)
		}
	}
}

// parseGlobals consumes leading options. done is set when an option
// (--version, --help, --slist) finishes dispatch by itself.
func parseGlobals(args []string) (g Globals, rest []string, done bool) {
	for len(args) > 0 && strings.HasPrefix(args[0], "-") {
		opt := args[0]
		args = args[1:]
		if opt == "--" {
			break
		}
		g.Raw = append(g.Raw, opt)

		switch opt {
		case "--version":
			g.Version = true
			return g, args, true
		case "--help", "-h":
			g.Help = true
			g.HelpID = registry.Normalize(strings.Join(args, " "))
			return g, nil, true
		case "--slist":
			g.SList = true
		case "-v", "--verbose":
			g.Verbose = true
		case "-q", "--quiet":
			g.Quiet = true
		default:
			g.Unknown = append(g.Unknown, opt)
		}
	}
	if g.SList {
		return g, args, true
	}
	return g, args, false
}

func (d *Dispatcher) handleGlobals(ctx context.Context, g Globals, args []string) error {
	out := output.FromContext(ctx)
	switch {
	case g.Version:
		out.Printf("%s %s\n", d.Name, d.Version)
		return nil
	case g.Help:
		if g.HelpID == "" {
			d.usage(ctx)
			return nil
		}
		return ShowHelp(ctx, d.Registry, g.HelpID)
	default:
		prefix := ""
		if len(args) > 0 {
			prefix = args[0]
		}
		return d.slist(ctx, prefix)
	}
}

func (d *Dispatcher) execute(ctx context.Context, g Globals, name string, args []string) error {
	if c, ok := d.Registry.Lookup(name); ok && c.Handler != nil {
		return c.Handler(ctx, registry.Request{Options: g.Raw, Args: args})
	}

	err := d.Runner.Attach(ctx, "", name, args...)
	switch {
	case err == nil:
		return nil
	case cmd.IsNotFound(err):
		return output.NewExitError(output.ExitFailure, fmt.Sprintf("%s: command not found: %s", d.Name, name))
	case ctx.Err() != nil:
		return ctx.Err()
	default:
		return output.Propagate(err, name)
	}
}

// ShowHelp prints the help text stored for id, unchanged.
func ShowHelp(ctx context.Context, r *registry.Registry, id string) error {
	text, ok := r.Help(id)
	if !ok {
		return output.NewExitError(output.ExitFailure, fmt.Sprintf("No help found for '%s'.", id))
	}
	output.FromContext(ctx).Println(text)
	return nil
}
