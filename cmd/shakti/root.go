package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/shakti/internal/cmd"
	"github.com/raphi011/shakti/internal/config"
	"github.com/raphi011/shakti/internal/dispatch"
	"github.com/raphi011/shakti/internal/log"
	"github.com/raphi011/shakti/internal/output"
)

const programName = "shakti"

// exitInterrupted is the conventional status after SIGINT.
const exitInterrupted = 130

// newRootCmd wraps the dispatcher in a cobra command. Flag parsing is left
// to the dispatcher: global options, command groups and unregistered
// programs all share one argument vector.
func newRootCmd(d *dispatch.Dispatcher) *cobra.Command {
	return &cobra.Command{
		Use:   programName + " [options] <command> [subcommand] [args...]",
		Short: "Personal command-line toolbox",
		Long: `shakti bundles personal git, command-list and reporting helpers behind
one entry point. Commands it does not know are run as external programs.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(c *cobra.Command, args []string) error {
			return d.Run(c.Context(), args)
		},
	}
}

// Execute sets up the process context, runs the dispatcher and exits with
// its status.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stderr)
	cancel()
	os.Exit(code)
}

func execute(ctx context.Context, args []string, stderr io.Writer) int {
	stdout := output.Terminal(os.Stdout)
	diag := output.Terminal(os.Stderr)

	logger := log.New(diag, false, false)
	ctx = log.WithLogger(ctx, logger)
	ctx = output.WithPrinter(ctx, stdout)

	workDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(stderr, "%s: failed to get working directory: %v\n", programName, err)
		return output.ExitFailure
	}
	ctx = config.WithWorkDir(ctx, workDir)

	cfg, err := config.Load(workDir)
	if err != nil {
		logger.Warnf("%v", err)
	}
	ctx = config.WithConfig(ctx, &cfg)

	runner := &cmd.Exec{}
	a := newApp(runner)
	d := &dispatch.Dispatcher{
		Name:     programName,
		Version:  versionString(),
		Registry: a.registry,
		Runner:   runner,
		NewLogger: func(verbose, quiet bool) *log.Logger {
			return log.New(diag, verbose, quiet)
		},
	}

	root := newRootCmd(d)
	root.SetArgs(args)
	root.SetContext(ctx)
	return report(stderr, root.Execute())
}

// report prints err's message, if any, and returns the exit status.
func report(stderr io.Writer, err error) int {
	if err == nil {
		return output.ExitSuccess
	}
	if errors.Is(err, context.Canceled) {
		return exitInterrupted
	}

	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Message != "" {
			fmt.Fprintln(stderr, exitErr.Message)
		}
		return exitErr.Code
	}
	fmt.Fprintf(stderr, "%s: %v\n", programName, err)
	return output.ExitCode(err)
}
