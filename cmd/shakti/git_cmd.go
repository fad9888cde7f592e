package main

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"github.com/raphi011/shakti/internal/cmd"
	"github.com/raphi011/shakti/internal/commitmsg"
	"github.com/raphi011/shakti/internal/config"
	"github.com/raphi011/shakti/internal/formatter"
	"github.com/raphi011/shakti/internal/git"
	"github.com/raphi011/shakti/internal/log"
	"github.com/raphi011/shakti/internal/output"
	"github.com/raphi011/shakti/internal/registry"
	"github.com/raphi011/shakti/internal/signature"
	"github.com/raphi011/shakti/internal/tree"
	"github.com/raphi011/shakti/internal/ui/progress"
)

// gitFallback runs unregistered git subcommands with the arguments exactly
// as they were typed after "git".
func (a *app) gitFallback(ctx context.Context, sub string, _, _, original []string) error {
	err := a.git(ctx).Passthrough(ctx, original)
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return output.Propagate(err, "git "+sub)
}

type gitAddOptions struct {
	noFormat bool
}

func gitAddFlags(o *gitAddOptions) *pflag.FlagSet {
	fs := pflag.NewFlagSet("git add", pflag.ContinueOnError)
	fs.BoolVar(&o.noFormat, "no-format", false, "Skip the configured formatters")
	return fs
}

// stripNoFormat removes --no-format from the arguments before a "--"
// separator. Everything after "--" is a pathspec and passes through.
func stripNoFormat(args []string, o *gitAddOptions) []string {
	kept := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(kept, args[i:]...)
		}
		if arg == "--no-format" {
			o.noFormat = true
			continue
		}
		kept = append(kept, arg)
	}
	return kept
}

// gitAdd only interprets its own flag; everything else belongs to git add.
func (a *app) gitAdd(ctx context.Context, req registry.Request) error {
	var opts gitAddOptions
	args := stripNoFormat(req.Args, &opts)

	out := output.FromContext(ctx)
	cfg := a.config(ctx)

	if !opts.noFormat && len(cfg.Git.Formatters) > 0 {
		proceed, err := formatter.RunAll(ctx, a.runner, config.WorkDirFromContext(ctx), cfg.Git.Formatters, a.confirm)
		if err != nil {
			return err
		}
		if !proceed {
			out.Println("Aborted, nothing was staged.")
			return nil
		}
	}

	out.Printf("Adding files to staging area with arguments: %s\n", strings.Join(args, " "))
	if err := a.git(ctx).Add(ctx, req.Options, args); err != nil {
		return output.Propagate(err, "git add")
	}
	out.Println("Files added to staging area.")
	return nil
}

func (a *app) gitDiff(ctx context.Context, req registry.Request) error {
	return a.diff(ctx, git.ToolDiff, req)
}

func (a *app) gitDifftool(ctx context.Context, req registry.Request) error {
	return a.diff(ctx, git.ToolDifftool, req)
}

func (a *app) diff(ctx context.Context, tool git.DiffTool, req registry.Request) error {
	client := a.git(ctx)
	what := "git " + string(tool)

	changed, err := client.ChangedFiles(ctx, req.Args)
	if err != nil {
		return output.Propagate(err, what)
	}
	patterns, err := a.ignorePatterns(ctx)
	if err != nil {
		return err
	}

	files := patterns.Filter(changed)
	log.FromContext(ctx).Debug("filtered changes", "changed", len(changed), "kept", len(files))
	if len(files) == 0 {
		output.FromContext(ctx).Println("No changes to display after applying .gitdiffignore")
		return nil
	}

	revs, _ := git.SplitPathspec(req.Args)
	if err := client.Diff(ctx, tool, req.Options, revs, files); err != nil {
		return output.Propagate(err, what)
	}
	return nil
}

func gitMessageFlags(copyCmd *bool) *pflag.FlagSet {
	fs := pflag.NewFlagSet("git message", pflag.ContinueOnError)
	fs.BoolVarP(copyCmd, "copy", "c", false, "Copy the commit command to the clipboard")
	return fs
}

func (a *app) gitMessage(ctx context.Context, req registry.Request) error {
	var copyCmd bool
	if _, help, err := a.parseFlags(ctx, "git message", gitMessageFlags(&copyCmd), req.Args); help || err != nil {
		return err
	}

	client := a.git(ctx)
	recent, err := client.RecentMessages(ctx, commitmsg.ExampleCount)
	if err != nil {
		return output.Propagate(err, "git log")
	}
	diff, err := client.StagedDiff(ctx)
	if err != nil {
		return output.Propagate(err, "git diff --staged")
	}

	text, err := commitmsg.BuildPrompt(recent, diff)
	if err != nil {
		return output.NewExitError(output.ExitFailure, fmt.Sprintf("Error: %v", err))
	}

	aiCommand := a.config(ctx).Git.AICommand
	spin := progress.Start("Generating commit message with " + aiCommand)
	msg, err := commitmsg.Generate(ctx, a.runner, aiCommand, text)
	spin.Stop()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &output.ExitError{
			Code:    cmd.ExitCode(err),
			Message: fmt.Sprintf("Error generating AI commit message: %v", err),
			Cause:   err,
		}
	}

	commit := commitmsg.CommitCommand(msg)
	out := output.FromContext(ctx)
	out.Println("AI Commit Message:")
	out.Println()
	out.Println(msg)
	out.Println()
	out.Println("Commit command:")
	out.Println()
	out.Println(commit)

	if copyCmd {
		if err := a.copy(commit); err != nil {
			log.FromContext(ctx).Warnf("could not copy to clipboard: %v", err)
		} else {
			log.FromContext(ctx).Printf("Commit command copied to clipboard.\n")
		}
	}
	return nil
}

type gitTreeOptions struct {
	complete   bool
	noMarkdown bool
}

func gitTreeFlags(o *gitTreeOptions) *pflag.FlagSet {
	fs := pflag.NewFlagSet("git tree", pflag.ContinueOnError)
	fs.BoolVar(&o.complete, "complete", false, "Include all files, ignoring .gitdiffignore")
	fs.BoolVar(&o.noMarkdown, "no-markdown", false, "Use ASCII characters instead of Markdown format")
	return fs
}

func (a *app) gitTree(ctx context.Context, req registry.Request) error {
	var opts gitTreeOptions
	if _, help, err := a.parseFlags(ctx, "git tree", gitTreeFlags(&opts), req.Args); help || err != nil {
		return err
	}

	files, err := a.git(ctx).TrackedFiles(ctx)
	if err != nil {
		return output.Propagate(err, "git ls-tree")
	}
	if !opts.complete {
		patterns, err := a.ignorePatterns(ctx)
		if err != nil {
			return err
		}
		files = patterns.Filter(files)
	}

	style := tree.Markdown
	if opts.noMarkdown {
		style = tree.ASCII
	}
	return tree.Render(output.FromContext(ctx).Writer(), tree.Build(files), style)
}

type gitSignatureOptions struct {
	docstring     bool
	fullDocstring bool
}

func gitSignatureFlags(o *gitSignatureOptions) *pflag.FlagSet {
	fs := pflag.NewFlagSet("git signature", pflag.ContinueOnError)
	fs.BoolVar(&o.docstring, "retain-docstring", false, "Keep the first line of docstrings")
	fs.BoolVar(&o.fullDocstring, "retain-full-docstring", false, "Keep complete docstrings")
	return fs
}

func (a *app) gitSignature(ctx context.Context, req registry.Request) error {
	var opts gitSignatureOptions
	files, help, err := a.parseFlags(ctx, "git signature", gitSignatureFlags(&opts), req.Args)
	if help || err != nil {
		return err
	}

	if len(files) == 0 {
		tracked, err := a.git(ctx).ListFiles(ctx)
		if err != nil {
			return output.Propagate(err, "git ls-files")
		}
		patterns, err := a.ignorePatterns(ctx)
		if err != nil {
			return err
		}
		files = slices.DeleteFunc(patterns.Filter(tracked), func(f string) bool {
			return !signature.Supported(f)
		})
	}

	out := output.FromContext(ctx)
	logger := log.FromContext(ctx)
	sigOpts := signature.Options{Docstring: opts.docstring, FullDocstring: opts.fullDocstring}

	failed := 0
	for _, file := range files {
		outline, err := signature.ExtractFile(a.resolve(ctx, file), sigOpts)
		switch {
		case errors.Is(err, signature.ErrUnsupported):
			logger.Printf("Skipping %s: unsupported file type\n", file)
			continue
		case err != nil:
			logger.Warnf("%s: %v", file, err)
			failed++
			continue
		}
		out.Printf("Extracting signatures from %s:\n", file)
		out.Println(strings.TrimRight(outline, "\n"))
		out.Println()
	}

	if failed > 0 {
		return output.Silent(output.ExitFailure)
	}
	return nil
}
