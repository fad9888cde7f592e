package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/raphi011/shakti/internal/cmd"
	"github.com/raphi011/shakti/internal/cmdlist"
	"github.com/raphi011/shakti/internal/config"
	"github.com/raphi011/shakti/internal/history"
	"github.com/raphi011/shakti/internal/log"
	"github.com/raphi011/shakti/internal/output"
	"github.com/raphi011/shakti/internal/registry"
	"github.com/raphi011/shakti/internal/ui/styles"
)

const ruleWidth = 40

const editPrompt = "Edit and execute (modify or press Enter to keep as is):"

// commandFile returns the configured curated list or an exit error.
func (a *app) commandFile(ctx context.Context) (string, error) {
	path, err := a.config(ctx).CommandFile()
	if err != nil {
		return "", output.NewExitError(output.ExitFailure, fmt.Sprintf("Error: %v", err))
	}
	return a.resolve(ctx, path), nil
}

func fileError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return output.NewExitError(output.ExitFailure, fmt.Sprintf("Error: File '%s' not found.", path))
	}
	return output.NewExitError(output.ExitFailure, fmt.Sprintf("Error reading file: %v", err))
}

// cmdList prints the curated list, or the entries matching a query.
func (a *app) cmdList(ctx context.Context, req registry.Request) error {
	args := append(append([]string{}, req.Options...), req.Args...)
	query, help, err := a.parseFlags(ctx, "cmd list", pflag.NewFlagSet("cmd list", pflag.ContinueOnError), args)
	if help || err != nil {
		return err
	}

	path, err := a.commandFile(ctx)
	if err != nil {
		return err
	}
	out := output.FromContext(ctx)

	if len(query) == 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return fileError(path, err)
		}
		out.Printf("Contents of %s:\n", path)
		out.Rule(ruleWidth)
		out.Print(string(data))
		if len(data) > 0 && !strings.HasSuffix(string(data), "\n") {
			out.Println()
		}
		out.Rule(ruleWidth)
		return nil
	}

	entries, err := cmdlist.Load(path)
	if err != nil {
		return fileError(path, err)
	}
	q := strings.Join(query, " ")
	matches := cmdlist.Filter(entries, q)
	if len(matches) == 0 {
		out.Printf("No commands match %q.\n", q)
		return nil
	}
	for _, m := range matches {
		out.Println(highlight(m.Line(), m.Indexes))
	}
	return nil
}

// highlight renders the characters at the matched byte offsets in the
// accent style.
func highlight(line string, indexes []int) string {
	if len(indexes) == 0 {
		return line
	}
	matched := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		matched[i] = true
	}

	var b strings.Builder
	for i, r := range line {
		if matched[i] {
			b.WriteString(styles.AccentStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func cmdListEvalFlags(last *bool) *pflag.FlagSet {
	fs := pflag.NewFlagSet("cmd list-eval", pflag.ContinueOnError)
	fs.BoolVarP(last, "last", "l", false, "Edit and run the last executed command")
	return fs
}

func (a *app) cmdListEval(ctx context.Context, req registry.Request) error {
	var last bool
	args := append(append([]string{}, req.Options...), req.Args...)
	if _, help, err := a.parseFlags(ctx, "cmd list-eval", cmdListEvalFlags(&last), args); help || err != nil {
		return err
	}

	out := output.FromContext(ctx)
	histPath, err := a.historyPath()
	if err != nil {
		return fmt.Errorf("locate history: %w", err)
	}

	var command string
	if last {
		h, err := history.Load(histPath)
		if err != nil {
			return err
		}
		var ok bool
		if command, ok = h.Last(); !ok {
			return output.NewExitError(output.ExitFailure, "Error: No command has been executed yet.")
		}
	} else {
		command, err = a.pickCommand(ctx)
		if errors.Is(err, cmdlist.ErrNoSelection) {
			out.Println("No command selected.")
			return nil
		}
		if err != nil {
			return err
		}
	}

	edited, err := a.edit(editPrompt, command)
	if err != nil {
		return fmt.Errorf("edit command: %w", err)
	}
	if edited.Cancelled {
		out.Println("No command executed.")
		return nil
	}
	if v := strings.TrimSpace(edited.Value); v != "" {
		command = v
	}

	words, err := cmdlist.Split(command)
	if err != nil {
		return output.NewExitError(output.ExitFailure, fmt.Sprintf("Error: %v", err))
	}

	out.Printf("Executing: %s\n", command)
	if err := history.RecordRun(histPath, command); err != nil {
		log.FromContext(ctx).Warnf("could not save history: %v", err)
	}

	err = a.runner.Attach(ctx, config.WorkDirFromContext(ctx), words[0], words[1:]...)
	switch {
	case err == nil:
		return nil
	case cmd.IsNotFound(err):
		return output.NewExitError(output.ExitFailure, fmt.Sprintf("Command not found: %s", words[0]))
	default:
		return output.Propagate(err, "command")
	}
}

// pickCommand offers the curated entries through fzf, falling back to the
// built-in list when fzf is not installed.
func (a *app) pickCommand(ctx context.Context) (string, error) {
	path, err := a.commandFile(ctx)
	if err != nil {
		return "", err
	}
	entries, err := cmdlist.Load(path)
	if err != nil {
		return "", fileError(path, err)
	}
	if len(entries) == 0 {
		return "", output.NewExitError(output.ExitFailure, fmt.Sprintf("Error: No commands found in %s.", path))
	}

	command, err := cmdlist.SelectFzf(ctx, a.runner, entries)
	if !errors.Is(err, cmdlist.ErrNoPicker) {
		return command, err
	}

	log.FromContext(ctx).Debug("fzf not installed, using built-in picker")
	res, err := a.selectLine("Select a command", cmdlist.Lines(entries))
	if err != nil {
		return "", fmt.Errorf("select command: %w", err)
	}
	if res.Cancelled || res.Index < 0 {
		return "", cmdlist.ErrNoSelection
	}
	return cmdlist.CommandOf(res.Value), nil
}
