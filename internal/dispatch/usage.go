package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphi011/shakti/internal/output"
	"github.com/raphi011/shakti/internal/registry"
	"github.com/raphi011/shakti/internal/ui/static"
)

var globalOptions = []registry.Option{
	{Flag: "--version", Description: "Print the version and exit"},
	{Flag: "--help <command>", Description: "Show help for a command or subcommand"},
	{Flag: "--slist [group]", Description: "List registered commands and their options"},
	{Flag: "-v, --verbose", Description: "Echo external commands as they run"},
	{Flag: "-q, --quiet", Description: "Suppress diagnostics"},
}

// usage prints the top-level usage screen.
func (d *Dispatcher) usage(ctx context.Context) {
	out := output.FromContext(ctx)
	out.Printf("Usage: %s [options] <command> [subcommand] [args...]\n\n", d.Name)
	out.Heading("Options:")
	out.Print(optionColumns(globalOptions))
	if cmds := d.Registry.Children(""); len(cmds) > 0 {
		out.Println()
		out.Heading("Commands:")
		out.Print(commandColumns(cmds, ""))
	}
	out.Println()
	out.Printf("Unregistered commands are run as external programs.\n")
	out.Printf("Run '%s --help <command>' for details.\n", d.Name)
}

// slist enumerates registered commands with their options. A non-empty
// group restricts the listing to that group.
func (d *Dispatcher) slist(ctx context.Context, group string) error {
	group = registry.Normalize(group)
	if group == "" {
		out := output.FromContext(ctx)
		out.Printf("Registered commands for %s:\n", d.Name)
		for _, e := range d.Registry.Children("") {
			writeSListEntry(out, e, e.ID, "")
			for _, sub := range d.Registry.Children(e.ID) {
				writeSListEntry(out, sub, sub.ID, "  ")
			}
		}
		return nil
	}
	return listGroup(ctx, d.Registry, d.Name+" "+group, group)
}

// listGroup prints the subcommands of group under a header naming title.
func listGroup(ctx context.Context, r *registry.Registry, title, group string) error {
	entries := r.Children(group)
	if len(entries) == 0 {
		if _, ok := r.Lookup(group); !ok {
			return output.NewExitError(output.ExitFailure, fmt.Sprintf("Error: Unknown command '%s'", group))
		}
	}

	out := output.FromContext(ctx)
	out.Printf("Registered subcommands for %s:\n", title)
	for _, e := range entries {
		writeSListEntry(out, e, strings.TrimPrefix(e.ID, group+" "), "")
	}
	return nil
}

func writeSListEntry(out *output.Printer, e registry.Entry, label, indent string) {
	out.Printf("%s- %s: %s\n", indent, label, e.Description)
	for _, o := range e.Options {
		out.Printf("%s    %s  %s\n", indent, o.Flag, o.Description)
	}
}

func optionColumns(opts []registry.Option) string {
	rows := make([][]string, len(opts))
	for i, o := range opts {
		rows[i] = []string{o.Flag, o.Description}
	}
	return static.RenderColumns(rows, 2)
}

// commandColumns lists entries by their identifier relative to parent.
func commandColumns(entries []registry.Entry, parent string) string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		id := e.ID
		if parent != "" {
			id = strings.TrimPrefix(id, parent+" ")
		}
		rows[i] = []string{id, e.Description}
	}
	return static.RenderColumns(rows, 2)
}
