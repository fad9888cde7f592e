// Package registry holds the command table consulted by the dispatcher.
//
// Commands are keyed by a space-joined identifier such as "git diff".
// A second table stores free-form help text, so a group like "git" can
// have usage documentation without being runnable, and a runnable
// command can have multi-paragraph help beyond its one-line description.
//
// The registry is filled once at startup and only read afterwards.
// Registering an identifier twice replaces the earlier entry.
package registry

import (
	"context"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// Handler runs a command. Options holds the leading flags collected by the
// dispatcher before the command name; Args holds everything after it.
type Handler func(ctx context.Context, req Request) error

// Request is the input passed to a Handler.
type Request struct {
	Options []string
	Args    []string
}

// Option documents a single flag accepted by a command.
type Option struct {
	Flag        string
	Description string
}

// Command is a registered, runnable command.
type Command struct {
	ID          string
	Handler     Handler
	Description string
	Options     []Option
}

// Entry is the listing view of a command.
type Entry struct {
	ID          string
	Description string
	Options     []Option
}

// Registry maps identifiers to commands and help text.
type Registry struct {
	commands map[string]Command
	help     map[string]string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		commands: make(map[string]Command),
		help:     make(map[string]string),
	}
}

// Normalize collapses whitespace so "git  add" and "git add" are the same identifier.
func Normalize(id string) string {
	return strings.Join(strings.Fields(id), " ")
}

// Register stores cmd under its identifier, replacing any previous entry.
func (r *Registry) Register(cmd Command) {
	cmd.ID = Normalize(cmd.ID)
	r.commands[cmd.ID] = cmd
}

// Add is shorthand for Register.
func (r *Registry) Add(id string, h Handler, description string, options ...Option) {
	r.Register(Command{ID: id, Handler: h, Description: description, Options: options})
}

// RegisterHelp stores help text for id. id need not be a runnable command.
func (r *Registry) RegisterHelp(id, text string) {
	r.help[Normalize(id)] = text
}

// Lookup returns the command registered under id.
func (r *Registry) Lookup(id string) (Command, bool) {
	cmd, ok := r.commands[Normalize(id)]
	return cmd, ok
}

// Help returns the help text for id, falling back to the command description.
func (r *Registry) Help(id string) (string, bool) {
	id = Normalize(id)
	if text, ok := r.help[id]; ok {
		return text, true
	}
	if cmd, ok := r.commands[id]; ok && cmd.Description != "" {
		return cmd.Description, true
	}
	return "", false
}

// List returns all commands sorted by identifier.
func (r *Registry) List() []Entry {
	entries := make([]Entry, 0, len(r.commands))
	for _, cmd := range r.commands {
		entries = append(entries, Entry{ID: cmd.ID, Description: cmd.Description, Options: cmd.Options})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.ID, b.ID)
	})
	return entries
}

// Children returns the commands one level below the group identifier.
// An empty prefix returns the top-level commands.
func (r *Registry) Children(prefix string) []Entry {
	prefix = Normalize(prefix)
	depth := 0
	if prefix != "" {
		depth = len(strings.Fields(prefix))
	}

	var children []Entry
	for _, e := range r.List() {
		if prefix != "" && !strings.HasPrefix(e.ID, prefix+" ") {
			continue
		}
		if len(strings.Fields(e.ID)) == depth+1 {
			children = append(children, e)
		}
	}
	return children
}

// OptionsFromFlags documents every flag defined in fs, in definition order.
func OptionsFromFlags(fs *pflag.FlagSet) []Option {
	var options []Option
	fs.SortFlags = false
	fs.VisitAll(func(f *pflag.Flag) {
		flag := "--" + f.Name
		if f.Shorthand != "" {
			flag = "-" + f.Shorthand + ", " + flag
		}
		options = append(options, Option{Flag: flag, Description: f.Usage})
	})
	return options
}
