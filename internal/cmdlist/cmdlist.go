// Package cmdlist reads the curated command list.
//
// Each line holds a shell command followed by "|"-separated tags:
//
//	docker compose up -d | docker | dev
//	# comments and blank lines are skipped
//
// Lines without a "|" have no tags and are not offered for selection.
package cmdlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/sahilm/fuzzy"
)

// Entry is one selectable command.
type Entry struct {
	Command string
	Tags    string // everything after the first "|", trimmed
}

// Line renders the entry the way it is shown to fzf.
func (e Entry) Line() string {
	return e.Command + " |" + e.Tags
}

// Parse reads entries from r.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		command, tags, ok := strings.Cut(line, "|")
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Command: strings.TrimSpace(command),
			Tags:    strings.TrimSpace(tags),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read command list: %w", err)
	}
	return entries, nil
}

// Load parses the command list at path.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Lines renders entries for a picker, one per line.
func Lines(entries []Entry) []string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Line()
	}
	return lines
}

// CommandOf extracts the command from a picker line.
func CommandOf(line string) string {
	command, _, _ := strings.Cut(line, "|")
	command = strings.TrimSpace(command)
	return strings.TrimSpace(strings.TrimPrefix(command, "command:"))
}

// Split turns a command line into program and arguments.
func Split(command string) ([]string, error) {
	command = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(command), "command:"))
	words, err := shellquote.Split(command)
	if err != nil {
		return nil, fmt.Errorf("parse command %q: %w", command, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("empty command")
	}
	return words, nil
}

// Match is an entry matched by Filter.
type Match struct {
	Entry
	Indexes []int // matched byte positions in Line()
}

type entrySource []Entry

func (s entrySource) String(i int) string { return s[i].Line() }
func (s entrySource) Len() int            { return len(s) }

// Filter ranks entries against query, best match first. An empty query
// keeps every entry in file order.
func Filter(entries []Entry, query string) []Match {
	if strings.TrimSpace(query) == "" {
		matches := make([]Match, len(entries))
		for i, e := range entries {
			matches[i] = Match{Entry: e}
		}
		return matches
	}
	found := fuzzy.FindFrom(query, entrySource(entries))
	matches := make([]Match, len(found))
	for i, m := range found {
		matches[i] = Match{Entry: entries[m.Index], Indexes: m.MatchedIndexes}
	}
	return matches
}
