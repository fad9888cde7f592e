// Package commitmsg asks an AI chat command for a commit message.
//
// The prompt combines a Conventional Commit instruction, the two most
// recent commit messages as style examples and the staged diff. It is
// written to the AI command's stdin; whatever the command prints is the
// message.
package commitmsg

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/raphi011/shakti/internal/cmd"
)

// ExampleCount is the number of recent commit messages included.
const ExampleCount = 2

const instruction = "Give commit message for the following changes, follow Conventional Commit guidelines. \n\n" +
	"Here are examples of couple of commit messages for your reference: \n" +
	"Example one and two:\n"

var (
	// ErrNothingStaged is returned when the index has no changes.
	ErrNothingStaged = errors.New("no staged changes: stage files with 'shakti git add' first")

	// ErrEmptyMessage is returned when the AI command printed nothing.
	ErrEmptyMessage = errors.New("AI command returned an empty commit message")
)

// BuildPrompt assembles the prompt from recent messages and the staged diff.
func BuildPrompt(recent, diff string) (string, error) {
	if strings.TrimSpace(diff) == "" {
		return "", ErrNothingStaged
	}
	var b strings.Builder
	b.WriteString(instruction)
	b.WriteString(recent)
	b.WriteString("\n\nAnd now here are the diffs: \n")
	b.WriteString(diff)
	return b.String(), nil
}

// Generate pipes prompt through aiCommand and returns the trimmed reply.
func Generate(ctx context.Context, r cmd.Runner, aiCommand, prompt string) (string, error) {
	words, err := shellquote.Split(aiCommand)
	if err != nil || len(words) == 0 {
		return "", fmt.Errorf("invalid AI command %q", aiCommand)
	}
	out, err := r.Pipe(ctx, prompt, words[0], words[1:]...)
	if err != nil {
		return "", err
	}
	msg := strings.TrimSpace(string(out))
	if msg == "" {
		return "", ErrEmptyMessage
	}
	return msg, nil
}

// CommitCommand returns a shell command line that commits with msg.
func CommitCommand(msg string) string {
	return "git commit -m " + shellquote.Join(msg)
}
