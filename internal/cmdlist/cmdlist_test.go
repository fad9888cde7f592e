package cmdlist

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"slices"
	"strings"
	"testing"

	"github.com/raphi011/shakti/internal/cmd"
	"github.com/raphi011/shakti/internal/cmd/cmdtest"
)

const sample = `# dev commands
docker compose up -d | docker | dev

git log --oneline -20 |git
echo untagged
  # indented comment
kubectl get pods -A | k8s
`

func TestParse(t *testing.T) {
	t.Parallel()

	entries, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	want := []Entry{
		{Command: "docker compose up -d", Tags: "docker | dev"},
		{Command: "git log --oneline -20", Tags: "git"},
		{Command: "kubectl get pods -A", Tags: "k8s"},
	}
	if !slices.Equal(entries, want) {
		t.Errorf("Parse() = %+v, want %+v", entries, want)
	}
	if got := entries[0].Line(); got != "docker compose up -d |docker | dev" {
		t.Errorf("Line() = %q", got)
	}
}

func TestCommandOf(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"docker compose up -d |docker | dev": "docker compose up -d",
		"command: ls -la |files":             "ls -la",
		"plain":                              "plain",
	}
	for in, want := range tests {
		if got := CommandOf(in); got != want {
			t.Errorf("CommandOf(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	got, err := Split(`command: grep -r "two words" .`)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"grep", "-r", "two words", "."}; !slices.Equal(got, want) {
		t.Errorf("Split() = %q, want %q", got, want)
	}
	if _, err := Split("   "); err == nil {
		t.Error("Split(empty) = nil, want error")
	}
	if _, err := Split(`echo "open`); err == nil {
		t.Error("Split(unterminated) = nil, want error")
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	entries, _ := Parse(strings.NewReader(sample))

	all := Filter(entries, "")
	if len(all) != len(entries) || all[0].Command != entries[0].Command {
		t.Errorf("Filter(\"\") = %+v, want all entries in order", all)
	}

	got := Filter(entries, "k8s")
	if len(got) == 0 || got[0].Command != "kubectl get pods -A" {
		t.Fatalf("Filter(k8s) = %+v", got)
	}
	if len(got[0].Indexes) != 3 {
		t.Errorf("Indexes = %v, want 3 matched positions", got[0].Indexes)
	}

	if none := Filter(entries, "zzzz"); len(none) != 0 {
		t.Errorf("Filter(zzzz) = %+v, want none", none)
	}
}

func TestSelectFzf(t *testing.T) {
	t.Parallel()

	entries := []Entry{{Command: "ls -la", Tags: "files"}, {Command: "pwd", Tags: "nav"}}

	tests := []struct {
		name    string
		out     string
		err     error
		want    string
		wantErr error
	}{
		{name: "selection", out: "pwd |nav\n", want: "pwd"},
		{name: "dismissed", err: &cmd.Error{Name: "fzf", Code: 130, Err: errors.New("exit status 130")}, wantErr: ErrNoSelection},
		{name: "no match", err: &cmd.Error{Name: "fzf", Code: 1, Err: errors.New("exit status 1")}, wantErr: ErrNoSelection},
		{name: "missing fzf", err: &cmd.Error{Name: "fzf", Code: 1, Err: fmt.Errorf("exec: %w", exec.ErrNotFound)}, wantErr: ErrNoPicker},
		{name: "empty output", out: "\n", wantErr: ErrNoSelection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fake := cmdtest.New()
			fake.Register("fzf", tt.out, tt.err)

			got, err := SelectFzf(context.Background(), fake, entries)
			if !errors.Is(err, tt.wantErr) || got != tt.want {
				t.Errorf("SelectFzf() = (%q, %v), want (%q, %v)", got, err, tt.want, tt.wantErr)
			}
			if tt.wantErr == nil && fake.Calls[0].Stdin != "ls -la |files\npwd |nav" {
				t.Errorf("stdin = %q", fake.Calls[0].Stdin)
			}
		})
	}
}
