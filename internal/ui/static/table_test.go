package static

import (
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	t.Parallel()

	got := RenderTable([]string{"DATE", "HOURS"}, [][]string{
		{"2024-01-02", "1.50"},
		{"2024-01-03", "0.25"},
	})

	for _, want := range []string{"DATE", "HOURS", "2024-01-02", "1.50", "0.25"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderTable() = %q, want to contain %q", got, want)
		}
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("RenderTable() should end with a newline")
	}
}

func TestRenderTable_Empty(t *testing.T) {
	t.Parallel()

	if got := RenderTable([]string{"A"}, nil); got != "" {
		t.Errorf("RenderTable() with no rows = %q, want empty", got)
	}
}

func TestRenderColumns(t *testing.T) {
	t.Parallel()

	got := RenderColumns([][]string{
		{"add", "Stage files"},
		{"difftool", "Open difftool"},
	}, 2)

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderColumns() lines = %d, want 2: %q", len(lines), got)
	}
	for i, line := range lines {
		if strings.HasSuffix(line, " ") {
			t.Errorf("line %d has trailing spaces: %q", i, line)
		}
	}
	if !strings.Contains(lines[0], "Stage files") || !strings.Contains(lines[1], "Open difftool") {
		t.Errorf("RenderColumns() = %q", got)
	}
}
