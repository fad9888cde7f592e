package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRecord_MovesToFront(t *testing.T) {
	t.Parallel()

	var h History
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h.Record("ls", base)
	h.Record("pwd", base.Add(time.Minute))
	h.Record("ls", base.Add(2*time.Minute))

	if len(h.Entries) != 2 {
		t.Fatalf("Entries = %+v, want 2", h.Entries)
	}
	if h.Entries[0].Command != "ls" || h.Entries[0].Count != 2 {
		t.Errorf("Entries[0] = %+v, want ls with count 2", h.Entries[0])
	}
	if last, ok := h.Last(); !ok || last != "ls" {
		t.Errorf("Last() = (%q, %v), want ls", last, ok)
	}
}

func TestRecord_Bounded(t *testing.T) {
	t.Parallel()

	var h History
	now := time.Now()
	for i := range MaxEntries + 10 {
		h.Record(string(rune('a'+i%26))+time.Duration(i).String(), now)
	}
	if len(h.Entries) != MaxEntries {
		t.Errorf("len(Entries) = %d, want %d", len(h.Entries), MaxEntries)
	}
}

func TestLast_Empty(t *testing.T) {
	t.Parallel()

	if _, ok := (&History{}).Last(); ok {
		t.Error("Last() on empty history should report false")
	}
}

func TestRecordRun_Persists(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.json")
	if err := RecordRun(path, "make test"); err != nil {
		t.Fatalf("RecordRun() = %v", err)
	}
	if err := RecordRun(path, "make lint"); err != nil {
		t.Fatalf("RecordRun() = %v", err)
	}

	h, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if last, _ := h.Last(); last != "make lint" {
		t.Errorf("Last() = %q, want %q", last, "make lint")
	}
	if len(h.Entries) != 2 {
		t.Errorf("Entries = %+v", h.Entries)
	}
}

func TestLoad_MissingOrCorrupt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	h, err := Load(filepath.Join(dir, "missing.json"))
	if err != nil || len(h.Entries) != 0 {
		t.Errorf("Load(missing) = (%+v, %v), want empty", h, err)
	}

	corrupt := filepath.Join(dir, "corrupt.json")
	if err := os.WriteFile(corrupt, []byte("{{{"), 0o600); err != nil {
		t.Fatal(err)
	}
	h, err = Load(corrupt)
	if err != nil || len(h.Entries) != 0 {
		t.Errorf("Load(corrupt) = (%+v, %v), want empty", h, err)
	}
}
