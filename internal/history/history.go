// Package history remembers the commands run through "shakti cmd list-eval".
// The most recent command backs "cmd list-eval --last".
package history

import (
	"encoding/json"
	"errors"
	"io/fs"
	"path/filepath"
	"slices"
	"time"

	"github.com/raphi011/shakti/internal/storage"
)

// MaxEntries bounds the number of distinct commands kept.
const MaxEntries = 100

// Entry is one distinct command and how it was used.
type Entry struct {
	Command string    `json:"command"`
	LastRun time.Time `json:"last_run"`
	Count   int       `json:"count"`
}

// History is the persisted list of entries, most recent first.
type History struct {
	Entries []Entry `json:"entries"`
}

// DefaultPath returns ~/.shakti/history.json.
func DefaultPath() (string, error) {
	dir, err := storage.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.json"), nil
}

// Load reads the history at path. A missing or corrupted file yields an
// empty history.
func Load(path string) (*History, error) {
	var h History
	err := storage.LoadJSON(path, &h)
	if errors.Is(err, fs.ErrNotExist) {
		return &History{}, nil
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return &History{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Save writes the history to path atomically.
func (h *History) Save(path string) error {
	return storage.SaveJSON(path, h)
}

// Record moves command to the front, bumping its count.
func (h *History) Record(command string, at time.Time) {
	entry := Entry{Command: command, LastRun: at, Count: 1}
	if i := slices.IndexFunc(h.Entries, func(e Entry) bool { return e.Command == command }); i >= 0 {
		entry.Count = h.Entries[i].Count + 1
		h.Entries = slices.Delete(h.Entries, i, i+1)
	}
	h.Entries = slices.Insert(h.Entries, 0, entry)
	if len(h.Entries) > MaxEntries {
		h.Entries = h.Entries[:MaxEntries]
	}
}

// Last returns the most recently run command.
func (h *History) Last() (string, bool) {
	if len(h.Entries) == 0 {
		return "", false
	}
	return h.Entries[0].Command, true
}

// RecordRun loads the history at path, records command and saves it.
func RecordRun(path, command string) error {
	h, err := Load(path)
	if err != nil {
		return err
	}
	h.Record(command, time.Now())
	return h.Save(path)
}
