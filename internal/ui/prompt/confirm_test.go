package prompt

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	default:
		return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
	}
}

func TestConfirmModel_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		key       string
		confirmed bool
		done      bool
		cancelled bool
		wantCmd   bool
	}{
		{"y confirms", "y", true, true, false, true},
		{"Y confirms", "Y", true, true, false, true},
		{"n declines", "n", false, true, false, true},
		{"enter defaults no", "enter", false, true, false, true},
		{"ctrl+c cancels", "ctrl+c", false, true, true, true},
		{"esc cancels", "esc", false, true, true, true},
		{"q cancels", "q", false, true, true, true},
		{"unhandled is no-op", "x", false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := confirmModel{prompt: "Continue?"}
			updated, cmd := m.Update(keyPress(tt.key))
			um := updated.(confirmModel)

			if um.confirmed != tt.confirmed {
				t.Errorf("confirmed = %v, want %v", um.confirmed, tt.confirmed)
			}
			if um.done != tt.done {
				t.Errorf("done = %v, want %v", um.done, tt.done)
			}
			if um.cancelled != tt.cancelled {
				t.Errorf("cancelled = %v, want %v", um.cancelled, tt.cancelled)
			}
			if (cmd != nil) != tt.wantCmd {
				t.Errorf("cmd nil = %v, want nil = %v", cmd == nil, !tt.wantCmd)
			}
		})
	}
}

func TestConfirmModel_View(t *testing.T) {
	t.Parallel()

	m := confirmModel{prompt: "Formatter failed. Continue?"}
	if got := m.View().Content; got != "Formatter failed. Continue? [y/N] " {
		t.Errorf("View().Content = %q", got)
	}

	m.done = true
	if got := m.View().Content; got != "" {
		t.Errorf("View().Content when done = %q, want empty", got)
	}
}

func TestTextInputModel(t *testing.T) {
	t.Parallel()

	t.Run("prefilled value survives enter", func(t *testing.T) {
		t.Parallel()
		m := newTextInputModel("Edit command:", "ls -la")
		updated, cmd := m.Update(keyPress("enter"))
		um := updated.(textInputModel)
		if !um.done || um.cancelled {
			t.Errorf("done = %v, cancelled = %v, want done", um.done, um.cancelled)
		}
		if cmd == nil {
			t.Error("enter should quit")
		}
		if got := um.textInput.Value(); got != "ls -la" {
			t.Errorf("Value() = %q, want %q", got, "ls -la")
		}
	})

	t.Run("esc cancels", func(t *testing.T) {
		t.Parallel()
		m := newTextInputModel("Edit command:", "ls")
		updated, _ := m.Update(keyPress("esc"))
		if um := updated.(textInputModel); !um.cancelled {
			t.Error("esc should cancel")
		}
	})
}

func TestSelectModel(t *testing.T) {
	t.Parallel()

	t.Run("enter selects first item", func(t *testing.T) {
		t.Parallel()
		m := newSelectModel("Pick", []string{"ls", "pwd"})
		updated, cmd := m.Update(keyPress("enter"))
		um := updated.(selectModel)
		if um.selected != 0 || !um.done {
			t.Errorf("selected = %d, done = %v, want 0, true", um.selected, um.done)
		}
		if cmd == nil {
			t.Error("enter should quit")
		}
	})

	t.Run("q cancels", func(t *testing.T) {
		t.Parallel()
		m := newSelectModel("Pick", []string{"ls"})
		updated, _ := m.Update(keyPress("q"))
		if um := updated.(selectModel); !um.cancelled || um.selected != -1 {
			t.Errorf("cancelled = %v, selected = %d", um.cancelled, um.selected)
		}
	})
}
