package prompt

import (
	"fmt"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInputResult holds the result of a text input prompt.
type TextInputResult struct {
	Value     string
	Cancelled bool
}

type textInputModel struct {
	textInput textinput.Model
	prompt    string
	done      bool
	cancelled bool
}

func newTextInputModel(prompt, initial string) textInputModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()
	ti.SetWidth(80)

	return textInputModel{
		textInput: ti,
		prompt:    prompt,
	}
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textInputModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(fmt.Sprintf("%s\n%s", m.prompt, m.textInput.View()))
}

// TextInput shows a single-line input prefilled with initial and returns
// what the user submitted.
func TextInput(prompt, initial string) (TextInputResult, error) {
	if !Interactive() {
		return TextInputResult{Value: initial, Cancelled: true}, nil
	}
	final, err := run(newTextInputModel(prompt, initial))
	if err != nil {
		return TextInputResult{}, err
	}
	m := final.(textInputModel)
	return TextInputResult{
		Value:     m.textInput.Value(),
		Cancelled: m.cancelled,
	}, nil
}
