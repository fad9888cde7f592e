// Package progress shows activity on stderr while shakti waits for a slow
// external command, such as the AI chat command behind "git message".
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/mattn/go-isatty"

	"github.com/raphi011/shakti/internal/ui/styles"
)

// stopTimeout bounds how long Stop waits for the program to exit.
const stopTimeout = 500 * time.Millisecond

type spinnerModel struct {
	spinner spinner.Model
	message string
}

func newSpinnerModel(message string) spinnerModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.PrimaryStyle
	return spinnerModel{spinner: sp, message: message}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m spinnerModel) View() tea.View {
	return tea.NewView(fmt.Sprintf("%s %s", m.spinner.View(), styles.MutedStyle.Render(m.message)))
}

// Spinner animates a message on a terminal until stopped.
type Spinner struct {
	out     io.Writer
	program *tea.Program
	done    chan struct{}
	once    sync.Once
}

// Start shows message with a spinner on stderr. When stderr is not a
// terminal nothing is drawn and Stop is a no-op.
func Start(message string) *Spinner {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return &Spinner{}
	}
	return start(os.Stderr, message)
}

func start(out io.Writer, message string) *Spinner {
	s := &Spinner{
		out:  out,
		done: make(chan struct{}),
		program: tea.NewProgram(newSpinnerModel(message),
			tea.WithOutput(out),
			tea.WithInput(nil),
			tea.WithoutSignalHandler(),
		),
	}
	go func() {
		_, _ = s.program.Run()
		close(s.done)
	}()
	return s
}

// Stop ends the animation and clears its line. It is safe to call more
// than once.
func (s *Spinner) Stop() {
	if s == nil || s.program == nil {
		return
	}
	s.once.Do(func() {
		s.program.Quit()
		select {
		case <-s.done:
		case <-time.After(stopTimeout):
		}
		fmt.Fprint(s.out, "\r\033[K")
	})
}
