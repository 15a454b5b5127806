// Package tui renders the wizard session with Bubble Tea. The model owns no
// domain state of its own: key events become canonical actions, the session
// consumes them, and the views read the session back out.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iwvelando/home-buyer/internal/wizard"
)

// Model adapts a wizard session to the Bubble Tea update loop.
type Model struct {
	session *wizard.Session

	width  int
	height int
}

// NewModel wraps session for presentation.
func NewModel(session *wizard.Session) Model {
	return Model{session: session}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		action, ok := actionFor(m.session.Step(), msg)
		if !ok {
			return m, nil
		}
		if done := m.session.Apply(action); done {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	step := m.session.Step()
	switch {
	case step.IsInput():
		return m.viewInput(step)
	case step == wizard.StepSpreadsheet:
		return m.viewSpreadsheet()
	default:
		return m.viewSummary()
	}
}
