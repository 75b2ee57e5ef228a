package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/egoavara/spin-hub/internal/i18n"
)

// InputModel is the bubbletea model for a single line of text
type InputModel struct {
	prompt    string
	input     textinput.Model
	quitting  bool
	submitted bool
}

// NewInputModel creates a focused text input
func NewInputModel(prompt string) InputModel {
	ti := textinput.New()
	ti.CharLimit = 100
	ti.Width = 40
	ti.Focus()

	return InputModel{prompt: prompt, input: ti}
}

func (m InputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if strings.TrimSpace(m.input.Value()) == "" {
				return m, nil
			}
			m.submitted = true
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Value returns the trimmed text and whether it was submitted
func (m InputModel) Value() (string, bool) {
	return strings.TrimSpace(m.input.Value()), m.submitted
}

func (m InputModel) View() string {
	if m.quitting {
		return ""
	}
	return titleStyle.Render(m.prompt) + "\n\n" + m.input.View() + "\n\n" +
		helpStyle.Render(i18n.T("tui.input.help", nil))
}
