package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/egoavara/spin-hub/internal/i18n"
)

// ConfirmModel is the bubbletea model for a yes/no question
type ConfirmModel struct {
	prompt    string
	labels    [2]string // yes, no
	cursor    int
	selected  bool
	quitting  bool
	confirmed bool
}

// NewConfirmModel creates a confirmation model with the cursor on def
func NewConfirmModel(prompt string, def bool) ConfirmModel {
	cursor := 1
	if def {
		cursor = 0
	}
	return ConfirmModel{
		prompt: prompt,
		labels: [2]string{i18n.T("tui.confirm.yes", nil), i18n.T("tui.confirm.no", nil)},
		cursor: cursor,
	}
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		m.selected = false
		return m, tea.Quit

	case "up", "k", "left", "h":
		m.cursor = 0

	case "down", "j", "right", "l":
		m.cursor = 1

	case "y", "Y":
		m.cursor = 0
		return m.confirm()

	case "n", "N":
		m.cursor = 1
		return m.confirm()

	case "enter", " ":
		return m.confirm()
	}

	return m, nil
}

func (m ConfirmModel) confirm() (tea.Model, tea.Cmd) {
	m.selected = m.cursor == 0
	m.confirmed = true
	m.quitting = true
	return m, tea.Quit
}

// Answer returns the user's answer. Cancelling counts as no.
func (m ConfirmModel) Answer() bool {
	return m.confirmed && m.selected
}

func (m ConfirmModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.prompt))
	b.WriteString("\n\n")

	for i, label := range m.labels {
		if i == m.cursor {
			b.WriteString(optionSelectedStyle.Render(fmt.Sprintf("▸ %s", label)))
		} else {
			b.WriteString(normalStyle.Render(fmt.Sprintf("  %s", label)))
		}
		b.WriteString("  ")
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(i18n.T("tui.confirm.help", nil)))

	return boxStyle.Render(b.String())
}
