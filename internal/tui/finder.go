package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/egoavara/spin-hub/internal/i18n"
	"github.com/egoavara/spin-hub/internal/search"
)

// FinderModel is the bubbletea model for choosing one item from a list
type FinderModel struct {
	prompt      string
	items       []string
	filtered    []int // indexes into items
	cursor      int
	height      int
	searchInput textinput.Model
	quitting    bool
	chosen      int
}

// NewFinderModel creates a new finder model
func NewFinderModel(prompt string, items []string) FinderModel {
	ti := textinput.New()
	ti.Placeholder = i18n.T("tui.filter.placeholder", nil)
	ti.CharLimit = 50
	ti.Width = 30

	filtered := make([]int, len(items))
	for i := range items {
		filtered[i] = i
	}

	return FinderModel{
		prompt:      prompt,
		items:       items,
		filtered:    filtered,
		searchInput: ti,
		chosen:      -1,
	}
}

func (m FinderModel) Init() tea.Cmd {
	return nil
}

func (m FinderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.height = msg.Height
	}
	return m, nil
}

func (m FinderModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		// If search has text, clear it; otherwise quit
		if m.searchInput.Value() != "" {
			m.searchInput.SetValue("")
			m.applyFilter()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}

	case "enter":
		if len(m.filtered) > 0 {
			m.chosen = m.filtered[m.cursor]
			m.quitting = true
			return m, tea.Quit
		}

	case "backspace":
		val := m.searchInput.Value()
		if len(val) > 0 {
			m.searchInput.SetValue(val[:len(val)-1])
			m.applyFilter()
		}

	default:
		// Any other printable character goes to search
		if len(msg.String()) == 1 && msg.String()[0] >= 32 && msg.String()[0] < 127 {
			m.searchInput.SetValue(m.searchInput.Value() + msg.String())
			m.applyFilter()
		}
	}

	return m, nil
}

func (m *FinderModel) applyFilter() {
	m.filtered = search.Rank(search.Labels(m.items), m.searchInput.Value())

	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

// Chosen returns the index of the chosen item, or false if the user cancelled
func (m FinderModel) Chosen() (int, bool) {
	return m.chosen, m.chosen >= 0
}

func (m FinderModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.prompt))
	b.WriteString("\n\n")

	listHeight := len(m.filtered)
	if m.height > 0 {
		listHeight = max(5, m.height-6)
	}
	start := 0
	if m.cursor >= listHeight {
		start = m.cursor - listHeight + 1
	}
	end := min(start+listHeight, len(m.filtered))

	if len(m.filtered) == 0 {
		b.WriteString(helpStyle.Render(i18n.T("tui.filter.empty", nil)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		line := "  " + m.items[m.filtered[i]]
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + m.items[m.filtered[i]]))
		} else {
			b.WriteString(normalStyle.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Search bar (always visible)
	if q := m.searchInput.Value(); q != "" {
		b.WriteString("> " + q + "_")
	} else {
		b.WriteString(helpStyle.Render("> " + i18n.T("tui.filter.placeholder", nil)))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(i18n.T("tui.finder.help", nil)))

	return b.String()
}
