package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/egoavara/spin-hub/internal/hub"
)

// SearchTable renders entries as a Name / Description / Author table
func SearchTable(entries []hub.Entry) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		BorderRow(false).
		Headers("Name", "Description", "Author").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, e := range entries {
		t.Row(e.Title(), e.ShortSummary(), e.Author())
	}

	return t.Render()
}
