// Package ui renders command output.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	boldStyle    = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

// Printer writes styled lines to Out
type Printer struct {
	Out io.Writer
}

// Println prints a plain line
func (p Printer) Println(msg string) {
	fmt.Fprintln(p.Out, msg)
}

// Success prints a success line
func (p Printer) Success(msg string) {
	fmt.Fprintln(p.Out, successStyle.Render("✓ "+msg))
}

// Error prints an error line
func (p Printer) Error(msg string) {
	fmt.Fprintln(p.Out, errorStyle.Render("✗ "+msg))
}

// Warning prints a warning line
func (p Printer) Warning(msg string) {
	fmt.Fprintln(p.Out, warningStyle.Render("! "+msg))
}

// Muted prints a secondary line
func (p Printer) Muted(msg string) {
	fmt.Fprintln(p.Out, mutedStyle.Render(msg))
}

// Bold returns s styled as bold (for inline use)
func Bold(s string) string {
	return boldStyle.Render(s)
}
