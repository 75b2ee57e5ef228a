package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/egoavara/spin-hub/internal/hub"
)

// SummaryMarkdown describes an entry as markdown, e.g. before it is acquired
func SummaryMarkdown(kind string, e hub.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s %s\n\n", kind, e.Title())
	if e.Author() != "" {
		fmt.Fprintf(&b, "*by %s*\n\n", e.Author())
	}
	if e.Summary() != "" {
		b.WriteString(e.Summary())
		b.WriteString("\n")
	}
	return b.String()
}

// RenderMarkdown renders markdown content for terminal display.
// When raw is true, returns content unchanged (for piping).
// Falls back to raw content on rendering errors.
func RenderMarkdown(content string, raw bool) string {
	if raw {
		return content
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(terminalWidth()),
	)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
