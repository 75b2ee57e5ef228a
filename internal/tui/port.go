// Package tui implements the interactive prompts used to choose and confirm catalog entries.
package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/egoavara/spin-hub/internal/i18n"
	"github.com/egoavara/spin-hub/internal/selection"
)

// ErrNoInput is returned when input ends before an answer is given
var ErrNoInput = errors.New("no input")

// NewPort returns the bubbletea port when in is a terminal, and the
// line-based port otherwise.
func NewPort(in io.Reader, out io.Writer) selection.Port {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return &Terminal{In: in, Out: out}
	}
	return NewLinePort(in, out)
}

// Terminal runs a bubbletea program for each prompt
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

func (t *Terminal) run(model tea.Model) (tea.Model, error) {
	p := tea.NewProgram(model, tea.WithInput(t.In), tea.WithOutput(t.Out))
	return p.Run()
}

// Select launches the interactive fuzzy finder
func (t *Terminal) Select(prompt string, items []string) (int, bool, error) {
	final, err := t.run(NewFinderModel(prompt, items))
	if err != nil {
		return 0, false, err
	}
	idx, ok := final.(FinderModel).Chosen()
	return idx, ok, nil
}

// Confirm launches the yes/no selector
func (t *Terminal) Confirm(prompt string, def bool) (bool, error) {
	final, err := t.run(NewConfirmModel(prompt, def))
	if err != nil {
		return false, err
	}
	return final.(ConfirmModel).Answer(), nil
}

// Input launches a text input. Cancelling returns ErrNoInput.
func (t *Terminal) Input(prompt string) (string, error) {
	final, err := t.run(NewInputModel(prompt))
	if err != nil {
		return "", err
	}
	value, ok := final.(InputModel).Value()
	if !ok {
		return "", ErrNoInput
	}
	return value, nil
}

// LinePort prompts with plain lines, for pipes and dumb terminals
type LinePort struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLinePort creates a line-based port
func NewLinePort(in io.Reader, out io.Writer) *LinePort {
	return &LinePort{reader: bufio.NewReader(in), out: out}
}

func (p *LinePort) readLine() (string, error) {
	input, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		if err == io.EOF {
			return "", ErrNoInput
		}
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// Select prints a numbered list and reads a choice. An empty line or EOF cancels.
func (p *LinePort) Select(prompt string, items []string) (int, bool, error) {
	fmt.Fprintln(p.out, prompt)
	for i, item := range items {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, item)
	}

	for {
		fmt.Fprint(p.out, i18n.T("tui.line.choose", map[string]any{"Count": len(items)})+" ")
		input, err := p.readLine()
		if errors.Is(err, ErrNoInput) || (err == nil && input == "") {
			return 0, false, nil
		}
		if err != nil {
			return 0, false, err
		}

		n, convErr := strconv.Atoi(input)
		if convErr == nil && n >= 1 && n <= len(items) {
			return n - 1, true, nil
		}
		fmt.Fprintln(p.out, i18n.T("tui.line.invalid", map[string]any{"Input": input}))
	}
}

// Confirm asks a [Y/n] question. EOF counts as no.
func (p *LinePort) Confirm(prompt string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	fmt.Fprint(p.out, prompt+" "+hint+" ")

	input, err := p.readLine()
	if errors.Is(err, ErrNoInput) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	switch strings.ToLower(input) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Input reads one line of text
func (p *LinePort) Input(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt+": ")
	return p.readLine()
}
