package testutil

import "errors"

// ErrScriptExhausted is returned when a ScriptedPort is asked more than it was scripted for
var ErrScriptExhausted = errors.New("scripted port: no answer left")

// Choice is one scripted answer to Select
type Choice struct {
	Index int
	OK    bool
}

// ScriptedPort answers prompts from fixed scripts and records what was asked.
// It satisfies selection.Port.
type ScriptedPort struct {
	Choices  []Choice
	Confirms []bool
	Inputs   []string

	Selects      [][]string // items of each Select call
	ConfirmAsked []string
	InputAsked   []string
}

// Select pops the next scripted choice
func (p *ScriptedPort) Select(_ string, items []string) (int, bool, error) {
	p.Selects = append(p.Selects, items)
	if len(p.Choices) == 0 {
		return 0, false, ErrScriptExhausted
	}
	c := p.Choices[0]
	p.Choices = p.Choices[1:]
	return c.Index, c.OK, nil
}

// Confirm pops the next scripted answer
func (p *ScriptedPort) Confirm(prompt string, _ bool) (bool, error) {
	p.ConfirmAsked = append(p.ConfirmAsked, prompt)
	if len(p.Confirms) == 0 {
		return false, ErrScriptExhausted
	}
	answer := p.Confirms[0]
	p.Confirms = p.Confirms[1:]
	return answer, nil
}

// Input pops the next scripted line
func (p *ScriptedPort) Input(prompt string) (string, error) {
	p.InputAsked = append(p.InputAsked, prompt)
	if len(p.Inputs) == 0 {
		return "", ErrScriptExhausted
	}
	line := p.Inputs[0]
	p.Inputs = p.Inputs[1:]
	return line, nil
}
