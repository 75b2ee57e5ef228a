// Package selection reduces catalog matches to a single entry, asking the user when needed.
package selection

// Port is the user interaction surface used by the resolution and acquisition flows
type Port interface {
	// Select presents items and returns the chosen index. ok is false when the user cancels.
	Select(prompt string, items []string) (index int, ok bool, err error)
	// Confirm asks a yes/no question. Cancelling counts as no.
	Confirm(prompt string, def bool) (bool, error)
	// Input asks for a line of text
	Input(prompt string) (string, error)
}

// AutoConfirm answers every confirmation with yes and delegates the rest.
// Selection among several matches is still asked.
type AutoConfirm struct {
	Port
}

// Confirm always returns true
func (AutoConfirm) Confirm(string, bool) (bool, error) {
	return true, nil
}
