// Package testutil provides fakes shared by package tests.
package testutil

import (
	"context"
	"sync"

	"github.com/egoavara/spin-hub/internal/process"
)

// FakeRunner records commands instead of executing them.
// Handler, when set, decides the outcome of each command and may create
// files to simulate the process's side effects.
type FakeRunner struct {
	mu       sync.Mutex
	Commands []process.Command
	Handler  func(cmd process.Command) (process.ExitStatus, error)
}

// Run records cmd and delegates to Handler
func (r *FakeRunner) Run(_ context.Context, cmd process.Command) (process.ExitStatus, error) {
	r.mu.Lock()
	r.Commands = append(r.Commands, cmd)
	handler := r.Handler
	r.mu.Unlock()

	if handler == nil {
		return process.ExitStatus{}, nil
	}
	return handler(cmd)
}

// Calls returns a snapshot of the recorded commands
func (r *FakeRunner) Calls() []process.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]process.Command(nil), r.Commands...)
}
