package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FakeGit satisfies git.Client without running git.
// OnClone simulates both clone kinds; branch is "" for decoupled clones.
type FakeGit struct {
	mu      sync.Mutex
	Calls   []string
	OnClone func(url, dest, branch string) error
}

// CloneDecoupled records the call and delegates to OnClone
func (g *FakeGit) CloneDecoupled(_ context.Context, url, dest string) error {
	g.record(fmt.Sprintf("clone %s %s", url, dest))
	return g.clone(url, dest, "")
}

// CloneQuiet records the call and delegates to OnClone
func (g *FakeGit) CloneQuiet(_ context.Context, url, dest, branch string) error {
	g.record(fmt.Sprintf("clone-quiet %s %s %s", url, dest, branch))
	return g.clone(url, dest, branch)
}

// Init creates dir/.git
func (g *FakeGit) Init(_ context.Context, dir string) error {
	g.record("init " + dir)
	return os.MkdirAll(filepath.Join(dir, ".git"), 0755)
}

// Recorded returns a snapshot of the calls made so far
func (g *FakeGit) Recorded() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.Calls...)
}

func (g *FakeGit) record(call string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Calls = append(g.Calls, call)
}

func (g *FakeGit) clone(url, dest, branch string) error {
	if g.OnClone == nil {
		return nil
	}
	return g.OnClone(url, dest, branch)
}
