// Package acquire turns a resolved catalog entry into local content.
package acquire

import (
	"context"
	"errors"
	"fmt"

	"github.com/egoavara/spin-hub/internal/git"
	"github.com/egoavara/spin-hub/internal/hub"
	"github.com/egoavara/spin-hub/internal/process"
	"github.com/egoavara/spin-hub/internal/spin"
	"github.com/egoavara/spin-hub/internal/templates"
)

var (
	// ErrMissingLocator is returned when an entry lacks the locator data its category requires
	ErrMissingLocator = errors.New("entry has no locator data")
	// ErrUnsupportedCategory is returned when no strategy handles the category and intent
	ErrUnsupportedCategory = errors.New("unsupported category")
	// ErrExternalProcess is returned when git or spin fails to start or exits unsuccessfully
	ErrExternalProcess = errors.New("external process failed")
	// ErrSubDirNotFound is returned when a sample's sub-directory is missing from its clone
	ErrSubDirNotFound = errors.New("sub-directory not found")
	// ErrInvalidTarget is returned when a destination would fall outside the working directory
	ErrInvalidTarget = errors.New("invalid target directory")
)

// Intent is what a command wants done with the entry it resolved
type Intent string

// Intents, one per acquiring command
const (
	IntentNew     Intent = "new"
	IntentClone   Intent = "clone"
	IntentRun     Intent = "run"
	IntentInstall Intent = "install-plugin"
)

// Request carries user input for a strategy
type Request struct {
	Dir string // working directory that receives the content

	// new
	AppName        string
	AllowOverwrite bool
	NoVCS          bool

	// run
	Deploy  bool
	Extract bool
}

// Result describes what a strategy materialized
type Result struct {
	Path     string             // local content directory, if any
	Status   process.ExitStatus // exit status of spin, for run and install-plugin
	Skipped  []string           // files left in place by an extract
	Warnings []string           // non-fatal problems, e.g. a clone that could not be removed
}

// Strategy acquires one kind of entry
type Strategy interface {
	Acquire(ctx context.Context, entry hub.Entry, req Request) (*Result, error)
}

// Env is the configuration and collaborators strategies are built with
type Env struct {
	Git         git.Client
	Runner      process.Runner
	SpinBinPath string // checked when a strategy needs spin
	SpinVersion string

	// OpenWorkspace creates the scratch area for template installs. Defaults to templates.Open.
	OpenWorkspace func(git.Client) (*templates.Workspace, error)
}

func (e Env) spin() (*spin.Bin, error) {
	return spin.New(e.SpinBinPath, e.Runner)
}

type key struct {
	kind   hub.CategoryKind
	intent Intent
}

// Registry maps a category and intent to the strategy that handles them
type Registry struct {
	strategies map[key]Strategy
}

// NewRegistry builds the strategies for env
func NewRegistry(env Env) *Registry {
	if env.OpenWorkspace == nil {
		env.OpenWorkspace = templates.Open
	}

	return &Registry{strategies: map[key]Strategy{
		{hub.KindTemplate, IntentNew}:   &Scaffold{env: env},
		{hub.KindSample, IntentClone}:   &Clone{env: env},
		{hub.KindSample, IntentRun}:     &Run{env: env},
		{hub.KindPlugin, IntentInstall}: &InstallPlugin{env: env},
	}}
}

// For returns the strategy for category and intent
func (r *Registry) For(category hub.Category, intent Intent) (Strategy, error) {
	s, ok := r.strategies[key{category.Kind, intent}]
	if !ok {
		return nil, fmt.Errorf("%w: %s for %s", ErrUnsupportedCategory, category, intent)
	}
	return s, nil
}

// Category returns the category an intent works on
func (i Intent) Category() hub.Category {
	switch i {
	case IntentNew:
		return hub.CategoryTemplate
	case IntentInstall:
		return hub.CategoryPlugin
	default:
		return hub.CategorySample
	}
}

func processError(err error) error {
	return fmt.Errorf("%w: %w", ErrExternalProcess, err)
}

func exitError(cmd string, status process.ExitStatus) error {
	return fmt.Errorf("%w: %s: %s", ErrExternalProcess, cmd, status)
}
