// Package app provides TUI application adapters for command wiring.
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tether-travel/tether/internal/domain"
)

// ProgramRunner defines the interface for running a bubbletea program.
// This abstraction allows for easier testing and swapping of implementations.
type ProgramRunner interface {
	// Run starts the bubbletea program with the given model.
	Run(model tea.Model) error
}

// DefaultProgramRunner is the default implementation of ProgramRunner
// that wraps tea.NewProgram with standard options.
type DefaultProgramRunner struct{}

// NewDefaultProgramRunner creates a new DefaultProgramRunner.
func NewDefaultProgramRunner() *DefaultProgramRunner {
	return &DefaultProgramRunner{}
}

// Run starts a bubbletea program with the given model on the alternate screen.
func (r *DefaultProgramRunner) Run(model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// PrincipalSource reports sign-in changes. *auth.Poller implements it.
type PrincipalSource interface {
	// Subscribe registers fn for every change and returns its cancel func.
	Subscribe(fn func(*domain.Principal)) (unsubscribe func())
	// Run polls until ctx is done.
	Run(ctx context.Context) error
}
