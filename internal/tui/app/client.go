package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tether-travel/tether/internal/colors"
	"github.com/tether-travel/tether/internal/domain"
	"github.com/tether-travel/tether/internal/tui/state"
	"golang.org/x/sync/errgroup"
)

// Model defines the narrow TUI model surface used by command wiring.
type Model interface {
	tea.Model
	ObservePrincipal(p *domain.Principal)
	Close()
}

// Client defines dependencies needed by the tui command.
type Client interface {
	CreateModel(ctx context.Context) (Model, error)
	RunProgram(ctx context.Context, model Model) error
}

// DefaultClient is the default adapter-based implementation used by CLI wiring.
type DefaultClient struct {
	services      state.Services
	principals    PrincipalSource
	programRunner ProgramRunner
}

// NewDefaultClient creates a default TUI client adapter.
// If programRunner is nil, a DefaultProgramRunner will be used.
// A nil principals source leaves the model signed out.
func NewDefaultClient(services state.Services, principals PrincipalSource, programRunner ProgramRunner) *DefaultClient {
	if programRunner == nil {
		programRunner = NewDefaultProgramRunner()
	}
	return &DefaultClient{
		services:      services,
		principals:    principals,
		programRunner: programRunner,
	}
}

// CreateModel builds a TUI model implementation.
func (d *DefaultClient) CreateModel(ctx context.Context) (Model, error) {
	return state.NewModel(ctx, d.services)
}

// RunProgram starts the bubbletea program using the configured ProgramRunner.
// The sign-in poller runs alongside it and is stopped when the program exits.
func (d *DefaultClient) RunProgram(ctx context.Context, model Model) error {
	defer model.Close()

	pollCtx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(pollCtx)
	if d.principals != nil {
		unsubscribe := d.principals.Subscribe(model.ObservePrincipal)
		defer unsubscribe()
		g.Go(func() error {
			return d.principals.Run(gctx)
		})
	}

	err := d.programRunner.Run(model)
	cancel()
	if waitErr := g.Wait(); waitErr != nil && err == nil {
		err = waitErr
	}
	if err != nil {
		colors.Error(fmt.Sprintf("Error running TUI: %v", err))
		return err
	}
	return nil
}
