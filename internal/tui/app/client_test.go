package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tether-travel/tether/internal/cache"
	"github.com/tether-travel/tether/internal/colors"
	"github.com/tether-travel/tether/internal/domain"
	"github.com/tether-travel/tether/internal/logging"
	"github.com/tether-travel/tether/internal/storage"
	"github.com/tether-travel/tether/internal/tui/state"
)

type fakeModel struct {
	mu       sync.Mutex
	observed []*domain.Principal
	closed   bool
}

func (m *fakeModel) Init() tea.Cmd                       { return nil }
func (m *fakeModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return m, nil }
func (m *fakeModel) View() string                        { return "" }
func (m *fakeModel) Close()                              { m.closed = true }

func (m *fakeModel) ObservePrincipal(p *domain.Principal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observed = append(m.observed, p)
}

type fakeRunner struct {
	ran  tea.Model
	err  error
	wait func()
}

func (r *fakeRunner) Run(model tea.Model) error {
	r.ran = model
	if r.wait != nil {
		r.wait()
	}
	return r.err
}

// fakeSource publishes one principal when it starts and stops with ctx.
type fakeSource struct {
	fn           func(*domain.Principal)
	started      chan struct{}
	stopped      bool
	unsubscribed bool
}

func (s *fakeSource) Subscribe(fn func(*domain.Principal)) func() {
	s.fn = fn
	return func() { s.unsubscribed = true }
}

func (s *fakeSource) Run(ctx context.Context) error {
	s.fn(&domain.Principal{UserID: "u1"})
	close(s.started)
	<-ctx.Done()
	s.stopped = true
	return nil
}

func TestRunProgramPollsWhileRunning(t *testing.T) {
	source := &fakeSource{started: make(chan struct{})}
	runner := &fakeRunner{}
	runner.wait = func() { <-source.started }
	model := &fakeModel{}

	client := NewDefaultClient(state.Services{}, source, runner)
	require.NoError(t, client.RunProgram(context.Background(), model))

	assert.Same(t, model, runner.ran)
	assert.True(t, source.stopped, "poller stops with the program")
	assert.True(t, source.unsubscribed)
	assert.True(t, model.closed)
	require.Len(t, model.observed, 1)
	assert.Equal(t, "u1", model.observed[0].UserID)
}

func TestRunProgramReportsRunnerError(t *testing.T) {
	var errOut bytes.Buffer
	colors.SetOutput(nil, &errOut)
	t.Cleanup(func() { colors.SetOutput(nil, nil) })

	runner := &fakeRunner{err: errors.New("no tty")}
	client := NewDefaultClient(state.Services{}, nil, runner)

	err := client.RunProgram(context.Background(), &fakeModel{})
	require.Error(t, err)
	assert.Contains(t, errOut.String(), "Error running TUI: no tty")
}

func TestNewDefaultClientDefaultsRunner(t *testing.T) {
	client := NewDefaultClient(state.Services{}, nil, nil)
	assert.IsType(t, &DefaultProgramRunner{}, client.programRunner)
}

func TestCreateModel(t *testing.T) {
	caches, err := cache.NewSet(storage.NewMemoryStore(), cache.WithLogger(logging.New(io.Discard, "error")))
	require.NoError(t, err)
	client := NewDefaultClient(state.Services{Caches: caches}, nil, &fakeRunner{})

	_, err = client.CreateModel(context.Background())
	assert.Error(t, err, "a gateway is required")
}
