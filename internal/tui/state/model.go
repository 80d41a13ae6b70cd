// Package state holds the bubbletea model of the planner TUI.
package state

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tether-travel/tether/internal/airports"
	"github.com/tether-travel/tether/internal/cache"
	"github.com/tether-travel/tether/internal/domain"
	"github.com/tether-travel/tether/internal/flow"
	"github.com/tether-travel/tether/internal/logging"
	"github.com/tether-travel/tether/internal/notify"
)

const (
	defaultViewportWidth  = 80
	defaultViewportHeight = 24
	// chromeLines is the height taken by header, column titles, toast and footer.
	chromeLines = 7
)

// Services are the collaborators the model drives.
type Services struct {
	Gateway       flow.Gateway
	Caches        *cache.Set
	Airports      *airports.Table
	NotifyTimeout time.Duration
	Logger        logging.Logger
}

// Model represents the TUI model for bubbletea.
type Model struct {
	ctx      context.Context
	bus      *bus
	log      logging.Logger
	airports *airports.Table
	caches   *cache.Set
	notifier *notify.Notifier
	flows    map[domain.Domain]*flow.SearchFlow
	saver    *flow.Saver
	saved    *flow.Saved

	ui        *UIState
	principal *domain.Principal
	form      *form
	weather   *domain.WeatherReport
	toast     *domain.Notification
	spinner   spinner.Model

	savedItems   []domain.SearchResult
	loadingSaved bool
	savedFor     domain.Domain // domain of the newest saved-list load
	searching    bool
	// ops counts saves and removes that have not resolved yet.
	ops int
}

// NewModel creates the TUI model. ctx bounds every request the model makes
// and stops its event loop when done.
func NewModel(ctx context.Context, svc Services) (*Model, error) {
	if svc.Gateway == nil || svc.Caches == nil {
		return nil, errors.New("tui: gateway and caches are required")
	}
	if svc.Airports == nil {
		svc.Airports = airports.Default()
	}
	if svc.Logger == nil {
		svc.Logger = logging.GetGlobal()
	}
	log := svc.Logger.With("component", "tui")

	b := newBus(ctx)
	notifier := notify.New(notify.WithTimeout(svc.NotifyTimeout), notify.WithDisplay(b))

	flows := make(map[domain.Domain]*flow.SearchFlow, len(domain.All))
	for _, d := range domain.All {
		f, err := flow.NewSearchFlow(d, svc.Gateway, svc.Caches.For(d), notifier,
			flow.WithNavigator(b),
			flow.WithLogger(log),
		)
		if err != nil {
			return nil, err
		}
		flows[d] = f
	}

	return &Model{
		ctx:      ctx,
		bus:      b,
		log:      log,
		airports: svc.Airports,
		caches:   svc.Caches,
		notifier: notifier,
		flows:    flows,
		saver:    flow.NewSaver(svc.Gateway, notifier, log),
		saved:    flow.NewSaved(svc.Gateway, notifier, log),
		ui:       NewUIState(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
	}, nil
}

// ObservePrincipal feeds a sign-in change into the model. It is safe to
// call from any goroutine.
func (m *Model) ObservePrincipal(p *domain.Principal) {
	m.bus.principal(p)
}

// Close stops the notification timer.
func (m *Model) Close() {
	m.notifier.Close()
}

// Init initializes the TUI model.
func (m *Model) Init() tea.Cmd {
	return m.bus.wait()
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.ui.SetSize(msg.Width, msg.Height)
		m.refreshList()
		return m, nil
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refreshList()
		return m, cmd

	case toastMsg:
		n := msg.Notification
		m.toast = &n
		return m, m.bus.wait()
	case toastClearedMsg:
		if m.toast != nil && m.toast.ID == msg.Notification.ID {
			m.toast = nil
		}
		return m, m.bus.wait()
	case navigateMsg:
		m.navigate(msg.Intent)
		return m, m.bus.wait()
	case principalMsg:
		m.setPrincipal(msg.Principal)
		return m, m.bus.wait()

	case searchDoneMsg:
		m.searching = false
		return m, nil
	case saveDoneMsg:
		m.ops--
		m.refreshList()
		return m, nil
	case removeDoneMsg:
		m.ops--
		if msg.OK && m.ui.screen == screenSaved && m.ui.domain == msg.Domain {
			m.savedItems = m.saved.Without(msg.Domain, msg.ID)
			m.ui.ClampCursor(len(m.savedItems))
		}
		m.refreshList()
		return m, nil
	case savedLoadedMsg:
		if m.loadingSaved && m.savedFor == msg.Domain {
			m.loadingSaved = false
		}
		if m.ui.screen == screenSaved && m.ui.domain == msg.Domain {
			m.savedItems = msg.Items
			m.ui.ClampCursor(len(m.savedItems))
			m.refreshList()
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) busy() bool {
	return m.searching || m.ops > 0 || m.loadingSaved
}

func (m *Model) navigate(intent flow.Intent) {
	if intent.Domain == domain.Weather {
		m.weather = intent.Weather
		m.ui.Show(screenWeather, domain.Weather)
		return
	}
	m.ui.Show(screenResults, intent.Domain)
	m.refreshList()
}

func (m *Model) setPrincipal(p *domain.Principal) {
	if m.principal.Equal(p) {
		return
	}
	m.principal = p
	if p == nil && m.ui.screen == screenSaved {
		m.savedItems = nil
		m.refreshList()
	}
}
