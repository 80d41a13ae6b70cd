package main

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tether-travel/tether/cmd"
	"github.com/tether-travel/tether/internal/airports"
	"github.com/tether-travel/tether/internal/auth"
	"github.com/tether-travel/tether/internal/cache"
	"github.com/tether-travel/tether/internal/config"
	"github.com/tether-travel/tether/internal/domain"
	"github.com/tether-travel/tether/internal/flow"
	"github.com/tether-travel/tether/internal/gateway"
	"github.com/tether-travel/tether/internal/logging"
	"github.com/tether-travel/tether/internal/notify"
	"github.com/tether-travel/tether/internal/storage"
	"github.com/tether-travel/tether/internal/tui/app"
	"github.com/tether-travel/tether/internal/tui/state"
	"github.com/tether-travel/tether/internal/version"
)

// planner holds the collaborators every subcommand shares. It is built on
// first use so that the root command has loaded configuration by then.
type planner struct {
	once sync.Once
	err  error

	log      logging.Logger
	store    storage.Store
	caches   *cache.Set
	gateway  *gateway.Client
	checker  auth.Checker
	table    *airports.Table
	notifier *notify.Notifier
	flows    map[domain.Domain]*flow.SearchFlow
	saver    *flow.Saver
	saved    *flow.Saved
}

var plannerApp = &planner{}

func (p *planner) init() error {
	p.once.Do(func() { p.err = p.build() })
	return p.err
}

func (p *planner) build() error {
	p.log = logging.With("component", "cli")

	store, err := storage.NewFromConfig()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	p.store = store

	p.caches, err = cache.NewSet(store, cache.WithLogger(p.log))
	if err != nil {
		return fmt.Errorf("load cached results: %w", err)
	}

	p.table, err = airports.LoadFromConfig()
	if err != nil {
		return fmt.Errorf("load city table: %w", err)
	}

	p.gateway = gateway.New(gateway.ConfigFromGlobal(), gateway.WithLogger(p.log))
	p.checker = auth.CheckerFromConfig()
	p.notifier = notify.New(notify.WithDisplay(notify.NewConsoleDisplay(nil)))

	p.flows = make(map[domain.Domain]*flow.SearchFlow, len(domain.All))
	for _, d := range domain.All {
		f, err := flow.NewSearchFlow(d, p.gateway, p.caches.For(d), p.notifier, flow.WithLogger(p.log))
		if err != nil {
			return err
		}
		p.flows[d] = f
	}
	p.saver = flow.NewSaver(p.gateway, p.notifier, p.log)
	p.saved = flow.NewSaved(p.gateway, p.notifier, p.log)
	return nil
}

// Close releases the store and the notifier timer. Safe to call when the
// planner was never built.
func (p *planner) Close() error {
	if p.notifier != nil {
		p.notifier.Close()
	}
	if p.store != nil {
		return p.store.Close()
	}
	return nil
}

func (p *planner) principal(ctx context.Context) *domain.Principal {
	return p.checker.Principal(ctx)
}

// reported wraps a failure the notifier has already shown.
func reported(err error) error {
	return fmt.Errorf("%w: %w", cmd.ErrReported, err)
}

func (p *planner) Search(ctx context.Context, q domain.Query) (*flow.Outcome, error) {
	if err := p.init(); err != nil {
		return nil, err
	}
	if q == nil {
		return nil, errors.New("search: no query")
	}
	outcome, err := p.flows[q.Domain()].Submit(ctx, p.principal(ctx), q)
	if err != nil {
		return nil, reported(err)
	}
	return outcome, nil
}

func (p *planner) Airports() (*airports.Table, error) {
	if err := p.init(); err != nil {
		return nil, err
	}
	return p.table, nil
}

func (p *planner) Options(query string) ([]domain.AirportOption, error) {
	table, err := p.Airports()
	if err != nil {
		return nil, err
	}
	return table.Options(query), nil
}

func (p *planner) Results(d domain.Domain) ([]domain.SearchResult, error) {
	if err := p.init(); err != nil {
		return nil, err
	}
	rc := p.caches.For(d)
	if rc == nil {
		return nil, fmt.Errorf("%s results are not kept", d)
	}
	return rc.State().Items, nil
}

func (p *planner) Save(ctx context.Context, d domain.Domain, index int) error {
	if err := p.init(); err != nil {
		return err
	}
	rc := p.caches.For(d)
	if rc == nil {
		return fmt.Errorf("%s results cannot be saved", d)
	}
	item, ok := rc.At(index - 1)
	if !ok {
		return fmt.Errorf("no %s result at position %d (have %d)", d.Noun(), index, rc.Len())
	}
	if !p.saver.Save(ctx, p.principal(ctx), d, item) {
		return reported(fmt.Errorf("save %s %d", d, index))
	}
	return nil
}

func (p *planner) Remove(ctx context.Context, d domain.Domain, id string) error {
	if err := p.init(); err != nil {
		return err
	}
	if !p.saver.Remove(ctx, p.principal(ctx), d, id) {
		return reported(fmt.Errorf("remove %s %s", d, id))
	}
	return nil
}

func (p *planner) Saved(ctx context.Context, d domain.Domain) ([]domain.SearchResult, error) {
	if err := p.init(); err != nil {
		return nil, err
	}
	items, err := p.saved.Load(ctx, p.principal(ctx), d)
	if err != nil {
		return nil, reported(err)
	}
	return items, nil
}

func (p *planner) SavedAll(ctx context.Context) (map[domain.Domain][]domain.SearchResult, error) {
	if err := p.init(); err != nil {
		return nil, err
	}
	all, err := p.saved.LoadAll(ctx, p.principal(ctx))
	if err != nil {
		return all, reported(err)
	}
	return all, nil
}

func (p *planner) Principal(ctx context.Context) (*domain.Principal, error) {
	if err := p.init(); err != nil {
		return nil, err
	}
	return p.principal(ctx), nil
}

func (p *planner) Version() string {
	return version.String()
}

// CreateModel builds the interactive model over the shared collaborators.
func (p *planner) CreateModel(ctx context.Context) (app.Model, error) {
	client, err := p.tuiClient()
	if err != nil {
		return nil, err
	}
	return client.CreateModel(ctx)
}

// RunProgram runs model with the sign-in poller alongside it.
func (p *planner) RunProgram(ctx context.Context, model app.Model) error {
	client, err := p.tuiClient()
	if err != nil {
		return err
	}
	return client.RunProgram(ctx, model)
}

func (p *planner) tuiClient() (*app.DefaultClient, error) {
	if err := p.init(); err != nil {
		return nil, err
	}
	services := state.Services{
		Gateway:       p.gateway,
		Caches:        p.caches,
		Airports:      p.table,
		NotifyTimeout: config.GetDuration("notification_timeout", notify.DefaultTimeout),
		Logger:        logging.With("component", "tui"),
	}
	return app.NewDefaultClient(services, auth.NewPollerFromConfig(p.checker), nil), nil
}
