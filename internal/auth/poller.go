package auth

import (
	"context"
	"sync"
	"time"

	"github.com/tether-travel/tether/internal/config"
	"github.com/tether-travel/tether/internal/domain"
	"github.com/tether-travel/tether/internal/logging"
)

// DefaultPollInterval is how often the principal is re-checked.
const DefaultPollInterval = 3 * time.Second

// Poller re-runs a Checker on an interval and publishes the result to
// subscribers. Subscribers hear about the first result and then only about
// changes.
type Poller struct {
	checker  Checker
	interval time.Duration
	tickChan <-chan time.Time
	log      logging.Logger

	mu     sync.Mutex
	latest *domain.Principal
	seen   bool
	subs   map[int]func(*domain.Principal)
	nextID int
}

// PollerOption configures a Poller.
type PollerOption func(*Poller)

// WithInterval sets the poll interval. Non-positive values are ignored.
func WithInterval(d time.Duration) PollerOption {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithTickChan drives polling from ch instead of a ticker.
func WithTickChan(ch <-chan time.Time) PollerOption {
	return func(p *Poller) {
		p.tickChan = ch
	}
}

// WithPollerLogger sets the logger.
func WithPollerLogger(l logging.Logger) PollerOption {
	return func(p *Poller) {
		p.log = l
	}
}

// NewPoller creates a poller over checker.
func NewPoller(checker Checker, opts ...PollerOption) *Poller {
	p := &Poller{
		checker:  checker,
		interval: DefaultPollInterval,
		log:      logging.GetGlobal(),
		subs:     make(map[int]func(*domain.Principal)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewPollerFromConfig creates a poller using auth_poll_interval.
func NewPollerFromConfig(checker Checker) *Poller {
	return NewPoller(checker, WithInterval(config.GetDuration("auth_poll_interval", DefaultPollInterval)))
}

// Subscribe registers fn and returns a function that removes it. A
// subscriber added after the first check is called at once with the
// latest value.
func (p *Poller) Subscribe(fn func(*domain.Principal)) (unsubscribe func()) {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subs[id] = fn
	seen, latest := p.seen, p.latest
	p.mu.Unlock()

	if seen {
		fn(latest)
	}
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subs, id)
	}
}

// Latest returns the last published principal and whether any check has
// completed yet.
func (p *Poller) Latest() (*domain.Principal, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.latest, p.seen
}

// Check runs the checker once and publishes the result.
func (p *Poller) Check(ctx context.Context) *domain.Principal {
	principal := p.checker.Principal(ctx)
	p.publish(principal)
	return principal
}

// Run checks immediately and then on every tick until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) error {
	tickChan := p.tickChan
	if tickChan == nil {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		tickChan = ticker.C
	}

	p.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-tickChan:
			if !ok {
				return nil
			}
			if ctx.Err() != nil {
				return nil
			}
			p.Check(ctx)
		}
	}
}

func (p *Poller) publish(principal *domain.Principal) {
	p.mu.Lock()
	if p.seen && p.latest.Equal(principal) {
		p.mu.Unlock()
		return
	}
	first := !p.seen
	p.seen = true
	p.latest = principal
	subs := make([]func(*domain.Principal), 0, len(p.subs))
	for _, fn := range p.subs {
		subs = append(subs, fn)
	}
	p.mu.Unlock()

	if first {
		p.log.Debug("auth: initial principal", "signed_in", principal != nil)
	} else {
		p.log.Info("auth: principal changed", "signed_in", principal != nil)
	}
	for _, fn := range subs {
		fn(principal)
	}
}
