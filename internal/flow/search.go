package flow

import (
	"context"
	"fmt"
	"sync"

	"github.com/tether-travel/tether/internal/cache"
	"github.com/tether-travel/tether/internal/domain"
	"github.com/tether-travel/tether/internal/logging"
)

// Outcome is a successful search.
type Outcome struct {
	Domain  domain.Domain
	Results []domain.SearchResult
	Weather *domain.WeatherReport
}

// SearchFlow runs the searches of one domain, one at a time.
//
// A submission moves the flow from Idle through Validating and InFlight to
// Success or Failed, and back to Idle before Submit returns. While a search
// is in flight further submissions are refused with ErrBusy.
type SearchFlow struct {
	domain    domain.Domain
	gateway   Gateway
	cache     *cache.ResultCache
	notifier  Notifier
	navigator Navigator
	validator *Validator
	log       logging.Logger

	mu           sync.Mutex
	state        State
	onTransition func(from, to State)
}

// SearchOption configures a SearchFlow.
type SearchOption func(*SearchFlow)

// WithNavigator sets who is told to show results after a success.
func WithNavigator(n Navigator) SearchOption {
	return func(f *SearchFlow) {
		f.navigator = n
	}
}

// WithValidator replaces the query validator.
func WithValidator(v *Validator) SearchOption {
	return func(f *SearchFlow) {
		f.validator = v
	}
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) SearchOption {
	return func(f *SearchFlow) {
		f.log = l
	}
}

// OnTransition registers a hook called after every state change. The hook
// runs without the flow's lock held.
func OnTransition(fn func(from, to State)) SearchOption {
	return func(f *SearchFlow) {
		f.onTransition = fn
	}
}

// NewSearchFlow creates the flow for d. rc must be the cache of d when d is
// cacheable and is ignored otherwise.
func NewSearchFlow(d domain.Domain, gw Gateway, rc *cache.ResultCache, notifier Notifier, opts ...SearchOption) (*SearchFlow, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("flow: unknown domain %q", d)
	}
	if gw == nil || notifier == nil {
		return nil, fmt.Errorf("flow: gateway and notifier are required")
	}
	if d.Cacheable() && (rc == nil || rc.Domain() != d) {
		return nil, fmt.Errorf("flow: %s search needs the %s cache", d, d)
	}
	f := &SearchFlow{
		domain:    d,
		gateway:   gw,
		cache:     rc,
		notifier:  notifier,
		validator: NewValidator(),
		log:       logging.GetGlobal(),
		state:     Idle,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.log = logging.ForOp(f.log, "search", d)
	return f, nil
}

// Domain returns the domain this flow searches.
func (f *SearchFlow) Domain() domain.Domain { return f.domain }

// State returns the current state.
func (f *SearchFlow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Busy reports whether a search is being validated or is in flight.
func (f *SearchFlow) Busy() bool {
	return f.State() != Idle
}

// CanSubmit reports whether the search trigger is enabled.
func (f *SearchFlow) CanSubmit() bool {
	return !f.Busy()
}

// Submit runs one search for p. On success the cache holds the new results
// and the navigator has been told exactly once. On failure the cache is
// untouched and exactly one error notification has been shown.
func (f *SearchFlow) Submit(ctx context.Context, p *domain.Principal, q domain.Query) (*Outcome, error) {
	if !f.begin() {
		f.log.Debug("search refused while busy")
		return nil, ErrBusy
	}

	if p == nil || p.UserID == "" {
		return nil, f.fail(&Error{Kind: KindUnauthenticated, Op: "search", Err: ErrUnauthenticated})
	}
	if q != nil && q.Domain() != f.domain {
		return nil, f.fail(&Error{Kind: KindValidation, Op: "search", Err: ErrInvalidInput, Messages: []string{msgInvalidQuery}})
	}
	if err := f.validator.Query(q); err != nil {
		f.log.Debug("search input rejected", "error", err)
		return nil, f.fail(err.(*Error))
	}

	f.transition(InFlight)
	resp := f.gateway.Search(ctx, p, q)

	if resp == nil {
		return nil, f.fail(&Error{Kind: KindTransport, Op: "search", Err: ErrNoResponse})
	}
	if !domain.IdentityMatches(resp.UserID, p.UserID) {
		f.log.Warn("search response for another user discarded", "response_user", resp.UserID)
		return nil, f.fail(&Error{Kind: KindIdentityMismatch, Op: "search", Err: ErrIdentityMismatch})
	}

	outcome := &Outcome{Domain: f.domain, Results: resp.Results, Weather: resp.Weather}
	if f.cache != nil {
		if err := f.cache.Replace(resp.Results); err != nil {
			return nil, f.fail(&Error{Kind: KindTransport, Op: "search", Err: err})
		}
		outcome.Results = f.cache.Current()
	}

	f.transition(Success)
	f.log.Info("search succeeded", "results", len(outcome.Results))
	if f.navigator != nil {
		f.navigator.Navigate(Intent{Domain: f.domain, Weather: outcome.Weather})
	}
	f.transition(Idle)
	return outcome, nil
}

// begin moves Idle to Validating atomically.
func (f *SearchFlow) begin() bool {
	f.mu.Lock()
	if f.state != Idle {
		f.mu.Unlock()
		return false
	}
	f.state = Validating
	hook := f.onTransition
	f.mu.Unlock()

	if hook != nil {
		hook(Idle, Validating)
	}
	return true
}

func (f *SearchFlow) transition(to State) {
	f.mu.Lock()
	from := f.state
	f.state = to
	hook := f.onTransition
	f.mu.Unlock()

	if hook != nil {
		hook(from, to)
	}
}

// fail records err, raises its notification and returns the flow to Idle.
func (f *SearchFlow) fail(err *Error) error {
	f.transition(Failed)
	if err.Kind != KindValidation {
		f.log.Error("search failed", "kind", err.Kind.String(), "error", err.Err)
	}
	f.notifier.Show(err.Message(), domain.KindError)
	f.transition(Idle)
	return err
}
