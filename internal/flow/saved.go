package flow

import (
	"context"
	"sync"

	"github.com/tether-travel/tether/internal/domain"
	"github.com/tether-travel/tether/internal/logging"
	"golang.org/x/sync/errgroup"
)

// Saved holds the saved lists of the signed-in user.
type Saved struct {
	gateway  Gateway
	notifier Notifier
	log      logging.Logger

	mu    sync.Mutex
	items map[domain.Domain][]domain.SearchResult
}

// NewSaved creates an empty Saved.
func NewSaved(gw Gateway, notifier Notifier, log logging.Logger) *Saved {
	if log == nil {
		log = logging.GetGlobal()
	}
	return &Saved{
		gateway:  gw,
		notifier: notifier,
		log:      log,
		items:    make(map[domain.Domain][]domain.SearchResult),
	}
}

// Load fetches the saved list of d for p. On any failure the held list
// becomes empty, an error notification is shown and a *Error is returned.
func (s *Saved) Load(ctx context.Context, p *domain.Principal, d domain.Domain) ([]domain.SearchResult, error) {
	if p == nil || p.UserID == "" {
		s.set(d, nil)
		err := &Error{Kind: KindUnauthenticated, Op: "retrieve", Err: ErrUnauthenticated}
		s.notifier.Show(err.Message(), domain.KindError)
		return []domain.SearchResult{}, err
	}

	resp := s.gateway.Retrieve(ctx, p, d)
	var fail *Error
	switch {
	case resp == nil:
		fail = &Error{Kind: KindTransport, Op: "retrieve", Err: ErrNoResponse}
	case !domain.IdentityMatches(resp.UserID, p.UserID):
		fail = &Error{Kind: KindIdentityMismatch, Op: "retrieve", Err: ErrIdentityMismatch}
	}
	if fail != nil {
		logging.ForOp(s.log, "retrieve", d).Error("retrieve failed", "kind", fail.Kind.String())
		s.set(d, nil)
		s.notifier.Show("Error retrieving saved "+string(d)+".", domain.KindError)
		return []domain.SearchResult{}, fail
	}

	s.set(d, resp.Items)
	return s.Items(d), nil
}

// LoadAll loads every savable domain concurrently. The returned map always
// has an entry per domain; the error is the first failure, if any.
func (s *Saved) LoadAll(ctx context.Context, p *domain.Principal) (map[domain.Domain][]domain.SearchResult, error) {
	var savable []domain.Domain
	for _, d := range domain.All {
		if d.Savable() {
			savable = append(savable, d)
		}
	}

	results := make([][]domain.SearchResult, len(savable))
	var g errgroup.Group
	for i, d := range savable {
		g.Go(func() error {
			items, err := s.Load(ctx, p, d)
			results[i] = items
			return err
		})
	}
	err := g.Wait()

	out := make(map[domain.Domain][]domain.SearchResult, len(savable))
	for i, d := range savable {
		out[d] = results[i]
	}
	return out, err
}

// Items returns a copy of the held list of d.
func (s *Saved) Items(d domain.Domain) []domain.SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.SearchResult, len(s.items[d]))
	copy(out, s.items[d])
	return out
}

// Without drops the item with id from the held list of d and returns the
// remaining items in order.
func (s *Saved) Without(d domain.Domain, id string) []domain.SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]domain.SearchResult, 0, len(s.items[d]))
	for _, item := range s.items[d] {
		if itemID, err := domain.ItemID(d, item); err == nil && itemID == id {
			continue
		}
		kept = append(kept, item)
	}
	s.items[d] = kept
	out := make([]domain.SearchResult, len(kept))
	copy(out, kept)
	return out
}

func (s *Saved) set(d domain.Domain, items []domain.SearchResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if items == nil {
		items = []domain.SearchResult{}
	}
	s.items[d] = items
}
