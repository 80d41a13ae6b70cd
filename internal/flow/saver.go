package flow

import (
	"context"
	"strings"
	"sync"

	"github.com/tether-travel/tether/internal/domain"
	"github.com/tether-travel/tether/internal/logging"
)

// Saver saves search results to the user's account and removes saved
// items. Each item has its own pending flag so a view can show a spinner on
// the row being processed while other rows stay usable.
type Saver struct {
	gateway  Gateway
	notifier Notifier
	log      logging.Logger

	mu      sync.Mutex
	pending map[string]bool
}

// NewSaver creates a Saver.
func NewSaver(gw Gateway, notifier Notifier, log logging.Logger) *Saver {
	if log == nil {
		log = logging.GetGlobal()
	}
	return &Saver{
		gateway:  gw,
		notifier: notifier,
		log:      log,
		pending:  make(map[string]bool),
	}
}

// Save stores item in the saved list of d. It reports whether the gateway
// acknowledged the save for p. A second Save of an item that is still
// pending is ignored and reports false.
func (s *Saver) Save(ctx context.Context, p *domain.Principal, d domain.Domain, item domain.SearchResult) bool {
	if !d.Savable() {
		s.notifier.Show(msgUnsupportedItem, domain.KindError)
		return false
	}
	key := pendingKey(d, item)
	if !s.acquire(key) {
		return false
	}
	defer s.release(key)

	noun := capitalize(d.Noun())
	if p == nil || p.UserID == "" {
		s.notifier.Show(msgSignInRequired, domain.KindError)
		return false
	}
	ack := s.gateway.Save(ctx, p, d, item)
	if ack == nil || !domain.IdentityMatches(ack.UserID, p.UserID) {
		logging.ForOp(s.log, "save", d).Error("save failed", "acknowledged", ack != nil)
		s.notifier.Show("Error saving "+d.Noun()+".", domain.KindError)
		return false
	}
	s.notifier.Show(noun+" saved successfully!", domain.KindSuccess)
	return true
}

// Remove deletes the saved item itemID from d and reports whether the
// gateway acknowledged it for p.
func (s *Saver) Remove(ctx context.Context, p *domain.Principal, d domain.Domain, itemID string) bool {
	if !d.Savable() || itemID == "" {
		s.notifier.Show("Error removing "+d.Noun()+".", domain.KindError)
		return false
	}
	key := string(d) + ":" + itemID
	if !s.acquire(key) {
		return false
	}
	defer s.release(key)

	if p == nil || p.UserID == "" {
		s.notifier.Show(msgSignInRequired, domain.KindError)
		return false
	}
	ack := s.gateway.Remove(ctx, p, d, itemID)
	if ack == nil || !domain.IdentityMatches(ack.UserID, p.UserID) {
		logging.ForOp(s.log, "remove", d).Error("remove failed", logging.FieldItemID, itemID, "acknowledged", ack != nil)
		s.notifier.Show("Error removing "+d.Noun()+".", domain.KindError)
		return false
	}
	s.notifier.Show(capitalize(d.Noun())+" removed successfully!", domain.KindSuccess)
	return true
}

// Pending reports whether the item with id is being saved or removed in d.
func (s *Saver) Pending(d domain.Domain, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending[string(d)+":"+id]
}

// AnyPending reports whether any save or remove is in progress.
func (s *Saver) AnyPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending) > 0
}

func (s *Saver) acquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending[key] {
		return false
	}
	s.pending[key] = true
	return true
}

func (s *Saver) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, key)
}

// pendingKey identifies item by its id, or by its bytes when it has none.
func pendingKey(d domain.Domain, item domain.SearchResult) string {
	if id, err := domain.ItemID(d, item); err == nil {
		return string(d) + ":" + id
	}
	return string(d) + ":" + string(item)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
