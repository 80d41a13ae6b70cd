// Package cache holds the most recent search results of each cacheable domain
// and mirrors them to a persistent store so they survive restarts.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/tether-travel/tether/internal/domain"
	"github.com/tether-travel/tether/internal/logging"
	"github.com/tether-travel/tether/internal/storage"
)

// ErrInvalidItem is returned by Replace when an item is not valid JSON.
var ErrInvalidItem = errors.New("cache: item is not valid JSON")

// ResultCache is the single owner of one domain's storage key.
//
// The in-memory sequence is authoritative for the session; the store is a
// best-effort mirror written synchronously on every Replace.
type ResultCache struct {
	mu     sync.RWMutex
	store  storage.Store
	domain domain.Domain
	key    string
	state  domain.CacheState
	logger logging.Logger
}

// Option configures a ResultCache.
type Option func(*ResultCache)

// WithLogger sets the logger used for persistence warnings.
func WithLogger(l logging.Logger) Option {
	return func(c *ResultCache) {
		c.logger = l
	}
}

// WithKey overrides the storage key, which defaults to the domain's key.
func WithKey(key string) Option {
	return func(c *ResultCache) {
		c.key = key
	}
}

// New creates the cache for d and loads its last persisted sequence.
func New(store storage.Store, d domain.Domain, opts ...Option) (*ResultCache, error) {
	if store == nil {
		return nil, errors.New("cache: store cannot be nil")
	}
	if !d.Cacheable() {
		return nil, fmt.Errorf("cache: %s results are not cacheable", d)
	}
	c := &ResultCache{
		store:  store,
		domain: d,
		key:    d.StorageKey(),
		logger: logging.GetGlobal(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.state = c.initialize()
	return c, nil
}

// initialize loads the persisted sequence. Absent or unreadable state yields
// an empty sequence; it is never an error.
func (c *ResultCache) initialize() domain.CacheState {
	st := domain.CacheState{Domain: c.domain, Items: []domain.SearchResult{}}
	raw, ok := c.store.Get(c.key)
	if !ok {
		return st
	}
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		c.logger.Warn("cache: discarding unreadable persisted results", "cache", c.key, "error", err)
		return st
	}
	for _, item := range items {
		if item == nil {
			continue
		}
		st.Items = append(st.Items, item)
	}
	return st
}

// Replace swaps the whole sequence and persists it under the cache key.
// A persistence failure is logged and swallowed; the in-memory sequence is
// updated regardless.
func (c *ResultCache) Replace(items []domain.SearchResult) error {
	next := make([]domain.SearchResult, len(items))
	for i, item := range items {
		if !json.Valid(item) {
			return fmt.Errorf("%w: index %d", ErrInvalidItem, i)
		}
		next[i] = append(domain.SearchResult(nil), item...)
	}

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", c.key, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Items = next
	if err := c.store.Set(c.key, string(data)); err != nil {
		c.logger.Warn("cache: failed to persist results", "cache", c.key, "items", len(next), "error", err)
	}
	return nil
}

// Current returns a copy of the live sequence, in insertion order.
func (c *ResultCache) Current() []domain.SearchResult {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.SearchResult, len(c.state.Items))
	copy(out, c.state.Items)
	return out
}

// State returns a snapshot of the domain and its sequence. The snapshot
// does not change when the cache is replaced afterwards.
func (c *ResultCache) State() domain.CacheState {
	return domain.CacheState{Domain: c.domain, Items: c.Current()}
}

// At returns the item at index i.
func (c *ResultCache) At(i int) (domain.SearchResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i < 0 || i >= len(c.state.Items) {
		return nil, false
	}
	return c.state.Items[i], true
}

// Len returns the number of cached items.
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.state.Items)
}

// Domain returns the domain this cache serves.
func (c *ResultCache) Domain() domain.Domain { return c.domain }

// Key returns the storage key this cache owns.
func (c *ResultCache) Key() string { return c.key }

// Set groups the caches of every cacheable domain. It is the value handed to
// flows and views instead of package-level state.
type Set struct {
	Flights   *ResultCache
	Itinerary *ResultCache
}

// NewSet creates and initializes one cache per cacheable domain.
func NewSet(store storage.Store, opts ...Option) (*Set, error) {
	flights, err := New(store, domain.Flights, opts...)
	if err != nil {
		return nil, err
	}
	itinerary, err := New(store, domain.Itinerary, opts...)
	if err != nil {
		return nil, err
	}
	return &Set{Flights: flights, Itinerary: itinerary}, nil
}

// For returns the cache of d, or nil when d is not cacheable.
func (s *Set) For(d domain.Domain) *ResultCache {
	if s == nil {
		return nil
	}
	switch d {
	case domain.Flights:
		return s.Flights
	case domain.Itinerary:
		return s.Itinerary
	default:
		return nil
	}
}
