// Package notify shows transient messages, one at a time, that clear
// themselves after a fixed delay or when dismissed.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tether-travel/tether/internal/domain"
)

// DefaultTimeout is how long a notification stays visible.
const DefaultTimeout = 3000 * time.Millisecond

// Display presents notifications. Render is called when a notification
// becomes current and Clear when it goes away, whether it expired or was
// dismissed. A superseded notification gets no Clear; the next Render
// replaces it.
type Display interface {
	Render(n domain.Notification)
	Clear(n domain.Notification)
}

// Timer is the part of *time.Timer the notifier uses.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run once after d.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Notifier holds at most one live notification and at most one live timer.
type Notifier struct {
	mu      sync.Mutex
	timeout time.Duration
	now     func() time.Time
	after   AfterFunc
	newID   func() string
	display Display

	current *domain.Notification
	timer   Timer
	// gen increases on every Show and Dismiss so that an expiry scheduled
	// for an older notification is ignored.
	gen uint64
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithTimeout sets the auto-clear delay. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(n *Notifier) {
		if d > 0 {
			n.timeout = d
		}
	}
}

// WithDisplay sets where notifications are presented.
func WithDisplay(d Display) Option {
	return func(n *Notifier) {
		n.display = d
	}
}

// WithClock replaces the time source and the timer factory.
func WithClock(now func() time.Time, after AfterFunc) Option {
	return func(n *Notifier) {
		if now != nil {
			n.now = now
		}
		if after != nil {
			n.after = after
		}
	}
}

// New creates a Notifier with nothing showing.
func New(opts ...Option) *Notifier {
	n := &Notifier{
		timeout: DefaultTimeout,
		now:     time.Now,
		after:   realAfterFunc,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Show replaces the current notification and restarts the auto-clear window.
func (n *Notifier) Show(text string, kind domain.NotificationKind) domain.Notification {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.gen++
	gen := n.gen
	note := domain.Notification{
		ID:        n.newID(),
		Text:      text,
		Kind:      kind,
		CreatedAt: n.now(),
	}
	n.current = &note
	n.timer = n.after(n.timeout, func() { n.expire(gen) })
	display := n.display
	n.mu.Unlock()

	if display != nil {
		display.Render(note)
	}
	return note
}

// Success shows a success notification.
func (n *Notifier) Success(text string) domain.Notification {
	return n.Show(text, domain.KindSuccess)
}

// Error shows an error notification.
func (n *Notifier) Error(text string) domain.Notification {
	return n.Show(text, domain.KindError)
}

// Dismiss clears the current notification immediately. It is a no-op when
// nothing is showing.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	if n.current == nil {
		n.mu.Unlock()
		return
	}
	n.gen++
	note := n.clearLocked()
	display := n.display
	n.mu.Unlock()

	if display != nil {
		display.Clear(note)
	}
}

// Current returns the notification being shown, if any.
func (n *Notifier) Current() (domain.Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return domain.Notification{}, false
	}
	return *n.current, true
}

// Close stops the pending timer without clearing the display.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.gen++
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

func (n *Notifier) expire(gen uint64) {
	n.mu.Lock()
	if gen != n.gen || n.current == nil {
		n.mu.Unlock()
		return
	}
	note := n.clearLocked()
	display := n.display
	n.mu.Unlock()

	if display != nil {
		display.Clear(note)
	}
}

func (n *Notifier) clearLocked() domain.Notification {
	note := *n.current
	n.current = nil
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	return note
}
