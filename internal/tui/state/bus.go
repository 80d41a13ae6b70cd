package state

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tether-travel/tether/internal/domain"
	"github.com/tether-travel/tether/internal/flow"
)

const busSize = 64

// bus carries events raised outside the bubbletea loop into it. It is the
// notifier's display, the search flows' navigator and the poller's
// subscriber at once.
type bus struct {
	ctx context.Context
	ch  chan tea.Msg
}

func newBus(ctx context.Context) *bus {
	return &bus{ctx: ctx, ch: make(chan tea.Msg, busSize)}
}

// post blocks until the loop takes msg or the program is gone.
func (b *bus) post(msg tea.Msg) {
	select {
	case b.ch <- msg:
	case <-b.ctx.Done():
	}
}

// offer is post for callers that may be the loop itself, which must never
// wait on its own queue. When the queue is full the send moves to a
// goroutine.
func (b *bus) offer(msg tea.Msg) {
	select {
	case b.ch <- msg:
	default:
		go b.post(msg)
	}
}

// wait returns a command delivering the next event.
func (b *bus) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.ch:
			return msg
		case <-b.ctx.Done():
			return nil
		}
	}
}

func (b *bus) Render(n domain.Notification) { b.post(toastMsg{Notification: n}) }

// Clear is reached from the loop when the user dismisses a toast.
func (b *bus) Clear(n domain.Notification) { b.offer(toastClearedMsg{Notification: n}) }

func (b *bus) Navigate(intent flow.Intent) { b.post(navigateMsg{Intent: intent}) }

func (b *bus) principal(p *domain.Principal) { b.post(principalMsg{Principal: p}) }
