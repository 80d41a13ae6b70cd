package flow

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
	"github.com/tether-travel/tether/internal/domain"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) Search(ctx context.Context, p *domain.Principal, q domain.Query) *domain.SearchResponse {
	args := m.Called(ctx, p, q)
	resp, _ := args.Get(0).(*domain.SearchResponse)
	return resp
}

func (m *mockGateway) Save(ctx context.Context, p *domain.Principal, d domain.Domain, item domain.SearchResult) *domain.Ack {
	args := m.Called(ctx, p, d, item)
	ack, _ := args.Get(0).(*domain.Ack)
	return ack
}

func (m *mockGateway) Retrieve(ctx context.Context, p *domain.Principal, d domain.Domain) *domain.RetrieveResponse {
	args := m.Called(ctx, p, d)
	resp, _ := args.Get(0).(*domain.RetrieveResponse)
	return resp
}

func (m *mockGateway) Remove(ctx context.Context, p *domain.Principal, d domain.Domain, itemID string) *domain.Ack {
	args := m.Called(ctx, p, d, itemID)
	ack, _ := args.Get(0).(*domain.Ack)
	return ack
}

type recordingNotifier struct {
	mu    sync.Mutex
	shown []domain.Notification
}

func (r *recordingNotifier) Show(text string, kind domain.NotificationKind) domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := domain.Notification{Text: text, Kind: kind}
	r.shown = append(r.shown, n)
	return n
}

func (r *recordingNotifier) all() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Notification(nil), r.shown...)
}

func (r *recordingNotifier) ofKind(kind domain.NotificationKind) []domain.Notification {
	var out []domain.Notification
	for _, n := range r.all() {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}
