package casino

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/repository"
)

// MockPublisher records published events
type MockPublisher struct {
	mock.Mock
	mu     sync.Mutex
	events []event.Event
}

func (m *MockPublisher) PublishWithRetry(ctx context.Context, evt event.Event) {
	m.Called(ctx, evt)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, evt)
}

func (m *MockPublisher) Events() []event.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]event.Event(nil), m.events...)
}

// MockStore wraps a real store so single calls can be made to fail
type MockStore struct {
	repository.Store
	mock.Mock
}

func (m *MockStore) BeginTx(ctx context.Context, userIDs ...string) (repository.Tx, error) {
	args := m.Called(ctx, userIDs)
	if err := args.Error(0); err != nil {
		return nil, err
	}
	return m.Store.BeginTx(ctx, userIDs...)
}
