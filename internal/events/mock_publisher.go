package events

import (
	"context"
	"sync"
)

// MockPublisher records published events for tests.
type MockPublisher struct {
	mu     sync.Mutex
	events []ReservationConfirmedEvent
	Err    error
}

func (m *MockPublisher) PublishReservationConfirmed(_ context.Context, event ReservationConfirmedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	m.events = append(m.events, event)

	return nil
}

func (m *MockPublisher) Close() error {
	return nil
}

func (m *MockPublisher) Events() []ReservationConfirmedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()

	events := make([]ReservationConfirmedEvent, len(m.events))
	copy(events, m.events)

	return events
}

func (m *MockPublisher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events = nil
}
