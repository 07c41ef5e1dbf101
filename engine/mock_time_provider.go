package engine

import (
	"sync"
	"time"
)

var _ TimeProvider = (*MockTimeProvider)(nil)

// MockTimeProvider is a manually driven clock for tests
// Time only moves through SetTime and Advance
type MockTimeProvider struct {
	mu      sync.RWMutex
	current time.Time
}

// NewMockTimeProvider creates a mock clock starting at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{current: start}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// SetTime jumps the clock to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	m.current = t
	m.mu.Unlock()
}

// Advance moves the clock forward by d and returns the new time
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
	return m.current
}
