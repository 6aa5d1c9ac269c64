// Package clock provides the time source used by the simulation and a
// scheduler for one-shot deadlines that are drained from the frame loop.
package clock

import (
	"sync"
	"time"
)

// Clock is a monotonic time source
type Clock interface {
	Now() time.Time
}

// Real provides the system time with monotonic clock readings
type Real struct{}

// NewReal creates a clock backed by time.Now
func NewReal() *Real {
	return &Real{}
}

// Now returns the current time
func (Real) Now() time.Time {
	return time.Now()
}

// Mock is a controllable clock for tests and headless replays
type Mock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMock creates a mock clock starting at the given time
func NewMock(start time.Time) *Mock {
	return &Mock{currentTime: start}
}

// Now returns the current mocked time
func (m *Mock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time
func (m *Mock) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the clock forward by d
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
