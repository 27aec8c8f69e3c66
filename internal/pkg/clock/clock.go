package clock

import (
	"sync"
	"time"
)

// Instants are truncated to microseconds, the precision of timestamptz, so
// a value read back from PostgreSQL equals the one that was written.
const precision = time.Microsecond

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now().UTC().Truncate(precision)
}

// MockClock is safe for concurrent use so it can back concurrency tests.
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t.UTC().Truncate(precision)}
}

func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t.UTC().Truncate(precision)
	c.mu.Unlock()
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d).Truncate(precision)
	c.mu.Unlock()
}
