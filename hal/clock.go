package hal

import (
	"sync"
	"time"
)

// offsetClock is a settable clock kept as an offset from a monotonic source.
type offsetClock struct {
	mu     sync.Mutex
	now    func() time.Time
	offset time.Duration
}

func (c *offsetClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now().Add(c.offset)
}

func (c *offsetClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset = t.Sub(c.now())
}

// advance moves the clock forward by d without touching the source.
func (c *offsetClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset += d
}
