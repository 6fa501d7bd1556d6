//go:build !tinygo

package hal

import (
	"sync"
	"time"
)

// hostClock runs on wall time until a runner switches it to virtual time,
// where uptime only advances through step.
type hostClock struct {
	mu      sync.Mutex
	start   time.Time
	virtual bool
	now     time.Duration
}

func newHostClock() *hostClock {
	return &hostClock{start: time.Now()}
}

func (c *hostClock) Uptime() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.virtual {
		return c.now
	}
	return time.Since(c.start)
}

// useVirtual freezes the clock at zero; later readings move only with step.
func (c *hostClock) useVirtual() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.virtual = true
	c.now = 0
}

func (c *hostClock) step(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += d
}
