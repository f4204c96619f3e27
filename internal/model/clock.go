package model

import (
	"sync"
	"time"
)

// Clock hands out move timestamps in seconds since the Unix epoch.
// Stamps from one clock never go backwards, even if the wall clock does.
type Clock struct {
	mu   sync.Mutex
	now  func() time.Time
	last float64
}

var defaultClock = NewClock()

func NewClock() *Clock {
	return NewClockFunc(time.Now)
}

// NewClockFunc builds a clock reading from now instead of the wall clock.
func NewClockFunc(now func() time.Time) *Clock {
	return &Clock{
		now: now,
	}
}

func (c *Clock) Stamp() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now()
	stamp := float64(t.UnixNano()) / float64(time.Second)
	if stamp < c.last {
		stamp = c.last
	}
	c.last = stamp
	return stamp
}
