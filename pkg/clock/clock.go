// Package clock provides the time source used for calendar-day rollover.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System is the wall clock in the local time zone.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

type FakeClock struct {
	now time.Time
}

func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{now: t}
}

func (c *FakeClock) Now() time.Time {
	return c.now
}

func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func (c *FakeClock) Set(t time.Time) {
	c.now = t
}
