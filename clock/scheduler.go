// Package clock drives the animation tick from an explicit polling loop.
package clock

import "time"

// Scheduler fires fixed-period ticks. The host loop polls Due once per
// iteration; a tick that fires late reschedules from the moment it fired, so
// missed periods are never replayed.
type Scheduler struct {
	period time.Duration
	start  time.Time
	next   time.Time
	last   time.Time

	ticks        int64
	lastInterval time.Duration
}

// NewScheduler creates a scheduler whose first tick is due one period after start.
func NewScheduler(period time.Duration, start time.Time) *Scheduler {
	if period <= 0 {
		period = 30 * time.Millisecond
	}
	return &Scheduler{
		period: period,
		start:  start,
		next:   start.Add(period),
		last:   start,
	}
}

// Due reports whether a tick fires at now. At most one tick fires per call.
func (s *Scheduler) Due(now time.Time) bool {
	if now.Before(s.next) {
		return false
	}
	s.lastInterval = now.Sub(s.last)
	s.last = now
	s.next = now.Add(s.period)
	s.ticks++
	return true
}

// Elapsed returns wall-clock time since the scheduler started.
func (s *Scheduler) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.start)
}

// Until returns how long until the next tick is due (zero if overdue).
func (s *Scheduler) Until(now time.Time) time.Duration {
	d := s.next.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// Period returns the nominal tick period.
func (s *Scheduler) Period() time.Duration {
	return s.period
}

// Ticks returns the number of ticks fired so far.
func (s *Scheduler) Ticks() int64 {
	return s.ticks
}

// LastInterval returns the wall-clock gap between the two most recent ticks.
func (s *Scheduler) LastInterval() time.Duration {
	return s.lastInterval
}

// Start returns the time the scheduler was created with.
func (s *Scheduler) Start() time.Time {
	return s.start
}
