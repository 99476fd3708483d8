package clock

import (
	"testing"
	"time"
)

func TestSchedulerFiresOncePerPeriod(t *testing.T) {
	start := time.Unix(1000, 0)
	s := NewScheduler(30*time.Millisecond, start)

	if s.Due(start) {
		t.Error("expected no tick at start")
	}
	if s.Due(start.Add(29 * time.Millisecond)) {
		t.Error("expected no tick before the first period")
	}
	if !s.Due(start.Add(30 * time.Millisecond)) {
		t.Fatal("expected tick at the first deadline")
	}
	if s.Due(start.Add(30 * time.Millisecond)) {
		t.Error("expected a deadline to fire only once")
	}
	if !s.Due(start.Add(60 * time.Millisecond)) {
		t.Error("expected second tick one period later")
	}
	if s.Ticks() != 2 {
		t.Errorf("expected 2 ticks, got %d", s.Ticks())
	}
}

func TestSchedulerNoCatchUp(t *testing.T) {
	start := time.Unix(1000, 0)
	s := NewScheduler(30*time.Millisecond, start)

	// A stall of several periods yields a single late tick
	late := start.Add(200 * time.Millisecond)
	if !s.Due(late) {
		t.Fatal("expected overdue tick to fire")
	}
	if s.Due(late) || s.Due(late.Add(29*time.Millisecond)) {
		t.Error("expected missed periods not to be replayed")
	}
	if !s.Due(late.Add(30 * time.Millisecond)) {
		t.Error("expected next tick one period after the late one")
	}
	if s.LastInterval() != 30*time.Millisecond {
		t.Errorf("expected last interval 30ms, got %s", s.LastInterval())
	}
	if s.Ticks() != 2 {
		t.Errorf("expected 2 ticks, got %d", s.Ticks())
	}
}

func TestSchedulerElapsedAndUntil(t *testing.T) {
	start := time.Unix(1000, 0)
	s := NewScheduler(30*time.Millisecond, start)

	now := start.Add(1500 * time.Millisecond)
	if got := s.Elapsed(now); got != 1500*time.Millisecond {
		t.Errorf("expected 1.5s elapsed, got %s", got)
	}
	if got := s.Until(start.Add(10 * time.Millisecond)); got != 20*time.Millisecond {
		t.Errorf("expected 20ms until tick, got %s", got)
	}
	if got := s.Until(now); got != 0 {
		t.Errorf("expected overdue tick to report zero wait, got %s", got)
	}
}

func TestSchedulerDefaultPeriod(t *testing.T) {
	s := NewScheduler(0, time.Unix(0, 0))
	if s.Period() != 30*time.Millisecond {
		t.Errorf("expected default 30ms period, got %s", s.Period())
	}
}
