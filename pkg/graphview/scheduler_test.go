package graphview

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTickerSchedulerDelivers(t *testing.T) {
	s := NewTickerScheduler(200)
	fired := make(chan time.Time, 1)

	s.Start(func(now time.Time) {
		select {
		case fired <- now:
		default:
		}
	})
	defer s.Stop()

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("no frame callback within a second")
	}
}

func TestTickerSchedulerStopIsFinal(t *testing.T) {
	s := NewTickerScheduler(500)
	var count atomic.Int64

	s.Start(func(time.Time) { count.Add(1) })
	time.Sleep(20 * time.Millisecond)
	s.Stop()

	after := count.Load()
	time.Sleep(30 * time.Millisecond)
	if got := count.Load(); got != after {
		t.Errorf("callback ran %d more times after Stop returned", got-after)
	}
}

func TestTickerSchedulerRestart(t *testing.T) {
	s := NewTickerScheduler(500)
	var count atomic.Int64

	s.Start(func(time.Time) { count.Add(1) })
	s.Stop()
	frozen := count.Load()

	s.Start(func(time.Time) { count.Add(1) })
	defer s.Stop()

	deadline := time.After(time.Second)
	for count.Load() == frozen {
		select {
		case <-deadline:
			t.Fatal("restarted scheduler never fired")
		case <-time.After(time.Millisecond):
		}
	}
}

func TestTickerSchedulerDoubleStart(t *testing.T) {
	s := NewTickerScheduler(500)
	var first, second atomic.Int64

	s.Start(func(time.Time) { first.Add(1) })
	s.Start(func(time.Time) { second.Add(1) })
	time.Sleep(20 * time.Millisecond)
	s.Stop()

	if second.Load() != 0 {
		t.Error("second Start must not replace a running callback")
	}
}

func TestTickerSchedulerStopIdempotent(t *testing.T) {
	s := NewTickerScheduler(500)
	s.Stop() // never started

	s.Start(func(time.Time) {})
	s.Stop()
	s.Stop()
}

func TestNewTickerSchedulerClampsRate(t *testing.T) {
	s := NewTickerScheduler(0)
	if s.Interval <= 0 {
		t.Errorf("Interval = %v, want a positive fallback", s.Interval)
	}
}
