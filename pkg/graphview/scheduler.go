package graphview

import (
	"sync"
	"time"
)

// Scheduler requests a redraw once per display frame for as long as the
// visualization is alive. Stop is synchronous: once it returns, no
// further callback will run. The terminal widget uses the bubbletea tick
// as its concrete mechanism; TickerScheduler drives headless hosts and
// snapshot animation.
type Scheduler interface {
	Start(callback func(now time.Time))
	Stop()
}

// TickerScheduler drives frames from a time.Ticker
type TickerScheduler struct {
	Interval time.Duration

	mu      sync.Mutex
	running bool
	done    chan struct{}
	stopped chan struct{}
}

// NewTickerScheduler creates a scheduler at the given frame rate
func NewTickerScheduler(fps int) *TickerScheduler {
	if fps <= 0 {
		fps = 30
	}
	return &TickerScheduler{Interval: time.Second / time.Duration(fps)}
}

// Start begins invoking the callback once per interval. Starting an
// already running scheduler is a no-op.
func (s *TickerScheduler) Start(callback func(now time.Time)) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.done = make(chan struct{})
	s.stopped = make(chan struct{})
	done, stopped := s.done, s.stopped
	s.mu.Unlock()

	go func() {
		defer close(stopped)
		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case now := <-ticker.C:
				// Re-check before invoking so a queued tick cannot
				// fire after Stop returns
				select {
				case <-done:
					return
				default:
				}
				callback(now)
			}
		}
	}()
}

// Stop halts the frame loop and waits for the in-flight callback, if
// any, to finish. After Stop returns no callback executes.
func (s *TickerScheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.done)
	stopped := s.stopped
	s.mu.Unlock()
	<-stopped
}
