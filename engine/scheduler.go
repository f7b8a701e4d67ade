package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/speaker-cleaner/core"
)

// TickerScheduler delivers periodic callbacks onto a Loop
type TickerScheduler struct {
	loop *Loop

	// Overridable for tests
	newTicker func(time.Duration) (<-chan time.Time, func())
}

// NewTickerScheduler creates a scheduler posting to loop
func NewTickerScheduler(loop *Loop) *TickerScheduler {
	return &TickerScheduler{
		loop: loop,
		newTicker: func(d time.Duration) (<-chan time.Time, func()) {
			t := time.NewTicker(d)
			return t.C, t.Stop
		},
	}
}

// Every starts posting fn to the loop once per interval
// The returned stop function halts the ticker goroutine before returning,
// and any tick already queued on the loop becomes a no-op
func (s *TickerScheduler) Every(interval time.Duration, fn func()) func() {
	c, stopTicker := s.newTicker(interval)

	var (
		cancelled atomic.Bool
		stopChan  = make(chan struct{})
		stopOnce  sync.Once
		wg        sync.WaitGroup
	)

	wg.Add(1)
	core.Go(func() {
		defer wg.Done()
		for {
			select {
			case <-stopChan:
				return
			case <-c:
				posted := s.loop.post(func() {
					if cancelled.Load() {
						return
					}
					fn()
				}, stopChan)
				if !posted {
					return
				}
			}
		}
	})

	return func() {
		stopOnce.Do(func() {
			cancelled.Store(true)
			stopTicker()
			close(stopChan)
			wg.Wait()
		})
	}
}

// ManualScheduler is a Scheduler driven explicitly by tests
type ManualScheduler struct {
	mu       sync.Mutex
	fn       func()
	interval time.Duration
	active   bool
	starts   int
	stops    int
}

// NewManualScheduler creates an idle manual scheduler
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Every records fn as the active schedule, replacing any previous one
func (m *ManualScheduler) Every(interval time.Duration, fn func()) func() {
	m.mu.Lock()
	m.fn = fn
	m.interval = interval
	m.active = true
	m.starts++
	gen := m.starts
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.stops++
			if m.starts == gen {
				m.active = false
				m.fn = nil
			}
		})
	}
}

// Fire invokes the active schedule once, reporting whether anything ran
func (m *ManualScheduler) Fire() bool {
	m.mu.Lock()
	fn := m.fn
	active := m.active
	m.mu.Unlock()

	if !active || fn == nil {
		return false
	}
	fn()
	return true
}

// Active reports whether a schedule is running
func (m *ManualScheduler) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Interval returns the last scheduled interval
func (m *ManualScheduler) Interval() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.interval
}

// Starts returns how many schedules were created
func (m *ManualScheduler) Starts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.starts
}

// Stops returns how many schedules were stopped
func (m *ManualScheduler) Stops() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stops
}
