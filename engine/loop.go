// Package engine provides the single event loop that owns session state
// and the schedulers that feed it
package engine

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/speaker-cleaner/core"
)

// DefaultInboxSize bounds pending work posted to a Loop
const DefaultInboxSize = 64

// Loop executes posted functions one at a time on a dedicated goroutine
// Everything that touches the session controller runs here
type Loop struct {
	inbox chan func()

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	executed atomic.Uint64
}

// NewLoop creates a stopped loop with the given inbox capacity
func NewLoop(size int) *Loop {
	if size <= 0 {
		size = DefaultInboxSize
	}
	return &Loop{
		inbox:    make(chan func(), size),
		stopChan: make(chan struct{}),
	}
}

// Start launches the loop goroutine
func (l *Loop) Start() {
	if l.running.CompareAndSwap(false, true) {
		l.wg.Add(1)
		core.Go(l.run)
	}
}

// Stop halts the loop; pending work is discarded
// Safe to call multiple times
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
		if l.running.CompareAndSwap(true, false) {
			l.wg.Wait()
		}
	})
}

// Post queues fn for execution, blocking while the inbox is full
// Returns false if the loop has been stopped
func (l *Loop) Post(fn func()) bool {
	return l.post(fn, nil)
}

// post is Post with an extra abort channel for producers that may be
// stopped from the loop goroutine itself
func (l *Loop) post(fn func(), abort <-chan struct{}) bool {
	select {
	case <-l.stopChan:
		return false
	default:
	}

	select {
	case l.inbox <- fn:
		return true
	case <-l.stopChan:
		return false
	case <-abort:
		return false
	}
}

// Do queues fn and waits until it has run
// Returns false if the loop stopped before fn executed
// Must not be called from the loop goroutine
func (l *Loop) Do(fn func()) bool {
	done := make(chan struct{})
	if !l.Post(func() {
		defer close(done)
		fn()
	}) {
		return false
	}

	select {
	case <-done:
		return true
	case <-l.stopChan:
		// fn may have been picked up just before stop
		select {
		case <-done:
			return true
		default:
			return false
		}
	}
}

// Executed returns the number of functions run so far
func (l *Loop) Executed() uint64 {
	return l.executed.Load()
}

func (l *Loop) run() {
	defer l.wg.Done()

	for {
		select {
		case <-l.stopChan:
			return
		case fn := <-l.inbox:
			fn()
			l.executed.Add(1)
		}
	}
}
