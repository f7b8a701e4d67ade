package display

import (
	"sync"

	"github.com/lixenwraith/speaker-cleaner/session"
)

// Mailbox is an unbounded, non-blocking queue of session events
// Put never blocks the controller loop; the UI loop drains on wake
type Mailbox struct {
	mu      sync.Mutex
	pending []session.Event
	notify  chan struct{}
}

func NewMailbox() *Mailbox {
	return &Mailbox{notify: make(chan struct{}, 1)}
}

// Put appends ev and signals Wake
func (m *Mailbox) Put(ev session.Event) {
	m.mu.Lock()
	m.pending = append(m.pending, ev)
	m.mu.Unlock()

	select {
	case m.notify <- struct{}{}:
	default:
	}
}

// Wake fires at least once after any Put
func (m *Mailbox) Wake() <-chan struct{} {
	return m.notify
}

// Drain returns queued events in arrival order and empties the queue
func (m *Mailbox) Drain() []session.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.pending) == 0 {
		return nil
	}
	out := m.pending
	m.pending = nil
	return out
}

// Listener adapts the mailbox to session.Listener
func (m *Mailbox) Listener() session.Listener {
	return session.ListenerFunc(m.Put)
}
