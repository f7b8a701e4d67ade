package display

import (
	"testing"

	"github.com/lixenwraith/speaker-cleaner/session"
)

func TestMailboxOrderAndWake(t *testing.T) {
	m := NewMailbox()
	if m.Drain() != nil {
		t.Fatal("new mailbox not empty")
	}

	l := m.Listener()
	l.OnSessionStarted()
	for i := session.Duration - 1; i >= 0; i-- {
		l.OnTick(session.Event{Remaining: i}.Text())
	}
	l.OnSessionEnded()

	select {
	case <-m.Wake():
	default:
		t.Fatal("no wake after Put")
	}
	// Coalesced: a single pending wake
	select {
	case <-m.Wake():
		t.Fatal("wake not coalesced")
	default:
	}

	got := m.Drain()
	if len(got) != session.Duration+2 {
		t.Fatalf("drained %d events, want %d", len(got), session.Duration+2)
	}
	if got[0].Kind != session.EventStarted || got[len(got)-1].Kind != session.EventEnded {
		t.Errorf("first=%v last=%v", got[0].Kind, got[len(got)-1].Kind)
	}
	if got[len(got)-2].Remaining != 0 {
		t.Errorf("tick before end = %d, want 0", got[len(got)-2].Remaining)
	}
	if m.Drain() != nil {
		t.Error("Drain did not empty the queue")
	}
}
