package session

import "strconv"

// EventKind identifies a controller notification
type EventKind uint8

const (
	EventStarted EventKind = iota // Session entered Running
	EventTick                     // Countdown decremented
	EventEnded                    // Session returned to Idle
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventTick:
		return "tick"
	case EventEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Event is the typed form of a Listener notification
// Remaining is valid for every kind: Duration on Started and Ended
type Event struct {
	Kind      EventKind
	Remaining int
}

// Text returns the remaining seconds as displayed
func (e Event) Text() string {
	return strconv.Itoa(e.Remaining)
}

// Listener receives state changes from the Controller
// Implementations must return promptly; the controller calls them on its own loop
type Listener interface {
	OnSessionStarted()
	OnTick(remaining string)
	OnSessionEnded()
}

// ListenerFunc adapts a typed event consumer to Listener
type ListenerFunc func(Event)

func (f ListenerFunc) OnSessionStarted() {
	f(Event{Kind: EventStarted, Remaining: Duration})
}

// OnTick forwards the countdown value; non-numeric text is reported as 0
func (f ListenerFunc) OnTick(remaining string) {
	n, err := strconv.Atoi(remaining)
	if err != nil {
		n = 0
	}
	f(Event{Kind: EventTick, Remaining: n})
}

func (f ListenerFunc) OnSessionEnded() {
	f(Event{Kind: EventEnded, Remaining: Duration})
}

// nopListener is used when no listener is configured
type nopListener struct{}

func (nopListener) OnSessionStarted() {}
func (nopListener) OnTick(string)     {}
func (nopListener) OnSessionEnded()   {}
