// Package display holds the presentation state shared by every display surface
package display

import (
	"time"

	"github.com/lixenwraith/speaker-cleaner/session"
)

// Screen copy
const (
	StartPrompt    = "Please, press Start button to clean speakers"
	CleaningNotice = "Please, do not close application while cleaning"
	CancelLabel    = "[ x ] cancel"
	StartLabel     = "START"
)

// Phase selects which elements are visible
type Phase uint8

const (
	PhaseIdle    Phase = iota // Start prompt and button
	PhaseRunning              // Countdown, ring, wave, cancel
)

// SessionLength is the visual progress duration, parallel to the countdown
const SessionLength = time.Duration(session.Duration) * time.Second

// View is the passive state a surface renders
// It changes only through Apply
type View struct {
	Phase     Phase
	Text      string
	StartedAt time.Time
}

// NewView returns the initial idle presentation
func NewView() View {
	return View{
		Phase: PhaseIdle,
		Text:  session.Event{Remaining: session.Duration}.Text(),
	}
}

// Apply folds a controller event into the view
func (v *View) Apply(ev session.Event, now time.Time) {
	switch ev.Kind {
	case session.EventStarted:
		v.Phase = PhaseRunning
		v.Text = ev.Text()
		v.StartedAt = now
	case session.EventTick:
		v.Text = ev.Text()
	case session.EventEnded:
		*v = NewView()
	}
}

// Running reports whether the running presentation is shown
func (v View) Running() bool {
	return v.Phase == PhaseRunning
}

// Stroke returns the visible fraction of the progress ring in [0, 1]
// Full when the session starts, empty SessionLength later; full while idle
func (v View) Stroke(now time.Time) float64 {
	if v.Phase != PhaseRunning || v.StartedAt.IsZero() {
		return 1
	}
	elapsed := now.Sub(v.StartedAt)
	if elapsed <= 0 {
		return 1
	}
	if elapsed >= SessionLength {
		return 0
	}
	return 1 - float64(elapsed)/float64(SessionLength)
}
