// Package render is the tcell display surface
package render

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/speaker-cleaner/config"
	"github.com/lixenwraith/speaker-cleaner/core"
	"github.com/lixenwraith/speaker-cleaner/display"
	"github.com/lixenwraith/speaker-cleaner/session"
)

const (
	// DefaultFrameInterval paces ring and wave animation
	DefaultFrameInterval = 50 * time.Millisecond
	eventBufferSize      = 100
)

// Surface draws session state on a tcell screen and forwards user input
type Surface struct {
	screen  tcell.Screen
	palette Palette
	mailbox *display.Mailbox
	logger  *log.Logger
	frame   time.Duration
	now     func() time.Time

	view   display.View
	layout layout

	// Mouse press edge tracking
	button1 bool

	stopProcess func() error
}

// layout records hit areas from the last draw
type layout struct {
	start  rect
	cancel rect
}

type Option func(*Surface)

func WithPalette(p Palette) Option {
	return func(s *Surface) { s.palette = p }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Surface) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithFrameInterval(d time.Duration) Option {
	return func(s *Surface) {
		if d > 0 {
			s.frame = d
		}
	}
}

// WithClock overrides the time source for animation
func WithClock(now func() time.Time) Option {
	return func(s *Surface) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSurface wraps an initialized screen
func NewSurface(screen tcell.Screen, opts ...Option) *Surface {
	s := &Surface{
		screen:      screen,
		palette:     NewPalette(config.ColorAuto, screen.Colors()),
		mailbox:     display.NewMailbox(),
		logger:      log.New(io.Discard, "", 0),
		frame:       DefaultFrameInterval,
		now:         time.Now,
		view:        display.NewView(),
		stopProcess: stopSelf,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Listener returns the session.Listener feeding this surface
// Safe to call from any goroutine; never blocks
func (s *Surface) Listener() session.Listener {
	return session.ListenerFunc(s.post)
}

func (s *Surface) post(ev session.Event) {
	s.mailbox.Put(ev)
	// Wakeup only; a full queue is covered by the frame ticker draining the mailbox
	if err := s.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		s.logger.Printf("render: wake for %s deferred: %v", ev.Kind, err)
	}
}

// View returns the current presentation state
func (s *Surface) View() display.View {
	return s.view
}

// Run processes input and redraws until quit or ctx is done
func (s *Surface) Run(ctx context.Context, act display.Actions) error {
	s.screen.EnableMouse()
	s.screen.EnableFocus()
	s.screen.HideCursor()

	events := make(chan tcell.Event, eventBufferSize)
	quit := make(chan struct{})
	defer close(quit)

	core.Go(func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	signals := make(chan os.Signal, 1)
	stopSignals := notifySuspend(signals)
	defer stopSignals()

	ticker := time.NewTicker(s.frame)
	defer ticker.Stop()

	s.draw()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if s.handle(ev, act) {
				return nil
			}
			s.draw()

		case <-s.mailbox.Wake():
			s.sync()
			s.draw()

		case <-signals:
			s.suspend(act)
			s.draw()

		case <-ticker.C:
			s.sync()
			s.draw()
		}
	}
}

// sync folds queued session events into the view
func (s *Surface) sync() {
	for _, ev := range s.mailbox.Drain() {
		s.view.Apply(ev, s.now())
	}
}

// handle applies one tcell event and reports whether to quit
func (s *Surface) handle(ev tcell.Event, act display.Actions) bool {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		s.sync()

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return true
		case tcell.KeyEnter:
			s.request("start", act.RequestStart)
		case tcell.KeyEscape:
			s.request("cancel", act.RequestCancel)
		case tcell.KeyCtrlZ:
			s.suspend(act)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			case ' ', 's', 'S':
				s.request("start", act.RequestStart)
			case 'x', 'X':
				s.request("cancel", act.RequestCancel)
			}
		}

	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !s.button1 {
			x, y := ev.Position()
			switch {
			case !s.view.Running() && s.layout.start.contains(x, y):
				s.request("start", act.RequestStart)
			case s.view.Running() && s.layout.cancel.contains(x, y):
				s.request("cancel", act.RequestCancel)
			}
		}
		s.button1 = pressed

	case *tcell.EventFocus:
		if !ev.Focused {
			s.request("background", act.Background)
			s.sync()
		}

	case *tcell.EventResize:
		s.screen.Sync()
	}
	return false
}

func (s *Surface) request(name string, fn func() error) {
	if err := fn(); err != nil {
		s.logger.Printf("render: %s request failed: %v", name, err)
	}
}

// suspend backgrounds the session, then stops the process until resumed
func (s *Surface) suspend(act display.Actions) {
	s.request("background", act.Background)
	s.sync()

	if err := s.screen.Suspend(); err != nil {
		s.logger.Printf("render: suspend failed: %v", err)
		return
	}
	if err := s.stopProcess(); err != nil {
		s.logger.Printf("render: stop process failed: %v", err)
	}
	if err := s.screen.Resume(); err != nil {
		s.logger.Printf("render: resume failed: %v", err)
	}
	s.screen.Sync()
}
