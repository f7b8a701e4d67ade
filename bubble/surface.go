package bubble

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lixenwraith/speaker-cleaner/config"
	"github.com/lixenwraith/speaker-cleaner/core"
	"github.com/lixenwraith/speaker-cleaner/display"
	"github.com/lixenwraith/speaker-cleaner/session"
)

// Surface runs the Bubble Tea program and feeds it session events
type Surface struct {
	mailbox *display.Mailbox
	logger  *log.Logger
	frame   time.Duration
	color   string
	opts    []tea.ProgramOption
}

type Option func(*Surface)

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

// WithColor selects a config color mode
func WithColor(mode string) Option {
	return func(s *Surface) { s.color = mode }
}

// WithProgramOptions appends Bubble Tea program options
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(s *Surface) { s.opts = append(s.opts, opts...) }
}

func NewSurface(opts ...Option) *Surface {
	s := &Surface{
		mailbox: display.NewMailbox(),
		logger:  log.New(io.Discard, "", 0),
		frame:   DefaultFrameInterval,
		color:   config.ColorAuto,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Listener returns the session.Listener feeding this surface
// Safe to call from any goroutine; never blocks
func (s *Surface) Listener() session.Listener {
	return s.mailbox.Listener()
}

// Run blocks until the user quits or ctx is done
func (s *Surface) Run(ctx context.Context, act display.Actions) error {
	profile, ok := colorProfile(s.color)
	if ok {
		lipgloss.SetColorProfile(profile)
	}

	m := NewModel(act, s.mailbox)
	m.logger = s.logger
	m.frame = s.frame
	if ok {
		progress.WithColorProfile(profile)(&m.bar)
	}

	// Process signals arrive through ctx
	opts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithoutSignalHandler(),
	}, s.opts...)
	p := tea.NewProgram(m, opts...)

	done := make(chan struct{})
	defer close(done)

	// Pump wakes into the program; Send must not run on the controller loop
	core.Go(func() {
		for {
			select {
			case <-s.mailbox.Wake():
				p.Send(wakeMsg{})
			case <-ctx.Done():
				p.Quit()
				return
			case <-done:
				return
			}
		}
	})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("bubble: %w", err)
	}
	return nil
}

// colorProfile maps a config color mode to a termenv profile
// auto keeps lipgloss detection
func colorProfile(mode string) (termenv.Profile, bool) {
	switch mode {
	case config.ColorTrueColor:
		return termenv.TrueColor, true
	case config.Color256:
		return termenv.ANSI256, true
	case config.ColorMono:
		return termenv.Ascii, true
	default:
		return termenv.Ascii, false
	}
}
