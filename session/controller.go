// Package session implements the cleaning session state machine
package session

import (
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Duration is the fixed session length in seconds
const Duration = 30

// TickInterval is the default countdown period
const TickInterval = time.Second

// State of the controller
type State uint8

const (
	StateIdle State = iota
	StateRunning
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "idle"
}

// Handle is a playing sound owned by one session
type Handle interface {
	Stop()
}

// Sound starts playback of the cleaning sound
type Sound interface {
	Play() (Handle, error)
}

// Scheduler runs fn every interval until the returned stop function is called
// Stop must be synchronous: no fn invocation may start after it returns
type Scheduler interface {
	Every(interval time.Duration, fn func()) (stop func())
}

// Controller owns the countdown, the tick schedule and the audio handle
// Not safe for concurrent use; callers serialize access through a single event loop
type Controller struct {
	sound     Sound
	scheduler Scheduler
	listener  Listener
	logger    *log.Logger
	interval  time.Duration

	state     State
	remaining int
	id        uuid.UUID
	handle    Handle
	stopTick  func()
}

// Option configures a Controller
type Option func(*Controller)

// WithListener sets the notification target
func WithListener(l Listener) Option {
	return func(c *Controller) {
		if l != nil {
			c.listener = l
		}
	}
}

// WithLogger sets the logger for lifecycle and playback errors
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithInterval overrides the tick period
func WithInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.interval = d
		}
	}
}

// New creates an idle controller
// A nil sound runs silent sessions
func New(sound Sound, scheduler Scheduler, opts ...Option) *Controller {
	c := &Controller{
		sound:     sound,
		scheduler: scheduler,
		listener:  nopListener{},
		logger:    log.Default(),
		interval:  TickInterval,
		state:     StateIdle,
		remaining: Duration,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins a session; no-op while one is running
func (c *Controller) Start() {
	if c.state == StateRunning {
		c.logger.Printf("session: start ignored, id=%s already running", c.id)
		return
	}

	c.id = uuid.New()
	c.remaining = Duration
	c.state = StateRunning
	c.logger.Printf("session: start id=%s", c.id)

	if c.sound != nil {
		handle, err := c.sound.Play()
		if err != nil {
			// Non-fatal, countdown proceeds without sound
			c.logger.Printf("session: playback failed id=%s: %v", c.id, err)
		} else {
			c.handle = handle
		}
	}

	c.stopTick = c.scheduler.Every(c.interval, c.Tick)
	c.listener.OnSessionStarted()
}

// Tick advances the countdown by one second
// Ticks arriving while idle are stale and ignored
func (c *Controller) Tick() {
	if c.state != StateRunning {
		return
	}

	c.remaining--
	c.listener.OnTick(strconv.Itoa(c.remaining))

	if c.remaining <= 0 {
		c.logger.Printf("session: complete id=%s", c.id)
		c.end()
	}
}

// Cancel ends a running session immediately; idempotent while idle
func (c *Controller) Cancel() {
	if c.state != StateRunning {
		return
	}
	c.logger.Printf("session: cancel id=%s remaining=%d", c.id, c.remaining)
	c.end()
}

// OnBackgrounded handles loss of foreground; same effect as Cancel
func (c *Controller) OnBackgrounded() {
	if c.state != StateRunning {
		return
	}
	c.logger.Printf("session: backgrounded id=%s remaining=%d", c.id, c.remaining)
	c.end()
}

// end tears down tick and audio and returns to Idle
func (c *Controller) end() {
	if c.stopTick != nil {
		c.stopTick()
		c.stopTick = nil
	}
	if c.handle != nil {
		c.handle.Stop()
		c.handle = nil
	}

	c.remaining = Duration
	c.state = StateIdle
	c.id = uuid.Nil
	c.listener.OnSessionEnded()
}

// State returns the current state
func (c *Controller) State() State {
	return c.state
}

// Running reports whether a session is active
func (c *Controller) Running() bool {
	return c.state == StateRunning
}

// Remaining returns the seconds left, Duration while idle
func (c *Controller) Remaining() int {
	return c.remaining
}

// SessionID returns the active session id, uuid.Nil while idle
func (c *Controller) SessionID() uuid.UUID {
	return c.id
}
