package audio

import (
	"fmt"
	"io"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/speaker-cleaner/asset"
	"github.com/lixenwraith/speaker-cleaner/session"
)

const (
	bufferDuration   = 100 * time.Millisecond
	resampleQuality  = 4
	defaultClipLabel = asset.CleanSoundName
)

// Player plays the cleaning clip in a loop through a mixer on the output
type Player struct {
	mu          sync.Mutex
	config      *AudioConfig
	out         Output
	mixer       *beep.Mixer
	cache       *clipCache
	logger      *log.Logger
	initialized bool
	voices      map[*Voice]struct{}
}

// PlayerOption configures a Player
type PlayerOption func(*Player)

// WithOutput replaces the system speaker
func WithOutput(out Output) PlayerOption {
	return func(p *Player) {
		if out != nil {
			p.out = out
		}
	}
}

// WithClipSource replaces the embedded clip
func WithClipSource(src ClipSource) PlayerOption {
	return func(p *Player) {
		p.cache = newClipCache(src)
	}
}

// WithPlayerLogger sets the diagnostics logger
func WithPlayerLogger(l *log.Logger) PlayerOption {
	return func(p *Player) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPlayer creates a player; nil config uses defaults
func NewPlayer(cfg *AudioConfig, opts ...PlayerOption) *Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	p := &Player{
		config: cfg,
		out:    SpeakerOutput(),
		mixer:  &beep.Mixer{},
		cache:  newClipCache(embeddedClip),
		logger: log.Default(),
		voices: make(map[*Voice]struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Initialize opens the output device and attaches the mixer
// Idempotent once successful
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	rate := p.sampleRate()
	if err := p.out.Init(rate, rate.N(bufferDuration)); err != nil {
		return fmt.Errorf("audio: init output at %d Hz: %w", rate, err)
	}

	p.out.Play(p.mixer)
	p.initialized = true
	p.logger.Printf("audio: output ready at %d Hz", rate)
	return nil
}

// Cleanup stops all voices and closes the output
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.out.Lock()
	for v := range p.voices {
		v.detach()
	}
	p.mixer.Clear()
	p.out.Unlock()
	p.voices = make(map[*Voice]struct{})

	p.out.Close()
	p.initialized = false
}

// Play starts a looping voice of the clip
// Returns ErrAudioDisabled before Initialize, or a wrapped ErrNoClip when the clip cannot be decoded
// A muted player returns a silent voice so the caller still owns a handle
func (p *Player) Play() (session.Handle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil, ErrAudioDisabled
	}

	if !p.config.Enabled {
		return &Voice{player: p}, nil
	}

	clip, err := p.cache.get()
	if err != nil {
		return nil, fmt.Errorf("audio: %s: %w", defaultClipLabel, err)
	}

	var s beep.Streamer = beep.Loop(-1, clip.Streamer(0, clip.Len()))
	if from, to := clip.Format().SampleRate, p.sampleRate(); from != to {
		s = beep.Resample(resampleQuality, from, to, s)
	}

	volume := clampVolume(p.config.MasterVolume)
	s = &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   gain(volume),
		Silent:   volume == 0,
	}

	v := &Voice{player: p, ctrl: &beep.Ctrl{Streamer: s}}

	p.out.Lock()
	p.mixer.Add(v.ctrl)
	p.out.Unlock()

	p.voices[v] = struct{}{}
	return v, nil
}

// Active returns the number of voices not yet stopped
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.voices)
}

// Initialized reports whether the output is open
func (p *Player) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

func (p *Player) sampleRate() beep.SampleRate {
	if p.config.SampleRate <= 0 {
		return beep.SampleRate(DefaultAudioConfig().SampleRate)
	}
	return beep.SampleRate(p.config.SampleRate)
}

func (p *Player) release(v *Voice) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if v.ctrl != nil {
		p.out.Lock()
		v.detach()
		p.out.Unlock()
	}
	delete(p.voices, v)
}

func embeddedClip() (io.ReadCloser, error) {
	return asset.CleanSound(), nil
}

// gain converts linear volume to the exponent used by effects.Volume with base 2
func gain(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Log2(v)
}

// Voice is one playing instance of the clip
type Voice struct {
	player *Player
	ctrl   *beep.Ctrl
	once   sync.Once
}

// Stop silences the voice; the mixer drops it on its next pull
func (v *Voice) Stop() {
	v.once.Do(func() {
		if v.player != nil {
			v.player.release(v)
		}
	})
}

// detach must be called with the output locked
func (v *Voice) detach() {
	if v.ctrl == nil {
		return
	}
	v.ctrl.Paused = true
	v.ctrl.Streamer = nil
}
