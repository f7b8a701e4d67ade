package audio

import (
	"bytes"
	"errors"
	"io"
	"log"
	"strings"
	"sync"
	"testing"

	"github.com/gopxl/beep"
)

// fakeOutput stands in for the speaker; tests pull samples from the attached streamer
type fakeOutput struct {
	mu       sync.Mutex
	initErr  error
	rate     beep.SampleRate
	buffer   int
	attached []beep.Streamer
	closed   int
}

func (f *fakeOutput) Init(rate beep.SampleRate, bufferSize int) error {
	if f.initErr != nil {
		return f.initErr
	}
	f.rate = rate
	f.buffer = bufferSize
	return nil
}

func (f *fakeOutput) Play(s ...beep.Streamer) { f.attached = append(f.attached, s...) }
func (f *fakeOutput) Lock()                   { f.mu.Lock() }
func (f *fakeOutput) Unlock()                 { f.mu.Unlock() }
func (f *fakeOutput) Close()                  { f.closed++ }

// pull streams n samples from the attached mixer and returns the peak amplitude
func (f *fakeOutput) pull(t *testing.T, n int) float64 {
	t.Helper()
	if len(f.attached) != 1 {
		t.Fatalf("attached streamers = %d, want 1", len(f.attached))
	}
	samples := make([][2]float64, n)
	f.Lock()
	f.attached[0].Stream(samples)
	f.Unlock()

	peak := 0.0
	for _, s := range samples {
		for _, ch := range s {
			if ch < 0 {
				ch = -ch
			}
			if ch > peak {
				peak = ch
			}
		}
	}
	return peak
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestPlayer(t *testing.T, cfg *AudioConfig, opts ...PlayerOption) (*Player, *fakeOutput) {
	t.Helper()
	out := &fakeOutput{}
	opts = append([]PlayerOption{WithOutput(out), WithPlayerLogger(quietLogger())}, opts...)
	p := NewPlayer(cfg, opts...)
	if err := p.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return p, out
}

func TestNewPlayerDefaultsToSpeaker(t *testing.T) {
	p := NewPlayer(nil)
	if _, ok := p.out.(speakerOutput); !ok {
		t.Errorf("default output = %T, want speakerOutput", p.out)
	}
	if p.Initialized() {
		t.Error("NewPlayer opened the device before Initialize")
	}
}

func TestPlayerInitializeUsesConfiguredRate(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = 44100
	p, out := newTestPlayer(t, cfg)

	if out.rate != 44100 {
		t.Errorf("output rate = %d, want 44100", out.rate)
	}
	if out.buffer != beep.SampleRate(44100).N(bufferDuration) {
		t.Errorf("buffer = %d samples, want 100ms worth", out.buffer)
	}
	if !p.Initialized() {
		t.Error("Initialized() = false")
	}

	// Second call is a no-op
	if err := p.Initialize(); err != nil {
		t.Errorf("second Initialize: %v", err)
	}
	if len(out.attached) != 1 {
		t.Errorf("mixer attached %d times", len(out.attached))
	}
}

func TestPlayerPlayProducesSound(t *testing.T) {
	p, out := newTestPlayer(t, DefaultAudioConfig())

	h, err := p.Play()
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if p.Active() != 1 {
		t.Errorf("Active() = %d, want 1", p.Active())
	}

	// Longer than the one-second clip, so the loop must wrap
	if peak := out.pull(t, 60000); peak < 0.1 {
		t.Errorf("peak amplitude %.3f, want audible tone", peak)
	}

	h.Stop()
	h.Stop()
	if p.Active() != 0 {
		t.Errorf("Active() after Stop = %d, want 0", p.Active())
	}
	if peak := out.pull(t, 4800); peak != 0 {
		t.Errorf("peak after Stop = %.3f, want silence", peak)
	}
	if n := p.mixer.Len(); n != 0 {
		t.Errorf("mixer still holds %d streamers after Stop", n)
	}
}

func TestPlayerLoopsPastClipLength(t *testing.T) {
	p, out := newTestPlayer(t, DefaultAudioConfig())
	h, err := p.Play()
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	defer h.Stop()

	// Skip past several clip lengths, then expect the tone to continue
	rate := DefaultAudioConfig().SampleRate
	for i := 0; i < 3; i++ {
		out.pull(t, rate)
	}
	if peak := out.pull(t, rate/10); peak < 0.1 {
		t.Errorf("peak after 3 s = %.3f, want the clip still looping", peak)
	}
}

func TestPlayerVolumeScalesOutput(t *testing.T) {
	peakAt := func(volume float64) float64 {
		cfg := DefaultAudioConfig()
		cfg.MasterVolume = volume
		p, out := newTestPlayer(t, cfg)
		h, err := p.Play()
		if err != nil {
			t.Fatalf("Play: %v", err)
		}
		defer h.Stop()
		return out.pull(t, 48000)
	}

	full, half, zero := peakAt(1), peakAt(0.5), peakAt(0)
	if !(full > half && half > 0) {
		t.Errorf("peaks full=%.3f half=%.3f, want full > half > 0", full, half)
	}
	if zero != 0 {
		t.Errorf("zero volume peak = %.3f, want 0", zero)
	}
}

func TestPlayerMutedReturnsSilentHandle(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	p, out := newTestPlayer(t, cfg)

	h, err := p.Play()
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if h == nil {
		t.Fatal("muted player returned nil handle")
	}
	if peak := out.pull(t, 4800); peak != 0 {
		t.Errorf("muted peak = %.3f, want 0", peak)
	}
	h.Stop()
}

func TestPlayerNotInitialized(t *testing.T) {
	p := NewPlayer(nil, WithOutput(&fakeOutput{}))
	if _, err := p.Play(); !errors.Is(err, ErrAudioDisabled) {
		t.Errorf("Play() error = %v, want ErrAudioDisabled", err)
	}
	// Cleanup without Initialize is safe
	p.Cleanup()
}

func TestPlayerInitFailure(t *testing.T) {
	out := &fakeOutput{initErr: errors.New("no device")}
	p := NewPlayer(nil, WithOutput(out), WithPlayerLogger(quietLogger()))

	err := p.Initialize()
	if err == nil || !strings.Contains(err.Error(), "no device") {
		t.Fatalf("Initialize() = %v, want wrapped device error", err)
	}
	if _, err := p.Play(); !errors.Is(err, ErrAudioDisabled) {
		t.Errorf("Play() error = %v, want ErrAudioDisabled", err)
	}
}

func TestPlayerBadClip(t *testing.T) {
	opens := 0
	src := func() (io.ReadCloser, error) {
		opens++
		return io.NopCloser(bytes.NewReader([]byte("definitely not a wav file"))), nil
	}
	p, _ := newTestPlayer(t, DefaultAudioConfig(), WithClipSource(src))

	for i := 0; i < 2; i++ {
		_, err := p.Play()
		if !errors.Is(err, ErrNoClip) {
			t.Fatalf("Play() error = %v, want ErrNoClip", err)
		}
	}
	if opens != 1 {
		t.Errorf("clip opened %d times, want 1 (no retry)", opens)
	}
	if p.Active() != 0 {
		t.Errorf("failed play left %d active voices", p.Active())
	}
}

func TestPlayerClipOpenError(t *testing.T) {
	src := func() (io.ReadCloser, error) { return nil, errors.New("missing") }
	p, _ := newTestPlayer(t, DefaultAudioConfig(), WithClipSource(src))

	_, err := p.Play()
	if !errors.Is(err, ErrNoClip) || !strings.Contains(err.Error(), "missing") {
		t.Errorf("Play() error = %v, want ErrNoClip wrapping open error", err)
	}
}

func TestPlayerCleanupStopsVoices(t *testing.T) {
	p, out := newTestPlayer(t, DefaultAudioConfig())
	h1, _ := p.Play()
	h2, _ := p.Play()

	p.Cleanup()
	if out.closed != 1 {
		t.Errorf("output closed %d times, want 1", out.closed)
	}
	if p.Active() != 0 || p.Initialized() {
		t.Errorf("after Cleanup active=%d initialized=%v", p.Active(), p.Initialized())
	}

	// Handles outliving the player stay safe
	h1.Stop()
	h2.Stop()
}

func TestGain(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1, 0},
		{0.5, -1},
		{0.25, -2},
		{0, 0},
		{-1, 0},
	}
	for _, tt := range tests {
		if got := gain(tt.in); got != tt.want {
			t.Errorf("gain(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if clampVolume(2) != 1 || clampVolume(-0.5) != 0 || clampVolume(0.3) != 0.3 {
		t.Error("clampVolume out of range")
	}
}
