package audio

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

func TestAudioServiceGracefulDegradation(t *testing.T) {
	var logs bytes.Buffer
	out := &fakeOutput{initErr: errors.New("no audio device")}
	svc := NewService(nil, log.New(&logs, "", 0), WithOutput(out))

	if svc.Name() != "audio" || svc.Dependencies() != nil {
		t.Errorf("name=%q deps=%v", svc.Name(), svc.Dependencies())
	}
	if err := svc.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := svc.Start(); err != nil {
		t.Fatalf("Start must not fail on missing device: %v", err)
	}
	if !svc.IsDisabled() {
		t.Error("IsDisabled() = false after device failure")
	}
	if !strings.Contains(logs.String(), "no audio device") {
		t.Errorf("device failure not logged: %q", logs.String())
	}

	if _, err := svc.Sound().Play(); !errors.Is(err, ErrAudioDisabled) {
		t.Errorf("Play() error = %v, want ErrAudioDisabled", err)
	}
	if err := svc.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
}

func TestAudioServiceMutedConfig(t *testing.T) {
	out := &fakeOutput{}
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	svc := NewService(cfg, quietLogger(), WithOutput(out))
	// Hub passes no args; a stray bool must not unmute
	svc.Init(false)
	svc.Start()
	defer svc.Stop()

	if svc.IsDisabled() {
		t.Fatal("service disabled with a working output")
	}
	h, err := svc.Sound().Play()
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	defer h.Stop()
	if peak := out.pull(t, 4800); peak != 0 {
		t.Errorf("muted service produced sound, peak %.3f", peak)
	}
}

func TestAudioServicePlaysAndStops(t *testing.T) {
	out := &fakeOutput{}
	svc := NewService(nil, quietLogger(), WithOutput(out))
	svc.Init()
	svc.Start()

	h, err := svc.Sound().Play()
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if peak := out.pull(t, 4800); peak == 0 {
		t.Error("no sound from running service")
	}
	h.Stop()

	svc.Stop()
	svc.Stop()
	if out.closed != 1 {
		t.Errorf("output closed %d times, want 1", out.closed)
	}
	if svc.Player().Initialized() {
		t.Error("player still initialized after Stop")
	}
}

func TestAudioServiceSoundSurvivesInit(t *testing.T) {
	out := &fakeOutput{}
	svc := NewService(nil, quietLogger(), WithOutput(out))

	// Wiring hands the sound to the controller before the hub runs Init
	sound := svc.Sound()
	svc.Init()
	svc.Start()
	defer svc.Stop()

	h, err := sound.Play()
	if err != nil {
		t.Fatalf("early Sound().Play(): %v", err)
	}
	defer h.Stop()
	if peak := out.pull(t, 4800); peak == 0 {
		t.Error("early sound handle is silent")
	}
}
