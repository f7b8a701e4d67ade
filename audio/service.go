package audio

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/speaker-cleaner/session"
)

// AudioService wraps Player as a service
// Handles graceful degradation when no audio device is available
type AudioService struct {
	config   *AudioConfig
	opts     []PlayerOption
	logger   *log.Logger
	player   *Player
	disabled atomic.Bool
}

// NewService creates a new audio service
func NewService(cfg *AudioConfig, logger *log.Logger, opts ...PlayerOption) *AudioService {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &AudioService{
		config: cfg,
		opts:   append([]PlayerOption{WithPlayerLogger(logger)}, opts...),
		logger: logger,
	}
}

// Name implements service.Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements service.Service
// Muting comes from AudioConfig.Enabled; args are ignored
// The player is created once; Sound handed out earlier stays valid
func (s *AudioService) Init(args ...any) error {
	if s.player == nil {
		s.player = NewPlayer(s.config, s.opts...)
	}
	return nil
}

// Start implements service.Service
// Opens the output; sets disabled on failure (no error returned)
func (s *AudioService) Start() error {
	if s.player == nil {
		s.Init()
	}
	if err := s.player.Initialize(); err != nil {
		s.disabled.Store(true)
		s.logger.Printf("audio: disabled, continuing without sound: %v", err)
	}
	return nil
}

// Stop implements service.Service
func (s *AudioService) Stop() error {
	if s.player != nil {
		s.player.Cleanup()
	}
	return nil
}

// IsDisabled returns true if audio output is unavailable
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Sound returns the session's sound source
// When disabled, Play reports ErrAudioDisabled and the session logs it
func (s *AudioService) Sound() session.Sound {
	if s.player == nil {
		s.Init()
	}
	return s.player
}

// Player returns the underlying player (nil before Init)
func (s *AudioService) Player() *Player {
	return s.player
}
