package audio

import (
	"errors"
)

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio output unavailable")
	ErrNoClip        = errors.New("sound clip could not be decoded")
)
