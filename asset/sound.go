// Package asset embeds the bundled resources
package asset

import (
	"bytes"
	_ "embed"
	"io"
)

// CleanSoundName identifies the bundled cleaning tone in logs
const CleanSoundName = "sound/clean.wav"

// cleanSound is a 165 Hz tone, one second of 16-bit mono PCM at 22050 Hz
// The period divides the clip length so the clip loops without a click
// Playback loops it for the whole 30 s session instead of shipping a 30 s file
//
//go:embed sound/clean.wav
var cleanSound []byte

// CleanSound returns a reader over the embedded WAV clip
func CleanSound() io.ReadCloser {
	return io.NopCloser(bytes.NewReader(cleanSound))
}
