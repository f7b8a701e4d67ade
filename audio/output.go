package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Output is the device side of the player
// The speaker package implements it process-wide; tests substitute a fake
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
	Close()
}

// speakerOutput routes to the beep speaker (oto backend)
type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}

func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (speakerOutput) Lock()                   { speaker.Lock() }
func (speakerOutput) Unlock()                 { speaker.Unlock() }
func (speakerOutput) Close()                  { speaker.Close() }

// SpeakerOutput returns the system speaker
func SpeakerOutput() Output {
	return speakerOutput{}
}
