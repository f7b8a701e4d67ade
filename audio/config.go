package audio

// AudioConfig holds output settings; the clip itself is fixed
type AudioConfig struct {
	Enabled      bool    // false plays silent voices
	MasterVolume float64 // 0.0-1.0
	SampleRate   int     // Output device rate in Hz
}

// DefaultAudioConfig returns the default output settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.8,
		SampleRate:   48000,
	}
}

// clampVolume limits v to [0, 1]
func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
