package display

import (
	"math"
	"time"
)

// WaveBars are the glyphs of the audio-wave strip, lowest first
var WaveBars = []rune("▁▂▃▄▅▆▇█")

// Wave returns one bar level per column, in [0, len(WaveBars))
// The pattern is a travelling interference of two sines
func Wave(width int, t time.Duration) []int {
	if width <= 0 {
		return nil
	}
	levels := make([]int, width)
	top := float64(len(WaveBars) - 1)
	phase := t.Seconds() * 6

	for x := range levels {
		fx := float64(x)
		a := math.Sin(fx*0.45 - phase)
		b := math.Sin(fx*0.17 + phase*0.6)
		v := (a*0.6 + b*0.4 + 1) / 2 // 0..1
		levels[x] = int(math.Round(v * top))
	}
	return levels
}

// WaveString renders Wave as a string of bar glyphs
func WaveString(width int, t time.Duration) string {
	levels := Wave(width, t)
	out := make([]rune, len(levels))
	for i, l := range levels {
		out[i] = WaveBars[l]
	}
	return string(out)
}
