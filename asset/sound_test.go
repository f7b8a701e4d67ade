package asset

import (
	"encoding/binary"
	"io"
	"testing"
)

func TestCleanSoundIsPCMWave(t *testing.T) {
	data, err := io.ReadAll(CleanSound())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(data) < 44 {
		t.Fatalf("clip too short: %d bytes", len(data))
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Fatalf("missing RIFF/WAVE header")
	}

	format := binary.LittleEndian.Uint16(data[20:22])
	channels := binary.LittleEndian.Uint16(data[22:24])
	rate := binary.LittleEndian.Uint32(data[24:28])
	bits := binary.LittleEndian.Uint16(data[34:36])

	if format != 1 || channels != 1 || rate != 22050 || bits != 16 {
		t.Errorf("format=%d channels=%d rate=%d bits=%d, want PCM mono 22050Hz 16-bit",
			format, channels, rate, bits)
	}
}

func TestCleanSoundFreshReader(t *testing.T) {
	a, _ := io.ReadAll(CleanSound())
	b, _ := io.ReadAll(CleanSound())
	if len(a) == 0 || len(a) != len(b) {
		t.Errorf("readers not independent: %d vs %d bytes", len(a), len(b))
	}
}
