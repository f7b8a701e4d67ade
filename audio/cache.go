package audio

import (
	"fmt"
	"io"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// ClipSource opens the encoded clip
type ClipSource func() (io.ReadCloser, error)

// clipCache decodes the clip once and keeps the PCM buffer
// A decode failure is cached as well; playback is not retried
type clipCache struct {
	mu     sync.RWMutex
	source ClipSource
	buf    *beep.Buffer
	err    error
	ready  bool
}

func newClipCache(source ClipSource) *clipCache {
	return &clipCache{source: source}
}

// get returns the decoded buffer, decoding on first use
func (c *clipCache) get() (*beep.Buffer, error) {
	c.mu.RLock()
	if c.ready {
		buf, err := c.buf, c.err
		c.mu.RUnlock()
		return buf, err
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.ready {
		return c.buf, c.err
	}

	c.buf, c.err = decodeClip(c.source)
	c.ready = true
	return c.buf, c.err
}

func decodeClip(source ClipSource) (*beep.Buffer, error) {
	if source == nil {
		return nil, ErrNoClip
	}
	rc, err := source()
	if err != nil {
		return nil, fmt.Errorf("%w: open: %v", ErrNoClip, err)
	}
	defer rc.Close()

	streamer, format, err := wav.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoClip, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoClip, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("%w: empty clip", ErrNoClip)
	}
	return buf, nil
}
