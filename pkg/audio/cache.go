package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// decodeFunc loads a file into memory
type decodeFunc func(path string) (*beep.Buffer, error)

// soundCache stores decoded files so each is read from disk once
type soundCache struct {
	mu     sync.RWMutex
	store  map[string]*beep.Buffer
	decode decodeFunc
}

func newSoundCache(decode decodeFunc) *soundCache {
	if decode == nil {
		decode = decodeFile
	}
	return &soundCache{
		store:  make(map[string]*beep.Buffer),
		decode: decode,
	}
}

// get returns the cached buffer or decodes it on demand
func (c *soundCache) get(path string) (*beep.Buffer, error) {
	c.mu.RLock()
	buf, ok := c.store[path]
	c.mu.RUnlock()
	if ok {
		return buf, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if buf, ok := c.store[path]; ok {
		return buf, nil
	}

	buf, err := c.decode(path)
	if err != nil {
		return nil, err
	}
	c.store[path] = buf
	return buf, nil
}

// len returns the number of cached files
func (c *soundCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// decodeFile decodes a wav, ogg or mp3 file into a buffer
func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound %s: %w", path, err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode sound %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sound %s: %w", path, err)
	}
	return buf, nil
}
