// Package device opens the system audio output for the audio engine.
package device

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Speaker plays on the default system audio device
type Speaker struct{}

// OpenSpeaker initializes the speaker at the given rate and buffer length
func OpenSpeaker(rate beep.SampleRate, buffer time.Duration) (*Speaker, error) {
	if err := speaker.Init(rate, rate.N(buffer)); err != nil {
		return nil, fmt.Errorf("failed to initialize speaker: %w", err)
	}
	return &Speaker{}, nil
}

// Play starts streaming s
func (s *Speaker) Play(streamer beep.Streamer) {
	speaker.Play(streamer)
}

// Lock blocks the audio goroutine
func (s *Speaker) Lock() {
	speaker.Lock()
}

// Unlock releases the audio goroutine
func (s *Speaker) Unlock() {
	speaker.Unlock()
}

// Close stops playback and releases the device
func (s *Speaker) Close() {
	speaker.Clear()
	speaker.Close()
}
