// Package audio plays positional sounds for the scene. Positions are given in
// engine space (Z up); the listener decides attenuation and stereo pan.
package audio

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrUnsupportedFormat is returned for files the decoder does not know
	ErrUnsupportedFormat = errors.New("audio: unsupported format")
	// ErrClosed is returned when playing on an engine that was closed
	ErrClosed = errors.New("audio: engine closed")
)

// StopReason tells a receiver why a sound stopped
type StopReason uint8

const (
	// StopReasonFinished means playback reached the end
	StopReasonFinished StopReason = iota
	// StopReasonUser means Stop was called
	StopReasonUser
	// StopReasonEngineClosed means the engine shut down
	StopReasonEngineClosed
)

func (r StopReason) String() string {
	switch r {
	case StopReasonFinished:
		return "finished"
	case StopReasonUser:
		return "user"
	case StopReasonEngineClosed:
		return "engine_closed"
	}
	return "unknown"
}

// StopEventReceiver is notified when a sound stops. It is called on the
// audio goroutine and must not call back into the engine.
type StopEventReceiver interface {
	OnSoundStopped(s Sound, reason StopReason)
}

// StopEventFunc adapts a function to StopEventReceiver
type StopEventFunc func(s Sound, reason StopReason)

// OnSoundStopped calls f
func (f StopEventFunc) OnSoundStopped(s Sound, reason StopReason) {
	f(s, reason)
}

// Sound is a handle to a playing emitter. A one-shot handle is no longer
// playable once IsFinished reports true.
type Sound interface {
	SetPosition(pos mgl32.Vec3)
	Position() mgl32.Vec3
	SetMinDistance(d float32)
	MinDistance() float32
	IsFinished() bool
	SetIsPaused(paused bool)
	IsPaused() bool
	IsLooped() bool
	SetSoundStopEventReceiver(r StopEventReceiver)
	Stop()
}

// Engine creates sounds and tracks the listener
type Engine interface {
	// Play2D plays a non-positional sound.
	Play2D(path string, loop bool) (Sound, error)
	// Play3D plays a sound at pos. The handle is nil unless track or
	// startPaused is set, since an untracked sound cannot be reached again.
	Play3D(path string, pos mgl32.Vec3, loop, startPaused, track bool) (Sound, error)
	SetListenerPosition(pos, lookDir, velocity, upDir mgl32.Vec3)
	Close() error
}

// ToAudioSpace converts an engine-space (Z up, right-handed) vector into
// audio space (Y up, left-handed).
func ToAudioSpace(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), v.Z(), v.Y()}
}
