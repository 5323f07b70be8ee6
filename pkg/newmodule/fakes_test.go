package newmodule

import (
	"errors"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/citydrive/pkg/audio"
	"github.com/leterax/citydrive/pkg/engine"
)

type fakeSound struct {
	path     string
	pos      mgl32.Vec3
	minDist  float32
	looped   bool
	paused   bool
	finished bool
	receiver audio.StopEventReceiver
}

func (s *fakeSound) SetPosition(pos mgl32.Vec3)                          { s.pos = pos }
func (s *fakeSound) Position() mgl32.Vec3                                { return s.pos }
func (s *fakeSound) SetMinDistance(d float32)                            { s.minDist = d }
func (s *fakeSound) MinDistance() float32                                { return s.minDist }
func (s *fakeSound) IsFinished() bool                                    { return s.finished }
func (s *fakeSound) SetIsPaused(paused bool)                             { s.paused = paused }
func (s *fakeSound) IsPaused() bool                                      { return s.paused }
func (s *fakeSound) IsLooped() bool                                      { return s.looped }
func (s *fakeSound) SetSoundStopEventReceiver(r audio.StopEventReceiver) { s.receiver = r }
func (s *fakeSound) Stop()                                               { s.finished = true }

type playCall struct {
	name        string
	pos         mgl32.Vec3
	positional  bool
	loop        bool
	startPaused bool
	track       bool
}

// fakeAudio records every play call and hands out fakeSounds
type fakeAudio struct {
	calls    []playCall
	sounds   []*fakeSound
	failing  map[string]bool
	listener mgl32.Vec3
	closed   bool
}

func newFakeAudio() *fakeAudio {
	return &fakeAudio{failing: make(map[string]bool)}
}

var errFakeLoad = errors.New("fake: cannot load sound")

func (a *fakeAudio) Play2D(path string, loop bool) (audio.Sound, error) {
	name := filepath.Base(path)
	a.calls = append(a.calls, playCall{name: name, loop: loop})
	if a.failing[name] {
		return nil, errFakeLoad
	}
	s := &fakeSound{path: path, looped: loop}
	a.sounds = append(a.sounds, s)
	return s, nil
}

func (a *fakeAudio) Play3D(path string, pos mgl32.Vec3, loop, startPaused, track bool) (audio.Sound, error) {
	name := filepath.Base(path)
	a.calls = append(a.calls, playCall{name: name, pos: pos, positional: true, loop: loop, startPaused: startPaused, track: track})
	if a.failing[name] {
		return nil, errFakeLoad
	}
	s := &fakeSound{path: path, pos: pos, looped: loop, paused: startPaused}
	a.sounds = append(a.sounds, s)
	if !track && !startPaused {
		return nil, nil
	}
	return s, nil
}

func (a *fakeAudio) SetListenerPosition(pos, _, _, _ mgl32.Vec3) {
	a.listener = pos
}

func (a *fakeAudio) Close() error {
	a.closed = true
	return nil
}

// callsNamed returns the play calls for one file
func (a *fakeAudio) callsNamed(name string) []playCall {
	var out []playCall
	for _, c := range a.calls {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

// noCameraHost is a host without a camera
type noCameraHost struct {
	*engine.Host
}

func (h noCameraHost) Camera() *engine.Camera { return nil }
