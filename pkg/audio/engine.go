package audio

import (
	"sync"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/rs/zerolog"
)

// resampleQuality is passed to beep.Resample when a file's rate differs from the output
const resampleQuality = 4

// Output is the device the mixer plays on. Lock guards every field the
// audio goroutine reads while streaming.
type Output interface {
	Play(s beep.Streamer)
	Lock()
	Unlock()
}

// SilentOutput accepts streamers and never plays them. Used when no audio
// device can be opened.
type SilentOutput struct {
	mu sync.Mutex
}

func (o *SilentOutput) Play(beep.Streamer) {}
func (o *SilentOutput) Lock()   { o.mu.Lock() }
func (o *SilentOutput) Unlock() { o.mu.Unlock() }

// BeepEngine is an Engine backed by beep
type BeepEngine struct {
	log   zerolog.Logger
	out   Output
	rate  beep.SampleRate
	cache *soundCache
	mixer *beep.Mixer

	// guarded by out.Lock
	listener listener
	// live holds every sound not yet known to be finished
	live   []*beepSound
	closed bool
}

// NewBeepEngine creates an engine that mixes every sound onto out at rate
func NewBeepEngine(out Output, rate beep.SampleRate, log zerolog.Logger) *BeepEngine {
	e := &BeepEngine{
		log:      log.With().Str("component", "audio").Logger(),
		out:      out,
		rate:     rate,
		cache:    newSoundCache(nil),
		mixer:    &beep.Mixer{},
		listener: defaultListener(),
	}
	out.Play(e.mixer)
	return e
}

// Play2D plays a non-positional sound
func (e *BeepEngine) Play2D(path string, loop bool) (Sound, error) {
	s, err := e.play(path, loop, false, false, mgl32.Vec3{})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Play3D plays a sound at pos
func (e *BeepEngine) Play3D(path string, pos mgl32.Vec3, loop, startPaused, track bool) (Sound, error) {
	s, err := e.play(path, loop, startPaused, true, pos)
	if err != nil {
		return nil, err
	}
	if !track && !startPaused {
		return nil, nil
	}
	return s, nil
}

func (e *BeepEngine) play(path string, loop, startPaused, positional bool, pos mgl32.Vec3) (*beepSound, error) {
	buf, err := e.cache.get(path)
	if err != nil {
		return nil, err
	}

	var src beep.Streamer = buf.Streamer(0, buf.Len())
	if loop {
		src = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	}
	if buf.Format().SampleRate != e.rate {
		src = beep.Resample(resampleQuality, buf.Format().SampleRate, e.rate, src)
	}

	s := &beepSound{
		engine:     e,
		path:       path,
		positional: positional,
		looped:     loop,
		position:   pos,
		minDist:    DefaultMinDistance,
	}
	s.ctrl = &beep.Ctrl{
		Streamer: beep.Seq(src, beep.Callback(s.onEnd)),
		Paused:   startPaused,
	}
	s.volume = &effects.Volume{Streamer: s.ctrl, Base: 2}
	s.pan = &effects.Pan{Streamer: s.volume}

	e.out.Lock()
	defer e.out.Unlock()

	if e.closed {
		return nil, ErrClosed
	}
	e.updateSpatialLocked(s)
	e.live = append(e.live, s)
	e.mixer.Add(s.pan)

	e.log.Debug().Str("path", path).Bool("loop", loop).Bool("positional", positional).Msg("Playing sound")
	return s, nil
}

// SetListenerPosition moves the listener, recomputes every positional sound
// and forgets sounds that have finished
func (e *BeepEngine) SetListenerPosition(pos, lookDir, velocity, upDir mgl32.Vec3) {
	e.out.Lock()
	defer e.out.Unlock()

	e.listener = listener{position: pos, look: lookDir, up: upDir, velocity: velocity}

	live := e.live[:0]
	for _, s := range e.live {
		if s.finished.Load() {
			continue
		}
		e.updateSpatialLocked(s)
		live = append(live, s)
	}
	for i := len(live); i < len(e.live); i++ {
		e.live[i] = nil
	}
	e.live = live
}

// ListenerPosition returns the listener position
func (e *BeepEngine) ListenerPosition() mgl32.Vec3 {
	e.out.Lock()
	defer e.out.Unlock()
	return e.listener.position
}

// Close stops every sound, notifying receivers with StopReasonEngineClosed,
// and detaches the mixer. Later plays return ErrClosed.
func (e *BeepEngine) Close() error {
	e.out.Lock()
	if e.closed {
		e.out.Unlock()
		return nil
	}
	e.closed = true
	live := e.live
	e.live = nil
	e.mixer.Clear()
	e.out.Unlock()

	for _, s := range live {
		s.stop(StopReasonEngineClosed)
	}
	return nil
}

// updateSpatialLocked recomputes gain and pan. Caller holds out.Lock.
func (e *BeepEngine) updateSpatialLocked(s *beepSound) {
	if !s.positional {
		return
	}
	dist := s.position.Sub(e.listener.position).Len()
	s.volume.Volume, s.volume.Silent = gainToVolume(attenuation(dist, s.minDist))
	s.pan.Pan = stereoPan(e.listener, s.position)
}

// beepSound is a Sound played through a BeepEngine
type beepSound struct {
	engine     *BeepEngine
	path       string
	positional bool
	looped     bool

	ctrl   *beep.Ctrl
	volume *effects.Volume
	pan    *effects.Pan

	// guarded by engine.out.Lock
	position mgl32.Vec3
	minDist  float32
	receiver StopEventReceiver

	finished atomic.Bool
}

// onEnd runs on the audio goroutine when the stream drains
func (s *beepSound) onEnd() {
	if s.finished.Swap(true) {
		return
	}
	if s.receiver != nil {
		s.receiver.OnSoundStopped(s, StopReasonFinished)
	}
}

func (s *beepSound) SetPosition(pos mgl32.Vec3) {
	s.engine.out.Lock()
	defer s.engine.out.Unlock()
	s.position = pos
	s.engine.updateSpatialLocked(s)
}

func (s *beepSound) Position() mgl32.Vec3 {
	s.engine.out.Lock()
	defer s.engine.out.Unlock()
	return s.position
}

func (s *beepSound) SetMinDistance(d float32) {
	s.engine.out.Lock()
	defer s.engine.out.Unlock()
	s.minDist = d
	s.engine.updateSpatialLocked(s)
}

func (s *beepSound) MinDistance() float32 {
	s.engine.out.Lock()
	defer s.engine.out.Unlock()
	return s.minDist
}

func (s *beepSound) IsFinished() bool {
	return s.finished.Load()
}

func (s *beepSound) SetIsPaused(paused bool) {
	s.engine.out.Lock()
	defer s.engine.out.Unlock()
	s.ctrl.Paused = paused
}

func (s *beepSound) IsPaused() bool {
	s.engine.out.Lock()
	defer s.engine.out.Unlock()
	return s.ctrl.Paused
}

func (s *beepSound) IsLooped() bool {
	return s.looped
}

func (s *beepSound) SetSoundStopEventReceiver(r StopEventReceiver) {
	s.engine.out.Lock()
	defer s.engine.out.Unlock()
	s.receiver = r
}

// Stop ends playback; the mixer drops the stream on its next pass
func (s *beepSound) Stop() {
	s.stop(StopReasonUser)
}

func (s *beepSound) stop(reason StopReason) {
	s.engine.out.Lock()
	s.ctrl.Streamer = nil
	receiver := s.receiver
	s.engine.out.Unlock()

	if s.finished.Swap(true) {
		return
	}
	if receiver != nil {
		receiver.OnSoundStopped(s, reason)
	}
}
