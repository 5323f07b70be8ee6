package audio

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = beep.SampleRate(44100)

// manualOutput lets a test pull samples through the mixer instead of a device
type manualOutput struct {
	mu       sync.Mutex
	streamer beep.Streamer
}

func (o *manualOutput) Play(s beep.Streamer) { o.streamer = s }
func (o *manualOutput) Lock()                { o.mu.Lock() }
func (o *manualOutput) Unlock()              { o.mu.Unlock() }

func (o *manualOutput) pull(n int) [][2]float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	samples := make([][2]float64, n)
	o.streamer.Stream(samples)
	return samples
}

// constant streams n samples of value v
func constant(n int, v float64) beep.Streamer {
	return beep.Take(n, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i][0] = v
			samples[i][1] = v
		}
		return len(samples), true
	}))
}

type stopRecorder struct {
	mu      sync.Mutex
	reasons []StopReason
}

func (r *stopRecorder) OnSoundStopped(_ Sound, reason StopReason) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reasons = append(r.reasons, reason)
}

func (r *stopRecorder) calls() []StopReason {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]StopReason(nil), r.reasons...)
}

// newTestEngine returns an engine whose files are in-memory buffers of the given lengths
func newTestEngine(t *testing.T, lengths map[string]int) (*BeepEngine, *manualOutput, *int) {
	t.Helper()
	out := &manualOutput{}
	e := NewBeepEngine(out, testRate, zerolog.Nop())

	decodes := 0
	e.cache = newSoundCache(func(path string) (*beep.Buffer, error) {
		n, ok := lengths[path]
		if !ok {
			return nil, os.ErrNotExist
		}
		decodes++
		buf := beep.NewBuffer(beep.Format{SampleRate: testRate, NumChannels: 2, Precision: 4})
		buf.Append(constant(n, 0.8))
		return buf, nil
	})
	return e, out, &decodes
}

func TestOneShotFinishesAndNotifies(t *testing.T) {
	e, out, _ := newTestEngine(t, map[string]int{"oof.mp3": 100})

	s, err := e.Play2D("oof.mp3", false)
	require.NoError(t, err)
	require.NotNil(t, s)

	rec := &stopRecorder{}
	s.SetSoundStopEventReceiver(rec)

	out.pull(50)
	assert.False(t, s.IsFinished())

	out.pull(100)
	assert.True(t, s.IsFinished())
	assert.Equal(t, []StopReason{StopReasonFinished}, rec.calls())

	out.pull(100)
	assert.Len(t, rec.calls(), 1, "receiver must fire once")
}

func TestPausedSoundDoesNotAdvance(t *testing.T) {
	e, out, _ := newTestEngine(t, map[string]int{"horn1.wav": 100})

	s, err := e.Play3D("horn1.wav", mgl32.Vec3{}, false, true, true)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.True(t, s.IsPaused())

	out.pull(500)
	assert.False(t, s.IsFinished())

	s.SetIsPaused(false)
	out.pull(150)
	assert.True(t, s.IsFinished())
}

func TestLoopNeverFinishes(t *testing.T) {
	e, out, _ := newTestEngine(t, map[string]int{"citysounds.ogg": 64})

	s, err := e.Play2D("citysounds.ogg", true)
	require.NoError(t, err)
	assert.True(t, s.IsLooped())

	for i := 0; i < 10; i++ {
		out.pull(100)
	}
	assert.False(t, s.IsFinished())
}

func TestPlay3DUntrackedReturnsNoHandle(t *testing.T) {
	e, _, _ := newTestEngine(t, map[string]int{"oof.mp3": 10})

	s, err := e.Play3D("oof.mp3", mgl32.Vec3{1, 2, 3}, false, false, false)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestPlayMissingFile(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)

	s, err := e.Play2D("missing.wav", false)
	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestCacheDecodesOnce(t *testing.T) {
	e, _, decodes := newTestEngine(t, map[string]int{"horn1.wav": 10})

	_, err := e.Play2D("horn1.wav", false)
	require.NoError(t, err)
	_, err = e.Play3D("horn1.wav", mgl32.Vec3{}, false, true, true)
	require.NoError(t, err)

	assert.Equal(t, 1, *decodes)
	assert.Equal(t, 1, e.cache.len())
}

func TestPositionalGain(t *testing.T) {
	e, out, _ := newTestEngine(t, map[string]int{"carsounds.wav": 1000})

	s, err := e.Play3D("carsounds.wav", mgl32.Vec3{20, 0, 0}, true, false, true)
	require.NoError(t, err)
	s.SetMinDistance(10)

	samples := out.pull(10)
	assert.InDelta(t, 0.4, samples[5][0], 1e-6)
	assert.InDelta(t, 0.4, samples[5][1], 1e-6)

	// Listener walks up to the emitter
	e.SetListenerPosition(mgl32.Vec3{15, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}, mgl32.Vec3{0, 0, 1})
	samples = out.pull(10)
	assert.InDelta(t, 0.8, samples[5][0], 1e-6)
}

func TestStopNotifiesReceiver(t *testing.T) {
	e, out, _ := newTestEngine(t, map[string]int{"carsounds.wav": 1000})

	s, err := e.Play3D("carsounds.wav", mgl32.Vec3{}, true, false, true)
	require.NoError(t, err)
	rec := &stopRecorder{}
	s.SetSoundStopEventReceiver(rec)

	s.Stop()
	out.pull(10)

	assert.True(t, s.IsFinished())
	assert.Equal(t, []StopReason{StopReasonUser}, rec.calls())
}

func TestCloseStopsTrackedSounds(t *testing.T) {
	e, _, _ := newTestEngine(t, map[string]int{"carsounds.wav": 1000})

	s, err := e.Play3D("carsounds.wav", mgl32.Vec3{}, true, false, true)
	require.NoError(t, err)
	rec := &stopRecorder{}
	s.SetSoundStopEventReceiver(rec)

	require.NoError(t, e.Close())
	require.NoError(t, e.Close())

	assert.True(t, s.IsFinished())
	assert.Equal(t, []StopReason{StopReasonEngineClosed}, rec.calls())
}

func TestCloseStopsNonPositionalSounds(t *testing.T) {
	e, out, _ := newTestEngine(t, map[string]int{"citysounds.ogg": 64})

	s, err := e.Play2D("citysounds.ogg", true)
	require.NoError(t, err)
	rec := &stopRecorder{}
	s.SetSoundStopEventReceiver(rec)

	out.pull(100)
	require.NoError(t, e.Close())

	assert.True(t, s.IsFinished())
	assert.Equal(t, []StopReason{StopReasonEngineClosed}, rec.calls())
}

func TestPlayAfterClose(t *testing.T) {
	e, _, _ := newTestEngine(t, map[string]int{"oof.mp3": 10})
	require.NoError(t, e.Close())

	s, err := e.Play2D("oof.mp3", false)
	assert.ErrorIs(t, err, ErrClosed)
	assert.Nil(t, s)

	s, err = e.Play3D("oof.mp3", mgl32.Vec3{}, false, true, true)
	assert.ErrorIs(t, err, ErrClosed)
	assert.Nil(t, s)
}

func TestListenerUpdateForgetsFinishedSounds(t *testing.T) {
	e, out, _ := newTestEngine(t, map[string]int{"oof.mp3": 10, "citysounds.ogg": 64})

	_, err := e.Play2D("oof.mp3", false)
	require.NoError(t, err)
	_, err = e.Play2D("citysounds.ogg", true)
	require.NoError(t, err)

	out.pull(100)
	e.SetListenerPosition(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}, mgl32.Vec3{0, 0, 1})

	e.out.Lock()
	defer e.out.Unlock()
	assert.Len(t, e.live, 1)
}

func TestDecodeFileUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.flac")
	require.NoError(t, os.WriteFile(path, []byte("fLaC"), 0o644))

	_, err := decodeFile(path)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestDecodeFileMissing(t *testing.T) {
	_, err := decodeFile(filepath.Join(t.TempDir(), "nope.wav"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestToAudioSpace(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{13, -6, -17}, ToAudioSpace(mgl32.Vec3{13, -17, -6}))
}
