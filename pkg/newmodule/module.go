// Package newmodule is the city scene: a hummer that drives down a straight
// track on autopilot, an optional chase camera, and keyboard controls.
package newmodule

import (
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"github.com/leterax/citydrive/pkg/audio"
	"github.com/leterax/citydrive/pkg/engine"
)

const (
	// TrackEnd is the x coordinate past which the hummer wraps back to the start
	TrackEnd = 1700
	// AutoPilotSpeed is how far the hummer drives each frame on autopilot
	AutoPilotSpeed = 1

	CameraMoveDistance = 10
	CameraStrafeSteps  = 6

	HummerEngineMinDistance = 10
)

var (
	HummerStart = mgl32.Vec3{13, -17, -6}
	// FollowOffset is the chase camera position relative to the hummer
	FollowOffset = mgl32.Vec3{-5, 0, 5}
)

// Host is the part of the engine host the module drives
type Host interface {
	Camera() *engine.Camera
	World() *engine.WorldList
	ResetWorld() *engine.WorldList
	Physics() *engine.Physics
	SetNumPhysicsStepsPerRender(n int)
	SetRenderOptions(opts engine.RenderOptions)
	SetGlobalAmbientLight(color mgl32.Vec4)
}

// Options configures the module
type Options struct {
	// SharedMultimediaPath is the root for models and skybox images
	SharedMultimediaPath string
	// SoundsPath is the directory holding the sound files
	SoundsPath      string
	StartBackground int
	GravityScalar   float32
}

// Module implements engine.ModuleCallbacks for the city scene
type Module struct {
	host   Host
	sounds audio.Engine
	opts   Options
	log    zerolog.Logger

	hummer *engine.WO

	citySound   audio.Sound
	hummerSound audio.Sound
	horn        audio.Sound
	hornStopped audio.StopEventReceiver

	keys map[engine.Key][]keyAction

	autoPilot       bool
	followHummer    bool
	backgroundIndex int
	created         bool
}

var _ engine.ModuleCallbacks = (*Module)(nil)

// New creates the module. sounds may be nil, which disables audio.
func New(host Host, sounds audio.Engine, opts Options, log zerolog.Logger) *Module {
	m := &Module{
		host:            host,
		sounds:          sounds,
		opts:            opts,
		log:             log.With().Str("component", "newmodule").Logger(),
		backgroundIndex: wrapBackground(opts.StartBackground),
		keys:            newKeyTable(),
	}
	m.hornStopped = audio.StopEventFunc(func(_ audio.Sound, reason audio.StopReason) {
		m.log.Debug().Stringer("reason", reason).Msg("Horn stopped")
	})
	return m
}

// OnFrame runs after the host has stepped physics for the frame
func (m *Module) OnFrame() {
	cam := m.host.Camera()
	if m.sounds != nil && cam != nil {
		m.sounds.SetListenerPosition(cam.Position(), cam.LookDirection(), mgl32.Vec3{}, cam.NormalDirection())
	}

	if m.autoPilot {
		m.HummerMove(AutoPilotSpeed)
	}
	if m.followHummer {
		m.snapCameraToHummer()
	}

	if m.hummer == nil {
		return
	}
	if m.hummerSound != nil {
		m.hummerSound.SetPosition(m.hummer.Position())
	}
	if m.horn != nil {
		m.horn.SetPosition(m.hummer.Position())
	}
}

// HummerMove drives the hummer distance units along +X, wrapping to the
// start once it passes TrackEnd, and pulls the chase camera along.
func (m *Module) HummerMove(distance float32) {
	if m.hummer == nil {
		return
	}

	pos := m.hummer.Position()
	pos[0] += distance
	if pos.X() > TrackEnd {
		pos = HummerStart
	}
	m.hummer.SetPosition(pos)

	if m.followHummer {
		m.snapCameraToHummer()
	}
}

func (m *Module) snapCameraToHummer() {
	cam := m.host.Camera()
	if m.hummer == nil || cam == nil {
		return
	}
	cam.SetPosition(m.hummer.Position().Add(FollowOffset))
}

// ToggleAutoPilot switches autopilot and returns the new state
func (m *Module) ToggleAutoPilot() bool {
	m.autoPilot = !m.autoPilot
	m.log.Debug().Bool("autoPilot", m.autoPilot).Msg("Autopilot toggled")
	return m.autoPilot
}

// ToggleFollowHummer switches the chase camera and snaps it when enabled
func (m *Module) ToggleFollowHummer() bool {
	m.followHummer = !m.followHummer
	if m.followHummer {
		m.snapCameraToHummer()
	}
	m.log.Debug().Bool("followHummer", m.followHummer).Msg("Follow camera toggled")
	return m.followHummer
}

// OnKeyUp has no module behavior
func (m *Module) OnKeyUp(engine.Key) {}

// OnResize has no module behavior
func (m *Module) OnResize(int, int) {}

// AutoPilot reports whether the hummer drives itself
func (m *Module) AutoPilot() bool { return m.autoPilot }

// FollowHummer reports whether the camera chases the hummer
func (m *Module) FollowHummer() bool { return m.followHummer }

// Hummer returns the hummer actor, nil before the first scene build
func (m *Module) Hummer() *engine.WO { return m.hummer }

// Horn returns the current horn handle
func (m *Module) Horn() audio.Sound { return m.horn }

func (m *Module) soundPath(name string) string {
	return filepath.Join(m.opts.SoundsPath, name)
}

func (m *Module) mediaPath(rel string) string {
	return m.opts.SharedMultimediaPath + rel
}
