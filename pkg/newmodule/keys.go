package newmodule

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/citydrive/pkg/audio"
	"github.com/leterax/citydrive/pkg/engine"
)

// keyAction runs for one key press
type keyAction func(m *Module)

// newKeyTable maps every key to the actions it triggers, in order
func newKeyTable() map[engine.Key][]keyAction {
	table := make(map[engine.Key][]keyAction)
	bind := func(action keyAction, keys ...engine.Key) {
		for _, k := range keys {
			table[k] = append(table[k], action)
		}
	}

	bind(resumePhysics, engine.Key0)
	bind(reloadScene, engine.KeyF9)
	bind(cameraForward, engine.KeyW, engine.KeyUp)
	bind(cameraBackward, engine.KeyS, engine.KeyDown)
	bind(cameraLeft, engine.KeyA, engine.KeyLeft)
	bind(cameraRight, engine.KeyD, engine.KeyRight)
	bind(soundHorn, engine.KeySpace)
	bind(playOof, engine.KeyO)
	bind(logCameraPosition, engine.KeyL)
	bind(playOofAtCamera, engine.KeyT)
	bind(cameraToOrigin, engine.Key0)
	bind(func(m *Module) { m.ToggleAutoPilot() }, engine.KeyM)
	bind(func(m *Module) { m.ToggleFollowHummer() }, engine.KeyF)

	return table
}

// OnKeyDown runs every action bound to key
func (m *Module) OnKeyDown(key engine.Key) {
	for _, action := range m.keys[key] {
		action(m)
	}
}

func resumePhysics(m *Module) {
	m.host.SetNumPhysicsStepsPerRender(1)
}

func reloadScene(m *Module) {
	m.LoadMap()
	m.log.Info().Msg("Reloaded world with new background")
}

// withCamera runs f when the host has a camera
func withCamera(f func(m *Module, cam *engine.Camera)) keyAction {
	return func(m *Module) {
		if cam := m.host.Camera(); cam != nil {
			f(m, cam)
		}
	}
}

var (
	cameraForward = withCamera(func(_ *Module, cam *engine.Camera) {
		cam.MoveInLookDirection(CameraMoveDistance)
	})
	cameraBackward = withCamera(func(_ *Module, cam *engine.Camera) {
		cam.MoveOppositeLookDirection(CameraMoveDistance)
	})
	cameraLeft = withCamera(func(_ *Module, cam *engine.Camera) {
		for i := 0; i < CameraStrafeSteps; i++ {
			cam.MoveLeft()
		}
	})
	cameraRight = withCamera(func(_ *Module, cam *engine.Camera) {
		for i := 0; i < CameraStrafeSteps; i++ {
			cam.MoveRight()
		}
	})
	cameraToOrigin = withCamera(func(_ *Module, cam *engine.Camera) {
		cam.SetPosition(mgl32.Vec3{0, 0, 0})
	})
	logCameraPosition = withCamera(func(m *Module, cam *engine.Camera) {
		pos := cam.Position()
		m.log.Info().Floats32("position", pos[:]).Msg("Camera position")
	})
	playOofAtCamera = withCamera(func(m *Module, cam *engine.Camera) {
		pos := cam.Position()
		soundPos := audio.ToAudioSpace(pos)
		m.log.Info().
			Floats32("camera", pos[:]).
			Floats32("sound", soundPos[:]).
			Msg("Camera position")
		if m.sounds == nil {
			return
		}
		if _, err := m.sounds.Play3D(m.soundPath(oofSoundFile), pos, false, false, false); err != nil {
			m.log.Warn().Err(err).Msg("Oof sound unavailable")
		}
	})
)

// soundHorn replays the horn, replacing the handle once the last honk finished
func soundHorn(m *Module) {
	if m.hummer == nil || m.horn == nil {
		return
	}
	if m.horn.IsFinished() && m.sounds != nil {
		m.loadHorn()
	}
	m.horn.SetIsPaused(false)
}

func playOof(m *Module) {
	if m.sounds == nil {
		return
	}
	if _, err := m.sounds.Play2D(m.soundPath(oofSoundFile), false); err != nil {
		m.log.Warn().Err(err).Msg("Oof sound unavailable")
	}
}
