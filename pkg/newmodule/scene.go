package newmodule

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/citydrive/pkg/engine"
)

// Scene layout
var (
	CameraStart      = mgl32.Vec3{-25, 0, 15}
	LightPosition    = mgl32.Vec3{0, 0, 100}
	CityPosition     = mgl32.Vec3{0, 0, 1350}
	WayPointPosition = mgl32.Vec3{50, 0, 3}
)

const (
	GlobalAmbient   = 0.1
	WayPointRadius  = 3
	WayPointPeriod  = 5 * time.Second
	hummerModel     = "/models/WOCarHummerTruck.wrl"
	cityModel       = "/models/citytexday_3ds/city_tex_day.3DS"
	citySoundFile   = "citysounds.ogg"
	hummerSoundFile = "carsounds.wav"
	hornSoundFile   = "horn1.wav"
	oofSoundFile    = "oof.mp3"
)

// LoadMap builds the scene into a fresh world list. It runs at startup and
// again on every rebuild; the hummer survives rebuilds.
func (m *Module) LoadMap() {
	world := m.host.ResetWorld()

	m.host.SetRenderOptions(engine.RenderOptions{
		NearPlane:      0.1,
		FarPlane:       1000,
		FrustumCulling: false,
		AxesVisible:    true,
		ShadowMapping:  false,
	})
	if cam := m.host.Camera(); cam != nil {
		cam.SetPosition(CameraStart)
	}

	skyBoxImage := m.mediaPath(m.Background())
	m.backgroundIndex = wrapBackground(m.backgroundIndex + 1)

	m.host.SetGlobalAmbientLight(mgl32.Vec4{GlobalAmbient, GlobalAmbient, GlobalAmbient, 1})

	// Directional light casting straight down, as though at noon
	light := engine.NewLight()
	light.SetDirectional(true)
	light.SetPosition(LightPosition)
	light.SetDisplayMatrix(mgl32.HomogRotate3DY(mgl32.DegToRad(90)))
	light.SetLabel("Light")
	world.Append(light)

	sky := engine.NewSkyBox(skyBoxImage, m.host.Camera())
	sky.SetLabel("Sky Box")
	sky.SetRenderOrder(engine.RenderOrderOpaque)
	world.Append(sky)

	city := engine.NewWO(m.mediaPath(cityModel), mgl32.Vec3{1, 1, 1})
	city.SetPosition(CityPosition)
	city.SetRenderOrder(engine.RenderOrderLight)
	city.SetLabel("City")
	// Scene props are static; gravity only moves objects marked Dynamic
	city.Dynamic = false
	world.Append(city)

	if m.hummer == nil {
		m.hummer = engine.NewWO(m.mediaPath(hummerModel), mgl32.Vec3{2, 2, 2})
		m.hummer.SetLabel("Hummer")
		m.hummer.SetPosition(HummerStart)
		m.hummer.SetRenderOrder(engine.RenderOrderLight)
		// Driven by HummerMove, never by gravity
		m.hummer.Dynamic = false
	}
	world.Append(m.hummer)

	m.createWayPoints(world)

	m.log.Info().Str("skybox", skyBoxImage).Int("objects", world.Len()).Msg("Scene built")
}

// createWayPoints adds a camera-triggered waypoint that fires at most every WayPointPeriod
func (m *Module) createWayPoints(world *engine.WorldList) {
	wp := engine.NewWayPoint(engine.WayPointParameters{
		Frequency: WayPointPeriod,
		UseCamera: true,
		Visible:   true,
		OnTrigger: func(wp *engine.WayPoint) {
			m.log.Info().Int("times", wp.TimesFired()).Msg("Waypoint reached")
		},
	}, WayPointRadius)
	wp.SetPosition(WayPointPosition)
	world.Append(wp)
}

// OnCreate sets gravity and starts the looping sounds. It runs once, after
// the first LoadMap.
func (m *Module) OnCreate() {
	if m.created {
		return
	}
	m.created = true

	if pe := m.host.Physics(); pe != nil {
		pe.SetGravityNormalizedVector(mgl32.Vec3{0, 0, -1})
		pe.SetGravityScalar(m.opts.GravityScalar)
	}

	if m.sounds == nil || m.hummer == nil {
		return
	}

	var err error
	m.citySound, err = m.sounds.Play2D(m.soundPath(citySoundFile), true)
	if err != nil {
		m.log.Warn().Err(err).Msg("City sound unavailable")
	}

	m.hummerSound, err = m.sounds.Play3D(m.soundPath(hummerSoundFile), m.hummer.Position(), true, false, true)
	if err != nil {
		m.log.Warn().Err(err).Msg("Engine sound unavailable")
	}
	if m.hummerSound != nil {
		m.hummerSound.SetMinDistance(HummerEngineMinDistance)
	}

	m.loadHorn()
}

// loadHorn creates a paused horn at the hummer. On failure the current handle is kept.
func (m *Module) loadHorn() {
	horn, err := m.sounds.Play3D(m.soundPath(hornSoundFile), m.hummer.Position(), false, true, true)
	if err != nil {
		m.log.Warn().Err(err).Msg("Horn sound unavailable")
		return
	}
	if horn == nil {
		return
	}
	horn.SetSoundStopEventReceiver(m.hornStopped)
	m.horn = horn
}
