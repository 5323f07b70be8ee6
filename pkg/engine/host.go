package engine

import (
	"errors"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

var (
	// ErrNoModule is returned by Start when no module was registered
	ErrNoModule = errors.New("engine: no module registered")
	// ErrAlreadyStarted is returned by Start when called twice
	ErrAlreadyStarted = errors.New("engine: host already started")
)

// ModuleCallbacks is the capability a module registers with the host.
// The host invokes every method from its own loop; a module never calls them itself.
type ModuleCallbacks interface {
	// LoadMap builds the module's scene. It may be invoked again to rebuild.
	LoadMap()
	// OnCreate runs once, after the first LoadMap, when the host is fully initialized.
	OnCreate()
	// OnFrame runs once per frame after the host's own frame work.
	OnFrame()
	OnKeyDown(key Key)
	OnKeyUp(key Key)
	OnResize(width, height int)
}

// RenderOptions holds global renderer state a module may change
type RenderOptions struct {
	NearPlane      float32
	FarPlane       float32
	FrustumCulling bool
	AxesVisible    bool
	ShadowMapping  bool
}

// HostOptions configures a new host
type HostOptions struct {
	CameraPosition mgl32.Vec3
	GravityScalar  float32
	StepsPerRender int
}

// DefaultHostOptions returns the options used when none are configured
func DefaultHostOptions() HostOptions {
	return HostOptions{
		CameraPosition: mgl32.Vec3{0, 0, 0},
		GravityScalar:  Gravity,
		StepsPerRender: DefaultStepsPerRender,
	}
}

// Host owns the scene, camera and physics and drives a registered module
type Host struct {
	log zerolog.Logger

	module  ModuleCallbacks
	started bool

	world   *WorldList
	camera  *Camera
	physics *Physics

	stepsPerRender int
	renderOptions  RenderOptions
	globalAmbient  mgl32.Vec4

	frameCount  uint64
	shouldClose bool

	mouseCaptured bool
}

// NewHost creates a host with an empty world
func NewHost(opts HostOptions, log zerolog.Logger) *Host {
	if opts.StepsPerRender < 0 {
		opts.StepsPerRender = 0
	}
	return &Host{
		log:            log.With().Str("component", "host").Logger(),
		world:          NewWorldList(),
		camera:         NewCamera(opts.CameraPosition),
		physics:        NewPhysics(opts.GravityScalar),
		stepsPerRender: opts.StepsPerRender,
		renderOptions: RenderOptions{
			NearPlane: DefaultNearPlane,
			FarPlane:  DefaultFarPlane,
		},
		globalAmbient: mgl32.Vec4{0.2, 0.2, 0.2, 1},
	}
}

// Register installs the module whose callbacks the host drives
func (h *Host) Register(module ModuleCallbacks) {
	h.module = module
}

// Start builds the module's scene and then signals creation
func (h *Host) Start() error {
	if h.module == nil {
		return ErrNoModule
	}
	if h.started {
		return ErrAlreadyStarted
	}
	h.started = true

	h.module.LoadMap()
	h.module.OnCreate()

	h.log.Info().Int("objects", h.world.Len()).Msg("Module started")
	return nil
}

// Frame advances the simulation by one rendered frame
func (h *Host) Frame(now time.Time) {
	for i := 0; i < h.stepsPerRender; i++ {
		h.physics.Step(h.world, PhysicsTimeStep)
	}

	frame := FrameInfo{Now: now, Camera: h.camera}
	for _, obj := range h.world.Objects() {
		if u, ok := obj.(Updater); ok {
			u.Update(frame)
		}
	}

	h.frameCount++

	if h.module != nil {
		h.module.OnFrame()
	}
}

// KeyDown handles host keys and forwards the event to the module
func (h *Host) KeyDown(key Key) {
	switch key {
	case KeyEscape:
		h.shouldClose = true
	case KeyC:
		h.mouseCaptured = !h.mouseCaptured
		if h.camera != nil {
			h.camera.ResetMouseState()
		}
	}

	if h.module != nil {
		h.module.OnKeyDown(key)
	}
}

// KeyUp forwards a key release to the module
func (h *Host) KeyUp(key Key) {
	if h.module != nil {
		h.module.OnKeyUp(key)
	}
}

// Resize updates the projection and forwards the new size to the module
func (h *Host) Resize(width, height int) {
	if h.camera != nil {
		h.camera.UpdateProjectionMatrix(width, height)
	}
	if h.module != nil {
		h.module.OnResize(width, height)
	}
}

// MouseMove rotates the camera while the mouse is captured
func (h *Host) MouseMove(xpos, ypos float64) {
	if h.mouseCaptured && h.camera != nil {
		h.camera.HandleMouseMovement(xpos, ypos)
	}
}

// MouseScroll zooms the camera
func (h *Host) MouseScroll(yoffset float64) {
	if h.camera != nil {
		h.camera.HandleMouseScroll(yoffset)
	}
}

// Camera returns the host camera
func (h *Host) Camera() *Camera {
	return h.camera
}

// World returns the current world list
func (h *Host) World() *WorldList {
	return h.world
}

// ResetWorld discards the current world list and returns a fresh one
func (h *Host) ResetWorld() *WorldList {
	h.world = NewWorldList()
	return h.world
}

// Physics returns the physics engine
func (h *Host) Physics() *Physics {
	return h.physics
}

// SetNumPhysicsStepsPerRender sets how many physics steps run per frame; 0 pauses physics
func (h *Host) SetNumPhysicsStepsPerRender(n int) {
	if n < 0 {
		n = 0
	}
	h.stepsPerRender = n
}

// NumPhysicsStepsPerRender returns the physics steps run per frame
func (h *Host) NumPhysicsStepsPerRender() int {
	return h.stepsPerRender
}

// SetRenderOptions replaces the renderer options and applies the clip planes to the camera
func (h *Host) SetRenderOptions(opts RenderOptions) {
	h.renderOptions = opts
	if h.camera != nil {
		h.camera.SetClipPlanes(opts.NearPlane, opts.FarPlane)
	}
}

// RenderOptions returns the renderer options
func (h *Host) RenderOptions() RenderOptions {
	return h.renderOptions
}

// SetGlobalAmbientLight sets the ambient light color
func (h *Host) SetGlobalAmbientLight(color mgl32.Vec4) {
	h.globalAmbient = color
}

// GlobalAmbientLight returns the ambient light color
func (h *Host) GlobalAmbientLight() mgl32.Vec4 {
	return h.globalAmbient
}

// FrameCount returns the number of frames run
func (h *Host) FrameCount() uint64 {
	return h.frameCount
}

// ShouldClose reports whether the host asked to exit
func (h *Host) ShouldClose() bool {
	return h.shouldClose
}

// MouseCaptured reports whether the host wants the cursor captured
func (h *Host) MouseCaptured() bool {
	return h.mouseCaptured
}
