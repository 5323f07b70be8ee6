package engine

import (
	"github.com/go-gl/mathgl/mgl32"
)

// RenderOrder decides in which pass an object is drawn
type RenderOrder uint8

const (
	RenderOrderOpaque RenderOrder = iota
	RenderOrderLight
	RenderOrderTransparent
)

// Kind tags what an object represents so the renderer can draw it
type Kind uint8

const (
	KindModel Kind = iota
	KindLight
	KindSkyBox
	KindWayPoint
)

// Object is anything that can live in a WorldList
type Object interface {
	Label() string
	SetLabel(label string)
	Position() mgl32.Vec3
	SetPosition(pos mgl32.Vec3)
	Scale() mgl32.Vec3
	RenderOrder() RenderOrder
	Kind() Kind
	IsVisible() bool
}

// Updater is implemented by objects that need a per-frame tick from the host
type Updater interface {
	Update(frame FrameInfo)
}

// WO is a positioned world object backed by a model file
type WO struct {
	label       string
	modelPath   string
	position    mgl32.Vec3
	scale       mgl32.Vec3
	renderOrder RenderOrder
	kind        Kind
	visible     bool

	// Display matrix orients the model about its own origin
	displayMatrix mgl32.Mat4

	// Dynamic objects are integrated by the physics engine
	Dynamic  bool
	Velocity mgl32.Vec3
}

// NewWO creates a new world object from a model path and scale
func NewWO(modelPath string, scale mgl32.Vec3) *WO {
	return &WO{
		modelPath:     modelPath,
		scale:         scale,
		renderOrder:   RenderOrderOpaque,
		kind:          KindModel,
		visible:       true,
		displayMatrix: mgl32.Ident4(),
	}
}

func (wo *WO) Label() string            { return wo.label }
func (wo *WO) SetLabel(label string)    { wo.label = label }
func (wo *WO) Position() mgl32.Vec3     { return wo.position }
func (wo *WO) Scale() mgl32.Vec3        { return wo.scale }
func (wo *WO) RenderOrder() RenderOrder { return wo.renderOrder }
func (wo *WO) Kind() Kind               { return wo.kind }
func (wo *WO) IsVisible() bool          { return wo.visible }
func (wo *WO) ModelPath() string        { return wo.modelPath }

// SetPosition moves the object
func (wo *WO) SetPosition(pos mgl32.Vec3) {
	wo.position = pos
}

// SetRenderOrder sets the render pass for the object
func (wo *WO) SetRenderOrder(order RenderOrder) {
	wo.renderOrder = order
}

// SetVisible shows or hides the object
func (wo *WO) SetVisible(visible bool) {
	wo.visible = visible
}

// DisplayMatrix returns the model orientation
func (wo *WO) DisplayMatrix() mgl32.Mat4 {
	return wo.displayMatrix
}

// SetDisplayMatrix sets the model orientation
func (wo *WO) SetDisplayMatrix(m mgl32.Mat4) {
	wo.displayMatrix = m
}

// ModelMatrix returns translation * orientation * scale
func (wo *WO) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(wo.position.X(), wo.position.Y(), wo.position.Z()).
		Mul4(wo.displayMatrix).
		Mul4(mgl32.Scale3D(wo.scale.X(), wo.scale.Y(), wo.scale.Z()))
}

// Light is a light source placed in the world
type Light struct {
	*WO
	directional bool
	color       mgl32.Vec4
}

// NewLight creates a white point light
func NewLight() *Light {
	wo := NewWO("", mgl32.Vec3{1, 1, 1})
	wo.kind = KindLight
	wo.renderOrder = RenderOrderLight
	return &Light{
		WO:    wo,
		color: mgl32.Vec4{1, 1, 1, 1},
	}
}

// SetDirectional switches the light between directional and point
func (l *Light) SetDirectional(directional bool) {
	l.directional = directional
}

// IsDirectional reports whether the light is directional
func (l *Light) IsDirectional() bool {
	return l.directional
}

// Color returns the light color
func (l *Light) Color() mgl32.Vec4 {
	return l.color
}

// Direction returns the direction a directional light shines in, which is
// the model's +X axis rotated by the display matrix.
func (l *Light) Direction() mgl32.Vec3 {
	return l.displayMatrix.Mul4x1(mgl32.Vec4{1, 0, 0, 0}).Vec3().Normalize()
}

// SkyBox is a textured box that surrounds the camera
type SkyBox struct {
	*WO
	texturePath string
	camera      *Camera
}

// NewSkyBox creates a skybox textured from an image path that follows the camera
func NewSkyBox(texturePath string, camera *Camera) *SkyBox {
	wo := NewWO("", mgl32.Vec3{1, 1, 1})
	wo.kind = KindSkyBox
	return &SkyBox{
		WO:          wo,
		texturePath: texturePath,
		camera:      camera,
	}
}

// TexturePath returns the image the skybox is built from
func (s *SkyBox) TexturePath() string {
	return s.texturePath
}

// Position returns the camera position when attached to one
func (s *SkyBox) Position() mgl32.Vec3 {
	if s.camera != nil {
		return s.camera.Position()
	}
	return s.WO.Position()
}
