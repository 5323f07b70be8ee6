package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera implements a 3D camera in a Z-up, right-handed world
type Camera struct {
	// Position and orientation
	position mgl32.Vec3
	worldUp  mgl32.Vec3
	look     mgl32.Vec3
	normal   mgl32.Vec3
	right    mgl32.Vec3

	// Euler angles
	yaw   float32
	pitch float32

	// Camera options
	fov         float32
	rotateSpeed float32
	lateralStep float32

	// Mouse state
	lastX      float64
	lastY      float64
	firstMouse bool

	// Projection
	projection mgl32.Mat4
	width      int
	height     int
	near       float32
	far        float32
}

// NewCamera creates a new camera looking along +X
func NewCamera(position mgl32.Vec3) *Camera {
	camera := &Camera{
		position:    position,
		worldUp:     mgl32.Vec3{0, 0, 1},
		yaw:         DefaultYaw,
		pitch:       DefaultPitch,
		fov:         DefaultFOV,
		rotateSpeed: DefaultRotateSpeed,
		lateralStep: LateralStep,
		firstMouse:  true,
		width:       800,
		height:      600,
		near:        DefaultNearPlane,
		far:         DefaultFarPlane,
	}

	camera.updateCameraVectors()
	camera.updateProjectionMatrix()

	return camera
}

// updateCameraVectors recalculates look, right and normal from the Euler angles
func (c *Camera) updateCameraVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	look := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
	}
	c.look = look.Normalize()

	c.right = c.look.Cross(c.worldUp).Normalize()
	c.normal = c.right.Cross(c.look).Normalize()
}

func (c *Camera) updateProjectionMatrix() {
	aspect := float32(c.width) / float32(c.height)
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, c.near, c.far)
}

// UpdateProjectionMatrix updates the projection matrix with new dimensions
func (c *Camera) UpdateProjectionMatrix(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width = width
	c.height = height
	c.updateProjectionMatrix()
}

// SetClipPlanes sets the near and far clipping planes
func (c *Camera) SetClipPlanes(near, far float32) {
	c.near = near
	c.far = far
	c.updateProjectionMatrix()
}

// ViewMatrix returns the current view matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.look), c.normal)
}

// ProjectionMatrix returns the current projection matrix
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera position
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// LookDirection returns the unit vector the camera faces
func (c *Camera) LookDirection() mgl32.Vec3 {
	return c.look
}

// NormalDirection returns the camera's up vector
func (c *Camera) NormalDirection() mgl32.Vec3 {
	return c.normal
}

// RightDirection returns the camera's right vector
func (c *Camera) RightDirection() mgl32.Vec3 {
	return c.right
}

// Orientation returns the current camera orientation (yaw, pitch)
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// SetRotation sets the camera rotation angles in degrees
func (c *Camera) SetRotation(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = mgl32.Clamp(pitch, MinPitch, MaxPitch)
	c.updateCameraVectors()
}

// LookAt makes the camera look at a specific point
func (c *Camera) LookAt(target mgl32.Vec3) {
	direction := target.Sub(c.position)
	if direction.Len() == 0 {
		return
	}
	direction = direction.Normalize()

	c.yaw = mgl32.RadToDeg(float32(math.Atan2(float64(direction.Y()), float64(direction.X()))))
	c.pitch = mgl32.Clamp(mgl32.RadToDeg(float32(math.Asin(float64(direction.Z())))), MinPitch, MaxPitch)

	c.updateCameraVectors()
}

// MoveInLookDirection moves the camera forward by dist
func (c *Camera) MoveInLookDirection(dist float32) {
	c.position = c.position.Add(c.look.Mul(dist))
}

// MoveOppositeLookDirection moves the camera backward by dist
func (c *Camera) MoveOppositeLookDirection(dist float32) {
	c.position = c.position.Sub(c.look.Mul(dist))
}

// MoveLeft strafes the camera one lateral step to the left
func (c *Camera) MoveLeft() {
	c.position = c.position.Sub(c.right.Mul(c.lateralStep))
}

// MoveRight strafes the camera one lateral step to the right
func (c *Camera) MoveRight() {
	c.position = c.position.Add(c.right.Mul(c.lateralStep))
}

// HandleMouseMovement updates camera orientation based on mouse movement
func (c *Camera) HandleMouseMovement(xpos, ypos float64) {
	if c.firstMouse {
		c.lastX = xpos
		c.lastY = ypos
		c.firstMouse = false
		return
	}

	xoffset := float32(xpos - c.lastX)
	yoffset := float32(c.lastY - ypos) // Reversed: y ranges bottom to top

	c.lastX = xpos
	c.lastY = ypos

	// Moving the mouse right turns clockwise seen from above, which is a negative yaw about +Z
	c.yaw -= xoffset * c.rotateSpeed
	c.pitch = mgl32.Clamp(c.pitch+yoffset*c.rotateSpeed, MinPitch, MaxPitch)

	c.updateCameraVectors()
}

// HandleMouseScroll handles mouse scroll for zoom
func (c *Camera) HandleMouseScroll(yoffset float64) {
	c.fov = mgl32.Clamp(c.fov-float32(yoffset), MinFOV, MaxFOV)
	c.updateProjectionMatrix()
}

// ResetMouseState resets the first-mouse flag for smooth camera control
func (c *Camera) ResetMouseState() {
	c.firstMouse = true
}
