package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVecNear(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-4, "component %d: want %v, got %v", i, want, got)
	}
}

func TestCameraDefaultBasis(t *testing.T) {
	c := NewCamera(mgl32.Vec3{-25, 0, 15})

	assertVecNear(t, mgl32.Vec3{1, 0, 0}, c.LookDirection())
	assertVecNear(t, mgl32.Vec3{0, 0, 1}, c.NormalDirection())
	assertVecNear(t, mgl32.Vec3{0, -1, 0}, c.RightDirection())
}

func TestCameraMoves(t *testing.T) {
	c := NewCamera(mgl32.Vec3{-25, 0, 15})

	c.MoveInLookDirection(10)
	assertVecNear(t, mgl32.Vec3{-15, 0, 15}, c.Position())

	c.MoveOppositeLookDirection(20)
	assertVecNear(t, mgl32.Vec3{-35, 0, 15}, c.Position())

	c.MoveLeft()
	assertVecNear(t, mgl32.Vec3{-35, 1, 15}, c.Position())

	c.MoveRight()
	c.MoveRight()
	assertVecNear(t, mgl32.Vec3{-35, -1, 15}, c.Position())
}

func TestCameraLookAt(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 0})

	c.LookAt(mgl32.Vec3{0, 10, 0})
	assertVecNear(t, mgl32.Vec3{0, 1, 0}, c.LookDirection())
	assertVecNear(t, mgl32.Vec3{1, 0, 0}, c.RightDirection())

	// Looking at its own position leaves the orientation alone
	c.LookAt(mgl32.Vec3{0, 0, 0})
	assertVecNear(t, mgl32.Vec3{0, 1, 0}, c.LookDirection())
}

func TestCameraPitchClamped(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})

	c.SetRotation(0, 120)
	_, pitch := c.Orientation()
	assert.Equal(t, float32(MaxPitch), pitch)

	c.SetRotation(0, -120)
	_, pitch = c.Orientation()
	assert.Equal(t, float32(MinPitch), pitch)
}

func TestCameraMouseMovement(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})

	// First sample only records the cursor
	c.HandleMouseMovement(100, 100)
	yaw, pitch := c.Orientation()
	assert.Equal(t, float32(0), yaw)
	assert.Equal(t, float32(0), pitch)

	c.HandleMouseMovement(110, 90)
	yaw, pitch = c.Orientation()
	assert.InDelta(t, -1.0, yaw, 1e-5)
	assert.InDelta(t, 1.0, pitch, 1e-5)

	c.ResetMouseState()
	c.HandleMouseMovement(500, 500)
	yaw, _ = c.Orientation()
	assert.InDelta(t, -1.0, yaw, 1e-5)
}

func TestCameraScrollClampsFOV(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	before := c.ProjectionMatrix()

	c.HandleMouseScroll(10)
	assert.NotEqual(t, before, c.ProjectionMatrix())

	c.HandleMouseScroll(-100)
	assert.Equal(t, before, c.ProjectionMatrix())
}

func TestCameraIgnoresEmptyViewport(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	before := c.ProjectionMatrix()

	c.UpdateProjectionMatrix(0, 600)
	assert.Equal(t, before, c.ProjectionMatrix())

	c.UpdateProjectionMatrix(1600, 600)
	assert.NotEqual(t, before, c.ProjectionMatrix())
}

func TestCameraViewMatrixMapsPositionToOrigin(t *testing.T) {
	c := NewCamera(mgl32.Vec3{3, 4, 5})
	c.SetRotation(30, 10)

	p := c.ViewMatrix().Mul4x1(c.Position().Vec4(1)).Vec3()
	assertVecNear(t, mgl32.Vec3{}, p)

	// The look direction maps onto -Z in view space
	ahead := c.ViewMatrix().Mul4x1(c.Position().Add(c.LookDirection()).Vec4(1)).Vec3()
	assertVecNear(t, mgl32.Vec3{0, 0, -1}, ahead)
}
