package engine

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Physics integrates dynamic world objects under gravity
type Physics struct {
	gravityDir    mgl32.Vec3
	gravityScalar float32
}

// NewPhysics creates a physics engine with gravity pointing down the Z axis
func NewPhysics(gravityScalar float32) *Physics {
	return &Physics{
		gravityDir:    mgl32.Vec3{0, 0, -1},
		gravityScalar: gravityScalar,
	}
}

// SetGravityNormalizedVector sets the gravity direction; the vector is normalized
func (p *Physics) SetGravityNormalizedVector(dir mgl32.Vec3) {
	if dir.Len() == 0 {
		p.gravityDir = mgl32.Vec3{}
		return
	}
	p.gravityDir = dir.Normalize()
}

// SetGravityScalar sets the gravity magnitude
func (p *Physics) SetGravityScalar(g float32) {
	p.gravityScalar = g
}

// GravityNormalizedVector returns the gravity direction
func (p *Physics) GravityNormalizedVector() mgl32.Vec3 {
	return p.gravityDir
}

// GravityScalar returns the gravity magnitude
func (p *Physics) GravityScalar() float32 {
	return p.gravityScalar
}

// Gravity returns the acceleration vector
func (p *Physics) Gravity() mgl32.Vec3 {
	return p.gravityDir.Mul(p.gravityScalar)
}

// Step advances every dynamic object by dt using semi-implicit Euler
func (p *Physics) Step(world *WorldList, dt time.Duration) {
	if world == nil {
		return
	}
	seconds := float32(dt.Seconds())
	accel := p.Gravity().Mul(seconds)

	for _, obj := range world.Objects() {
		wo := asWO(obj)
		if wo == nil || !wo.Dynamic {
			continue
		}
		wo.Velocity = wo.Velocity.Add(accel)
		wo.position = wo.position.Add(wo.Velocity.Mul(seconds))
	}
}

// asWO unwraps the embedded WO of the engine object types
func asWO(obj Object) *WO {
	switch o := obj.(type) {
	case *WO:
		return o
	case *Light:
		return o.WO
	case *SkyBox:
		return o.WO
	case *WayPoint:
		return o.WO
	}
	return nil
}
