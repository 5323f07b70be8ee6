package audio

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMinDistance is the distance inside which a 3D sound plays at full volume
const DefaultMinDistance = 1.0

// listener is where sounds are heard from
type listener struct {
	position mgl32.Vec3
	look     mgl32.Vec3
	up       mgl32.Vec3
	velocity mgl32.Vec3
}

func defaultListener() listener {
	return listener{
		look: mgl32.Vec3{1, 0, 0},
		up:   mgl32.Vec3{0, 0, 1},
	}
}

// attenuation returns the linear gain for an emitter at dist: 1 inside
// minDist, minDist/dist beyond it.
func attenuation(dist, minDist float32) float32 {
	if minDist <= 0 {
		minDist = DefaultMinDistance
	}
	if dist <= minDist {
		return 1
	}
	return minDist / dist
}

// stereoPan returns -1 (left) to 1 (right) for an emitter relative to the listener
func stereoPan(l listener, emitter mgl32.Vec3) float64 {
	rel := emitter.Sub(l.position)
	if rel.Len() == 0 {
		return 0
	}
	right := l.look.Cross(l.up)
	if right.Len() == 0 {
		return 0
	}
	p := rel.Normalize().Dot(right.Normalize())
	return float64(mgl32.Clamp(p, -1, 1))
}

// gainToVolume converts a linear gain into an exponent for effects.Volume with base 2
func gainToVolume(gain float32) (volume float64, silent bool) {
	if gain <= 0 {
		return 0, true
	}
	return math.Log2(float64(gain)), false
}
