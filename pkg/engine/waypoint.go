package engine

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// FrameInfo is passed to every Updater once per frame
type FrameInfo struct {
	Now    time.Time
	Camera *Camera
}

// WayPointParameters configures a waypoint
type WayPointParameters struct {
	// Frequency is the minimum time between two triggers
	Frequency time.Duration
	// UseCamera makes the host camera the activator
	UseCamera bool
	Visible   bool
	// OnTrigger is called each time the waypoint fires
	OnTrigger func(wp *WayPoint)
}

// WayPoint is a spherical trigger region
type WayPoint struct {
	*WO
	radius    float32
	params    WayPointParameters
	lastFired time.Time
	fired     int
}

// NewWayPoint creates a spherical waypoint with the given radius
func NewWayPoint(params WayPointParameters, radius float32) *WayPoint {
	wo := NewWO("", mgl32.Vec3{radius, radius, radius})
	wo.kind = KindWayPoint
	wo.renderOrder = RenderOrderTransparent
	wo.visible = params.Visible
	wo.label = "WayPoint"
	return &WayPoint{
		WO:     wo,
		radius: radius,
		params: params,
	}
}

// Radius returns the trigger radius
func (wp *WayPoint) Radius() float32 {
	return wp.radius
}

// Frequency returns the minimum time between triggers
func (wp *WayPoint) Frequency() time.Duration {
	return wp.params.Frequency
}

// UsesCamera reports whether the camera activates the waypoint
func (wp *WayPoint) UsesCamera() bool {
	return wp.params.UseCamera
}

// TimesFired returns how many times the waypoint has triggered
func (wp *WayPoint) TimesFired() int {
	return wp.fired
}

// Contains reports whether a point lies inside the trigger sphere
func (wp *WayPoint) Contains(p mgl32.Vec3) bool {
	return p.Sub(wp.position).Len() <= wp.radius
}

// Update fires the waypoint when its activator is inside and the period has elapsed
func (wp *WayPoint) Update(frame FrameInfo) {
	if !wp.params.UseCamera || frame.Camera == nil {
		return
	}
	if !wp.Contains(frame.Camera.Position()) {
		return
	}
	if wp.fired > 0 && frame.Now.Sub(wp.lastFired) < wp.params.Frequency {
		return
	}

	wp.lastFired = frame.Now
	wp.fired++
	if wp.params.OnTrigger != nil {
		wp.params.OnTrigger(wp)
	}
}
