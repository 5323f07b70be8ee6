package engine

import "time"

// Camera constants
const (
	// Movement
	DefaultRotateSpeed = 0.1
	LateralStep        = 1.0

	// Default orientation, looking along +X with +Z up
	DefaultYaw   = 0.0
	DefaultPitch = 0.0

	// Field of view
	DefaultFOV = 45.0
	MinFOV     = 1.0
	MaxFOV     = 45.0

	// Constraints
	MaxPitch = 89.0
	MinPitch = -89.0

	// Clip planes
	DefaultNearPlane = 0.1
	DefaultFarPlane  = 1000.0
)

// Physics constants
const (
	// Gravity is the default gravity scalar in m/s^2
	Gravity = 9.81

	// PhysicsTimeStep is the fixed duration of one physics step
	PhysicsTimeStep = time.Second / 60

	DefaultStepsPerRender = 1
)
