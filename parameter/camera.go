package parameter

import "math"

// Chase camera, world-space offset from the craft (not rotated with it)
const (
	// CameraBaseHeight is the chase offset on Y
	CameraBaseHeight = 4.0

	// CameraBaseDistance is the chase offset on +Z (behind a craft flying toward -Z)
	CameraBaseDistance = 12.0

	// CameraFollowLerp is the per-frame blend toward the chase target
	CameraFollowLerp = 0.03
)

// Orbit camera, active while the simulation is paused
const (
	// CameraSensitivity scales pointer drag deltas into radians
	CameraSensitivity = 0.005

	CameraMinDistance = 6.0
	CameraMaxDistance = 25.0

	// CameraZoomStep is the distance change per wheel notch
	CameraZoomStep = 1.0

	// CameraOrbitLerp is the per-frame blend toward the orbit position
	CameraOrbitLerp = 0.15

	// CameraVerticalLimit bounds orbit elevation to ±60°
	CameraVerticalLimit = math.Pi / 3
)

// Projection used at the rendering boundary
const (
	CameraFieldOfView = 60.0 // degrees, vertical
	CameraNearPlane   = 0.1
	CameraFarPlane    = 1000.0
)
