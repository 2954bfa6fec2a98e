package input

import "github.com/lixenwraith/spacefolio/vmath"

// Intent is the normalized per-frame request derived from every input source
// Pure data, recomputed each frame and never stored across frames
// Opposite flags may both be set, the flight model cancels them by vector sum
type Intent struct {
	Forward     bool
	Backward    bool
	StrafeLeft  bool
	StrafeRight bool
	Ascend      bool
	Descend     bool
	Boost       bool

	// Analog is the raw stick vector when a joystick or drag source is engaged
	Analog *vmath.Vec2F
}

// Strafing reports whether exactly one strafe direction is requested
func (i Intent) Strafing() bool {
	return i.StrafeLeft != i.StrafeRight
}

// Climbing reports whether exactly one vertical direction is requested
func (i Intent) Climbing() bool {
	return i.Ascend != i.Descend
}

// IsZero reports whether no direction or modifier is requested
func (i Intent) IsZero() bool {
	return !i.Forward && !i.Backward && !i.StrafeLeft && !i.StrafeRight &&
		!i.Ascend && !i.Descend && !i.Boost
}
