package parameter

import "time"

// Analog input
const (
	// JoystickDeadzone is tested per axis, magnitudes at or below it contribute nothing
	JoystickDeadzone = 0.3

	// JoystickRange is the nominal absolute bound reported by the virtual joystick
	JoystickRange = 10.0
)

// Terminal key hold synthesis
// Terminals deliver key presses and repeats but no releases
const (
	// KeyHoldDuration releases a key when no repeat arrived within it
	// Must exceed the typical initial auto-repeat delay
	KeyHoldDuration = 450 * time.Millisecond

	// KeyHoldSweepInterval is how often held keys are checked for expiry
	KeyHoldSweepInterval = 30 * time.Millisecond
)
