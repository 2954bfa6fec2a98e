package input

import (
	"github.com/lixenwraith/spacefolio/parameter"
)

// Aggregate folds keyboard, joystick and mobile buttons into one Intent
// Sources are OR-combined per direction, no side effects
func Aggregate(s *State, b Bindings) Intent {
	if s == nil {
		return Intent{}
	}

	intent := Intent{
		Forward:     b.asserted(s, ActionForward),
		Backward:    b.asserted(s, ActionBackward),
		StrafeLeft:  b.asserted(s, ActionStrafeLeft),
		StrafeRight: b.asserted(s, ActionStrafeRight),
		Ascend:      b.asserted(s, ActionAscend),
		Descend:     b.asserted(s, ActionDescend),
		Boost:       b.asserted(s, ActionBoost),
	}

	// Stick axes are tested independently against the dead-zone, screen Y grows downward
	if stick, ok := s.Joystick(); ok {
		intent.Forward = intent.Forward || stick.Y < -parameter.JoystickDeadzone
		intent.Backward = intent.Backward || stick.Y > parameter.JoystickDeadzone
		intent.StrafeLeft = intent.StrafeLeft || stick.X < -parameter.JoystickDeadzone
		intent.StrafeRight = intent.StrafeRight || stick.X > parameter.JoystickDeadzone
		intent.Analog = &stick
	}

	switch s.MobileVertical() {
	case VerticalUp:
		intent.Ascend = true
	case VerticalDown:
		intent.Descend = true
	}

	intent.Boost = intent.Boost || s.MobileBoost()

	return intent
}
