package input

import "github.com/lixenwraith/spacefolio/vmath"

// EventType discriminates raw input events
type EventType uint8

const (
	EventNone EventType = iota

	// Keyboard, Key carries the identifier (case-insensitive)
	EventKeyDown
	EventKeyUp

	// Virtual joystick, X/Y carry the stick vector in roughly [-10,10]
	EventJoystick
	EventJoystickRelease

	// Mobile discrete buttons
	EventMobileVertical // Vertical carries the held button
	EventMobileBoost    // Pressed carries the button state

	// Pointer (mouse / touch drag), consumed by the camera rig
	EventPointerDown
	EventPointerMove
	EventPointerUp
	EventZoom // Y carries wheel/pinch delta, positive zooms out
)

// Vertical is the mobile up/down button state
type Vertical uint8

const (
	VerticalNone Vertical = iota
	VerticalUp
	VerticalDown
)

// Event is a raw input event produced outside the frame loop
// Pure data, applied to State by the simulation goroutine
type Event struct {
	Type     EventType
	Key      string
	X, Y     float64
	Vertical Vertical
	Pressed  bool
}

// KeyDown builds a key press event
func KeyDown(key string) Event {
	return Event{Type: EventKeyDown, Key: key}
}

// KeyUp builds a key release event
func KeyUp(key string) Event {
	return Event{Type: EventKeyUp, Key: key}
}

// Joystick builds a stick movement event
func Joystick(x, y float64) Event {
	return Event{Type: EventJoystick, X: x, Y: y}
}

// Pointer returns the event coordinates as a vector
func (e Event) Pointer() vmath.Vec2F {
	return vmath.Vec2F{X: e.X, Y: e.Y}
}

// IsPointer reports whether the event belongs to the camera rig
func (e Event) IsPointer() bool {
	switch e.Type {
	case EventPointerDown, EventPointerMove, EventPointerUp, EventZoom:
		return true
	}
	return false
}
