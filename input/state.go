package input

import (
	"sort"

	"github.com/lixenwraith/spacefolio/vmath"
)

// State is the raw input state persisted across frames
// Held keys stay down until their key-up arrives; every other source is a latest-value slot
// Only the simulation goroutine mutates it, through Apply
type State struct {
	keys     map[string]bool
	joystick *vmath.Vec2F
	vertical Vertical
	boost    bool
}

// NewState creates an empty input state
func NewState() *State {
	return &State{
		keys: make(map[string]bool),
	}
}

// Apply reduces one raw event into the state
// Returns false for events that do not belong to the input state (pointer events)
func (s *State) Apply(ev Event) bool {
	switch ev.Type {
	case EventKeyDown:
		if key := NormalizeKey(ev.Key); key != "" {
			s.keys[key] = true
		}
	case EventKeyUp:
		delete(s.keys, NormalizeKey(ev.Key))
	case EventJoystick:
		// A stick reporting garbage coordinates degrades to released
		if !vmath.IsFinite(ev.X) || !vmath.IsFinite(ev.Y) {
			s.joystick = nil
			return true
		}
		s.joystick = &vmath.Vec2F{X: ev.X, Y: ev.Y}
	case EventJoystickRelease:
		s.joystick = nil
	case EventMobileVertical:
		s.vertical = ev.Vertical
	case EventMobileBoost:
		s.boost = ev.Pressed
	default:
		return false
	}
	return true
}

// Held reports whether key is currently down
func (s *State) Held(key string) bool {
	return s.keys[NormalizeKey(key)]
}

// HeldKeys returns the held key identifiers in sorted order
func (s *State) HeldKeys() []string {
	keys := make([]string, 0, len(s.keys))
	for k := range s.keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Joystick returns the stick vector and whether the stick is engaged
func (s *State) Joystick() (vmath.Vec2F, bool) {
	if s.joystick == nil {
		return vmath.Vec2F{}, false
	}
	return *s.joystick, true
}

// MobileVertical returns the held mobile vertical button
func (s *State) MobileVertical() Vertical {
	return s.vertical
}

// MobileBoost returns the mobile boost button state
func (s *State) MobileBoost() bool {
	return s.boost
}

// Clear releases every source
func (s *State) Clear() {
	clear(s.keys)
	s.joystick = nil
	s.vertical = VerticalNone
	s.boost = false
}
