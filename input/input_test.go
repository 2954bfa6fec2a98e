package input

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"W", "w"},
		{"ArrowUp", "arrowup"},
		{"Shift", "shift"},
		{"ShiftLeft", "shift"},
		{" ", "space"},
		{"Spacebar", "space"},
		{"Up", "arrowup"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeKey(tt.in))
		})
	}
}

func TestState_KeysHeldAcrossFrames(t *testing.T) {
	s := NewState()
	b := DefaultBindings()

	s.Apply(KeyDown("W"))

	// Held key keeps asserting on every aggregation until released
	for frame := 0; frame < 5; frame++ {
		assert.True(t, Aggregate(s, b).Forward, "frame %d", frame)
	}

	s.Apply(KeyUp("w"))
	assert.False(t, Aggregate(s, b).Forward)
	assert.Empty(t, s.HeldKeys())
}

func TestAggregate_KeyboardBindings(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		check func(Intent) bool
	}{
		{"forward w", []string{"w"}, func(i Intent) bool { return i.Forward }},
		{"forward arrow", []string{"ArrowUp"}, func(i Intent) bool { return i.Forward }},
		{"backward", []string{"s"}, func(i Intent) bool { return i.Backward }},
		{"strafe left", []string{"a"}, func(i Intent) bool { return i.StrafeLeft }},
		{"strafe right", []string{"ArrowRight"}, func(i Intent) bool { return i.StrafeRight }},
		{"ascend", []string{" "}, func(i Intent) bool { return i.Ascend }},
		{"descend", []string{"e"}, func(i Intent) bool { return i.Descend }},
		{"boost", []string{"Shift"}, func(i Intent) bool { return i.Boost }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			for _, k := range tt.keys {
				s.Apply(KeyDown(k))
			}
			assert.True(t, tt.check(Aggregate(s, DefaultBindings())))
		})
	}
}

func TestAggregate_OppositeKeysBothReported(t *testing.T) {
	s := NewState()
	s.Apply(KeyDown("w"))
	s.Apply(KeyDown("s"))

	intent := Aggregate(s, DefaultBindings())
	assert.True(t, intent.Forward)
	assert.True(t, intent.Backward)
}

func TestAggregate_JoystickDeadzone(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want Intent
	}{
		{"inside deadzone", 0.2, -0.3, Intent{}},
		{"forward", 0, -5, Intent{Forward: true}},
		{"backward", 0, 0.31, Intent{Backward: true}},
		{"left", -10, 0, Intent{StrafeLeft: true}},
		{"diagonal forward right", 4, -4, Intent{Forward: true, StrafeRight: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			s.Apply(Joystick(tt.x, tt.y))

			got := Aggregate(s, DefaultBindings())
			require.NotNil(t, got.Analog)
			assert.Equal(t, tt.x, got.Analog.X)

			got.Analog = nil
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAggregate_InvalidJoystickIsNoIntent(t *testing.T) {
	s := NewState()
	s.Apply(Joystick(0, -8))
	s.Apply(Joystick(math.NaN(), 3))

	intent := Aggregate(s, DefaultBindings())
	assert.True(t, intent.IsZero())
	assert.Nil(t, intent.Analog)

	_, engaged := s.Joystick()
	assert.False(t, engaged)
}

func TestAggregate_SourcesOrCombine(t *testing.T) {
	s := NewState()
	s.Apply(KeyDown("a"))
	s.Apply(Joystick(0, -6))
	s.Apply(Event{Type: EventMobileVertical, Vertical: VerticalUp})
	s.Apply(Event{Type: EventMobileBoost, Pressed: true})

	intent := Aggregate(s, DefaultBindings())
	assert.True(t, intent.StrafeLeft)
	assert.True(t, intent.Forward)
	assert.True(t, intent.Ascend)
	assert.True(t, intent.Boost)

	s.Apply(Event{Type: EventMobileVertical, Vertical: VerticalDown})
	s.Apply(Event{Type: EventMobileBoost, Pressed: false})
	s.Apply(Event{Type: EventJoystickRelease})

	intent = Aggregate(s, DefaultBindings())
	assert.False(t, intent.Ascend)
	assert.True(t, intent.Descend)
	assert.False(t, intent.Boost)
	assert.False(t, intent.Forward)
}

func TestAggregate_NilState(t *testing.T) {
	assert.True(t, Aggregate(nil, DefaultBindings()).IsZero())
}

func TestState_PointerEventsNotConsumed(t *testing.T) {
	s := NewState()
	assert.False(t, s.Apply(Event{Type: EventPointerDown, X: 3, Y: 4}))
	assert.False(t, s.Apply(Event{Type: EventZoom, Y: 1}))
	assert.True(t, (Event{Type: EventPointerMove}).IsPointer())
}

func TestState_Clear(t *testing.T) {
	s := NewState()
	s.Apply(KeyDown("w"))
	s.Apply(Joystick(1, 1))
	s.Apply(Event{Type: EventMobileBoost, Pressed: true})

	s.Clear()
	assert.True(t, Aggregate(s, DefaultBindings()).IsZero())
}

func TestBindings_Merge(t *testing.T) {
	b := DefaultBindings().Merge(map[string][]string{
		"Boost":   {"B", "Shift"},
		"unknown": {"x"},
	})

	assert.Equal(t, []string{"b", "shift"}, b[ActionBoost])
	assert.Equal(t, []string{"w", "arrowup"}, b[ActionForward])

	s := NewState()
	s.Apply(KeyDown("b"))
	assert.True(t, Aggregate(s, b).Boost)

	// Defaults are not mutated by Merge
	assert.Equal(t, []string{"shift"}, DefaultBindings()[ActionBoost])
}

func TestIntent_Helpers(t *testing.T) {
	assert.True(t, Intent{StrafeLeft: true}.Strafing())
	assert.False(t, Intent{StrafeLeft: true, StrafeRight: true}.Strafing())
	assert.True(t, Intent{Descend: true}.Climbing())
	assert.True(t, Intent{}.IsZero())
}
