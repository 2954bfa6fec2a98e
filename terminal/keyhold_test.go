package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/spacefolio/input"
	"github.com/lixenwraith/spacefolio/parameter"
)

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestKeyHold_RepeatKeepsKeyHeld(t *testing.T) {
	h := NewKeyHold(450 * time.Millisecond)

	assert.True(t, h.Press("w", t0))
	assert.False(t, h.Press("w", t0.Add(300*time.Millisecond)), "repeat is not a new press")

	// Refreshed at +300ms, still held at +700ms
	assert.Empty(t, h.Expire(t0.Add(700*time.Millisecond)))
	assert.True(t, h.Held("w"))

	assert.Equal(t, []string{"w"}, h.Expire(t0.Add(750*time.Millisecond)))
	assert.False(t, h.Held("w"))
	assert.Zero(t, h.Len())
}

func TestKeyHold_ExpireSorted(t *testing.T) {
	h := NewKeyHold(100 * time.Millisecond)
	h.Press("w", t0)
	h.Press("d", t0)
	h.Press("shift", t0.Add(80*time.Millisecond))

	assert.Equal(t, []string{"d", "w"}, h.Expire(t0.Add(100*time.Millisecond)))
	assert.Equal(t, []string{"shift"}, h.ReleaseAll())
	assert.Empty(t, h.ReleaseAll())
}

func TestKeyHold_Release(t *testing.T) {
	h := NewKeyHold(time.Second)
	assert.False(t, h.Release("shift"))
	h.Press("shift", t0)
	assert.True(t, h.Release("shift"))
	assert.True(t, h.Press("shift", t0), "released key presses again")
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		name    string
		ev      *tcell.EventKey
		want    string
		shifted bool
	}{
		{"lower rune", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), "w", false},
		{"upper rune implies shift", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone), "w", true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "space", false},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "arrowup", false},
		{"shifted arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), "arrowleft", true},
		{"unmapped", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, shifted := keyName(tt.ev)
			assert.Equal(t, tt.want, name)
			assert.Equal(t, tt.shifted, shifted)
		})
	}
}

func TestControlFor(t *testing.T) {
	assert.Equal(t, controlQuit, controlFor(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.Equal(t, controlQuit, controlFor(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)))
	assert.Equal(t, controlOpen, controlFor(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.Equal(t, controlClose, controlFor(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.Equal(t, controlToggleMode, controlFor(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)))
	assert.Equal(t, controlMute, controlFor(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone)))

	// q ascends, it never quits
	assert.Equal(t, controlNone, controlFor(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
}

func TestPointerTranslate(t *testing.T) {
	var p pointer

	down := p.translate(tcell.NewEventMouse(2, 3, tcell.Button1, tcell.ModNone))
	assert.Equal(t, []input.Event{{
		Type: input.EventPointerDown,
		X:    2 * parameter.TerminalCellWidthPx,
		Y:    3 * parameter.TerminalCellHeightPx,
	}}, down)

	move := p.translate(tcell.NewEventMouse(4, 3, tcell.Button1, tcell.ModNone))
	assert.Len(t, move, 1)
	assert.Equal(t, input.EventPointerMove, move[0].Type)
	assert.Equal(t, 4*parameter.TerminalCellWidthPx, move[0].X)

	up := p.translate(tcell.NewEventMouse(4, 3, tcell.ButtonNone, tcell.ModNone))
	assert.Len(t, up, 1)
	assert.Equal(t, input.EventPointerUp, up[0].Type)

	// Motion without a button is ignored
	assert.Empty(t, p.translate(tcell.NewEventMouse(5, 5, tcell.ButtonNone, tcell.ModNone)))

	in := p.translate(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	assert.Equal(t, []input.Event{{Type: input.EventZoom, Y: -1}}, in)
	out := p.translate(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone))
	assert.Equal(t, []input.Event{{Type: input.EventZoom, Y: 1}}, out)
}
