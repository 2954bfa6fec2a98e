package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/spacefolio/input"
	"github.com/lixenwraith/spacefolio/parameter"
)

// pointer turns tcell mouse reports into camera drag and zoom events
// tcell reports button state, not transitions, so the drag edge is tracked here
type pointer struct {
	down bool
}

func (p *pointer) translate(ev *tcell.EventMouse) []input.Event {
	cx, cy := ev.Position()
	x := float64(cx) * parameter.TerminalCellWidthPx
	y := float64(cy) * parameter.TerminalCellHeightPx
	buttons := ev.Buttons()

	var out []input.Event
	switch {
	case buttons&tcell.WheelUp != 0:
		out = append(out, input.Event{Type: input.EventZoom, Y: -1})
	case buttons&tcell.WheelDown != 0:
		out = append(out, input.Event{Type: input.EventZoom, Y: 1})
	}

	primary := buttons&tcell.Button1 != 0
	switch {
	case primary && !p.down:
		p.down = true
		out = append(out, input.Event{Type: input.EventPointerDown, X: x, Y: y})
	case primary && p.down:
		out = append(out, input.Event{Type: input.EventPointerMove, X: x, Y: y})
	case !primary && p.down:
		p.down = false
		out = append(out, input.Event{Type: input.EventPointerUp, X: x, Y: y})
	}
	return out
}
