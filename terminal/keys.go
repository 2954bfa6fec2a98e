package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/spacefolio/input"
)

// shiftKey is the identifier asserted for upper-case letters and shifted arrows
const shiftKey = "shift"

// control is a non-flight key handled by the App itself
type control uint8

const (
	controlNone control = iota
	controlQuit
	controlOpen
	controlClose
	controlToggleMode
	controlMute
)

// keyName maps a tcell key to the identifier bindings use
// shifted reports an implied shift: upper-case rune or shift modifier on a named key
func keyName(ev *tcell.EventKey) (name string, shifted bool) {
	shift := ev.Modifiers()&tcell.ModShift != 0

	switch ev.Key() {
	case tcell.KeyUp:
		return "arrowup", shift
	case tcell.KeyDown:
		return "arrowdown", shift
	case tcell.KeyLeft:
		return "arrowleft", shift
	case tcell.KeyRight:
		return "arrowright", shift
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			return "space", shift
		}
		if unicode.IsUpper(r) {
			return string(unicode.ToLower(r)), true
		}
		return input.NormalizeKey(string(r)), shift
	}
	return "", false
}

// controlFor resolves application keys, checked before flight keys
func controlFor(ev *tcell.EventKey) control {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return controlQuit
	case tcell.KeyEnter:
		return controlOpen
	case tcell.KeyEscape:
		return controlClose
	case tcell.KeyTab, tcell.KeyBacktab:
		return controlToggleMode
	case tcell.KeyRune:
		if ev.Rune() == 'm' || ev.Rune() == 'M' {
			return controlMute
		}
	}
	return controlNone
}
