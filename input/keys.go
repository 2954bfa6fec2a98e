package input

import "strings"

// Action is a directional or modifier request a key can be bound to
type Action uint8

const (
	ActionForward Action = iota
	ActionBackward
	ActionStrafeLeft
	ActionStrafeRight
	ActionAscend
	ActionDescend
	ActionBoost
)

// actionNames maps configuration names to actions
var actionNames = map[string]Action{
	"forward":     ActionForward,
	"backward":    ActionBackward,
	"strafeleft":  ActionStrafeLeft,
	"straferight": ActionStrafeRight,
	"ascend":      ActionAscend,
	"descend":     ActionDescend,
	"boost":       ActionBoost,
}

func (a Action) String() string {
	for name, act := range actionNames {
		if act == a {
			return name
		}
	}
	return "unknown"
}

// ParseAction resolves an action name, case-insensitive
func ParseAction(name string) (Action, bool) {
	a, ok := actionNames[strings.ToLower(name)]
	return a, ok
}

// keyAliases folds browser/terminal spellings into one identifier
var keyAliases = map[string]string{
	"spacebar":   "space",
	"up":         "arrowup",
	"down":       "arrowdown",
	"left":       "arrowleft",
	"right":      "arrowright",
	"shiftleft":  "shift",
	"shiftright": "shift",
}

// NormalizeKey lower-cases a key identifier and folds aliases
func NormalizeKey(key string) string {
	if key == " " {
		return "space"
	}
	k := strings.ToLower(strings.TrimSpace(key))
	if alias, ok := keyAliases[k]; ok {
		return alias
	}
	return k
}

// Bindings maps each action to the keys that assert it
type Bindings map[Action][]string

// DefaultBindings returns the stock WASD + arrows layout
func DefaultBindings() Bindings {
	return Bindings{
		ActionForward:     {"w", "arrowup"},
		ActionBackward:    {"s", "arrowdown"},
		ActionStrafeLeft:  {"a", "arrowleft"},
		ActionStrafeRight: {"d", "arrowright"},
		ActionAscend:      {"space", "q"},
		ActionDescend:     {"e", "c"},
		ActionBoost:       {"shift"},
	}
}

// Merge overrides actions present in other, keys are normalized
func (b Bindings) Merge(other map[string][]string) Bindings {
	out := make(Bindings, len(b))
	for a, keys := range b {
		out[a] = append([]string(nil), keys...)
	}
	for name, keys := range other {
		a, ok := ParseAction(name)
		if !ok {
			continue
		}
		normalized := make([]string, 0, len(keys))
		for _, k := range keys {
			if nk := NormalizeKey(k); nk != "" {
				normalized = append(normalized, nk)
			}
		}
		out[a] = normalized
	}
	return out
}

// asserted reports whether any key bound to a is held
func (b Bindings) asserted(s *State, a Action) bool {
	for _, k := range b[a] {
		if s.keys[k] {
			return true
		}
	}
	return false
}
