package terminal

import (
	"sort"
	"time"
)

// KeyHold tracks synthesized key state from press/repeat events
type KeyHold struct {
	hold time.Duration
	seen map[string]time.Time
}

func NewKeyHold(hold time.Duration) *KeyHold {
	return &KeyHold{
		hold: hold,
		seen: make(map[string]time.Time),
	}
}

// Press refreshes key, true when it was not already held
func (h *KeyHold) Press(key string, now time.Time) bool {
	_, held := h.seen[key]
	h.seen[key] = now
	return !held
}

// Release drops key, true when it was held
func (h *KeyHold) Release(key string) bool {
	if _, held := h.seen[key]; !held {
		return false
	}
	delete(h.seen, key)
	return true
}

// Expire releases keys not refreshed within the hold window, sorted by name
func (h *KeyHold) Expire(now time.Time) []string {
	var expired []string
	for k, t := range h.seen {
		if now.Sub(t) >= h.hold {
			expired = append(expired, k)
		}
	}
	for _, k := range expired {
		delete(h.seen, k)
	}
	sort.Strings(expired)
	return expired
}

// ReleaseAll empties the tracker and returns what was held, sorted by name
func (h *KeyHold) ReleaseAll() []string {
	keys := make([]string, 0, len(h.seen))
	for k := range h.seen {
		keys = append(keys, k)
	}
	clear(h.seen)
	sort.Strings(keys)
	return keys
}

func (h *KeyHold) Held(key string) bool {
	_, ok := h.seen[key]
	return ok
}

func (h *KeyHold) Len() int {
	return len(h.seen)
}
