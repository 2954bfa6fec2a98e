package proximity

import (
	"fmt"

	"github.com/lixenwraith/spacefolio/vmath"
)

// Tracker reports the nearest landmark within activation range
// Not safe for concurrent use, it lives on the simulation goroutine
type Tracker struct {
	landmarks []Landmark
	index     map[string]int
	nearby    string
}

// NewTracker validates the set and keeps its order for tie-breaking
func NewTracker(landmarks []Landmark) (*Tracker, error) {
	t := &Tracker{
		landmarks: make([]Landmark, len(landmarks)),
		index:     make(map[string]int, len(landmarks)),
	}
	copy(t.landmarks, landmarks)

	for i, l := range t.landmarks {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		if _, dup := t.index[l.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLandmark, l.ID)
		}
		t.index[l.ID] = i
	}
	return t, nil
}

// Nearest returns the landmark with minimum distance strictly inside its
// activation radius, the first one wins on equal distance
func (t *Tracker) Nearest(pos vmath.Vec3F) string {
	best := ""
	bestDist := 0.0
	for _, l := range t.landmarks {
		d := vmath.V3FDist(pos, l.Position)
		if !(d < l.ActivationRadius) {
			continue
		}
		if best == "" || d < bestDist {
			best = l.ID
			bestDist = d
		}
	}
	return best
}

// Update recomputes the nearby landmark and reports whether it changed
func (t *Tracker) Update(pos vmath.Vec3F) (string, bool) {
	id := t.Nearest(pos)
	changed := id != t.nearby
	t.nearby = id
	return id, changed
}

// Nearby returns the last computed nearby id, "" for none
func (t *Tracker) Nearby() string {
	return t.nearby
}

// VisibleCards lists landmarks whose card radius contains pos, in set order
func (t *Tracker) VisibleCards(pos vmath.Vec3F) []string {
	var ids []string
	for _, l := range t.landmarks {
		if vmath.V3FDist(pos, l.Position) < l.CardRadius {
			ids = append(ids, l.ID)
		}
	}
	return ids
}

// Landmark looks up a landmark by id
func (t *Tracker) Landmark(id string) (Landmark, error) {
	i, ok := t.index[id]
	if !ok {
		return Landmark{}, fmt.Errorf("%w: %q", ErrUnknownLandmark, id)
	}
	return t.landmarks[i], nil
}

// Landmarks returns a copy of the set in order
func (t *Tracker) Landmarks() []Landmark {
	out := make([]Landmark, len(t.landmarks))
	copy(out, t.landmarks)
	return out
}

// Reset forgets the last nearby id
func (t *Tracker) Reset() {
	t.nearby = ""
}
