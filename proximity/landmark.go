package proximity

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/spacefolio/parameter"
	"github.com/lixenwraith/spacefolio/vmath"
)

var (
	ErrUnknownLandmark   = errors.New("unknown landmark")
	ErrDuplicateLandmark = errors.New("duplicate landmark id")
	ErrInvalidLandmark   = errors.New("invalid landmark")
)

// Landmark is a fixed station in world space
// ActivationRadius gates highlight and overlay, CardRadius gates the info card
type Landmark struct {
	ID               string
	Title            string
	Summary          string
	Position         vmath.Vec3F
	ActivationRadius float64
	CardRadius       float64
}

// Validate checks a single landmark definition
func (l Landmark) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidLandmark)
	}
	if !vmath.V3FIsFinite(l.Position) {
		return fmt.Errorf("%w: %s has non-finite position", ErrInvalidLandmark, l.ID)
	}
	if !(l.ActivationRadius > 0) || !vmath.IsFinite(l.ActivationRadius) {
		return fmt.Errorf("%w: %s activation radius %v", ErrInvalidLandmark, l.ID, l.ActivationRadius)
	}
	if l.CardRadius < 0 || !vmath.IsFinite(l.CardRadius) {
		return fmt.Errorf("%w: %s card radius %v", ErrInvalidLandmark, l.ID, l.CardRadius)
	}
	return nil
}

// DefaultLandmarks converts the built-in station table
func DefaultLandmarks() []Landmark {
	out := make([]Landmark, 0, len(parameter.DefaultLandmarks))
	for _, d := range parameter.DefaultLandmarks {
		out = append(out, Landmark{
			ID:               d.ID,
			Title:            d.Title,
			Summary:          d.Summary,
			Position:         vmath.V3F(d.X, d.Y, d.Z),
			ActivationRadius: parameter.LandmarkActivationRadius,
			CardRadius:       d.CardRadius,
		})
	}
	return out
}
