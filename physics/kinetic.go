package physics

import (
	"fmt"

	"github.com/lixenwraith/spacefolio/parameter"
	"github.com/lixenwraith/spacefolio/vmath"
)

// Craft is the simulated spacecraft
// Velocity is owned by FlightModel, nothing else writes it
type Craft struct {
	Position    vmath.Vec3F
	Velocity    vmath.Vec3F
	Orientation Orientation

	Fuel   float64
	Health float64

	Thrusting bool
	Boosting  bool
}

// NewCraft creates a craft at rest at start with full resources
func NewCraft(start vmath.Vec3F) *Craft {
	c := &Craft{}
	c.Reset(start)
	return c
}

// Reset returns the craft to its spawn state
func (c *Craft) Reset(start vmath.Vec3F) {
	*c = Craft{
		Position: start,
		Fuel:     parameter.FuelMax,
		Health:   parameter.HealthMax,
	}
}

// Speed returns the velocity magnitude
func (c *Craft) Speed() float64 {
	return vmath.V3FMag(c.Velocity)
}

// clampResources keeps fuel and health inside [0,100], run on every update
func (c *Craft) clampResources() {
	if !vmath.IsFinite(c.Fuel) {
		c.Fuel = 0
	}
	if !vmath.IsFinite(c.Health) {
		c.Health = 0
	}
	c.Fuel = vmath.Clamp(c.Fuel, 0, parameter.FuelMax)
	c.Health = vmath.Clamp(c.Health, 0, parameter.HealthMax)
}

// HUD is the per-frame telemetry snapshot for display
type HUD struct {
	Speed     string
	Position  vmath.Vec3F
	Velocity  vmath.Vec3F
	Fuel      float64
	Health    float64
	Thrusting bool
	Boosting  bool
}

// HUD builds the telemetry snapshot, speed is formatted to two decimals
func (c *Craft) HUD() HUD {
	return HUD{
		Speed:     fmt.Sprintf("%.2f", c.Speed()),
		Position:  c.Position,
		Velocity:  c.Velocity,
		Fuel:      c.Fuel,
		Health:    c.Health,
		Thrusting: c.Thrusting,
		Boosting:  c.Boosting,
	}
}
