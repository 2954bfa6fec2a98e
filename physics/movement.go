package physics

import (
	"math"

	"github.com/lixenwraith/spacefolio/input"
	"github.com/lixenwraith/spacefolio/parameter"
	"github.com/lixenwraith/spacefolio/vmath"
)

// FlightModel integrates intent into craft motion, one call per frame
type FlightModel struct {
	profile FlightProfile
}

// NewFlightModel creates a flight model with the given profile
func NewFlightModel(profile FlightProfile) *FlightModel {
	return &FlightModel{profile: profile}
}

// Profile returns the active tuning
func (m *FlightModel) Profile() FlightProfile {
	return m.profile
}

// Step advances the craft by one frame and returns the HUD snapshot
// elapsed is game time in seconds, only the idle bob reads it
// While paused velocity is zeroed exactly and nothing else moves
func (m *FlightModel) Step(c *Craft, intent input.Intent, elapsed float64, paused bool) HUD {
	if paused {
		c.Velocity = vmath.Vec3F{}
		c.Thrusting = false
		c.Boosting = false
		c.Orientation.Stabilize()
		c.clampResources()
		return c.HUD()
	}

	p := m.profile
	local := m.thrust(c, intent)

	target := vmath.V3FRotateY(local, c.Orientation.Heading)
	c.Velocity = vmath.V3FLerp(c.Velocity, target, p.Acceleration)
	c.Velocity = vmath.V3FScale(c.Velocity, p.Friction)
	c.Velocity = vmath.V3FClampMagnitude(c.Velocity, p.MaxSpeed)
	if !vmath.V3FIsFinite(c.Velocity) {
		c.Velocity = vmath.Vec3F{}
	}

	Integrate(c)

	c.Orientation.Update(intent, p.Orientation)

	// Idle bob moves the real position, proximity sees it too
	if c.Speed() < p.Orientation.IdleSpeedThreshold {
		c.Position.Y += math.Sin(elapsed*p.Orientation.IdleBobFrequency) * p.Orientation.IdleBobAmplitude
		c.Orientation.Wobble(elapsed, p.Orientation)
	}

	c.clampResources()
	return c.HUD()
}

// thrust builds the local-frame target velocity and settles boost and fuel
func (m *FlightModel) thrust(c *Craft, intent input.Intent) vmath.Vec3F {
	p := m.profile
	var local vmath.Vec3F

	if intent.Forward {
		local.Z -= p.Speed
	}
	if intent.Backward {
		local.Z += p.Speed * p.BackwardFactor
	}
	if intent.StrafeLeft {
		local.X -= p.Speed * p.StrafeFactor
	}
	if intent.StrafeRight {
		local.X += p.Speed * p.StrafeFactor
	}
	if intent.Ascend {
		local.Y += p.Speed * p.VerticalFactor
	}
	if intent.Descend {
		local.Y -= p.Speed * p.VerticalFactor
	}

	c.Thrusting = intent.Forward
	c.Boosting = false

	// Empty tank denies boost, the frame flies as plain forward thrust
	switch {
	case intent.Forward && intent.Boost && c.Fuel > p.BoostThreshold:
		local.Z -= p.Speed * p.BoostFactor
		c.Boosting = true
		c.Fuel = math.Max(0, c.Fuel-p.BoostDrain)
	case intent.Forward:
		c.Fuel = math.Min(parameter.FuelMax, c.Fuel+p.ThrustRegen)
	}

	return local
}

// RegenIdle adds idle fuel regeneration, skipped while boosting
func (m *FlightModel) RegenIdle(c *Craft, amount float64) {
	if c.Boosting || amount <= 0 {
		return
	}
	c.Fuel += amount
	c.clampResources()
}

// Integrate advances position by one frame of velocity
func Integrate(c *Craft) {
	c.Position = vmath.V3FAdd(c.Position, c.Velocity)
}
