package parameter

// Flight model tuning, per-frame values (the model is timestep independent)
const (
	// FlightSpeed is the base thrust magnitude toward which velocity blends
	FlightSpeed = 0.4

	// FlightMaxSpeed caps the velocity magnitude after every step
	FlightMaxSpeed = 3.0

	// FlightAcceleration is the lerp factor from current to target velocity
	FlightAcceleration = 0.08

	// FlightFriction multiplies velocity every frame, < 1 decays toward zero
	FlightFriction = 0.96

	// Directional thrust multipliers relative to FlightSpeed
	FlightBackwardFactor = 0.7
	FlightStrafeFactor   = 0.8
	FlightVerticalFactor = 0.8
	FlightBoostFactor    = 1.5
)

// Fuel & hull
const (
	FuelMax   = 100.0
	HealthMax = 100.0

	// FuelBoostThreshold is the fuel level boost requires (strictly above)
	FuelBoostThreshold = 10.0

	// FuelBoostDrain is removed per boosting frame
	FuelBoostDrain = 0.8

	// FuelThrustRegen is added per frame of unboosted forward thrust
	FuelThrustRegen = 0.1

	// FuelIdleRegen is added on each idle regen cadence while not boosting
	FuelIdleRegen = 0.5
)

// Orientation targets and blend rates
const (
	TiltTarget     = 0.6
	TiltRate       = 0.1
	TiltReturnRate = 0.08

	RollTarget = 0.3
	RollRate   = 0.05

	PitchTarget = 0.2
	PitchRate   = 0.05

	// YawRate is the per-frame heading change while strafing under forward thrust
	YawRate = 0.015
)

// Idle bob, applied when nearly stationary
// Bob writes into the same position proximity reads
const (
	IdleSpeedThreshold  = 0.1
	IdleBobFrequency    = 2.0
	IdleBobAmplitude    = 0.004
	IdleWobbleFrequency = 0.5
	IdleWobbleAmplitude = 0.0005
)

// Craft spawn point
const (
	CraftStartX = 0.0
	CraftStartY = 0.0
	CraftStartZ = 0.0
)
