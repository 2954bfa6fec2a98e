package physics

import (
	"github.com/lixenwraith/spacefolio/parameter"
)

// FlightProfile holds every flight tunable, values are per frame
type FlightProfile struct {
	Speed        float64
	MaxSpeed     float64
	Acceleration float64
	Friction     float64

	BackwardFactor float64
	StrafeFactor   float64
	VerticalFactor float64
	BoostFactor    float64

	BoostThreshold float64
	BoostDrain     float64
	ThrustRegen    float64

	Orientation OrientationProfile
}

// OrientationProfile holds the cosmetic attitude targets and blend rates
type OrientationProfile struct {
	TiltTarget     float64
	TiltRate       float64
	TiltReturnRate float64
	RollTarget     float64
	RollRate       float64
	PitchTarget    float64
	PitchRate      float64
	YawRate        float64

	IdleSpeedThreshold  float64
	IdleBobFrequency    float64
	IdleBobAmplitude    float64
	IdleWobbleFrequency float64
	IdleWobbleAmplitude float64
}

// DefaultFlightProfile is the stock handling
var DefaultFlightProfile = FlightProfile{
	Speed:        parameter.FlightSpeed,
	MaxSpeed:     parameter.FlightMaxSpeed,
	Acceleration: parameter.FlightAcceleration,
	Friction:     parameter.FlightFriction,

	BackwardFactor: parameter.FlightBackwardFactor,
	StrafeFactor:   parameter.FlightStrafeFactor,
	VerticalFactor: parameter.FlightVerticalFactor,
	BoostFactor:    parameter.FlightBoostFactor,

	BoostThreshold: parameter.FuelBoostThreshold,
	BoostDrain:     parameter.FuelBoostDrain,
	ThrustRegen:    parameter.FuelThrustRegen,

	Orientation: DefaultOrientationProfile,
}

// DefaultOrientationProfile is the stock attitude feel
var DefaultOrientationProfile = OrientationProfile{
	TiltTarget:     parameter.TiltTarget,
	TiltRate:       parameter.TiltRate,
	TiltReturnRate: parameter.TiltReturnRate,
	RollTarget:     parameter.RollTarget,
	RollRate:       parameter.RollRate,
	PitchTarget:    parameter.PitchTarget,
	PitchRate:      parameter.PitchRate,
	YawRate:        parameter.YawRate,

	IdleSpeedThreshold:  parameter.IdleSpeedThreshold,
	IdleBobFrequency:    parameter.IdleBobFrequency,
	IdleBobAmplitude:    parameter.IdleBobAmplitude,
	IdleWobbleFrequency: parameter.IdleWobbleFrequency,
	IdleWobbleAmplitude: parameter.IdleWobbleAmplitude,
}
