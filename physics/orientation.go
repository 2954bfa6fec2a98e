package physics

import (
	"math"

	"github.com/lixenwraith/spacefolio/input"
	"github.com/lixenwraith/spacefolio/vmath"
)

// Orientation is the craft attitude as independent scalar angles (radians)
// The angles are composed naively by the renderer, not as a true 3D rotation
// Heading is the accumulated yaw and also orients thrust; Yaw is its per-frame rate
// IdleYaw is the cosmetic hover drift and never feeds thrust
type Orientation struct {
	Tilt    float64
	Yaw     float64
	Pitch   float64
	Roll    float64
	Heading float64
	IdleYaw float64
}

// Update blends each angle toward the target implied by intent
func (o *Orientation) Update(intent input.Intent, p OrientationProfile) {
	switch {
	case intent.Strafing() && intent.StrafeLeft:
		o.Tilt = vmath.Lerp(o.Tilt, p.TiltTarget, p.TiltRate)
		o.Roll = vmath.Lerp(o.Roll, p.RollTarget, p.RollRate)
	case intent.Strafing() && intent.StrafeRight:
		o.Tilt = vmath.Lerp(o.Tilt, -p.TiltTarget, p.TiltRate)
		o.Roll = vmath.Lerp(o.Roll, -p.RollTarget, p.RollRate)
	default:
		o.Tilt = vmath.Lerp(o.Tilt, 0, p.TiltReturnRate)
		o.Roll = vmath.Lerp(o.Roll, 0, p.RollRate)
	}

	// Yaw is a rate, set directly rather than blended
	o.Yaw = 0
	if intent.Forward && intent.Strafing() {
		if intent.StrafeLeft {
			o.Yaw = p.YawRate
		} else {
			o.Yaw = -p.YawRate
		}
	}
	o.Heading += o.Yaw

	pitchTarget := 0.0
	if intent.Climbing() {
		if intent.Ascend {
			pitchTarget = -p.PitchTarget
		} else {
			pitchTarget = p.PitchTarget
		}
	}
	o.Pitch = vmath.Lerp(o.Pitch, pitchTarget, p.PitchRate)
}

// Wobble accumulates the idle drift for the given game time into IdleYaw
func (o *Orientation) Wobble(elapsed float64, p OrientationProfile) {
	o.IdleYaw += math.Sin(elapsed*p.IdleWobbleFrequency) * p.IdleWobbleAmplitude
}

// Stabilize zeroes the per-frame rate, attitude angles are kept
func (o *Orientation) Stabilize() {
	o.Yaw = 0
}
