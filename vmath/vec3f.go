package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector used for craft position, velocity and landmark locations
type Vec3F struct {
	X, Y, Z float64
}

// V3F creates a Vec3F from components
func V3F(x, y, z float64) Vec3F {
	return Vec3F{X: x, Y: y, Z: z}
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FDist returns the Euclidean distance between a and b
func V3FDist(a, b Vec3F) float64 {
	return V3FMag(V3FSub(a, b))
}

// V3FLerp moves a toward b by factor t, t is clamped to [0,1]
func V3FLerp(a, b Vec3F, t float64) Vec3F {
	t = Clamp(t, 0, 1)
	return Vec3F{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// V3FClampMagnitude rescales v to maxMag when it is longer
// Returns the input unchanged otherwise, so direction is always preserved
func V3FClampMagnitude(v Vec3F, maxMag float64) Vec3F {
	magSq := V3FMagSq(v)
	if magSq <= maxMag*maxMag {
		return v
	}
	return V3FScale(V3FNormalize(v), maxMag)
}

// V3FRotateY rotates v about the world Y axis by angle radians (right-handed)
func V3FRotateY(v Vec3F, angle float64) Vec3F {
	if angle == 0 {
		return v
	}
	sin, cos := math.Sincos(angle)
	return Vec3F{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// V3FIsFinite reports whether every component is a finite number
func V3FIsFinite(v Vec3F) bool {
	return IsFinite(v.X) && IsFinite(v.Y) && IsFinite(v.Z)
}
