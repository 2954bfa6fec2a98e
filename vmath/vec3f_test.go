package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestV3FArithmetic(t *testing.T) {
	a := V3F(1, 2, 3)
	b := V3F(4, -5, 6)

	assert.Equal(t, V3F(5, -3, 9), V3FAdd(a, b))
	assert.Equal(t, V3F(-3, 7, -3), V3FSub(a, b))
	assert.Equal(t, V3F(2, 4, 6), V3FScale(a, 2))
	assert.InDelta(t, 14.0, V3FMagSq(a), eps)
	assert.InDelta(t, math.Sqrt(14), V3FMag(a), eps)
}

func TestV3FDist(t *testing.T) {
	assert.InDelta(t, 5.0, V3FDist(V3F(0, 0, -55), V3F(0, 0, -60)), eps)
	assert.InDelta(t, 0.0, V3FDist(V3F(1, 1, 1), V3F(1, 1, 1)), eps)
}

func TestV3FNormalize(t *testing.T) {
	n := V3FNormalize(V3F(3, 0, 4))
	assert.InDelta(t, 1.0, V3FMag(n), eps)
	assert.InDelta(t, 0.6, n.X, eps)

	// Zero vector stays zero instead of producing NaN
	assert.Equal(t, Vec3F{}, V3FNormalize(Vec3F{}))
}

func TestV3FLerp(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want Vec3F
	}{
		{"start", 0, V3F(0, 0, 0)},
		{"half", 0.5, V3F(5, -5, 1)},
		{"end", 1, V3F(10, -10, 2)},
		{"clamped above", 3, V3F(10, -10, 2)},
		{"clamped below", -1, V3F(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := V3FLerp(Vec3F{}, V3F(10, -10, 2), tt.t)
			assert.InDelta(t, tt.want.X, got.X, eps)
			assert.InDelta(t, tt.want.Y, got.Y, eps)
			assert.InDelta(t, tt.want.Z, got.Z, eps)
		})
	}
}

func TestV3FClampMagnitude(t *testing.T) {
	short := V3F(1, 1, 0)
	assert.Equal(t, short, V3FClampMagnitude(short, 3))

	long := V3FClampMagnitude(V3F(30, 0, 40), 3)
	assert.InDelta(t, 3.0, V3FMag(long), eps)
	assert.InDelta(t, 1.8, long.X, eps)
	assert.InDelta(t, 2.4, long.Z, eps)
}

func TestV3FRotateY(t *testing.T) {
	forward := V3F(0, 0, -1)

	// Quarter turn left: -Z rotates to -X
	left := V3FRotateY(forward, math.Pi/2)
	assert.InDelta(t, -1.0, left.X, eps)
	assert.InDelta(t, 0.0, left.Z, eps)

	// Y is untouched and length is preserved
	v := V3FRotateY(V3F(1, 7, 2), 1.234)
	assert.InDelta(t, 7.0, v.Y, eps)
	assert.InDelta(t, math.Sqrt(5), math.Hypot(v.X, v.Z), eps)
}

func TestScalarHelpers(t *testing.T) {
	assert.InDelta(t, 0.06, Lerp(0, 0.6, 0.1), eps)
	assert.Equal(t, 100.0, Clamp(120, 0, 100))
	assert.Equal(t, 0.0, Clamp(-0.5, 0, 100))
	assert.True(t, IsFinite(1))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
	assert.False(t, V3FIsFinite(V3F(0, math.Inf(1), 0)))
}
