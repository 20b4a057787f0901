package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp_Endpoints(t *testing.T) {
	a2, b2 := Vector2{0.1, 0.7}, Vector2{-3.3, 1e5}
	assert.Equal(t, a2, Lerp(a2, b2, 0))
	assert.Equal(t, b2, Lerp(a2, b2, 1))

	a3, b3 := Vector3{0.1, 0.2, 0.3}, Vector3{7, -8, 9.9}
	assert.Equal(t, a3, Lerp(a3, b3, 0))
	assert.Equal(t, b3, Lerp(a3, b3, 1))

	a4, b4 := Vector4{1, 2, 3, 4}, Vector4{0.3, 0.6, 0.9, 1.2}
	assert.Equal(t, a4, Lerp(a4, b4, 0))
	assert.Equal(t, b4, Lerp(a4, b4, 1))

	qa := QuaternionIdentity()
	qb := QuaternionFromEuler(Vector3{0.3, 0.2, 0.1})
	assert.Equal(t, qa, Lerp(qa, qb, 0))
	assert.Equal(t, qb, Lerp(qa, qb, 1))
}

func TestLerp_Midpoint(t *testing.T) {
	assert.Equal(t, Vector2{1, 2}, Lerp(Vector2{0, 0}, Vector2{2, 4}, 0.5))
	assert.Equal(t, Vector4{5, 5, 5, 5}, Lerp(Vector4{}, Vector4{10, 10, 10, 10}, 0.5))
	// t is not clamped
	assert.Equal(t, Vector3{4, 0, 0}, Lerp(Vector3{}, Vector3{2, 0, 0}, 2))
}

func TestMinMax(t *testing.T) {
	a := Vector3{1, 5, -2}
	b := Vector3{3, -1, -2}

	assert.Equal(t, Vector3{1, -1, -2}, Min(a, b))
	assert.Equal(t, Vector3{3, 5, -2}, Max(a, b))
	assert.Equal(t, Min(a, b), Min(b, a))
	assert.Equal(t, Max(a, b), Max(b, a))

	assert.Equal(t, Vector2{1, 1}, Min(Vector2{1, 4}, Vector2{2, 1}))
	assert.Equal(t, Vector4{2, 4, 3, 9}, Max(Vector4{1, 4, 3, 9}, Vector4{2, 0, 3, -9}))
	assert.Equal(t, Quaternion{0, 0, 0, 1}, Min(QuaternionIdentity(), QuaternionFromScalar(1)))
}

func TestScalarOnTheLeft(t *testing.T) {
	assert.Equal(t, Vector2{2, 4}, ScalarMul(2, Vector2{1, 2}))
	assert.Equal(t, Vector3{0.5, 0.25, -1}, ScalarDiv(1, Vector3{2, 4, -1}))
	assert.Equal(t, Quaternion{3, 3, 3, 3}, ScalarMul(3, QuaternionFromScalar(1)))

	inf := ScalarDiv(1, Vector4{1, 0, 1, 1})
	assert.True(t, math.IsInf(inf.Y, 1))
}

func TestMinMaxVec_MixedDimensions(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vector
		min, max Vector
	}{
		{"2x3", Vector2{1, -2}, Vector3{-1, 3, 5}, Vector3{-1, -2, 0}, Vector3{1, 3, 5}},
		{"3x2", Vector3{-1, 3, -5}, Vector2{1, -2}, Vector3{-1, -2, -5}, Vector3{1, 3, 0}},
		{"2x4", Vector2{1, -2}, Vector4{0, 0, 4, -4}, Vector4{0, -2, 0, -4}, Vector4{1, 0, 4, 0}},
		{"4x2", Vector4{0, 0, 4, -4}, Vector2{1, -2}, Vector4{0, -2, 0, -4}, Vector4{1, 0, 4, 0}},
		{"3x4", Vector3{1, 2, 3}, Vector4{2, 1, 4, 7}, Vector4{1, 1, 3, 0}, Vector4{2, 2, 4, 7}},
		{"4x3", Vector4{2, 1, 4, -7}, Vector3{1, 2, 3}, Vector4{1, 1, 3, -7}, Vector4{2, 2, 4, 0}},
		{"3x3", Vector3{1, 5, -2}, Vector3{3, -1, -2}, Vector3{1, -1, -2}, Vector3{3, 5, -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.min, MinVec(tt.a, tt.b))
			assert.Equal(t, tt.max, MaxVec(tt.a, tt.b))
			assert.Equal(t, MinVec(tt.a, tt.b), MinVec(tt.b, tt.a))
			assert.Equal(t, MaxVec(tt.a, tt.b), MaxVec(tt.b, tt.a))
		})
	}
}

func TestLerpVec(t *testing.T) {
	assert.Equal(t, Vector3{3, 2, 4}, LerpVec(Vector2{2, 4}, Vector3{4, 0, 8}, 0.5))
	assert.Equal(t, Vector4{3, 5, 3, 3}, LerpVec(Vector4{4, 4, 4, 4}, Vector2{0, 8}, 0.25))

	// endpoints are exact, widened to the higher dimension
	a, b := Vector2{0.1, 0.7}, Vector4{1, 2, 3, 4}
	assert.Equal(t, Vector4{0.1, 0.7, 0, 0}, LerpVec(a, b, 0))
	assert.Equal(t, b, LerpVec(a, b, 1))

	same := Vector3{0.1, 0.2, 0.3}
	other := Vector3{7, -8, 9.9}
	assert.Equal(t, Lerp(same, other, 0.3), LerpVec(same, other, 0.3))
}

func TestScalarMod(t *testing.T) {
	assert.Equal(t, Vector3{1, 3, 1}, ScalarMod(7, Vector3{2, 4, -3}))
	assert.Equal(t, Quaternion{0.5, 1, 0, 1}, ScalarMod(3, Quaternion{2.5, 2, 1, 2}))

	v := ScalarMod(1, Vector2{0, 1})
	assert.True(t, math.IsNaN(v.X))
	assert.Equal(t, 0.0, v.Y)
}

func TestDegreesRadians(t *testing.T) {
	assert.InDelta(t, math.Pi, Radians(180), eps)
	assert.Equal(t, 180.0, Degrees(math.Pi))
	assert.InDelta(t, 90.0, Degrees(math.Pi/2), eps)
	assert.InDelta(t, -math.Pi/4, Radians(-45), eps)

	tests := []struct {
		name string
		x    float64
	}{
		{"zero", 0},
		{"one", 1},
		{"negative", -45},
		{"almost full turn", 359.9},
		{"tiny negative", -3.25e-4},
		{"large", 1e6},
		{"large negative", -7.5e9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.x, Degrees(Radians(tt.x)), 1e-9*math.Max(1, math.Abs(tt.x)))
			assert.InDelta(t, tt.x, Radians(Degrees(tt.x)), 1e-9*math.Max(1, math.Abs(tt.x)))
		})
	}
}
