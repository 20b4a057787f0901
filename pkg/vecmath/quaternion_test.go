package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuaternion_IdentityLeavesVectors(t *testing.T) {
	vectors := []Vector3{
		Vector3Zero(),
		Vector3One(),
		{1, -2, 3},
		{-1e6, 4e-3, 0.5},
	}

	id := QuaternionIdentity()
	for _, v := range vectors {
		assertVector3InDelta(t, v, id.Rotate(v), eps)
	}
}

func TestQuaternion_AxisIsFixed(t *testing.T) {
	axes := []Vector3{
		Vector3Right(),
		Vector3Up(),
		Vector3Backward(),
		Vector3{1, 2, 3}.Normalized(),
		Vector3{-4, 0.5, 2}.Normalized(),
	}
	angles := []float64{0, 0.25, math.Pi / 2, math.Pi, -2.5, 7}

	for _, axis := range axes {
		for _, angle := range angles {
			q := QuaternionFromAngleAxis(angle, axis)
			assertVector3InDelta(t, axis, q.Rotate(axis), eps)
		}
	}
}

func TestQuaternion_Rotate(t *testing.T) {
	q := QuaternionFromAngleAxis(math.Pi/2, Vector3Forward())
	assertVector3InDelta(t, Vector3Up(), q.Rotate(Vector3Right()), eps)
	assertVector3InDelta(t, Vector3Left(), q.Rotate(Vector3Up()), eps)

	// the axis is normalized before use
	scaledAxis := QuaternionFromAngleAxis(math.Pi/2, Vector3{0, 0, 5})
	assert.InDelta(t, q.X, scaledAxis.X, eps)
	assert.InDelta(t, q.Y, scaledAxis.Y, eps)
	assert.InDelta(t, q.Z, scaledAxis.Z, eps)
	assert.InDelta(t, q.W, scaledAxis.W, eps)
	assert.InDelta(t, 1.0, scaledAxis.Length(), eps)
}

func TestQuaternion_Mul(t *testing.T) {
	s := math.Sqrt(0.5)
	aboutZ := Quaternion{0, 0, s, s}
	aboutX := Quaternion{s, 0, 0, s}

	zx := aboutZ.Mul(aboutX)
	xz := aboutX.Mul(aboutZ)
	assert.InDelta(t, 0.5, zx.X, eps)
	assert.InDelta(t, 0.5, zx.Y, eps)
	assert.InDelta(t, 0.5, zx.Z, eps)
	assert.InDelta(t, 0.5, zx.W, eps)
	assert.InDelta(t, -0.5, xz.Y, eps)
	assert.False(t, zx.ApproxEqual(xz, 1e-6))

	// a.Mul(b) applies b first
	v := Vector3{1, 2, 3}
	assertVector3InDelta(t, aboutZ.Rotate(aboutX.Rotate(v)), zx.Rotate(v), eps)

	id := QuaternionIdentity()
	assert.Equal(t, aboutZ, id.Mul(aboutZ))
	assert.Equal(t, aboutZ, aboutZ.Mul(id))
}

func TestQuaternion_EulerRoundTrip(t *testing.T) {
	tests := []Vector3{
		{0, 0, 0},
		{0.1, 0.2, 0.3},
		{-0.7, 2.5, -1.2},
		{1.2, -3.0, 0.4},
		{-1.5, 0.9, 1.5},
		{0.3, -1.4, -0.2},
	}

	for _, euler := range tests {
		t.Run(euler.String(), func(t *testing.T) {
			q := QuaternionFromEuler(euler)
			require.InDelta(t, 1.0, q.Length(), eps)
			assertVector3InDelta(t, euler, q.Euler(), 1e-9)
		})
	}
}

func TestQuaternion_FromEulerMatchesAxisRotations(t *testing.T) {
	pitch, yaw, roll := 0.4, -1.1, 0.7
	qx := QuaternionFromAngleAxis(pitch, Vector3Right())
	qy := QuaternionFromAngleAxis(yaw, Vector3Up())
	qz := QuaternionFromAngleAxis(roll, Vector3Forward())

	expected := qy.Mul(qx).Mul(qz)
	got := QuaternionFromEuler(Vector3{pitch, yaw, roll})
	assert.True(t, expected.ApproxEqual(got, 1e-12), "expected %s, got %s", expected, got)
}

func TestQuaternion_EulerGimbalLock(t *testing.T) {
	atPole := QuaternionFromEuler(Vector3{math.Pi / 2, 0.3, 0}).Euler()
	assert.False(t, math.IsNaN(atPole.X))
	assert.InDelta(t, math.Pi/2, atPole.X, 1e-6)

	// 2·(w·x) slightly above 1 would put asin out of its domain
	over := Quaternion{X: 0.7072, W: 0.7072}
	assert.Equal(t, math.Pi/2, over.Euler().X)

	under := Quaternion{X: -0.7072, W: 0.7072}
	assert.Equal(t, -math.Pi/2, under.Euler().X)
}

func TestQuaternion_AngleTo(t *testing.T) {
	id := QuaternionIdentity()
	quarter := QuaternionFromAngleAxis(math.Pi/2, Vector3Up())

	assert.InDelta(t, math.Pi/2, id.AngleTo(quarter), eps)
	assert.InDelta(t, math.Pi/2, quarter.AngleTo(id), eps)
	assert.InDelta(t, 0, quarter.AngleTo(quarter), 1e-6)
	// q and -q are the same rotation
	assert.InDelta(t, 0, quarter.AngleTo(quarter.Neg()), 1e-6)
	assert.Equal(t, 0.0, Quaternion{0, 0, 0, 2}.AngleTo(id))
}

func TestQuaternion_Equal(t *testing.T) {
	id := QuaternionIdentity()

	assert.False(t, id.Equal(id))
	assert.True(t, Quaternion{0, 0, 0, 2}.Equal(id))
	assert.False(t, id.Equal(id.Neg()))

	assert.True(t, id.ApproxEqual(id, 1e-9))
	assert.True(t, id.ApproxEqual(id.Neg(), 1e-9))
	assert.False(t, id.ApproxEqual(QuaternionFromAngleAxis(0.1, Vector3Up()), 1e-6))
}

func TestQuaternion_Magnitude(t *testing.T) {
	q := Quaternion{0, 0, 3, 4}
	assert.Equal(t, 5.0, q.Length())
	assert.Equal(t, 25.0, q.SqrLength())
	assert.Equal(t, Quaternion{0, 0, 0.6, 0.8}, q.Normalized())

	q.SetLength(10)
	assert.Equal(t, Quaternion{0, 0, 6, 8}, q)

	zero := Quaternion{}.Normalized()
	assert.True(t, math.IsNaN(zero.W))
}

func TestQuaternion_Arithmetic(t *testing.T) {
	a := Quaternion{1, 2, 3, 4}
	b := QuaternionFromScalar(1)

	assert.Equal(t, Quaternion{2, 3, 4, 5}, a.Add(b))
	assert.Equal(t, Quaternion{0, 1, 2, 3}, a.Sub(b))
	assert.Equal(t, Quaternion{2, 4, 6, 8}, a.Scale(2))
	assert.Equal(t, Quaternion{0.5, 1, 1.5, 2}, a.DivScalar(2))
	assert.Equal(t, Quaternion{-1, -2, -3, 4}, a.Conjugate())
	assert.Equal(t, 10.0, a.Dot(b))

	inv := a.Mul(a.Inverse())
	assert.True(t, inv.ApproxEqual(QuaternionIdentity(), 1e-12))
}

func TestQuaternion_Constants(t *testing.T) {
	assert.Equal(t, Quaternion{}, QuaternionZero())
	assert.Equal(t, Quaternion{1, 1, 1, 1}, QuaternionOne())
	assert.Equal(t, QuaternionFromScalar(math.Inf(-1)), QuaternionNegativeInfinity())
	assert.True(t, math.IsInf(QuaternionPositiveInfinity().W, 1))
	assert.True(t, math.IsInf(QuaternionPositiveInfinity().X, 1))
}

func TestQuaternion_DerivedValues(t *testing.T) {
	q := Quaternion{-1.5, 0.5, 2.5, -0.2}

	assert.Equal(t, Quaternion{1.5, 0.5, 2.5, 0.2}, q.Abs())
	assert.Equal(t, Quaternion{-1, 1, 1, -1}, q.Sign())
	assert.Equal(t, Quaternion{-1, 1, 3, 0}, q.Ceil())
	assert.Equal(t, Quaternion{-2, 0, 2, -1}, q.Floor())
	assert.Equal(t, Quaternion{-2, 0, 2, 0}, q.Round())
	assert.Equal(t, Quaternion{1, -1, 1.5, 1}, Quaternion{5, -5, 7.5, 1}.ModScalar(2))

	s := Quaternion{math.NaN(), 0, 0, 0}.Sign()
	assert.True(t, math.IsNaN(s.X))
}

func TestQuaternion_Compare(t *testing.T) {
	id := QuaternionIdentity()

	assert.Equal(t, 1, Quaternion{0, 0, 3, 4}.Compare(id))
	assert.Equal(t, -1, id.Compare(Quaternion{0, 0, 3, 4}))
	assert.Equal(t, 0, id.Compare(Quaternion{1, 0, 0, 0}))
	assert.Equal(t, 0, id.Compare(id.Neg()))
}

func TestQuaternion_String(t *testing.T) {
	assert.Equal(t, "{ 0.0; 0.0; 0.0; 1.0 }", QuaternionIdentity().String())
	assert.Equal(t, NewQuaternion(1, 2, 3, 4).Hash(), Quaternion{1, 2, 3, 4}.Hash())
}

func BenchmarkQuaternion_Rotate(b *testing.B) {
	q := QuaternionFromEuler(Vector3{0.1, 0.2, 0.3})
	v := Vector3{1, 2, 3}
	for i := 0; i < b.N; i++ {
		_ = q.Rotate(v)
	}
}

func BenchmarkQuaternion_Euler(b *testing.B) {
	q := QuaternionFromEuler(Vector3{0.1, 0.2, 0.3})
	for i := 0; i < b.N; i++ {
		_ = q.Euler()
	}
}
