package vecmath

import (
	"cmp"
	"math"
)

// Quaternion encodes a rotation of angle θ about the unit axis a as
// W = cos(θ/2) and (X, Y, Z) = sin(θ/2)·a.
//
// Arithmetic such as Add or Scale may leave a quaternion off unit length.
// Rotate and Euler assume a unit quaternion; normalize first when in doubt.
type Quaternion struct {
	X float64
	Y float64
	Z float64
	W float64
}

// QuaternionIdentity is the rotation that leaves every vector unchanged.
func QuaternionIdentity() Quaternion { return Quaternion{0, 0, 0, 1} }

func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// QuaternionFromScalar sets every component to s.
func QuaternionFromScalar(s float64) Quaternion { return Quaternion{s, s, s, s} }

func QuaternionZero() Quaternion { return Quaternion{} }
func QuaternionOne() Quaternion  { return Quaternion{1, 1, 1, 1} }

func QuaternionNegativeInfinity() Quaternion { return QuaternionFromScalar(math.Inf(-1)) }
func QuaternionPositiveInfinity() Quaternion { return QuaternionFromScalar(math.Inf(1)) }

// QuaternionFromEuler builds a rotation from (pitch, yaw, roll) in radians,
// i.e. rotations about X, Y and Z. The result is yaw·pitch·roll: roll is
// applied first and yaw last.
func QuaternionFromEuler(euler Vector3) Quaternion {
	sp, cp := math.Sincos(euler.X * 0.5)
	sy, cy := math.Sincos(euler.Y * 0.5)
	sr, cr := math.Sincos(euler.Z * 0.5)

	return Quaternion{
		X: cy*sp*cr + sy*cp*sr,
		Y: sy*cp*cr - cy*sp*sr,
		Z: cy*cp*sr - sy*sp*cr,
		W: cy*cp*cr + sy*sp*sr,
	}
}

// QuaternionFromAngleAxis builds a rotation of angle radians about axis.
// The axis is normalized first.
func QuaternionFromAngleAxis(angle float64, axis Vector3) Quaternion {
	s, c := math.Sincos(angle * 0.5)
	a := axis.Normalized().Scale(s)
	return Quaternion{a.X, a.Y, a.Z, c}
}

// Mul returns the Hamilton product q·o, the rotation that applies o first
// and q second.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y + q.Y*o.W + q.Z*o.X - q.X*o.Z,
		Z: q.W*o.Z + q.Z*o.W + q.X*o.Y - q.Y*o.X,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Rotate applies q to v. q must be unit length; it is not renormalized.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	u := Vector3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// Euler returns (pitch, yaw, roll) in radians, the inverse of
// QuaternionFromEuler. At gimbal lock the pitch is clamped to ±π/2.
func (q Quaternion) Euler() Vector3 {
	sinPitch := 2 * (q.W*q.X - q.Y*q.Z)

	var pitch float64
	if math.Abs(sinPitch) >= 1 {
		pitch = math.Copysign(math.Pi/2, sinPitch)
	} else {
		pitch = math.Asin(sinPitch)
	}

	yaw := math.Atan2(2*(q.X*q.Z+q.W*q.Y), 1-2*(q.X*q.X+q.Y*q.Y))
	roll := math.Atan2(2*(q.X*q.Y+q.W*q.Z), 1-2*(q.X*q.X+q.Z*q.Z))

	return Vector3{pitch, yaw, roll}
}

func (q Quaternion) Add(o Quaternion) Quaternion {
	return Quaternion{q.X + o.X, q.Y + o.Y, q.Z + o.Z, q.W + o.W}
}

func (q Quaternion) Sub(o Quaternion) Quaternion {
	return Quaternion{q.X - o.X, q.Y - o.Y, q.Z - o.Z, q.W - o.W}
}

func (q Quaternion) Scale(s float64) Quaternion {
	return Quaternion{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

func (q Quaternion) DivScalar(s float64) Quaternion {
	return Quaternion{q.X / s, q.Y / s, q.Z / s, q.W / s}
}

func (q Quaternion) ModScalar(s float64) Quaternion {
	return Quaternion{math.Mod(q.X, s), math.Mod(q.Y, s), math.Mod(q.Z, s), math.Mod(q.W, s)}
}

func (q Quaternion) Neg() Quaternion { return Quaternion{-q.X, -q.Y, -q.Z, -q.W} }

// Conjugate negates the vector part; for a unit quaternion it is the
// inverse rotation.
func (q Quaternion) Conjugate() Quaternion { return Quaternion{-q.X, -q.Y, -q.Z, q.W} }

// Inverse returns the multiplicative inverse. A zero quaternion yields NaN.
func (q Quaternion) Inverse() Quaternion { return q.Conjugate().DivScalar(q.SqrLength()) }

func (q Quaternion) Dot(o Quaternion) float64 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

func (q Quaternion) Length() float64 { return math.Sqrt(q.SqrLength()) }

func (q Quaternion) SqrLength() float64 { return q.Dot(q) }

// SetLength rescales q in place to length l.
func (q *Quaternion) SetLength(l float64) {
	*q = q.Normalized().Scale(l)
}

func (q Quaternion) Normalized() Quaternion { return q.DivScalar(q.Length()) }

func (q Quaternion) Abs() Quaternion {
	return Quaternion{math.Abs(q.X), math.Abs(q.Y), math.Abs(q.Z), math.Abs(q.W)}
}

func (q Quaternion) Sign() Quaternion {
	return Quaternion{sign(q.X), sign(q.Y), sign(q.Z), sign(q.W)}
}

func (q Quaternion) Ceil() Quaternion {
	return Quaternion{math.Ceil(q.X), math.Ceil(q.Y), math.Ceil(q.Z), math.Ceil(q.W)}
}

func (q Quaternion) Floor() Quaternion {
	return Quaternion{math.Floor(q.X), math.Floor(q.Y), math.Floor(q.Z), math.Floor(q.W)}
}

// Round rounds each component half to even.
func (q Quaternion) Round() Quaternion {
	return Quaternion{math.RoundToEven(q.X), math.RoundToEven(q.Y), math.RoundToEven(q.Z), math.RoundToEven(q.W)}
}

// Compare orders q and o by length.
func (q Quaternion) Compare(o Quaternion) int { return cmp.Compare(q.Length(), o.Length()) }

// AngleTo returns the rotation angle in radians separating q and o, both
// unit length.
func (q Quaternion) AngleTo(o Quaternion) float64 {
	d := q.Dot(o)
	if d > 1 {
		return 0
	}
	return 2 * math.Acos(math.Min(math.Abs(d), 1))
}

// Equal reports whether q.Dot(o) > 1. For unit quaternions this holds only
// when rounding pushes the dot product past 1; use ApproxEqual to compare
// rotations.
func (q Quaternion) Equal(o Quaternion) bool { return q.Dot(o) > 1 }

// ApproxEqual reports whether unit quaternions q and o describe the same
// rotation within eps. q and -q are considered equal.
func (q Quaternion) ApproxEqual(o Quaternion, eps float64) bool {
	return math.Abs(q.Dot(o)) >= 1-eps
}

func (q Quaternion) Hash() uint64 { return hashAxes(q.X, q.Y, q.Z, q.W) }

func (q Quaternion) String() string { return formatAxes(q.X, q.Y, q.Z, q.W) }
