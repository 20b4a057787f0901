package vecmath

import "math"

// Vector3 is a point or direction in space.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// NewVector3 creates a Vector3 from its components.
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func Vector3Zero() Vector3     { return Vector3{} }
func Vector3One() Vector3      { return Vector3{1, 1, 1} }
func Vector3Right() Vector3    { return Vector3{1, 0, 0} }
func Vector3Left() Vector3     { return Vector3{-1, 0, 0} }
func Vector3Up() Vector3       { return Vector3{0, 1, 0} }
func Vector3Down() Vector3     { return Vector3{0, -1, 0} }
func Vector3Forward() Vector3  { return Vector3{0, 0, 1} }
func Vector3Backward() Vector3 { return Vector3{0, 0, -1} }

func Vector3NegativeInfinity() Vector3 {
	inf := math.Inf(-1)
	return Vector3{inf, inf, inf}
}

func Vector3PositiveInfinity() Vector3 {
	inf := math.Inf(1)
	return Vector3{inf, inf, inf}
}

func (v Vector3) Dim() int { return 3 }

func (v Vector3) Axis(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		return 0
	}
}

// Vec2 drops Z.
func (v Vector3) Vec2() Vector2 { return Vector2{v.X, v.Y} }

// Vec4 widens v with W = 0.
func (v Vector3) Vec4() Vector4 { return Vector4{v.X, v.Y, v.Z, 0} }

func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Mul(o Vector3) Vector3 { return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vector3) Div(o Vector3) Vector3 { return Vector3{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }

func (v Vector3) Mod(o Vector3) Vector3 {
	return Vector3{math.Mod(v.X, o.X), math.Mod(v.Y, o.Y), math.Mod(v.Z, o.Z)}
}

func (v Vector3) Add2(o Vector2) Vector3 { return promote(v, o, addPolicy()).(Vector3) }
func (v Vector3) Sub2(o Vector2) Vector3 { return promote(v, o, subPolicy()).(Vector3) }
func (v Vector3) Mul2(o Vector2) Vector3 { return promote(v, o, mulPolicy()).(Vector3) }
func (v Vector3) Div2(o Vector2) Vector3 { return promote(v, o, divPolicy()).(Vector3) }
func (v Vector3) Mod2(o Vector2) Vector3 { return promote(v, o, modPolicy()).(Vector3) }

func (v Vector3) Add4(o Vector4) Vector4 { return promote(v, o, addPolicy()).(Vector4) }
func (v Vector3) Sub4(o Vector4) Vector4 { return promote(v, o, subPolicy()).(Vector4) }
func (v Vector3) Mul4(o Vector4) Vector4 { return promote(v, o, mulPolicy()).(Vector4) }
func (v Vector3) Div4(o Vector4) Vector4 { return promote(v, o, divPolicy()).(Vector4) }
func (v Vector3) Mod4(o Vector4) Vector4 { return promote(v, o, modPolicy()).(Vector4) }

// Scale multiplies every component by s.
func (v Vector3) Scale(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

func (v Vector3) DivScalar(s float64) Vector3 { return Vector3{v.X / s, v.Y / s, v.Z / s} }

func (v Vector3) ModScalar(s float64) Vector3 {
	return Vector3{math.Mod(v.X, s), math.Mod(v.Y, s), math.Mod(v.Z, s)}
}

func (v Vector3) Neg() Vector3 { return Vector3{-v.X, -v.Y, -v.Z} }

func (v Vector3) Length() float64 { return math.Sqrt(v.SqrLength()) }

func (v Vector3) SqrLength() float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// SetLength rescales v in place to length l, keeping its direction.
// A zero vector becomes NaN.
func (v *Vector3) SetLength(l float64) {
	*v = v.Normalized().Scale(l)
}

// Normalized returns v divided by its length.
func (v Vector3) Normalized() Vector3 { return v.DivScalar(v.Length()) }

func (v Vector3) Abs() Vector3 {
	return Vector3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)}
}

func (v Vector3) Sign() Vector3 {
	return Vector3{sign(v.X), sign(v.Y), sign(v.Z)}
}

func (v Vector3) Ceil() Vector3 {
	return Vector3{math.Ceil(v.X), math.Ceil(v.Y), math.Ceil(v.Z)}
}

func (v Vector3) Floor() Vector3 {
	return Vector3{math.Floor(v.X), math.Floor(v.Y), math.Floor(v.Z)}
}

// Round rounds each component half to even.
func (v Vector3) Round() Vector3 {
	return Vector3{math.RoundToEven(v.X), math.RoundToEven(v.Y), math.RoundToEven(v.Z)}
}

// Dot returns the dot product with a vector of any dimension.
func (v Vector3) Dot(o Vector) float64 { return Dot(v, o) }

func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Cross2 treats o as having Z = 0.
func (v Vector3) Cross2(o Vector2) Vector3 { return v.Cross(o.Vec3()) }

func (v Vector3) DistanceTo(o Vector) float64 { return Distance(v, o) }

// DirectionTo returns the unit vector pointing from v towards o.
func (v Vector3) DirectionTo(o Vector3) Vector3 { return o.Sub(v).Normalized() }

// ProjectOn projects v onto o. The result is NaN when o is zero.
func (v Vector3) ProjectOn(o Vector3) Vector3 {
	return o.Scale(v.Dot(o)).DivScalar(o.SqrLength())
}

// ReflectFrom mirrors v about the plane with the given normal.
func (v Vector3) ReflectFrom(normal Vector3) Vector3 {
	n := normal.Normalized()
	return v.Add(n.Scale(-2 * v.Dot(n)))
}

// AngleTo returns the unsigned angle in radians between v and o as
// atan2(|v×o|, v·o), which stays accurate near 0 and π.
func (v Vector3) AngleTo(o Vector3) float64 {
	return math.Atan2(v.Cross(o).Length(), v.Dot(o))
}

// AngleTo2 promotes o to 3D and returns the angle to it.
func (v Vector3) AngleTo2(o Vector2) float64 { return v.AngleTo(o.Vec3()) }

// SignedAngleTo returns AngleTo(o), negative when v×o points away from axis.
func (v Vector3) SignedAngleTo(o, axis Vector3) float64 {
	return v.AngleTo(o) * sign(axis.Dot(v.Cross(o)))
}

// SignedAngleTo2 promotes o to 3D and returns the signed angle to it.
func (v Vector3) SignedAngleTo2(o Vector2, axis Vector3) float64 {
	return v.SignedAngleTo(o.Vec3(), axis)
}

// ProjectOntoPlane removes the component of v along normal. A zero normal
// leaves v unchanged.
func (v Vector3) ProjectOntoPlane(normal Vector3) Vector3 {
	sqr := normal.SqrLength()
	if sqr == 0 {
		return v
	}
	return v.Sub(normal.Scale(v.Dot(normal) / sqr))
}

// RotatedBy rotates v by angle radians about axis.
func (v Vector3) RotatedBy(angle float64, axis Vector3) Vector3 {
	return QuaternionFromAngleAxis(angle, axis).Rotate(v)
}

// Compare orders v and o by length, regardless of dimension.
func (v Vector3) Compare(o Vector) int { return CompareLength(v, o) }

// Equal reports exact component-wise equality.
func (v Vector3) Equal(o Vector3) bool { return v.X == o.X && v.Y == o.Y && v.Z == o.Z }

func (v Vector3) Hash() uint64 { return hashAxes(v.X, v.Y, v.Z) }

func (v Vector3) String() string { return formatAxes(v.X, v.Y, v.Z) }
