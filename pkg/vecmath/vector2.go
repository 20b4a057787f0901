package vecmath

import "math"

// Vector2 is a point or direction in the plane.
type Vector2 struct {
	X float64
	Y float64
}

// NewVector2 creates a Vector2 from its components.
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func Vector2Zero() Vector2  { return Vector2{} }
func Vector2One() Vector2   { return Vector2{1, 1} }
func Vector2Right() Vector2 { return Vector2{1, 0} }
func Vector2Left() Vector2  { return Vector2{-1, 0} }
func Vector2Up() Vector2    { return Vector2{0, 1} }
func Vector2Down() Vector2  { return Vector2{0, -1} }

func Vector2NegativeInfinity() Vector2 {
	return Vector2{math.Inf(-1), math.Inf(-1)}
}

func Vector2PositiveInfinity() Vector2 {
	return Vector2{math.Inf(1), math.Inf(1)}
}

func (v Vector2) Dim() int { return 2 }

func (v Vector2) Axis(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return 0
	}
}

// Vec3 widens v with Z = 0.
func (v Vector2) Vec3() Vector3 { return Vector3{v.X, v.Y, 0} }

// Vec4 widens v with Z = W = 0.
func (v Vector2) Vec4() Vector4 { return Vector4{v.X, v.Y, 0, 0} }

func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }
func (v Vector2) Mul(o Vector2) Vector2 { return Vector2{v.X * o.X, v.Y * o.Y} }
func (v Vector2) Div(o Vector2) Vector2 { return Vector2{v.X / o.X, v.Y / o.Y} }

func (v Vector2) Mod(o Vector2) Vector2 {
	return Vector2{math.Mod(v.X, o.X), math.Mod(v.Y, o.Y)}
}

func (v Vector2) Add3(o Vector3) Vector3 { return promote(v, o, addPolicy()).(Vector3) }
func (v Vector2) Sub3(o Vector3) Vector3 { return promote(v, o, subPolicy()).(Vector3) }
func (v Vector2) Mul3(o Vector3) Vector3 { return promote(v, o, mulPolicy()).(Vector3) }
func (v Vector2) Div3(o Vector3) Vector3 { return promote(v, o, divPolicy()).(Vector3) }
func (v Vector2) Mod3(o Vector3) Vector3 { return promote(v, o, modPolicy()).(Vector3) }

func (v Vector2) Add4(o Vector4) Vector4 { return promote(v, o, addPolicy()).(Vector4) }
func (v Vector2) Sub4(o Vector4) Vector4 { return promote(v, o, subPolicy()).(Vector4) }
func (v Vector2) Mul4(o Vector4) Vector4 { return promote(v, o, mulPolicy()).(Vector4) }
func (v Vector2) Div4(o Vector4) Vector4 { return promote(v, o, divPolicy()).(Vector4) }
func (v Vector2) Mod4(o Vector4) Vector4 { return promote(v, o, modPolicy()).(Vector4) }

// Scale multiplies every component by s.
func (v Vector2) Scale(s float64) Vector2 { return Vector2{v.X * s, v.Y * s} }

func (v Vector2) DivScalar(s float64) Vector2 { return Vector2{v.X / s, v.Y / s} }

func (v Vector2) ModScalar(s float64) Vector2 {
	return Vector2{math.Mod(v.X, s), math.Mod(v.Y, s)}
}

func (v Vector2) Neg() Vector2 { return Vector2{-v.X, -v.Y} }

func (v Vector2) Length() float64 { return math.Sqrt(v.SqrLength()) }

func (v Vector2) SqrLength() float64 { return v.X*v.X + v.Y*v.Y }

// SetLength rescales v in place to length l, keeping its direction.
// A zero vector becomes NaN.
func (v *Vector2) SetLength(l float64) {
	*v = v.Normalized().Scale(l)
}

// Normalized returns v divided by its length.
func (v Vector2) Normalized() Vector2 { return v.DivScalar(v.Length()) }

func (v Vector2) Abs() Vector2   { return Vector2{math.Abs(v.X), math.Abs(v.Y)} }
func (v Vector2) Sign() Vector2  { return Vector2{sign(v.X), sign(v.Y)} }
func (v Vector2) Ceil() Vector2  { return Vector2{math.Ceil(v.X), math.Ceil(v.Y)} }
func (v Vector2) Floor() Vector2 { return Vector2{math.Floor(v.X), math.Floor(v.Y)} }

// Round rounds each component half to even.
func (v Vector2) Round() Vector2 {
	return Vector2{math.RoundToEven(v.X), math.RoundToEven(v.Y)}
}

// Dot returns the dot product with a vector of any dimension.
func (v Vector2) Dot(o Vector) float64 { return Dot(v, o) }

// Cross returns x·o.x − y·o.y.
func (v Vector2) Cross(o Vector2) float64 { return v.X*o.X - v.Y*o.Y }

// Cross3 returns the 3D cross product treating v as having Z = 0.
func (v Vector2) Cross3(o Vector3) Vector3 { return v.Vec3().Cross(o) }

func (v Vector2) DistanceTo(o Vector) float64 { return Distance(v, o) }

// DirectionTo returns the unit vector pointing from v towards o.
func (v Vector2) DirectionTo(o Vector2) Vector2 { return o.Sub(v).Normalized() }

// ProjectOn projects v onto o. The result is NaN when o is zero.
func (v Vector2) ProjectOn(o Vector2) Vector2 {
	return o.Scale(v.Dot(o)).DivScalar(o.SqrLength())
}

// ReflectFrom mirrors v about the line with the given normal.
func (v Vector2) ReflectFrom(normal Vector2) Vector2 {
	n := normal.Normalized()
	return v.Add(n.Scale(-2 * v.Dot(n)))
}

// AngleTo returns the unsigned angle in radians between v and o, computed
// as acos(dot / (|v|·|o|)).
func (v Vector2) AngleTo(o Vector2) float64 {
	return math.Acos(v.Dot(o) / (v.Length() * o.Length()))
}

// AngleTo3 promotes v to 3D and returns the angle to o.
func (v Vector2) AngleTo3(o Vector3) float64 { return v.Vec3().AngleTo(o) }

// SignedAngleTo returns AngleTo(o) carrying the sign of Cross(o).
func (v Vector2) SignedAngleTo(o Vector2) float64 {
	return v.AngleTo(o) * sign(v.Cross(o))
}

// SignedAngleTo3 returns o.SignedAngleTo2(v, axis), the signed angle
// measured from o back to v.
func (v Vector2) SignedAngleTo3(o, axis Vector3) float64 {
	return o.SignedAngleTo2(v, axis)
}

// Perpendicular returns v rotated a quarter turn counter-clockwise.
func (v Vector2) Perpendicular() Vector2 { return Vector2{-v.Y, v.X} }

// RotatedBy rotates v counter-clockwise by angle radians.
func (v Vector2) RotatedBy(angle float64) Vector2 {
	sin, cos := math.Sincos(angle)
	return Vector2{cos*v.X - sin*v.Y, sin*v.X + cos*v.Y}
}

// Compare orders v and o by length, regardless of dimension.
func (v Vector2) Compare(o Vector) int { return CompareLength(v, o) }

// Equal reports exact component-wise equality.
func (v Vector2) Equal(o Vector2) bool { return v.X == o.X && v.Y == o.Y }

func (v Vector2) Hash() uint64 { return hashAxes(v.X, v.Y) }

func (v Vector2) String() string { return formatAxes(v.X, v.Y) }
