package vecmath

import "math"

// Vector4 is a four-component vector, e.g. a homogeneous point.
type Vector4 struct {
	X float64
	Y float64
	Z float64
	W float64
}

// NewVector4 creates a Vector4 from its components.
func NewVector4(x, y, z, w float64) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

func Vector4Zero() Vector4     { return Vector4{} }
func Vector4One() Vector4      { return Vector4{1, 1, 1, 1} }
func Vector4Right() Vector4    { return Vector4{1, 0, 0, 0} }
func Vector4Left() Vector4     { return Vector4{-1, 0, 0, 0} }
func Vector4Up() Vector4       { return Vector4{0, 1, 0, 0} }
func Vector4Down() Vector4     { return Vector4{0, -1, 0, 0} }
func Vector4Forward() Vector4  { return Vector4{0, 0, 1, 0} }
func Vector4Backward() Vector4 { return Vector4{0, 0, -1, 0} }

func Vector4NegativeInfinity() Vector4 {
	inf := math.Inf(-1)
	return Vector4{inf, inf, inf, inf}
}

func Vector4PositiveInfinity() Vector4 {
	inf := math.Inf(1)
	return Vector4{inf, inf, inf, inf}
}

func (v Vector4) Dim() int { return 4 }

func (v Vector4) Axis(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	default:
		return 0
	}
}

// Vec2 drops Z and W.
func (v Vector4) Vec2() Vector2 { return Vector2{v.X, v.Y} }

// Vec3 drops W.
func (v Vector4) Vec3() Vector3 { return Vector3{v.X, v.Y, v.Z} }

func (v Vector4) Add(o Vector4) Vector4 {
	return Vector4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vector4) Sub(o Vector4) Vector4 {
	return Vector4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

func (v Vector4) Mul(o Vector4) Vector4 {
	return Vector4{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

func (v Vector4) Div(o Vector4) Vector4 {
	return Vector4{v.X / o.X, v.Y / o.Y, v.Z / o.Z, v.W / o.W}
}

func (v Vector4) Mod(o Vector4) Vector4 {
	return Vector4{math.Mod(v.X, o.X), math.Mod(v.Y, o.Y), math.Mod(v.Z, o.Z), math.Mod(v.W, o.W)}
}

func (v Vector4) Add2(o Vector2) Vector4 { return promote(v, o, addPolicy()).(Vector4) }
func (v Vector4) Sub2(o Vector2) Vector4 { return promote(v, o, subPolicy()).(Vector4) }
func (v Vector4) Mul2(o Vector2) Vector4 { return promote(v, o, mulPolicy()).(Vector4) }
func (v Vector4) Div2(o Vector2) Vector4 { return promote(v, o, divPolicy()).(Vector4) }
func (v Vector4) Mod2(o Vector2) Vector4 { return promote(v, o, modPolicy()).(Vector4) }

func (v Vector4) Add3(o Vector3) Vector4 { return promote(v, o, addPolicy()).(Vector4) }
func (v Vector4) Sub3(o Vector3) Vector4 { return promote(v, o, subPolicy()).(Vector4) }
func (v Vector4) Mul3(o Vector3) Vector4 { return promote(v, o, mulPolicy()).(Vector4) }
func (v Vector4) Div3(o Vector3) Vector4 { return promote(v, o, divPolicy()).(Vector4) }
func (v Vector4) Mod3(o Vector3) Vector4 { return promote(v, o, modPolicy()).(Vector4) }

// Scale multiplies every component by s.
func (v Vector4) Scale(s float64) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (v Vector4) DivScalar(s float64) Vector4 {
	return Vector4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

func (v Vector4) ModScalar(s float64) Vector4 {
	return Vector4{math.Mod(v.X, s), math.Mod(v.Y, s), math.Mod(v.Z, s), math.Mod(v.W, s)}
}

func (v Vector4) Neg() Vector4 { return Vector4{-v.X, -v.Y, -v.Z, -v.W} }

func (v Vector4) Length() float64 { return math.Sqrt(v.SqrLength()) }

func (v Vector4) SqrLength() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// SetLength rescales v in place to length l, keeping its direction.
// A zero vector becomes NaN.
func (v *Vector4) SetLength(l float64) {
	*v = v.Normalized().Scale(l)
}

// Normalized returns v divided by its length.
func (v Vector4) Normalized() Vector4 { return v.DivScalar(v.Length()) }

func (v Vector4) Abs() Vector4 {
	return Vector4{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z), math.Abs(v.W)}
}

func (v Vector4) Sign() Vector4 {
	return Vector4{sign(v.X), sign(v.Y), sign(v.Z), sign(v.W)}
}

func (v Vector4) Ceil() Vector4 {
	return Vector4{math.Ceil(v.X), math.Ceil(v.Y), math.Ceil(v.Z), math.Ceil(v.W)}
}

func (v Vector4) Floor() Vector4 {
	return Vector4{math.Floor(v.X), math.Floor(v.Y), math.Floor(v.Z), math.Floor(v.W)}
}

// Round rounds each component half to even.
func (v Vector4) Round() Vector4 {
	return Vector4{math.RoundToEven(v.X), math.RoundToEven(v.Y), math.RoundToEven(v.Z), math.RoundToEven(v.W)}
}

// Dot returns the dot product with a vector of any dimension.
func (v Vector4) Dot(o Vector) float64 { return Dot(v, o) }

func (v Vector4) DistanceTo(o Vector) float64 { return Distance(v, o) }

// DirectionTo returns the unit vector pointing from v towards o.
func (v Vector4) DirectionTo(o Vector4) Vector4 { return o.Sub(v).Normalized() }

// ProjectOn projects v onto o. The result is NaN when o is zero.
func (v Vector4) ProjectOn(o Vector4) Vector4 {
	return o.Scale(v.Dot(o)).DivScalar(o.SqrLength())
}

// ReflectFrom mirrors v about the hyperplane with the given normal.
func (v Vector4) ReflectFrom(normal Vector4) Vector4 {
	n := normal.Normalized()
	return v.Add(n.Scale(-2 * v.Dot(n)))
}

// Compare orders v and o by length, regardless of dimension.
func (v Vector4) Compare(o Vector) int { return CompareLength(v, o) }

// Equal reports exact component-wise equality.
func (v Vector4) Equal(o Vector4) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z && v.W == o.W
}

func (v Vector4) Hash() uint64 { return hashAxes(v.X, v.Y, v.Z, v.W) }

func (v Vector4) String() string { return formatAxes(v.X, v.Y, v.Z, v.W) }
