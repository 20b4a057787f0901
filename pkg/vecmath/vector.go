// Package vecmath provides 2D, 3D and 4D vectors and a rotation quaternion
// that interoperate across dimensions.
//
// Every operation returns a new value. The single exception is SetLength,
// which rewrites its receiver in place.
//
// Binary operations on operands of different dimension promote the lower
// dimension operand to the higher one. The axis that only one operand owns
// is resolved by a fixed per-operator policy:
//
//	Add, Sub  the missing axis is treated as 0
//	Mul       the result axis is 0
//	Div       the result axis is +Inf
//	Mod       the result axis is NaN
//
// Comparisons ignore dimension and order vectors by Length.
//
// Degenerate input never fails: normalizing a zero vector yields NaN
// components, which the caller must detect if it matters.
package vecmath

import (
	"cmp"
	"math"
)

// Vector is implemented by Vector2, Vector3 and Vector4.
type Vector interface {
	// Dim reports the number of axes.
	Dim() int
	// Axis returns the i-th component, or 0 when i is outside the vector.
	Axis(i int) float64
	Length() float64
	SqrLength() float64
	String() string
}

var (
	_ Vector = Vector2{}
	_ Vector = Vector3{}
	_ Vector = Vector4{}
)

const maxDim = 4

// axes is the widest component layout; unused trailing axes stay zero.
type axes [maxDim]float64

// policy resolves one axis of a binary operation. op is used where both
// operands own the axis, absent where only one does.
type policy struct {
	op     func(a, b float64) float64
	absent func(a, b float64) float64
}

func add(a, b float64) float64 { return a + b }
func sub(a, b float64) float64 { return a - b }
func mul(a, b float64) float64 { return a * b }
func div(a, b float64) float64 { return a / b }

func zero(_, _ float64) float64    { return 0 }
func posInf(_, _ float64) float64  { return math.Inf(1) }
func notANum(_, _ float64) float64 { return math.NaN() }

func addPolicy() policy { return policy{op: add, absent: add} }
func subPolicy() policy { return policy{op: sub, absent: sub} }
func mulPolicy() policy { return policy{op: mul, absent: zero} }
func divPolicy() policy { return policy{op: div, absent: posInf} }
func modPolicy() policy { return policy{op: math.Mod, absent: notANum} }

// The absent axis reads as 0 through Axis, so min and max compare the
// present component against 0.
func minPolicy() policy { return policy{op: math.Min, absent: math.Min} }
func maxPolicy() policy { return policy{op: math.Max, absent: math.Max} }

// promote applies p axis-wise over the higher dimension of a and b.
func promote(a, b Vector, p policy) Vector {
	n := max(a.Dim(), b.Dim())
	var out axes
	for i := 0; i < n; i++ {
		if i < a.Dim() && i < b.Dim() {
			out[i] = p.op(a.Axis(i), b.Axis(i))
		} else {
			out[i] = p.absent(a.Axis(i), b.Axis(i))
		}
	}
	return build(n, out)
}

// build assembles a vector of dimension n from the leading axes of c.
func build(n int, c axes) Vector {
	switch n {
	case 2:
		return Vector2{c[0], c[1]}
	case 3:
		return Vector3{c[0], c[1], c[2]}
	default:
		return Vector4{c[0], c[1], c[2], c[3]}
	}
}

// widen zero-pads v to n axes.
func widen(v Vector, n int) Vector {
	var out axes
	for i := 0; i < v.Dim(); i++ {
		out[i] = v.Axis(i)
	}
	return build(max(n, v.Dim()), out)
}

func scaled(v Vector, s float64) Vector {
	var out axes
	for i := 0; i < v.Dim(); i++ {
		out[i] = v.Axis(i) * s
	}
	return build(v.Dim(), out)
}

// Add returns a + b in the higher dimension of the two.
func Add(a, b Vector) Vector { return promote(a, b, addPolicy()) }

// Sub returns a - b in the higher dimension of the two.
func Sub(a, b Vector) Vector { return promote(a, b, subPolicy()) }

// Mul returns the element-wise product; an axis owned by one operand only is 0.
func Mul(a, b Vector) Vector { return promote(a, b, mulPolicy()) }

// Div returns the element-wise quotient; an axis owned by one operand only is +Inf.
func Div(a, b Vector) Vector { return promote(a, b, divPolicy()) }

// Mod returns the element-wise remainder; an axis owned by one operand only is NaN.
func Mod(a, b Vector) Vector { return promote(a, b, modPolicy()) }

// MinVec returns the component-wise minimum in the higher dimension of a and
// b. An axis owned by one operand only is min(0, component).
func MinVec(a, b Vector) Vector { return promote(a, b, minPolicy()) }

// MaxVec returns the component-wise maximum in the higher dimension of a and
// b. An axis owned by one operand only is max(0, component).
func MaxVec(a, b Vector) Vector { return promote(a, b, maxPolicy()) }

// LerpVec interpolates as a·(1−t) + b·t, promoting through Add.
func LerpVec(a, b Vector, t float64) Vector {
	return Add(scaled(a, 1-t), scaled(b, t))
}

// Dot returns the dot product of a and b, zero-padding the shorter one.
func Dot(a, b Vector) float64 {
	n := max(a.Dim(), b.Dim())
	var sum float64
	for i := 0; i < n; i++ {
		sum += a.Axis(i) * b.Axis(i)
	}
	return sum
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vector) float64 {
	return Sub(a, b).Length()
}

// Normalize returns v scaled to unit length.
func Normalize(v Vector) Vector {
	return scaled(v, 1/v.Length())
}

// Direction returns the unit vector pointing from a towards b.
func Direction(a, b Vector) Vector {
	return Normalize(Sub(b, a))
}

// Project returns the projection of v onto other in the higher dimension of
// the two. The result is NaN when other is the zero vector.
func Project(v, other Vector) Vector {
	onto := widen(other, max(v.Dim(), other.Dim()))
	return scaled(onto, Dot(v, onto)/onto.SqrLength())
}

// Reflect mirrors v about the plane with the given normal. The normal does
// not need to be unit length.
func Reflect(v, normal Vector) Vector {
	n := Normalize(normal)
	return Add(v, scaled(n, -2*Dot(v, n)))
}

// CompareLength orders a and b by magnitude, ignoring dimension.
func CompareLength(a, b Vector) int {
	return cmp.Compare(a.Length(), b.Length())
}

// sign returns -1, 0 or 1; NaN stays NaN.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x
	}
}
