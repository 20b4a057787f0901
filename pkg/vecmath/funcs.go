package vecmath

import "math"

// Algebraic is the set of component-wise value types in this package.
type Algebraic interface {
	Vector2 | Vector3 | Vector4 | Quaternion
}

func components[T Algebraic](v T) (axes, int) {
	switch v := any(v).(type) {
	case Vector2:
		return axes{v.X, v.Y}, 2
	case Vector3:
		return axes{v.X, v.Y, v.Z}, 3
	case Vector4:
		return axes{v.X, v.Y, v.Z, v.W}, 4
	case Quaternion:
		return axes{v.X, v.Y, v.Z, v.W}, 4
	}
	panic("unreachable")
}

func assemble[T Algebraic](c axes) T {
	var out T
	switch p := any(&out).(type) {
	case *Vector2:
		*p = Vector2{c[0], c[1]}
	case *Vector3:
		*p = Vector3{c[0], c[1], c[2]}
	case *Vector4:
		*p = Vector4{c[0], c[1], c[2], c[3]}
	case *Quaternion:
		*p = Quaternion{c[0], c[1], c[2], c[3]}
	}
	return out
}

func zipWith[T Algebraic](a, b T, f func(x, y float64) float64) T {
	ca, n := components(a)
	cb, _ := components(b)
	var out axes
	for i := 0; i < n; i++ {
		out[i] = f(ca[i], cb[i])
	}
	return assemble[T](out)
}

func mapEach[T Algebraic](v T, f func(x float64) float64) T {
	c, n := components(v)
	for i := 0; i < n; i++ {
		c[i] = f(c[i])
	}
	return assemble[T](c)
}

// Min returns the component-wise minimum of a and b. MinVec accepts
// operands of different dimension.
func Min[T Algebraic](a, b T) T { return zipWith(a, b, math.Min) }

// Max returns the component-wise maximum of a and b.
func Max[T Algebraic](a, b T) T { return zipWith(a, b, math.Max) }

// Lerp interpolates linearly from a (t = 0) to b (t = 1). Both endpoints
// are reproduced exactly. t is not clamped and quaternion results are not
// renormalized.
func Lerp[T Algebraic](a, b T, t float64) T {
	return zipWith(a, b, func(x, y float64) float64 {
		return x*(1-t) + y*t
	})
}

// ScalarMul returns s·v.
func ScalarMul[T Algebraic](s float64, v T) T {
	return mapEach(v, func(x float64) float64 { return s * x })
}

// ScalarDiv divides s by every component of v.
func ScalarDiv[T Algebraic](s float64, v T) T {
	return mapEach(v, func(x float64) float64 { return s / x })
}

// ScalarMod returns the remainder of s divided by every component of v.
func ScalarMod[T Algebraic](s float64, v T) T {
	return mapEach(v, func(x float64) float64 { return math.Mod(s, x) })
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }
