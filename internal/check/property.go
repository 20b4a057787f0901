package check

import (
	"fmt"
	"math"
	"slices"

	"github.com/zeusync/vecmath/pkg/vecmath"
)

// Property is an algebraic law checked against one random sample per call.
// Check returns a non-nil error describing the counterexample when the law
// does not hold.
type Property struct {
	Name        string
	Description string
	Check       func(s *Sampler, eps float64) error
}

// Properties returns every known property in a fixed order.
func Properties() []Property {
	return []Property{
		{"normalized-unit-length", "normalizing a non-zero value yields length 1", checkNormalizedLength},
		{"zero-normalizes-to-nan", "normalizing a zero value yields NaN components", checkZeroNormalized},
		{"promotion-table", "mixed-dimension operators fill the missing axis by policy", checkPromotion},
		{"compare-ignores-dimension", "vectors of equal length compare equal across dimensions", checkCompare},
		{"quaternion-identity", "the identity rotation leaves vectors unchanged", checkIdentity},
		{"axis-fixed-point", "a rotation leaves its own axis unchanged", checkAxisFixed},
		{"euler-round-trip", "Euler angles survive a quaternion round trip", checkEulerRoundTrip},
		{"euler-pole-clamp", "pitch is clamped at gimbal lock instead of leaving asin's domain", checkEulerPole},
		{"lerp-endpoints", "lerp reproduces both endpoints exactly", checkLerpEndpoints},
		{"min-max-symmetry", "component-wise min and max are symmetric, also across dimensions", checkMinMax},
		{"degree-radian-round-trip", "degrees(radians(x)) returns x", checkDegrees},
	}
}

// Select returns the named properties in registry order, or all of them
// when names is empty.
func Select(names []string) ([]Property, error) {
	all := Properties()
	if len(names) == 0 {
		return all, nil
	}

	for _, name := range names {
		if !slices.ContainsFunc(all, func(p Property) bool { return p.Name == name }) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProperty, name)
		}
	}

	return slices.DeleteFunc(all, func(p Property) bool {
		return !slices.Contains(names, p.Name)
	}), nil
}

func checkNormalizedLength(s *Sampler, eps float64) error {
	v := s.Vector(100)
	n := vecmath.Normalize(v)
	s.Record(v, n)
	if math.Abs(n.Length()-1) >= eps {
		return fmt.Errorf("normalize(%s) has length %v", v, n.Length())
	}

	q := s.Quaternion(100)
	if q.Length() < 1e-3 {
		return nil
	}
	qn := q.Normalized()
	s.Record(q, qn)
	if math.Abs(qn.Length()-1) >= eps {
		return fmt.Errorf("normalized %s has length %v", q, qn.Length())
	}
	return nil
}

func checkZeroNormalized(s *Sampler, _ float64) error {
	values := []fmt.Stringer{
		vecmath.Vector2Zero().Normalized(),
		vecmath.Vector3Zero().Normalized(),
		vecmath.Vector4Zero().Normalized(),
	}
	for _, v := range values {
		vec := v.(vecmath.Vector)
		for i := 0; i < vec.Dim(); i++ {
			if !math.IsNaN(vec.Axis(i)) {
				return fmt.Errorf("zero normalized to %s", vec)
			}
		}
	}

	q := vecmath.Quaternion{}.Normalized()
	if !math.IsNaN(q.X) || !math.IsNaN(q.W) {
		return fmt.Errorf("zero quaternion normalized to %s", q)
	}
	s.Record(append(values, q)...)
	return nil
}

func checkPromotion(s *Sampler, _ float64) error {
	a := s.Vector2(10)
	b := s.Vector3(10)
	c := s.Vector4(10)

	sum := a.Add3(b)
	diff := a.Sub3(b)
	prod := a.Mul3(b)
	quo := a.Div3(b)
	rem := a.Mod3(b)
	wide := b.Sub4(c)
	s.Record(sum, diff, prod, quo, rem, wide)

	switch {
	case sum != vecmath.Vector3{X: a.X + b.X, Y: a.Y + b.Y, Z: b.Z}:
		return fmt.Errorf("%s + %s = %s", a, b, sum)
	case diff != vecmath.Vector3{X: a.X - b.X, Y: a.Y - b.Y, Z: -b.Z}:
		return fmt.Errorf("%s - %s = %s", a, b, diff)
	case prod != vecmath.Vector3{X: a.X * b.X, Y: a.Y * b.Y}:
		return fmt.Errorf("%s * %s = %s", a, b, prod)
	case !math.IsInf(quo.Z, 1):
		return fmt.Errorf("%s / %s = %s", a, b, quo)
	case !math.IsNaN(rem.Z):
		return fmt.Errorf("%s %% %s = %s", a, b, rem)
	case wide.W != -c.W:
		return fmt.Errorf("%s - %s = %s", b, c, wide)
	}
	return nil
}

func checkCompare(s *Sampler, _ float64) error {
	a := s.Vector2(1000)
	b := vecmath.Vector3{X: a.Y, Y: a.X}
	c := vecmath.Vector4{Y: a.Y, W: a.X}
	s.Record(a, b, c)

	if a.Compare(b) != 0 || a.Compare(c) != 0 || c.Compare(b) != 0 {
		return fmt.Errorf("%s, %s and %s do not compare equal", a, b, c)
	}
	longer := a.Vec3().Add(vecmath.Vector3{Z: 1})
	if a.Compare(longer) != -1 {
		return fmt.Errorf("%s does not compare below %s", a, longer)
	}
	return nil
}

func checkIdentity(s *Sampler, eps float64) error {
	v := s.Vector3(1000)
	got := vecmath.QuaternionIdentity().Rotate(v)
	s.Record(v, got)

	if got.DistanceTo(v) > eps*math.Max(1, v.Length()) {
		return fmt.Errorf("identity rotated %s to %s", v, got)
	}
	return nil
}

func checkAxisFixed(s *Sampler, eps float64) error {
	axis := s.UnitVector3()
	angle := s.Float(-4*math.Pi, 4*math.Pi)
	q := vecmath.QuaternionFromAngleAxis(angle, axis)
	got := q.Rotate(axis)
	s.Record(q, got)

	if got.DistanceTo(axis) > eps {
		return fmt.Errorf("rotation by %v about %s moved the axis to %s", angle, axis, got)
	}
	return nil
}

// keep sampled angles this far from the ranges' open ends
const margin = 1e-2

func checkEulerRoundTrip(s *Sampler, eps float64) error {
	euler := vecmath.Vector3{
		X: s.Float(-math.Pi/2+margin, math.Pi/2-margin),
		Y: s.Float(-math.Pi+margin, math.Pi-margin),
		Z: s.Float(-math.Pi/2+margin, math.Pi/2-margin),
	}
	q := vecmath.QuaternionFromEuler(euler)
	got := q.Euler()
	s.Record(euler, q, got)

	if got.DistanceTo(euler) > eps {
		return fmt.Errorf("%s round-tripped to %s", euler, got)
	}
	return nil
}

func checkEulerPole(s *Sampler, _ float64) error {
	pole := math.Copysign(math.Pi/2, s.Float(-1, 1))
	euler := vecmath.Vector3{X: pole, Y: s.Float(-math.Pi, math.Pi)}
	got := vecmath.QuaternionFromEuler(euler).Euler()

	// push 2(wx - yz) past 1
	over := vecmath.Quaternion{X: math.Copysign(0.7072, pole), W: 0.7072}
	clamped := over.Euler()
	s.Record(got, clamped)

	switch {
	case math.IsNaN(got.X) || math.Abs(got.X) > math.Pi/2:
		return fmt.Errorf("pitch of %s extracted as %v", euler, got.X)
	case math.Abs(got.X-pole) > 1e-6:
		return fmt.Errorf("pitch of %s extracted as %v", euler, got.X)
	case clamped.X != pole:
		return fmt.Errorf("pitch of %s extracted as %v, want %v", over, clamped.X, pole)
	}
	return nil
}

func checkLerpEndpoints(s *Sampler, _ float64) error {
	a2, b2 := s.Vector2(100), s.Vector2(100)
	a3, b3 := s.Vector3(100), s.Vector3(100)
	a4, b4 := s.Vector4(100), s.Vector4(100)
	qa, qb := s.Quaternion(1), s.Quaternion(1)
	s.Record(a2, b2, a3, b3, a4, b4, qa, qb)

	switch {
	case vecmath.Lerp(a2, b2, 0) != a2 || vecmath.Lerp(a2, b2, 1) != b2:
		return fmt.Errorf("lerp(%s, %s) misses an endpoint", a2, b2)
	case vecmath.Lerp(a3, b3, 0) != a3 || vecmath.Lerp(a3, b3, 1) != b3:
		return fmt.Errorf("lerp(%s, %s) misses an endpoint", a3, b3)
	case vecmath.Lerp(a4, b4, 0) != a4 || vecmath.Lerp(a4, b4, 1) != b4:
		return fmt.Errorf("lerp(%s, %s) misses an endpoint", a4, b4)
	case vecmath.Lerp(qa, qb, 0) != qa || vecmath.Lerp(qa, qb, 1) != qb:
		return fmt.Errorf("lerp(%s, %s) misses an endpoint", qa, qb)
	}
	return nil
}

func checkMinMax(s *Sampler, _ float64) error {
	a2, b2 := s.Vector2(100), s.Vector2(100)
	a3, b3 := s.Vector3(100), s.Vector3(100)
	a4, b4 := s.Vector4(100), s.Vector4(100)
	s.Record(vecmath.Min(a2, b2), vecmath.Max(a3, b3), vecmath.Min(a4, b4))

	switch {
	case vecmath.Min(a2, b2) != vecmath.Min(b2, a2) || vecmath.Max(a2, b2) != vecmath.Max(b2, a2):
		return fmt.Errorf("min/max of %s and %s are not symmetric", a2, b2)
	case vecmath.Min(a3, b3) != vecmath.Min(b3, a3) || vecmath.Max(a3, b3) != vecmath.Max(b3, a3):
		return fmt.Errorf("min/max of %s and %s are not symmetric", a3, b3)
	case vecmath.Min(a4, b4) != vecmath.Min(b4, a4) || vecmath.Max(a4, b4) != vecmath.Max(b4, a4):
		return fmt.Errorf("min/max of %s and %s are not symmetric", a4, b4)
	}

	pairs := [][2]vecmath.Vector{{a2, b3}, {a3, b4}, {a2, b4}}
	for _, p := range pairs {
		if vecmath.MinVec(p[0], p[1]) != vecmath.MinVec(p[1], p[0]) || vecmath.MaxVec(p[0], p[1]) != vecmath.MaxVec(p[1], p[0]) {
			return fmt.Errorf("min/max of %s and %s are not symmetric", p[0], p[1])
		}
	}
	return nil
}

func checkDegrees(s *Sampler, eps float64) error {
	x := s.Float(-1e6, 1e6)
	got := vecmath.Degrees(vecmath.Radians(x))
	s.RecordFloat(x, got)

	if math.Abs(got-x) > eps*math.Max(1, math.Abs(x)) {
		return fmt.Errorf("degrees(radians(%v)) = %v", x, got)
	}
	return nil
}
