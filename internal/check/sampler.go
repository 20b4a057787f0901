package check

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/vecmath/pkg/vecmath"
)

// Sampler draws reproducible random inputs for one property and folds the
// debug form of every recorded value into a running digest.
type Sampler struct {
	rng    *rand.Rand
	digest *xxhash.Digest
}

// NewSampler derives an independent stream from seed and the property name,
// so that properties sample the same values however they are scheduled.
func NewSampler(seed uint64, property string) *Sampler {
	return &Sampler{
		rng:    rand.New(rand.NewPCG(seed, xxhash.Sum64String(property))),
		digest: xxhash.New(),
	}
}

// Float returns a value in [lo, hi).
func (s *Sampler) Float(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *Sampler) Vector2(scale float64) vecmath.Vector2 {
	return vecmath.Vector2{X: s.Float(-scale, scale), Y: s.Float(-scale, scale)}
}

func (s *Sampler) Vector3(scale float64) vecmath.Vector3 {
	return vecmath.Vector3{X: s.Float(-scale, scale), Y: s.Float(-scale, scale), Z: s.Float(-scale, scale)}
}

func (s *Sampler) Vector4(scale float64) vecmath.Vector4 {
	return vecmath.Vector4{X: s.Float(-scale, scale), Y: s.Float(-scale, scale), Z: s.Float(-scale, scale), W: s.Float(-scale, scale)}
}

func (s *Sampler) Quaternion(scale float64) vecmath.Quaternion {
	v := s.Vector4(scale)
	return vecmath.Quaternion{X: v.X, Y: v.Y, Z: v.Z, W: v.W}
}

// Vector returns a vector of random dimension with length at least 1e-3.
func (s *Sampler) Vector(scale float64) vecmath.Vector {
	for {
		var v vecmath.Vector
		switch s.rng.IntN(3) {
		case 0:
			v = s.Vector2(scale)
		case 1:
			v = s.Vector3(scale)
		default:
			v = s.Vector4(scale)
		}
		if v.Length() >= 1e-3 {
			return v
		}
	}
}

// UnitVector3 returns a direction uniformly distributed on the unit sphere.
func (s *Sampler) UnitVector3() vecmath.Vector3 {
	z := s.Float(-1, 1)
	phi := s.Float(0, 2*math.Pi)
	r := math.Sqrt(1 - z*z)
	return vecmath.Vector3{X: r * math.Cos(phi), Y: r * math.Sin(phi), Z: z}
}

// Record adds values to the digest.
func (s *Sampler) Record(values ...fmt.Stringer) {
	for _, v := range values {
		_, _ = s.digest.WriteString(v.String())
		_, _ = s.digest.WriteString("\n")
	}
}

// RecordFloat adds a scalar to the digest.
func (s *Sampler) RecordFloat(values ...float64) {
	for _, v := range values {
		_, _ = s.digest.WriteString(vecmath.FormatFloat(v))
		_, _ = s.digest.WriteString("\n")
	}
}

// Sum64 returns the digest of everything recorded so far.
func (s *Sampler) Sum64() uint64 {
	return s.digest.Sum64()
}
