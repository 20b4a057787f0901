package vecmath

import (
	"math"
	"strconv"
	"strings"
)

// hashMix is the multiplier folding successive components into a hash.
const hashMix = 31

// formatAxes renders components as "{ a; b; ... }".
func formatAxes(values ...float64) string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for i, v := range values {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(FormatFloat(v))
	}
	sb.WriteString(" }")
	return sb.String()
}

// FormatFloat renders f as default double text: always with a fractional
// part ("1.0"), in scientific form ("1.0E20", "1.0E-5") outside [1e-3, 1e7),
// and "NaN", "Infinity" or "-Infinity" for special values. The output does
// not depend on locale.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(f, 'E', -1, 64)
	mantissa, exponent, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	exp, _ := strconv.Atoi(exponent)
	return mantissa + "E" + strconv.Itoa(exp)
}

// hashAxes mixes component bit patterns. Both zeros hash alike so that the
// hash agrees with ==.
func hashAxes(values ...float64) uint64 {
	var h uint64
	for _, v := range values {
		if v == 0 {
			v = 0
		}
		h = h*hashMix + math.Float64bits(v)
	}
	return h
}
