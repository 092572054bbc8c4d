// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package quad implements a quad-double floating-point number: the
// unevaluated sum of four float64 limbs, giving about 212 bits (~63
// decimal digits) of mantissa with the float64 exponent range.
//
// Quad mirrors the double package at twice the limb count; see that
// package for the representation invariants. Quad is a small value
// type; all operations return new values.
package quad

import (
	"fmt"
	"math"

	"github.com/avdva/extfloat/double"
	"github.com/avdva/extfloat/internal/mathutil"
)

// Quad is an extended-precision number w[0]+w[1]+w[2]+w[3].
//
// A normalized Quad has limbs in strictly decreasing magnitude order
// with no overlapping mantissa bits between neighbours. All
// constructors except Raw produce normalized values.
type Quad struct {
	w [4]float64
}

// Raw creates a Quad from four limbs without renormalizing them.
// The caller must guarantee the normalized ordering, otherwise
// arithmetic on the result is undefined. Meant for constants where
// normalization is known to be unnecessary.
func Raw(a, b, c, d float64) Quad {
	return Quad{w: [4]float64{a, b, c, d}}
}

// New creates a Quad by renormalizing the four limbs. The limbs are
// taken to be exactly the desired value; rounding error they carry is
// kept.
func New(a, b, c, d float64) Quad {
	return Raw(mathutil.Renorm4(a, b, c, d))
}

// FromFloat64 converts a float64 to a Quad exactly.
func FromFloat64(f float64) Quad {
	return Raw(f, 0, 0, 0)
}

// FromDouble widens a two-limb value to four limbs exactly.
func FromDouble(d double.Double) Quad {
	hi, lo := d.Limbs()
	return Raw(hi, lo, 0, 0)
}

// Double narrows the value to two limbs, rounding away the low ones.
func (q Quad) Double() double.Double {
	return double.New(q.w[0], q.w[1])
}

// Float64 returns the nearest float64, which for a normalized value
// is the leading limb.
func (q Quad) Float64() float64 {
	return q.w[0]
}

// At returns the idx-th limb, 0 being the most significant.
// It panics if idx is outside [0, 3]: an out-of-range component access
// is a programming error, not a data condition.
func (q Quad) At(idx int) float64 {
	if idx < 0 || idx > 3 {
		panic(fmt.Sprintf("quad: component index %d out of range [0, 3]", idx))
	}
	return q.w[idx]
}

// Limbs returns all four limbs of the value.
func (q Quad) Limbs() (a, b, c, d float64) {
	return q.w[0], q.w[1], q.w[2], q.w[3]
}

// IsZero reports whether the value is zero of either sign.
func (q Quad) IsZero() bool {
	return q.w[0] == 0
}

// IsInf reports whether the value is an infinity of either sign.
func (q Quad) IsInf() bool {
	return math.IsInf(q.w[0], 0)
}

// IsNaN reports whether the value is a NaN.
func (q Quad) IsNaN() bool {
	return math.IsNaN(q.w[0])
}

// Signbit reports whether the value is negative or negative zero.
func (q Quad) Signbit() bool {
	return math.Signbit(q.w[0])
}

// Sign returns -1 for negative values, 1 for positive, and 0 for
// zeros of either sign and for NaN.
func (q Quad) Sign() int {
	switch {
	case q.w[0] > 0:
		return 1
	case q.w[0] < 0:
		return -1
	default:
		return 0
	}
}

// Eq reports whether both values represent the same number.
// Zeros of different signs are equal; NaN is not equal to anything.
func (q Quad) Eq(other Quad) bool {
	return q.w[0] == other.w[0] && q.w[1] == other.w[1] &&
		q.w[2] == other.w[2] && q.w[3] == other.w[3]
}

// Lt reports whether q < other. The result is false if either operand
// is NaN.
func (q Quad) Lt(other Quad) bool {
	for i := 0; i < 4; i++ {
		if q.w[i] != other.w[i] {
			return q.w[i] < other.w[i]
		}
	}
	return false
}

// Gt reports whether q > other. The result is false if either operand
// is NaN.
func (q Quad) Gt(other Quad) bool {
	for i := 0; i < 4; i++ {
		if q.w[i] != other.w[i] {
			return q.w[i] > other.w[i]
		}
	}
	return false
}

// Cmp compares two values lexicographically by limbs.
// Returns -1 if q < other, 0 if q == other, 1 if q > other.
// NaN is unordered: if either operand is a NaN, Cmp returns 0.
func (q Quad) Cmp(other Quad) int {
	switch {
	case q.Lt(other):
		return -1
	case q.Gt(other):
		return 1
	default:
		return 0
	}
}
