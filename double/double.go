// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package double implements a double-double floating-point number: the
// unevaluated sum of two float64 limbs, giving about 106 bits (~31
// decimal digits) of mantissa with the float64 exponent range.
//
// Double is a small value type; all operations return new values, and
// values may be freely copied and used from multiple goroutines.
// Special values follow float64 semantics extended to two limbs:
// signed zeros are all-zero limbs with a sign bit, infinities and NaN
// are carried by the leading limb.
package double

import (
	"fmt"
	"math"

	"github.com/avdva/extfloat/internal/mathutil"
)

// Double is an extended-precision number hi+lo.
//
// A normalized Double satisfies |hi| >= |lo| and the limbs do not
// overlap: adding lo to hi with a plain float64 addition leaves hi
// unchanged. All constructors except Raw produce normalized values,
// and every arithmetic operation preserves normalization.
type Double struct {
	hi, lo float64
}

// Raw creates a Double from two limbs without renormalizing them.
//
// The caller must guarantee that the limbs already satisfy the
// normalized ordering, otherwise comparisons and arithmetic on the
// result are undefined. It exists to build constants and intermediate
// values where normalization is known to be unnecessary.
func Raw(hi, lo float64) Double {
	return Double{hi: hi, lo: lo}
}

// New creates a Double by normalizing the two limbs.
//
// The limbs are taken to be exactly the desired value; any rounding
// error they carry is kept. New(1.1, 0) is therefore the float64 1.1,
// not the decimal 1.1 — parse a string for the latter.
func New(hi, lo float64) Double {
	var s, e float64
	if math.Abs(hi) > math.Abs(lo) {
		s, e = mathutil.QuickTwoSum(hi, lo)
	} else {
		s, e = mathutil.QuickTwoSum(lo, hi)
	}
	return Double{hi: s, lo: e}
}

// FromFloat64 converts a float64 to a Double exactly.
func FromFloat64(f float64) Double {
	return Double{hi: f}
}

// Float64 returns the nearest float64, which for a normalized value is
// the leading limb.
func (d Double) Float64() float64 {
	return d.hi
}

// At returns the idx-th limb, 0 being the most significant.
// It panics if idx is outside [0, 1]: an out-of-range component access
// is a programming error, not a data condition.
func (d Double) At(idx int) float64 {
	switch idx {
	case 0:
		return d.hi
	case 1:
		return d.lo
	default:
		panic(fmt.Sprintf("double: component index %d out of range [0, 1]", idx))
	}
}

// Limbs returns both limbs of the value.
func (d Double) Limbs() (hi, lo float64) {
	return d.hi, d.lo
}

// IsZero reports whether the value is zero of either sign.
func (d Double) IsZero() bool {
	return d.hi == 0
}

// IsInf reports whether the value is an infinity of either sign.
func (d Double) IsInf() bool {
	return math.IsInf(d.hi, 0)
}

// IsNaN reports whether the value is a NaN.
func (d Double) IsNaN() bool {
	return math.IsNaN(d.hi)
}

// Signbit reports whether the value is negative or negative zero.
func (d Double) Signbit() bool {
	return math.Signbit(d.hi)
}

// Sign returns -1 for negative values, 1 for positive, and 0 for
// zeros of either sign and for NaN.
func (d Double) Sign() int {
	switch {
	case d.hi > 0:
		return 1
	case d.hi < 0:
		return -1
	default:
		return 0
	}
}

// Eq reports whether both values represent the same number.
// Zeros of different signs are equal; NaN is not equal to anything,
// including itself.
func (d Double) Eq(other Double) bool {
	return d.hi == other.hi && d.lo == other.lo
}

// Lt reports whether d < other. The result is false if either operand
// is NaN.
func (d Double) Lt(other Double) bool {
	return d.hi < other.hi || (d.hi == other.hi && d.lo < other.lo)
}

// Gt reports whether d > other. The result is false if either operand
// is NaN.
func (d Double) Gt(other Double) bool {
	return d.hi > other.hi || (d.hi == other.hi && d.lo > other.lo)
}

// Cmp compares two values lexicographically by limbs.
// Returns -1 if d < other, 0 if d == other, 1 if d > other.
// NaN is unordered: if either operand is a NaN, Cmp returns 0, so
// callers that care must check IsNaN first.
func (d Double) Cmp(other Double) int {
	switch {
	case d.Lt(other):
		return -1
	case d.Gt(other):
		return 1
	default:
		return 0
	}
}
