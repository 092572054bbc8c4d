// Copyright 2020 Aleksandr Demakin. All rights reserved.

package double

import (
	"math"

	"github.com/avdva/extfloat/internal/mathutil"
)

// Add returns d + other.
// Infinities, NaNs and signed zeros behave as in float64 arithmetic:
// NaN propagates, opposite infinities give NaN, (-0)+(-0) is -0.
func (d Double) Add(other Double) Double {
	if d.IsNaN() || other.IsNaN() {
		return NaN
	}
	if d.IsInf() {
		if other.IsInf() && d.Signbit() != other.Signbit() {
			return NaN
		}
		return d
	}
	if other.IsInf() {
		return other
	}
	if d.IsZero() && other.IsZero() {
		// let the hardware pick the sign of the zero.
		return Raw(d.hi+other.hi, 0)
	}
	s0, e0 := mathutil.TwoSum(d.hi, other.hi)
	s1, e1 := mathutil.TwoSum(d.lo, other.lo)
	e0 += s1
	s0, e0 = mathutil.QuickTwoSum(s0, e0)
	e0 += e1
	hi, lo := mathutil.QuickTwoSum(s0, e0)
	return Raw(hi, lo)
}

// Sub returns d - other.
// Subtracting a finite nonzero value from itself gives a zero carrying
// the value's sign: +0 for positive, -0 for negative.
func (d Double) Sub(other Double) Double {
	if d.Eq(other) && !d.IsZero() && !d.IsInf() {
		if d.Signbit() {
			return NegZero
		}
		return Zero
	}
	return d.Add(other.Neg())
}

// Neg returns the value with its sign flipped. Zeros change sign.
func (d Double) Neg() Double {
	return Raw(-d.hi, -d.lo)
}

// Abs returns the absolute value.
func (d Double) Abs() Double {
	if d.Signbit() {
		return d.Neg()
	}
	return d
}

// Mul returns d * other.
// Zero times infinity is NaN; otherwise signs follow the float64
// sign-of-product rules, and overflow propagates as infinity.
func (d Double) Mul(other Double) Double {
	if d.IsNaN() || other.IsNaN() {
		return NaN
	}
	if d.IsZero() || other.IsZero() {
		if d.IsInf() || other.IsInf() {
			return NaN
		}
		return Raw(d.hi*other.hi, 0)
	}
	if d.IsInf() || other.IsInf() {
		return Raw(d.hi*other.hi, 0)
	}
	p, e := mathutil.TwoProd(d.hi, other.hi)
	e += d.hi*other.lo + d.lo*other.hi
	hi, lo := mathutil.QuickTwoSum(p, e)
	return Raw(hi, lo)
}

// Sqr returns d², a bit cheaper than d.Mul(d).
func (d Double) Sqr() Double {
	if d.IsNaN() {
		return NaN
	}
	if d.IsZero() || d.IsInf() {
		return Raw(d.hi*d.hi, 0)
	}
	p, e := mathutil.TwoProd(d.hi, d.hi)
	e += 2 * d.hi * d.lo
	e += d.lo * d.lo
	hi, lo := mathutil.QuickTwoSum(p, e)
	return Raw(hi, lo)
}

// mulF64 multiplies by a plain float64 without promoting it first.
// Division builds its quotient terms from float64s, so it cannot go
// through Mul with a promoted operand kept in the same code path.
func (d Double) mulF64(b float64) Double {
	p, e := mathutil.TwoProd(d.hi, b)
	e += d.lo * b
	hi, lo := mathutil.QuickTwoSum(p, e)
	return Raw(hi, lo)
}

// mulPwr2 multiplies by an exact power of two, scaling each limb
// without any rounding.
func (d Double) mulPwr2(f float64) Double {
	return Raw(d.hi*f, d.lo*f)
}

// Ldexp returns d * 2ⁿ exactly (barring overflow or underflow).
func (d Double) Ldexp(n int) Double {
	return Raw(math.Ldexp(d.hi, n), math.Ldexp(d.lo, n))
}

// Div returns d / other.
//
// The quotient is built by iterative refinement: a float64 estimate
// from the leading limbs, then repeated division of the remainder,
// accumulating three quotient terms that are renormalized into the
// result. Division by zero yields a signed infinity unless the
// numerator is zero too, in which case NaN.
func (d Double) Div(other Double) Double {
	if d.IsNaN() || other.IsNaN() {
		return NaN
	}
	if other.IsZero() {
		if d.IsZero() {
			return NaN
		}
		if d.Signbit() == other.Signbit() {
			return Inf
		}
		return NegInf
	}
	if d.IsInf() {
		if other.IsInf() {
			return NaN
		}
		if d.Signbit() == other.Signbit() {
			return Inf
		}
		return NegInf
	}
	if other.IsInf() {
		if d.Signbit() == other.Signbit() {
			return Zero
		}
		return NegZero
	}
	q0 := d.hi / other.hi
	r := d.Sub(other.mulF64(q0))
	q1 := r.hi / other.hi
	r = r.Sub(other.mulF64(q1))
	q2 := r.hi / other.hi
	hi, lo := mathutil.Renorm3(q0, q1, q2)
	return Raw(hi, lo)
}

// Recip returns 1 / d.
func (d Double) Recip() Double {
	return One.Div(d)
}

// Sqrt returns the square root of the value.
// The root of a negative number is NaN; sqrt(±0) = ±0.
//
// Uses Karp's method: a float64 reciprocal root estimate x, then
// sqrt(a) ≈ a·x + (a - (a·x)²)·x/2, which needs only one extended
// multiplication.
func (d Double) Sqrt() Double {
	if d.IsNaN() {
		return NaN
	}
	if d.IsZero() {
		return d
	}
	if d.Signbit() {
		return NaN
	}
	if d.IsInf() {
		return d
	}
	x := 1 / math.Sqrt(d.hi)
	ax := FromFloat64(d.hi * x)
	r := d.Sub(ax.Sqr())
	return ax.Add(r.mulF64(x * 0.5))
}

// Floor returns the greatest integer value less than or equal to d.
func (d Double) Floor() Double {
	hi := math.Floor(d.hi)
	if hi != d.hi {
		return Raw(hi, 0)
	}
	// the integer part of hi is exact, the fraction lives in lo.
	s, e := mathutil.QuickTwoSum(hi, math.Floor(d.lo))
	return Raw(s, e)
}

// Ceil returns the least integer value greater than or equal to d.
func (d Double) Ceil() Double {
	hi := math.Ceil(d.hi)
	if hi != d.hi {
		return Raw(hi, 0)
	}
	s, e := mathutil.QuickTwoSum(hi, math.Ceil(d.lo))
	return Raw(s, e)
}

// Trunc returns the integer part of d, rounding toward zero.
func (d Double) Trunc() Double {
	if d.Signbit() {
		return d.Ceil()
	}
	return d.Floor()
}

// Round returns the nearest integer, rounding half away from zero.
func (d Double) Round() Double {
	hi := math.Round(d.hi)
	if hi == d.hi {
		// hi is already integral, round the low limb.
		lo := fixTie(math.Round(d.lo), d.lo, 0, hi)
		s, e := mathutil.QuickTwoSum(hi, lo)
		return Raw(s, e)
	}
	return Raw(fixTie(hi, d.hi, d.lo, d.hi), 0)
}

// fixTie corrects a half-way rounding of a limb. The sign of the next
// limb down tells on which side of the tie the full value lies; an
// exact tie rounds away from zero of the full value, whose sign is
// that of the leading limb.
func fixTie(x, limb, next, lead float64) float64 {
	if math.Abs(x-limb) != 0.5 {
		return x
	}
	if x > limb && next < 0 {
		return x - 1
	}
	if x < limb && next > 0 {
		return x + 1
	}
	if next == 0 {
		if lead > 0 && x < limb {
			return x + 1
		}
		if lead < 0 && x > limb {
			return x - 1
		}
	}
	return x
}
