// Copyright 2020 Aleksandr Demakin. All rights reserved.

package quad

import (
	"math"

	"github.com/avdva/extfloat/internal/mathutil"
)

// Add returns q + other.
// Special values behave as in float64 arithmetic extended to four
// limbs: NaN propagates, opposite infinities give NaN, (-0)+(-0)
// is -0.
func (q Quad) Add(other Quad) Quad {
	if q.IsNaN() || other.IsNaN() {
		return NaN
	}
	if q.IsInf() {
		if other.IsInf() && q.Signbit() != other.Signbit() {
			return NaN
		}
		return q
	}
	if other.IsInf() {
		return other
	}
	if q.IsZero() && other.IsZero() {
		// let the hardware pick the sign of the zero.
		return Raw(q.w[0]+other.w[0], 0, 0, 0)
	}
	s0, t0 := mathutil.TwoSum(q.w[0], other.w[0])
	s1, t1 := mathutil.TwoSum(q.w[1], other.w[1])
	s2, t2 := mathutil.TwoSum(q.w[2], other.w[2])
	s3, t3 := mathutil.TwoSum(q.w[3], other.w[3])

	s1, t0 = mathutil.TwoSum(s1, t0)
	s2, t0, t1 = mathutil.ThreeThreeSum(s2, t0, t1)
	s3, t0 = mathutil.ThreeTwoSum(s3, t0, t2)
	t0 = t0 + t1 + t3

	return Raw(mathutil.Renorm5(s0, s1, s2, s3, t0))
}

// Sub returns q - other.
func (q Quad) Sub(other Quad) Quad {
	if q.Eq(other) && !q.IsZero() && !q.IsInf() {
		if q.Signbit() {
			return NegZero
		}
		return Zero
	}
	return q.Add(other.Neg())
}

// Neg returns the value with its sign flipped. Zeros change sign.
func (q Quad) Neg() Quad {
	return Raw(-q.w[0], -q.w[1], -q.w[2], -q.w[3])
}

// Abs returns the absolute value.
func (q Quad) Abs() Quad {
	if q.Signbit() {
		return q.Neg()
	}
	return q
}

// Mul returns q * other.
//
// The partial products are grouped by their order of magnitude
// relative to the leading product: the O(ε³) tier contributes only
// its rounded sum, anything smaller cannot affect four limbs.
func (q Quad) Mul(other Quad) Quad {
	if q.IsNaN() || other.IsNaN() {
		return NaN
	}
	if q.IsZero() || other.IsZero() {
		if q.IsInf() || other.IsInf() {
			return NaN
		}
		return Raw(q.w[0]*other.w[0], 0, 0, 0)
	}
	if q.IsInf() || other.IsInf() {
		return Raw(q.w[0]*other.w[0], 0, 0, 0)
	}
	a, b := &q.w, &other.w

	p0, q0 := mathutil.TwoProd(a[0], b[0])
	p1, q1 := mathutil.TwoProd(a[0], b[1])
	p2, q2 := mathutil.TwoProd(a[1], b[0])
	p3, q3 := mathutil.TwoProd(a[0], b[2])
	p4, q4 := mathutil.TwoProd(a[1], b[1])
	p5, q5 := mathutil.TwoProd(a[2], b[0])

	// fold the O(ε) tier.
	p1, p2, q0 = mathutil.ThreeThreeSum(p1, p2, q0)

	// fold the O(ε²) tier: six values down to three.
	p2, q1, q2 = mathutil.ThreeThreeSum(p2, q1, q2)
	p3, p4, p5 = mathutil.ThreeThreeSum(p3, p4, p5)
	s0, t0 := mathutil.TwoSum(p2, p3)
	s1, t1 := mathutil.TwoSum(q1, p4)
	s2 := q2 + p5
	s1, t0 = mathutil.TwoSum(s1, t0)
	s2 += t0 + t1

	// the O(ε³) tier only needs its float64 sum.
	s2 += a[0]*b[3] + a[1]*b[2] + a[2]*b[1] + a[3]*b[0] + q3 + q4 + q5

	return Raw(mathutil.Renorm5(p0, p1, s0, s1, s2))
}

// Sqr returns q².
func (q Quad) Sqr() Quad {
	return q.Mul(q)
}

// mulF64 multiplies by a plain float64 without promoting it first.
// Division accumulates float64 quotient terms and must not round-trip
// them through a full Quad operand.
func (q Quad) mulF64(b float64) Quad {
	h0, l0 := mathutil.TwoProd(q.w[0], b)
	h1, l1 := mathutil.TwoProd(q.w[1], b)
	h2, l2 := mathutil.TwoProd(q.w[2], b)
	h3 := q.w[3] * b

	s0 := h0
	s1, t0 := mathutil.TwoSum(h1, l0)
	s2, t1, t2 := mathutil.ThreeThreeSum(t0, h2, l1)
	s3, t3 := mathutil.ThreeTwoSum(t1, h3, l2)
	s4 := t2 + t3

	return Raw(mathutil.Renorm5(s0, s1, s2, s3, s4))
}

// mulPwr2 multiplies by an exact power of two, scaling each limb
// without any rounding.
func (q Quad) mulPwr2(f float64) Quad {
	return Raw(q.w[0]*f, q.w[1]*f, q.w[2]*f, q.w[3]*f)
}

// Ldexp returns q * 2ⁿ exactly (barring overflow or underflow).
func (q Quad) Ldexp(n int) Quad {
	return Raw(math.Ldexp(q.w[0], n), math.Ldexp(q.w[1], n),
		math.Ldexp(q.w[2], n), math.Ldexp(q.w[3], n))
}

// Div returns q / other.
//
// A float64 quotient of the leading limbs starts the result; the
// remainder is divided again four times, and the five accumulated
// quotient terms are renormalized. Four correction passes are what it
// takes to fill the 212-bit mantissa; fewer demonstrably fail the
// reciprocal round-trip at full precision.
func (q Quad) Div(other Quad) Quad {
	if q.IsNaN() || other.IsNaN() {
		return NaN
	}
	if other.IsZero() {
		if q.IsZero() {
			return NaN
		}
		if q.Signbit() == other.Signbit() {
			return Inf
		}
		return NegInf
	}
	if q.IsInf() {
		if other.IsInf() {
			return NaN
		}
		if q.Signbit() == other.Signbit() {
			return Inf
		}
		return NegInf
	}
	if other.IsInf() {
		if q.Signbit() == other.Signbit() {
			return Zero
		}
		return NegZero
	}
	q0 := q.w[0] / other.w[0]
	r := q.Sub(other.mulF64(q0))

	q1 := r.w[0] / other.w[0]
	r = r.Sub(other.mulF64(q1))

	q2 := r.w[0] / other.w[0]
	r = r.Sub(other.mulF64(q2))

	q3 := r.w[0] / other.w[0]
	r = r.Sub(other.mulF64(q3))

	q4 := r.w[0] / other.w[0]

	return Raw(mathutil.Renorm5(q0, q1, q2, q3, q4))
}

// Recip returns 1 / q.
func (q Quad) Recip() Quad {
	return One.Div(q)
}

// Sqrt returns the square root of the value.
// The root of a negative number is NaN; sqrt(±0) = ±0.
//
// A float64 reciprocal-root estimate is refined with three Newton
// steps (r ← r + r·(1/2 − (q/2)·r²)), each roughly doubling the
// correct bits, then multiplied back by q.
func (q Quad) Sqrt() Quad {
	if q.IsNaN() {
		return NaN
	}
	if q.IsZero() {
		return q
	}
	if q.Signbit() {
		return NaN
	}
	if q.IsInf() {
		return q
	}
	r := FromFloat64(1 / math.Sqrt(q.w[0]))
	h := q.mulPwr2(0.5)
	half := FromFloat64(0.5)
	for i := 0; i < 3; i++ {
		r = r.Add(r.Mul(half.Sub(h.Mul(r.Sqr()))))
	}
	return r.Mul(q)
}

// Floor returns the greatest integer value less than or equal to q.
func (q Quad) Floor() Quad {
	x0 := math.Floor(q.w[0])
	var x1, x2, x3 float64
	if x0 == q.w[0] {
		x1 = math.Floor(q.w[1])
		if x1 == q.w[1] {
			x2 = math.Floor(q.w[2])
			if x2 == q.w[2] {
				x3 = math.Floor(q.w[3])
			}
		}
	}
	return New(x0, x1, x2, x3)
}

// Ceil returns the least integer value greater than or equal to q.
func (q Quad) Ceil() Quad {
	x0 := math.Ceil(q.w[0])
	var x1, x2, x3 float64
	if x0 == q.w[0] {
		x1 = math.Ceil(q.w[1])
		if x1 == q.w[1] {
			x2 = math.Ceil(q.w[2])
			if x2 == q.w[2] {
				x3 = math.Ceil(q.w[3])
			}
		}
	}
	return New(x0, x1, x2, x3)
}

// Trunc returns the integer part of q, rounding toward zero.
func (q Quad) Trunc() Quad {
	if q.Signbit() {
		return q.Ceil()
	}
	return q.Floor()
}

// Round returns the nearest integer, rounding half away from zero.
func (q Quad) Round() Quad {
	x0 := math.Round(q.w[0])
	var x1, x2, x3 float64
	if x0 == q.w[0] {
		x1 = math.Round(q.w[1])
		if x1 == q.w[1] {
			x2 = math.Round(q.w[2])
			if x2 == q.w[2] {
				x3 = fixTie(math.Round(q.w[3]), q.w[3], 0, q.w[0])
			} else {
				x2 = fixTie(x2, q.w[2], q.w[3], q.w[0])
			}
		} else {
			x1 = fixTie(x1, q.w[1], q.w[2], q.w[0])
		}
	} else {
		x0 = fixTie(x0, q.w[0], q.w[1], q.w[0])
	}
	return New(x0, x1, x2, x3)
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
