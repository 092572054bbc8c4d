// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package mathutil implements the error-free float transformations and
// the limb renormalization used by the double and quad packages.
//
// An error-free transformation decomposes a rounded float operation
// into the rounded result plus an exact correction term, so that
// result+err recovers the mathematical value bit for bit as long as
// nothing overflows.
package mathutil

import (
	"math"
)

// TwoSum returns (s, e) such that s = fl(a+b) and s+e equals a+b
// exactly. No precondition on the magnitudes of a and b.
// If the sum overflows, e is zero and the infinity is left to
// propagate through the caller's cascade.
func TwoSum(a, b float64) (s, e float64) {
	s = a + b
	if math.IsInf(s, 0) {
		return s, 0
	}
	bb := s - a
	e = (a - (s - bb)) + (b - bb)
	return s, e
}

// QuickTwoSum is TwoSum with the precondition |a| >= |b| (or a == 0).
func QuickTwoSum(a, b float64) (s, e float64) {
	s = a + b
	if math.IsInf(s, 0) {
		return s, 0
	}
	e = b - (s - a)
	return s, e
}

// TwoDiff returns (s, e) such that s = fl(a-b) and s+e equals a-b exactly.
func TwoDiff(a, b float64) (s, e float64) {
	s = a - b
	if math.IsInf(s, 0) {
		return s, 0
	}
	bb := s - a
	e = (a - (s - bb)) - (b + bb)
	return s, e
}

// TwoProd returns (p, e) such that p = fl(a*b) and p+e equals a*b
// exactly. The correction term comes from a fused multiply-add, which
// computes a*b-p without intermediate rounding.
func TwoProd(a, b float64) (p, e float64) {
	p = a * b
	if math.IsInf(p, 0) {
		return p, 0
	}
	e = math.FMA(a, b, -p)
	return p, e
}

// ThreeTwoSum adds three floats, returning the sum and a single
// combined error term.
func ThreeTwoSum(a, b, c float64) (s, e float64) {
	t0, t1 := TwoSum(a, b)
	s, t2 := TwoSum(t0, c)
	return s, t1 + t2
}

// ThreeThreeSum adds three floats, keeping all three result components.
func ThreeThreeSum(a, b, c float64) (s0, s1, s2 float64) {
	t0, t1 := TwoSum(a, b)
	s0, t2 := TwoSum(t0, c)
	s1, s2 = TwoSum(t1, t2)
	return s0, s1, s2
}

// Renorm3 collapses three raw terms into a normalized two-limb pair.
// The terms are expected in roughly decreasing magnitude, as produced
// by the arithmetic cascades; the result satisfies the non-overlap
// invariant and preserves the sum to double-double precision.
func Renorm3(c0, c1, c2 float64) (hi, lo float64) {
	if math.IsInf(c0, 0) || math.IsNaN(c0) {
		return c0, 0
	}
	s, t2 := QuickTwoSum(c1, c2)
	hi, t1 := QuickTwoSum(c0, s)
	hi, lo = QuickTwoSum(hi, t1+t2)
	return hi, lo
}

// Renorm4 collapses four raw terms into a normalized four-limb tuple.
func Renorm4(c0, c1, c2, c3 float64) (r0, r1, r2, r3 float64) {
	if math.IsInf(c0, 0) || math.IsNaN(c0) {
		return c0, 0, 0, 0
	}
	var s float64
	s, c3 = QuickTwoSum(c2, c3)
	s, c2 = QuickTwoSum(c1, s)
	c0, c1 = QuickTwoSum(c0, s)
	out := cascade(c0, [4]float64{c1, c2, c3, 0}, 3)
	return out[0], out[1], out[2], out[3]
}

// Renorm5 collapses five raw terms into a normalized four-limb tuple.
func Renorm5(c0, c1, c2, c3, c4 float64) (r0, r1, r2, r3 float64) {
	if math.IsInf(c0, 0) || math.IsNaN(c0) {
		return c0, 0, 0, 0
	}
	var s float64
	s, c4 = QuickTwoSum(c3, c4)
	s, c3 = QuickTwoSum(c2, s)
	s, c2 = QuickTwoSum(c1, s)
	c0, c1 = QuickTwoSum(c0, s)
	out := cascade(c0, [4]float64{c1, c2, c3, c4}, 4)
	return out[0], out[1], out[2], out[3]
}

// cascade runs the forward accumulation pass of renormalization.
// Starting from the most significant term, each following term is
// folded in with QuickTwoSum; a limb is committed to the output only
// once folding the next term produces a nonzero error, which skips
// exact zeros and keeps the decreasing-magnitude invariant strict.
// After three limbs are committed the remaining terms are plain-added
// into the accumulator, as any further split is not representable.
func cascade(c0 float64, rest [4]float64, n int) [4]float64 {
	var out [4]float64
	s, k := c0, 0
	for _, c := range rest[:n] {
		if k == 3 {
			s += c
			continue
		}
		var e float64
		s, e = QuickTwoSum(s, c)
		if e != 0 {
			out[k] = s
			k++
			s = e
		}
	}
	out[k] = s
	return out
}
