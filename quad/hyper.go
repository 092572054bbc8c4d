// Copyright 2020 Aleksandr Demakin. All rights reserved.

package quad

import (
	"math"
)

// expThreshold is the |x| below which the exp-based hyperbolic
// formulas lose digits to cancellation and the direct series is used
// instead.
const expThreshold = 0.05

// Sinh computes the hyperbolic sine. Sinh(±0) is ±0, Sinh(±Inf) is
// ±Inf.
func (q Quad) Sinh() Quad {
	if q.IsZero() || q.IsNaN() || q.IsInf() {
		return q
	}
	if math.Abs(q.w[0]) > expThreshold {
		a := q.Exp()
		return a.Sub(a.Recip()).mulPwr2(0.5)
	}
	// (eˣ-e⁻ˣ)/2 cancels near zero; sum the odd series directly.
	s, t := q, q
	r := q.Sqr()
	m := 1.0
	threshold := math.Abs(q.Float64()) * Epsilon
	for {
		m += 2
		t = t.Mul(r)
		t = t.Div(FromFloat64((m - 1) * m))
		s = s.Add(t)
		if math.Abs(t.Float64()) <= threshold {
			break
		}
	}
	return s
}

// Cosh computes the hyperbolic cosine. Cosh(±0) is 1, Cosh(±Inf) is
// +Inf.
func (q Quad) Cosh() Quad {
	if q.IsZero() {
		return One
	}
	if q.IsNaN() {
		return NaN
	}
	if q.IsInf() {
		return Inf
	}
	a := q.Exp()
	return a.Add(a.Recip()).mulPwr2(0.5)
}

// SinhCosh computes both hyperbolic sine and cosine, cheaper than two
// separate calls.
func (q Quad) SinhCosh() (sinh, cosh Quad) {
	if q.IsNaN() {
		return NaN, NaN
	}
	if q.IsZero() {
		return q, One
	}
	if q.IsInf() {
		return q, Inf
	}
	if math.Abs(q.w[0]) <= expThreshold {
		s := q.Sinh()
		return s, One.Add(s.Sqr()).Sqrt()
	}
	a := q.Exp()
	inv := a.Recip()
	return a.Sub(inv).mulPwr2(0.5), a.Add(inv).mulPwr2(0.5)
}

// Tanh computes the hyperbolic tangent. Tanh(±0) is ±0, Tanh(±Inf)
// is ±1.
func (q Quad) Tanh() Quad {
	if q.IsZero() || q.IsNaN() {
		return q
	}
	if q.IsInf() {
		if q.Signbit() {
			return NegOne
		}
		return One
	}
	if math.Abs(q.w[0]) > expThreshold {
		a := q.Exp()
		inv := a.Recip()
		return a.Sub(inv).Div(a.Add(inv))
	}
	s := q.Sinh()
	return s.Div(One.Add(s.Sqr()).Sqrt())
}
