// Copyright 2020 Aleksandr Demakin. All rights reserved.

package double

import (
	"math"
)

// expThreshold is the |x| below which the exp-based hyperbolic
// formulas lose digits to cancellation and the direct series is used
// instead.
const expThreshold = 0.05

// Sinh computes the hyperbolic sine. Sinh(±0) is ±0, Sinh(±Inf) is
// ±Inf.
func (d Double) Sinh() Double {
	if d.IsZero() || d.IsNaN() || d.IsInf() {
		return d
	}
	if math.Abs(d.hi) > expThreshold {
		a := d.Exp()
		return a.Sub(a.Recip()).mulPwr2(0.5)
	}
	// (eˣ-e⁻ˣ)/2 cancels near zero; sum the odd series directly.
	s, t := d, d
	r := d.Sqr()
	m := 1.0
	threshold := math.Abs(d.Float64()) * Epsilon
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
func (d Double) Cosh() Double {
	if d.IsZero() {
		return One
	}
	if d.IsNaN() {
		return NaN
	}
	if d.IsInf() {
		return Inf
	}
	a := d.Exp()
	return a.Add(a.Recip()).mulPwr2(0.5)
}

// SinhCosh computes both hyperbolic sine and cosine, cheaper than two
// separate calls.
func (d Double) SinhCosh() (sinh, cosh Double) {
	if d.IsNaN() {
		return NaN, NaN
	}
	if d.IsZero() {
		return d, One
	}
	if d.IsInf() {
		return d, Inf
	}
	if math.Abs(d.hi) <= expThreshold {
		s := d.Sinh()
		return s, One.Add(s.Sqr()).Sqrt()
	}
	a := d.Exp()
	inv := a.Recip()
	return a.Sub(inv).mulPwr2(0.5), a.Add(inv).mulPwr2(0.5)
}

// Tanh computes the hyperbolic tangent. Tanh(±0) is ±0, Tanh(±Inf)
// is ±1.
func (d Double) Tanh() Double {
	if d.IsZero() || d.IsNaN() {
		return d
	}
	if d.IsInf() {
		if d.Signbit() {
			return NegOne
		}
		return One
	}
	if math.Abs(d.hi) > expThreshold {
		a := d.Exp()
		inv := a.Recip()
		return a.Sub(inv).Div(a.Add(inv))
	}
	s := d.Sinh()
	return s.Div(One.Add(s.Sqr()).Sqrt())
}
