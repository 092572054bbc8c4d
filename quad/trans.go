// Copyright 2020 Aleksandr Demakin. All rights reserved.

package quad

import (
	"math"
)

// Exp computes e^q.
//
// The argument is reduced as q = m·ln2 + r with r further divided by
// 2¹⁶; the Taylor series on the tiny residual needs only a handful of
// terms, and the result is squared back sixteen times and scaled
// by 2ᵐ.
func (q Quad) Exp() Quad {
	const k = 65536.0
	const invK = 1.0 / k
	if q.IsNaN() {
		return NaN
	}
	if q.w[0] <= -709 {
		return Zero
	}
	if q.w[0] >= 709 {
		return Inf
	}
	if q.IsZero() {
		return One
	}
	if q.Eq(One) {
		return E
	}

	m := math.Floor(q.w[0]/Ln2.w[0] + 0.5)
	r := q.Sub(Ln2.mulF64(m)).mulPwr2(invK)

	p := r.Sqr()
	s := r.Add(p.mulPwr2(0.5))
	p = p.Mul(r)
	t := p.Mul(invFacts[0])
	i := 0
	for {
		s = s.Add(t)
		p = p.Mul(r)
		i++
		t = p.Mul(invFacts[i])
		if i >= 9 || math.Abs(t.Float64()) <= invK*Epsilon {
			break
		}
	}
	s = s.Add(t)

	for j := 0; j < 16; j++ {
		s = s.mulPwr2(2).Add(s.Sqr())
	}
	s = s.Add(One)
	return s.Ldexp(int(m))
}
