// Copyright 2020 Aleksandr Demakin. All rights reserved.

package double

import (
	"math"
)

// Exp computes eᵈ.
//
// The argument is reduced as d = m·ln2 + r with r further divided by
// 512, so that a short Taylor series on r/512 suffices; the series
// result is squared back nine times and scaled by 2ᵐ.
func (d Double) Exp() Double {
	const k = 512.0
	const invK = 1.0 / k
	if d.IsNaN() {
		return NaN
	}
	if d.hi <= -709 {
		return Zero
	}
	if d.hi >= 709 {
		return Inf
	}
	if d.IsZero() {
		return One
	}
	if d.Eq(One) {
		return E
	}

	m := math.Floor(d.hi/Ln2.hi + 0.5)
	r := d.Sub(Ln2.mulF64(m)).mulPwr2(invK)

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
		if i >= 5 || math.Abs(t.Float64()) <= invK*Epsilon {
			break
		}
	}
	s = s.Add(t)

	for j := 0; j < 9; j++ {
		s = s.mulPwr2(2).Add(s.Sqr())
	}
	s = s.Add(One)
	return s.Ldexp(int(m))
}
