// Copyright 2020 Aleksandr Demakin. All rights reserved.

package double

import (
	"math"
)

// Trigonometric functions follow a three-stage argument reduction: the
// input is rewritten as z·2π + j·π/2 + k·π/16 + t with integer z, j, k
// and |t| bounded by about π/32. The Taylor series then converges on
// t, and precomputed sin/cos values for the j and k multiples restore
// the full result via the angle-addition identities.

// reduce splits a into (j, k, t), see above. j is the quadrant within
// the period, k the sub-index within the quadrant.
func reduce(a Double) (j, k int, t Double) {
	z := a.Div(twoPi).Round()
	r := a.Sub(z.Mul(twoPi))

	q := math.Floor(r.hi/halfPi.hi + 0.5)
	t = r.Sub(halfPi.mulF64(q))
	j = int(q)

	q = math.Floor(t.hi/pi16.hi + 0.5)
	t = t.Sub(pi16.mulF64(q))
	k = int(q)
	return j, k, t
}

// sinTaylor computes sin a for small reduced arguments by summing the
// odd power series. The loop stops once a term falls below half an
// epsilon of the argument, or when the inverse-factorial table runs
// out, which bounds the iteration count unconditionally.
func sinTaylor(a Double) Double {
	if a.IsZero() {
		return a
	}
	threshold := 0.5 * math.Abs(a.Float64()) * Epsilon
	x := a.Sqr().Neg()
	s, r := a, a
	for i := 0; ; i += 2 {
		r = r.Mul(x)
		t := r.Mul(invFacts[i])
		s = s.Add(t)
		if i+2 >= len(invFacts) || math.Abs(t.Float64()) <= threshold {
			break
		}
	}
	return s
}

// cosTaylor computes cos a for small reduced arguments via the even
// power series.
func cosTaylor(a Double) Double {
	if a.IsZero() {
		return One
	}
	threshold := 0.5 * Epsilon
	x := a.Sqr().Neg()
	r := x
	s := One.Add(r.mulPwr2(0.5))
	for i := 1; ; i += 2 {
		r = r.Mul(x)
		t := r.Mul(invFacts[i])
		s = s.Add(t)
		if i+2 >= len(invFacts) || math.Abs(t.Float64()) <= threshold {
			break
		}
	}
	return s
}

// sincosTaylor computes both series at once: once the sine is known
// the cosine comes cheaper from sqrt(1-sin²).
func sincosTaylor(a Double) (sin, cos Double) {
	if a.IsZero() {
		return a, One
	}
	sin = sinTaylor(a)
	return sin, One.Sub(sin.Sqr()).Sqrt()
}

// Sin computes the sine of the value. Sin(±0) is ±0; infinities and
// NaN yield NaN.
func (d Double) Sin() Double {
	if d.IsZero() {
		return d
	}
	if d.IsInf() || d.IsNaN() {
		return NaN
	}
	j, k, t := reduce(d)
	if k == 0 {
		switch j {
		case 0:
			return sinTaylor(t)
		case 1:
			return cosTaylor(t)
		case -1:
			return cosTaylor(t).Neg()
		default:
			return sinTaylor(t).Neg()
		}
	}
	u, v := cosines[absInt(k)-1], sines[absInt(k)-1]
	sinT, cosT := sincosTaylor(t)
	if k > 0 {
		switch j {
		case 0:
			return u.Mul(sinT).Add(v.Mul(cosT))
		case 1:
			return u.Mul(cosT).Sub(v.Mul(sinT))
		case -1:
			return v.Mul(sinT).Sub(u.Mul(cosT))
		default:
			return u.Mul(sinT).Add(v.Mul(cosT)).Neg()
		}
	}
	switch j {
	case 0:
		return u.Mul(sinT).Sub(v.Mul(cosT))
	case 1:
		return u.Mul(cosT).Add(v.Mul(sinT))
	case -1:
		return u.Mul(cosT).Add(v.Mul(sinT)).Neg()
	default:
		return v.Mul(cosT).Sub(u.Mul(sinT))
	}
}

// Cos computes the cosine of the value. Cos(±0) is 1; infinities and
// NaN yield NaN.
func (d Double) Cos() Double {
	if d.IsZero() {
		return One
	}
	if d.IsInf() || d.IsNaN() {
		return NaN
	}
	j, k, t := reduce(d)
	if k == 0 {
		switch j {
		case 0:
			return cosTaylor(t)
		case 1:
			return sinTaylor(t).Neg()
		case -1:
			return sinTaylor(t)
		default:
			return cosTaylor(t).Neg()
		}
	}
	u, v := cosines[absInt(k)-1], sines[absInt(k)-1]
	sinT, cosT := sincosTaylor(t)
	if k > 0 {
		switch j {
		case 0:
			return u.Mul(cosT).Sub(v.Mul(sinT))
		case 1:
			return u.Mul(sinT).Add(v.Mul(cosT)).Neg()
		case -1:
			return u.Mul(sinT).Add(v.Mul(cosT))
		default:
			return v.Mul(sinT).Sub(u.Mul(cosT))
		}
	}
	switch j {
	case 0:
		return u.Mul(cosT).Add(v.Mul(sinT))
	case 1:
		return v.Mul(cosT).Sub(u.Mul(sinT))
	case -1:
		return u.Mul(sinT).Sub(v.Mul(cosT))
	default:
		return u.Mul(cosT).Add(v.Mul(sinT)).Neg()
	}
}

// SinCos computes both sine and cosine, cheaper than two separate
// calls since the reduction and the series run once.
func (d Double) SinCos() (sin, cos Double) {
	if d.IsZero() {
		return d, One
	}
	if d.IsInf() || d.IsNaN() {
		return NaN, NaN
	}
	j, k, t := reduce(d)
	sinT, cosT := sincosTaylor(t)
	var s, c Double
	if k == 0 {
		s, c = sinT, cosT
	} else {
		u, v := cosines[absInt(k)-1], sines[absInt(k)-1]
		if k > 0 {
			s = u.Mul(sinT).Add(v.Mul(cosT))
			c = u.Mul(cosT).Sub(v.Mul(sinT))
		} else {
			s = u.Mul(sinT).Sub(v.Mul(cosT))
			c = u.Mul(cosT).Add(v.Mul(sinT))
		}
	}
	switch j {
	case 0:
		return s, c
	case 1:
		return c, s.Neg()
	case -1:
		return c.Neg(), s
	default:
		return s.Neg(), c.Neg()
	}
}

// Tan computes the tangent as sin/cos; at odd multiples of π/2 the
// division yields a signed infinity rather than an error.
func (d Double) Tan() Double {
	if d.IsZero() {
		return d
	}
	s, c := d.SinCos()
	return s.Div(c)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
