// Copyright 2020 Aleksandr Demakin. All rights reserved.

package quad

import (
	"math"
)

// Trigonometric functions use the same three-stage argument reduction
// as the double package (2π, then π/2, then π/16) with quad-precision
// constants, followed by Taylor summation on the residual and
// angle-addition reconstruction.

// reduce splits a into (j, k, t) with a = z·2π + j·π/2 + k·π/16 + t.
func reduce(a Quad) (j, k int, t Quad) {
	z := a.Div(twoPi).Round()
	r := a.Sub(z.Mul(twoPi))

	q := math.Floor(r.w[0]/halfPi.w[0] + 0.5)
	t = r.Sub(halfPi.mulF64(q))
	j = int(q)

	q = math.Floor(t.w[0]/pi16.w[0] + 0.5)
	t = t.Sub(pi16.mulF64(q))
	k = int(q)
	return j, k, t
}

// sinTaylor computes sin a for small reduced arguments by summing the
// odd power series until a term drops below half an epsilon of the
// argument or the inverse-factorial table runs out.
func sinTaylor(a Quad) Quad {
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
func cosTaylor(a Quad) Quad {
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

// sincosTaylor computes both series at once; the cosine comes from
// sqrt(1-sin²) once the sine is known.
func sincosTaylor(a Quad) (sin, cos Quad) {
	if a.IsZero() {
		return a, One
	}
	sin = sinTaylor(a)
	return sin, One.Sub(sin.Sqr()).Sqrt()
}

// Sin computes the sine of the value. Sin(±0) is ±0; infinities and
// NaN yield NaN.
func (q Quad) Sin() Quad {
	if q.IsZero() {
		return q
	}
	if q.IsInf() || q.IsNaN() {
		return NaN
	}
	j, k, t := reduce(q)
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
func (q Quad) Cos() Quad {
	if q.IsZero() {
		return One
	}
	if q.IsInf() || q.IsNaN() {
		return NaN
	}
	j, k, t := reduce(q)
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
func (q Quad) SinCos() (sin, cos Quad) {
	if q.IsZero() {
		return q, One
	}
	if q.IsInf() || q.IsNaN() {
		return NaN, NaN
	}
	j, k, t := reduce(q)
	sinT, cosT := sincosTaylor(t)
	var s, c Quad
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
func (q Quad) Tan() Quad {
	if q.IsZero() {
		return q
	}
	s, c := q.SinCos()
	return s.Div(c)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
