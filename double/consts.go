// Copyright 2020 Aleksandr Demakin. All rights reserved.

package double

import (
	"math"
)

// Frequently used values. These are read-only: they are produced once,
// before any arithmetic runs, and must not be reassigned.
var (
	// Zero is +0. NegZero is -0; it equals Zero but has the sign bit set.
	Zero    = Raw(0, 0)
	NegZero = Raw(math.Copysign(0, -1), 0)
	One     = Raw(1, 0)
	NegOne  = Raw(-1, 0)

	Inf    = Raw(math.Inf(1), 0)
	NegInf = Raw(math.Inf(-1), 0)
	NaN    = Raw(math.NaN(), 0)

	// Max is the largest representable Double: the largest float64
	// plus the largest low limb that does not overlap it.
	Max = Raw(math.MaxFloat64, math.Nextafter(math.Ldexp(1, 970), 0))
	Min = Raw(-math.MaxFloat64, -math.Nextafter(math.Ldexp(1, 970), 0))

	// Pi, E and Ln2 are parsed from decimal expansions carrying well
	// over the 31 digits a Double can hold.
	Pi  Double
	E   Double
	Ln2 Double
)

// Epsilon is the working precision of a Double, 2⁻¹⁰⁴: the smallest
// relative difference between two adjacent normalized values.
const Epsilon = 0x1p-104

const (
	piStr = "3.14159265358979323846264338327950288419716939937510" +
		"5820974944592307816406286208998628034825342117067982"
	eStr = "2.71828182845904523536028747135266249775724709369995" +
		"9574966967627724076630353547594571382178525166427427"
	ln2Str = "0.69314718055994530941723212145817656807550013436025" +
		"5254120680009493393621969694715605863326996418687542"
)

// Derived angle constants for range reduction.
var (
	twoPi  Double // 2π
	halfPi Double // π/2
	pi16   Double // π/16
)

// invFacts holds 1/3!, 1/4!, …; the table runs long enough that the
// Taylor kernels stay valid for the π/16 arguments used to build the
// reconstruction tables below, not just for reduced residuals.
var invFacts []Double

// sines and cosines hold sin(kπ/16) and cos(kπ/16) for k = 1..4,
// used to reconstruct results after range reduction.
var (
	sines   [4]Double
	cosines [4]Double
)

const maxFact = 23

func init() {
	Pi = MustFromString(piStr)
	E = MustFromString(eStr)
	Ln2 = MustFromString(ln2Str)

	twoPi = Pi.mulPwr2(2)
	halfPi = Pi.mulPwr2(0.5)
	pi16 = Pi.mulPwr2(1.0 / 16)

	// Factorials up to 23! fit in 106 bits, so the running product is
	// exact and each entry is a correctly rounded-to-working-precision
	// reciprocal.
	invFacts = make([]Double, 0, maxFact-2)
	fact := FromFloat64(2)
	for n := 3; n <= maxFact; n++ {
		fact = fact.mulF64(float64(n))
		invFacts = append(invFacts, One.Div(fact))
	}

	sinT := sinTaylor(pi16)
	cosT := cosTaylor(pi16)
	sines[0], cosines[0] = sinT, cosT
	for k := 1; k < 4; k++ {
		sines[k] = sines[k-1].Mul(cosT).Add(cosines[k-1].Mul(sinT))
		cosines[k] = cosines[k-1].Mul(cosT).Sub(sines[k-1].Mul(sinT))
	}
}
