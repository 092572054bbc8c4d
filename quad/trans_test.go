// Copyright 2020 Aleksandr Demakin. All rights reserved.

package quad

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExp(t *testing.T) {
	a := assert.New(t)

	a.Equal(One, Zero.Exp())
	a.Equal(E, One.Exp())
	a.True(NaN.Exp().IsNaN())
	a.Equal(Inf, Inf.Exp())
	a.Equal(Zero, NegInf.Exp())
	a.Equal(Inf, FromFloat64(1000).Exp())
	a.Equal(Zero, FromFloat64(-1000).Exp())

	closeTo(a, FromFloat64(2), Ln2.Exp(), 1e-60)
	closeTo(a, E.Recip(), NegOne.Exp(), 1e-60)
	closeTo(a, E.Sqr(), FromFloat64(2).Exp(), 1e-59)
}

// exp(-1) against an independently computed decimal reference.
func TestExpPrecision(t *testing.T) {
	a := assert.New(t)

	eDec := decimal.RequireFromString(eStr)
	want := decimal.New(1, 0).DivRound(eDec, 75)
	got := decimal.RequireFromString(NegOne.Exp().String())
	a.True(got.Sub(want).Abs().LessThan(decimal.New(1, -60)),
		"exp(-1) = %v, want %v", got, want)
}

func TestHyper(t *testing.T) {
	a := assert.New(t)

	s := Zero.Sinh()
	a.True(s.IsZero())
	a.False(s.Signbit())
	s = NegZero.Sinh()
	a.True(s.IsZero())
	a.True(s.Signbit())
	a.Equal(One, Zero.Cosh())
	a.Equal(Inf, Inf.Sinh())
	a.Equal(NegInf, NegInf.Sinh())
	a.Equal(Inf, NegInf.Cosh())
	a.Equal(One, Inf.Tanh())
	a.Equal(NegOne, NegInf.Tanh())
	a.True(NaN.Sinh().IsNaN())
	a.True(NaN.Cosh().IsNaN())
	a.True(NaN.Tanh().IsNaN())

	// sinh and cosh against their exp definitions, either side of the
	// series/exp switch point.
	for _, f := range []float64{0.0499, 0.0501, 1, -2.5} {
		x := FromFloat64(f)
		ex, inv := x.Exp(), x.Neg().Exp()
		closeTo(a, ex.Sub(inv).mulPwr2(0.5), x.Sinh(), 1e-59)
		closeTo(a, ex.Add(inv).mulPwr2(0.5), x.Cosh(), 1e-59)
	}
}

func TestTransProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("exp(x)*exp(-x) == 1", prop.ForAll(
		func(f float64) bool {
			x := FromFloat64(f)
			return x.Exp().Mul(x.Neg().Exp()).Sub(One).Abs().Float64() < 1e-59
		},
		gen.Float64Range(-20, 20),
	))

	properties.Property("cosh²-sinh² == 1", prop.ForAll(
		func(f float64) bool {
			sinh, cosh := FromFloat64(f).SinhCosh()
			return cosh.Sqr().Sub(sinh.Sqr()).Sub(One).Abs().Float64() < 1e-56
		},
		gen.Float64Range(-5, 5),
	))

	properties.TestingRun(t)
}
