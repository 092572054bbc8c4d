// Copyright 2020 Aleksandr Demakin. All rights reserved.

package double

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestExp(t *testing.T) {
	a := assert.New(t)

	a.Equal(One, Zero.Exp())
	a.Equal(One, NegZero.Exp())
	a.Equal(E, One.Exp())
	a.True(NaN.Exp().IsNaN())
	a.Equal(Inf, Inf.Exp())
	a.Equal(Zero, NegInf.Exp())
	a.Equal(Inf, FromFloat64(1000).Exp())
	a.Equal(Zero, FromFloat64(-1000).Exp())

	closeTo(a, FromFloat64(2), Ln2.Exp(), 1e-30)
	closeTo(a, FromFloat64(0.5), Ln2.Neg().Exp(), 1e-30)
	closeTo(a, E.Sqr(), FromFloat64(2).Exp(), 1e-29)
	closeTo(a, E.Recip(), NegOne.Exp(), 1e-30)
	closeTo(a, MustFromString("1.648721270700128146848650787814164"),
		FromFloat64(0.5).Exp(), 1e-28)
}

func TestExpProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("exp(x)*exp(-x) == 1", prop.ForAll(
		func(f float64) bool {
			x := FromFloat64(f)
			return x.Exp().Mul(x.Neg().Exp()).Sub(One).Abs().Float64() < 1e-29
		},
		gen.Float64Range(-20, 20),
	))

	properties.Property("exp(2x) == exp(x)²", prop.ForAll(
		func(f float64) bool {
			x := FromFloat64(f)
			lhs := x.mulPwr2(2).Exp()
			rhs := x.Exp().Sqr()
			rel := lhs.Sub(rhs).Div(rhs).Abs().Float64()
			return rel < 1e-29
		},
		gen.Float64Range(-20, 20),
	))

	properties.TestingRun(t)
}
