// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mathutil

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

// exactSum adds values in big.Float at a precision wide enough
// that no rounding happens for float64 inputs.
func exactSum(vals ...float64) *big.Float {
	sum := new(big.Float).SetPrec(512)
	for _, v := range vals {
		sum.Add(sum, new(big.Float).SetPrec(512).SetFloat64(v))
	}
	return sum
}

func exactProd(a, b float64) *big.Float {
	x := new(big.Float).SetPrec(512).SetFloat64(a)
	y := new(big.Float).SetPrec(512).SetFloat64(b)
	return x.Mul(x, y)
}

func TestTwoSum(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y float64
	}{
		{0, 0},
		{1, 2},
		{1, 1e-30},
		{1e30, -1},
		{0.1, 0.2},
		{math.MaxFloat64, -math.MaxFloat64},
		{1, math.SmallestNonzeroFloat64},
		{-1.5, 1.25},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			s, e := TwoSum(test.x, test.y)
			a.Equal(test.x+test.y, s)
			a.Zero(exactSum(test.x, test.y).Cmp(exactSum(s, e)))
		})
	}
}

func TestTwoSumOverflow(t *testing.T) {
	a := assert.New(t)
	s, e := TwoSum(math.MaxFloat64, math.MaxFloat64)
	a.True(math.IsInf(s, 1))
	a.Zero(e)
	s, e = TwoSum(-math.MaxFloat64, -math.MaxFloat64)
	a.True(math.IsInf(s, -1))
	a.Zero(e)
}

func TestQuickTwoSum(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y float64
	}{
		{0, 0},
		{2, 1},
		{1, 1e-30},
		{-1e30, 1},
		{1, -1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			s, e := QuickTwoSum(test.x, test.y)
			a.Equal(test.x+test.y, s)
			a.Zero(exactSum(test.x, test.y).Cmp(exactSum(s, e)))
		})
	}
}

func TestTwoDiff(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y float64
	}{
		{0, 0},
		{3, 2},
		{1, 1e-30},
		{1e30, 1},
		{0.3, 0.1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			s, e := TwoDiff(test.x, test.y)
			a.Equal(test.x-test.y, s)
			a.Zero(exactSum(test.x, -test.y).Cmp(exactSum(s, e)))
		})
	}
}

func TestTwoProd(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y float64
	}{
		{0, 0},
		{2, 3},
		{0.1, 0.1},
		{1e30, 1e-30},
		{1 + math.Pow(2, -30), 1 + math.Pow(2, -30)},
		{-7, 1.0 / 3.0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			p, e := TwoProd(test.x, test.y)
			a.Equal(test.x*test.y, p)
			a.Zero(exactProd(test.x, test.y).Cmp(exactSum(p, e)))
		})
	}
}

func TestTwoProdOverflow(t *testing.T) {
	a := assert.New(t)
	p, e := TwoProd(math.MaxFloat64, 2)
	a.True(math.IsInf(p, 1))
	a.Zero(e)
}

func TestRenorm3(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		in  [3]float64
		out [2]float64
	}{
		{[3]float64{0, 0, 0}, [2]float64{0, 0}},
		{[3]float64{1, 0, 0}, [2]float64{1, 0}},
		{[3]float64{0, 1, 0}, [2]float64{1, 0}},
		{[3]float64{1, 1e-30, 0}, [2]float64{1, 1e-30}},
		{[3]float64{1, 0, 1e-30}, [2]float64{1, 1e-30}},
		{[3]float64{1, 1, 1}, [2]float64{3, 0}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			h, l := Renorm3(test.in[0], test.in[1], test.in[2])
			a.Equal(test.out[0], h)
			a.Equal(test.out[1], l)
		})
	}
}

func TestRenorm3NonFinite(t *testing.T) {
	a := assert.New(t)
	h, l := Renorm3(math.Inf(1), -1, 2)
	a.True(math.IsInf(h, 1))
	a.Zero(l)
	h, _ = Renorm3(math.NaN(), 1, 2)
	a.True(math.IsNaN(h))
}

func TestRenorm5NonFinite(t *testing.T) {
	a := assert.New(t)
	w0, w1, w2, w3 := Renorm5(math.Inf(-1), 1, 2, 3, 4)
	a.True(math.IsInf(w0, -1))
	a.Equal([3]float64{0, 0, 0}, [3]float64{w1, w2, w3})
}

// normalized reports whether the limbs are sorted by decreasing magnitude
// and adding any limb to the previous one changes nothing.
func normalized(w []float64) bool {
	for i := 1; i < len(w); i++ {
		if w[i] == 0 {
			continue
		}
		if math.Abs(w[i]) >= math.Abs(w[i-1]) {
			return false
		}
		if w[i-1]+w[i] != w[i-1] {
			return false
		}
	}
	return true
}

func TestRenormProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("Renorm3 output is normalized and exact", prop.ForAll(
		func(x, y float64) bool {
			s, e := TwoSum(x, y)
			h, l := Renorm3(s, e, 0)
			if !normalized([]float64{h, l}) {
				return false
			}
			return exactSum(x, y).Cmp(exactSum(h, l)) == 0
		},
		gen.Float64Range(-1e15, 1e15),
		gen.Float64Range(-1e15, 1e15),
	))

	properties.Property("Renorm4 output is normalized", prop.ForAll(
		func(x, y float64) bool {
			s, e := TwoSum(x, y)
			w0, w1, w2, w3 := Renorm4(s, e, e*0x1p-60, e*0x1p-120)
			return normalized([]float64{w0, w1, w2, w3})
		},
		gen.Float64Range(-1e15, 1e15),
		gen.Float64Range(-1e10, 1e10),
	))

	properties.Property("Renorm4 is idempotent", prop.ForAll(
		func(x, y float64) bool {
			s, e := TwoSum(x, y)
			w0, w1, w2, w3 := Renorm4(s, e, 0, 0)
			v0, v1, v2, v3 := Renorm4(w0, w1, w2, w3)
			return w0 == v0 && w1 == v1 && w2 == v2 && w3 == v3
		},
		gen.Float64Range(-1e15, 1e15),
		gen.Float64Range(-1e15, 1e15),
	))

	properties.Property("TwoProd is exact", prop.ForAll(
		func(x, y float64) bool {
			p, e := TwoProd(x, y)
			return exactProd(x, y).Cmp(exactSum(p, e)) == 0
		},
		gen.Float64Range(-1e150, 1e150),
		gen.Float64Range(-1e150, 1e150),
	))

	properties.TestingRun(t)
}

func TestThreeSums(t *testing.T) {
	a := assert.New(t)
	s, e := ThreeTwoSum(1, 1e-20, 1e-40)
	a.Zero(exactSum(1, 1e-20, 1e-40).Cmp(exactSum(s, e)))

	s0, e0, e1 := ThreeThreeSum(1, 1e-20, 1e-40)
	a.Zero(exactSum(1, 1e-20, 1e-40).Cmp(exactSum(s0, e0, e1)))
}
