// Copyright 2020 Aleksandr Demakin. All rights reserved.

package quad

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		q   Quad
		err bool
	}{
		{"0", Zero, false},
		{"1", One, false},
		{"-1", NegOne, false},
		{"2.5", FromFloat64(2.5), false},
		{"1e15", FromFloat64(1e15), false},
		{"Inf", Inf, false},
		{"-infinity", NegInf, false},
		{"", Zero, true},
		{"12x", Zero, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			q, err := FromString(test.s)
			if test.err {
				a.Error(err)
				return
			}
			a.NoError(err)
			a.Equal(test.q, q)
		})
	}
	a.True(MustFromString("nan").IsNaN())

	d := MustFromString("-0")
	a.True(d.IsZero())
	a.True(d.Signbit())
}

// A parsed decimal fills all four limbs when the value needs them.
func TestFromStringFourLimbs(t *testing.T) {
	a := assert.New(t)
	q := MustFromString("0.1")
	a.NotZero(q.At(1))
	a.NotZero(q.At(2))
	a.NotZero(q.At(3))
	a.True(normalized(q))
	closeTo(a, One, q.mulF64(10), 1e-62)
}

func TestString(t *testing.T) {
	a := assert.New(t)
	a.Equal("0", Zero.String())
	a.Equal("-0", NegZero.String())
	a.Equal("1", One.String())
	a.Equal("0.5", FromFloat64(0.5).String())
	a.Equal("NaN", NaN.String())
	a.Equal("+Inf", Inf.String())
	a.Equal("-Inf", NegInf.String())
	a.True(strings.HasPrefix(Pi.String(),
		"3.1415926535897932384626433832795028841971693993751058209749"))
}

func TestStringRoundTrip(t *testing.T) {
	a := assert.New(t)
	vals := []Quad{
		Zero, One, NegOne, Pi, E, Ln2, Max, Min,
		One.Div(FromFloat64(3)),
		MustFromString("0.1"),
		MustFromString("6.02214076e23").Div(FromFloat64(7)),
	}
	for i, v := range vals {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(v, MustFromString(v.String()))
		})
	}
}

func TestJSON(t *testing.T) {
	a := assert.New(t)
	type wrap struct {
		V Quad `json:"v"`
	}
	w := wrap{V: Pi.Div(FromFloat64(7))}

	data, err := json.Marshal(w)
	a.NoError(err)
	var back wrap
	a.NoError(json.Unmarshal(data, &back))
	a.Equal(w, back)

	JSONMode = JSONModeFloat
	defer func() { JSONMode = JSONModeString }()
	data, err = json.Marshal(wrap{V: FromFloat64(2.5)})
	a.NoError(err)
	a.Equal(`{"v":2.5}`, string(data))
}
