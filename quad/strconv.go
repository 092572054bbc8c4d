// Copyright 2020 Aleksandr Demakin. All rights reserved.

package quad

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

var (
	// JSONMode defines the way all values are marshaled into json, see
	// JSONMode* constants. This variable is not thread-safe, so this
	// should be changed on program start.
	JSONMode = JSONModeString
)

const (
	// JSONModeString produces values as strings, like `"3.14"`.
	JSONModeString = iota
	// JSONModeFloat marshals the nearest float64, like `3.14`.
	// This loses the low limbs and cannot represent NaN or infinities.
	JSONModeFloat
)

const (
	// strPrec is the big.Float guard precision for conversions, a few
	// words above the ~212 bits a Quad holds.
	strPrec = 280
	// strDigits is the number of significant decimal digits emitted by
	// String, enough to round-trip any Quad whose limbs are adjacent.
	// Values with a wide gap between the limbs lose the low limbs.
	strDigits = 66
)

// FromString parses a decimal string into a Quad, accounting for
// decimal rounding error: the result is the representable value
// nearest to the literal. "NaN", "Inf", "+Inf", "-Inf" (and
// "Infinity" forms) parse to the corresponding special values.
func FromString(s string) (Quad, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) == 0 {
		return Zero, fmt.Errorf("empty input")
	}
	switch strings.ToLower(trimmed) {
	case "nan":
		return NaN, nil
	case "inf", "+inf", "infinity", "+infinity":
		return Inf, nil
	case "-inf", "-infinity":
		return NegInf, nil
	}
	f, _, err := big.ParseFloat(trimmed, 10, strPrec, big.ToNearestEven)
	if err != nil {
		return Zero, fmt.Errorf("parsing failed: %w", err)
	}
	if f.Sign() == 0 {
		if strings.HasPrefix(trimmed, "-") {
			return NegZero, nil
		}
		return Zero, nil
	}
	return fromBigFloat(f), nil
}

// MustFromString is FromString, panicking on a parse error.
func MustFromString(s string) Quad {
	q, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return q
}

// fromBigFloat splits a finite big.Float into four limbs by repeatedly
// taking the nearest float64 and subtracting it out.
func fromBigFloat(f *big.Float) Quad {
	var limbs [4]float64
	rem := new(big.Float).SetPrec(strPrec).Set(f)
	for i := 0; i < 4; i++ {
		limbs[i], _ = rem.Float64()
		if math.IsInf(limbs[i], 0) || limbs[i] == 0 {
			break
		}
		rem.Sub(rem, new(big.Float).SetFloat64(limbs[i]))
	}
	return New(limbs[0], limbs[1], limbs[2], limbs[3])
}

// bigFloat returns the value as a big.Float at guard precision.
func (q Quad) bigFloat() *big.Float {
	f := new(big.Float).SetPrec(strPrec).SetFloat64(q.w[0])
	for i := 1; i < 4; i++ {
		f.Add(f, new(big.Float).SetFloat64(q.w[i]))
	}
	return f
}

// String returns a decimal representation of the value with full
// working precision.
func (q Quad) String() string {
	switch {
	case q.IsNaN():
		return "NaN"
	case q.IsInf():
		if q.Signbit() {
			return "-Inf"
		}
		return "+Inf"
	case q.IsZero():
		if q.Signbit() {
			return "-0"
		}
		return "0"
	}
	return q.bigFloat().Text('g', strDigits)
}

// GoString returns a debug representation exposing the limbs.
func (q Quad) GoString() string {
	return q.String() + fmt.Sprintf(" {%v, %v, %v, %v}", q.w[0], q.w[1], q.w[2], q.w[3])
}

// MarshalText implements encoding.TextMarshaler.
func (q Quad) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (q *Quad) UnmarshalText(data []byte) error {
	v, err := FromString(string(data))
	if err != nil {
		return err
	}
	*q = v
	return nil
}

// MarshalJSON marshals the value according to the current JSONMode.
func (q Quad) MarshalJSON() ([]byte, error) {
	if JSONMode == JSONModeFloat {
		return []byte(strconv.FormatFloat(q.Float64(), 'g', -1, 64)), nil
	}
	return []byte(`"` + q.String() + `"`), nil
}

// UnmarshalJSON unmarshals a json string or number into the value.
func (q *Quad) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return q.UnmarshalText([]byte(s))
}
