// Copyright 2020 Aleksandr Demakin. All rights reserved.

package double

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
	// This loses the low limb and cannot represent NaN or infinities.
	JSONModeFloat
)

const (
	// strPrec is the big.Float guard precision for conversions, a few
	// words above the ~106 bits a Double holds.
	strPrec = 160
	// strDigits is the number of significant decimal digits emitted by
	// String, enough to round-trip any Double whose limbs are adjacent.
	// Values with a wide gap between the limbs lose the low limb.
	strDigits = 34
)

// FromString parses a decimal string into a Double, accounting for
// decimal rounding error: the result is the representable value
// nearest to the literal. "NaN", "Inf", "+Inf", "-Inf" (and
// "Infinity" forms) parse to the corresponding special values.
func FromString(s string) (Double, error) {
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
func MustFromString(s string) Double {
	d, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// fromBigFloat splits a finite big.Float into two limbs: the nearest
// float64, then the nearest float64 of the remainder.
func fromBigFloat(f *big.Float) Double {
	hi, _ := f.Float64()
	if math.IsInf(hi, 0) {
		return Raw(hi, 0)
	}
	rem := new(big.Float).SetPrec(strPrec).Sub(f, new(big.Float).SetFloat64(hi))
	lo, _ := rem.Float64()
	return New(hi, lo)
}

// bigFloat returns the value as a big.Float at guard precision.
func (d Double) bigFloat() *big.Float {
	f := new(big.Float).SetPrec(strPrec).SetFloat64(d.hi)
	return f.Add(f, new(big.Float).SetFloat64(d.lo))
}

// String returns a decimal representation of the value with full
// working precision.
func (d Double) String() string {
	switch {
	case d.IsNaN():
		return "NaN"
	case d.IsInf():
		if d.Signbit() {
			return "-Inf"
		}
		return "+Inf"
	case d.IsZero():
		if d.Signbit() {
			return "-0"
		}
		return "0"
	}
	return d.bigFloat().Text('g', strDigits)
}

// GoString returns a debug representation exposing the limbs.
func (d Double) GoString() string {
	return d.String() + fmt.Sprintf(" {%v, %v}", d.hi, d.lo)
}

// MarshalText implements encoding.TextMarshaler.
func (d Double) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Double) UnmarshalText(data []byte) error {
	v, err := FromString(string(data))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON marshals the value according to the current JSONMode.
func (d Double) MarshalJSON() ([]byte, error) {
	if JSONMode == JSONModeFloat {
		return []byte(strconv.FormatFloat(d.Float64(), 'g', -1, 64)), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON unmarshals a json string or number into the value.
func (d *Double) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return d.UnmarshalText([]byte(s))
}
