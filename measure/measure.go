package measure

import (
	"encoding/json"
	"math"

	"github.com/rotblauer/kinecalc/units"
)

// Measurement is a validated scalar: finite, non-negative, and tagged
// with the unit it was validated against.
// The zero value is not a validated measurement; use Validate.
type Measurement struct {
	Param string
	Value float64
	Unit  units.Unit
}

// Validate checks that value is a finite, non-negative number
// and returns it as a Measurement.
// Non-numeric types and NaN/Inf yield *InvalidInputError,
// negative numbers yield *NegativeValueError.
func Validate(value any, unit units.Unit, param string) (Measurement, error) {
	f, ok := toFloat(value)
	if !ok {
		return Measurement{}, &InvalidInputError{Param: param, Unit: unit, Got: value}
	}
	return ValidateFloat(f, unit, param)
}

// ValidateFloat is Validate for values already known to be float64.
func ValidateFloat(value float64, unit units.Unit, param string) (Measurement, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Measurement{}, &InvalidInputError{Param: param, Unit: unit, Got: value}
	}
	if value < 0 {
		return Measurement{}, &NegativeValueError{Param: param, Unit: unit, Value: value}
	}
	return Measurement{Param: param, Value: value, Unit: unit}, nil
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
