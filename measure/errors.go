package measure

import (
	"fmt"
	"math"

	"github.com/rotblauer/kinecalc/units"
)

// InvalidInputError is returned when a value is not a finite number.
type InvalidInputError struct {
	Param string
	Unit  units.Unit
	// Got is the offending value as it was given.
	Got any
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input for %s: expected a number in %s, got %s", e.Param, e.Unit, describe(e.Got))
}

// NegativeValueError is returned when a numeric value is below zero.
type NegativeValueError struct {
	Param string
	Unit  units.Unit
	Value float64
}

func (e *NegativeValueError) Error() string {
	return fmt.Sprintf("%s cannot be negative: received %v %s", e.Param, e.Value, e.Unit)
}

// describe names non-finite floats by value and everything else by type.
func describe(v any) string {
	if v == nil {
		return "nothing"
	}
	if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return fmt.Sprintf("%v", f)
	}
	if f, ok := v.(float32); ok && (math.IsNaN(float64(f)) || math.IsInf(float64(f), 0)) {
		return fmt.Sprintf("%v", f)
	}
	return fmt.Sprintf("%T", v)
}
