package scenario

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"

	"github.com/rotblauer/kinecalc/params"
	"github.com/rotblauer/kinecalc/units"
	"github.com/shopspring/decimal"
)

// Result holds the derived values of one scenario run.
type Result struct {
	NewVelocity   float64 // km/h
	NewDistance   float64 // km
	RemainingFuel float64 // kg
}

// FuelDepleted reports whether the burn exceeded the fuel supply.
// A depleted result is still a valid result.
func (r Result) FuelDepleted() bool {
	return r.RemainingFuel < 0
}

// Rounded returns the result rounded to the report precision, as reported by Lines.
func (r Result) Rounded() Result {
	return Result{
		NewVelocity:   roundedFloat(r.NewVelocity),
		NewDistance:   roundedFloat(r.NewDistance),
		RemainingFuel: roundedFloat(r.RemainingFuel),
	}
}

// Lines returns the human report, one line per quantity.
func (r Result) Lines() []string {
	return []string{
		reportLine("New Velocity", r.NewVelocity, units.KilometersPerHour),
		reportLine("New Distance", r.NewDistance, units.Kilometers),
		reportLine("Remaining Fuel", r.RemainingFuel, units.Kilograms),
	}
}

// WriteTo writes the report lines to w.
func (r Result) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, line := range r.Lines() {
		written, err := fmt.Fprintln(w, line)
		n += int64(written)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// exactDigits is enough decimal places to carry a float64's exact binary
// value past the report precision.
const exactDigits = 40

// round rounds the exact binary value of v, not its shortest decimal form,
// half away from zero. 1.005 is stored as 1.00499... and rounds to 1.00.
func round(v float64) decimal.Decimal {
	exact := decimal.NewFromBigRat(new(big.Rat).SetFloat64(v), exactDigits)
	return exact.Round(params.ReportPrecision)
}

// formatFixed formats v at the report precision. Negative values that
// round to zero keep their sign, eg. -0.001 is "-0.00".
func formatFixed(v float64) string {
	s := round(v).StringFixed(params.ReportPrecision)
	if v < 0 && !strings.HasPrefix(s, "-") {
		s = "-" + s
	}
	return s
}

func roundedFloat(v float64) float64 {
	f := round(v).InexactFloat64()
	if v < 0 && f == 0 {
		return math.Copysign(0, -1)
	}
	return f
}

func reportLine(label string, v float64, unit units.Unit) string {
	return fmt.Sprintf("Corrected %s: %s %s", label, formatFixed(v), unit)
}
