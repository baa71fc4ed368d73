package scenario

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rotblauer/kinecalc/kinematics"
	"github.com/rotblauer/kinecalc/measure"
	"github.com/rotblauer/kinecalc/params"
	"github.com/rotblauer/kinecalc/units"
	"go.uber.org/multierr"
)

// Input is the fixed set of physical parameters for one scenario.
type Input struct {
	Velocity        float64 `mapstructure:"velocity" json:"velocity"`               // km/h
	Acceleration    float64 `mapstructure:"acceleration" json:"acceleration"`       // m/s^2
	Time            float64 `mapstructure:"time" json:"time"`                       // seconds
	InitialDistance float64 `mapstructure:"initialDistance" json:"initialDistance"` // km
	RemainingFuel   float64 `mapstructure:"remainingFuel" json:"remainingFuel"`     // kg
	FuelBurnRate    float64 `mapstructure:"fuelBurnRate" json:"fuelBurnRate"`       // kg/s
}

// DefaultInput returns the stock scenario.
func DefaultInput() Input {
	return Input{
		Velocity:        params.DefaultVelocity,
		Acceleration:    params.DefaultAcceleration,
		Time:            params.DefaultTime,
		InitialDistance: params.DefaultInitialDistance,
		RemainingFuel:   params.DefaultRemainingFuel,
		FuelBurnRate:    params.DefaultFuelBurnRate,
	}
}

// Param describes one scenario input.
type Param struct {
	// Key is the configuration option name.
	Key string
	// Name is the human name used in error messages.
	Name string
	Unit units.Unit

	get func(in *Input) *float64
}

// Params lists the scenario inputs in validation order.
var Params = []Param{
	{params.OptVelocity, kinematics.ParamVelocity, units.KilometersPerHour,
		func(in *Input) *float64 { return &in.Velocity }},
	{params.OptAcceleration, kinematics.ParamAcceleration, units.MetersPerSecondSquared,
		func(in *Input) *float64 { return &in.Acceleration }},
	{params.OptTime, kinematics.ParamTime, units.Seconds,
		func(in *Input) *float64 { return &in.Time }},
	{params.OptInitialDistance, "Initial Distance", units.Kilometers,
		func(in *Input) *float64 { return &in.InitialDistance }},
	{params.OptRemainingFuel, "Remaining Fuel", units.Kilograms,
		func(in *Input) *float64 { return &in.RemainingFuel }},
	{params.OptFuelBurnRate, "Fuel Burn Rate", units.KilogramsPerSecond,
		func(in *Input) *float64 { return &in.FuelBurnRate }},
}

// Value returns the parameter's value in the input.
func (p Param) Value(in Input) float64 {
	return *p.get(&in)
}

// LookupParam finds a parameter by its option key, case-insensitively.
func LookupParam(key string) (Param, bool) {
	for _, p := range Params {
		if strings.EqualFold(p.Key, key) {
			return p, true
		}
	}
	return Param{}, false
}

// Validate returns the first invalid parameter of the input, in Params order.
func Validate(in Input) error {
	for _, p := range Params {
		if _, err := measure.ValidateFloat(p.Value(in), p.Unit, p.Name); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAll returns every invalid parameter of the input, combined.
// Use multierr.Errors to split the result.
func ValidateAll(in Input) error {
	var err error
	for _, p := range Params {
		_, e := measure.ValidateFloat(p.Value(in), p.Unit, p.Name)
		err = multierr.Append(err, e)
	}
	return err
}

// CheckValues validates every parameter present in values and returns
// all failures combined, in Params order.
// Unrecognized keys are reported too.
func CheckValues(values map[string]any) error {
	var err error
	for k := range values {
		if _, ok := LookupParam(k); !ok {
			err = multierr.Append(err, fmt.Errorf("unrecognized option: %s", k))
		}
	}
	for _, p := range Params {
		v, ok := lookupValue(values, p.Key)
		if !ok {
			continue
		}
		_, e := measure.Validate(v, p.Unit, p.Name)
		err = multierr.Append(err, e)
	}
	return err
}

// FromValues builds an Input from loosely typed values keyed by option name,
// as read from configuration or decoded JSON.
// Keys missing from values take the corresponding field of defaults.
// Present values must pass measure.Validate; the first failure is returned.
func FromValues(values map[string]any, defaults Input) (Input, error) {
	in := defaults
	for _, p := range Params {
		v, ok := lookupValue(values, p.Key)
		if !ok {
			continue
		}
		m, err := measure.Validate(v, p.Unit, p.Name)
		if err != nil {
			return Input{}, err
		}
		*p.get(&in) = m.Value
	}
	return in, nil
}

// Run validates the input and computes the scenario result.
// Any validation failure aborts the run and no partial result is returned.
func Run(in Input) (Result, error) {
	if err := Validate(in); err != nil {
		return Result{}, err
	}

	newDistance := kinematics.NewDistance(in.InitialDistance, in.Velocity, in.Time)
	remainingFuel := kinematics.RemainingFuel(in.RemainingFuel, in.FuelBurnRate, in.Time)
	newVelocity, err := kinematics.ComputeNewVelocity(in.Velocity, in.Acceleration, in.Time)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		NewVelocity:   newVelocity,
		NewDistance:   newDistance,
		RemainingFuel: remainingFuel,
	}
	if res.FuelDepleted() {
		slog.Info("Fuel depleted during scenario",
			"deficit.kg", humanize.Commaf(-res.RemainingFuel),
			"burn.kg", humanize.Commaf(in.FuelBurnRate*in.Time))
	}
	slog.Debug("Scenario computed",
		"velocity.kmh", humanize.Commaf(res.NewVelocity),
		"distance.km", humanize.Commaf(res.NewDistance),
		"fuel.kg", humanize.Commaf(res.RemainingFuel))
	return res, nil
}

func lookupValue(values map[string]any, key string) (any, bool) {
	if v, ok := values[key]; ok {
		return v, true
	}
	for k, v := range values {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}
