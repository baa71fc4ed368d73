// Package kinematics holds the closed-form, constant-acceleration formulas
// for one scenario step. Velocities cross the package boundary in km/h
// and are converted to SI before being combined with acceleration.
package kinematics

import (
	"github.com/rotblauer/kinecalc/measure"
	"github.com/rotblauer/kinecalc/units"
)

const (
	ParamVelocity     = "Velocity"
	ParamAcceleration = "Acceleration"
	ParamTime         = "Time"
)

// ComputeNewVelocity applies acceleration accMps2 over timeS seconds
// to a starting velocity velKmh, returning the new velocity in km/h.
func ComputeNewVelocity(velKmh, accMps2, timeS float64) (float64, error) {
	if _, err := measure.ValidateFloat(velKmh, units.KilometersPerHour, ParamVelocity); err != nil {
		return 0, err
	}
	if _, err := measure.ValidateFloat(accMps2, units.MetersPerSecondSquared, ParamAcceleration); err != nil {
		return 0, err
	}
	if _, err := measure.ValidateFloat(timeS, units.Seconds, ParamTime); err != nil {
		return 0, err
	}

	velMps := units.KmhToMps(velKmh)
	newVelMps := velMps + accMps2*timeS
	return units.MpsToKmh(newVelMps), nil
}

// NewDistance returns the distance in km after travelling at velKmh for timeS seconds.
func NewDistance(initialKm, velKmh, timeS float64) float64 {
	return initialKm + velKmh*units.SecondsToHours(timeS)
}

// RemainingFuel returns the fuel mass in kg left after burning at burnKgps for timeS seconds.
// The result goes negative when the burn exceeds the supply.
func RemainingFuel(fuelKg, burnKgps, timeS float64) float64 {
	return fuelKg - burnKgps*timeS
}
