package units

// Scenario quantities carry mixed units:
// - Velocity is in km/h
// - Acceleration is in m/s^2
// - Time is in seconds
// - Distance is in km
// - Fuel mass is in kg, burn rate in kg/s
// Kinematics happen in SI (m/s, m/s^2, s); conversions live here.

type Unit string

const (
	KilometersPerHour      Unit = "km/h"
	MetersPerSecondSquared Unit = "m/s^2"
	Seconds                Unit = "seconds"
	Kilometers             Unit = "km"
	Kilograms              Unit = "kg"
	KilogramsPerSecond     Unit = "kg/s"
)

func (u Unit) String() string {
	return string(u)
}

const (
	MetersPerKilometer = 1000.0
	SecondsPerHour     = 3600.0
)

// KmhToMps converts a speed in km/h to m/s.
func KmhToMps(kmh float64) float64 {
	return kmh * (MetersPerKilometer / SecondsPerHour)
}

// MpsToKmh converts a speed in m/s to km/h.
func MpsToKmh(mps float64) float64 {
	return mps * (SecondsPerHour / MetersPerKilometer)
}

// SecondsToHours converts a duration in seconds to (fractional) hours,
// for multiplying against km/h speeds.
func SecondsToHours(s float64) float64 {
	return s / SecondsPerHour
}
