package params

import (
	"github.com/ethereum/go-ethereum/metrics"
)

func init() {
	metrics.Enabled = true
}

const (
	AppName = "kinecalc"

	// EnvPrefix namespaces environment overrides, eg. KINECALC_VELOCITY.
	EnvPrefix = "KINECALC"

	// ConfigFileName is looked up (without extension) in the user's home directory
	// when no --config is given.
	ConfigFileName = ".kinecalc"

	DefaultVerbosity = "warn"
)

// Option keys recognized by the configuration layer.
const (
	OptVelocity        = "velocity"
	OptAcceleration    = "acceleration"
	OptTime            = "time"
	OptInitialDistance = "initialDistance"
	OptRemainingFuel   = "remainingFuel"
	OptFuelBurnRate    = "fuelBurnRate"
)

// Default scenario.
const (
	DefaultVelocity        = 10000.0 // km/h
	DefaultAcceleration    = 3.0     // m/s^2
	DefaultTime            = 3600.0  // seconds, or 1 hour
	DefaultInitialDistance = 0.0     // km
	DefaultRemainingFuel   = 5000.0  // kg
	DefaultFuelBurnRate    = 0.5     // kg/s
)

// ReportPrecision is the number of decimal places in reported results.
const ReportPrecision = 2
