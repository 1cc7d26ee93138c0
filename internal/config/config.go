// Package config holds the global application settings for jobcost.
package config

const VERSION = "1.0.0"

// Config holds global application settings
type Config struct {
	Debug bool
	Quiet bool
	Color bool

	// WarnThreshold is the charged cost (CPU-hours) at or above which the
	// report prints a warning banner.
	WarnThreshold float64

	// MarketPriceNOK converts CPU-hours to an approximate expense in NOK.
	MarketPriceNOK float64

	// QueueFactors overrides the built-in per-queue memory cost factors.
	// Keys are queue names; unknown queues are ignored.
	QueueFactors map[string]float64
}

// Global holds the singleton configuration instance
var Global Config

// LoadDefaults resets Global to the built-in defaults.
func LoadDefaults() {
	Global = Config{
		Debug:          false,
		Quiet:          false,
		Color:          true,
		WarnThreshold:  10000,
		MarketPriceNOK: 0.13,
		QueueFactors:   map[string]float64{},
	}
}
