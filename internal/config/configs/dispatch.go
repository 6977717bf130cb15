package configs

import (
	"time"
	_ "time/tzdata"
)

// Dispatch configures campaign resolution for position reports.
type Dispatch struct {
	// Timezone is the IANA zone in which report times are compared with
	// campaign windows. "Local" uses the server zone.
	Timezone string `env:"TIMEZONE" envDefault:"Local"`

	// FallbackAssets are creative refs shown when no campaign is eligible.
	FallbackAssets []string `env:"FALLBACK_ASSETS" envSeparator:","`
	// FallbackRadiusKm and FallbackRunTime are reported with a fallback
	// selection for logging only.
	FallbackRadiusKm float64 `env:"FALLBACK_RADIUS" envDefault:"600"`
	FallbackRunTime  int64   `env:"FALLBACK_RUN_TIME" envDefault:"100"`
}

// Location resolves Timezone.
func (c Dispatch) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
