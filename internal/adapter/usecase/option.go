package usecase

import (
	"log/slog"
	"time"

	"mooh-ads/internal/adapter/metrics"
	"mooh-ads/internal/core/port"
)

// FallbackPicker chooses the creative shown when no campaign is eligible.
type FallbackPicker interface {
	Pick() string
}

type fleetOptions struct {
	logger           *slog.Logger
	now              func() time.Time
	location         *time.Location
	assets           port.AssetLocator
	fallback         FallbackPicker
	fallbackRadiusKm float64
	fallbackRunTime  int64
	metrics          *metrics.Collector
}

// Option configures a FleetUseCase.
type Option func(opts *fleetOptions)

func defaultOptions() fleetOptions {
	return fleetOptions{
		logger:           slog.New(slog.DiscardHandler),
		now:              time.Now,
		location:         time.Local,
		fallbackRadiusKm: 600,
		fallbackRunTime:  100,
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *fleetOptions) {
		opts.logger = logger
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(opts *fleetOptions) {
		opts.now = now
	}
}

// WithLocation sets the zone in which report times are matched against
// campaign windows.
func WithLocation(loc *time.Location) Option {
	return func(opts *fleetOptions) {
		opts.location = loc
	}
}

// WithAssets enables asset URLs on selections.
func WithAssets(assets port.AssetLocator) Option {
	return func(opts *fleetOptions) {
		opts.assets = assets
	}
}

// WithFallback sets the fallback creative picker and the radius and quota
// reported alongside a fallback selection.
func WithFallback(picker FallbackPicker, radiusKm float64, runTime int64) Option {
	return func(opts *fleetOptions) {
		opts.fallback = picker
		opts.fallbackRadiusKm = radiusKm
		opts.fallbackRunTime = runTime
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(c *metrics.Collector) Option {
	return func(opts *fleetOptions) {
		opts.metrics = c
	}
}
