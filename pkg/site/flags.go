package site

import (
	"github.com/dmitrymomot/landing/pkg/environment"
	"github.com/dmitrymomot/landing/pkg/feature"
)

// Feature flag names.
const (
	FlagAnimations     = "animations"
	FlagServiceWorker  = "service_worker"
	FlagPerformanceLog = "performance_log"
)

// Flags returns the page feature flags. Performance logging is limited to
// development.
func Flags() (*feature.MemoryProvider, error) {
	return feature.NewMemoryProvider(
		&feature.Flag{
			Name:        FlagAnimations,
			Description: "Scroll reveal and slide enter animations",
			Enabled:     true,
			Strategy:    feature.NewAlwaysOnStrategy(),
		},
		&feature.Flag{
			Name:        FlagServiceWorker,
			Description: "Register the offline service worker",
			Enabled:     true,
			Strategy:    feature.NewAlwaysOnStrategy(),
		},
		&feature.Flag{
			Name:        FlagPerformanceLog,
			Description: "Report and log page load timings",
			Enabled:     true,
			Strategy:    feature.NewEnvironmentStrategy(environment.Development),
		},
	)
}
