package carousel

import (
	"fmt"
	"time"
)

// Config holds the carousel options.
type Config struct {
	TotalSlides     int           `env:"CAROUSEL_SLIDES" envDefault:"3"`
	Interval        time.Duration `env:"CAROUSEL_INTERVAL" envDefault:"6s"`
	Transition      time.Duration `env:"CAROUSEL_TRANSITION" envDefault:"800ms"`
	SwipeThreshold  int           `env:"CAROUSEL_SWIPE_THRESHOLD" envDefault:"50"`
	ResetOnNavigate bool          `env:"CAROUSEL_RESET_ON_NAVIGATE" envDefault:"false"`
}

// Defaults used when a Config is built in code.
const (
	DefaultTotalSlides    = 3
	DefaultInterval       = 6000 * time.Millisecond
	DefaultTransition     = 800 * time.Millisecond
	DefaultSwipeThreshold = 50
)

// DefaultConfig returns the stock three-slide configuration.
func DefaultConfig() Config {
	return Config{
		TotalSlides:    DefaultTotalSlides,
		Interval:       DefaultInterval,
		Transition:     DefaultTransition,
		SwipeThreshold: DefaultSwipeThreshold,
	}
}

// Validate reports configuration errors wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.TotalSlides < 1:
		return fmt.Errorf("%w: total slides must be at least 1, got %d", ErrInvalidConfig, c.TotalSlides)
	case c.Interval <= 0:
		return fmt.Errorf("%w: auto-advance interval must be positive, got %s", ErrInvalidConfig, c.Interval)
	case c.Transition < 0:
		return fmt.Errorf("%w: transition must not be negative, got %s", ErrInvalidConfig, c.Transition)
	case c.SwipeThreshold < 0:
		return fmt.Errorf("%w: swipe threshold must not be negative, got %d", ErrInvalidConfig, c.SwipeThreshold)
	}
	return nil
}
