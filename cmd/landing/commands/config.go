package commands

import (
	"log/slog"

	"github.com/dmitrymomot/landing/pkg/carousel"
	"github.com/dmitrymomot/landing/pkg/environment"
	"github.com/dmitrymomot/landing/pkg/httpserver"
	"github.com/dmitrymomot/landing/pkg/logger"
	"github.com/dmitrymomot/landing/pkg/ratelimiter"
	"github.com/dmitrymomot/landing/pkg/redirect"
	"github.com/dmitrymomot/landing/pkg/requestid"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	Service     string `env:"SERVICE_NAME" envDefault:"landing"`
	LogLevel    string `env:"LOG_LEVEL"`
	LogFormat   string `env:"LOG_FORMAT"`
	AssetsDir   string `env:"ASSETS_DIR"`
	ContentFile string `env:"CONTENT_FILE"`
	MaxSessions int    `env:"MAX_CAROUSEL_SESSIONS" envDefault:"10000"`
	// EventsRateLimit toggles the per-IP beacon limit sized by EventsRate.
	EventsRateLimit bool `env:"EVENTS_RATE_LIMIT" envDefault:"true"`

	Server     httpserver.Config
	Carousel   carousel.Config
	Redirect   redirect.Config
	EventsRate ratelimiter.Config
}

func (c Config) Environment() environment.Environment {
	return environment.Parse(c.Env)
}

// Logger builds the process logger. LOG_LEVEL and LOG_FORMAT override the
// environment defaults.
func (c Config) Logger() (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(c.Service, c.Environment()),
		logger.WithContextExtractors(requestid.LoggerExtractor(), environment.LoggerExtractor()),
	}
	if c.LogLevel != "" {
		level, err := logger.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if c.LogFormat != "" {
		format, err := logger.ParseFormat(c.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(format))
	}
	return logger.New(opts...), nil
}
