package redirect

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/landing/pkg/device"
)

// Config holds the destinations and timings of the redirect.
type Config struct {
	DesktopPath      string        `env:"REDIRECT_DESKTOP_PATH" envDefault:"/desktop/"`
	MobilePath       string        `env:"REDIRECT_MOBILE_PATH" envDefault:"/mobile/"`
	MobileBreakpoint int           `env:"MOBILE_BREAKPOINT_PX" envDefault:"768"`
	FallbackDelay    time.Duration `env:"REDIRECT_FALLBACK_DELAY" envDefault:"2s"`
	ShimDelay        time.Duration `env:"REDIRECT_SHIM_DELAY" envDefault:"100ms"`
}

func DefaultConfig() Config {
	return Config{
		DesktopPath:      "/desktop/",
		MobilePath:       "/mobile/",
		MobileBreakpoint: device.DefaultBreakpoint,
		FallbackDelay:    2 * time.Second,
		ShimDelay:        100 * time.Millisecond,
	}
}

// Validate checks that both paths are site-relative.
func (c Config) Validate() error {
	for _, p := range []string{c.DesktopPath, c.MobilePath} {
		if !validPath(p) {
			return fmt.Errorf("%w: path %q must start with a single slash", ErrInvalidConfig, p)
		}
	}
	if c.FallbackDelay < 0 || c.ShimDelay < 0 {
		return fmt.Errorf("%w: delays must not be negative", ErrInvalidConfig)
	}
	return nil
}

func validPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//")
}

// Path returns the destination of class. Anything but Mobile goes to the
// desktop page.
func (c Config) Path(class device.Class) string {
	if class == device.Mobile {
		return c.MobilePath
	}
	return c.DesktopPath
}
