package commands

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landing/pkg/config"
	"github.com/dmitrymomot/landing/pkg/device"
	"github.com/dmitrymomot/landing/pkg/environment"
)

func runClassify(t *testing.T, args ...string) string {
	t.Helper()
	cmd := classifyCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestClassifyCmd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"token", []string{"Mozilla/5.0 (Linux; Android 14; Pixel 8)"}, "Mobile\n  matched token \"android\"\n"},
		{"narrow", []string{"Mozilla/5.0 (X11; Linux x86_64)", "--width", "600"}, "Mobile\n  viewport 600px, breakpoint 768px\n"},
		{"wide", []string{"Mozilla/5.0 (X11; Linux x86_64)", "-w", "1440"}, "Desktop\n  viewport 1440px, breakpoint 768px\n"},
		{"custom breakpoint", []string{"Mozilla/5.0 (X11; Linux x86_64)", "-w", "900", "--breakpoint", "1024"}, "Mobile\n  viewport 900px, breakpoint 1024px\n"},
		{"unknown width", []string{"Mozilla/5.0 (X11; Linux x86_64)"}, "Unknown\n  no token matched; the redirect shim would measure the viewport width\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, runClassify(t, tt.args...))
		})
	}
}

func TestClassifyCmd_JSON(t *testing.T) {
	t.Parallel()

	out := runClassify(t, "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X)", "--json")

	var res classification
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, device.Mobile, res.Class)
	assert.Equal(t, "ipad", res.Token)

	out = runClassify(t, "Mozilla/5.0 (X11; Linux x86_64)", "--json")
	res = classification{}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, unknownClass, res.Class)
	assert.Empty(t, res.Token)
}

func TestConfig(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("CAROUSEL_INTERVAL", "4s")
	t.Setenv("MOBILE_BREAKPOINT_PX", "800")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("EVENTS_RATE_CAPACITY", "30")

	cfg, err := config.Load[Config](config.WithEnvFiles())
	require.NoError(t, err)

	assert.Equal(t, environment.Production, cfg.Environment())
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 800, cfg.Redirect.MobileBreakpoint)
	assert.Equal(t, "/desktop/", cfg.Redirect.DesktopPath)
	assert.Equal(t, 3, cfg.Carousel.TotalSlides)
	assert.Equal(t, "4s", cfg.Carousel.Interval.String())
	assert.Equal(t, 10000, cfg.MaxSessions)
	assert.True(t, cfg.EventsRateLimit)
	assert.Equal(t, 30, cfg.EventsRate.Capacity)
	assert.Equal(t, time.Second, cfg.EventsRate.RefillInterval)
	assert.NoError(t, cfg.EventsRate.Validate())

	log, err := cfg.Logger()
	require.NoError(t, err)
	assert.False(t, log.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, log.Enabled(t.Context(), slog.LevelWarn))

	cfg.LogFormat = "xml"
	_, err = cfg.Logger()
	assert.Error(t, err)
}
