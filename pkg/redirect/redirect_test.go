package redirect_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landing/pkg/device"
	"github.com/dmitrymomot/landing/pkg/redirect"
)

const (
	uaIPhone  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	uaDesktop = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"
)

func serve(t *testing.T, h http.Handler, target, ua string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, target, nil)
	r.Header.Set("User-Agent", ua)
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestHandler_Redirects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   string
		ua       string
		headers  map[string]string
		location string
	}{
		{"mobile token", "/", uaIPhone, nil, "/mobile/"},
		{"token wins over wide viewport", "/?vw=1920", uaIPhone, nil, "/mobile/"},
		{"narrow width from shim", "/?vw=390", uaDesktop, nil, "/mobile/"},
		{"breakpoint is inclusive", "/?vw=768", uaDesktop, nil, "/mobile/"},
		{"wide width from shim", "/?vw=769", uaDesktop, nil, "/desktop/"},
		{"client hint", "/", uaDesktop, map[string]string{device.HeaderViewportWidth: "1280"}, "/desktop/"},
		{"unparseable width falls back to desktop", "/?vw=0", uaDesktop, nil, "/desktop/"},
		{"variant override", "/?variant=desktop", uaIPhone, nil, "/desktop/"},
		{"unknown override ignored", "/?variant=tv", uaIPhone, nil, "/mobile/"},
	}

	h := redirect.Handler(redirect.DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := serve(t, h, tt.target, tt.ua, tt.headers)
			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, tt.location, w.Header().Get("Location"))
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
		})
	}
}

func TestHandler_Shim(t *testing.T) {
	t.Parallel()

	h := redirect.Handler(redirect.DefaultConfig())
	w := serve(t, h, "/", uaDesktop, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
	assert.Equal(t, device.HeaderViewportWidth, w.Header().Get("Accept-CH"))
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	assert.Contains(t, body, "opacity:0")
	assert.Contains(t, body, `url=/desktop/`)
	assert.Contains(t, body, `"param":"vw"`)
	assert.Contains(t, body, `"delay":100`)
	assert.Contains(t, body, `"fallback":2000`)
}

func TestHandler_NavigatesOnce(t *testing.T) {
	t.Parallel()

	var calls []string
	nav := redirect.NavigatorFunc(func(w http.ResponseWriter, r *http.Request, path string) error {
		calls = append(calls, path)
		w.WriteHeader(http.StatusNoContent)
		return nil
	})

	h := redirect.Handler(redirect.DefaultConfig(), redirect.WithNavigator(nav))
	serve(t, h, "/?vw=500", uaDesktop, nil)
	assert.Equal(t, []string{"/mobile/"}, calls)
}

func TestHandler_Fallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		nav  redirect.NavigatorFunc
	}{
		{"navigation error", func(http.ResponseWriter, *http.Request, string) error {
			return errors.New("boom")
		}},
		{"navigation panic", func(http.ResponseWriter, *http.Request, string) error {
			panic("boom")
		}},
	}

	cfg := redirect.DefaultConfig()
	cfg.FallbackDelay = 1500 * time.Millisecond
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := redirect.Handler(cfg, redirect.WithNavigator(tt.nav))
			w := serve(t, h, "/", uaIPhone, nil)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "2; url=/desktop/", w.Header().Get("Refresh"))
			assert.Contains(t, w.Body.String(), `href="/desktop/"`)
		})
	}
}

func TestHandler_CustomBreakpoint(t *testing.T) {
	t.Parallel()

	cfg := redirect.DefaultConfig()
	cfg.MobileBreakpoint = 1024
	h := redirect.Handler(cfg)

	w := serve(t, h, "/?vw=900", uaDesktop, nil)
	assert.Equal(t, "/mobile/", w.Header().Get("Location"))
}

func TestHandler_DatastarRedirect(t *testing.T) {
	t.Parallel()

	h := redirect.Handler(redirect.DefaultConfig())
	w := serve(t, h, "/", uaIPhone, map[string]string{"Datastar-Request": "true"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
	assert.True(t, strings.Contains(w.Body.String(), "/mobile/"))
}

func TestConfig(t *testing.T) {
	t.Parallel()

	cfg := redirect.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "/mobile/", cfg.Path(device.Mobile))
	assert.Equal(t, "/desktop/", cfg.Path(device.Desktop))
	assert.Equal(t, "/desktop/", cfg.Path(device.Class("")))

	cfg.MobilePath = "//evil.example"
	assert.ErrorIs(t, cfg.Validate(), redirect.ErrInvalidConfig)

	cfg = redirect.DefaultConfig()
	cfg.FallbackDelay = -time.Second
	assert.ErrorIs(t, cfg.Validate(), redirect.ErrInvalidConfig)
}

func TestHandler_InvalidPathsUseDefaults(t *testing.T) {
	t.Parallel()

	cfg := redirect.DefaultConfig()
	cfg.MobilePath = "https://evil.example/"
	h := redirect.Handler(cfg)

	w := serve(t, h, "/", uaIPhone, nil)
	assert.Equal(t, "/mobile/", w.Header().Get("Location"))
}

func TestHandler_InvalidSettingsKeepValidOnes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		edit        func(*redirect.Config)
		wantMobile  string
		wantDesktop string
	}{
		{
			name: "negative delay",
			edit: func(c *redirect.Config) {
				c.MobilePath, c.DesktopPath = "/m/", "/d/"
				c.ShimDelay = -time.Second
			},
			wantMobile:  "/m/",
			wantDesktop: "/d/",
		},
		{
			name: "one bad path",
			edit: func(c *redirect.Config) {
				c.MobilePath, c.DesktopPath = "//evil.example/", "/d/"
			},
			wantMobile:  "/mobile/",
			wantDesktop: "/d/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := redirect.DefaultConfig()
			tt.edit(&cfg)
			h := redirect.Handler(cfg)

			assert.Equal(t, tt.wantMobile, serve(t, h, "/", uaIPhone, nil).Header().Get("Location"))
			assert.Equal(t, tt.wantDesktop, serve(t, h, "/?vw=1440", uaDesktop, nil).Header().Get("Location"))
		})
	}
}
