package redirect

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/landing/pkg/device"
	"github.com/dmitrymomot/landing/pkg/logger"
)

// QueryVariant forces a class, for "view desktop site" style links.
const QueryVariant = "variant"

// Option configures Handler.
type Option func(*Redirector)

func WithNavigator(n Navigator) Option {
	return func(h *Redirector) {
		if n != nil {
			h.nav = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(h *Redirector) {
		if l != nil {
			h.log = l
		}
	}
}

// WithClassifier overrides the classifier built from Config.MobileBreakpoint.
func WithClassifier(c *device.Classifier) Option {
	return func(h *Redirector) {
		if c != nil {
			h.classifier = c
		}
	}
}

// Redirector is the http.Handler returned by Handler.
type Redirector struct {
	cfg        Config
	nav        Navigator
	classifier *device.Classifier
	log        *slog.Logger
}

// Handler returns the root redirect. Each invalid path or delay in cfg is
// replaced by its default; valid settings are kept.
func Handler(cfg Config, opts ...Option) *Redirector {
	def := DefaultConfig()
	if !validPath(cfg.DesktopPath) {
		cfg.DesktopPath = def.DesktopPath
	}
	if !validPath(cfg.MobilePath) {
		cfg.MobilePath = def.MobilePath
	}
	if cfg.FallbackDelay < 0 {
		cfg.FallbackDelay = def.FallbackDelay
	}
	if cfg.ShimDelay < 0 {
		cfg.ShimDelay = def.ShimDelay
	}

	h := &Redirector{
		cfg:        cfg,
		nav:        HTTPNavigator{},
		classifier: device.NewClassifier(device.WithBreakpoint(cfg.MobileBreakpoint)),
		log:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With(logger.Component("redirect"))
	return h
}

func (h *Redirector) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.fallback(w, r, fmt.Errorf("%w: panic: %v", ErrNavigation, rec))
		}
	}()

	hdr := w.Header()
	hdr.Set("Cache-Control", "no-store")
	hdr.Set("Accept-CH", device.HeaderViewportWidth)
	hdr.Set("Critical-CH", device.HeaderViewportWidth)
	hdr.Set("Vary", strings.Join([]string{"User-Agent", device.HeaderViewportWidth, device.HeaderViewportWidthLegacy}, ", "))

	class, reason := h.decide(r)
	if class == "" {
		h.shim(w, r)
		return
	}

	target := h.cfg.Path(class)
	h.log.DebugContext(r.Context(), "device classified",
		logger.DeviceClass(class.String()),
		slog.String("reason", reason),
		slog.String("target", target),
	)
	if err := h.nav.Navigate(w, r, target); err != nil {
		h.fallback(w, r, fmt.Errorf("%w: %w", ErrNavigation, err))
	}
}

// decide returns the class for r and what it was based on. An empty class
// means the viewport width still has to be measured.
func (h *Redirector) decide(r *http.Request) (device.Class, string) {
	q := r.URL.Query()
	if c, ok := device.ParseClass(q.Get(QueryVariant)); ok {
		return c, "override"
	}

	dc, hasWidth := device.FromRequest(r)
	if token, ok := h.classifier.Match(dc.UserAgent); ok {
		return device.Mobile, "token:" + token
	}
	if hasWidth {
		return h.classifier.Classify(dc), fmt.Sprintf("width:%d", dc.ViewportWidth)
	}
	// The shim already reported a width that did not parse; do not loop.
	if q.Has(device.QueryViewportWidth) {
		return device.Desktop, "default"
	}
	return "", ""
}

func (h *Redirector) shim(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := shimPage(h.cfg, device.QueryViewportWidth).Render(r.Context(), w); err != nil {
		h.log.ErrorContext(r.Context(), "render redirect shim", logger.Error(err))
	}
}

// fallback sends the visitor to the desktop page after FallbackDelay.
func (h *Redirector) fallback(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "redirect failed, falling back to desktop",
		logger.Error(err),
		slog.String("target", h.cfg.DesktopPath),
	)
	w.Header().Set("Refresh", refreshHeader(h.cfg.FallbackDelay, h.cfg.DesktopPath))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = fallbackPage(h.cfg.DesktopPath).Render(r.Context(), w)
}
