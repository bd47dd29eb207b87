package device

import (
	"net/http"
	"strconv"
	"strings"
)

// Headers and parameters carrying the viewport width, in lookup order.
const (
	HeaderViewportWidth       = "Sec-CH-Viewport-Width"
	HeaderViewportWidthLegacy = "Viewport-Width"
	QueryViewportWidth        = "vw"
)

// maxViewportWidth rejects absurd values instead of trusting them.
const maxViewportWidth = 16384

// FromRequest builds a Context from r. The bool reports whether a usable
// viewport width was found; without it the width is left at zero and the
// caller has to decide how to obtain one.
func FromRequest(r *http.Request) (Context, bool) {
	ctx := Context{UserAgent: r.UserAgent()}

	candidates := []string{
		r.Header.Get(HeaderViewportWidth),
		r.Header.Get(HeaderViewportWidthLegacy),
		r.URL.Query().Get(QueryViewportWidth),
	}
	for _, raw := range candidates {
		if w, ok := parseWidth(raw); ok {
			ctx.ViewportWidth = w
			return ctx, true
		}
	}
	return ctx, false
}

// parseWidth accepts positive integers; client hints may carry a fractional
// part which is truncated.
func parseWidth(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		raw = raw[:i]
	}
	w, err := strconv.Atoi(raw)
	if err != nil || w <= 0 || w > maxViewportWidth {
		return 0, false
	}
	return w, true
}
