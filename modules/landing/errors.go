package landing

import (
	"net/http"

	"github.com/dmitrymomot/landing/handler"
)

var (
	ErrSessionNotFound = handler.NewHTTPError(http.StatusNotFound, "carousel session not found")
	ErrTooManySessions = handler.NewHTTPError(http.StatusServiceUnavailable, "too many open carousels")
	ErrNoCarousel      = handler.NewHTTPError(http.StatusNotFound, "this page has no carousel")
)
