package landing

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/landing/handler"
	"github.com/dmitrymomot/landing/pkg/binder"
	"github.com/dmitrymomot/landing/pkg/ratelimiter"
	"github.com/dmitrymomot/landing/pkg/tracking"
)

type eventHandlers struct {
	tracker      *tracking.Tracker
	stats        *tracking.Stats
	limit        *ratelimiter.Bucket
	errorHandler handler.ErrorHandler
	log          *slog.Logger
}

func (h *eventHandlers) mount(r chi.Router) {
	beacons := r
	if h.limit != nil {
		beacons = r.With(ratelimiter.Middleware(h.limit, ratelimiter.ByClientIP, ratelimiter.WithLogger(h.log)))
	}
	beacons.Post("/", handler.Wrap(h.track,
		handler.WithBinders[tracking.Event](binder.JSON(binder.DefaultMaxJSONSize)),
		handler.WithErrorHandler[tracking.Event](h.errorHandler),
	))
	r.Get("/stats", handler.Wrap(h.snapshot, handler.WithErrorHandler[struct{}](h.errorHandler)))
}

type trackedEvent struct {
	ID string `json:"id"`
}

func (h *eventHandlers) track(ctx handler.Context, e tracking.Event) handler.Response {
	e.UserAgent = ctx.Request().UserAgent()
	tracked, err := h.tracker.Track(ctx, e)
	if err != nil {
		return errorResponse(err)
	}
	return handler.JSON(trackedEvent{ID: tracked.ID}, handler.WithStatus(http.StatusAccepted))
}

func (h *eventHandlers) snapshot(_ handler.Context, _ struct{}) handler.Response {
	return handler.JSON(h.stats.Snapshot())
}
