package landing

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/landing/handler"
	"github.com/dmitrymomot/landing/pkg/binder"
	"github.com/dmitrymomot/landing/pkg/carousel"
	"github.com/dmitrymomot/landing/pkg/feature"
	"github.com/dmitrymomot/landing/pkg/logger"
	"github.com/dmitrymomot/landing/pkg/site"
	"github.com/dmitrymomot/landing/pkg/validator"
)

// pageHandlers serves one page variant and its carousel.
type pageHandlers struct {
	catalogue    *site.Catalogue
	variant      site.Variant
	carousel     carousel.Config
	flags        *feature.MemoryProvider
	sessions     *Sessions
	clock        carousel.Clock
	log          *slog.Logger
	errorHandler handler.ErrorHandler
}

func (h *pageHandlers) mount(r chi.Router) {
	r.Get("/", handler.Wrap(h.page, handler.WithErrorHandler[struct{}](h.errorHandler)))
	r.Get("/carousel/stream", handler.Wrap(h.stream,
		handler.WithBinders[CarouselSignals](bindSignals),
		handler.WithErrorHandler[CarouselSignals](h.errorHandler),
	))
	r.Post("/carousel/{action}", handler.Wrap(h.action,
		handler.WithBinders[CarouselAction](binder.Path(chi.URLParam), bindSignals),
		handler.WithErrorHandler[CarouselAction](h.errorHandler),
	))
}

func (h *pageHandlers) page(ctx handler.Context, _ struct{}) handler.Response {
	data := site.PageData{
		CarouselID:     uuid.NewString(),
		Flags:          h.flags.Evaluate(ctx),
		SwipeThreshold: h.carousel.SwipeThreshold,
	}
	w := ctx.ResponseWriter()
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Vary", "User-Agent")
	return handler.Templ(site.Page(h.catalogue, h.variant, data))
}

// CarouselSignals are the Datastar signals the carousel sends with every
// request.
type CarouselSignals struct {
	CarouselID string         `json:"carouselId"`
	Slide      int            `json:"currentSlide"`
	Key        string         `json:"key"`
	GotoSlide  int            `json:"gotoSlide"`
	Swipe      carousel.Swipe `json:"swipe"`
}

func (s CarouselSignals) validate() error {
	return validator.Apply(
		validator.RequiredString("carouselId", s.CarouselID),
		validator.ValidUUID("carouselId", s.CarouselID),
	)
}

// CarouselAction is a carousel button, key or gesture.
type CarouselAction struct {
	Action string `path:"action" json:"-"`
	CarouselSignals
}

func bindSignals(r *http.Request, v any) error {
	if err := datastar.ReadSignals(r, v); err != nil {
		return handler.ErrBadRequest.Wrap(err)
	}
	return nil
}

// stream drives the carousel of one page load until the client goes away.
func (h *pageHandlers) stream(ctx handler.Context, sig CarouselSignals) handler.Response {
	if !h.variant.Carousel {
		return errorResponse(ErrNoCarousel)
	}
	if err := sig.validate(); err != nil {
		return errorResponse(err)
	}
	if err := h.sessions.Admit(sig.CarouselID); err != nil {
		return errorResponse(err)
	}
	return handler.SSE(func(ctx handler.Context, sse *datastar.ServerSentEventGenerator) error {
		log := h.log.With(logger.Session(sig.CarouselID), logger.Variant(h.variant.Name))

		ctrl, err := carousel.New(h.carousel, newSSERenderer(sse),
			carousel.WithClock(h.clock),
			carousel.WithLogger(log),
		)
		if err != nil {
			return err
		}
		if err := h.sessions.Add(sig.CarouselID, ctrl); err != nil {
			_ = ctrl.Close()
			return err
		}
		defer h.sessions.Remove(sig.CarouselID, ctrl)

		// A reconnecting page keeps its slide.
		if err := ctrl.GoTo(ctx, sig.Slide); err != nil {
			return err
		}
		if err := ctrl.StartAutoAdvance(); err != nil {
			return err
		}
		log.DebugContext(ctx, "carousel stream opened")

		<-ctx.Done()
		log.DebugContext(context.WithoutCancel(ctx), "carousel stream closed")
		return nil
	})
}

func (h *pageHandlers) action(ctx handler.Context, req CarouselAction) handler.Response {
	if !h.variant.Carousel {
		return errorResponse(ErrNoCarousel)
	}
	if err := req.validate(); err != nil {
		return errorResponse(err)
	}
	ctrl, ok := h.sessions.Get(req.CarouselID)
	if !ok {
		return errorResponse(ErrSessionNotFound)
	}

	var err error
	switch req.Action {
	case "key":
		_, err = ctrl.HandleKey(ctx, req.Key)
	case "swipe":
		_, err = ctrl.HandleSwipe(ctx, req.Swipe)
	case "goto":
		err = ctrl.GoTo(ctx, req.GotoSlide)
	default:
		var a carousel.Action
		if a, err = carousel.ParseAction(req.Action); err == nil {
			err = ctrl.Dispatch(ctx, a)
		}
	}
	switch {
	case errors.Is(err, carousel.ErrUnknownAction):
		return errorResponse(handler.ErrNotFound.Wrap(err))
	case errors.Is(err, carousel.ErrClosed):
		return errorResponse(ErrSessionNotFound.Wrap(err))
	case err != nil:
		return errorResponse(err)
	}
	return handler.Empty(http.StatusNoContent)
}

// errorResponse hands err to the error handler through Render.
func errorResponse(err error) handler.Response {
	return handler.ResponseFunc(func(http.ResponseWriter, *http.Request) error { return err })
}
