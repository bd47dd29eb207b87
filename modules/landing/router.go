package landing

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/landing/handler"
	"github.com/dmitrymomot/landing/pkg/broadcast"
	"github.com/dmitrymomot/landing/pkg/carousel"
	"github.com/dmitrymomot/landing/pkg/clientip"
	"github.com/dmitrymomot/landing/pkg/device"
	"github.com/dmitrymomot/landing/pkg/environment"
	"github.com/dmitrymomot/landing/pkg/feature"
	"github.com/dmitrymomot/landing/pkg/httpserver"
	"github.com/dmitrymomot/landing/pkg/ratelimiter"
	"github.com/dmitrymomot/landing/pkg/redirect"
	"github.com/dmitrymomot/landing/pkg/requestid"
	"github.com/dmitrymomot/landing/pkg/site"
	"github.com/dmitrymomot/landing/pkg/tracking"
)

// Options configures Router. Catalogue is required; every other field has
// a working default.
type Options struct {
	Catalogue   *site.Catalogue
	Carousel    carousel.Config
	Redirect    redirect.Config
	Environment environment.Environment
	Flags       *feature.MemoryProvider
	// Events carries tracked events to subscribers such as Stats.
	Events   broadcast.Broadcaster[tracking.Event]
	Tracker  *tracking.Tracker
	Stats    *tracking.Stats
	Sessions *Sessions
	// EventsLimit bounds beacons per client IP. Nil disables the limit.
	EventsLimit *ratelimiter.Bucket
	// Clock drives carousel auto-advance. Nil uses the real ticker.
	Clock carousel.Clock
	// Assets, when set, serves images, styles and service workers.
	Assets fs.FS
	Logger *slog.Logger
}

func (o *Options) defaults() error {
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	if o.Carousel == (carousel.Config{}) {
		o.Carousel = carousel.DefaultConfig()
	}
	if o.Redirect == (redirect.Config{}) {
		o.Redirect = redirect.DefaultConfig()
	}
	if o.Environment == "" {
		o.Environment = environment.Development
	}
	if o.Flags == nil {
		flags, err := site.Flags()
		if err != nil {
			return err
		}
		o.Flags = flags
	}
	if o.Events == nil {
		o.Events = broadcast.NewMemoryBroadcaster[tracking.Event](64)
	}
	if o.Tracker == nil {
		o.Tracker = tracking.NewTracker(o.Events, tracking.WithLogger(o.Logger), tracking.WithFlags(o.Flags))
	}
	if o.Stats == nil {
		// Runs until Events is closed.
		o.Stats = tracking.NewStats()
		go o.Stats.Run(o.Events.Subscribe(context.Background()))
	}
	if o.Sessions == nil {
		o.Sessions = NewSessions(0)
	}
	if o.Clock == nil {
		o.Clock = carousel.RealClock{}
	}
	if n := len(o.Catalogue.Slides); n > 0 && n != o.Carousel.TotalSlides {
		o.Logger.Warn("carousel slide count follows the catalogue",
			slog.Int("configured", o.Carousel.TotalSlides),
			slog.Int("catalogue", n),
		)
		o.Carousel.TotalSlides = n
	}
	return nil
}

// Router builds the landing page routes. It panics when opts.Catalogue is
// nil or the options cannot be completed.
func Router(opts Options) chi.Router {
	if opts.Catalogue == nil {
		panic("landing: nil catalogue")
	}
	if err := opts.defaults(); err != nil {
		panic("landing: " + err.Error())
	}

	log := opts.Logger
	errorHandler := handler.NewErrorHandler(log)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(opts.Environment),
		middleware.Recoverer,
	)

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, opts.Catalogue.Check))

	r.Handle("/", redirect.Handler(opts.Redirect, redirect.WithLogger(log)))

	for _, class := range []device.Class{device.Desktop, device.Mobile} {
		v, err := opts.Catalogue.Variant(class)
		if err != nil {
			panic("landing: " + err.Error())
		}
		pages := &pageHandlers{
			catalogue:    opts.Catalogue,
			variant:      v,
			carousel:     opts.Carousel,
			flags:        opts.Flags,
			sessions:     opts.Sessions,
			clock:        opts.Clock,
			log:          log,
			errorHandler: errorHandler,
		}
		base := strings.TrimSuffix(v.Path, "/")
		r.Route(base, func(vr chi.Router) {
			pages.mount(vr)
			if opts.Assets != nil {
				vr.Handle("/*", http.StripPrefix(base, http.FileServerFS(opts.Assets)))
			}
		})
	}

	events := &eventHandlers{
		tracker:      opts.Tracker,
		stats:        opts.Stats,
		limit:        opts.EventsLimit,
		errorHandler: errorHandler,
		log:          log,
	}
	r.Route("/api/events", events.mount)

	if opts.Assets != nil {
		r.Handle("/*", http.FileServerFS(opts.Assets))
	}
	return r
}
