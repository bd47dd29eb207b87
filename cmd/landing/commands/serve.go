package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/landing/modules/landing"
	"github.com/dmitrymomot/landing/pkg/broadcast"
	"github.com/dmitrymomot/landing/pkg/config"
	"github.com/dmitrymomot/landing/pkg/httpserver"
	"github.com/dmitrymomot/landing/pkg/logger"
	"github.com/dmitrymomot/landing/pkg/ratelimiter"
	"github.com/dmitrymomot/landing/pkg/site"
	"github.com/dmitrymomot/landing/pkg/tracking"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load[Config](config.WithEnvFiles(envFiles...))
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}

func serve(ctx context.Context, cfg Config) error {
	log, err := cfg.Logger()
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	if err := cfg.Redirect.Validate(); err != nil {
		return err
	}
	if err := cfg.Carousel.Validate(); err != nil {
		return err
	}

	cat, err := loadCatalogue(cfg.ContentFile)
	if err != nil {
		return err
	}
	flags, err := site.Flags()
	if err != nil {
		return err
	}

	bus := broadcast.NewMemoryBroadcaster[tracking.Event](64)
	defer bus.Close()
	stats := tracking.NewStats()
	go stats.Run(bus.Subscribe(ctx))

	sessions := landing.NewSessions(cfg.MaxSessions)
	defer sessions.CloseAll()

	opts := landing.Options{
		Catalogue:   cat,
		Carousel:    cfg.Carousel,
		Redirect:    cfg.Redirect,
		Environment: cfg.Environment(),
		Flags:       flags,
		Events:      bus,
		Tracker:     tracking.NewTracker(bus, tracking.WithLogger(log), tracking.WithFlags(flags)),
		Stats:       stats,
		Sessions:    sessions,
		Logger:      log,
	}
	if cfg.EventsRateLimit {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()
		limit, err := ratelimiter.NewBucket(store, cfg.EventsRate)
		if err != nil {
			return err
		}
		opts.EventsLimit = limit
	}
	if cfg.AssetsDir != "" {
		opts.Assets = os.DirFS(cfg.AssetsDir)
	}

	log.Info("starting landing",
		slog.String("env", cfg.Environment().String()),
		slog.String("addr", cfg.Server.Addr),
		slog.Duration("carousel_interval", cfg.Carousel.Interval),
		slog.Int("mobile_breakpoint", cfg.Redirect.MobileBreakpoint),
	)
	return httpserver.New(cfg.Server, httpserver.WithLogger(log)).Run(ctx, landing.Router(opts))
}

func loadCatalogue(path string) (*site.Catalogue, error) {
	if path == "" {
		return site.Load()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return site.Parse(data)
}
