package tracking

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/landing/pkg/broadcast"
	"github.com/dmitrymomot/landing/pkg/clientip"
	"github.com/dmitrymomot/landing/pkg/logger"
)

// FlagChecker reports whether a feature flag is on for ctx.
type FlagChecker interface {
	IsEnabled(ctx context.Context, name string) (bool, error)
}

// PerformanceLogFlag gates logging of performance_metrics events.
const PerformanceLogFlag = "performance_log"

// Tracker validates and publishes events.
type Tracker struct {
	bus   broadcast.Broadcaster[Event]
	flags FlagChecker
	log   *slog.Logger
	now   func() time.Time
}

type Option func(*Tracker)

func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) {
		if l != nil {
			t.log = l
		}
	}
}

// WithFlags enables flag-gated logging. Without it performance metrics are
// never logged.
func WithFlags(f FlagChecker) Option {
	return func(t *Tracker) { t.flags = f }
}

func WithNow(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

func NewTracker(bus broadcast.Broadcaster[Event], opts ...Option) *Tracker {
	t := &Tracker{
		bus: bus,
		log: slog.New(slog.DiscardHandler),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.log = t.log.With(logger.Component("tracking"))
	return t
}

// Track validates e, stamps it and broadcasts it. The stamped event is
// returned.
func (t *Tracker) Track(ctx context.Context, e Event) (Event, error) {
	e.normalize()
	if err := Validate(e); err != nil {
		return Event{}, err
	}
	e.ID = uuid.NewString()
	e.Timestamp = t.now().UTC()

	if t.shouldLog(ctx, e) {
		t.log.InfoContext(ctx, "tracking event", t.attrs(ctx, e)...)
	}

	if err := t.bus.Broadcast(ctx, broadcast.Message[Event]{Data: e}); err != nil {
		return Event{}, err
	}
	return e, nil
}

func (t *Tracker) shouldLog(ctx context.Context, e Event) bool {
	if e.Name != PerformanceMetrics {
		return true
	}
	if t.flags == nil {
		return false
	}
	on, err := t.flags.IsEnabled(ctx, PerformanceLogFlag)
	if err != nil {
		t.log.WarnContext(ctx, "feature flag lookup failed", slog.String("flag", PerformanceLogFlag), logger.Error(err))
		return false
	}
	return on
}

func (t *Tracker) attrs(ctx context.Context, e Event) []any {
	attrs := []any{
		logger.Event(e.Name),
		slog.String("event_id", e.ID),
	}
	for _, kv := range []struct{ k, v string }{
		{"context", e.Context},
		{"property", e.Property},
		{"section", e.Section},
		{"viewport", e.Viewport},
	} {
		if kv.v != "" {
			attrs = append(attrs, slog.String(kv.k, kv.v))
		}
	}
	if e.Variant != "" {
		attrs = append(attrs, logger.Variant(e.Variant))
	}
	if ip := clientip.FromContext(ctx); ip != "" {
		attrs = append(attrs, slog.String("client_ip", ip))
	}
	if len(e.Metrics) > 0 {
		metrics := make([]slog.Attr, 0, len(e.Metrics))
		for _, k := range slices.Sorted(maps.Keys(e.Metrics)) {
			metrics = append(metrics, slog.Float64(k, e.Metrics[k]))
		}
		attrs = append(attrs, logger.Group("metrics", metrics...))
	}
	return attrs
}
