package tracking_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landing/pkg/broadcast"
	"github.com/dmitrymomot/landing/pkg/clientip"
	"github.com/dmitrymomot/landing/pkg/logger"
	"github.com/dmitrymomot/landing/pkg/tracking"
	"github.com/dmitrymomot/landing/pkg/validator"
)

type flags map[string]bool

func (f flags) IsEnabled(_ context.Context, name string) (bool, error) {
	on, ok := f[name]
	if !ok {
		return false, errors.New("unknown flag")
	}
	return on, nil
}

var fixedNow = time.Date(2025, 3, 14, 15, 9, 26, 0, time.FixedZone("BRT", -3*3600))

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		event  tracking.Event
		fields []string
	}{
		{"valid click", tracking.Event{Name: tracking.WhatsAppClick, Context: "hero", Variant: "desktop"}, nil},
		{"valid metrics", tracking.Event{Name: tracking.PerformanceMetrics, Metrics: map[string]float64{"loadTime": 812, "domReady": 420}}, nil},
		{"web vitals", tracking.Event{Name: tracking.PerformanceMetrics, Context: "web_vitals", Metrics: map[string]float64{"lcp": 1840, "fid": 12, "cls": 0.042}}, nil},
		{"missing name", tracking.Event{}, []string{"name"}},
		{"unknown name", tracking.Event{Name: "page_view"}, []string{"name"}},
		{"unknown variant", tracking.Event{Name: tracking.VirtualPageview, Variant: "tablet"}, []string{"variant"}},
		{"long context", tracking.Event{Name: tracking.WhatsAppClick, Context: strings.Repeat("x", 129)}, []string{"context"}},
		{"negative metric", tracking.Event{Name: tracking.LongInteraction, Metrics: map[string]float64{"duration": -1}}, []string{"metrics.duration"}},
		{"absurd metric", tracking.Event{Name: tracking.LongInteraction, Metrics: map[string]float64{"duration": 1e9}}, []string{"metrics.duration"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tracking.Validate(tt.event)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			require.True(t, validator.IsValidationError(err))
			ve := validator.ExtractValidationErrors(err)
			for _, f := range tt.fields {
				assert.True(t, ve.Has(f), "expected error on %s, got %v", f, ve.Fields())
			}
		})
	}
}

func TestTracker_Track(t *testing.T) {
	t.Parallel()

	bus := broadcast.NewMemoryBroadcaster[tracking.Event](4)
	t.Cleanup(func() { _ = bus.Close() })
	sub := bus.Subscribe(context.Background())

	buf := &bytes.Buffer{}
	tr := tracking.NewTracker(bus,
		tracking.WithLogger(logger.New(logger.WithOutput(buf))),
		tracking.WithNow(func() time.Time { return fixedNow }),
	)

	ctx := clientip.WithContext(context.Background(), "203.0.113.7")
	got, err := tr.Track(ctx, tracking.Event{
		Name:     " property_interest ",
		Property: "Apartamento\n  Jardins\x00",
		Variant:  "Mobile",
		ID:       "client-supplied",
	})
	require.NoError(t, err)

	_, err = uuid.Parse(got.ID)
	assert.NoError(t, err)
	assert.Equal(t, tracking.PropertyInterest, got.Name)
	assert.Equal(t, "mobile", got.Variant)
	assert.Equal(t, "Apartamento Jardins", got.Property)
	assert.Equal(t, fixedNow.UTC(), got.Timestamp)

	select {
	case msg := <-sub.Receive():
		assert.Equal(t, got, msg.Data)
	case <-time.After(time.Second):
		t.Fatal("event was not broadcast")
	}

	out := buf.String()
	assert.Contains(t, out, `"event":"property_interest"`)
	assert.Contains(t, out, `"client_ip":"203.0.113.7"`)
	assert.Contains(t, out, `"component":"tracking"`)
}

func TestTracker_RejectsInvalid(t *testing.T) {
	t.Parallel()

	bus := broadcast.NewMemoryBroadcaster[tracking.Event](1)
	t.Cleanup(func() { _ = bus.Close() })
	sub := bus.Subscribe(context.Background())

	_, err := tracking.NewTracker(bus).Track(context.Background(), tracking.Event{Name: "nope"})
	assert.True(t, validator.IsValidationError(err))
	assert.Empty(t, sub.Receive())
}

func TestTracker_PerformanceLogFlag(t *testing.T) {
	t.Parallel()

	metrics := tracking.Event{Name: tracking.PerformanceMetrics, Metrics: map[string]float64{"loadTime": 900}}

	tests := []struct {
		name    string
		flags   tracking.FlagChecker
		wantLog bool
	}{
		{"no flags", nil, false},
		{"flag off", flags{tracking.PerformanceLogFlag: false}, false},
		{"flag on", flags{tracking.PerformanceLogFlag: true}, true},
		{"lookup error", flags{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			bus := broadcast.NewMemoryBroadcaster[tracking.Event](1)
			t.Cleanup(func() { _ = bus.Close() })

			buf := &bytes.Buffer{}
			tr := tracking.NewTracker(bus,
				tracking.WithLogger(logger.New(logger.WithOutput(buf))),
				tracking.WithFlags(tt.flags),
			)
			_, err := tr.Track(context.Background(), metrics)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLog, strings.Contains(buf.String(), `"msg":"tracking event"`))
		})
	}
}

func TestTracker_ClosedBus(t *testing.T) {
	t.Parallel()

	bus := broadcast.NewMemoryBroadcaster[tracking.Event](1)
	require.NoError(t, bus.Close())

	_, err := tracking.NewTracker(bus).Track(context.Background(), tracking.Event{Name: tracking.NetworkStatus})
	assert.ErrorIs(t, err, broadcast.ErrClosed)
}

func TestStats(t *testing.T) {
	t.Parallel()

	bus := broadcast.NewMemoryBroadcaster[tracking.Event](16)
	stats := tracking.NewStats()
	done := make(chan struct{})
	sub := bus.Subscribe(context.Background())
	go func() {
		stats.Run(sub)
		close(done)
	}()

	tr := tracking.NewTracker(bus, tracking.WithNow(func() time.Time { return fixedNow }))
	for _, e := range []tracking.Event{
		{Name: tracking.WhatsAppClick, Variant: "desktop"},
		{Name: tracking.WhatsAppClick, Variant: "mobile"},
		{Name: tracking.VirtualPageview, Variant: "mobile"},
		{Name: tracking.NetworkStatus},
	} {
		_, err := tr.Track(context.Background(), e)
		require.NoError(t, err)
	}

	require.NoError(t, bus.Close())
	<-done

	snap := stats.Snapshot()
	assert.EqualValues(t, 4, snap.Total)
	assert.Equal(t, map[string]uint64{tracking.WhatsAppClick: 2, tracking.VirtualPageview: 1, tracking.NetworkStatus: 1}, snap.ByName)
	assert.Equal(t, map[string]uint64{"desktop": 1, "mobile": 2}, snap.ByVariant)
	assert.Equal(t, fixedNow.UTC(), snap.LastEvent)
	assert.Zero(t, snap.Dropped)

	// Snapshots are copies.
	snap.ByName["x"] = 1
	assert.NotContains(t, stats.Snapshot().ByName, "x")
}
