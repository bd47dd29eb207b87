package ratelimiter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landing/pkg/clientip"
	"github.com/dmitrymomot/landing/pkg/ratelimiter"
)

type fakeNow struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeNow) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeNow) Add(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t = f.t.Add(d)
}

func newBucket(t *testing.T, cfg ratelimiter.Config) (*ratelimiter.Bucket, *ratelimiter.MemoryStore, *fakeNow) {
	t.Helper()
	now := &fakeNow{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0), ratelimiter.WithNow(now.Now))
	t.Cleanup(store.Close)
	b, err := ratelimiter.NewBucket(store, cfg)
	require.NoError(t, err)
	return b, store, now
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  ratelimiter.Config
		ok   bool
	}{
		{"valid", ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second}, true},
		{"zero capacity", ratelimiter.Config{RefillRate: 1, RefillInterval: time.Second}, false},
		{"zero rate", ratelimiter.Config{Capacity: 1, RefillInterval: time.Second}, false},
		{"zero interval", ratelimiter.Config{Capacity: 1, RefillRate: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
			}
		})
	}
}

func TestBucket(t *testing.T) {
	t.Parallel()

	b, _, now := newBucket(t, ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: time.Second})
	ctx := context.Background()

	for want := 2; want >= 0; want-- {
		res, err := b.Allow(ctx, "ip")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, want, res.Remaining)
	}

	res, err := b.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Equal(t, time.Second, res.RetryAfter(now.Now()))

	// Denied requests do not push the bucket further below zero.
	res, _ = b.Allow(ctx, "ip")
	assert.Equal(t, -1, res.Remaining)

	now.Add(1500 * time.Millisecond)
	res, err = b.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 0, res.Remaining)

	// Other keys have their own bucket.
	res, _ = b.Allow(ctx, "other")
	assert.Equal(t, 2, res.Remaining)

	now.Add(time.Hour)
	res, _ = b.Allow(ctx, "ip")
	assert.Equal(t, 2, res.Remaining, "refill is capped at capacity")
	res, _ = b.Allow(ctx, "ip")
	assert.Equal(t, 1, res.Remaining, "a long idle period refills once")

	require.NoError(t, b.Reset(ctx, "ip"))
	res, _ = b.AllowN(ctx, "ip", 3)
	assert.Equal(t, 0, res.Remaining)

	_, err = b.AllowN(ctx, "ip", 0)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
}

func TestComposite(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	short := ratelimiter.Composite(
		func(*http.Request) string { return "a" },
		func(*http.Request) string { return "" },
		func(*http.Request) string { return "b" },
	)
	assert.Equal(t, "a:b", short(r))

	long := ratelimiter.Composite(func(*http.Request) string { return strings.Repeat("x", 100) })
	key := long(r)
	assert.NotEmpty(t, key)
	assert.LessOrEqual(t, len(key), 13)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	b, _, _ := newBucket(t, ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Minute})
	h := clientip.Middleware(ratelimiter.Middleware(b, ratelimiter.ByClientIP)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusAccepted) }),
	))

	send := func(ip string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodPost, "/api/events", nil)
		r.Header.Set("X-Real-IP", ip)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w
	}

	assert.Equal(t, http.StatusAccepted, send("198.51.100.1").Code)
	w := send("198.51.100.1")
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = send("198.51.100.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusAccepted, send("198.51.100.2").Code)
}

func TestMemoryStore_Len(t *testing.T) {
	t.Parallel()

	b, store, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
	_, _ = b.Allow(context.Background(), "a")
	_, _ = b.Allow(context.Background(), "b")
	assert.Equal(t, 2, store.Len())
}
