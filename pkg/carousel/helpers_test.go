package carousel_test

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrymomot/landing/pkg/carousel"
)

// manualClock fires timers only when Advance is called.
type manualClock struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	every   time.Duration
	fn      func()
	elapsed time.Duration
	stopped bool
}

func (c *manualClock) Every(d time.Duration, fn func()) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{every: d, fn: fn}
	c.timers = append(c.timers, t)
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		t.stopped = true
	}
}

// Live counts timers that have not been stopped.
func (c *manualClock) Live() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Scheduled counts every timer ever created.
func (c *manualClock) Scheduled() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// Timer returns the i-th scheduled callback, stopped or not.
func (c *manualClock) Timer(i int) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timers[i].fn
}

// Advance moves time forward in one step per interval.
func (c *manualClock) Advance(d time.Duration) {
	const step = 100 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < d; elapsed += step {
		var due []*manualTimer
		c.mu.Lock()
		for _, t := range c.timers {
			if t.stopped {
				continue
			}
			t.elapsed += step
			if t.elapsed >= t.every {
				t.elapsed -= t.every
				due = append(due, t)
			}
		}
		c.mu.Unlock()

		for _, t := range due {
			c.mu.Lock()
			stopped := t.stopped
			c.mu.Unlock()
			if !stopped {
				t.fn()
			}
		}
	}
}

// recorder is a Renderer that keeps everything it was asked to draw.
type recorder struct {
	mu     sync.Mutex
	moves  []carousel.Move
	active [][]carousel.SlideAttrs
	err    error
}

func (r *recorder) Move(_ context.Context, m carousel.Move) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.moves = append(r.moves, m)
	return r.err
}

func (r *recorder) MarkActive(_ context.Context, slides []carousel.SlideAttrs) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = append(r.active, slides)
	return nil
}

func (r *recorder) slides() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, 0, len(r.moves))
	for _, m := range r.moves {
		out = append(out, m.Slide)
	}
	return out
}

func (r *recorder) lastActive() []carousel.SlideAttrs {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.active) == 0 {
		return nil
	}
	return r.active[len(r.active)-1]
}

func newController(cfg carousel.Config) (*carousel.Controller, *recorder, *manualClock) {
	rec := &recorder{}
	clock := &manualClock{}
	c, err := carousel.New(cfg, rec, carousel.WithClock(clock))
	if err != nil {
		panic(err)
	}
	return c, rec, clock
}
