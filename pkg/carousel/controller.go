package carousel

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/landing/pkg/logger"
	"github.com/dmitrymomot/landing/pkg/statemachine"
)

// Auto-advance lifecycle.
const (
	StateIdle      = statemachine.StringState("idle")
	StateAdvancing = statemachine.StringState("advancing")
	StateClosed    = statemachine.StringState("closed")

	eventStart = statemachine.StringEvent("start")
	eventStop  = statemachine.StringEvent("stop")
	eventClose = statemachine.StringEvent("close")
)

// Controller owns the carousel state. Create it with New.
type Controller struct {
	cfg      Config
	renderer Renderer
	clock    Clock
	log      *slog.Logger

	lifecycle *statemachine.Machine

	mu         sync.Mutex
	current    int
	paused     bool
	stopTimer  func()
	generation uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the real ticker, mostly for tests.
func WithClock(clock Clock) Option {
	return func(c *Controller) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLogger sets the logger. Nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// New validates cfg and returns an idle controller on slide 0. A nil renderer
// yields a disabled controller.
func New(cfg Config, renderer Renderer, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:      cfg,
		renderer: renderer,
		clock:    RealClock{},
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(logger.Component("carousel"))

	lifecycle, err := statemachine.New(StateIdle,
		statemachine.WithTransition(StateIdle, StateAdvancing, eventStart,
			statemachine.WithAction(c.scheduleAction)),
		statemachine.WithTransition(StateAdvancing, StateAdvancing, eventStart,
			statemachine.WithAction(c.scheduleAction)),
		statemachine.WithTransition(StateAdvancing, StateIdle, eventStop,
			statemachine.WithAction(c.cancelAction)),
		statemachine.WithTransition(StateIdle, StateIdle, eventStop),
		statemachine.WithTransition(StateIdle, StateClosed, eventClose),
		statemachine.WithTransition(StateAdvancing, StateClosed, eventClose,
			statemachine.WithAction(c.cancelAction)),
		statemachine.WithListener(func(ctx context.Context, from, to statemachine.State, ev statemachine.Event) {
			if from.Name() != to.Name() {
				c.log.DebugContext(ctx, "auto-advance lifecycle",
					logger.Event(ev.Name()),
					slog.String("from", from.Name()),
					slog.String("to", to.Name()),
				)
			}
		}),
	)
	if err != nil {
		return nil, err
	}
	c.lifecycle = lifecycle

	return c, nil
}

// Enabled reports whether the controller drives a real carousel.
func (c *Controller) Enabled() bool { return c.renderer != nil }

// Config returns the configuration the controller was built with.
func (c *Controller) Config() Config { return c.cfg }

// State returns a snapshot of the controller state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		CurrentSlide:      c.current,
		TotalSlides:       c.cfg.TotalSlides,
		AutoAdvanceActive: c.stopTimer != nil,
		IsPaused:          c.paused,
	}
}

// Lifecycle reports the auto-advance lifecycle state.
func (c *Controller) Lifecycle() statemachine.State {
	return c.lifecycle.Current()
}

// GoTo shows the slide at index, wrapping out-of-range values.
func (c *Controller) GoTo(ctx context.Context, index int) error {
	if !c.Enabled() {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lifecycle.Is(StateClosed) {
		return ErrClosed
	}
	return c.navigate(ctx, index)
}

// Next shows the following slide.
func (c *Controller) Next(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lifecycle.Is(StateClosed) {
		return ErrClosed
	}
	return c.navigate(ctx, c.current+1)
}

// Prev shows the preceding slide.
func (c *Controller) Prev(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lifecycle.Is(StateClosed) {
		return ErrClosed
	}
	return c.navigate(ctx, c.current-1)
}

// StartAutoAdvance (re)starts the recurring tick, replacing a live timer.
func (c *Controller) StartAutoAdvance() error {
	if !c.Enabled() {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fire(context.Background(), eventStart)
}

// StopAutoAdvance cancels the live timer. Calling it without one is a no-op.
func (c *Controller) StopAutoAdvance() error {
	if !c.Enabled() {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fire(context.Background(), eventStop)
}

// Pause suspends auto-advance while the pointer hovers the carousel.
func (c *Controller) Pause() error {
	if !c.Enabled() {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.fire(context.Background(), eventStop); err != nil {
		return err
	}
	c.paused = true
	return nil
}

// Resume clears the pause and starts a fresh auto-advance interval.
func (c *Controller) Resume() error {
	if !c.Enabled() {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.fire(context.Background(), eventStart); err != nil {
		return err
	}
	c.paused = false
	return nil
}

// Close stops the timer for good. It is safe to call more than once.
func (c *Controller) Close() error {
	if !c.Enabled() {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lifecycle.Is(StateClosed) {
		return nil
	}
	return c.fire(context.Background(), eventClose)
}

// navigate handles manual navigation. Caller holds c.mu.
func (c *Controller) navigate(ctx context.Context, index int) error {
	err := c.goTo(ctx, index)
	if c.cfg.ResetOnNavigate && c.lifecycle.Is(StateAdvancing) {
		err = errors.Join(err, c.fire(ctx, eventStart))
	}
	return err
}

// goTo updates the state and then signals the renderer. Caller holds c.mu.
func (c *Controller) goTo(ctx context.Context, index int) error {
	c.current = Wrap(index, c.cfg.TotalSlides)

	move := Move{
		Slide:      c.current,
		Offset:     -100 * c.current,
		Transform:  transform(c.current),
		Transition: c.cfg.Transition,
	}
	moveErr := c.renderer.Move(ctx, move)
	markErr := c.renderer.MarkActive(ctx, slideAttrs(c.current, c.cfg.TotalSlides))

	if err := errors.Join(moveErr, markErr); err != nil {
		c.log.WarnContext(ctx, "render slide", logger.Slide(c.current), logger.Error(err))
		return err
	}
	return nil
}

// fire drives the lifecycle machine. Caller holds c.mu.
func (c *Controller) fire(ctx context.Context, ev statemachine.Event) error {
	if err := c.lifecycle.Fire(ctx, ev, nil); err != nil {
		if c.lifecycle.Is(StateClosed) {
			return ErrClosed
		}
		return err
	}
	return nil
}

// scheduleAction cancels a live timer and schedules a new one. It runs
// inside fire, so c.mu is held.
func (c *Controller) scheduleAction(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
	c.cancelTimer()
	c.generation++
	gen := c.generation
	c.stopTimer = c.clock.Every(c.cfg.Interval, func() { c.tick(gen) })
	return nil
}

func (c *Controller) cancelAction(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
	c.cancelTimer()
	return nil
}

func (c *Controller) cancelTimer() {
	if c.stopTimer != nil {
		c.stopTimer()
		c.stopTimer = nil
	}
	// Invalidate ticks already in flight for the old timer.
	c.generation++
}

// tick advances one slide on behalf of the timer identified by gen.
func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation || !c.lifecycle.Is(StateAdvancing) {
		return
	}
	_ = c.goTo(context.Background(), c.current+1)
}
