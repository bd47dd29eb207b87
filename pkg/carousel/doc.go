// Package carousel implements the banner carousel controller: a small state
// machine over a fixed number of slides with manual navigation, timer-driven
// auto-advance and pause-on-hover.
//
// The controller owns its state and talks to the outside world through three
// collaborators:
//
//   - Renderer applies a Move (transform + transition of the track, enter
//     animation of the slide content) and marks exactly one slide active for
//     assistive technology.
//   - Clock schedules and cancels the recurring auto-advance tick.
//   - The caller feeds input: buttons, arrow keys, swipes and pointer hover.
//
// Navigation wraps in both directions, so Prev from the first slide lands on
// the last one. Starting auto-advance always cancels a live timer first: at
// most one timer exists at any time, and a tick that belongs to a superseded
// timer is dropped. Pause stops the timer and Resume starts a fresh one; the
// current slide is left untouched. Manual navigation keeps the running timer
// unless Config.ResetOnNavigate is set.
//
// Every operation runs to completion under the controller lock, including the
// renderer calls, so observers always see state changes in order. Renderers
// must not call back into the controller.
//
// A controller built without a renderer is disabled: the page has no carousel
// and every operation is a no-op.
//
//	c, err := carousel.New(carousel.DefaultConfig(), renderer,
//		carousel.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//	defer c.Close()
//
//	_ = c.GoTo(ctx, 0)
//	_ = c.StartAutoAdvance()
package carousel
