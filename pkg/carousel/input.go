package carousel

import (
	"context"
	"fmt"
)

// Action is a user intent coming from the page.
type Action string

const (
	ActionPrev   Action = "prev"
	ActionNext   Action = "next"
	ActionPause  Action = "pause"  // pointer entered the carousel
	ActionResume Action = "resume" // pointer left the carousel
)

// ParseAction validates s as an Action.
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionPrev, ActionNext, ActionPause, ActionResume:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}

// Dispatch runs the operation behind a.
func (c *Controller) Dispatch(ctx context.Context, a Action) error {
	switch a {
	case ActionPrev:
		return c.Prev(ctx)
	case ActionNext:
		return c.Next(ctx)
	case ActionPause:
		return c.Pause()
	case ActionResume:
		return c.Resume()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, a)
	}
}

// Keyboard keys understood by HandleKey, as reported by KeyboardEvent.key.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// HandleKey maps arrow keys to navigation. Other keys are ignored and
// reported as not handled.
func (c *Controller) HandleKey(ctx context.Context, key string) (bool, error) {
	switch key {
	case KeyArrowLeft:
		return true, c.Prev(ctx)
	case KeyArrowRight:
		return true, c.Next(ctx)
	default:
		return false, nil
	}
}

// Swipe is a completed touch gesture in client coordinates.
type Swipe struct {
	StartX int `json:"startX"`
	StartY int `json:"startY"`
	EndX   int `json:"endX"`
	EndY   int `json:"endY"`
}

// Direction classifies the swipe: ActionNext for a leftward swipe,
// ActionPrev for a rightward one, empty when the gesture is too short or
// mostly vertical.
func (s Swipe) Direction(threshold int) Action {
	dx := s.StartX - s.EndX
	dy := s.StartY - s.EndY
	if abs(dx) <= abs(dy) || abs(dx) <= threshold {
		return ""
	}
	if dx > 0 {
		return ActionNext
	}
	return ActionPrev
}

// HandleSwipe navigates on a horizontal swipe longer than the configured
// threshold.
func (c *Controller) HandleSwipe(ctx context.Context, s Swipe) (bool, error) {
	switch s.Direction(c.cfg.SwipeThreshold) {
	case ActionNext:
		return true, c.Next(ctx)
	case ActionPrev:
		return true, c.Prev(ctx)
	default:
		return false, nil
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
