package carousel

import (
	"context"
	"time"
)

// Move describes the visual transition to a slide.
type Move struct {
	Slide      int           `json:"slide"`
	Offset     int           `json:"offset"` // percent of the track width, always <= 0
	Transform  string        `json:"transform"`
	Transition time.Duration `json:"-"`
}

// TransitionCSS is the CSS transition applied to the track.
func (m Move) TransitionCSS() string {
	return "transform " + m.Transition.String() + " cubic-bezier(0.4, 0, 0.2, 1)"
}

// SlideAttrs are the accessibility attributes of one slide.
type SlideAttrs struct {
	Index      int  `json:"index"`
	Active     bool `json:"active"`
	AriaHidden bool `json:"ariaHidden"`
	Inert      bool `json:"inert"`
}

// Renderer applies controller state to the page.
type Renderer interface {
	// Move slides the track and restarts the enter animation of the slide content.
	Move(ctx context.Context, m Move) error
	// MarkActive updates aria-hidden/inert on every slide.
	MarkActive(ctx context.Context, slides []SlideAttrs) error
}
