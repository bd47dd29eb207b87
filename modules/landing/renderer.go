package landing

import (
	"context"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/landing/pkg/carousel"
	"github.com/dmitrymomot/landing/pkg/site"
)

// signalPatcher is the part of the Datastar event generator the renderer
// needs.
type signalPatcher interface {
	MarshalAndPatchSignals(signals any, opts ...datastar.PatchSignalsOption) error
}

// sseRenderer pushes carousel state to the page as signal patches. The
// controller serializes calls, so it needs no locking of its own.
type sseRenderer struct {
	sse signalPatcher
}

func newSSERenderer(sse signalPatcher) *sseRenderer {
	return &sseRenderer{sse: sse}
}

func (r *sseRenderer) Move(_ context.Context, m carousel.Move) error {
	return r.sse.MarshalAndPatchSignals(map[string]any{
		site.SignalSlide:      m.Slide,
		site.SignalTransform:  m.Transform,
		site.SignalTransition: m.TransitionCSS(),
	})
}

func (r *sseRenderer) MarkActive(_ context.Context, slides []carousel.SlideAttrs) error {
	patch := make(map[string]any, len(slides))
	for _, s := range slides {
		patch[site.SlideKey(s.Index)] = map[string]bool{
			"active":     s.Active,
			"ariaHidden": s.AriaHidden,
			"inert":      s.Inert,
		}
	}
	return r.sse.MarshalAndPatchSignals(map[string]any{site.SignalSlides: patch})
}
