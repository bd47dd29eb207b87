package carousel

import "fmt"

// State is a snapshot of the controller.
type State struct {
	CurrentSlide      int  `json:"currentSlide"`
	TotalSlides       int  `json:"totalSlides"`
	AutoAdvanceActive bool `json:"autoAdvanceActive"`
	IsPaused          bool `json:"isPaused"`
}

// Wrap maps any index into [0, total). Negative indexes count from the end.
func Wrap(index, total int) int {
	if total <= 0 {
		return 0
	}
	return ((index % total) + total) % total
}

// slideAttrs builds the accessibility attributes for every slide with
// exactly one of them active.
func slideAttrs(current, total int) []SlideAttrs {
	attrs := make([]SlideAttrs, total)
	for i := range attrs {
		active := i == current
		attrs[i] = SlideAttrs{
			Index:      i,
			Active:     active,
			AriaHidden: !active,
			Inert:      !active,
		}
	}
	return attrs
}

// transform is the CSS transform moving the track to slide.
func transform(slide int) string {
	return fmt.Sprintf("translateX(-%d%%)", slide*100)
}
