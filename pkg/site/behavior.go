package site

import (
	"slices"
	"sync"

	"github.com/dmitrymomot/landing/pkg/carousel"
)

// Header is the visual state of the sticky header.
type Header struct {
	Scrolled bool `json:"scrolled"`
	Hidden   bool `json:"hidden"`
}

// HeaderState applies the variant's header rule to a scroll from prevY to y.
func HeaderState(prevY, y int, v Variant) Header {
	return Header{
		Scrolled: y > v.HeaderScrolledAt,
		Hidden:   v.HeaderHideAfter > 0 && y > prevY && y > v.HeaderHideAfter,
	}
}

// Orientation reports "landscape" when the viewport is wider than tall.
func Orientation(width, height int) string {
	if width > height {
		return "landscape"
	}
	return "portrait"
}

// SectionNav cycles through a variant's sections. It is safe for
// concurrent use.
type SectionNav struct {
	mu       sync.Mutex
	sections []string
	current  int
}

func NewSectionNav(sections []string) *SectionNav {
	return &SectionNav{sections: slices.Clone(sections)}
}

// Current returns the current section id, or "" when there are none.
func (n *SectionNav) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.sections) == 0 {
		return ""
	}
	return n.sections[n.current]
}

// Set moves to id and reports whether it is a known section.
func (n *SectionNav) Set(id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	i := slices.Index(n.sections, id)
	if i < 0 {
		return false
	}
	n.current = i
	return true
}

func (n *SectionNav) Next() string { return n.step(1) }
func (n *SectionNav) Prev() string { return n.step(-1) }

func (n *SectionNav) step(delta int) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.sections) == 0 {
		return ""
	}
	n.current = carousel.Wrap(n.current+delta, len(n.sections))
	return n.sections[n.current]
}

// Neighbors returns the sections before and after id with wrap-around.
func Neighbors(sections []string, id string) (prev, next string) {
	nav := NewSectionNav(sections)
	if !nav.Set(id) {
		return "", ""
	}
	prev = nav.Prev()
	nav.Next()
	return prev, nav.Next()
}
