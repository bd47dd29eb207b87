package tracking

import (
	"time"

	"github.com/dmitrymomot/landing/pkg/device"
	"github.com/dmitrymomot/landing/pkg/sanitizer"
	"github.com/dmitrymomot/landing/pkg/validator"
)

// Event names.
const (
	WhatsAppClick      = "whatsapp_click"
	PropertyInterest   = "property_interest"
	VirtualPageview    = "virtual_pageview"
	PerformanceMetrics = "performance_metrics"
	LongInteraction    = "long_interaction"
	OrientationChange  = "orientation_change"
	NetworkStatus      = "network_status"
)

// Names lists every accepted event name.
func Names() []string {
	return []string{
		WhatsAppClick,
		PropertyInterest,
		VirtualPageview,
		PerformanceMetrics,
		LongInteraction,
		OrientationChange,
		NetworkStatus,
	}
}

const (
	maxFieldLen     = 128
	maxViewportLen  = 32
	maxUserAgentLen = 512
	maxMetrics      = 16
	maxMetricValue  = 1e7
)

// Event is one analytics beacon.
type Event struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Context   string             `json:"context,omitempty"`
	Property  string             `json:"property,omitempty"`
	Section   string             `json:"section,omitempty"`
	Variant   string             `json:"variant,omitempty"`
	Viewport  string             `json:"viewport,omitempty"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
	UserAgent string             `json:"userAgent,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
}

var (
	cleanVariant   = sanitizer.Compose(sanitizer.Line, sanitizer.Lower)
	cleanUserAgent = sanitizer.Compose(sanitizer.Line, sanitizer.Truncate(maxUserAgentLen))
)

func (e *Event) normalize() {
	e.Name = sanitizer.Line(e.Name)
	e.Context = sanitizer.Line(e.Context)
	e.Property = sanitizer.Line(e.Property)
	e.Section = sanitizer.Line(e.Section)
	e.Variant = cleanVariant(e.Variant)
	e.Viewport = sanitizer.Line(e.Viewport)
	e.UserAgent = cleanUserAgent(e.UserAgent)
}

// Validate checks e against the beacon limits.
func Validate(e Event) error {
	rules := []validator.Rule{
		validator.RequiredString("name", e.Name),
		validator.InListString("name", e.Name, Names()),
		validator.MaxLenString("context", e.Context, maxFieldLen),
		validator.MaxLenString("property", e.Property, maxFieldLen),
		validator.MaxLenString("section", e.Section, maxFieldLen),
		validator.OptionalInListString("variant", e.Variant, []string{device.Desktop.String(), device.Mobile.String()}),
		validator.MaxLenString("viewport", e.Viewport, maxViewportLen),
		validator.MaxLenString("userAgent", e.UserAgent, maxUserAgentLen),
		validator.MaxLenMap("metrics", e.Metrics, maxMetrics),
	}
	rules = append(rules, validator.EachMapValue("metrics", e.Metrics, func(field string, v float64) validator.Rule {
		return validator.NonNegative(field, v)
	})...)
	rules = append(rules, validator.EachMapValue("metrics", e.Metrics, func(field string, v float64) validator.Rule {
		return validator.MaxNum(field, v, maxMetricValue)
	})...)
	return validator.Apply(rules...)
}
