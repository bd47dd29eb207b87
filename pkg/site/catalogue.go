package site

import (
	"context"
	_ "embed"
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/landing/pkg/device"
	"github.com/dmitrymomot/landing/pkg/sanitizer"
)

//go:embed content.yaml
var defaultContent []byte

type Brand struct {
	Name     string `yaml:"name"`
	Tagline  string `yaml:"tagline"`
	Logo     string `yaml:"logo"`
	Portrait string `yaml:"portrait"`
}

type Contact struct {
	WhatsApp string `yaml:"whatsapp"`
	Message  string `yaml:"message"`
	Email    string `yaml:"email"`
	City     string `yaml:"city"`
}

// WhatsAppURL is the click-to-chat link, optionally mentioning a subject.
func (c Contact) WhatsAppURL(subject string) string {
	text := c.Message
	if subject != "" {
		text = strings.TrimSpace(text + " " + subject)
	}
	return "https://wa.me/" + c.WhatsApp + "?text=" + url.QueryEscape(text)
}

type Slide struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Image    string `yaml:"image"`
	CTA      string `yaml:"cta"`
}

type Service struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
}

type Property struct {
	Title    string   `yaml:"title"`
	Location string   `yaml:"location"`
	Price    string   `yaml:"price"`
	Image    string   `yaml:"image"`
	Features []string `yaml:"features"`
}

// Variant is the per-device page configuration.
type Variant struct {
	Name          string   `yaml:"-"`
	Path          string   `yaml:"path"`
	Title         string   `yaml:"title"`
	Carousel      bool     `yaml:"carousel"`
	ServiceWorker string   `yaml:"service_worker"`
	Preload       []string `yaml:"preload"`
	Sections      []string `yaml:"sections"`
	SwipeSections bool     `yaml:"swipe_sections"`
	// Menu renders the off-canvas navigation instead of the inline nav bar.
	Menu             bool `yaml:"menu"`
	HeaderScrolledAt int  `yaml:"header_scrolled_at"`
	// HeaderHideAfter of 0 keeps the header visible.
	HeaderHideAfter int `yaml:"header_hide_after"`
}

// Catalogue is the whole site content.
type Catalogue struct {
	Brand      Brand              `yaml:"brand"`
	Contact    Contact            `yaml:"contact"`
	Slides     []Slide            `yaml:"slides"`
	Services   []Service          `yaml:"services"`
	Properties []Property         `yaml:"properties"`
	Variants   map[string]Variant `yaml:"variants"`
}

// Load parses the embedded catalogue.
func Load() (*Catalogue, error) {
	return Parse(defaultContent)
}

// Parse decodes and validates a YAML catalogue.
func Parse(data []byte) (*Catalogue, error) {
	var cat Catalogue
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalogue, err)
	}
	// wa.me wants the bare international number.
	cat.Contact.WhatsApp = sanitizer.Digits(cat.Contact.WhatsApp)
	for name, v := range cat.Variants {
		v.Name = name
		cat.Variants[name] = v
	}
	if err := cat.validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Catalogue) validate() error {
	if c.Contact.WhatsApp == "" {
		return fmt.Errorf("%w: contact.whatsapp is required", ErrInvalidCatalogue)
	}
	for _, class := range []device.Class{device.Desktop, device.Mobile} {
		v, ok := c.Variants[class.String()]
		if !ok {
			return fmt.Errorf("%w: missing %s variant", ErrInvalidCatalogue, class)
		}
		if v.Carousel && len(c.Slides) == 0 {
			return fmt.Errorf("%w: %s variant has a carousel but there are no slides", ErrInvalidCatalogue, class)
		}
		if v.SwipeSections && len(v.Sections) == 0 {
			return fmt.Errorf("%w: %s variant swipes sections but lists none", ErrInvalidCatalogue, class)
		}
	}
	return nil
}

// Check reports whether the catalogue can serve both variants. It fits
// readiness probes.
func (c *Catalogue) Check(context.Context) error {
	if c == nil {
		return fmt.Errorf("%w: not loaded", ErrInvalidCatalogue)
	}
	return c.validate()
}

// Variant returns the page configuration for class.
func (c *Catalogue) Variant(class device.Class) (Variant, error) {
	v, ok := c.Variants[class.String()]
	if !ok {
		return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, class)
	}
	return v, nil
}
