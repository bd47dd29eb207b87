package site_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landing/pkg/device"
	"github.com/dmitrymomot/landing/pkg/environment"
	"github.com/dmitrymomot/landing/pkg/site"
)

func render(t *testing.T, cat *site.Catalogue, v site.Variant, data site.PageData) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, site.Page(cat, v, data).Render(context.Background(), &sb))
	return sb.String()
}

func TestLoad(t *testing.T) {
	t.Parallel()

	cat, err := site.Load()
	require.NoError(t, err)

	assert.Len(t, cat.Slides, 3)
	assert.NotEmpty(t, cat.Services)
	assert.NotEmpty(t, cat.Properties)
	assert.NotEmpty(t, cat.Contact.WhatsApp)

	desktop, err := cat.Variant(device.Desktop)
	require.NoError(t, err)
	assert.Equal(t, "desktop", desktop.Name)
	assert.Equal(t, "/desktop/", desktop.Path)
	assert.True(t, desktop.Carousel)
	assert.Len(t, desktop.Preload, 5)
	assert.Equal(t, 100, desktop.HeaderScrolledAt)
	assert.Equal(t, 200, desktop.HeaderHideAfter)

	mobile, err := cat.Variant(device.Mobile)
	require.NoError(t, err)
	assert.False(t, mobile.Carousel)
	assert.True(t, mobile.SwipeSections)
	assert.Equal(t, []string{"home-mobile", "services-mobile", "about-mobile", "featured-mobile", "contact-mobile"}, mobile.Sections)

	_, err = cat.Variant(device.Class("tv"))
	assert.ErrorIs(t, err, site.ErrUnknownVariant)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "slides: [\n"},
		{"missing whatsapp", "variants: {desktop: {path: /desktop/}, mobile: {path: /mobile/}}"},
		{"whatsapp without digits", "contact: {whatsapp: '+ ( )'}\nvariants: {desktop: {}, mobile: {}}"},
		{"missing variant", "contact: {whatsapp: '1'}\nvariants: {desktop: {path: /desktop/}}"},
		{"carousel without slides", "contact: {whatsapp: '1'}\nvariants: {desktop: {carousel: true}, mobile: {}}"},
		{"swipe without sections", "contact: {whatsapp: '1'}\nvariants: {desktop: {}, mobile: {swipe_sections: true}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := site.Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, site.ErrInvalidCatalogue)
		})
	}
}

func TestParse_WhatsAppDigits(t *testing.T) {
	t.Parallel()

	cat, err := site.Parse([]byte("contact: {whatsapp: '+55 (11) 99999-9999'}\nvariants: {desktop: {}, mobile: {}}"))
	require.NoError(t, err)
	assert.Equal(t, "5511999999999", cat.Contact.WhatsApp)
}

func TestWhatsAppURL(t *testing.T) {
	t.Parallel()

	c := site.Contact{WhatsApp: "5511999999999", Message: "Olá!"}
	assert.Equal(t, "https://wa.me/5511999999999?text=Ol%C3%A1%21", c.WhatsAppURL(""))
	assert.Equal(t, "https://wa.me/5511999999999?text=Ol%C3%A1%21+Venda", c.WhatsAppURL("Venda"))
}

func TestHeaderState(t *testing.T) {
	t.Parallel()

	desktop := site.Variant{HeaderScrolledAt: 100, HeaderHideAfter: 200}
	mobile := site.Variant{HeaderScrolledAt: 100}

	tests := []struct {
		name    string
		v       site.Variant
		prev, y int
		want    site.Header
	}{
		{"top", desktop, 0, 0, site.Header{}},
		{"at threshold", desktop, 0, 100, site.Header{}},
		{"scrolled", desktop, 50, 150, site.Header{Scrolled: true}},
		{"down past hide point", desktop, 210, 260, site.Header{Scrolled: true, Hidden: true}},
		{"up past hide point", desktop, 300, 260, site.Header{Scrolled: true}},
		{"mobile never hides", mobile, 210, 900, site.Header{Scrolled: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, site.HeaderState(tt.prev, tt.y, tt.v))
		})
	}
}

func TestOrientation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "landscape", site.Orientation(844, 390))
	assert.Equal(t, "portrait", site.Orientation(390, 844))
	assert.Equal(t, "portrait", site.Orientation(500, 500))
}

func TestSectionNav(t *testing.T) {
	t.Parallel()

	nav := site.NewSectionNav([]string{"home", "services", "contact"})
	assert.Equal(t, "home", nav.Current())
	assert.Equal(t, "contact", nav.Prev())
	assert.Equal(t, "home", nav.Next())
	assert.Equal(t, "services", nav.Next())

	assert.True(t, nav.Set("contact"))
	assert.Equal(t, "home", nav.Next())
	assert.False(t, nav.Set("missing"))
	assert.Equal(t, "home", nav.Current())

	empty := site.NewSectionNav(nil)
	assert.Empty(t, empty.Current())
	assert.Empty(t, empty.Next())

	prev, next := site.Neighbors([]string{"a", "b", "c"}, "a")
	assert.Equal(t, "c", prev)
	assert.Equal(t, "b", next)
}

func TestFlags(t *testing.T) {
	t.Parallel()

	flags, err := site.Flags()
	require.NoError(t, err)

	dev := flags.Evaluate(environment.WithContext(context.Background(), environment.Development))
	assert.True(t, dev[site.FlagAnimations])
	assert.True(t, dev[site.FlagServiceWorker])
	assert.True(t, dev[site.FlagPerformanceLog])

	prod := flags.Evaluate(environment.WithContext(context.Background(), environment.Production))
	assert.True(t, prod[site.FlagAnimations])
	assert.False(t, prod[site.FlagPerformanceLog])
}

func TestPage_Desktop(t *testing.T) {
	t.Parallel()

	cat, err := site.Load()
	require.NoError(t, err)
	v, err := cat.Variant(device.Desktop)
	require.NoError(t, err)

	html := render(t, cat, v, site.PageData{
		CarouselID: "3f0c8c52-5d8e-4a39-9d0e-7b5b3f4c2a11",
		Flags:      map[string]bool{site.FlagAnimations: true, site.FlagServiceWorker: true},
	})

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `class="variant-desktop animations"`)
	assert.Contains(t, html, `<link rel="preload" as="image" href="img/investidora.png">`)
	assert.Contains(t, html, "3f0c8c52-5d8e-4a39-9d0e-7b5b3f4c2a11")
	assert.Contains(t, html, "@get(&#39;/desktop/carousel/stream&#39;")
	assert.Contains(t, html, "@post(&#39;/desktop/carousel/next&#39;)")
	assert.Equal(t, 3, strings.Count(html, `class="carousel-slide`))
	assert.Equal(t, 1, strings.Count(html, `class="carousel-slide active"`))
	assert.Contains(t, html, `<script id="landing-config" type="application/json">`)
	assert.Contains(t, html, `"serviceWorker":"/sw.js"`)
	assert.Contains(t, html, `onclick="track(&#34;whatsapp_click&#34;,{&#34;context&#34;:&#34;slide-0&#34;})"`)
	assert.Contains(t, html, `<nav class="nav"><a class="nav-link" href="#home" data-section="home">Início</a>`)
	assert.NotContains(t, html, "section-next")
	assert.NotContains(t, html, "menu-toggle")
}

func TestPage_Mobile(t *testing.T) {
	t.Parallel()

	cat, err := site.Load()
	require.NoError(t, err)
	v, err := cat.Variant(device.Mobile)
	require.NoError(t, err)

	html := render(t, cat, v, site.PageData{SwipeThreshold: 50})

	assert.NotContains(t, html, "carousel-track")
	assert.NotContains(t, html, "animations")
	assert.Contains(t, html, `id="home-mobile"`)
	assert.Contains(t, html, `href="#services-mobile"`)
	// The last section wraps around to the first.
	assert.Contains(t, html, `class="section-next" href="#home-mobile"`)
	assert.NotContains(t, html, "sw-mobile.js")
	assert.Contains(t, html, "property_interest")
	assert.Contains(t, html, "largest-contentful-paint")
	assert.Contains(t, html, "layout-shift")
}

func TestPage_MobileMenu(t *testing.T) {
	t.Parallel()

	cat, err := site.Load()
	require.NoError(t, err)
	v, err := cat.Variant(device.Mobile)
	require.NoError(t, err)
	require.True(t, v.Menu)

	html := render(t, cat, v, site.PageData{})

	// The menu starts closed and the toggle points at it.
	assert.Contains(t, html, `<button class="menu-toggle" type="button" aria-label="Abrir menu" aria-controls="mobileNav" aria-expanded="false">`)
	assert.Contains(t, html, `<nav id="mobileNav" class="mobile-nav" aria-hidden="true" aria-label="Menu principal">`)
	assert.Contains(t, html, `<button class="nav-close" type="button" aria-label="Fechar menu">`)
	assert.Contains(t, html, `<div class="nav-overlay"></div>`)
	assert.Contains(t, html, `<a class="nav-link" href="#services-mobile" data-section="services-mobile">Serviços</a>`)
	assert.Equal(t, len(v.Sections), strings.Count(html, `class="nav-link"`))
	assert.NotContains(t, html, `<nav class="nav">`)

	// The script wires the same elements it rendered.
	assert.Contains(t, html, `aria-expanded", String(open)`)
	assert.Contains(t, html, `document.getElementById("mobileNav")`)
	assert.Contains(t, html, `e.key === "Escape"`)
}

func TestPage_EscapesContent(t *testing.T) {
	t.Parallel()

	cat, err := site.Parse([]byte(`
contact: {whatsapp: "1"}
properties:
  - title: "<script>alert('x')</script>"
variants:
  desktop: {}
  mobile: {}
`))
	require.NoError(t, err)
	v, err := cat.Variant(device.Mobile)
	require.NoError(t, err)

	html := render(t, cat, v, site.PageData{})
	assert.NotContains(t, html, "<script>alert")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestPage_UnsafeURLs(t *testing.T) {
	t.Parallel()

	cat, err := site.Parse([]byte(`
contact: {whatsapp: "1"}
brand: {logo: "javascript:alert(1)"}
variants:
  desktop: {}
  mobile: {}
`))
	require.NoError(t, err)
	v, err := cat.Variant(device.Desktop)
	require.NoError(t, err)

	html := render(t, cat, v, site.PageData{})
	assert.NotContains(t, html, "javascript:alert")
	assert.Contains(t, html, `src="about:invalid#TemplFailedSanitizationURL"`)
}
