package site

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// Datastar signals shared by the page and the carousel stream.
const (
	SignalCarouselID = "carouselId"
	SignalSlide      = "currentSlide"
	SignalTransform  = "carouselTransform"
	SignalTransition = "carouselTransition"
	SignalSlides     = "slides"
	SignalKey        = "key"
	SignalGoto       = "gotoSlide"
	SignalSwipe      = "swipe"
)

// Element ids the page script looks up.
const (
	ConfigScriptID = "landing-config"
	MobileNavID    = "mobileNav"
)

// SlideKey is the signal key of slide i inside SignalSlides.
func SlideKey(i int) string { return fmt.Sprintf("s%d", i) }

// PageData is the per-request input of Page.
type PageData struct {
	// CarouselID identifies the carousel session of this page load.
	CarouselID     string
	Flags          map[string]bool
	SwipeThreshold int
}

func (d PageData) on(flag string) bool { return d.Flags[flag] }

// Page renders the full document for v.
func Page(cat *Catalogue, v Variant, data PageData) templ.Component {
	classes := []string{"variant-" + v.Name}
	if data.on(FlagAnimations) {
		classes = append(classes, "animations")
	}

	top := hero(cat, v)
	if v.Carousel {
		top = banner(cat, v, data)
	}

	return group(
		templ.Raw("<!DOCTYPE html>\n"),
		el("html", attrs{kv("lang", "pt-BR")},
			head(cat, v),
			el("body", attrs{kv("class", strings.Join(classes, " "))},
				header(cat, v),
				el("main", nil,
					top,
					services(cat, v),
					about(cat, v),
					properties(cat, v),
					contact(cat, v),
				),
				whatsappLink(cat, "whatsapp-float", "", "floating", text("WhatsApp"), kv("aria-label", "WhatsApp")),
				scripts(v, data),
			),
		),
	)
}

func head(cat *Catalogue, v Variant) templ.Component {
	links := make([]templ.Component, 0, len(v.Preload))
	for _, src := range v.Preload {
		links = append(links, void("link", attrs{kv("rel", "preload"), kv("as", "image"), kv("href", safeURL(src))}))
	}
	return el("head", nil,
		void("meta", attrs{kv("charset", "utf-8")}),
		void("meta", attrs{kv("name", "viewport"), kv("content", "width=device-width, initial-scale=1")}),
		el("title", nil, text(v.Title)),
		void("meta", attrs{kv("name", "description"), kv("content", cat.Brand.Tagline)}),
		group(links...),
		void("link", attrs{kv("rel", "stylesheet"), kv("href", safeURL(v.Path+"style.css"))}),
		el("script", attrs{
			kv("type", "module"),
			kv("src", "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"),
		}),
	)
}

func header(cat *Catalogue, v Variant) templ.Component {
	initial := HeaderState(0, 0, v)
	class := "site-header" + classIf(initial.Scrolled, " scrolled") + classIf(initial.Hidden, " hidden")

	nav := navBar(v)
	if v.Menu {
		nav = menu(cat, v)
	}
	return el("header", attrs{
		kv("id", "mainHeader"),
		kv("class", class),
		kv("data-scrolled-at", v.HeaderScrolledAt),
		kv("data-hide-after", v.HeaderHideAfter),
	},
		void("img", attrs{kv("class", "logo"), kv("src", safeURL(cat.Brand.Logo)), kv("alt", cat.Brand.Name)}),
		nav,
	)
}

func navLinks(v Variant) []templ.Component {
	links := make([]templ.Component, 0, len(v.Sections))
	for _, id := range v.Sections {
		links = append(links, el("a", attrs{
			kv("class", "nav-link"),
			kv("href", "#"+id),
			kv("data-section", id),
		}, text(sectionLabel(id))))
	}
	return links
}

func navBar(v Variant) templ.Component {
	return el("nav", attrs{kv("class", "nav")}, navLinks(v)...)
}

// menu is the off-canvas navigation. It starts closed; the page script flips
// aria-expanded, aria-hidden and the open classes.
func menu(cat *Catalogue, v Variant) templ.Component {
	return group(
		el("button", attrs{
			kv("class", "menu-toggle"),
			kv("type", "button"),
			kv("aria-label", "Abrir menu"),
			kv("aria-controls", MobileNavID),
			kv("aria-expanded", "false"),
		}, el("span", attrs{kv("class", "hamburger")})),
		el("nav", attrs{
			kv("id", MobileNavID),
			kv("class", "mobile-nav"),
			kv("aria-hidden", "true"),
			kv("aria-label", "Menu principal"),
		},
			el("button", attrs{kv("class", "nav-close"), kv("type", "button"), kv("aria-label", "Fechar menu")}, text("×")),
			group(navLinks(v)...),
			whatsappLink(cat, "btn btn-whatsapp", "", "menu", text("Fale comigo")),
		),
		el("div", attrs{kv("class", "nav-overlay")}),
	)
}

// whatsappLink opens a chat about subject and reports the click as where.
func whatsappLink(cat *Catalogue, class, subject, where string, label templ.Component, extra ...templ.KeyValue[string, any]) templ.Component {
	a := attrs{
		kv("class", class),
		kv("href", safeURL(cat.Contact.WhatsAppURL(subject))),
		kv("target", "_blank"),
		kv("rel", "noopener"),
		kv("onclick", trackCall("whatsapp_click", map[string]string{"context": where})),
	}
	return el("a", append(a, extra...), label)
}

// banner is the auto-advancing carousel. Its state lives on the server and
// arrives as signal patches on the stream opened by data-init.
func banner(cat *Catalogue, v Variant, data PageData) templ.Component {
	base := strings.TrimSuffix(v.Path, "/") + "/carousel/"
	post := func(action string) string { return fmt.Sprintf("@post('%s%s')", base, action) }

	slides := make(map[string]map[string]bool, len(cat.Slides))
	for i := range cat.Slides {
		slides[SlideKey(i)] = map[string]bool{"active": i == 0, "ariaHidden": i != 0, "inert": i != 0}
	}
	signals, _ := json.Marshal(map[string]any{
		SignalCarouselID: data.CarouselID,
		SignalSlide:      0,
		SignalTransform:  "translateX(-0%)",
		SignalTransition: "none",
		SignalSlides:     slides,
		SignalKey:        "",
		SignalGoto:       0,
		SignalSwipe:      map[string]int{"startX": 0, "startY": 0, "endX": 0, "endY": 0},
	})

	track := make([]templ.Component, 0, len(cat.Slides))
	dots := make([]templ.Component, 0, len(cat.Slides))
	for i, s := range cat.Slides {
		key := SignalSlides + "." + SlideKey(i)
		track = append(track, el("div", attrs{
			kv("class", "carousel-slide"+classIf(i == 0, " active")),
			kv("data-class:active", "$"+key+".active"),
			kv("data-attr:aria-hidden", "$"+key+".ariaHidden"),
			kv("data-attr:inert", "$"+key+".inert"),
			kv("style", fmt.Sprintf("background-image:url(%q)", safeURL(s.Image))),
		},
			el("div", attrs{
				kv("class", "slide-content"),
				kv("data-class:animate-in", fmt.Sprintf("$%s === %d", SignalSlide, i)),
			},
				el("h1", nil, text(s.Title)),
				el("p", nil, text(s.Subtitle)),
				whatsappLink(cat, "btn btn-whatsapp", s.Title, fmt.Sprintf("slide-%d", i), text(s.CTA)),
			),
		))
		dots = append(dots, el("button", attrs{
			kv("class", "dot"),
			kv("aria-label", fmt.Sprintf("Slide %d", i+1)),
			kv("data-class:active", fmt.Sprintf("$%s === %d", SignalSlide, i)),
			kv("data-on:click", fmt.Sprintf("$%s = %d; %s", SignalGoto, i, post("goto"))),
		}))
	}

	return el("section", attrs{
		kv("id", firstSection(v)),
		kv("class", "banner-carousel"),
		kv("data-signals", string(signals)),
		kv("data-init", fmt.Sprintf("@get('%sstream', {openWhenHidden: true})", base)),
		kv("data-on:mouseenter", post("pause")),
		kv("data-on:mouseleave", post("resume")),
		kv("data-on:keydown__window", fmt.Sprintf("(evt.key === 'ArrowLeft' || evt.key === 'ArrowRight') && ($%s = evt.key, %s)", SignalKey, post("key"))),
		kv("data-on:touchstart__passive", fmt.Sprintf("$%[1]s.startX = Math.round(evt.touches[0].clientX); $%[1]s.startY = Math.round(evt.touches[0].clientY)", SignalSwipe)),
		kv("data-on:touchend__passive", fmt.Sprintf("$%[1]s.endX = Math.round(evt.changedTouches[0].clientX); $%[1]s.endY = Math.round(evt.changedTouches[0].clientY); %[2]s", SignalSwipe, post("swipe"))),
	},
		el("div", attrs{
			kv("class", "carousel-track"),
			kv("data-style:transform", "$"+SignalTransform),
			kv("data-style:transition", "$"+SignalTransition),
		}, track...),
		el("button", attrs{kv("class", "carousel-btn prev-btn"), kv("aria-label", "Anterior"), kv("data-on:click", post("prev"))}, text("‹")),
		el("button", attrs{kv("class", "carousel-btn next-btn"), kv("aria-label", "Próximo"), kv("data-on:click", post("next"))}, text("›")),
		el("div", attrs{kv("class", "carousel-dots")}, dots...),
	)
}

func hero(cat *Catalogue, v Variant) templ.Component {
	id := firstSection(v)
	return el("section", attrs{kv("id", id), kv("class", "hero")},
		void("img", attrs{kv("class", "portrait"), kv("src", safeURL(cat.Brand.Portrait)), kv("alt", cat.Brand.Name)}),
		el("h1", nil, text(cat.Brand.Name)),
		el("p", nil, text(cat.Brand.Tagline)),
		whatsappLink(cat, "btn btn-whatsapp", "", "hero", text("Fale comigo")),
		nextLink(v, id),
	)
}

func services(cat *Catalogue, v Variant) templ.Component {
	id := sectionID(v, 1)
	cards := make([]templ.Component, 0, len(cat.Services))
	for _, s := range cat.Services {
		cards = append(cards, el("article", attrs{kv("class", "service-card")},
			void("img", attrs{kv("src", safeURL(s.Image)), kv("alt", ""), kv("loading", "lazy")}),
			el("h3", nil, text(s.Title)),
			el("p", nil, text(s.Description)),
			whatsappLink(cat, "btn btn-whatsapp", s.Title, s.Title, text("Saiba mais")),
		))
	}
	return el("section", attrs{kv("id", id), kv("class", "services")},
		el("h2", nil, text("Serviços")),
		el("div", attrs{kv("class", "grid")}, cards...),
		nextLink(v, id),
	)
}

func about(cat *Catalogue, v Variant) templ.Component {
	id := sectionID(v, 2)
	return el("section", attrs{kv("id", id), kv("class", "about")},
		void("img", attrs{kv("src", safeURL(cat.Brand.Portrait)), kv("alt", cat.Brand.Name), kv("loading", "lazy")}),
		el("h2", nil, text("Sobre")),
		el("p", nil, text(cat.Brand.Tagline)),
		nextLink(v, id),
	)
}

func properties(cat *Catalogue, v Variant) templ.Component {
	id := sectionID(v, 3)
	cards := make([]templ.Component, 0, len(cat.Properties))
	for _, p := range cat.Properties {
		features := make([]templ.Component, 0, len(p.Features))
		for _, f := range p.Features {
			features = append(features, el("li", nil, text(f)))
		}
		cards = append(cards, el("article", attrs{kv("class", "property-card")},
			void("img", attrs{kv("src", safeURL(p.Image)), kv("alt", ""), kv("loading", "lazy")}),
			el("h3", attrs{kv("class", "property-title")}, text(p.Title)),
			el("p", attrs{kv("class", "location")}, text(p.Location)),
			el("p", attrs{kv("class", "price")}, text(p.Price)),
			el("ul", nil, features...),
			el("a", attrs{
				kv("class", "btn property-contact"),
				kv("href", safeURL(cat.Contact.WhatsAppURL(p.Title))),
				kv("target", "_blank"),
				kv("rel", "noopener"),
				kv("onclick", trackCall("property_interest", map[string]string{"property": p.Title})),
			}, text("Tenho interesse")),
		))
	}
	return el("section", attrs{kv("id", id), kv("class", "featured")},
		el("h2", nil, text("Imóveis em destaque")),
		el("div", attrs{kv("class", "grid")}, cards...),
		nextLink(v, id),
	)
}

func contact(cat *Catalogue, v Variant) templ.Component {
	id := sectionID(v, 4)
	return el("section", attrs{kv("id", id), kv("class", "contact")},
		el("h2", nil, text("Contato")),
		el("div", attrs{kv("class", "contact-card")},
			el("p", nil, text(cat.Contact.City)),
			el("p", nil, el("a", attrs{kv("href", safeURL("mailto:"+cat.Contact.Email))}, text(cat.Contact.Email))),
			whatsappLink(cat, "btn btn-whatsapp", "", "contact", text("WhatsApp")),
		),
		nextLink(v, id),
	)
}

// pageConfig is handed to the page script as JSON.
type pageConfig struct {
	Variant          string   `json:"variant"`
	Sections         []string `json:"sections"`
	SwipeSections    bool     `json:"swipeSections"`
	SwipeThreshold   int      `json:"swipeThreshold"`
	HeaderScrolledAt int      `json:"headerScrolledAt"`
	HeaderHideAfter  int      `json:"headerHideAfter"`
	ServiceWorker    string   `json:"serviceWorker,omitempty"`
	PerformanceLog   bool     `json:"performanceLog"`
}

func scripts(v Variant, data PageData) templ.Component {
	cfg := pageConfig{
		Variant:          v.Name,
		Sections:         v.Sections,
		SwipeSections:    v.SwipeSections,
		SwipeThreshold:   data.SwipeThreshold,
		HeaderScrolledAt: v.HeaderScrolledAt,
		HeaderHideAfter:  v.HeaderHideAfter,
		PerformanceLog:   data.on(FlagPerformanceLog),
	}
	if data.on(FlagServiceWorker) {
		cfg.ServiceWorker = v.ServiceWorker
	}
	return group(
		templ.JSONScript(ConfigScriptID, cfg),
		el("script", nil, templ.Raw(pageScript)),
	)
}

// nextLink points to the following section on variants that navigate
// between sections.
func nextLink(v Variant, id string) templ.Component {
	if !v.SwipeSections {
		return templ.NopComponent
	}
	_, next := Neighbors(v.Sections, id)
	if next == "" {
		return templ.NopComponent
	}
	return el("a", attrs{kv("class", "section-next"), kv("href", "#"+next), kv("aria-label", sectionLabel(next))}, text("↓"))
}

func firstSection(v Variant) string { return sectionID(v, 0) }

// sectionID returns the i-th section id of v, falling back to a positional id.
func sectionID(v Variant, i int) string {
	if i < len(v.Sections) {
		return v.Sections[i]
	}
	return fmt.Sprintf("section-%d", i)
}

func sectionLabel(id string) string {
	switch strings.TrimSuffix(id, "-mobile") {
	case "home":
		return "Início"
	case "services":
		return "Serviços"
	case "about":
		return "Sobre"
	case "featured":
		return "Imóveis"
	case "contact":
		return "Contato"
	default:
		return id
	}
}

func classIf(ok bool, class string) string {
	if ok {
		return class
	}
	return ""
}
