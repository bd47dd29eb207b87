// Package landing wires the landing page into an HTTP router.
//
// The root path classifies the visitor and redirects to a page variant.
// Each variant is served under its own path together with its carousel
// stream and actions. Beacons from the pages arrive on /api/events.
//
//	r := chi.NewRouter()
//	r.Mount("/", landing.Router(landing.Options{Catalogue: cat, Logger: log}))
package landing
