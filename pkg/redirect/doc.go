// Package redirect sends visitors of the site root to the page variant
// that fits their device.
//
// Handler classifies the request with pkg/device and navigates exactly
// once. When the user agent carries no device token and the request has no
// viewport width, it serves a tiny shim page that measures the window and
// comes back with ?vw=<width>. Any failure sends the visitor to the desktop
// page after Config.FallbackDelay.
//
//	r.Get("/", redirect.Handler(cfg, redirect.WithLogger(log)).ServeHTTP)
package redirect
