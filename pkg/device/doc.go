// Package device classifies visitors into the page variant they should see.
//
// Classification looks at two signals only: the User-Agent string and the
// viewport width reported by the browser. Any mobile or tablet token in the
// User-Agent wins; otherwise a viewport at or below the mobile breakpoint
// (768 px by default) is treated as mobile. Everything else is desktop.
//
//	ctx := device.Context{UserAgent: r.UserAgent(), ViewportWidth: 1024}
//	if device.Classify(ctx) == device.Mobile {
//		// serve the mobile variant
//	}
//
// Classify is pure and total: it never fails and never touches the request.
// FromRequest builds a Context from an incoming request, reading the viewport
// width from the Sec-CH-Viewport-Width / Viewport-Width client hints or the
// "vw" query parameter set by the redirect shim.
//
// Token matching is case-insensitive and uses plain substring look-ups over
// curated keyword sets, so a classification costs a single folded copy of the
// User-Agent.
package device
