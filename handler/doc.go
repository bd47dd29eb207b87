// Package handler adapts typed handler functions to http.HandlerFunc.
//
// A HandlerFunc receives a Context and a request value decoded by binders,
// and returns a Response that renders itself. Responses are Datastar-aware:
// Templ and Redirect answer Datastar requests with Server-Sent Events and
// plain requests with HTML or a 302.
//
//	type statsRequest struct{}
//
//	h := func(ctx handler.Context, _ statsRequest) handler.Response {
//	    return handler.JSON(stats.Snapshot())
//	}
//	r.Get("/api/events/stats", handler.Wrap(h))
//
// Errors from binders or Render go to the ErrorHandler. NewErrorHandler maps
// HTTPError, binder and validation failures to status codes and logs them.
package handler
