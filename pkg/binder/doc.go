// Package binder decodes HTTP requests into typed structs.
//
// Each binder handles one source: JSON bodies, `path:` route parameters or
// `query:` parameters. Handlers combine them with handler.WithBinders.
//
//	type actionRequest struct {
//	    Variant string `path:"variant"`
//	    Action  string `path:"action"`
//	}
//
//	r.Post("/{variant}/carousel/{action}", handler.Wrap(h,
//	    handler.WithBinders[actionRequest](binder.Path(chi.URLParam)),
//	))
package binder
