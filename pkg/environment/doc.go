// Package environment carries the deployment environment (development,
// staging or production) through request contexts and log records.
//
// The landing server attaches the configured environment to every request
// with Middleware. Page rendering reads it back with FromContext to decide
// which development-only features to switch on, and the logger picks it up
// through LoggerExtractor.
//
//	r.Use(environment.Middleware(environment.Production))
//
//	if environment.IsDevelopment(ctx) {
//	    // expose performance logging
//	}
package environment
