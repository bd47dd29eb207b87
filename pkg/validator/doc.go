// Package validator provides rule-based validation that collects every
// failure instead of stopping at the first.
//
//	err := validator.Apply(
//	    validator.InListString("name", ev.Name, names),
//	    validator.MaxLenString("property", ev.Property, 200),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//	    // errs.Get("name") ...
//	}
package validator
