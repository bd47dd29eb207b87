// Package logger builds the slog.Logger used across the landing server.
//
// New takes functional options for format, level, static attributes and
// context extractors. Extractors run on every record, so request-scoped
// values such as the request id or the environment show up without being
// passed around explicitly.
//
//	log := logger.New(
//	    logger.WithEnvironment("landing", cfg.Env),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "variant served", logger.DeviceClass("mobile"))
//
// Attribute helpers in attr.go keep key names consistent. Error and Errors
// return an empty attribute for nil errors, so callers can log them without
// a nil check.
package logger
