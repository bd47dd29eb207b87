package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/landing/pkg/binder"
	"github.com/dmitrymomot/landing/pkg/logger"
	"github.com/dmitrymomot/landing/pkg/validator"
)

// DefaultErrorHandler is NewErrorHandler without logging.
var DefaultErrorHandler = NewErrorHandler(nil)

// NewErrorHandler returns an ErrorHandler that logs client errors at warn
// and server errors at error, then answers in the format the client
// expects: Datastar signals, a JSON envelope or plain text.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(ctx Context, err error) {
		status, detail := classify(err)

		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		log.Log(ctx, level, "request failed",
			slog.Int("status", status),
			slog.String("path", ctx.Request().URL.Path),
			logger.Error(err),
		)

		w, r := ctx.ResponseWriter(), ctx.Request()
		switch {
		case IsDataStar(r):
			// Before a stream opens the status still carries the failure.
			if !committed(w) {
				w.Header().Set("Content-Type", "text/event-stream")
				w.Header().Set("Cache-Control", "no-cache")
				w.WriteHeader(status)
			}
			if sse := ctx.SSE(); sse != nil {
				_ = sse.MarshalAndPatchSignals(map[string]any{"error": detail.Message})
			}
		case wantsJSON(r):
			_ = jsonResponse{status: status, body: JSONResponse{Error: &detail}}.Render(w, r)
		default:
			http.Error(w, detail.Message, status)
		}
	}
}

func classify(err error) (int, ErrorDetail) {
	if errs := validator.ExtractValidationErrors(err); errs != nil {
		d := ErrorDetail{Code: "validation_error", Message: "validation failed"}
		for _, e := range errs {
			d.Details = append(d.Details, FieldDetail{Field: e.Field, Message: e.Message})
		}
		return http.StatusUnprocessableEntity, d
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, ErrorDetail{Code: codeFor(httpErr.Code), Message: httpErr.Message}
	}

	switch {
	case errors.Is(err, binder.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge, ErrorDetail{Code: "body_too_large", Message: "request body too large"}
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return http.StatusUnsupportedMediaType, ErrorDetail{Code: "unsupported_media_type", Message: "expected application/json"}
	case errors.Is(err, binder.ErrInvalidJSON), errors.Is(err, binder.ErrInvalidPath), errors.Is(err, binder.ErrInvalidQuery):
		return http.StatusBadRequest, ErrorDetail{Code: "bad_request", Message: "malformed request"}
	}

	return http.StatusInternalServerError, ErrorDetail{Code: "internal_error", Message: "internal server error"}
}

func codeFor(status int) string {
	return strings.ReplaceAll(strings.ToLower(http.StatusText(status)), " ", "_")
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}
