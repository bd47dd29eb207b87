package handler

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// JSONResponse is the envelope of every JSON body.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []FieldDetail `json:"details,omitempty"`
}

// FieldDetail is one invalid input field.
type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON.
type JSONOption func(*jsonResponse)

func WithStatus(status int) JSONOption {
	return func(j *jsonResponse) { j.status = status }
}

// JSON writes v as the data of the envelope, 200 by default.
func JSON(v any, opts ...JSONOption) Response {
	j := &jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Empty writes only a status code.
func Empty(status int) Response {
	return ResponseFunc(func(w http.ResponseWriter, _ *http.Request) error {
		w.WriteHeader(status)
		return nil
	})
}

// Templ renders component as a full HTML response, or patches it into the
// page over SSE for Datastar requests.
func Templ(component templ.Component, opts ...datastar.PatchElementOption) Response {
	return ResponseFunc(func(w http.ResponseWriter, r *http.Request) error {
		if IsDataStar(r) {
			return datastar.NewSSE(w, r).PatchElementTempl(component, opts...)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		return component.Render(r.Context(), w)
	})
}

// Redirect sends the client to url: a 302 for plain requests, a Datastar
// redirect event otherwise.
func Redirect(url string) Response {
	return ResponseFunc(func(w http.ResponseWriter, r *http.Request) error {
		if IsDataStar(r) {
			return datastar.NewSSE(w, r).Redirect(url)
		}
		http.Redirect(w, r, url, http.StatusFound)
		return nil
	})
}

// StreamFunc runs for the lifetime of an SSE connection.
type StreamFunc func(ctx Context, sse *datastar.ServerSentEventGenerator) error

// SSE serves a long-lived Datastar stream. Plain requests get ErrNotDataStar.
func SSE(fn StreamFunc) Response {
	return ResponseFunc(func(w http.ResponseWriter, r *http.Request) error {
		if !IsDataStar(r) {
			return ErrNotDataStar
		}
		ctx := NewContext(w, r)
		return fn(ctx, ctx.SSE())
	})
}
