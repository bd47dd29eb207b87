package handler

import "net/http"

// responseWriter records whether the status line has gone out, so error
// responses know if they can still pick a status.
type responseWriter struct {
	http.ResponseWriter
	committed bool
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.committed = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.committed = true
	return rw.ResponseWriter.Write(b)
}

// FlushError is picked up by http.ResponseController, which datastar uses
// to flush stream headers.
func (rw *responseWriter) FlushError() error {
	rw.committed = true
	return http.NewResponseController(rw.ResponseWriter).Flush()
}

func (rw *responseWriter) Flush() { _ = rw.FlushError() }

func (rw *responseWriter) Unwrap() http.ResponseWriter { return rw.ResponseWriter }

// committed reports whether w has already sent its status.
func committed(w http.ResponseWriter) bool {
	if rw, ok := w.(*responseWriter); ok {
		return rw.committed
	}
	return false
}
