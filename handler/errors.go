package handler

import (
	"errors"
	"net/http"
)

var (
	ErrNilResponse   = errors.New("handler returned nil response")
	ErrNotDataStar   = NewHTTPError(http.StatusBadRequest, "endpoint requires a Datastar request")
	ErrNotFound      = NewHTTPError(http.StatusNotFound, "not found")
	ErrBadRequest    = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrUnavailable   = NewHTTPError(http.StatusServiceUnavailable, "service unavailable")
	ErrUnprocessable = NewHTTPError(http.StatusUnprocessableEntity, "unprocessable entity")
)

// HTTPError carries a status code and a client-safe message. Err, when
// set, is logged but never shown.
type HTTPError struct {
	Code    int
	Message string
	Err     error
}

func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

// Wrap returns a copy of e carrying err as its cause.
func (e HTTPError) Wrap(err error) HTTPError {
	e.Err = err
	return e
}

func (e HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e HTTPError) Unwrap() error { return e.Err }

// Is matches another HTTPError with the same code and message, so sentinel
// values work with errors.Is after Wrap.
func (e HTTPError) Is(target error) bool {
	t, ok := target.(HTTPError)
	return ok && t.Code == e.Code && t.Message == e.Message
}
