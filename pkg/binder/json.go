package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxJSONSize caps JSON request bodies.
const DefaultMaxJSONSize = 64 << 10

// JSON returns a strict JSON body binder: unknown fields, trailing data and
// bodies over maxSize bytes are rejected. A maxSize <= 0 uses
// DefaultMaxJSONSize.
func JSON(maxSize int64) func(r *http.Request, v any) error {
	if maxSize <= 0 {
		maxSize = DefaultMaxJSONSize
	}
	return func(r *http.Request, v any) error {
		ct := r.Header.Get("Content-Type")
		if ct == "" {
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}
		// sendBeacon posts JSON blobs as text/plain to skip CORS preflight.
		if mt, _, err := mime.ParseMediaType(ct); err != nil || (mt != "application/json" && mt != "text/plain") {
			return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, ct)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxSize+1))
		if err != nil {
			return fmt.Errorf("%w: read body: %v", ErrInvalidJSON, err)
		}
		if int64(len(body)) > maxSize {
			return fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, maxSize)
		}

		dec := json.NewDecoder(bytes.NewReader(body))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrInvalidJSON)
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		if dec.More() {
			return fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidJSON)
		}
		return nil
	}
}
