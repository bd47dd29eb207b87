package ratelimiter

import "errors"

var (
	ErrInvalidConfig     = errors.New("invalid rate limit config")
	ErrInvalidTokenCount = errors.New("invalid token count")
)
