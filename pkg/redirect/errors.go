package redirect

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid redirect config")
	ErrNavigation    = errors.New("navigation failed")
)
