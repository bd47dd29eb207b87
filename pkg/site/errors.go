package site

import "errors"

var (
	ErrInvalidCatalogue = errors.New("invalid site catalogue")
	ErrUnknownVariant   = errors.New("unknown page variant")
)
