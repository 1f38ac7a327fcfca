package domain

import "errors"

var (
	// ErrInvalid is returned when an entity fails field validation.
	ErrInvalid = errors.New("invalid entity")

	// ErrMalformedLine is returned when a stored line cannot be decoded into an entity.
	ErrMalformedLine = errors.New("malformed line")
)
