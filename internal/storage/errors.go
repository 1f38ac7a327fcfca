package storage

import "errors"

var (
	// ErrDuplicateID is returned by Add when the identifier is already taken.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrNotFound is returned by Get and Delete for an absent identifier.
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable wraps I/O failures against the backing store.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrMalformedRecord is returned when a durable record cannot be decoded.
	ErrMalformedRecord = errors.New("malformed record")
)
