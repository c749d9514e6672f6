package store

import "errors"

var (
	// ErrNotFound is returned when an operation references an id that
	// does not exist (or was deleted).
	ErrNotFound = errors.New("record not found")

	// ErrEmailTaken is returned by CreateUser when the email is already
	// registered.
	ErrEmailTaken = errors.New("email already registered")
)
