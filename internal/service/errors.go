package service

import "errors"

var (
	// ErrValidation marks a malformed create payload; the HTTP layer maps it
	// to a 400 without touching the store.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCode is returned by Login for a wrong admin code.
	ErrInvalidCode = errors.New("invalid code")
)
