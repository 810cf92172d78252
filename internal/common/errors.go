// Package common defines shared constants and sentinel errors used across
// CredVault layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Validation errors for malformed registration input.
	ErrorValidation = errors.New("validation error")

	// Auth errors. ErrInvalidCredentials deliberately covers both
	// "email not found" and "password incorrect" so callers cannot tell
	// which half failed.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrStorageUnavailable signals that the durable medium could not be
	// read or written. Surfaced to the UI as a generic "try again".
	ErrStorageUnavailable = errors.New("storage unavailable")
)
