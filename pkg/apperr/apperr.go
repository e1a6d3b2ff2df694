package apperr

import "errors"

// Sentinel errors shared by repositories and controllers so the HTTP layer
// can map internal failures to status codes without string matching.
var (
	ErrUnauthenticated = errors.New("missing or invalid credentials")
	ErrForbidden       = errors.New("operation not permitted")
	ErrNotFound        = errors.New("resource not found")
	ErrConflict        = errors.New("resource state conflict")
	ErrValidation      = errors.New("validation failed")
	ErrInternal        = errors.New("internal server error")
)

// Is reports whether err wraps target. Thin alias kept so callers don't need
// both this package and errors imported for the common case.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
