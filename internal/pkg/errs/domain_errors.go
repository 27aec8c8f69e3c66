package errs

import "errors"

// Error kinds surfaced to callers. Use-cases mark user-facing errors with one
// of these; the HTTP layer maps the kind to a status code.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrBusy              = errors.New("busy, retry")
)

var kinds = []error{
	ErrNotFound,
	ErrInvalidInput,
	ErrPermissionDenied,
	ErrConflict,
	ErrInvalidTransition,
	ErrBusy,
}
