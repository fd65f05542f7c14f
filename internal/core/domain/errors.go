package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by services and repositories. The HTTP adapter
// maps each to its status code; anything unrecognized becomes a 500 with
// detail suppressed.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrGuestReadOnly  = fmt.Errorf("%w: guest accounts are read-only", ErrForbidden)
	ErrDecrypt        = errors.New("decrypt failed")
)

// ValidationError carries a user-facing message for malformed input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError with a formatted message.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
