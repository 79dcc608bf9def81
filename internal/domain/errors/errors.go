package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrMalformedRequest   = errors.New("malformed request")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStoreUnavailable   = errors.New("store unavailable")
	ErrInvalidBeca        = errors.New("invalid beca")
)

// Unavailable marks an infrastructure failure so that callers can match both
// ErrStoreUnavailable and the underlying cause.
func Unavailable(err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(ErrStoreUnavailable, err)
}
