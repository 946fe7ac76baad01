package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrForbidden               = errors.New("forbidden")
	ErrNotFound                = errors.New("reservation not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
